package languages

import (
	"strings"
	"testing"

	"loccount/internal/model"
)

// countText 是测试辅助函数，用于快速运行某个计数器并校验行数恒等式。
func countText(t *testing.T, counter LineCounter, content string) model.FileStats {
	t.Helper()

	stats := counter.Count(content)
	if !stats.Consistent() {
		t.Fatalf("lines != code + comments + blanks: %+v", stats)
	}
	return stats
}

// TestMarkdownMixedLines 验证空行与内容行的基本分类。
func TestMarkdownMixedLines(t *testing.T) {
	stats := countText(t, MarkdownCounter{}, "a\n\nb\n")

	want := model.FileStats{Lines: 3, Code: 2, Comments: 0, Blanks: 1}
	if stats != want {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

// TestMarkdownEmptyContent 验证空文件得到全零统计。
func TestMarkdownEmptyContent(t *testing.T) {
	stats := countText(t, MarkdownCounter{}, "")

	if stats != (model.FileStats{}) {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

// TestMarkdownMissingTrailingNewline 验证没有行尾符的最后一行仍然计入。
func TestMarkdownMissingTrailingNewline(t *testing.T) {
	stats := countText(t, MarkdownCounter{}, "# title\n\ntext")

	if stats.Lines != 3 || stats.Code != 2 || stats.Blanks != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

// TestMarkdownCRLF 验证 \r\n 不会引入额外空行，\r\n 单独成行时计为 blank。
func TestMarkdownCRLF(t *testing.T) {
	stats := countText(t, MarkdownCounter{}, "a\r\n\r\nb\r\n")

	want := model.FileStats{Lines: 3, Code: 2, Blanks: 1}
	if stats != want {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

// TestMarkdownWhitespaceIsCode 验证只含空白的行不裁剪，按 code 计。
func TestMarkdownWhitespaceIsCode(t *testing.T) {
	stats := countText(t, MarkdownCounter{}, "  \n\t\n\n")

	want := model.FileStats{Lines: 3, Code: 2, Blanks: 1}
	if stats != want {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

// TestMarkdownAllNonEmpty 验证全部非空行时 blanks 为 0、code 等于行数。
func TestMarkdownAllNonEmpty(t *testing.T) {
	for n := 1; n <= 50; n += 7 {
		content := strings.Repeat("line\n", n)
		stats := countText(t, MarkdownCounter{}, content)
		if stats.Blanks != 0 || stats.Code != int64(n) || stats.Lines != int64(n) {
			t.Fatalf("n=%d unexpected stats: %+v", n, stats)
		}
	}
}

// TestMarkdownAllEmpty 验证全部空行时 code 为 0、blanks 等于行数。
func TestMarkdownAllEmpty(t *testing.T) {
	for n := 1; n <= 50; n += 7 {
		content := strings.Repeat("\n", n)
		stats := countText(t, MarkdownCounter{}, content)
		if stats.Code != 0 || stats.Blanks != int64(n) || stats.Lines != int64(n) {
			t.Fatalf("n=%d unexpected stats: %+v", n, stats)
		}
	}
}

// TestMarkdownInvariant 对一组杂乱输入检查行数恒等式。
func TestMarkdownInvariant(t *testing.T) {
	inputs := []string{
		"\n",
		"x",
		"\r\n",
		"a\rb\n",
		"<!-- not a comment here -->\n\n",
		"多字节 文本\n\n\n结尾",
		strings.Repeat("a\n\n", 100),
	}
	for _, input := range inputs {
		countText(t, MarkdownCounter{}, input)
	}
}
