package languages

import "loccount/internal/model"

// MarkdownCounter 是 Markdown/纯文本风格的计数器。
// 该格式没有注释语法：空字符串行计为 blank，其余一律计为 code，Comments 恒为 0。
// 注意这里不做空白裁剪，只含空格的行也是 code。
type MarkdownCounter struct{}

// Count 统计一段 Markdown 文本。
func (MarkdownCounter) Count(content string) model.FileStats {
	var stats model.FileStats

	eachLine(content, func(line string) {
		stats.Lines++
		if line == "" {
			stats.Blanks++
			return
		}
		stats.Code++
	})

	return stats
}
