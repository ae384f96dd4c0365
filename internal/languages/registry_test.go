package languages

import (
	"errors"
	"testing"

	"loccount/internal/model"
)

// TestExtension 验证后缀提取规则。
func TestExtension(t *testing.T) {
	cases := []struct {
		path string
		want string
		ok   bool
	}{
		{path: "README.md", want: "md", ok: true},
		{path: "docs/guide.MD", want: "MD", ok: true},
		{path: "archive.tar.gz", want: "gz", ok: true},
		{path: ".hidden.md", want: "md", ok: true},
		{path: "dir.d/Makefile", ok: false},
		{path: ".gitignore", ok: false},
		{path: "notes.", ok: false},
		{path: "Makefile", ok: false},
	}

	for _, tc := range cases {
		got, ok := Extension(tc.path)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("%s => (%q, %v) want (%q, %v)", tc.path, got, ok, tc.want, tc.ok)
		}
	}
}

// TestDefaultRegistry 确认内置注册表只绑定了 md。
func TestDefaultRegistry(t *testing.T) {
	registry := Default()

	languages := registry.Languages()
	if len(languages) != 1 || languages[0].Name != "Markdown" {
		t.Fatalf("unexpected languages: %+v", languages)
	}
	if len(languages[0].Extensions) != 1 || languages[0].Extensions[0] != "md" {
		t.Fatalf("unexpected extensions: %+v", languages[0].Extensions)
	}

	if lang, ok := registry.Classify("docs/README.md"); !ok || lang != "Markdown" {
		t.Fatalf("classify md => (%q, %v)", lang, ok)
	}
	for _, path := range []string{"a.txt", "a.bin", "Makefile", ".md", "A.MD"} {
		if lang, ok := registry.Classify(path); ok {
			t.Fatalf("%s should be unclassified, got %s", path, lang)
		}
	}
}

// TestRegisterRejectsDuplicates 验证同一后缀不能绑定两次。
func TestRegisterRejectsDuplicates(t *testing.T) {
	builder := NewBuilder()
	if err := builder.Register("md", "Markdown", MarkdownCounter{}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	err := builder.Register("md", "Other", MarkdownCounter{})
	if !errors.Is(err, ErrDuplicateExtension) {
		t.Fatalf("expected ErrDuplicateExtension, got %v", err)
	}

	binding, ok := builder.Build().Resolve("md")
	if !ok || binding.Language != "Markdown" {
		t.Fatalf("first binding should win: %+v", binding)
	}
}

// TestRegisterRejectsInvalid 验证非法参数会被拒绝。
func TestRegisterRejectsInvalid(t *testing.T) {
	builder := NewBuilder()
	cases := []struct {
		ext     string
		lang    string
		counter LineCounter
	}{
		{ext: "", lang: "Markdown", counter: MarkdownCounter{}},
		{ext: ".md", lang: "Markdown", counter: MarkdownCounter{}},
		{ext: "md", lang: " ", counter: MarkdownCounter{}},
		{ext: "md", lang: "Markdown", counter: nil},
	}
	for _, tc := range cases {
		if err := builder.Register(tc.ext, tc.lang, tc.counter); !errors.Is(err, ErrInvalidBinding) {
			t.Fatalf("register(%q, %q) expected ErrInvalidBinding, got %v", tc.ext, tc.lang, err)
		}
	}
}

// TestRegisterCustomCounter 验证新增语言不需要修改分发逻辑。
func TestRegisterCustomCounter(t *testing.T) {
	builder := NewBuilder()
	lineOnly := LineCounterFunc(func(content string) model.FileStats {
		stats := MarkdownCounter{}.Count(content)
		return model.FileStats{Lines: stats.Lines, Code: stats.Lines}
	})
	if err := builder.Register("md", "Markdown", MarkdownCounter{}); err != nil {
		t.Fatalf("register md failed: %v", err)
	}
	if err := builder.Register("markdown", "Markdown", MarkdownCounter{}); err != nil {
		t.Fatalf("register markdown failed: %v", err)
	}
	if err := builder.Register("txt", "Text", lineOnly); err != nil {
		t.Fatalf("register txt failed: %v", err)
	}
	registry := builder.Build()

	// Build 之后继续注册不影响已生成的注册表。
	if err := builder.Register("rst", "reStructuredText", lineOnly); err != nil {
		t.Fatalf("register rst failed: %v", err)
	}
	if _, ok := registry.Resolve("rst"); ok {
		t.Fatalf("registry should be immutable after Build")
	}

	binding, ok := registry.ResolvePath("notes.txt")
	if !ok || binding.Language != "Text" {
		t.Fatalf("unexpected binding: %+v", binding)
	}
	if stats := binding.Counter.Count("a\n\n"); stats.Code != 2 || stats.Blanks != 0 {
		t.Fatalf("unexpected stats: %+v", stats)
	}

	languages := registry.Languages()
	if len(languages) != 2 || languages[0].Name != "Markdown" || languages[1].Name != "Text" {
		t.Fatalf("unexpected languages: %+v", languages)
	}
	if got := languages[0].Extensions; len(got) != 2 || got[0] != "markdown" || got[1] != "md" {
		t.Fatalf("unexpected markdown extensions: %v", got)
	}
}
