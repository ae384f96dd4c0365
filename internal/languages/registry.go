package languages

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"loccount/internal/model"
)

var (
	// ErrDuplicateExtension 表示同一个后缀被注册了两次。
	ErrDuplicateExtension = errors.New("extension already registered")
	// ErrInvalidBinding 表示注册参数不完整。
	ErrInvalidBinding = errors.New("invalid language binding")
)

// LineCounter 定义单语言行计数接口。
// 输入是已经读取完成的文本，输出必须满足 Lines == Code + Comments + Blanks。
type LineCounter interface {
	Count(content string) model.FileStats
}

// LineCounterFunc 允许直接用函数作为 LineCounter。
type LineCounterFunc func(content string) model.FileStats

// Count 调用函数本身。
func (f LineCounterFunc) Count(content string) model.FileStats {
	return f(content)
}

// Binding 是一次后缀注册的结果：语言名与对应的计数器。
type Binding struct {
	Language string
	Counter  LineCounter
}

// LanguageDescriptor 用于对外展示语言及后缀信息。
type LanguageDescriptor struct {
	Name       string
	Extensions []string
}

// Builder 在启动阶段收集后缀注册，Build 之后得到只读的 Registry。
// Builder 本身不是并发安全的，只应在单个 goroutine 中使用。
type Builder struct {
	bindings map[string]Binding
}

// NewBuilder 创建空的注册构建器。
func NewBuilder() *Builder {
	return &Builder{bindings: make(map[string]Binding)}
}

// Register 把一个后缀同时绑定到语言名和计数器。
// 后缀不含点号且区分大小写；同一后缀重复注册会返回 ErrDuplicateExtension。
func (b *Builder) Register(extension string, language string, counter LineCounter) error {
	switch {
	case extension == "" || strings.ContainsAny(extension, "./\\"):
		return fmt.Errorf("%w: bad extension %q", ErrInvalidBinding, extension)
	case strings.TrimSpace(language) == "":
		return fmt.Errorf("%w: empty language for extension %q", ErrInvalidBinding, extension)
	case counter == nil:
		return fmt.Errorf("%w: nil counter for extension %q", ErrInvalidBinding, extension)
	}

	if existing, ok := b.bindings[extension]; ok {
		return fmt.Errorf("%w: %q is bound to %s", ErrDuplicateExtension, extension, existing.Language)
	}

	b.bindings[extension] = Binding{Language: language, Counter: counter}
	return nil
}

// Build 生成只读注册表，之后对 Builder 的修改不会影响已生成的 Registry。
func (b *Builder) Build() *Registry {
	bindings := make(map[string]Binding, len(b.bindings))
	for ext, binding := range b.bindings {
		bindings[ext] = binding
	}
	return &Registry{bindings: bindings}
}

// Registry 管理后缀到语言与计数器的映射。
// 构建完成后只读，可被多个 worker 并发查询。
type Registry struct {
	bindings map[string]Binding
}

// Default 创建并注册全部内置语言。
func Default() *Registry {
	builder := NewBuilder()
	if err := builder.Register("md", "Markdown", MarkdownCounter{}); err != nil {
		panic(err)
	}
	return builder.Build()
}

// Resolve 按后缀查找语言与计数器，未知后缀返回 false。
func (r *Registry) Resolve(extension string) (Binding, bool) {
	binding, ok := r.bindings[extension]
	return binding, ok
}

// ResolvePath 根据文件路径的后缀查找绑定。
func (r *Registry) ResolvePath(path string) (Binding, bool) {
	extension, ok := Extension(path)
	if !ok {
		return Binding{}, false
	}
	return r.Resolve(extension)
}

// Classify 返回文件对应的语言名，无法识别时返回 false。
func (r *Registry) Classify(path string) (string, bool) {
	binding, ok := r.ResolvePath(path)
	if !ok {
		return "", false
	}
	return binding.Language, true
}

// Languages 返回已注册语言清单，按语言名排序。
func (r *Registry) Languages() []LanguageDescriptor {
	byName := make(map[string][]string)
	for ext, binding := range r.bindings {
		byName[binding.Language] = append(byName[binding.Language], ext)
	}

	result := make([]LanguageDescriptor, 0, len(byName))
	for name, extensions := range byName {
		sort.Strings(extensions)
		result = append(result, LanguageDescriptor{
			Name:       name,
			Extensions: extensions,
		})
	}

	sort.Slice(result, func(i int, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}
