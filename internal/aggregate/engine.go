// Package aggregate 提供按语言累计行统计的聚合引擎。
// 引擎只负责“分类 -> 计数 -> 累加”，不负责目录遍历与输出格式。
package aggregate

import (
	"sort"
	"sync"

	"loccount/internal/languages"
	"loccount/internal/model"
)

// ContentReader 提供文件的完整文本内容。
// 读取或解码失败时应返回 *model.ReadError。
type ContentReader interface {
	ReadContent(path string) (string, error)
}

// Engine 是聚合引擎。
// 注册表只读共享，聚合表由互斥锁保护，Process/Add 可以被多个 worker 并发调用。
type Engine struct {
	registry *languages.Registry
	reader   ContentReader

	mu    sync.Mutex
	table map[string]*model.LanguageStats
}

// NewEngine 创建聚合引擎。
func NewEngine(registry *languages.Registry, reader ContentReader) *Engine {
	return &Engine{
		registry: registry,
		reader:   reader,
		table:    make(map[string]*model.LanguageStats),
	}
}

// Process 处理单个文件。
//
// 返回值：
// - 后缀无法识别时返回 ok=false 且 err=nil，聚合表不变
// - 读取失败时返回错误，聚合表同样不变
// - 成功时返回文件结果，并已累加到对应语言
func (e *Engine) Process(path string) (model.FileResult, bool, error) {
	binding, ok := e.registry.ResolvePath(path)
	if !ok {
		return model.FileResult{}, false, nil
	}

	content, err := e.reader.ReadContent(path)
	if err != nil {
		return model.FileResult{}, true, err
	}

	stats := binding.Counter.Count(content)
	e.Add(binding.Language, stats)

	return model.FileResult{
		Path:     path,
		Language: binding.Language,
		Stats:    stats,
	}, true, nil
}

// Add 把一个文件的统计值累加到语言条目，首次出现的语言以零值创建。
func (e *Engine) Add(language string, stats model.FileStats) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.entry(language).Add(stats)
}

// Merge 把另一个引擎的聚合表合并进来，用于合并各 worker 的局部结果。
func (e *Engine) Merge(other *Engine) {
	if other == nil || other == e {
		return
	}

	snapshot := other.Languages()

	e.mu.Lock()
	defer e.mu.Unlock()

	for _, item := range snapshot {
		entry := e.entry(item.Language)
		entry.Files += item.Files
		entry.Stats.Add(item.Stats)
	}
}

// Languages 返回按语言名排序的聚合快照。
func (e *Engine) Languages() []model.LanguageStats {
	e.mu.Lock()
	defer e.mu.Unlock()

	result := make([]model.LanguageStats, 0, len(e.table))
	for _, item := range e.table {
		result = append(result, *item)
	}

	sort.Slice(result, func(i int, j int) bool {
		return result[i].Language < result[j].Language
	})
	return result
}

// Summary 计算语言级汇总与全局总计。
// TotalFiles 是各语言文件数之和，即成功处理的文件总数。
func (e *Engine) Summary() model.Summary {
	summary := model.Summary{
		Languages: e.Languages(),
		Errors:    make([]model.ScanError, 0),
	}

	for _, item := range summary.Languages {
		summary.TotalFiles += item.Files
		summary.Total.Add(item.Stats)
	}
	return summary
}

// entry 获取或创建语言条目，调用方需持有锁。
func (e *Engine) entry(language string) *model.LanguageStats {
	item, ok := e.table[language]
	if !ok {
		item = &model.LanguageStats{Language: language}
		e.table[language] = item
	}
	return item
}
