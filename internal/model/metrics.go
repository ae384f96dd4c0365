// Package model 定义 loccount 的核心数据模型。
// 这些结构会被语言注册表、聚合引擎、扫描器和输出层共同使用。
package model

// FileStats 表示单个文件的行级统计值。
//
// 约束：
// - Lines 表示总行数（每行计 1，空行也计入）
// - 每一行只归入 Code/Comments/Blanks 其中之一，因此 Lines == Code + Comments + Blanks
// - 由计数器一次性产出，之后只会被合并进聚合结果，不会被原地修改
type FileStats struct {
	Lines    int64
	Code     int64
	Comments int64
	Blanks   int64
}

// Add 将另一个统计结果按字段叠加到当前对象。
func (s *FileStats) Add(other FileStats) {
	s.Lines += other.Lines
	s.Code += other.Code
	s.Comments += other.Comments
	s.Blanks += other.Blanks
}

// Consistent 判断统计值是否满足 Lines == Code + Comments + Blanks。
func (s FileStats) Consistent() bool {
	return s.Lines == s.Code+s.Comments+s.Blanks
}

// LanguageStats 表示某个语言的累计结果。
// 第一次遇到该语言的文件时以零值创建，此后只通过 Add 累加。
type LanguageStats struct {
	Language string
	Files    int64
	Stats    FileStats
}

// Add 累加一个文件的统计值，并把文件数加一。
func (l *LanguageStats) Add(stats FileStats) {
	l.Files++
	l.Stats.Add(stats)
}

// FileResult 表示单文件处理结果。
type FileResult struct {
	Path     string
	Language string
	Stats    FileStats
}

// Summary 是一次运行的完整汇总，语言按名称排序，错误按路径排序。
type Summary struct {
	Languages  []LanguageStats
	TotalFiles int64
	Total      FileStats
	Errors     []ScanError
}

// Failed 报告本次运行是否存在失败的路径或文件。
func (s Summary) Failed() bool {
	return len(s.Errors) > 0
}
