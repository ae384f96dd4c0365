// Package scanner 提供并发扫描调度能力。
// 该层负责目录遍历、文件读取、任务分发和错误收集，计数与累加交给 aggregate.Engine。
package scanner

import (
	"context"
	"runtime"
	"sort"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"loccount/internal/aggregate"
	"loccount/internal/languages"
	"loccount/internal/model"
)

// Service 是扫描服务对象。
type Service struct {
	registry *languages.Registry
	reader   aggregate.ContentReader
	workers  int
}

// NewService 创建扫描服务，workers<=0 时使用 CPU 核数。
func NewService(registry *languages.Registry, workers int) *Service {
	if workers <= 0 {
		workers = max(runtime.NumCPU(), 1)
	}
	return &Service{
		registry: registry,
		reader:   FileReader{},
		workers:  workers,
	}
}

// ScanPaths 扫描若干文件或目录并返回汇总结果。
//
// 单个路径或文件失败不会中断扫描：失败项记录在 Summary.Errors 中，
// 其余文件照常累加。只有在没有给出任何路径或 ctx 被取消时才返回错误。
func (s *Service) ScanPaths(ctx context.Context, paths []string) (model.Summary, error) {
	if len(paths) == 0 {
		return model.Summary{}, model.ErrNoPaths
	}

	logger := zerolog.Ctx(ctx)

	files, failures := CollectFiles(ctx, paths)
	logger.Debug().Int("files", len(files)).Int("workers", s.workers).Msg("collected candidate files")

	engine := aggregate.NewEngine(s.registry, s.reader)

	var mu sync.Mutex
	addFailure := func(path string, err error) {
		mu.Lock()
		failures = append(failures, model.NewScanError(path, err))
		mu.Unlock()
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.workers)

	for _, file := range files {
		if groupCtx.Err() != nil {
			break
		}

		group.Go(func() error {
			result, ok, err := engine.Process(file)
			switch {
			case err != nil:
				logger.Error().Err(err).Str("path", file).Msg("failed to count file")
				addFailure(file, err)
			case !ok:
				logger.Trace().Str("path", file).Msg("skip unclassified file")
			default:
				logger.Debug().
					Str("path", file).
					Str("language", result.Language).
					Int64("lines", result.Stats.Lines).
					Msg("counted file")
			}
			return nil
		})
	}

	_ = group.Wait()

	summary := engine.Summary()
	summary.Errors = sortFailures(failures)

	if err := ctx.Err(); err != nil {
		return summary, err
	}
	return summary, nil
}

func sortFailures(failures []model.ScanError) []model.ScanError {
	if failures == nil {
		return make([]model.ScanError, 0)
	}
	sort.SliceStable(failures, func(i int, j int) bool {
		return failures[i].Path < failures[j].Path
	})
	return failures
}
