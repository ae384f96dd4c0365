package scanner

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"loccount/internal/model"
)

var errNotRegular = errors.New("not a regular file or directory")

// CollectFiles 把命令行给定的路径展开成扁平的文件列表。
//
// - 普通文件路径原样加入列表（同一文件出现多次就会被统计多次）
// - 目录使用 filepath.WalkDir 递归展开，不跟随符号链接，只收集普通文件
// - 不存在的路径、非普通文件参数、无法读取的子目录记录为 PathError，其余路径继续处理
func CollectFiles(ctx context.Context, paths []string) ([]string, []model.ScanError) {
	logger := zerolog.Ctx(ctx)

	files := make([]string, 0, 256)
	var failures []model.ScanError

	record := func(path string, err error) {
		pathErr := &model.PathError{Path: path, Err: err}
		logger.Error().Err(err).Str("path", path).Msg("failed to access path")
		failures = append(failures, model.NewScanError(path, pathErr))
	}

	for _, raw := range paths {
		if ctx.Err() != nil {
			break
		}

		if strings.TrimSpace(raw) == "" {
			record(raw, fs.ErrInvalid)
			continue
		}
		target := raw

		info, err := os.Stat(target)
		if err != nil {
			record(target, err)
			continue
		}

		if !info.IsDir() {
			// FIFO、设备等读取时可能一直阻塞，不予统计。
			if !info.Mode().IsRegular() {
				record(target, errNotRegular)
				continue
			}
			files = append(files, target)
			continue
		}

		walkErr := filepath.WalkDir(target, func(path string, entry fs.DirEntry, walkErr error) error {
			if ctx.Err() != nil {
				return ctx.Err()
			}

			if walkErr != nil {
				record(path, walkErr)
				// 目录读取失败时跳过其内容，继续遍历兄弟目录。
				if entry != nil && entry.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if entry.IsDir() || !entry.Type().IsRegular() {
				return nil
			}

			files = append(files, path)
			return nil
		})
		if walkErr != nil && ctx.Err() == nil {
			record(target, walkErr)
		}
	}

	return files, failures
}
