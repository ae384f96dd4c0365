package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"loccount/internal/config"
	"loccount/internal/languages"
	"loccount/internal/logging"
	"loccount/internal/model"
	"loccount/internal/report"
	"loccount/internal/scanner"
)

// addScanFlags 注册扫描相关参数，参数值最终经由 config.Load 与环境变量合并。
func addScanFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("workers", "w", 0, "并发 worker 数量，默认等于 CPU 核数")
	cmd.Flags().String("log-level", "", "日志级别: trace, debug, info, warn, error")
	cmd.Flags().BoolP("verbose", "V", false, "输出更详细的日志")
	cmd.Flags().BoolP("quiet", "q", false, "关闭全部日志输出")
}

// runScan 加载配置、初始化日志并执行扫描，最后输出表格。
// 存在失败项时仍然输出已统计的结果，再返回 ErrScanIncomplete。
func runScan(cmd *cobra.Command, registry *languages.Registry, paths []string) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}

	logger, closer := logging.New(cfg, cmd.ErrOrStderr())
	defer closer.Close()
	ctx := logger.WithContext(cmd.Context())

	logger.Debug().Strs("paths", paths).Int("workers", cfg.Scan.Workers).Msg("start scan")

	service := scanner.NewService(registry, cfg.Scan.Workers)
	summary, err := service.ScanPaths(ctx, paths)
	if err != nil {
		return err
	}

	if err := report.PrintTable(cmd.OutOrStdout(), summary); err != nil {
		return fmt.Errorf("print report: %w", err)
	}

	if summary.Failed() {
		return fmt.Errorf("%w: %d path(s) failed", model.ErrScanIncomplete, len(summary.Errors))
	}
	return nil
}
