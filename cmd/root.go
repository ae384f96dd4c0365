// Package cmd 提供 loccount 的命令行入口。
package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"loccount/internal/languages"
	"loccount/internal/model"
)

// Execute 组装根命令并执行。
// version 参数由 main 包注入，ctx 用于响应中断信号。
func Execute(ctx context.Context, version string) error {
	registry := languages.Default()
	rootCmd := newRootCmd(version, registry)
	return rootCmd.ExecuteContext(ctx)
}

// newRootCmd 创建根命令。
// 根命令不挂子命令，所有位置参数都按文件或目录路径处理，
// 版本号与语言清单通过 --version、--languages 查看。
// 示例：
//
//	loccount .
//	loccount README.md docs/ --workers 4
//	loccount --languages
func newRootCmd(version string, registry *languages.Registry) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "loccount <path>...",
		Short: "按语言统计文件的代码行、注释行与空行",
		Long: "loccount 递归扫描给定的文件或目录，按后缀识别语言，\n" +
			"统计 total/code/comment/blank 行数并输出按语言汇总的表格。",
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if listLanguages, _ := cmd.Flags().GetBool("languages"); listLanguages {
				return runLanguages(cmd, registry)
			}
			if len(args) == 0 {
				return model.ErrNoPaths
			}
			return runScan(cmd, registry, args)
		},
	}

	addScanFlags(rootCmd)
	rootCmd.Flags().Bool("languages", false, "展示已注册语言及后缀")

	return rootCmd
}
