package cmd

import (
	"github.com/spf13/cobra"

	"loccount/internal/languages"
	"loccount/internal/report"
)

// runLanguages 展示当前已经注册的语言以及对应文件后缀。
func runLanguages(cmd *cobra.Command, registry *languages.Registry) error {
	return report.PrintLanguages(cmd.OutOrStdout(), registry.Languages(), 0)
}
