// Package report 提供 loccount 的输出能力。
// 统计结果只输出纯文本表格；语言清单使用 lipgloss 表格展示。
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"loccount/internal/model"
)

// PrintTable 使用纯文本表格展示汇总结果。
// 表头只输出一次，语言按名称排序，最后输出文件总数；存在失败项时追加错误列表。
func PrintTable(writer io.Writer, summary model.Summary) error {
	tw := tabwriter.NewWriter(writer, 0, 4, 2, ' ', 0)

	if _, err := fmt.Fprintln(tw, "LANGUAGE\tFILES\tCODE\tCOMMENTS\tBLANKS\tTOTAL LINES"); err != nil {
		return err
	}
	for _, item := range summary.Languages {
		if _, err := fmt.Fprintf(
			tw,
			"%s:\t%d\t%d\t%d\t%d\t%d\n",
			item.Language,
			item.Files,
			item.Stats.Code,
			item.Stats.Comments,
			item.Stats.Blanks,
			item.Stats.Lines,
		); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(tw, "TOTAL FILES:\t%d\n", summary.TotalFiles); err != nil {
		return err
	}

	if len(summary.Errors) > 0 {
		if _, err := fmt.Fprintln(tw, "\nERROR FILE\tMESSAGE"); err != nil {
			return err
		}
		for _, item := range summary.Errors {
			if _, err := fmt.Fprintf(tw, "%s\t%s\n", item.Path, item.Error); err != nil {
				return err
			}
		}
	}

	return tw.Flush()
}
