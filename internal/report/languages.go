package report

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	xterm "github.com/charmbracelet/x/term"

	"loccount/internal/languages"
)

const (
	colorHeader = lipgloss.Color("252")
	colorBorder = lipgloss.Color("238")
)

// PrintLanguages 以表格形式展示已注册语言及后缀。
// width<=0 时自动探测终端宽度，失败则回退到 80。
func PrintLanguages(writer io.Writer, items []languages.LanguageDescriptor, width int) error {
	if width <= 0 {
		width = detectTerminalWidth(writer)
		if width <= 0 {
			width = 80
		}
	}

	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{item.Name, strings.Join(item.Extensions, ", ")})
	}

	re := lipgloss.NewRenderer(writer)
	baseStyle := re.NewStyle().Padding(0, 1)
	headerStyle := baseStyle.Foreground(colorHeader).Bold(true)

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(re.NewStyle().Foreground(colorBorder)).
		Headers("LANGUAGE", "EXTENSIONS").
		Width(width).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return baseStyle
		})

	_, err := fmt.Fprintln(writer, tbl)
	return err
}

// detectTerminalWidth 尝试从 writer 获取终端宽度，失败则返回 0。
func detectTerminalWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if cols, _, err := xterm.GetSize(f.Fd()); err == nil && cols > 0 {
			return cols
		}
	}
	if v := os.Getenv("COLUMNS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return 0
}
