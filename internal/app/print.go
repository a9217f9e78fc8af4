package app

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"go.trai.ch/cram/internal/engine/view"
)

var (
	cellStyle   = lipgloss.NewStyle().PaddingRight(2)
	headerStyle = cellStyle.Bold(true)
	topicStyle  = lipgloss.NewStyle().Bold(true)
)

// printTable writes rows as aligned columns without borders.
func printTable(w io.Writer, headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...)
	_, _ = fmt.Fprintln(w, t.Render())
}

// printGrouped writes one table per topic, with topics in name order.
func printGrouped[T view.Topical](w io.Writer, items []T, headers []string, row func(T) []string) {
	for i, g := range view.GroupByTopic(items) {
		if i > 0 {
			_, _ = fmt.Fprintln(w)
		}
		_, _ = fmt.Fprintf(w, "%s (%d)\n", topicStyle.Render(g.Topic), len(g.Items))
		rows := make([][]string, 0, len(g.Items))
		for _, item := range g.Items {
			rows = append(rows, row(item))
		}
		printTable(w, headers, rows)
	}
}

// printEmpty explains an empty listing.
func printEmpty(w io.Writer, noun, term string) {
	if term != "" {
		_, _ = fmt.Fprintf(w, "No %s match %q.\n", noun, term)
		return
	}
	_, _ = fmt.Fprintf(w, "No %s yet.\n", noun)
}

// section writes a titled heading with a count.
func (a *App) section(title string, n int) {
	_, _ = fmt.Fprintf(a.out, "%s (%d)\n", topicStyle.Render(title), n)
}
