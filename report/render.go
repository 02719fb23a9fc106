package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/katalvlaran/contactnet/centrality"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			Foreground(lipgloss.Color("99"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("243")).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().Padding(0, 1)

	barStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
)

// BarWidth is the length of the longest histogram bar.
const BarWidth = 40

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}

// RenderTopK renders rows, already ranked by m, as a numbered table with
// the node's household or class next to its score.
func RenderTopK(m centrality.Metric, rows []centrality.Row) string {
	t := newTable("#", "id", "group", m.String())
	for i, r := range rows {
		group := r.Attrs.Household
		if group == "" {
			group = r.Attrs.Class
		}
		t.Row(strconv.Itoa(i+1), r.ID, group, formatScore(m, r))
	}
	return titleStyle.Render(fmt.Sprintf("Top %d by %s", len(rows), m)) + "\n" + t.String()
}

// RenderSummary renders named summaries as one table, in the given order.
func RenderSummary(names []string, sums []Summary) string {
	t := newTable("metric", "n", "mean", "min", "max", "cv")
	for i, s := range sums {
		name := ""
		if i < len(names) {
			name = names[i]
		}
		t.Row(name, strconv.Itoa(s.Count), fixed(s.Mean), fixed(s.Min), fixed(s.Max), fixed(s.CV))
	}
	return t.String()
}

// RenderHistogram draws one text bar per bin, scaled so the fullest bin
// spans BarWidth cells.
func RenderHistogram(title string, h Histogram) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteByte('\n')
	peak := h.MaxCount()
	for _, bin := range h.Bins {
		n := 0
		if peak > 0 {
			n = bin.Count * BarWidth / peak
		}
		if n == 0 && bin.Count > 0 {
			n = 1
		}
		fmt.Fprintf(&b, "[%8.2f, %8.2f) %5d %s\n",
			bin.Low, bin.High, bin.Count, barStyle.Render(strings.Repeat("█", n)))
	}
	return b.String()
}

func formatScore(m centrality.Metric, r centrality.Row) string {
	switch m {
	case centrality.Degree:
		return strconv.Itoa(r.Degree)
	case centrality.Strength:
		return r.Strength.String()
	default:
		return strconv.FormatFloat(r.Value(m), 'f', 6, 64)
	}
}

func fixed(v float64) string { return strconv.FormatFloat(v, 'f', 4, 64) }
