package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const colGap = 2

// RenderTable renders an aligned table with a dim separator under the
// header row. Column widths are the max visible width per column; cells
// may carry ANSI styling, so widths are measured with lipgloss.Width.
// The last column is never padded.
func RenderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}
	cols := len(headers)

	widths := make([]int, cols)
	measure := func(row []string) {
		for i := 0; i < cols && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}
	measure(headers)
	for _, row := range rows {
		measure(row)
	}

	var b strings.Builder

	for i, h := range headers {
		writeCell(&b, StyleHeader.Render(h), lipgloss.Width(h), widths[i], i == cols-1)
	}
	b.WriteString("\n")

	for i, w := range widths {
		writeCell(&b, StyleDim.Render(strings.Repeat("─", w)), w, w, i == cols-1)
	}
	b.WriteString("\n")

	for _, row := range rows {
		for i := 0; i < cols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			writeCell(&b, cell, lipgloss.Width(cell), widths[i], i == cols-1)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func writeCell(b *strings.Builder, rendered string, visible, width int, last bool) {
	b.WriteString(rendered)
	if last {
		return
	}
	pad := width - visible
	if pad < 0 {
		pad = 0
	}
	b.WriteString(strings.Repeat(" ", pad+colGap))
}
