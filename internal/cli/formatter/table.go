package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// colGap is the padding between table columns.
const colGap = 2

// RenderTable renders an aligned table with a header separator line.
// Columns are padded to the widest visible cell, so styled cells line up.
// Columns listed in right are right-aligned, which suits money columns.
func RenderTable(headers []string, rows [][]string, right ...int) string {
	if len(headers) == 0 {
		return ""
	}
	cols := len(headers)
	rightAlign := make([]bool, cols)
	for _, c := range right {
		if c >= 0 && c < cols {
			rightAlign[c] = true
		}
	}

	widths := make([]int, cols)
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < cols && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	writeRow := func(cells []string, style func(string) string) {
		var line strings.Builder
		for i := 0; i < cols; i++ {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			pad := max(widths[i]-lipgloss.Width(cell), 0)
			if style != nil {
				cell = style(cell)
			}
			if rightAlign[i] {
				line.WriteString(strings.Repeat(" ", pad) + cell)
			} else {
				line.WriteString(cell + strings.Repeat(" ", pad))
			}
			if i < cols-1 {
				line.WriteString(strings.Repeat(" ", colGap))
			}
		}
		b.WriteString(strings.TrimRight(line.String(), " "))
		b.WriteString("\n")
	}

	writeRow(headers, func(s string) string { return StyleHeader.Render(s) })

	seps := make([]string, cols)
	for i, w := range widths {
		seps[i] = StyleDim.Render(strings.Repeat("─", w))
	}
	b.WriteString(strings.Join(seps, strings.Repeat(" ", colGap)))
	b.WriteString("\n")

	for _, row := range rows {
		writeRow(row, nil)
	}
	return b.String()
}
