package formatter

import (
	"strings"

	"github.com/alexanderramin/slotboard/internal/selection"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	return renderBox(ColorDim, title, content)
}

// RenderOverlayBox is RenderBox with the accent border used for overlays.
func RenderOverlayBox(title string, content string) string {
	return renderBox(ColorHeader, title, content)
}

func renderBox(border lipgloss.Color, title, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// RenderTabs renders a tab group with the active tab highlighted:
// "[ Overview ]  Commercials".
func RenderTabs(tabs []selection.TabLink) string {
	parts := make([]string, 0, len(tabs))
	for _, t := range tabs {
		if t.Active {
			parts = append(parts, StyleHeader.Render("[ "+t.Label+" ]"))
		} else {
			parts = append(parts, Dim("  "+t.Label+"  "))
		}
	}
	return strings.Join(parts, " ")
}

const tileWidth = 24

// RenderTiles lays KPI tiles out side by side, wrapping to fit width. A
// width of 0 puts all tiles on one row.
func RenderTiles(tiles []selection.Tile, width int) string {
	if len(tiles) == 0 {
		return ""
	}
	perRow := len(tiles)
	if width > 0 {
		perRow = max(width/(tileWidth+2), 1)
	}

	cell := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Width(tileWidth).
		Padding(0, 1)

	var rows []string
	for start := 0; start < len(tiles); start += perRow {
		end := min(start+perRow, len(tiles))
		var cells []string
		for _, t := range tiles[start:end] {
			body := Dim(t.Label) + "\n" + ToneStyle(t.Tone).Bold(true).Render(t.Value)
			if t.Description != "" {
				body += "\n" + Dim(t.Description)
			}
			cells = append(cells, cell.Render(body))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

// RenderKeyValues renders aligned "key  value" lines.
func RenderKeyValues(kvs []selection.KeyValue) string {
	w := 0
	for _, kv := range kvs {
		w = max(w, lipgloss.Width(kv.Key))
	}
	var b strings.Builder
	for _, kv := range kvs {
		b.WriteString(Dim(kv.Key+strings.Repeat(" ", w-lipgloss.Width(kv.Key))) + "  " + kv.Value + "\n")
	}
	return b.String()
}

// RenderDenied renders the panel shown in place of financial figures.
func RenderDenied(d *selection.AccessDenied) string {
	var b strings.Builder
	b.WriteString(StyleYellow.Render("⚠ "+d.Heading) + "\n\n")
	b.WriteString(d.Message + "\n\n")
	b.WriteString(Dim("Roles with financial access:") + "\n")
	for _, g := range d.AuthorizedRoles {
		b.WriteString("  • " + g.Line() + "\n")
	}
	b.WriteString("\n" + Dim(d.Note))
	return RenderBox(d.Title, b.String())
}

// RenderNotFound renders the panel for a path naming a missing entity.
func RenderNotFound(n *selection.NotFound) string {
	return StyleRed.Render(n.Message) + Dim(" ("+n.Kind+" "+n.ID+")")
}

// Truncate shortens s to width runes, ending with "…" when cut.
func Truncate(s string, width int) string {
	r := []rune(s)
	if width <= 0 || len(r) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}
