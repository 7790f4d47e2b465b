package formatter

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/slotboard/internal/domain"
	"github.com/alexanderramin/slotboard/internal/selection"
)

// ansiPattern matches ANSI escape sequences so assertions are
// terminal-independent.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestStatusPill(t *testing.T) {
	tests := []struct {
		status   domain.ProjectStatus
		contains string
	}{
		{domain.ProjectActive, "Active"},
		{domain.ProjectPlanning, "Planning"},
		{domain.ProjectOnHold, "On Hold"},
		{domain.ProjectCompleted, "Completed"},
		{domain.ProjectCancelled, "Cancelled"},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Contains(t, StatusPill(tt.status), tt.contains)
		})
	}
}

func TestRenderTabs(t *testing.T) {
	got := stripANSI(RenderTabs([]selection.TabLink{
		{Label: "Overview", Active: true},
		{Label: "Commercials"},
	}))
	assert.Contains(t, got, "[ Overview ]")
	assert.Contains(t, got, "Commercials")
	assert.NotContains(t, got, "[ Commercials ]")
}

func TestRenderTiles_Wraps(t *testing.T) {
	tiles := []selection.Tile{
		{Label: "Total Revenue", Value: "$1,330,000"},
		{Label: "Total Cost", Value: "$788,000"},
		{Label: "Net Profit", Value: "$542,000", Tone: selection.TonePositive},
	}
	oneRow := stripANSI(RenderTiles(tiles, 0))
	narrow := stripANSI(RenderTiles(tiles, 30))

	assert.Contains(t, oneRow, "$542,000")
	assert.Greater(t, len(splitLines(narrow)), len(splitLines(oneRow)))
	assert.Empty(t, RenderTiles(nil, 80))
}

func TestRenderKeyValues_Aligns(t *testing.T) {
	got := stripANSI(RenderKeyValues([]selection.KeyValue{
		{Key: "ID", Value: "3"},
		{Key: "Resolution", Value: "4K"},
	}))
	assert.Equal(t, "ID          3\nResolution  4K\n", got)
}

func TestRenderTable_RightAlign(t *testing.T) {
	got := stripANSI(RenderTable([]string{"Name", "Budget"}, [][]string{
		{"Alpha", "$5"},
		{"Beta", "$1,000"},
	}, 1))
	lines := splitLines(got)
	assert.Equal(t, "Name   Budget", lines[0])
	assert.Equal(t, "Alpha      $5", lines[2])
	assert.Equal(t, "Beta   $1,000", lines[3])
	assert.Empty(t, RenderTable(nil, nil))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "Implem…", Truncate("Implement user authentication", 7))
	assert.Equal(t, "…", Truncate("abc", 1))
	assert.Equal(t, "abc", Truncate("abc", 0))
}

func splitLines(s string) []string {
	var out []string
	start := 0
	for i, r := range s {
		if r == '\n' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		out = append(out, s[start:])
	}
	return out
}
