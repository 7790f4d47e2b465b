package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/slotboard/internal/domain"
	"github.com/alexanderramin/slotboard/internal/selection"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// ToneStyle maps a selection tone to its color.
func ToneStyle(t selection.Tone) lipgloss.Style {
	switch t {
	case selection.TonePositive:
		return StyleGreen
	case selection.ToneWarning:
		return StyleYellow
	case selection.ToneNegative:
		return StyleRed
	default:
		return StyleFg
	}
}

// Toned renders text in the color of tone t.
func Toned(t selection.Tone, text string) string {
	return ToneStyle(t).Render(text)
}

// StatusPill returns a colored indicator for a project status.
func StatusPill(status domain.ProjectStatus) string {
	switch status {
	case domain.ProjectActive:
		return StyleGreen.Render("● Active")
	case domain.ProjectPlanning:
		return StyleBlue.Render("○ Planning")
	case domain.ProjectOnHold:
		return StyleYellow.Render("◐ On Hold")
	case domain.ProjectCompleted:
		return StyleDim.Render("✔ Completed")
	case domain.ProjectCancelled:
		return StyleDim.Render("✖ Cancelled")
	default:
		return StyleDim.Render(string(status))
	}
}

// TaskStatusPill returns a colored indicator for a sprint task.
func TaskStatusPill(status domain.TaskStatus) string {
	switch status {
	case domain.TaskDone:
		return StyleDim.Render("✔ Done")
	case domain.TaskInProgress:
		return StyleGreen.Render("● In Progress")
	case domain.TaskInReview:
		return StylePurple.Render("◆ In Review")
	case domain.TaskBlocked:
		return StyleRed.Render("▲ Blocked")
	default:
		return StyleBlue.Render("○ Todo")
	}
}

// SeverityIndicator returns a colored marker such as "● CRITICAL".
func SeverityIndicator(s domain.Severity, tone selection.Tone) string {
	return Toned(tone, "● "+strings.ToUpper(string(s)))
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len([]rune(upper)))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
