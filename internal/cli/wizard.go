package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/slotboard/internal/cli/formatter"
	"github.com/alexanderramin/slotboard/internal/domain"
	"github.com/alexanderramin/slotboard/internal/repository"
)

// slotboardHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func slotboardHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// wizardSelectRole creates a huh form to pick the role to view the board as.
// The current role is preselected.
func wizardSelectRole(current domain.Role, result *string) *huh.Form {
	roles := domain.AllRoles()
	options := make([]huh.Option[string], 0, len(roles))
	for _, r := range roles {
		label := r.DisplayName()
		if scope := domain.FinancialScope(r); scope != "" {
			label = fmt.Sprintf("%s (%s)", label, scope)
		}
		options = append(options, huh.NewOption(label, string(r)))
	}
	*result = string(current)

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("View as which role?").
				Options(options...).
				Value(result),
		),
	).WithTheme(slotboardHuhTheme()).WithShowHelp(false)
}

// wizardSelectBusiness creates a huh form to pick a business. It returns nil
// when there is nothing to choose between.
func wizardSelectBusiness(org repository.OrgRepo, current string, result *string) *huh.Form {
	businesses := org.ListBusinesses()
	if len(businesses) < 2 {
		return nil
	}
	options := make([]huh.Option[string], 0, len(businesses))
	for _, b := range businesses {
		options = append(options, huh.NewOption(fmt.Sprintf("%s (%s)", b.Name, b.ID), b.ID))
	}
	*result = current

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which Business?").
				Options(options...).
				Value(result),
		),
	).WithTheme(slotboardHuhTheme()).WithShowHelp(false)
}
