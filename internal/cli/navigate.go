package cli

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/slotboard/internal/route"
)

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// popViewMsg pops the current view off the navigation stack,
// returning to the previous view.
type popViewMsg struct{}

// navigateMsg asks the app to resolve path and show its view. replace swaps
// the top view instead of pushing, which is how tab switches work.
type navigateMsg struct {
	path    string
	load    route.Load
	replace bool
}

// reloadTopMsg hard-loads whatever the top view shows.
type reloadTopMsg struct{}

// refreshViewMsg asks every view on the stack to recompose its screen, after
// a role or business switch or a photo rename.
type refreshViewMsg struct{}

// cmdOutputMsg carries text output from a command execution
// to be displayed transiently in the current view.
type cmdOutputMsg struct {
	output string
}

// wizardCompleteMsg is sent when a wizard form completes or is cancelled.
// The appModel handles it atomically: pop the wizard view, then run nextCmd.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

// quitMsg signals the app to quit.
type quitMsg struct{}

// pushView returns a tea.Cmd that pushes a view onto the stack.
func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

// popView returns a tea.Cmd that pops the current view.
func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}

// navigate returns a tea.Cmd for in-app navigation to path.
func navigate(path string) tea.Cmd {
	return func() tea.Msg { return navigateMsg{path: path, load: route.SoftLoad} }
}

// switchTab returns a tea.Cmd that replaces the top view with path.
func switchTab(path string) tea.Cmd {
	return func() tea.Msg { return navigateMsg{path: path, load: route.SoftLoad, replace: true} }
}

// reload returns a tea.Cmd that loads path as if the page were refreshed.
func reload(path string) tea.Cmd {
	return func() tea.Msg { return navigateMsg{path: path, load: route.HardLoad} }
}

func refresh() tea.Msg { return refreshViewMsg{} }
