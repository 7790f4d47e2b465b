package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewID identifies each type of view in the TUI.
type ViewID int

const (
	ViewEverything ViewID = iota
	ViewDomain
	ViewProject
	ViewTeam
	ViewGallery
	ViewPhoto
	ViewDashboard
	ViewAdmin
	ViewForm
)

// View is the interface that all TUI views must implement.
// It extends tea.Model with navigation and help metadata.
type View interface {
	tea.Model
	ID() ViewID
	ShortHelp() []key.Binding // key hints shown in the bottom bar
	Title() string            // breadcrumb segment for this view
	Path() string             // route the view renders, "" for forms
}

// overlayView is implemented by views drawn over the view beneath them.
type overlayView interface {
	IsOverlay() bool
}

// inputCapturer is implemented by views that sometimes need every key,
// including the global ones.
type inputCapturer interface {
	CapturesInput() bool
}

// escHandler is implemented by views that handle Esc themselves instead of
// letting the app pop them.
type escHandler interface {
	HandlesEsc() bool
}
