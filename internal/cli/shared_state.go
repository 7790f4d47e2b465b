package cli

import (
	"context"

	"github.com/alexanderramin/slotboard/internal/route"
	"github.com/alexanderramin/slotboard/internal/selection"
	"github.com/alexanderramin/slotboard/internal/service"
	"github.com/alexanderramin/slotboard/internal/viewstate"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Terminal dimensions
	Width  int
	Height int
}

// Nav is the session's navigation service.
func (s *SharedState) Nav() service.NavigationService {
	return s.App.Nav
}

// Selection returns the current view-state snapshot.
func (s *SharedState) Selection() viewstate.State {
	return s.App.Nav.State()
}

// Compose builds the screen for r under the current selection.
func (s *SharedState) Compose(r route.Route) selection.Screen {
	return s.App.Nav.Compose(context.Background(), r)
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator),
// status bar (2 lines: separator + hints), and command bar (1 line).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 5
	if h < 1 {
		return 1
	}
	return h
}
