package service

import (
	"context"

	"github.com/alexanderramin/slotboard/internal/domain"
	"github.com/alexanderramin/slotboard/internal/route"
	"github.com/alexanderramin/slotboard/internal/selection"
	"github.com/alexanderramin/slotboard/internal/viewstate"
)

// NavigationService owns one interactive session: it resolves paths,
// applies the matching selection to the view-state store and composes the
// screen for the current route.
type NavigationService interface {
	Navigate(ctx context.Context, path string, load route.Load) (route.Route, error)
	SwitchRole(ctx context.Context, role domain.Role) error
	SwitchBusiness(ctx context.Context, id string) error
	RenamePhoto(ctx context.Context, id, title string) (bool, error)
	Compose(ctx context.Context, r route.Route) selection.Screen
	State() viewstate.State
	SessionID() string
}

type PhotoService interface {
	List(ctx context.Context) []domain.Photo
	Get(ctx context.Context, id string) (photo domain.Photo, fellBack bool)
	// Rename trims title and saves it when it is non-empty and differs from
	// the stored one. changed reports whether a write happened.
	Rename(ctx context.Context, id, title string) (photo domain.Photo, changed bool, err error)
}

// ScreenRequest asks for a screen without session state.
type ScreenRequest struct {
	Path       string
	Role       domain.Role
	BusinessID string
	Load       route.Load
}

type ScreenService interface {
	Screen(ctx context.Context, req ScreenRequest) (selection.Screen, error)
}
