// Package route maps navigation paths to the views that should be on screen:
// which entity is current, which slots are active, and whether a photo is
// shown as an overlay or a full page.
package route

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/slotboard/internal/domain"
)

// Load says how a path was reached. A soft load is in-app navigation with the
// previous views still mounted; a hard load is a direct or refreshed URL.
type Load int

const (
	SoftLoad Load = iota
	HardLoad
)

func (l Load) String() string {
	if l == HardLoad {
		return "hard"
	}
	return "soft"
}

// ParseLoad accepts "soft", "hard" or "".
func ParseLoad(s string) (Load, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "soft":
		return SoftLoad, nil
	case "hard":
		return HardLoad, nil
	}
	return SoftLoad, fmt.Errorf("load must be soft or hard, got %q", s)
}

type Kind string

const (
	KindEverything Kind = "everything"
	KindDomain     Kind = "domain"
	KindProject    Kind = "project"
	KindTeam       Kind = "team"
	KindGallery    Kind = "gallery"
	KindPhoto      Kind = "photo"
	KindAdmin      Kind = "admin"
	KindDashboard  Kind = "dashboard"
)

type Slot string

const (
	SlotMain      Slot = "main"
	SlotDetail    Slot = "detail"
	SlotOverlay   Slot = "overlay"
	SlotTeam      Slot = "team"
	SlotAnalytics Slot = "analytics"
	SlotAdmin     Slot = "admin"
	SlotUser      Slot = "user"
)

type Presentation string

const (
	PresentationNone     Presentation = ""
	PresentationOverlay  Presentation = "overlay"
	PresentationFullPage Presentation = "full-page"
)

type Tab string

const (
	TabNone        Tab = ""
	TabOverview    Tab = "overview"
	TabCommercials Tab = "commercials"
	TabFinancials  Tab = "financials"
	TabPageViews   Tab = "page-views"
	TabVisitors    Tab = "visitors"
)

// CloseOverlayPath is where every way of dismissing a photo overlay leads.
const CloseOverlayPath = "/gallery"

// Route is a resolved path.
type Route struct {
	Path     string
	Kind     Kind
	EntityID string
	Tab      Tab
	Load     Load
	// Slots lists the active slots, outermost first.
	Slots        []Slot
	Presentation Presentation
	// Fallback marks slots rendering their default content because the
	// path did not address them.
	Fallback map[Slot]bool
}

// Has reports whether slot is active.
func (r Route) Has(slot Slot) bool {
	for _, s := range r.Slots {
		if s == slot {
			return true
		}
	}
	return false
}

// IsOverlay reports whether the route draws a photo over the gallery.
func (r Route) IsOverlay() bool {
	return r.Presentation == PresentationOverlay
}

// Resolve maps path to a Route. Unknown paths return an error wrapping
// domain.ErrUnknownRoute. Entity ids are not checked here.
func Resolve(path string, load Load) (Route, error) {
	clean := Normalize(path)
	segs := strings.Split(strings.Trim(clean, "/"), "/")
	if clean == "/" {
		segs = nil
	}
	r := Route{Path: clean, Load: load}

	switch {
	case len(segs) == 0 || (len(segs) == 1 && segs[0] == "everything"):
		r.Kind = KindEverything
		r.Slots = []Slot{SlotMain}

	case segs[0] == "domain" && len(segs) >= 2 && len(segs) <= 3:
		r.Kind = KindDomain
		r.EntityID = segs[1]
		r.Tab = TabOverview
		if len(segs) == 3 {
			switch segs[2] {
			case "overview":
			case "commercials":
				r.Tab = TabCommercials
			default:
				return Route{}, unknown(path)
			}
		}
		r.Slots = []Slot{SlotMain, SlotDetail}

	case segs[0] == "project" && len(segs) >= 2 && len(segs) <= 3:
		r.Kind = KindProject
		r.EntityID = segs[1]
		r.Tab = TabOverview
		if len(segs) == 3 {
			switch segs[2] {
			case "overview":
			case "financials":
				r.Tab = TabFinancials
			default:
				return Route{}, unknown(path)
			}
		}
		r.Slots = []Slot{SlotMain, SlotDetail}

	case segs[0] == "team" && len(segs) == 2:
		r.Kind = KindTeam
		r.EntityID = segs[1]
		r.Slots = []Slot{SlotMain, SlotDetail}

	case segs[0] == "gallery" && len(segs) == 1:
		r.Kind = KindGallery
		r.Slots = []Slot{SlotMain}

	// /photo/{id} always keeps the gallery underneath; on a hard load the
	// gallery is built fresh behind the overlay.
	case segs[0] == "photo" && len(segs) == 2:
		r.Kind = KindPhoto
		r.EntityID = segs[1]
		r.Presentation = PresentationOverlay
		r.Slots = []Slot{SlotMain, SlotOverlay}

	// /gallery/photo/{id} is intercepted on soft loads only; a hard load
	// shows the photo on its own.
	case segs[0] == "gallery" && len(segs) == 3 && segs[1] == "photo":
		r.Kind = KindPhoto
		r.EntityID = segs[2]
		if load == SoftLoad {
			r.Presentation = PresentationOverlay
			r.Slots = []Slot{SlotMain, SlotOverlay}
		} else {
			r.Presentation = PresentationFullPage
			r.Slots = []Slot{SlotMain}
		}

	case segs[0] == "admin" && len(segs) == 1:
		r.Kind = KindAdmin
		// The admin/user choice depends on the role; see AdminSlot.
		r.Slots = []Slot{SlotMain}

	case segs[0] == "dashboard" && len(segs) <= 2:
		r.Kind = KindDashboard
		r.Slots = []Slot{SlotMain, SlotTeam, SlotAnalytics}
		if len(segs) == 1 {
			break
		}
		switch Tab(segs[1]) {
		case TabPageViews, TabVisitors:
			r.Tab = Tab(segs[1])
		default:
			return Route{}, unknown(path)
		}
		// A refreshed sub-route cannot recover what the main and team
		// slots were showing, so they render their defaults.
		if load == HardLoad {
			r.Fallback = map[Slot]bool{SlotMain: true, SlotTeam: true}
		}

	default:
		return Route{}, unknown(path)
	}
	return r, nil
}

// AdminSlot picks the conditional slot shown on /admin for role.
func AdminSlot(role domain.Role) Slot {
	if domain.AccessRightsFor(role).CanManageDomain {
		return SlotAdmin
	}
	return SlotUser
}

// Normalize strips whitespace, any query or fragment, an /app prefix and
// trailing slashes. Case is preserved.
func Normalize(path string) string {
	p := strings.TrimSpace(path)
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if p == "/app" || strings.HasPrefix(p, "/app/") {
		p = strings.TrimPrefix(p, "/app")
	}
	p = strings.TrimRight(p, "/")
	if p == "" {
		return "/"
	}
	return p
}

// Paths for building links.

func DomainPath(id string, tab Tab) string {
	if tab == TabCommercials {
		return "/domain/" + id + "/commercials"
	}
	return "/domain/" + id + "/overview"
}

func ProjectPath(id string, tab Tab) string {
	if tab == TabFinancials {
		return "/project/" + id + "/financials"
	}
	return "/project/" + id
}

func TeamPath(id string) string  { return "/team/" + id }
func PhotoPath(id string) string { return "/photo/" + id }

func unknown(path string) error {
	return fmt.Errorf("%w: %q", domain.ErrUnknownRoute, path)
}
