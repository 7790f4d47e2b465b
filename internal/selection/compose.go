package selection

import (
	"time"

	"github.com/alexanderramin/slotboard/internal/domain"
	"github.com/alexanderramin/slotboard/internal/repository"
	"github.com/alexanderramin/slotboard/internal/route"
	"github.com/alexanderramin/slotboard/internal/viewstate"
)

// Screen is everything on screen for one route: the active slots and the
// view model filling each of them. Exactly one of the page fields is set,
// plus Photo when a photo is shown.
type Screen struct {
	Path         string             `json:"path"`
	Kind         route.Kind         `json:"kind"`
	Load         string             `json:"load"`
	Role         domain.Role        `json:"role"`
	Slots        []route.Slot       `json:"slots"`
	Presentation route.Presentation `json:"presentation,omitempty"`

	Everything *EverythingScreen `json:"everything,omitempty"`
	Domain     *DomainScreen     `json:"domain,omitempty"`
	Project    *ProjectScreen    `json:"project,omitempty"`
	Team       *TeamScreen       `json:"team,omitempty"`
	Gallery    *GalleryScreen    `json:"gallery,omitempty"`
	Photo      *PhotoDetail      `json:"photo,omitempty"`
	Dashboard  *DashboardScreen  `json:"dashboard,omitempty"`
	Admin      *AdminScreen      `json:"admin,omitempty"`
}

// Composer builds screens from the shared stores.
type Composer struct {
	org    repository.OrgRepo
	photos repository.PhotoRepo
	now    func() time.Time
}

func NewComposer(org repository.OrgRepo, photos repository.PhotoRepo) *Composer {
	return &Composer{org: org, photos: photos, now: time.Now}
}

// WithClock replaces the time source used for membership durations.
func (c *Composer) WithClock(now func() time.Time) *Composer {
	c.now = now
	return c
}

// Compose fills every active slot of r for the selection in st. Unknown
// entity ids produce NotFound view models rather than errors.
func (c *Composer) Compose(st viewstate.State, r route.Route) Screen {
	role := st.Role()
	scr := Screen{
		Path:         r.Path,
		Kind:         r.Kind,
		Load:         r.Load.String(),
		Role:         role,
		Slots:        r.Slots,
		Presentation: r.Presentation,
	}
	switch r.Kind {
	case route.KindEverything:
		var stats domain.BusinessStats
		if st.Business != nil {
			stats = c.org.BusinessStats(st.Business.ID)
		}
		e := BuildEverythingScreen(role, st.Business, stats)
		scr.Everything = &e
	case route.KindDomain:
		d, _ := c.org.GetDomainByID(r.EntityID)
		s := BuildDomainScreen(role, d, r.EntityID, r.Tab)
		scr.Domain = &s
	case route.KindProject:
		p, _ := c.org.GetProjectByID(r.EntityID)
		var d *domain.Domain
		if p != nil {
			d, _ = c.org.GetDomainByID(p.DomainID)
		}
		s := BuildProjectScreen(role, p, d, r.EntityID, r.Tab)
		scr.Project = &s
	case route.KindTeam:
		t, _ := c.org.GetTeamByID(r.EntityID)
		var d *domain.Domain
		if t != nil {
			d, _ = c.org.GetDomainByID(t.DomainID)
		}
		s := BuildTeamScreen(role, t, d, r.EntityID, c.now())
		scr.Team = &s
	case route.KindGallery:
		g := BuildGallery(c.photos.ListPhotos())
		scr.Gallery = &g
	case route.KindPhoto:
		if r.Has(route.SlotOverlay) {
			g := BuildGallery(c.photos.ListPhotos())
			scr.Gallery = &g
		}
		photo, fellBack := c.photos.GetPhoto(r.EntityID)
		d := BuildPhotoDetail(photo, r.EntityID, fellBack, r.Presentation)
		scr.Photo = &d
	case route.KindDashboard:
		d := BuildDashboard(r)
		scr.Dashboard = &d
	case route.KindAdmin:
		a := BuildAdmin(role)
		scr.Admin = &a
		scr.Slots = append(append([]route.Slot(nil), r.Slots...), a.Active)
	}
	return scr
}
