package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/slotboard/internal/domain"
)

func TestResolve_Everything(t *testing.T) {
	for _, p := range []string{"/", "", "/everything", "/app/everything", "/everything/"} {
		r, err := Resolve(p, SoftLoad)
		require.NoError(t, err, p)
		assert.Equal(t, KindEverything, r.Kind, p)
		assert.Equal(t, []Slot{SlotMain}, r.Slots, p)
	}
}

func TestResolve_DomainTabs(t *testing.T) {
	r, err := Resolve("/domain/domain1/overview", SoftLoad)
	require.NoError(t, err)
	assert.Equal(t, KindDomain, r.Kind)
	assert.Equal(t, "domain1", r.EntityID)
	assert.Equal(t, TabOverview, r.Tab)

	r, err = Resolve("/domain/domain2/commercials", HardLoad)
	require.NoError(t, err)
	assert.Equal(t, TabCommercials, r.Tab)

	r, err = Resolve("/domain/domain3", SoftLoad)
	require.NoError(t, err)
	assert.Equal(t, TabOverview, r.Tab)

	_, err = Resolve("/domain/domain1/settings", SoftLoad)
	assert.ErrorIs(t, err, domain.ErrUnknownRoute)
}

func TestResolve_ProjectAndTeam(t *testing.T) {
	r, err := Resolve("/project/proj4", SoftLoad)
	require.NoError(t, err)
	assert.Equal(t, KindProject, r.Kind)
	assert.Equal(t, "proj4", r.EntityID)
	assert.True(t, r.Has(SlotDetail))

	assert.Equal(t, TabOverview, r.Tab)

	r, err = Resolve("/project/proj4/financials", SoftLoad)
	require.NoError(t, err)
	assert.Equal(t, TabFinancials, r.Tab)

	_, err = Resolve("/project/proj4/risks", SoftLoad)
	assert.ErrorIs(t, err, domain.ErrUnknownRoute)

	r, err = Resolve("/team/team2?tab=x", SoftLoad)
	require.NoError(t, err)
	assert.Equal(t, KindTeam, r.Kind)
	assert.Equal(t, "team2", r.EntityID)
}

func TestResolve_PhotoAlwaysOverlay(t *testing.T) {
	for _, load := range []Load{SoftLoad, HardLoad} {
		r, err := Resolve("/photo/3", load)
		require.NoError(t, err)
		assert.Equal(t, KindPhoto, r.Kind, load)
		assert.Equal(t, "3", r.EntityID, load)
		assert.True(t, r.IsOverlay(), load)
		assert.Equal(t, []Slot{SlotMain, SlotOverlay}, r.Slots, "gallery must sit under the overlay on %s load", load)
	}
}

func TestResolve_GalleryPhotoIntercepted(t *testing.T) {
	soft, err := Resolve("/gallery/photo/5", SoftLoad)
	require.NoError(t, err)
	assert.Equal(t, PresentationOverlay, soft.Presentation)
	assert.True(t, soft.Has(SlotOverlay))

	hard, err := Resolve("/gallery/photo/5", HardLoad)
	require.NoError(t, err)
	assert.Equal(t, PresentationFullPage, hard.Presentation)
	assert.False(t, hard.Has(SlotOverlay))
}

func TestResolve_DashboardDefaultsOnHardLoad(t *testing.T) {
	r, err := Resolve("/dashboard", HardLoad)
	require.NoError(t, err)
	assert.Equal(t, []Slot{SlotMain, SlotTeam, SlotAnalytics}, r.Slots)
	assert.Empty(t, r.Fallback)

	r, err = Resolve("/dashboard/visitors", SoftLoad)
	require.NoError(t, err)
	assert.Equal(t, TabVisitors, r.Tab)
	assert.Empty(t, r.Fallback)

	r, err = Resolve("/dashboard/page-views", HardLoad)
	require.NoError(t, err)
	assert.Equal(t, TabPageViews, r.Tab)
	assert.True(t, r.Fallback[SlotMain])
	assert.True(t, r.Fallback[SlotTeam])
	assert.False(t, r.Fallback[SlotAnalytics])

	_, err = Resolve("/dashboard/revenue", SoftLoad)
	assert.ErrorIs(t, err, domain.ErrUnknownRoute)
}

func TestResolve_Unknown(t *testing.T) {
	for _, p := range []string{"/nope", "/project", "/project/a/b/c", "/photo", "/gallery/x", "/admin/x"} {
		_, err := Resolve(p, SoftLoad)
		assert.ErrorIs(t, err, domain.ErrUnknownRoute, p)
	}
}

func TestAdminSlot(t *testing.T) {
	assert.Equal(t, SlotAdmin, AdminSlot(domain.RoleCEO))
	assert.Equal(t, SlotAdmin, AdminSlot(domain.RoleDomainHead))
	assert.Equal(t, SlotUser, AdminSlot(domain.RoleProjectManager))
	assert.Equal(t, SlotUser, AdminSlot(domain.RoleDeveloper))
}

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"":                  "/",
		"/":                 "/",
		"gallery":           "/gallery",
		" /gallery/ ":       "/gallery",
		"/app":              "/",
		"/app/photo/1":      "/photo/1",
		"/apple":            "/apple",
		"/team/team1?x=1#y": "/team/team1",
	}
	for in, want := range cases {
		assert.Equal(t, want, Normalize(in), in)
	}
}

func TestPaths(t *testing.T) {
	assert.Equal(t, "/domain/domain1/overview", DomainPath("domain1", TabOverview))
	assert.Equal(t, "/domain/domain1/commercials", DomainPath("domain1", TabCommercials))
	assert.Equal(t, "/photo/2", PhotoPath("2"))
	assert.Equal(t, "/project/proj1", ProjectPath("proj1", TabOverview))
	assert.Equal(t, "/project/proj1/financials", ProjectPath("proj1", TabFinancials))
	assert.Equal(t, "/gallery", CloseOverlayPath)
}

func TestParseLoad(t *testing.T) {
	l, err := ParseLoad("HARD")
	require.NoError(t, err)
	assert.Equal(t, HardLoad, l)

	l, err = ParseLoad("")
	require.NoError(t, err)
	assert.Equal(t, SoftLoad, l)

	_, err = ParseLoad("warm")
	assert.Error(t, err)
}
