package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/slotboard/internal/domain"
	"github.com/alexanderramin/slotboard/internal/route"
	"github.com/alexanderramin/slotboard/internal/selection"
)

func TestFormatDomain_DeniedPanel(t *testing.T) {
	scr := selection.DomainScreen{
		ID:   "domain1",
		Name: "Logistics & Supply Chain",
		Role: domain.RoleDeveloper,
		Tabs: []selection.TabLink{
			{Label: "Overview", Path: "/domain/domain1/overview"},
			{Label: "Commercials", Path: "/domain/domain1/commercials", Active: true},
		},
		Denied: selection.FinancialsDenied("Logistics & Supply Chain - Commercials", domain.RoleDeveloper),
	}

	got := stripANSI(FormatDomain(scr, 100, NoCursor))
	assert.Contains(t, got, "Limited Access")
	assert.Contains(t, got, "Domain Head - Domain-level financial access")
	assert.Contains(t, got, "Your current role (Developer)")
	assert.NotContains(t, got, "$")
}

func TestFormatDomain_Commercials(t *testing.T) {
	scr := selection.DomainScreen{
		Name: "Logistics & Supply Chain",
		Commercials: &selection.DomainCommercials{
			Tiles:   []selection.Tile{{Label: "Total Revenue", Value: "$1,330,000"}},
			Warning: "Profit margin is below 20%.",
			Breakdown: []selection.ProjectFinancialRow{
				{Name: "Logistics Optimizer", Budget: "$500,000", Spent: "$320,000", Revenue: "$0", Profit: "-$320,000", Margin: "N/A", Utilization: 64},
			},
			Revenue:         []selection.KeyValue{{Key: "Project Revenue", Value: "$1,330,000"}},
			Costs:           []selection.KeyValue{{Key: "Team Size", Value: "8 members"}},
			Utilization:     64,
			UtilizationNote: "Good utilization. Some room for improvement in resource allocation.",
		},
	}
	got := stripANSI(FormatDomain(scr, 0, NoCursor))
	assert.Contains(t, got, "Project Financial Breakdown")
	assert.Contains(t, got, "-$320,000")
	assert.Contains(t, got, "⚠ Profit margin is below 20%.")
	assert.Contains(t, got, "Team Size")
	assert.Contains(t, got, "Good utilization. Some room for improvement")
}

func TestFormatProject_NotFound(t *testing.T) {
	got := stripANSI(FormatProject(selection.ProjectScreen{
		NotFound: &selection.NotFound{Kind: "project", ID: "proj99", Message: "Project not found"},
	}, 80))
	assert.Equal(t, "Project not found (project proj99)\n", got)
}

func TestFormatPhoto_Presentation(t *testing.T) {
	p := domain.Photo{ID: "3", Title: "Forest Path", ColorToken: "from-green-400 to-emerald-600"}

	overlay := stripANSI(FormatPhoto(selection.BuildPhotoDetail(p, "3", false, route.PresentationOverlay), ""))
	assert.Contains(t, overlay, "Forest Path")
	assert.Contains(t, overlay, "Close returns to /gallery")

	page := stripANSI(FormatPhoto(selection.BuildPhotoDetail(p, "3", false, route.PresentationFullPage), ""))
	assert.NotContains(t, page, "Close returns to")

	fallback := stripANSI(FormatPhoto(selection.BuildPhotoDetail(p, "42", true, route.PresentationOverlay), ""))
	assert.Contains(t, fallback, `Photo "42" not found; showing photo #3.`)

	editing := stripANSI(FormatPhoto(selection.BuildPhotoDetail(p, "3", false, route.PresentationOverlay), "> New Tit"))
	assert.Contains(t, editing, "Title: > New Tit")
}

func TestFormatScreen_OverlayKeepsGallery(t *testing.T) {
	photos := []domain.Photo{
		{ID: "1", Title: "Mountain Sunrise"},
		{ID: "3", Title: "Forest Path"},
	}
	g := selection.BuildGallery(photos)
	d := selection.BuildPhotoDetail(photos[1], "3", false, route.PresentationOverlay)
	scr := selection.Screen{
		Path:    "/photo/3",
		Kind:    route.KindPhoto,
		Load:    "hard",
		Role:    domain.RoleCEO,
		Gallery: &g,
		Photo:   &d,
	}

	got := stripANSI(FormatScreen(scr, 80))
	assert.Contains(t, got, "/photo/3  •  hard load  •  CEO")
	assert.Contains(t, got, "Mountain Sunrise")
	assert.Contains(t, got, "Close returns to /gallery")
}

func TestFormatAdmin_UserSlot(t *testing.T) {
	got := stripANSI(FormatAdmin(selection.BuildAdmin(domain.RoleDeveloper), 0))
	assert.Contains(t, got, "USER DASHBOARD")
	assert.Contains(t, got, "User Management  Locked")
	assert.NotContains(t, got, "Security Controls")
}

func TestFormatDashboard_FallbackMarked(t *testing.T) {
	r, err := route.Resolve("/dashboard/visitors", route.HardLoad)
	assert.NoError(t, err)

	got := stripANSI(FormatDashboard(selection.BuildDashboard(r), 0))
	assert.Contains(t, got, "(default content)")
	assert.Contains(t, got, "23.8K")
}

func TestFormatAccess(t *testing.T) {
	got := stripANSI(FormatAccess(domain.AllRoles()))
	assert.Contains(t, got, "ACCESS RIGHTS")
	assert.Contains(t, got, "Project Manager")
	assert.Contains(t, got, "Manage Domain")
}
