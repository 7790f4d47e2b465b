package selection

import (
	"fmt"

	"github.com/alexanderramin/slotboard/internal/domain"
)

// EverythingVariant names which business-level layout a role gets.
type EverythingVariant string

const (
	VariantBusiness EverythingVariant = "business"
	VariantDomains  EverythingVariant = "domains"
	VariantPersonal EverythingVariant = "personal"
)

const (
	developerProjectLimit = 3
	strongMarginThreshold = 35.0

	// The personal overview carries fixed figures; the dataset has no
	// membership or task history per user.
	personalTeams          = 2
	personalTasksCompleted = 24
)

type EverythingScreen struct {
	Variant    EverythingVariant `json:"variant"`
	Title      string            `json:"title"`
	Subtitle   string            `json:"subtitle"`
	Role       domain.Role       `json:"role"`
	Tiles      []Tile            `json:"tiles"`
	TopDomains []TopDomainRow    `json:"top_domains,omitempty"`
	Domains    []DomainRow       `json:"domains,omitempty"`
	Projects   []ProjectRow      `json:"projects,omitempty"`
}

type TopDomainRow struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Summary string  `json:"summary"`
	Margin  float64 `json:"margin"`
}

// BuildEverythingScreen picks the business-level layout for role. Executives
// see money; domain heads and project managers see the domain list without
// money; everyone else sees their own projects.
func BuildEverythingScreen(role domain.Role, biz *domain.Business, stats domain.BusinessStats) EverythingScreen {
	var domains []*domain.Domain
	if biz != nil {
		domains = biz.Domains
	}
	switch role {
	case domain.RoleCEO, domain.RoleCOO:
		return businessOverview(role, domains, stats)
	case domain.RoleDomainHead, domain.RoleProjectManager:
		return domainsOverview(role, domains, stats)
	default:
		return personalOverview(role, domains)
	}
}

func businessOverview(role domain.Role, domains []*domain.Domain, s domain.BusinessStats) EverythingScreen {
	scr := EverythingScreen{
		Variant:  VariantBusiness,
		Title:    "Business Overview",
		Subtitle: "Complete performance metrics across all domains",
		Role:     role,
		Tiles: []Tile{
			{Label: "Total Revenue", Value: Money(s.TotalRevenue), Description: "Across all domains"},
			{Label: "Total Profit", Value: Money(s.TotalProfit), Description: Percent1(s.AvgProfitMargin) + " margin"},
			{Label: "Active Projects", Value: fmt.Sprintf("%d / %d", s.ActiveProjects, s.TotalProjects), Description: "Across all domains"},
			{Label: "Total Team Members", Value: fmt.Sprint(s.TotalMembers), Description: fmt.Sprintf("In %d teams", s.TotalTeams)},
		},
	}
	for _, p := range s.TopPerformingDomains {
		scr.TopDomains = append(scr.TopDomains, TopDomainRow{
			ID:      p.DomainID,
			Name:    p.DomainName,
			Summary: fmt.Sprintf("%d projects • %s revenue", p.ProjectCount, Money(p.Revenue)),
			Margin:  p.ProfitMargin,
		})
	}
	for _, d := range domains {
		tone := ToneWarning
		if d.Stats.ProfitMargin > strongMarginThreshold {
			tone = TonePositive
		}
		scr.Domains = append(scr.Domains, DomainRow{
			ID:             d.ID,
			Name:           d.Name,
			Summary:        fmt.Sprintf("%d teams • %s revenue • %s utilization", d.Stats.TotalTeams, Money(d.Stats.TotalRevenue), Percent(d.Stats.UtilizationRate)),
			ActiveProjects: d.Stats.ActiveProjects,
			Margin:         Percent1(d.Stats.ProfitMargin),
			Tone:           tone,
		})
	}
	return scr
}

func domainsOverview(role domain.Role, domains []*domain.Domain, s domain.BusinessStats) EverythingScreen {
	scr := EverythingScreen{
		Variant:  VariantDomains,
		Title:    "Domain Overview",
		Subtitle: "Domains, projects and teams across the business",
		Role:     role,
		Tiles: []Tile{
			{Label: "Domains", Value: fmt.Sprint(s.TotalDomains), Description: "In this business"},
			{Label: "Active Projects", Value: fmt.Sprintf("%d / %d", s.ActiveProjects, s.TotalProjects), Description: "Across all domains"},
			{Label: "Teams", Value: fmt.Sprint(s.TotalTeams), Description: fmt.Sprintf("%d members", s.TotalMembers)},
		},
	}
	for _, d := range domains {
		scr.Domains = append(scr.Domains, DomainRow{
			ID:             d.ID,
			Name:           d.Name,
			Summary:        fmt.Sprintf("%d projects • %d teams", d.Stats.TotalProjects, d.Stats.TotalTeams),
			ActiveProjects: d.Stats.ActiveProjects,
		})
	}
	return scr
}

func personalOverview(role domain.Role, domains []*domain.Domain) EverythingScreen {
	scr := EverythingScreen{
		Variant:  VariantPersonal,
		Title:    "My Overview",
		Subtitle: "Projects and teams you're associated with",
		Role:     role,
	}
	access := domain.AccessRightsFor(role)
	for _, d := range domains {
		for _, p := range d.Projects {
			if len(scr.Projects) == developerProjectLimit {
				break
			}
			if p.IsActive() {
				scr.Projects = append(scr.Projects, projectRow(p, d.Name, access))
			}
		}
	}
	scr.Tiles = []Tile{
		{Label: "Active Projects", Value: fmt.Sprint(len(scr.Projects)), Description: "Currently working on"},
		{Label: "Teams", Value: fmt.Sprint(personalTeams), Description: "Member of"},
		{Label: "Tasks Completed", Value: fmt.Sprint(personalTasksCompleted), Description: "This month"},
	}
	return scr
}
