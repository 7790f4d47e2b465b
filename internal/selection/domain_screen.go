package selection

import (
	"fmt"

	"github.com/alexanderramin/slotboard/internal/domain"
	"github.com/alexanderramin/slotboard/internal/route"
)

// kpiSpec describes one tile of the domain overview. Value and Description
// read only the domain's stored stats.
type kpiSpec struct {
	Label       string
	Value       func(domain.DomainStats) string
	Description func(domain.DomainStats) string
}

func fixed(s string) func(domain.DomainStats) string {
	return func(domain.DomainStats) string { return s }
}

var (
	kpiTotalRevenue = kpiSpec{
		Label:       "Total Revenue",
		Value:       func(s domain.DomainStats) string { return Money(s.TotalRevenue) },
		Description: fixed("Domain revenue"),
	}
	kpiProfitMargin = kpiSpec{
		Label:       "Profit Margin",
		Value:       func(s domain.DomainStats) string { return Percent1(s.ProfitMargin) },
		Description: func(s domain.DomainStats) string { return Money(s.NetProfit()) + " profit" },
	}
	kpiActiveProjects = kpiSpec{
		Label:       "Active Projects",
		Value:       func(s domain.DomainStats) string { return fmt.Sprint(s.ActiveProjects) },
		Description: func(s domain.DomainStats) string { return fmt.Sprintf("%d total projects", s.TotalProjects) },
	}
	kpiMembersAcross = kpiSpec{
		Label:       "Team Members",
		Value:       func(s domain.DomainStats) string { return fmt.Sprint(s.TotalMembers) },
		Description: func(s domain.DomainStats) string { return fmt.Sprintf("Across %d teams", s.TotalTeams) },
	}
)

// domainKPIs is the role → tiles table for the domain overview. Adding a
// role means adding a row here.
var domainKPIs = map[domain.Role][]kpiSpec{
	domain.RoleCEO: {kpiTotalRevenue, kpiProfitMargin, kpiActiveProjects, kpiMembersAcross},
	domain.RoleCOO: {kpiTotalRevenue, kpiProfitMargin, kpiActiveProjects, kpiMembersAcross},
	domain.RoleDomainHead: {
		kpiActiveProjects,
		{
			Label:       "Team Utilization",
			Value:       func(s domain.DomainStats) string { return Percent(s.UtilizationRate) },
			Description: fixed("Resource efficiency"),
		},
		{
			Label:       "Team Members",
			Value:       func(s domain.DomainStats) string { return fmt.Sprint(s.TotalMembers) },
			Description: func(s domain.DomainStats) string { return fmt.Sprintf("In %d teams", s.TotalTeams) },
		},
		{
			Label:       "Budget Health",
			Value:       func(s domain.DomainStats) string { return Money(s.TotalRevenue) },
			Description: func(s domain.DomainStats) string { return Percent1(s.ProfitMargin) + " margin" },
		},
	},
	domain.RoleProjectManager: {
		{
			Label:       "Active Projects",
			Value:       func(s domain.DomainStats) string { return fmt.Sprint(s.ActiveProjects) },
			Description: fixed("Your domain projects"),
		},
		{
			Label:       "Team Members",
			Value:       func(s domain.DomainStats) string { return fmt.Sprint(s.TotalMembers) },
			Description: fixed("Available resources"),
		},
		{
			Label:       "Utilization",
			Value:       func(s domain.DomainStats) string { return Percent(s.UtilizationRate) },
			Description: fixed("Team capacity"),
		},
		{
			Label:       "Projects Status",
			Value:       func(s domain.DomainStats) string { return fmt.Sprintf("%d/%d", s.ActiveProjects, s.TotalProjects) },
			Description: fixed("Active/Total"),
		},
	},
	domain.RoleDeveloper: {
		{
			Label:       "Available Projects",
			Value:       func(s domain.DomainStats) string { return fmt.Sprint(s.ActiveProjects) },
			Description: fixed("In this domain"),
		},
		kpiMembersAcross,
		{
			Label:       "Active Work",
			Value:       func(s domain.DomainStats) string { return Percent(s.UtilizationRate) },
			Description: fixed("Current capacity"),
		},
	},
}

// DomainKPIs returns the overview tiles for role. Roles without a row get
// no tiles.
func DomainKPIs(role domain.Role, stats domain.DomainStats) []Tile {
	specs := domainKPIs[role]
	tiles := make([]Tile, 0, len(specs))
	for _, k := range specs {
		tiles = append(tiles, Tile{Label: k.Label, Value: k.Value(stats), Description: k.Description(stats)})
	}
	return tiles
}

type DomainScreen struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Role        domain.Role        `json:"role"`
	Tabs        []TabLink          `json:"tabs"`
	Overview    *DomainOverview    `json:"overview,omitempty"`
	Commercials *DomainCommercials `json:"commercials,omitempty"`
	Denied      *AccessDenied      `json:"denied,omitempty"`
	NotFound    *NotFound          `json:"not_found,omitempty"`
}

type DomainOverview struct {
	Tiles    []Tile       `json:"tiles"`
	Projects []ProjectRow `json:"projects"`
	Teams    []TeamRow    `json:"teams"`
}

type DomainCommercials struct {
	Tiles           []Tile                `json:"tiles"`
	Warning         string                `json:"warning,omitempty"`
	Breakdown       []ProjectFinancialRow `json:"breakdown"`
	Revenue         []KeyValue            `json:"revenue_sources"`
	Costs           []KeyValue            `json:"cost_structure"`
	Utilization     float64               `json:"utilization"`
	UtilizationNote string                `json:"utilization_note"`
}

type KeyValue struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type ProjectFinancialRow struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Budget      string  `json:"budget"`
	Spent       string  `json:"spent"`
	Revenue     string  `json:"revenue"`
	Profit      string  `json:"profit"`
	Margin      string  `json:"margin"`
	Utilization float64 `json:"utilization"`
	OverBudget  bool    `json:"over_budget"`
	ProfitTone  Tone    `json:"profit_tone,omitempty"`
}

const (
	healthyMarginThreshold = 20.0
	overBudgetThreshold    = 90.0
	lowMarginWarning       = "Profit margin is below 20%. Consider reviewing project costs and resource allocation."
)

// UtilizationNote is the guidance shown under a domain's utilization rate.
func UtilizationNote(rate float64) string {
	switch {
	case rate >= 80:
		return "Excellent utilization. Team resources are being used efficiently."
	case rate >= 60:
		return "Good utilization. Some room for improvement in resource allocation."
	default:
		return "Low utilization. Consider reassigning resources or taking on more projects."
	}
}

// BuildDomainScreen composes the domain layout for the requested tab. A nil
// d produces a NotFound screen for id.
func BuildDomainScreen(role domain.Role, d *domain.Domain, id string, tab route.Tab) DomainScreen {
	if d == nil {
		return DomainScreen{ID: id, Role: role, NotFound: &NotFound{Kind: "domain", ID: id, Message: "Domain not found"}}
	}
	if tab != route.TabCommercials {
		tab = route.TabOverview
	}
	scr := DomainScreen{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Role:        role,
		Tabs: []TabLink{
			{Label: "Overview", Path: route.DomainPath(d.ID, route.TabOverview), Active: tab == route.TabOverview},
			{Label: "Commercials", Path: route.DomainPath(d.ID, route.TabCommercials), Active: tab == route.TabCommercials},
		},
	}
	access := domain.AccessRightsFor(role)
	switch {
	case tab == route.TabOverview:
		scr.Overview = buildDomainOverview(role, access, d)
	case !access.CanViewFinancials:
		scr.Denied = FinancialsDenied(d.Name+" - Commercials", role)
	default:
		scr.Commercials = buildDomainCommercials(d)
	}
	return scr
}

func buildDomainOverview(role domain.Role, access domain.AccessRights, d *domain.Domain) *DomainOverview {
	ov := &DomainOverview{Tiles: DomainKPIs(role, d.Stats)}
	for _, p := range d.Projects {
		ov.Projects = append(ov.Projects, projectRow(p, "", access))
	}
	for _, t := range d.Teams {
		ov.Teams = append(ov.Teams, TeamRow{
			ID:           t.ID,
			Name:         t.Name,
			Description:  t.Description,
			Members:      len(t.Members),
			Productivity: t.Stats.AvgProductivity,
		})
	}
	return ov
}

// projectRow shows budget use to financial roles and "On Track" to others.
func projectRow(p *domain.Project, domainName string, access domain.AccessRights) ProjectRow {
	row := ProjectRow{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		DomainName:  domainName,
		Status:      p.Status,
		Completion:  p.Stats.CompletionRate,
		Metric:      "On Track",
		Tone:        TonePositive,
	}
	if access.CanViewFinancials {
		row.Metric = "Budget " + Percent(p.Stats.BudgetUtilization)
		row.Tone = ToneNeutral
	}
	return row
}

func buildDomainCommercials(d *domain.Domain) *DomainCommercials {
	s := d.Stats
	profit := s.NetProfit()
	healthy := s.ProfitMargin > healthyMarginThreshold

	profitTile := Tile{Label: "Net Profit", Value: Money(profit), Description: "Needs attention", Tone: ToneWarning}
	if healthy {
		profitTile.Description = "Healthy margin"
		profitTile.Tone = TonePositive
	}
	c := &DomainCommercials{
		Tiles: []Tile{
			{Label: "Total Revenue", Value: Money(s.TotalRevenue), Description: "Domain revenue"},
			{Label: "Total Cost", Value: Money(s.TotalCost), Description: "Operating costs"},
			profitTile,
			{Label: "Profit Margin", Value: Percent1(s.ProfitMargin), Description: "Net margin"},
		},
		Revenue: []KeyValue{
			{Key: "Project Revenue", Value: Money(s.TotalRevenue)},
			{Key: "Active Projects", Value: fmt.Sprintf("%d projects", s.ActiveProjects)},
			{Key: "Avg per Project", Value: moneyPer(s.TotalRevenue, s.TotalProjects)},
		},
		Costs: []KeyValue{
			{Key: "Total Operating Costs", Value: Money(s.TotalCost)},
			{Key: "Team Size", Value: fmt.Sprintf("%d members", s.TotalMembers)},
			{Key: "Avg per Member", Value: moneyPer(s.TotalCost, s.TotalMembers)},
		},
		Utilization:     s.UtilizationRate,
		UtilizationNote: UtilizationNote(s.UtilizationRate),
	}
	if !healthy {
		c.Warning = lowMarginWarning
	}
	for _, p := range d.Projects {
		util := p.Stats.BudgetUtilization
		net := p.NetProfit()
		row := ProjectFinancialRow{
			ID:          p.ID,
			Name:        p.Name,
			Budget:      Money(p.Budget),
			Spent:       Money(p.Spent),
			Revenue:     Money(p.RevenueOrZero()),
			Profit:      Money(net),
			Margin:      marginOf(net, p.RevenueOrZero()),
			Utilization: util,
			OverBudget:  util > overBudgetThreshold,
			ProfitTone:  TonePositive,
		}
		if net < 0 {
			row.ProfitTone = ToneNegative
		}
		c.Breakdown = append(c.Breakdown, row)
	}
	return c
}

// marginOf is profit as a percentage of revenue, "N/A" without revenue.
func marginOf(profit, revenue float64) string {
	if revenue <= 0 {
		return notAvailable
	}
	return Percent1(profit / revenue * 100)
}

func moneyPer(total float64, n int) string {
	if n == 0 {
		return notAvailable
	}
	return Money(total / float64(n))
}
