package selection

import (
	"fmt"

	"github.com/alexanderramin/slotboard/internal/domain"
	"github.com/alexanderramin/slotboard/internal/route"
)

type ProjectScreen struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	DomainName  string               `json:"domain_name"`
	Status      domain.ProjectStatus `json:"status"`
	Role        domain.Role          `json:"role"`
	Tabs        []TabLink            `json:"tabs,omitempty"`
	Tiles       []Tile               `json:"tiles,omitempty"`
	Sprint      *SprintSummary       `json:"sprint,omitempty"`
	Members     []MemberRow          `json:"members,omitempty"`
	Risks       []RiskRow            `json:"risks,omitempty"`
	Financials  *ProjectFinancials   `json:"financials,omitempty"`
	Denied      *AccessDenied        `json:"denied,omitempty"`
	NotFound    *NotFound            `json:"not_found,omitempty"`
}

// ProjectFinancials are derived from budget, spend and revenue. Every value
// is a formatted finite figure or "N/A".
type ProjectFinancials struct {
	Budget      string  `json:"budget"`
	Spent       string  `json:"spent"`
	Revenue     string  `json:"revenue"`
	Profit      string  `json:"profit"`
	Margin      string  `json:"margin"`
	Utilization float64 `json:"utilization"`
	OverBudget  bool    `json:"over_budget"`
	ProfitTone  Tone    `json:"profit_tone,omitempty"`
}

// BuildProjectScreen composes the project page for role. d may be nil when
// the owning domain is unknown; a nil p produces a NotFound screen for id.
func BuildProjectScreen(role domain.Role, p *domain.Project, d *domain.Domain, id string, tab route.Tab) ProjectScreen {
	if p == nil {
		return ProjectScreen{ID: id, Role: role, NotFound: &NotFound{Kind: "project", ID: id, Message: "Project not found"}}
	}
	if tab != route.TabFinancials {
		tab = route.TabOverview
	}
	scr := ProjectScreen{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Status:      p.Status,
		Role:        role,
		Tabs: []TabLink{
			{Label: "Overview", Path: route.ProjectPath(p.ID, route.TabOverview), Active: tab == route.TabOverview},
			{Label: "Financials", Path: route.ProjectPath(p.ID, route.TabFinancials), Active: tab == route.TabFinancials},
		},
	}
	if d != nil {
		scr.DomainName = d.Name
	}

	access := domain.AccessRightsFor(role)
	if tab == route.TabFinancials {
		if !access.CanViewFinancials {
			scr.Denied = FinancialsDenied(p.Name+" - Financials", role)
		} else {
			scr.Financials = BuildProjectFinancials(p)
		}
		return scr
	}

	scr.Tiles = projectTiles(p, access)
	if p.CurrentSprint != nil {
		scr.Sprint = sprintSummary(p.CurrentSprint)
	}
	for _, m := range p.TeamMembers {
		scr.Members = append(scr.Members, memberRow(m))
	}
	for _, r := range p.Risks {
		scr.Risks = append(scr.Risks, RiskRow{
			ID:         r.ID,
			Title:      r.Title,
			Severity:   r.Severity,
			Tone:       severityTone(r.Severity),
			Impact:     r.Impact,
			Mitigation: r.Mitigation,
		})
	}
	return scr
}

func projectTiles(p *domain.Project, access domain.AccessRights) []Tile {
	tiles := []Tile{
		{Label: "Completion", Value: Percent(p.Stats.CompletionRate), Description: "Overall progress"},
		{Label: "Team Size", Value: fmt.Sprint(len(p.TeamMembers)), Description: "Active members"},
	}
	if !access.CanViewFinancials {
		return append(tiles, Tile{Label: "On-Time Delivery", Value: Percent(p.Stats.OnTimeDelivery), Description: "Delivery performance"})
	}
	profit := Tile{Label: "Profit", Value: notAvailable}
	if v := domain.Float64FromPtrWithDefault(0, p.Profit); v != 0 {
		profit.Value = Money(v)
	}
	if rev := p.RevenueOrZero(); rev != 0 {
		profit.Description = Money(rev) + " revenue"
	}
	return append(tiles,
		Tile{
			Label:       "Budget Used",
			Value:       Percent(p.Stats.BudgetUtilization),
			Description: Money(p.Spent) + " of " + Money(p.Budget),
		},
		profit,
	)
}

// BuildProjectFinancials derives the financial summary of p. Utilization is
// the stored project stat; margin is "N/A" when the project has no revenue.
func BuildProjectFinancials(p *domain.Project) *ProjectFinancials {
	util := p.Stats.BudgetUtilization
	net := p.NetProfit()
	f := &ProjectFinancials{
		Budget:      Money(p.Budget),
		Spent:       Money(p.Spent),
		Revenue:     Money(p.RevenueOrZero()),
		Profit:      Money(net),
		Margin:      marginOf(net, p.RevenueOrZero()),
		Utilization: util,
		OverBudget:  util > overBudgetThreshold,
		ProfitTone:  TonePositive,
	}
	if p.Revenue == nil {
		f.Revenue = notAvailable
	}
	if net < 0 {
		f.ProfitTone = ToneNegative
	}
	return f
}

func sprintSummary(s *domain.Sprint) *SprintSummary {
	sum := &SprintSummary{
		Name:     s.Name,
		Dates:    Date(s.StartDate) + " - " + Date(s.EndDate),
		Points:   fmt.Sprintf("%d / %d points", s.CompletedStoryPoints, s.TotalStoryPoints),
		Progress: s.Progress(),
	}
	for _, t := range s.Tasks {
		sum.Tasks = append(sum.Tasks, TaskRow{
			ID:       t.ID,
			Title:    t.Title,
			Hours:    fmt.Sprintf("%sh estimated • %sh actual", Number(t.EstimatedHours), Number(t.ActualHours)),
			Status:   t.Status,
			Priority: t.Priority,
		})
	}
	return sum
}

func memberRow(m *domain.TeamMember) MemberRow {
	return MemberRow{
		ID:           m.ID,
		Initials:     Initials(m.UserName),
		Name:         m.UserName,
		Email:        m.Email,
		Role:         m.Role,
		Productivity: m.Productivity,
		Hours:        m.HoursClockedThisMonth,
		Tasks:        m.TasksCompleted,
		JoinedAt:     Date(m.JoinedAt),
		CurrentTask:  domain.StrFromPtr(m.CurrentTask, ""),
	}
}

func severityTone(s domain.Severity) Tone {
	switch s {
	case domain.PriorityCritical:
		return ToneNegative
	case domain.PriorityHigh:
		return ToneWarning
	}
	return ToneNeutral
}
