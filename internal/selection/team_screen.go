package selection

import (
	"fmt"
	"time"

	"github.com/alexanderramin/slotboard/internal/domain"
)

type TeamScreen struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	DomainName  string          `json:"domain_name"`
	CreatedAt   string          `json:"created_at"`
	Role        domain.Role     `json:"role"`
	Tiles       []Tile          `json:"tiles,omitempty"`
	Members     []MemberRow     `json:"members,omitempty"`
	Membership  *TeamMembership `json:"membership,omitempty"`
	NotFound    *NotFound       `json:"not_found,omitempty"`
}

// TeamMembership is shown to developers only.
type TeamMembership struct {
	MemberSince string      `json:"member_since"`
	Months      int         `json:"months"`
	TeamRole    domain.Role `json:"team_role"`
}

// BuildTeamScreen composes the team page. now anchors the membership
// duration shown to developers.
func BuildTeamScreen(role domain.Role, t *domain.Team, d *domain.Domain, id string, now time.Time) TeamScreen {
	if t == nil {
		return TeamScreen{ID: id, Role: role, NotFound: &NotFound{Kind: "team", ID: id, Message: "Team not found"}}
	}
	scr := TeamScreen{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		CreatedAt:   Date(t.CreatedAt),
		Role:        role,
		Tiles: []Tile{
			{Label: "Team Size", Value: fmt.Sprint(t.Stats.TotalMembers), Description: "Active members"},
			{Label: "Avg Productivity", Value: Percent(t.Stats.AvgProductivity), Description: "Team average"},
			{Label: "Hours This Month", Value: Number(t.Stats.TotalHoursThisMonth) + "h", Description: "Total logged"},
			{Label: "Active Projects", Value: fmt.Sprint(t.Stats.ActiveProjects), Description: "Currently working on"},
		},
	}
	if d != nil {
		scr.DomainName = d.Name
	}
	for _, m := range t.Members {
		scr.Members = append(scr.Members, memberRow(m))
	}
	if role == domain.RoleDeveloper {
		scr.Membership = &TeamMembership{
			MemberSince: Date(t.CreatedAt),
			Months:      monthsBetween(t.CreatedAt, now),
			TeamRole:    role,
		}
	}
	return scr
}

// monthsBetween counts whole 30-day periods from start to end.
func monthsBetween(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours() / 24 / 30)
}
