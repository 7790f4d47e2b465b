// Package selection decides what each screen shows for the current role: KPI
// tiles, financial figures or their operational substitutes, access-denied
// panels, and the slot contents of composed layouts. It returns plain view
// models; rendering lives in the callers.
package selection

import "github.com/alexanderramin/slotboard/internal/domain"

// Tone hints how a value should be coloured.
type Tone string

const (
	ToneNeutral  Tone = ""
	TonePositive Tone = "positive"
	ToneWarning  Tone = "warning"
	ToneNegative Tone = "negative"
)

// Tile is one KPI card.
type Tile struct {
	Label       string `json:"label"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
	Tone        Tone   `json:"tone,omitempty"`
}

// RoleGrant names a role that holds a capability.
type RoleGrant struct {
	Role        domain.Role `json:"role"`
	DisplayName string      `json:"display_name"`
	Scope       string      `json:"scope"`
}

// AccessDenied replaces a view the current role may not see.
type AccessDenied struct {
	Title           string      `json:"title"`
	Message         string      `json:"message"`
	Heading         string      `json:"heading"`
	Note            string      `json:"note"`
	AuthorizedRoles []RoleGrant `json:"authorized_roles"`
}

// NotFound replaces a view whose entity does not exist.
type NotFound struct {
	Kind    string `json:"kind"`
	ID      string `json:"id"`
	Message string `json:"message"`
}

// TabLink is one entry of a tab group.
type TabLink struct {
	Label  string `json:"label"`
	Path   string `json:"path"`
	Active bool   `json:"active"`
}

type ProjectRow struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	DomainName  string               `json:"domain_name,omitempty"`
	Status      domain.ProjectStatus `json:"status"`
	Completion  float64              `json:"completion"`
	// Metric is the budget percentage for financial roles and an
	// operational status otherwise.
	Metric string `json:"metric"`
	Tone   Tone   `json:"tone,omitempty"`
}

type TeamRow struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Members      int     `json:"members"`
	Productivity float64 `json:"productivity"`
}

type DomainRow struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Summary        string `json:"summary"`
	ActiveProjects int    `json:"active_projects"`
	// Margin is empty when the role may not see financials.
	Margin string `json:"margin,omitempty"`
	Tone   Tone   `json:"tone,omitempty"`
}

type MemberRow struct {
	ID           string      `json:"id"`
	Initials     string      `json:"initials"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	Role         domain.Role `json:"role"`
	Productivity float64     `json:"productivity"`
	Hours        float64     `json:"hours_this_month"`
	Tasks        int         `json:"tasks_completed"`
	JoinedAt     string      `json:"joined_at"`
	CurrentTask  string      `json:"current_task,omitempty"`
}

type TaskRow struct {
	ID       string            `json:"id"`
	Title    string            `json:"title"`
	Hours    string            `json:"hours"`
	Status   domain.TaskStatus `json:"status"`
	Priority domain.Priority   `json:"priority"`
}

type RiskRow struct {
	ID         string          `json:"id"`
	Title      string          `json:"title"`
	Severity   domain.Severity `json:"severity"`
	Tone       Tone            `json:"tone,omitempty"`
	Impact     string          `json:"impact"`
	Mitigation string          `json:"mitigation"`
}

type SprintSummary struct {
	Name     string    `json:"name"`
	Dates    string    `json:"dates"`
	Points   string    `json:"points"`
	Progress float64   `json:"progress"`
	Tasks    []TaskRow `json:"tasks"`
}
