package domain

import (
	"fmt"
	"strings"
)

type Role string

const (
	RoleDeveloper      Role = "Developer"
	RoleProjectManager Role = "ProjectManager"
	RoleDomainHead     Role = "DomainHead"
	RoleCEO            Role = "CEO"
	RoleCOO            Role = "COO"
)

// AllRoles returns every role in display order, most senior first.
func AllRoles() []Role {
	return []Role{RoleCEO, RoleCOO, RoleDomainHead, RoleProjectManager, RoleDeveloper}
}

// DisplayName returns the role as a person would write it.
func (r Role) DisplayName() string {
	switch r {
	case RoleDomainHead:
		return "Domain Head"
	case RoleProjectManager:
		return "Project Manager"
	default:
		return string(r)
	}
}

// ParseRole accepts canonical role names case-insensitively, along with
// spaced, kebab and snake spellings ("domain head", "project-manager").
func ParseRole(s string) (Role, error) {
	norm := strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.ToLower(strings.TrimSpace(s)))
	for _, r := range AllRoles() {
		if strings.ToLower(string(r)) == norm {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: %q (valid: CEO, COO, DomainHead, ProjectManager, Developer)", ErrUnknownRole, s)
}

type ProjectStatus string

const (
	ProjectPlanning  ProjectStatus = "Planning"
	ProjectActive    ProjectStatus = "Active"
	ProjectOnHold    ProjectStatus = "OnHold"
	ProjectCompleted ProjectStatus = "Completed"
	ProjectCancelled ProjectStatus = "Cancelled"
)

type TaskStatus string

const (
	TaskTodo       TaskStatus = "Todo"
	TaskInProgress TaskStatus = "InProgress"
	TaskInReview   TaskStatus = "InReview"
	TaskDone       TaskStatus = "Done"
	TaskBlocked    TaskStatus = "Blocked"
)

// Priority doubles as risk severity; both use the same four grades.
type Priority string

const (
	PriorityLow      Priority = "Low"
	PriorityMedium   Priority = "Medium"
	PriorityHigh     Priority = "High"
	PriorityCritical Priority = "Critical"
)

type Severity = Priority

type ViewLevel string

const (
	LevelEverything ViewLevel = "everything"
	LevelDomain     ViewLevel = "domain"
	LevelProject    ViewLevel = "project"
	LevelTeam       ViewLevel = "team"
)
