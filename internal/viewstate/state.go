// Package viewstate holds the current selection (business, user, domain,
// project, team, view level) and the pure transitions that change it.
package viewstate

import (
	"github.com/alexanderramin/slotboard/internal/domain"
	"github.com/alexanderramin/slotboard/internal/repository"
)

// State is one snapshot of the current selection. Entity pointers refer into
// the read-only dataset; User is a value because role switches copy it.
type State struct {
	Business *domain.Business
	User     domain.User
	Domain   *domain.Domain
	Project  *domain.Project
	Team     *domain.Team
	Level    domain.ViewLevel
}

// Default returns the start-up selection: the default business and user at
// the Everything level.
func Default(org repository.OrgRepo) State {
	return State{
		Business: org.DefaultBusiness(),
		User:     org.DefaultUser(),
		Level:    domain.LevelEverything,
	}
}

// Role is shorthand for the current user's role.
func (s State) Role() domain.Role {
	return s.User.Role
}

// Access returns the capability set for the current role.
func (s State) Access() domain.AccessRights {
	return domain.AccessRightsFor(s.User.Role)
}

// Consistent reports whether Level agrees with which entities are selected.
// Raw setters can leave the state inconsistent; navigation actions cannot.
func (s State) Consistent() bool {
	switch s.Level {
	case domain.LevelEverything:
		return s.Domain == nil && s.Project == nil && s.Team == nil
	case domain.LevelDomain:
		return s.Project == nil && s.Team == nil
	case domain.LevelProject:
		return s.Team == nil
	case domain.LevelTeam:
		return s.Project == nil
	}
	return false
}
