package viewstate

import "github.com/alexanderramin/slotboard/internal/domain"

// Action is a single state transition request.
type Action interface {
	apply(State) State
	// Name identifies the action in logs.
	Name() string
}

// Reduce returns the state after applying a. s is not modified.
func Reduce(s State, a Action) State {
	if a == nil {
		return s
	}
	return a.apply(s)
}

// ── raw setters ───────────────────────────────────────────────────────────
// These assign one field and leave Level alone; callers keep it consistent.

type SetBusiness struct{ Business *domain.Business }

func (a SetBusiness) apply(s State) State {
	s.Business = a.Business
	return s
}
func (SetBusiness) Name() string { return "set_business" }

type SetUser struct{ User domain.User }

func (a SetUser) apply(s State) State {
	s.User = a.User
	return s
}
func (SetUser) Name() string { return "set_user" }

type SetDomain struct{ Domain *domain.Domain }

func (a SetDomain) apply(s State) State {
	s.Domain = a.Domain
	return s
}
func (SetDomain) Name() string { return "set_domain" }

type SetProject struct{ Project *domain.Project }

func (a SetProject) apply(s State) State {
	s.Project = a.Project
	return s
}
func (SetProject) Name() string { return "set_project" }

type SetTeam struct{ Team *domain.Team }

func (a SetTeam) apply(s State) State {
	s.Team = a.Team
	return s
}
func (SetTeam) Name() string { return "set_team" }

type SetViewLevel struct{ Level domain.ViewLevel }

func (a SetViewLevel) apply(s State) State {
	s.Level = a.Level
	return s
}
func (SetViewLevel) Name() string { return "set_view_level" }

// SetRole keeps the current user and swaps only the role.
type SetRole struct{ Role domain.Role }

func (a SetRole) apply(s State) State {
	s.User = s.User.WithRole(a.Role)
	return s
}
func (SetRole) Name() string { return "set_role" }

// ── navigation ────────────────────────────────────────────────────────────
// These keep Level consistent with the selected entities.

// SelectBusiness switches business and returns to the Everything level.
type SelectBusiness struct{ Business *domain.Business }

func (a SelectBusiness) apply(s State) State {
	s = ShowEverything{}.apply(s)
	s.Business = a.Business
	return s
}
func (SelectBusiness) Name() string { return "select_business" }

// ShowEverything clears domain, project and team.
type ShowEverything struct{}

func (ShowEverything) apply(s State) State {
	s.Domain, s.Project, s.Team = nil, nil, nil
	s.Level = domain.LevelEverything
	return s
}
func (ShowEverything) Name() string { return "show_everything" }

// SelectDomain focuses a domain and clears project and team.
type SelectDomain struct{ Domain *domain.Domain }

func (a SelectDomain) apply(s State) State {
	s.Domain, s.Project, s.Team = a.Domain, nil, nil
	s.Level = domain.LevelDomain
	return s
}
func (SelectDomain) Name() string { return "select_domain" }

// SelectProject focuses a project, sets its domain and clears team. Domain
// may be nil when the parent domain is unknown.
type SelectProject struct {
	Domain  *domain.Domain
	Project *domain.Project
}

func (a SelectProject) apply(s State) State {
	s.Domain, s.Project, s.Team = a.Domain, a.Project, nil
	s.Level = domain.LevelProject
	return s
}
func (SelectProject) Name() string { return "select_project" }

// SelectTeam focuses a team, sets its domain and clears project.
type SelectTeam struct {
	Domain *domain.Domain
	Team   *domain.Team
}

func (a SelectTeam) apply(s State) State {
	s.Domain, s.Project, s.Team = a.Domain, nil, a.Team
	s.Level = domain.LevelTeam
	return s
}
func (SelectTeam) Name() string { return "select_team" }
