package domain

import "fmt"

// AccessRights is the capability set derived from a role. It is never stored.
type AccessRights struct {
	CanViewFinancials  bool
	CanViewAllProjects bool
	CanViewAllTeams    bool
	CanManageTeam      bool
	CanManageDomain    bool

	// Allow-lists are reserved for per-entity scoping and are always empty.
	AllowedDomainIDs  []string
	AllowedProjectIDs []string
	AllowedTeamIDs    []string
}

var fullAccess = AccessRights{
	CanViewFinancials:  true,
	CanViewAllProjects: true,
	CanViewAllTeams:    true,
	CanManageTeam:      true,
	CanManageDomain:    true,
}

// accessTable has exactly one row per role in AllRoles.
var accessTable = map[Role]AccessRights{
	RoleCEO:            fullAccess,
	RoleCOO:            fullAccess,
	RoleDomainHead:     fullAccess,
	RoleProjectManager: {},
	RoleDeveloper:      {},
}

// financialScope describes how far a role's financial access reaches, for
// display on access-denied panels.
var financialScope = map[Role]string{
	RoleCEO:        "Full financial access",
	RoleCOO:        "Full financial access",
	RoleDomainHead: "Domain-level financial access",
}

// AccessRightsFor returns the capability set for r. A role without a table
// row is a programming error and panics.
func AccessRightsFor(r Role) AccessRights {
	ar, ok := accessTable[r]
	if !ok {
		panic(fmt.Errorf("%w: %q has no access-rights row", ErrUnknownRole, r))
	}
	ar.AllowedDomainIDs = []string{}
	ar.AllowedProjectIDs = []string{}
	ar.AllowedTeamIDs = []string{}
	return ar
}

// FinancialRoles returns the roles allowed to see financial figures, in
// display order.
func FinancialRoles() []Role {
	var roles []Role
	for _, r := range AllRoles() {
		if AccessRightsFor(r).CanViewFinancials {
			roles = append(roles, r)
		}
	}
	return roles
}

// FinancialScope returns the short description of r's financial access, or
// "" for roles without it.
func FinancialScope(r Role) string {
	if !AccessRightsFor(r).CanViewFinancials {
		return ""
	}
	return CoalesceStr(financialScope[r], "Financial access")
}
