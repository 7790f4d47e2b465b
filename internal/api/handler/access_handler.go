package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/alexanderramin/slotboard/internal/domain"
)

type AccessHandler struct{}

func NewAccessHandler() *AccessHandler {
	return &AccessHandler{}
}

type accessResponse struct {
	Role               domain.Role `json:"role"`
	DisplayName        string      `json:"display_name"`
	CanViewFinancials  bool        `json:"can_view_financials"`
	CanViewAllProjects bool        `json:"can_view_all_projects"`
	CanViewAllTeams    bool        `json:"can_view_all_teams"`
	CanManageTeam      bool        `json:"can_manage_team"`
	CanManageDomain    bool        `json:"can_manage_domain"`
	AllowedDomainIDs   []string    `json:"allowed_domain_ids"`
	AllowedProjectIDs  []string    `json:"allowed_project_ids"`
	AllowedTeamIDs     []string    `json:"allowed_team_ids"`
	FinancialScope     string      `json:"financial_scope,omitempty"`
}

func toAccessResponse(r domain.Role) accessResponse {
	a := domain.AccessRightsFor(r)
	return accessResponse{
		Role:               r,
		DisplayName:        r.DisplayName(),
		CanViewFinancials:  a.CanViewFinancials,
		CanViewAllProjects: a.CanViewAllProjects,
		CanViewAllTeams:    a.CanViewAllTeams,
		CanManageTeam:      a.CanManageTeam,
		CanManageDomain:    a.CanManageDomain,
		AllowedDomainIDs:   a.AllowedDomainIDs,
		AllowedProjectIDs:  a.AllowedProjectIDs,
		AllowedTeamIDs:     a.AllowedTeamIDs,
		FinancialScope:     domain.FinancialScope(r),
	}
}

// List handles GET /api/access.
func (h *AccessHandler) List(c echo.Context) error {
	roles := domain.AllRoles()
	out := make([]accessResponse, 0, len(roles))
	for _, r := range roles {
		out = append(out, toAccessResponse(r))
	}
	return c.JSON(http.StatusOK, out)
}

// Get handles GET /api/access/:role. Role names are matched the way the
// CLI matches them, so "domain-head" works.
func (h *AccessHandler) Get(c echo.Context) error {
	r, err := domain.ParseRole(c.Param("role"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAccessResponse(r))
}
