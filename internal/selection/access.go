package selection

import (
	"fmt"

	"github.com/alexanderramin/slotboard/internal/domain"
)

const (
	deniedMessage = "You don't have permission to view financial information. Contact your administrator for access."
	deniedHeading = "Limited Access"
)

// FinancialsDenied builds the panel shown instead of financial figures. The
// authorised roles come from the access-rights table, so it stays in step
// with it.
func FinancialsDenied(title string, role domain.Role) *AccessDenied {
	grants := make([]RoleGrant, 0, 3)
	for _, r := range domain.FinancialRoles() {
		grants = append(grants, RoleGrant{
			Role:        r,
			DisplayName: r.DisplayName(),
			Scope:       domain.FinancialScope(r),
		})
	}
	return &AccessDenied{
		Title:           title,
		Message:         deniedMessage,
		Heading:         deniedHeading,
		Note:            fmt.Sprintf("Your current role (%s) has restricted access to commercial data.", role),
		AuthorizedRoles: grants,
	}
}

// Line renders a grant as "Domain Head - Domain-level financial access".
func (g RoleGrant) Line() string {
	return g.DisplayName + " - " + g.Scope
}
