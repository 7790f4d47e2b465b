package formatter

import (
	"strings"

	"github.com/alexanderramin/slotboard/internal/domain"
)

func yesNo(ok bool) string {
	if ok {
		return StyleGreen.Render("yes")
	}
	return StyleDim.Render("no")
}

// FormatAccess renders the capability table for the given roles.
func FormatAccess(roles []domain.Role) string {
	rows := make([][]string, 0, len(roles))
	for _, r := range roles {
		a := domain.AccessRightsFor(r)
		rows = append(rows, []string{
			StyleBold.Render(r.DisplayName()),
			yesNo(a.CanViewFinancials),
			yesNo(a.CanViewAllProjects),
			yesNo(a.CanViewAllTeams),
			yesNo(a.CanManageTeam),
			yesNo(a.CanManageDomain),
		})
	}
	return Header("Access Rights") + "\n\n" +
		RenderTable([]string{"Role", "Financials", "All Projects", "All Teams", "Manage Team", "Manage Domain"}, rows)
}

// FormatPhotoList renders the photo catalog.
func FormatPhotoList(photos []domain.Photo) string {
	rows := make([][]string, 0, len(photos))
	for _, p := range photos {
		rows = append(rows, []string{StyleGreen.Render(p.ID), p.Title, Dim(p.ColorToken)})
	}
	return RenderTable([]string{"ID", "Title", "Color"}, rows)
}

// FormatSelection summarises who and where the session is.
func FormatSelection(business, user string, role domain.Role, level domain.ViewLevel, entities ...string) string {
	var b strings.Builder
	b.WriteString(Dim("Business  ") + business + "\n")
	b.WriteString(Dim("User      ") + user + " " + Dim("("+role.DisplayName()+")") + "\n")
	b.WriteString(Dim("Level     ") + string(level) + "\n")
	if len(entities) > 0 {
		b.WriteString(Dim("Selected  ") + strings.Join(entities, " › ") + "\n")
	}
	return b.String()
}
