package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/slotboard/internal/route"
	"github.com/alexanderramin/slotboard/internal/selection"
)

// NoCursor disables row highlighting in list renderers.
const NoCursor = -1

// FormatScreen renders a composed screen as plain terminal output, one
// section per active slot.
func FormatScreen(scr selection.Screen, width int) string {
	var b strings.Builder
	b.WriteString(Dim(fmt.Sprintf("%s  •  %s load  •  %s", scr.Path, scr.Load, scr.Role.DisplayName())))
	b.WriteString("\n\n")

	switch {
	case scr.Everything != nil:
		b.WriteString(FormatEverything(*scr.Everything, width, NoCursor))
	case scr.Domain != nil:
		b.WriteString(FormatDomain(*scr.Domain, width, NoCursor))
	case scr.Project != nil:
		b.WriteString(FormatProject(*scr.Project, width))
	case scr.Team != nil:
		b.WriteString(FormatTeam(*scr.Team, width))
	case scr.Dashboard != nil:
		b.WriteString(FormatDashboard(*scr.Dashboard, width))
	case scr.Admin != nil:
		b.WriteString(FormatAdmin(*scr.Admin, width))
	case scr.Gallery != nil && scr.Photo == nil:
		b.WriteString(FormatGallery(*scr.Gallery, NoCursor))
	}

	if scr.Photo != nil {
		if scr.Gallery != nil {
			b.WriteString(FormatGallery(*scr.Gallery, NoCursor))
			b.WriteString("\n")
		}
		b.WriteString(FormatPhoto(*scr.Photo, ""))
		b.WriteString("\n")
	}
	return b.String()
}

func title(t, subtitle string) string {
	s := Header(t) + "\n"
	if subtitle != "" {
		s += Dim(subtitle) + "\n"
	}
	return s + "\n"
}

func marker(i, cursor int) string {
	if i == cursor {
		return StyleGreen.Render("▸ ")
	}
	return "  "
}

// FormatEverything renders the business-level screen. cursor indexes the
// domain rows, or the project rows on the personal variant.
func FormatEverything(e selection.EverythingScreen, width, cursor int) string {
	var b strings.Builder
	b.WriteString(title(e.Title, e.Subtitle))
	b.WriteString(RenderTiles(e.Tiles, width) + "\n\n")

	if len(e.TopDomains) > 0 {
		b.WriteString(StyleBold.Render("Top Performing Domains") + "\n")
		for i, d := range e.TopDomains {
			b.WriteString(fmt.Sprintf("  %d. %s  %s  %s\n", i+1, StyleBold.Render(d.Name), Dim(d.Summary), StyleGreen.Render(selection.Percent1(d.Margin))))
		}
		b.WriteString("\n")
	}

	if len(e.Domains) > 0 {
		b.WriteString(StyleBold.Render("Domains") + "\n")
		for i, d := range e.Domains {
			line := marker(i, cursor) + StyleBold.Render(d.Name) + "  " + Dim(d.Summary) +
				"  " + fmt.Sprintf("%d active", d.ActiveProjects)
			if d.Margin != "" {
				line += "  " + Toned(d.Tone, d.Margin+" margin")
			}
			b.WriteString(line + "\n")
		}
	}

	if len(e.Projects) > 0 {
		b.WriteString(StyleBold.Render("My Projects") + "\n")
		b.WriteString(formatProjectRows(e.Projects, cursor))
	}
	return b.String()
}

func formatProjectRows(rows []selection.ProjectRow, cursor int) string {
	var b strings.Builder
	for i, p := range rows {
		line := marker(i, cursor) + StyleBold.Render(p.Name) + "  " + StatusPill(p.Status) +
			"  " + RenderProgress(p.Completion, 10) + "  " + Toned(p.Tone, p.Metric)
		if p.DomainName != "" {
			line += "  " + Dim(p.DomainName)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

// FormatDomain renders a domain with its tab group. On the overview tab
// cursor indexes projects then teams.
func FormatDomain(d selection.DomainScreen, width, cursor int) string {
	if d.NotFound != nil {
		return RenderNotFound(d.NotFound) + "\n"
	}
	var b strings.Builder
	b.WriteString(title(d.Name, d.Description))
	b.WriteString(RenderTabs(d.Tabs) + "\n\n")

	switch {
	case d.Denied != nil:
		b.WriteString(RenderDenied(d.Denied) + "\n")
	case d.Commercials != nil:
		b.WriteString(formatCommercials(d.Commercials, width))
	case d.Overview != nil:
		ov := d.Overview
		b.WriteString(RenderTiles(ov.Tiles, width) + "\n\n")
		b.WriteString(StyleBold.Render("Projects") + "\n")
		b.WriteString(formatProjectRows(ov.Projects, cursor))
		b.WriteString("\n" + StyleBold.Render("Teams") + "\n")
		for i, t := range ov.Teams {
			b.WriteString(fmt.Sprintf("%s%s  %s  %s\n",
				marker(len(ov.Projects)+i, cursor),
				StyleBold.Render(t.Name),
				Dim(fmt.Sprintf("%d members", t.Members)),
				Dim(selection.Percent(t.Productivity)+" productivity"),
			))
		}
	}
	return b.String()
}

func formatCommercials(c *selection.DomainCommercials, width int) string {
	var b strings.Builder
	b.WriteString(RenderTiles(c.Tiles, width) + "\n")
	if c.Warning != "" {
		b.WriteString("\n" + StyleYellow.Render("⚠ "+c.Warning) + "\n")
	}

	b.WriteString("\n" + StyleBold.Render("Project Financial Breakdown") + "\n")
	rows := make([][]string, 0, len(c.Breakdown))
	for _, p := range c.Breakdown {
		rows = append(rows, []string{
			p.Name, p.Budget, p.Spent, p.Revenue,
			Toned(p.ProfitTone, p.Profit), p.Margin,
			RenderUsageBar(p.Utilization, 90, 10),
		})
	}
	b.WriteString(RenderTable([]string{"Project", "Budget", "Spent", "Revenue", "Profit", "Margin", "Budget Used"}, rows, 1, 2, 3, 4, 5))

	b.WriteString("\n" + StyleBold.Render("Revenue Sources") + "\n")
	b.WriteString(RenderKeyValues(c.Revenue))
	b.WriteString("\n" + StyleBold.Render("Cost Structure") + "\n")
	b.WriteString(RenderKeyValues(c.Costs))
	b.WriteString("\n" + Dim("Resource utilization ") + RenderProgress(c.Utilization, 20) + "\n")
	if c.UtilizationNote != "" {
		b.WriteString(Dim(c.UtilizationNote) + "\n")
	}
	return b.String()
}

// FormatProject renders a project page with its tab group.
func FormatProject(p selection.ProjectScreen, width int) string {
	if p.NotFound != nil {
		return RenderNotFound(p.NotFound) + "\n"
	}
	var b strings.Builder
	b.WriteString(title(p.Name, p.Description))
	b.WriteString(StatusPill(p.Status))
	if p.DomainName != "" {
		b.WriteString("  " + Dim(p.DomainName))
	}
	b.WriteString("\n\n" + RenderTabs(p.Tabs) + "\n\n")

	switch {
	case p.Denied != nil:
		b.WriteString(RenderDenied(p.Denied) + "\n")
		return b.String()
	case p.Financials != nil:
		f := p.Financials
		b.WriteString(RenderKeyValues([]selection.KeyValue{
			{Key: "Budget", Value: f.Budget},
			{Key: "Spent", Value: f.Spent},
			{Key: "Revenue", Value: f.Revenue},
			{Key: "Profit", Value: Toned(f.ProfitTone, f.Profit)},
			{Key: "Margin", Value: f.Margin},
		}))
		b.WriteString("\n" + Dim("Budget used ") + RenderUsageBar(f.Utilization, 90, 20) + "\n")
		return b.String()
	}

	b.WriteString(RenderTiles(p.Tiles, width) + "\n")
	if s := p.Sprint; s != nil {
		b.WriteString("\n" + StyleBold.Render("Current Sprint: "+s.Name) + "  " + Dim(s.Dates) + "\n")
		b.WriteString(RenderProgress(s.Progress, 20) + "  " + Dim(s.Points) + "\n")
		for _, t := range s.Tasks {
			b.WriteString(fmt.Sprintf("  %s  %s  %s\n", TaskStatusPill(t.Status), t.Title, Dim(t.Hours)))
		}
	}
	if len(p.Members) > 0 {
		b.WriteString("\n" + StyleBold.Render("Team Members") + "\n")
		b.WriteString(formatMembers(p.Members))
	}
	if len(p.Risks) > 0 {
		b.WriteString("\n" + StyleBold.Render("Risks") + "\n")
		for _, r := range p.Risks {
			b.WriteString(fmt.Sprintf("  %s  %s\n", SeverityIndicator(r.Severity, r.Tone), r.Title))
			b.WriteString("    " + Dim("Impact: "+r.Impact) + "\n")
			b.WriteString("    " + Dim("Mitigation: "+r.Mitigation) + "\n")
		}
	}
	return b.String()
}

func formatMembers(members []selection.MemberRow) string {
	rows := make([][]string, 0, len(members))
	for _, m := range members {
		rows = append(rows, []string{
			StylePurple.Render(m.Initials) + " " + m.Name,
			m.Role.DisplayName(),
			selection.Percent(m.Productivity),
			selection.Number(m.Hours) + "h",
			fmt.Sprint(m.Tasks),
			Truncate(m.CurrentTask, 32),
		})
	}
	return RenderTable([]string{"Member", "Role", "Productivity", "Hours", "Tasks", "Current Task"}, rows, 2, 3, 4)
}

// FormatTeam renders a team page.
func FormatTeam(t selection.TeamScreen, width int) string {
	if t.NotFound != nil {
		return RenderNotFound(t.NotFound) + "\n"
	}
	var b strings.Builder
	b.WriteString(title(t.Name, t.Description))
	b.WriteString(Dim(t.DomainName+" • created "+t.CreatedAt) + "\n\n")
	b.WriteString(RenderTiles(t.Tiles, width) + "\n")
	if m := t.Membership; m != nil {
		b.WriteString("\n" + StyleBold.Render("Your Membership") + "\n")
		b.WriteString(RenderKeyValues([]selection.KeyValue{
			{Key: "Member since", Value: m.MemberSince},
			{Key: "Duration", Value: fmt.Sprintf("%d months", m.Months)},
			{Key: "Team role", Value: m.TeamRole.DisplayName()},
		}))
	}
	b.WriteString("\n" + StyleBold.Render("Members") + "\n")
	b.WriteString(formatMembers(t.Members))
	return b.String()
}

// FormatGallery renders the photo grid as a list with the cursor row
// highlighted.
func FormatGallery(g selection.GalleryScreen, cursor int) string {
	var b strings.Builder
	b.WriteString(title(g.Title, g.Hint))
	for i, p := range g.Photos {
		swatch := StylePurple.Render("■")
		b.WriteString(fmt.Sprintf("%s%s %s  %s\n", marker(i, cursor), swatch, p.Title, Dim("#"+p.ID+"  "+p.ColorToken)))
	}
	return b.String()
}

// FormatPhoto renders a photo detail. editor, when non-empty, replaces the
// title line with the rendered title input.
func FormatPhoto(d selection.PhotoDetail, editor string) string {
	var b strings.Builder
	if editor != "" {
		b.WriteString(Dim("Title: ") + editor + "\n")
	} else {
		b.WriteString(StyleBold.Render(d.Title) + "\n")
	}
	b.WriteString(Dim(d.Caption) + "\n\n")
	if d.FellBack {
		b.WriteString(StyleYellow.Render(fmt.Sprintf("Photo %q not found; showing photo #%s.", d.RequestedID, d.ID)) + "\n\n")
	}
	b.WriteString(RenderKeyValues(d.Details))

	heading := "Photo"
	if d.Presentation == route.PresentationOverlay {
		b.WriteString("\n" + Dim("Close returns to "+d.ClosePath))
		return RenderOverlayBox(heading, b.String())
	}
	return RenderBox(heading, b.String())
}

// FormatSlotPanel renders one named slot of a composed layout.
func FormatSlotPanel(p selection.SlotPanel, width int) string {
	var b strings.Builder
	if p.Subtitle != "" {
		b.WriteString(Dim(p.Subtitle) + "\n\n")
	}
	for _, line := range p.Body {
		b.WriteString(line + "\n")
	}
	if len(p.Tabs) > 0 {
		b.WriteString(RenderTabs(p.Tabs) + "\n")
	}
	if len(p.Tiles) > 0 {
		b.WriteString(RenderTiles(p.Tiles, width) + "\n")
	}
	for _, r := range p.Rows {
		line := "  " + r.Name
		if r.Value != "" {
			line += "  " + Dim(r.Value)
		}
		if r.Status != "" {
			line += "  " + Toned(r.Tone, r.Status)
		}
		b.WriteString(line + "\n")
	}
	if p.Fallback {
		b.WriteString(Dim("(default content)") + "\n")
	}
	heading := p.Title
	if heading == "" {
		heading = string(p.Slot)
	}
	return RenderBox(fmt.Sprintf("%s · %s", p.Slot, heading), strings.TrimRight(b.String(), "\n"))
}

// FormatDashboard renders the three dashboard slots.
func FormatDashboard(d selection.DashboardScreen, width int) string {
	parts := make([]string, 0, len(d.Slots))
	for _, s := range d.Slots {
		parts = append(parts, FormatSlotPanel(s, width))
	}
	return strings.Join(parts, "\n") + "\n"
}

// FormatAdmin renders /admin with whichever conditional slot is active.
func FormatAdmin(a selection.AdminScreen, width int) string {
	return FormatSlotPanel(a.Intro, width) + "\n" + FormatSlotPanel(a.Panel, width) + "\n"
}
