package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/slotboard/internal/cli/formatter"
	"github.com/alexanderramin/slotboard/internal/route"
)

// domainView shows one domain with its Overview and Commercials tabs. On the
// overview the cursor walks the projects and then the teams.
type domainView struct {
	screenView
	links linkList
}

func newDomainView(state *SharedState, r route.Route) *domainView {
	v := &domainView{screenView: newScreenView(state, r)}
	v.relink()
	return v
}

func (v *domainView) relink() {
	d := v.screen.Domain
	if d == nil || d.Overview == nil {
		v.links.set(nil)
		return
	}
	var paths []string
	for _, p := range d.Overview.Projects {
		paths = append(paths, route.ProjectPath(p.ID, route.TabOverview))
	}
	for _, t := range d.Overview.Teams {
		paths = append(paths, route.TeamPath(t.ID))
	}
	v.links.set(paths)
}

func (v *domainView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshViewMsg:
		v.recompose()
		v.relink()
		return v, nil

	case tea.KeyMsg:
		if msg.String() == "tab" {
			if d := v.screen.Domain; d != nil && len(d.Tabs) > 0 {
				return v, switchTab(nextTab(d.Tabs))
			}
			return v, nil
		}
		if cmd, ok := v.links.handleKey(msg); ok {
			return v, cmd
		}
		if cmd, ok := v.scroll(msg); ok {
			return v, cmd
		}
	}
	return v, nil
}

func (v *domainView) View() string {
	if v.screen.Domain == nil {
		return ""
	}
	return v.frame(formatter.FormatDomain(*v.screen.Domain, v.state.Width, v.links.cursor))
}

func (v *domainView) ID() ViewID { return ViewDomain }

func (v *domainView) Title() string {
	if d := v.screen.Domain; d != nil && d.Name != "" {
		return d.Name
	}
	return "Domain " + v.route.EntityID
}

func (v *domainView) ShortHelp() []key.Binding {
	if d := v.screen.Domain; d != nil && d.Overview != nil {
		return []key.Binding{keyMove, keyOpen, keyTab, keyPage}
	}
	return []key.Binding{keyTab, keyPage}
}
