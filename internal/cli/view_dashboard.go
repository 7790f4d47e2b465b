package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/slotboard/internal/cli/formatter"
	"github.com/alexanderramin/slotboard/internal/route"
)

// dashboardView shows the main, team and analytics slots. The number keys
// switch the analytics sub-route, leaving the other slots mounted.
type dashboardView struct {
	screenView
}

func newDashboardView(state *SharedState, r route.Route) *dashboardView {
	return &dashboardView{screenView: newScreenView(state, r)}
}

func (v *dashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshViewMsg:
		v.recompose()
		return v, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "0":
			return v, switchTab("/dashboard")
		case "1":
			return v, switchTab("/dashboard/" + string(route.TabPageViews))
		case "2":
			return v, switchTab("/dashboard/" + string(route.TabVisitors))
		}
		if cmd, ok := v.scroll(msg); ok {
			return v, cmd
		}
	}
	return v, nil
}

func (v *dashboardView) View() string {
	if v.screen.Dashboard == nil {
		return ""
	}
	return v.frame(formatter.FormatDashboard(*v.screen.Dashboard, v.state.Width))
}

func (v *dashboardView) ID() ViewID { return ViewDashboard }

func (v *dashboardView) Title() string {
	if v.route.Tab != route.TabNone {
		return "Dashboard / " + string(v.route.Tab)
	}
	return "Dashboard"
}

func (v *dashboardView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "page views")),
		key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "visitors")),
		key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "no tab")),
		keyPage,
	}
}
