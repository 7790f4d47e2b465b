package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/slotboard/internal/cli/formatter"
	"github.com/alexanderramin/slotboard/internal/route"
)

type projectView struct {
	screenView
}

func newProjectView(state *SharedState, r route.Route) *projectView {
	return &projectView{screenView: newScreenView(state, r)}
}

func (v *projectView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshViewMsg:
		v.recompose()
		return v, nil

	case tea.KeyMsg:
		if msg.String() == "tab" {
			if p := v.screen.Project; p != nil && len(p.Tabs) > 0 {
				return v, switchTab(nextTab(p.Tabs))
			}
			return v, nil
		}
		if cmd, ok := v.scroll(msg); ok {
			return v, cmd
		}
	}
	return v, nil
}

func (v *projectView) View() string {
	if v.screen.Project == nil {
		return ""
	}
	return v.frame(formatter.FormatProject(*v.screen.Project, v.state.Width))
}

func (v *projectView) ID() ViewID { return ViewProject }

func (v *projectView) Title() string {
	if p := v.screen.Project; p != nil && p.Name != "" {
		return p.Name
	}
	return "Project " + v.route.EntityID
}

func (v *projectView) ShortHelp() []key.Binding {
	return []key.Binding{keyTab, keyPage}
}
