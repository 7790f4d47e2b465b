package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/slotboard/internal/cli/formatter"
	"github.com/alexanderramin/slotboard/internal/route"
)

type teamView struct {
	screenView
}

func newTeamView(state *SharedState, r route.Route) *teamView {
	return &teamView{screenView: newScreenView(state, r)}
}

func (v *teamView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshViewMsg:
		v.recompose()
		return v, nil
	case tea.KeyMsg:
		if cmd, ok := v.scroll(msg); ok {
			return v, cmd
		}
	}
	return v, nil
}

func (v *teamView) View() string {
	if v.screen.Team == nil {
		return ""
	}
	return v.frame(formatter.FormatTeam(*v.screen.Team, v.state.Width))
}

func (v *teamView) ID() ViewID { return ViewTeam }

func (v *teamView) Title() string {
	if t := v.screen.Team; t != nil && t.Name != "" {
		return t.Name
	}
	return "Team " + v.route.EntityID
}

func (v *teamView) ShortHelp() []key.Binding {
	return []key.Binding{keyPage}
}
