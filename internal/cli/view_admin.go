package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/slotboard/internal/cli/formatter"
	"github.com/alexanderramin/slotboard/internal/route"
)

// adminView shows /admin. Which panel appears follows the current role, so
// a role switch swaps it on refresh.
type adminView struct {
	screenView
}

func newAdminView(state *SharedState, r route.Route) *adminView {
	return &adminView{screenView: newScreenView(state, r)}
}

func (v *adminView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

func (v *adminView) View() string {
	if v.screen.Admin == nil {
		return ""
	}
	return v.frame(formatter.FormatAdmin(*v.screen.Admin, v.state.Width))
}

func (v *adminView) ID() ViewID               { return ViewAdmin }
func (v *adminView) Title() string            { return "Admin" }
func (v *adminView) ShortHelp() []key.Binding { return []key.Binding{keyPage} }
