package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/slotboard/internal/cli/formatter"
	"github.com/alexanderramin/slotboard/internal/route"
)

// everythingView is the home view: the business overview, the domain list or
// the personal overview depending on role. The cursor walks the domain rows
// or, on the personal variant, the project rows.
type everythingView struct {
	screenView
	links linkList
}

func newEverythingView(state *SharedState, r route.Route) *everythingView {
	v := &everythingView{screenView: newScreenView(state, r)}
	v.relink()
	return v
}

func (v *everythingView) relink() {
	e := v.screen.Everything
	if e == nil {
		v.links.set(nil)
		return
	}
	var paths []string
	for _, d := range e.Domains {
		paths = append(paths, route.DomainPath(d.ID, route.TabOverview))
	}
	for _, p := range e.Projects {
		paths = append(paths, route.ProjectPath(p.ID, route.TabOverview))
	}
	v.links.set(paths)
}

func (v *everythingView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshViewMsg:
		v.recompose()
		v.relink()
		return v, nil

	case tea.KeyMsg:
		if cmd, ok := v.links.handleKey(msg); ok {
			return v, cmd
		}
		switch msg.String() {
		case "g":
			return v, navigate("/gallery")
		case "d":
			return v, navigate("/dashboard")
		case "a":
			return v, navigate("/admin")
		}
		if cmd, ok := v.scroll(msg); ok {
			return v, cmd
		}
	}
	return v, nil
}

func (v *everythingView) View() string {
	if v.screen.Everything == nil {
		return ""
	}
	return v.frame(formatter.FormatEverything(*v.screen.Everything, v.state.Width, v.links.cursor))
}

func (v *everythingView) ID() ViewID { return ViewEverything }

func (v *everythingView) Title() string {
	if e := v.screen.Everything; e != nil {
		return e.Title
	}
	return "Everything"
}

func (v *everythingView) ShortHelp() []key.Binding {
	return []key.Binding{
		keyMove, keyOpen,
		key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "gallery")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "dashboard")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "admin")),
	}
}
