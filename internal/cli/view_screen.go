package cli

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/slotboard/internal/route"
	"github.com/alexanderramin/slotboard/internal/selection"
)

// screenView is the part every page view shares: the route it renders, the
// screen composed for it and a scrollable viewport.
type screenView struct {
	state  *SharedState
	route  route.Route
	screen selection.Screen
	vp     viewport.Model
}

func newScreenView(state *SharedState, r route.Route) screenView {
	vp := viewport.New(0, 0)
	vp.KeyMap = outputViewportKeyMap()
	sv := screenView{state: state, route: r, vp: vp}
	sv.recompose()
	return sv
}

// recompose rebuilds the screen from the current selection. Called on
// creation and on every refreshViewMsg.
func (v *screenView) recompose() {
	v.screen = v.state.Compose(v.route)
}

func (v *screenView) Path() string { return v.route.Path }

func (v *screenView) Init() tea.Cmd { return nil }

// scroll forwards scroll keys to the viewport. It reports whether msg was
// consumed.
func (v *screenView) scroll(msg tea.KeyMsg) (tea.Cmd, bool) {
	if !isOutputScrollKey(msg) || msg.Type == tea.KeyUp || msg.Type == tea.KeyDown {
		return nil, false
	}
	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return cmd, true
}

// frame clips content to the content area. Without a known terminal size
// the content is returned whole.
func (v *screenView) frame(content string) string {
	if v.state.Height <= 0 {
		return content
	}
	v.vp.Width = v.state.Width
	v.vp.Height = v.state.ContentHeight()
	v.vp.SetContent(content)
	return v.vp.View()
}

// linkList is a cursor over navigable paths.
type linkList struct {
	paths  []string
	cursor int
}

func (l *linkList) set(paths []string) {
	l.paths = paths
	if l.cursor >= len(paths) {
		l.cursor = max(0, len(paths)-1)
	}
}

// handleKey moves the cursor or opens the selected path. It reports whether
// msg was consumed.
func (l *linkList) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "up", "k":
		if l.cursor > 0 {
			l.cursor--
		}
		return nil, true
	case "down", "j":
		if l.cursor < len(l.paths)-1 {
			l.cursor++
		}
		return nil, true
	case "enter":
		if l.cursor < len(l.paths) {
			return navigate(l.paths[l.cursor]), true
		}
		return nil, true
	}
	return nil, false
}

// selected is the path under the cursor, "" when the list is empty.
func (l *linkList) selected() string {
	if l.cursor < len(l.paths) {
		return l.paths[l.cursor]
	}
	return ""
}

var (
	keyMove  = key.NewBinding(key.WithKeys("up", "down", "j", "k"), key.WithHelp("↑↓", "move"))
	keyOpen  = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open"))
	keyTab   = key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch tab"))
	keyPage  = key.NewBinding(key.WithKeys("pgup", "pgdown"), key.WithHelp("pgup/pgdn", "scroll"))
	keyEdit  = key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit title"))
	keySave  = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save"))
	keyClose = key.NewBinding(key.WithKeys("x", "esc"), key.WithHelp("x/esc", "close"))
	keyUndo  = key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel"))
)

// nextTab returns the path of the tab after the active one, wrapping.
func nextTab(tabs []selection.TabLink) string {
	for i, t := range tabs {
		if t.Active {
			return tabs[(i+1)%len(tabs)].Path
		}
	}
	if len(tabs) > 0 {
		return tabs[0].Path
	}
	return ""
}
