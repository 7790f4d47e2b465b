package cli

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/slotboard/internal/cli/formatter"
)

// outputPane holds the text of the last command until a key dismisses it.
// Long output scrolls inside a viewport.
type outputPane struct {
	text string
	vp   viewport.Model
}

func newOutputPane() outputPane {
	vp := viewport.New(0, 0)
	vp.KeyMap = outputViewportKeyMap()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3
	return outputPane{vp: vp}
}

func (o *outputPane) active() bool { return o.text != "" }

func (o *outputPane) show(text string, width, height int) {
	o.text = text
	o.vp.SetContent(text)
	o.resize(width, height)
	o.vp.GotoTop()
}

func (o *outputPane) resize(width, height int) {
	o.vp.Width = width
	o.vp.Height = height
}

func (o *outputPane) clear() { o.text = "" }

func (o *outputPane) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	o.vp, cmd = o.vp.Update(msg)
	return cmd
}

// view falls back to the raw text until the terminal size is known.
func (o *outputPane) view(sized bool) string {
	if !sized {
		return o.text
	}
	return o.vp.View()
}

func (o *outputPane) scrollable() bool {
	return o.active() && o.vp.TotalLineCount() > o.vp.Height
}

// position is a dim scroll marker for the status bar.
func (o *outputPane) position() string {
	switch {
	case o.vp.AtTop():
		return formatter.Dim("[TOP]")
	case o.vp.AtBottom():
		return formatter.Dim("[END]")
	}
	return formatter.Dim(fmt.Sprintf("[%d%%]", int(o.vp.ScrollPercent()*100)))
}

// outputViewportKeyMap scrolls on arrow and page keys only, leaving letters
// free for global shortcuts.
func outputViewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		Up:           key.NewBinding(key.WithKeys("up")),
		Down:         key.NewBinding(key.WithKeys("down")),
	}
}

func isOutputScrollKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown,
		tea.KeyHome, tea.KeyEnd, tea.KeyCtrlU, tea.KeyCtrlD:
		return true
	}
	return false
}
