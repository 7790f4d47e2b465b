package cli

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/slotboard/internal/cli/formatter"
	"github.com/alexanderramin/slotboard/internal/route"
	"github.com/alexanderramin/slotboard/internal/viewstate"
)

const maxTitleLen = 80

// photoView is the single photo renderer. On an overlay route the app draws
// it over the gallery; on /gallery/photo/{id} after a hard load it is a page
// of its own. Title editing runs through the overlay state machine.
type photoView struct {
	screenView
	overlay viewstate.Overlay
	input   textinput.Model
	errMsg  string
}

func newPhotoView(state *SharedState, r route.Route) *photoView {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = maxTitleLen

	v := &photoView{screenView: newScreenView(state, r), input: ti}
	if p := v.screen.Photo; p != nil {
		v.overlay = v.overlay.Open(p.ID)
	}
	return v
}

func (v *photoView) IsOverlay() bool     { return v.route.IsOverlay() }
func (v *photoView) CapturesInput() bool { return v.overlay.State == viewstate.OverlayEditing }
func (v *photoView) HandlesEsc() bool    { return true }

func (v *photoView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshViewMsg:
		v.recompose()
		return v, nil

	case tea.KeyMsg:
		if v.overlay.State == viewstate.OverlayEditing {
			return v.updateEditing(msg)
		}
		switch msg.String() {
		case "e", "enter":
			return v, v.beginEdit()
		case "x", "esc":
			return v, v.close()
		}
		return v, nil
	}

	if v.overlay.State == viewstate.OverlayEditing {
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *photoView) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		return v, v.commit()
	case tea.KeyEsc:
		next, err := v.overlay.Escape()
		if err != nil {
			v.errMsg = err.Error()
			return v, nil
		}
		v.overlay = next
		v.input.Blur()
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	if next, err := v.overlay.SetDraft(v.input.Value()); err == nil {
		v.overlay = next
	}
	return v, cmd
}

func (v *photoView) beginEdit() tea.Cmd {
	p := v.screen.Photo
	if p == nil {
		return nil
	}
	next, err := v.overlay.BeginEdit(p.Title)
	if err != nil {
		v.errMsg = err.Error()
		return nil
	}
	v.overlay = next
	v.errMsg = ""
	v.input.SetValue(next.Draft())
	v.input.CursorEnd()
	return v.input.Focus()
}

// commit leaves editing and saves the draft when it is a real change.
func (v *photoView) commit() tea.Cmd {
	next, title, save, err := v.overlay.Commit()
	if err != nil {
		v.errMsg = err.Error()
		return nil
	}
	v.overlay = next
	v.input.Blur()
	if !save {
		return nil
	}

	nav := v.state.Nav()
	id := next.PhotoID
	return func() tea.Msg {
		if _, err := nav.RenamePhoto(context.Background(), id, title); err != nil {
			return cmdOutputMsg{output: shellError(err)}
		}
		return refreshViewMsg{}
	}
}

// close dismisses the photo. An overlay goes back to the gallery; a full
// page pops like any other view.
func (v *photoView) close() tea.Cmd {
	next, err := v.overlay.Close()
	if err != nil {
		return nil
	}
	v.overlay = next
	if v.IsOverlay() {
		closePath := route.CloseOverlayPath
		if p := v.screen.Photo; p != nil && p.ClosePath != "" {
			closePath = p.ClosePath
		}
		return navigate(closePath)
	}
	return popView()
}

func (v *photoView) View() string {
	p := v.screen.Photo
	if p == nil {
		return ""
	}
	editor := ""
	if v.overlay.State == viewstate.OverlayEditing {
		editor = v.input.View()
	}
	out := formatter.FormatPhoto(*p, editor)
	if v.errMsg != "" {
		out += "\n" + formatter.StyleRed.Render(v.errMsg)
	}
	return out
}

func (v *photoView) ID() ViewID { return ViewPhoto }

func (v *photoView) Title() string {
	if p := v.screen.Photo; p != nil {
		return p.Title
	}
	return "Photo"
}

func (v *photoView) ShortHelp() []key.Binding {
	if v.overlay.State == viewstate.OverlayEditing {
		return []key.Binding{keySave, keyUndo}
	}
	return []key.Binding{keyEdit, keyClose}
}
