package cli

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/slotboard/internal/cli/formatter"
	"github.com/alexanderramin/slotboard/internal/route"
)

// appModel is the root bubbletea Model for the TUI.
// It manages a view stack and a persistent command bar.
type appModel struct {
	state     *SharedState
	viewStack []View
	cmdBar    commandBar
	quitting  bool
	out       outputPane
}

// newAppModel starts the TUI on startPath as a hard load, the way a browser
// opens a URL. An unresolvable start path falls back to the home view.
func newAppModel(app *App, startPath string) appModel {
	state := &SharedState{App: app}
	m := appModel{
		state:  state,
		cmdBar: newCommandBar(state),
		out:    newOutputPane(),
	}

	ctx := context.Background()
	r, err := app.Nav.Navigate(ctx, startPath, route.HardLoad)
	if err != nil {
		m.out.text = shellError(err)
		r, _ = app.Nav.Navigate(ctx, "/", route.HardLoad)
	}
	m.viewStack = stackFor(state, r)

	return m
}

// viewFor builds the view that renders r on its own.
func viewFor(state *SharedState, r route.Route) View {
	switch r.Kind {
	case route.KindDomain:
		return newDomainView(state, r)
	case route.KindProject:
		return newProjectView(state, r)
	case route.KindTeam:
		return newTeamView(state, r)
	case route.KindGallery:
		return newGalleryView(state, r)
	case route.KindPhoto:
		return newPhotoView(state, r)
	case route.KindDashboard:
		return newDashboardView(state, r)
	case route.KindAdmin:
		return newAdminView(state, r)
	default:
		return newEverythingView(state, r)
	}
}

// stackFor builds the whole stack for a hard load of r. An overlay photo
// always gets a freshly built gallery underneath it.
func stackFor(state *SharedState, r route.Route) []View {
	if r.IsOverlay() {
		return []View{newGalleryBackdrop(state, r.EntityID), newPhotoView(state, r)}
	}
	return []View{viewFor(state, r)}
}

// activeView returns the top view on the stack, or nil.
func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

// setActiveView replaces the top of the view stack.
// If the stack is empty, this is a no-op.
func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

// overlayBase returns the view drawn beneath an overlay on top of the
// stack, or nil when the top view is not an overlay.
func (m *appModel) overlayBase() View {
	if len(m.viewStack) < 2 {
		return nil
	}
	if ov, ok := m.activeView().(overlayView); ok && ov.IsOverlay() {
		return m.viewStack[len(m.viewStack)-2]
	}
	return nil
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	var cmds []tea.Cmd
	for _, v := range m.viewStack {
		cmds = append(cmds, v.Init())
	}
	if m.out.active() {
		cmds = append(cmds, outputCmd(m.out.text))
	}
	return tea.Batch(cmds...)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.cmdBar.SetWidth(msg.Width)
		m.out.resize(msg.Width, m.state.ContentHeight())
		if v := m.activeView(); v != nil {
			updated, cmd := v.Update(msg)
			m.setActiveView(updated.(View))
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.out.active() {
			return m, m.out.update(msg)
		}

	// Navigation messages from views or command bar
	case navigateMsg:
		return m.handleNavigate(msg)

	case reloadTopMsg:
		if v := m.activeView(); v != nil && v.Path() != "" {
			return m.handleNavigate(navigateMsg{path: v.Path(), load: route.HardLoad})
		}
		return m, nil

	case pushViewMsg:
		m.cmdBar.Blur()
		m.out.clear()
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case popViewMsg:
		m.pop()
		return m, nil

	case refreshViewMsg:
		// Broadcast to ALL views in the stack so the gallery under an
		// overlay picks up a renamed photo and every page follows a role
		// switch.
		var cmds []tea.Cmd
		for i, v := range m.viewStack {
			updated, cmd := v.Update(msg)
			m.viewStack[i] = updated.(View)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)

	case cmdOutputMsg:
		m.out.show(msg.output, m.state.Width, m.state.ContentHeight())
		return m, nil

	case wizardCompleteMsg:
		// Atomically pop the wizard view and execute the follow-up command.
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		m.out.clear()
		return m, msg.nextCmd

	case quitMsg:
		m.quitting = true
		return m, tea.Quit
	}

	// Forward other messages to command bar (e.g., cursor blink)
	if m.cmdBar.Focused() {
		cmd := m.cmdBar.UpdateNonKey(msg)
		return m, cmd
	}

	// Forward to active view
	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	return m, nil
}

// handleNavigate resolves msg through the navigation service and updates
// the stack:
//   - a hard load rebuilds the stack from scratch;
//   - /gallery reached from an overlay pops the overlay;
//   - an overlay photo is pushed over the gallery, adding one if needed;
//   - anything else is pushed, or replaces the top view for tab switches.
func (m appModel) handleNavigate(msg navigateMsg) (tea.Model, tea.Cmd) {
	r, err := m.state.Nav().Navigate(context.Background(), msg.path, msg.load)
	if err != nil {
		return m, outputCmd(shellError(err))
	}
	m.cmdBar.Blur()
	m.out.clear()

	if msg.load == route.HardLoad {
		m.viewStack = stackFor(m.state, r)
		return m, m.Init()
	}

	if r.Kind == route.KindGallery {
		if base := m.overlayBase(); base != nil && base.ID() == ViewGallery {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
			return m, refresh
		}
	}

	if r.IsOverlay() {
		if m.overlayBase() != nil {
			// Opening another photo from an overlay swaps the overlay.
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		var cmds []tea.Cmd
		if top := m.activeView(); top == nil || top.ID() != ViewGallery {
			g := newGalleryBackdrop(m.state, r.EntityID)
			m.viewStack = append(m.viewStack, g)
			cmds = append(cmds, g.Init())
		}
		p := newPhotoView(m.state, r)
		m.viewStack = append(m.viewStack, p)
		cmds = append(cmds, p.Init())
		return m, tea.Batch(cmds...)
	}

	v := viewFor(m.state, r)
	if msg.replace && len(m.viewStack) > 0 {
		m.setActiveView(v)
	} else {
		m.viewStack = append(m.viewStack, v)
	}
	return m, v.Init()
}

// pop removes the top view and re-selects what the revealed view shows, so
// the view-state follows the stack back.
func (m *appModel) pop() {
	if len(m.viewStack) <= 1 {
		return
	}
	m.viewStack = m.viewStack[:len(m.viewStack)-1]
	m.out.clear()
	if top := m.activeView(); top != nil && top.Path() != "" {
		_, _ = m.state.Nav().Navigate(context.Background(), top.Path(), route.SoftLoad)
	}
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global quit
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	// If command bar is focused, route keys there
	if m.cmdBar.Focused() {
		if msg.Type == tea.KeyEnter {
			m.out.clear() // Clear stale output before new command runs
		}
		cmd := m.cmdBar.Update(msg)
		return m, cmd
	}

	// Output on screen takes the scroll keys. Anything else dismisses it and
	// is handled as usual, except esc which only dismisses.
	if m.out.active() {
		if isOutputScrollKey(msg) {
			return m, m.out.update(msg)
		}
		m.out.clear()
		if msg.Type == tea.KeyEsc {
			return m, nil
		}
	}

	// If active view captures input (has its own text input), forward directly.
	// This bypasses global keybindings so the photo title editor can receive
	// all characters including 'q', ':', etc.
	if v := m.activeView(); v != nil && viewCapturesInput(v) {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	// Global keys when command bar is NOT focused
	switch {
	case msg.String() == ":":
		m.cmdBar.Focus()
		return m, nil

	case msg.String() == "q":
		m.quitting = true
		return m, tea.Quit

	case msg.String() == "r":
		// Reload the current path as a hard load.
		return m, func() tea.Msg { return reloadTopMsg{} }

	case msg.Type == tea.KeyEsc:
		if v := m.activeView(); v != nil {
			if h, ok := v.(escHandler); ok && h.HandlesEsc() {
				break
			}
		}
		m.pop()
		return m, nil
	}

	// Forward to active view
	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	return m, nil
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var sections []string

	sections = append(sections, m.renderHeader())

	// Content area: scrollable command output, an overlay over the view
	// beneath it, or the active view.
	switch {
	case m.out.active():
		sections = append(sections, m.out.view(m.state.Height > 0))
	case m.overlayBase() != nil:
		sections = append(sections, composeOverlay(m.overlayBase().View(), m.activeView().View()))
	default:
		if v := m.activeView(); v != nil {
			sections = append(sections, v.View())
		}
	}

	sections = append(sections, m.renderStatusBar())
	sections = append(sections, m.cmdBar.View())

	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}

	return result
}

// overlayTop is the line of the base view where an overlay starts.
const overlayTop = 2

// composeOverlay draws over on top of base, replacing whole lines so no
// escape sequence is cut in half. Base lines above and below stay visible.
func composeOverlay(base, over string) string {
	baseLines := strings.Split(base, "\n")
	overLines := strings.Split(over, "\n")
	need := overlayTop + len(overLines)
	for len(baseLines) < need {
		baseLines = append(baseLines, "")
	}
	for i, l := range overLines {
		baseLines[overlayTop+i] = "    " + l
	}
	return strings.Join(baseLines, "\n")
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	title := formatter.StylePurple.Render("slotboard")

	// Breadcrumb from view stack
	var crumbs []string
	for _, v := range m.viewStack {
		if t := v.Title(); t != "" {
			crumbs = append(crumbs, t)
		}
	}
	breadcrumb := ""
	if len(crumbs) > 0 {
		breadcrumb = " " + formatter.Dim("›") + " " + formatter.Dim(strings.Join(crumbs, " › "))
	}

	header := title + breadcrumb

	st := m.state.Selection()
	header += "  " + formatter.Dim("[") + formatter.StyleGreen.Render(st.Role().DisplayName()) + formatter.Dim("]")
	if st.Business != nil {
		header += " " + formatter.Dim(st.Business.Name)
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return header + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	var hints []string

	if m.out.scrollable() {
		hints = append(hints, m.out.position(), formatter.Dim("↑↓ pgup/pgdn: scroll"), formatter.Dim("esc: dismiss"))
	} else if v := m.activeView(); v != nil && !m.out.active() {
		for _, b := range v.ShortHelp() {
			hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
		}
	}

	if !m.cmdBar.Focused() && !m.out.active() {
		if len(m.viewStack) > 1 {
			hints = append(hints, formatter.Dim("esc: back"))
		}
		hints = append(hints, formatter.Dim("r: reload"))
		hints = append(hints, formatter.Dim(": command"))
	}

	bar := strings.Join(hints, "  ")
	sepStyle := lipgloss.NewStyle().Foreground(formatter.ColorDim)
	sep := sepStyle.Render(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + bar
}

// viewCapturesInput returns true if the active view should receive all key
// events, bypassing global keybindings like q, : and Esc.
func viewCapturesInput(v View) bool {
	if v == nil {
		return false
	}
	if v.ID() == ViewForm {
		return true
	}
	if c, ok := v.(inputCapturer); ok {
		return c.CapturesInput()
	}
	return false
}
