package cli

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/alexanderramin/slotboard/internal/repository"
	"github.com/alexanderramin/slotboard/internal/selection"
	"github.com/alexanderramin/slotboard/internal/service"
	"github.com/alexanderramin/slotboard/internal/teatest"
	"github.com/alexanderramin/slotboard/internal/viewstate"
)

// testApp wires a full App over a fresh copy of the fixture dataset, so
// photo renames in one test never leak into another.
func testApp(t *testing.T) *App {
	t.Helper()
	org := repository.MustMemoryOrgRepo()
	photos := repository.NewPhotoStore(org.Photos())
	composer := selection.NewComposer(org, photos)
	photoSvc := service.NewPhotoService(photos)

	return &App{
		Nav:     service.NewNavigationService(org, viewstate.NewStore(viewstate.Default(org)), photoSvc, composer),
		Photos:  photoSvc,
		Screens: service.NewScreenService(org, composer),
		Org:     org,
		Logger:  zerolog.Nop(),
	}
}

// TestDriver wraps teatest.Driver with slotboard-specific inspection
// methods: the view stack, the session's view-state and the command bar.
type TestDriver struct {
	*teatest.Driver
	app *App
}

// NewTestDriver starts the TUI on path, as if the user opened that URL.
func NewTestDriver(t *testing.T, app *App, path string) *TestDriver {
	t.Helper()

	d := teatest.New(t, newAppModel(app, path), teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d, app: app}
}

// Command focuses the command bar with ':', types input and presses Enter.
// Output-only commands leave the bar focused; it is blurred afterwards so
// later keys reach the active view.
func (d *TestDriver) Command(input string) {
	d.T.Helper()
	d.PressKey(':')
	d.Type(input)
	d.PressEnter()
	if d.CmdBarFocused() {
		d.PressEsc()
	}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view, or -1 for an empty stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ActiveViewTitle returns the Title of the top view.
func (d *TestDriver) ActiveViewTitle() string {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ""
	}
	return v.Title()
}

// ActivePath returns the route the top view renders.
func (d *TestDriver) ActivePath() string {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ""
	}
	return v.Path()
}

// ViewStackIDs returns the ViewIDs of all views on the stack, bottom to top.
func (d *TestDriver) ViewStackIDs() []ViewID {
	m := d.appModel()
	ids := make([]ViewID, len(m.viewStack))
	for i, v := range m.viewStack {
		ids[i] = v.ID()
	}
	return ids
}

// Selection returns the session's view-state.
func (d *TestDriver) Selection() viewstate.State {
	return d.app.Nav.State()
}

// IsQuitting reports whether the model or the runtime saw a quit.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}

func (d *TestDriver) CmdBarFocused() bool {
	m := d.appModel()
	return m.cmdBar.Focused()
}

// LastOutput returns the last command output shown in the content area.
func (d *TestDriver) LastOutput() string {
	return d.appModel().out.text
}
