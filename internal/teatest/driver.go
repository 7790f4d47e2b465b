// Package teatest drives bubbletea models synchronously in tests.
//
// Update is called directly and every returned Cmd is run to completion
// before the next key, so a test sees the model exactly as a user would
// after each keystroke. Cursor blink Cmds block on timers; they are run
// with a short timeout and dropped.
package teatest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	tea "github.com/charmbracelet/bubbletea"
)

// MaxDrainDepth bounds how many chained Cmds one Send may run.
const MaxDrainDepth = 100

// cmdTimeout separates message factories, which return at once, from
// timer-backed Cmds like the cursor blink (~530ms).
const cmdTimeout = 10 * time.Millisecond

// Driver is a synchronous test harness for any tea.Model.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set once tea.QuitMsg comes out of a Cmd. The runtime
	// normally swallows it, so the model may never record it.
	Quitting bool

	// seen counts delivered messages by their %T name.
	seen map[string]int
}

// Option configures the Driver during construction.
type Option func(*Driver)

// New creates a Driver for model. Call DrainInit afterwards to run Init.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model, seen: make(map[string]int)}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// WithSize delivers a WindowSizeMsg before anything else.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.T.Helper()
		d.deliver(tea.WindowSizeMsg{Width: w, Height: h})
	}
}

// DrainInit runs the model's Init Cmd and everything it leads to.
func (d *Driver) DrainInit() {
	d.T.Helper()
	d.drainCmd(d.Model.Init(), 0)
}

// Send dispatches msg through Update and drains the resulting Cmds.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	d.drainCmd(d.deliver(msg), 0)
}

// ── Keys ─────────────────────────────────────────────────────────────────────

// SendKey sends a tea.KeyMsg through the model.
func (d *Driver) SendKey(msg tea.KeyMsg) {
	d.T.Helper()
	d.Send(msg)
}

// PressKey sends a character key.
func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	d.SendKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// Press sends a non-rune key such as tea.KeyTab or tea.KeyCtrlU.
func (d *Driver) Press(k tea.KeyType) {
	d.T.Helper()
	d.SendKey(tea.KeyMsg{Type: k})
}

func (d *Driver) PressEnter() { d.T.Helper(); d.Press(tea.KeyEnter) }
func (d *Driver) PressEsc()   { d.T.Helper(); d.Press(tea.KeyEsc) }
func (d *Driver) PressTab()   { d.T.Helper(); d.Press(tea.KeyTab) }
func (d *Driver) PressUp()    { d.T.Helper(); d.Press(tea.KeyUp) }
func (d *Driver) PressDown()  { d.T.Helper(); d.Press(tea.KeyDown) }
func (d *Driver) PressCtrlC() { d.T.Helper(); d.Press(tea.KeyCtrlC) }

// ClearLine sends ctrl+u, which empties a focused text input up to the
// cursor.
func (d *Driver) ClearLine() { d.T.Helper(); d.Press(tea.KeyCtrlU) }

// Type sends s one rune at a time.
func (d *Driver) Type(s string) {
	d.T.Helper()
	for _, r := range s {
		d.PressKey(r)
	}
}

// ── Inspection ───────────────────────────────────────────────────────────────

// View returns the model's rendered output.
func (d *Driver) View() string {
	return d.Model.View()
}

// PlainView returns View with ANSI styling stripped.
func (d *Driver) PlainView() string {
	return ansi.Strip(d.Model.View())
}

// Seen reports how many messages of msg's dynamic type reached Update.
func (d *Driver) Seen(msg tea.Msg) int {
	return d.seen[fmt.Sprintf("%T", msg)]
}

// ── Command draining ─────────────────────────────────────────────────────────

func (d *Driver) deliver(msg tea.Msg) tea.Cmd {
	d.seen[fmt.Sprintf("%T", msg)]++
	updated, cmd := d.Model.Update(msg)
	d.Model = updated
	return cmd
}

func (d *Driver) drainCmd(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= MaxDrainDepth {
		d.T.Logf("teatest.Driver: drain depth limit (%d) reached", MaxDrainDepth)
		return
	}

	msg := execCmdWithTimeout(cmd)
	if msg == nil || isCursorBlink(msg) {
		return
	}

	switch msg := msg.(type) {
	case tea.BatchMsg:
		for _, sub := range msg {
			d.drainCmd(sub, depth+1)
		}
	case tea.QuitMsg:
		d.Quitting = true
		d.deliver(msg)
	default:
		d.drainCmd(d.deliver(msg), depth+1)
	}
}

// execCmdWithTimeout runs cmd and returns its message, or nil when cmd
// does not finish within cmdTimeout.
func execCmdWithTimeout(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() {
		ch <- cmd()
	}()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(cmdTimeout):
		return nil
	}
}

// isCursorBlink matches the unexported blink messages of bubbles/cursor.
func isCursorBlink(msg tea.Msg) bool {
	t := fmt.Sprintf("%T", msg)
	return strings.Contains(t, "Blink") || strings.Contains(t, "blink")
}
