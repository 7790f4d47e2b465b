package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/slotboard/internal/cli/formatter"
	"github.com/alexanderramin/slotboard/internal/domain"
	"github.com/alexanderramin/slotboard/internal/route"
)

// maxHistory bounds the in-session command history.
const maxHistory = 200

// commandBar is the persistent text input at the bottom of the TUI.
// It handles command entry, autocomplete suggestions, and history navigation.
type commandBar struct {
	input   textinput.Model
	state   *SharedState
	focused bool

	// history
	history    []string
	historyIdx int
}

func newCommandBar(state *SharedState) commandBar {
	ti := textinput.New()
	ti.Prompt = ""
	ti.ShowSuggestions = true
	ti.CharLimit = 500
	ti.KeyMap.NextSuggestion = key.NewBinding(key.WithKeys("ctrl+n"))
	ti.KeyMap.PrevSuggestion = key.NewBinding(key.WithKeys("ctrl+p"))

	return commandBar{
		input: ti,
		state: state,
	}
}

// Focus gives focus to the command bar.
func (c *commandBar) Focus() {
	c.focused = true
	c.input.Focus()
}

// Blur removes focus from the command bar.
func (c *commandBar) Blur() {
	c.focused = false
	c.input.Blur()
}

// Focused returns whether the command bar has focus.
func (c *commandBar) Focused() bool {
	return c.focused
}

// SetWidth updates the input width for terminal resizing.
func (c *commandBar) SetWidth(w int) {
	c.input.Width = w - len(c.promptPrefixPlain()) - 1
}

// Update handles key messages when the command bar is focused.
// Returns a tea.Cmd that may include navigation or output messages.
func (c *commandBar) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter:
		input := strings.TrimSpace(c.input.Value())
		c.input.Reset()
		c.input.SetSuggestions(nil)
		if input == "" {
			return nil
		}
		c.addHistory(input)
		return c.executeCommand(input)

	case tea.KeyUp:
		c.historyUp()
		return nil

	case tea.KeyDown:
		c.historyDown()
		return nil

	case tea.KeyEsc:
		c.Blur()
		return nil

	default:
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		c.updateSuggestions()
		return cmd
	}
}

// UpdateNonKey handles non-key messages (e.g., cursor blink).
func (c *commandBar) UpdateNonKey(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return cmd
}

// View renders the command bar.
func (c *commandBar) View() string {
	if !c.focused {
		return c.promptPrefix() + formatter.Dim("press : to type a command")
	}
	return c.promptPrefix() + c.input.View()
}

// promptPrefix returns the styled prompt string.
func (c *commandBar) promptPrefix() string {
	return formatter.StylePurple.Render("slotboard") + " " +
		formatter.Dim("(") + formatter.StyleGreen.Render(string(c.role())) + formatter.Dim(")") +
		" " + formatter.Dim("❯") + " "
}

// promptPrefixPlain returns the plain-text prompt for width calculations.
func (c *commandBar) promptPrefixPlain() string {
	return "slotboard (" + string(c.role()) + ") > "
}

func (c *commandBar) role() domain.Role {
	if c.state.App == nil || c.state.App.Nav == nil {
		return ""
	}
	return c.state.Selection().Role()
}

// ── history ──────────────────────────────────────────────────────────────────

func (c *commandBar) addHistory(line string) {
	if line == "" {
		return
	}
	c.history = append(c.history, line)
	if len(c.history) > maxHistory {
		c.history = c.history[len(c.history)-maxHistory:]
	}
	c.historyIdx = len(c.history)
}

func (c *commandBar) historyUp() {
	if c.historyIdx > 0 {
		c.historyIdx--
		c.input.SetValue(c.history[c.historyIdx])
		c.input.CursorEnd()
	}
}

func (c *commandBar) historyDown() {
	if c.historyIdx < len(c.history)-1 {
		c.historyIdx++
		c.input.SetValue(c.history[c.historyIdx])
		c.input.CursorEnd()
	} else {
		c.historyIdx = len(c.history)
		c.input.SetValue("")
	}
}

// ── suggestions ──────────────────────────────────────────────────────────────

// allCommandNames returns the full list of command names for autocomplete.
func allCommandNames() []string {
	return []string{
		"go", "reload", "back",
		"role", "business", "whoami",
		"access", "photos", "rename",
		"clear", "help", "exit", "quit",
	}
}

// updateSuggestions offers whole-line completions: command names first, then
// the argument values that command accepts.
func (c *commandBar) updateSuggestions() {
	text := c.input.Value()
	if text == "" {
		c.input.SetSuggestions(nil)
		return
	}

	parts := strings.Fields(text)
	trailingSpace := strings.HasSuffix(text, " ")

	if len(parts) <= 1 && !trailingSpace {
		c.input.SetSuggestions(filterSuggestions(allCommandNames(), parts[0]))
		return
	}
	if len(parts) > 2 || (len(parts) == 2 && trailingSpace) {
		c.input.SetSuggestions(nil)
		return
	}

	cmd := strings.ToLower(parts[0])
	prefix := ""
	if len(parts) == 2 {
		prefix = parts[1]
	}

	var pool []string
	switch cmd {
	case "go", "reload":
		pool = c.pathSuggestions()
	case "role", "access":
		for _, r := range domain.AllRoles() {
			pool = append(pool, string(r))
		}
	case "business":
		for _, b := range c.state.App.Org.ListBusinesses() {
			pool = append(pool, b.ID)
		}
	case "rename":
		for _, p := range c.state.App.Photos.List(context.Background()) {
			pool = append(pool, p.ID)
		}
	}

	var full []string
	for _, s := range filterSuggestions(pool, prefix) {
		full = append(full, cmd+" "+s)
	}
	c.input.SetSuggestions(full)
}

// pathSuggestions lists the routes worth jumping to from the current
// business.
func (c *commandBar) pathSuggestions() []string {
	paths := []string{"/", "/gallery", "/dashboard", "/dashboard/page-views", "/dashboard/visitors", "/admin"}
	biz := c.state.Selection().Business
	if biz == nil {
		return paths
	}
	for _, d := range biz.Domains {
		paths = append(paths, route.DomainPath(d.ID, route.TabOverview), route.DomainPath(d.ID, route.TabCommercials))
		for _, p := range d.Projects {
			paths = append(paths, route.ProjectPath(p.ID, route.TabOverview))
		}
		for _, t := range d.Teams {
			paths = append(paths, route.TeamPath(t.ID))
		}
	}
	return paths
}
