package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/slotboard/internal/cli/formatter"
	"github.com/alexanderramin/slotboard/internal/domain"
)

// executeCommand dispatches a text command and returns a tea.Cmd.
// Commands may return cmdOutputMsg for display, navigation messages
// for view transitions, or quitMsg for exit.
func (c *commandBar) executeCommand(input string) tea.Cmd {
	parts, err := splitShellArgs(input)
	if err != nil {
		return outputCmd(shellError(err))
	}
	if len(parts) == 0 {
		return nil
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "go", "open":
		if len(args) == 0 {
			return outputCmd(formatter.StyleYellow.Render("Usage: go <path>"))
		}
		return navigate(args[0])
	case "reload":
		if len(args) > 0 {
			return reload(args[0])
		}
		return func() tea.Msg { return reloadTopMsg{} }
	case "back":
		return popView()
	case "role":
		return c.cmdRole(args)
	case "business":
		return c.cmdBusiness(args)
	case "whoami":
		return outputCmd(c.describeSelection())
	case "access":
		return c.cmdAccess(args)
	case "photos":
		return outputCmd(formatter.FormatPhotoList(c.state.App.Photos.List(context.Background())))
	case "rename":
		return c.cmdRename(args)
	case "help":
		return outputCmd(formatShellHelp())
	case "clear":
		return nil
	case "exit", "quit":
		return func() tea.Msg { return quitMsg{} }
	default:
		return outputCmd(fmt.Sprintf("Unknown command: %s. Type 'help' for available commands.", cmd))
	}
}

// outputCmd returns a tea.Cmd that sends a cmdOutputMsg.
func outputCmd(s string) tea.Cmd {
	if s == "" {
		return nil
	}
	return func() tea.Msg { return cmdOutputMsg{output: s} }
}

// cmdRole switches the viewing role. Without an argument it opens a picker.
func (c *commandBar) cmdRole(args []string) tea.Cmd {
	if len(args) > 0 {
		return c.switchRole(args[0])
	}
	var result string
	form := wizardSelectRole(c.state.Selection().Role(), &result)
	return startWizardCmd(c.state, "Switch Role", form, func() tea.Cmd {
		return c.switchRole(result)
	})
}

func (c *commandBar) switchRole(name string) tea.Cmd {
	role, err := domain.ParseRole(name)
	if err != nil {
		return outputCmd(shellError(err))
	}
	if err := c.state.Nav().SwitchRole(context.Background(), role); err != nil {
		return outputCmd(shellError(err))
	}
	return tea.Batch(
		refresh,
		outputCmd(formatter.StyleGreen.Render("Viewing as "+role.DisplayName())),
	)
}

// cmdBusiness switches business. Without an argument it opens a picker.
func (c *commandBar) cmdBusiness(args []string) tea.Cmd {
	if len(args) > 0 {
		return c.switchBusiness(args[0])
	}
	var result string
	current := ""
	if b := c.state.Selection().Business; b != nil {
		current = b.ID
	}
	form := wizardSelectBusiness(c.state.App.Org, current, &result)
	if form == nil {
		return outputCmd(formatter.Dim("Only one business is available."))
	}
	return startWizardCmd(c.state, "Switch Business", form, func() tea.Cmd {
		return c.switchBusiness(result)
	})
}

func (c *commandBar) switchBusiness(id string) tea.Cmd {
	if err := c.state.Nav().SwitchBusiness(context.Background(), id); err != nil {
		return outputCmd(shellError(err))
	}
	// A new business clears the selection, so go home.
	return tea.Batch(
		navigate("/"),
		outputCmd(formatter.StyleGreen.Render("Switched to "+c.state.Selection().Business.Name)),
	)
}

func (c *commandBar) cmdAccess(args []string) tea.Cmd {
	roles := domain.AllRoles()
	if len(args) > 0 {
		r, err := domain.ParseRole(args[0])
		if err != nil {
			return outputCmd(shellError(err))
		}
		roles = []domain.Role{r}
	}
	return outputCmd(formatter.FormatAccess(roles))
}

func (c *commandBar) cmdRename(args []string) tea.Cmd {
	if len(args) < 2 {
		return outputCmd(formatter.StyleYellow.Render("Usage: rename <photo-id> <title>"))
	}
	id, title := args[0], strings.Join(args[1:], " ")
	changed, err := c.state.Nav().RenamePhoto(context.Background(), id, title)
	if err != nil {
		return outputCmd(shellError(err))
	}
	if !changed {
		return outputCmd(formatter.Dim("Title unchanged."))
	}
	return tea.Batch(refresh, outputCmd(formatter.StyleGreen.Render("Renamed photo "+id)))
}

func (c *commandBar) describeSelection() string {
	st := c.state.Selection()
	biz := ""
	if st.Business != nil {
		biz = st.Business.Name
	}
	var selected []string
	if st.Domain != nil {
		selected = append(selected, st.Domain.Name)
	}
	if st.Project != nil {
		selected = append(selected, st.Project.Name)
	}
	if st.Team != nil {
		selected = append(selected, st.Team.Name)
	}
	return formatter.FormatSelection(biz, st.User.Name, st.Role(), st.Level, selected...) +
		formatter.Dim("Session   "+c.state.Nav().SessionID())
}

func formatShellHelp() string {
	rows := [][]string{
		{"go <path>", "Navigate to a path, e.g. /domain/domain1/commercials or /photo/3"},
		{"reload [path]", "Load a path as if the page were refreshed"},
		{"back", "Return to the previous view"},
		{"role [name]", "View as another role (CEO, COO, DomainHead, ProjectManager, Developer)"},
		{"business [id]", "Switch to another business"},
		{"whoami", "Show the current selection"},
		{"access [role]", "Show what each role may see"},
		{"photos", "List photos"},
		{"rename <id> <title>", "Rename a photo"},
		{"help", "Show this help"},
		{"quit", "Exit"},
	}
	return formatter.Header("Commands") + "\n\n" + formatter.RenderTable([]string{"Command", "Description"}, rows)
}
