package cli

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/alexanderramin/slotboard/internal/domain"
	"github.com/alexanderramin/slotboard/internal/repository"
	"github.com/alexanderramin/slotboard/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Nav     service.NavigationService
	Photos  service.PhotoService
	Screens service.ScreenService
	Org     repository.OrgRepo
	Logger  zerolog.Logger

	// Serve runs the HTTP API until ctx is cancelled. Nil disables serve.
	Serve func(ctx context.Context, addr string) error
	// HTTPAddr is the default listen address for serve.
	HTTPAddr string
	// IsInteractive reports whether stdin is a terminal. A bare
	// "slotboard" starts the TUI only when it returns true.
	IsInteractive func() bool
}

// rootFlags are the persistent flags every subcommand sees.
type rootFlags struct {
	role     roleValue
	business string
}

// roleValue is a flag that accepts every spelling ParseRole accepts, so a
// bad role fails at flag parsing.
type roleValue domain.Role

var _ pflag.Value = (*roleValue)(nil)

func (r *roleValue) String() string { return string(*r) }
func (r *roleValue) Type() string   { return "role" }

func (r *roleValue) Set(s string) error {
	role, err := domain.ParseRole(s)
	if err != nil {
		return err
	}
	*r = roleValue(role)
	return nil
}

// NewRootCmd creates the top-level "slotboard" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:   "slotboard",
		Short: "Role-aware organisation dashboard",
		Long: `Browse businesses, domains, projects and teams the way each role
sees them. Financial figures appear only for roles allowed to see them.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive == nil || !app.IsInteractive() {
				return cmd.Help()
			}
			return runTUI(cmd.Context(), app, flags, "/")
		},
	}

	root.PersistentFlags().Var(&flags.role, "role", "View as this role (CEO, COO, DomainHead, ProjectManager, Developer)")
	root.PersistentFlags().StringVar(&flags.business, "business", "", "Business ID to select")

	root.AddCommand(
		newTUICmd(app, flags),
		newShowCmd(app, flags),
		newAccessCmd(),
		newPhotosCmd(app),
		newServeCmd(app),
	)

	return root
}

func newTUICmd(app *App, flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tui [path]",
		Short: "Open the interactive dashboard, optionally at a path",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/"
			if len(args) == 1 {
				path = args[0]
			}
			return runTUI(cmd.Context(), app, flags, path)
		},
	}
}

// runTUI applies the persistent flags to the session and runs the
// bubbletea program until the user quits.
func runTUI(ctx context.Context, app *App, flags *rootFlags, path string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := applySessionFlags(ctx, app, flags); err != nil {
		return err
	}

	app.Logger.Info().Str("path", path).Str("session_id", app.Nav.SessionID()).Msg("tui_start")
	p := tea.NewProgram(newAppModel(app, path), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

func applySessionFlags(ctx context.Context, app *App, flags *rootFlags) error {
	if flags.business != "" {
		if err := app.Nav.SwitchBusiness(ctx, flags.business); err != nil {
			return err
		}
	}
	if flags.role != "" {
		if err := app.Nav.SwitchRole(ctx, domain.Role(flags.role)); err != nil {
			return err
		}
	}
	return nil
}

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve screens, access rules and photos over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Serve == nil {
				return errors.New("serve is not configured")
			}
			if addr == "" {
				return fmt.Errorf("--addr must not be empty")
			}
			return app.Serve(cmd.Context(), addr)
		},
	}

	defAddr := app.HTTPAddr
	if defAddr == "" {
		defAddr = ":8080"
	}
	cmd.Flags().StringVar(&addr, "addr", defAddr, "Listen address")

	return cmd
}
