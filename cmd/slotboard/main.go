package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/slotboard/internal/api"
	"github.com/alexanderramin/slotboard/internal/api/metrics"
	"github.com/alexanderramin/slotboard/internal/cli"
	"github.com/alexanderramin/slotboard/internal/config"
	"github.com/alexanderramin/slotboard/internal/logger"
	"github.com/alexanderramin/slotboard/internal/repository"
	"github.com/alexanderramin/slotboard/internal/selection"
	"github.com/alexanderramin/slotboard/internal/service"
	"github.com/alexanderramin/slotboard/internal/viewstate"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	interactive := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())

	// Logs must not draw over the TUI: an interactive session logs to
	// SLOTBOARD_LOG_FILE or nowhere.
	var logOut io.Writer = os.Stderr
	pretty := cfg.LogPretty
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		logOut = f
		pretty = false
	} else if interactive {
		logOut = io.Discard
	}
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: pretty, Output: logOut})

	// Wire repositories
	org, err := repository.NewMemoryOrgRepo()
	if err != nil {
		return fmt.Errorf("loading dataset: %w", err)
	}
	photoStore := repository.NewPhotoStore(org.Photos())
	composer := selection.NewComposer(org, photoStore)

	// Wire services
	observer := service.NewLogUseCaseObserver(log)
	photos := service.NewPhotoService(photoStore, observer)
	store := viewstate.NewStore(viewstate.Default(org))
	store.Subscribe(func(prev, next viewstate.State, a viewstate.Action) {
		log.Debug().
			Str("action", a.Name()).
			Str("level", string(next.Level)).
			Str("role", string(next.Role())).
			Msg("view_state")
	})
	nav := service.NewNavigationService(org, store, photos, composer, observer)
	screens := service.NewScreenService(org, composer, observer)

	app := &cli.App{
		Nav:      nav,
		Photos:   photos,
		Screens:  screens,
		Org:      org,
		Logger:   log,
		HTTPAddr: cfg.HTTPAddr,
		Serve: func(ctx context.Context, addr string) error {
			e := api.NewRouter(api.Deps{
				Screens:    screens,
				Photos:     photos,
				Metrics:    metrics.New(),
				Logger:     log,
				InstanceID: nav.SessionID(),
			})
			log.Info().Str("addr", addr).Msg("api_listen")
			return api.Serve(ctx, e, addr)
		},
		IsInteractive: func() bool { return interactive },
	}

	// Execute root command
	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
