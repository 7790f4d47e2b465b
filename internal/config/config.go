// Package config reads process settings from SLOTBOARD_* environment
// variables. Nothing here changes what screens show.
package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

const envPrefix = "SLOTBOARD_"

type Config struct {
	LogLevel  string `env:"LOG_LEVEL, default=info"`
	LogPretty bool   `env:"LOG_PRETTY, default=true"`
	// LogFile receives logs while the TUI runs. Empty discards them.
	LogFile  string `env:"LOG_FILE"`
	HTTPAddr string `env:"HTTP_ADDR, default=:8080"`
}

// Load reads the configuration from the process environment.
func Load(ctx context.Context) (*Config, error) {
	return LoadWith(ctx, envconfig.OsLookuper())
}

// LoadWith reads the configuration through l. l is asked for the full
// SLOTBOARD_-prefixed names.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: envconfig.PrefixLookuper(envPrefix, l),
	})
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return &cfg, nil
}
