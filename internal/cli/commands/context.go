// Package commands implements the tablecheck subcommands.
package commands

import (
	"log/slog"

	"github.com/leapstack-labs/tablecheck/internal/cli/config"
	"github.com/leapstack-labs/tablecheck/internal/cli/output"
)

// Shared command state, populated by the root command before any subcommand
// runs. Commands fall back to safe defaults so they stay testable in
// isolation.
var (
	cfg      *config.Config
	logger   = slog.New(slog.DiscardHandler)
	renderer *output.Renderer
)

// SetConfig stores the loaded configuration for subcommands.
func SetConfig(c *config.Config) { cfg = c }

// SetLogger stores the logger for subcommands.
func SetLogger(l *slog.Logger) { logger = l }

// SetRenderer stores the renderer for subcommands.
func SetRenderer(r *output.Renderer) { renderer = r }

func currentConfig() *config.Config {
	if cfg == nil {
		return &config.Config{Delimiter: config.DefaultDelimiter, Output: config.DefaultOutput}
	}
	return cfg
}
