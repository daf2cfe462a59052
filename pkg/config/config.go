// Package config holds CLI configuration and flag wiring.
package config

import (
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	apperrors "sysinfo/pkg/errors"
	"sysinfo/pkg/formatting"
	"sysinfo/pkg/monitoring"
)

// Config holds all tool configuration options.
type Config struct {
	Display    bool
	ExportPath string
	Live       bool
	Interval   time.Duration
	NoColor    bool

	// SessionID tags a live-monitoring session's log output.
	SessionID string
}

// New creates a Config with default values.
func New() *Config {
	return &Config{
		Interval:  monitoring.DefaultInterval,
		SessionID: uuid.NewString(),
	}
}

// AddFlags wires the CLI flags to a command.
func (c *Config) AddFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.BoolVarP(&c.Display, "display", "d", c.Display, "Display all system information")
	flags.StringVarP(&c.ExportPath, "export", "e", c.ExportPath, "Export to file; format follows the extension (.json, .txt, .parquet, .html)")
	flags.BoolVarP(&c.Live, "live", "l", c.Live, "Live CPU and memory monitoring until interrupted")
	flags.DurationVarP(&c.Interval, "interval", "i", c.Interval, "Live monitoring interval (e.g. 500ms, 2s)")
	flags.BoolVar(&c.NoColor, "no-color", c.NoColor, "Disable colored output")
}

// Validate checks flag combinations. Violations are usage errors.
func (c *Config) Validate() error {
	if c.Interval < 0 {
		return apperrors.NewUsageError("interval cannot be negative, got %v", c.Interval)
	}
	if c.Live && c.Display {
		return apperrors.NewUsageError("--live cannot be combined with --display")
	}
	if c.Live && c.ExportPath != "" {
		return apperrors.NewUsageError("--live cannot be combined with --export")
	}
	return nil
}

// HasAction reports whether any action flag was given.
func (c *Config) HasAction() bool {
	return c.Display || c.ExportPath != "" || c.Live
}

// RenderOptions derives display options from the configuration.
func (c *Config) RenderOptions() formatting.Options {
	opts := formatting.DefaultOptions()
	opts.Color = !c.NoColor
	return opts
}
