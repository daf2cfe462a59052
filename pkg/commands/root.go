// Package commands wires the CLI front-end.
package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"sysinfo/pkg/collecting"
	"sysinfo/pkg/config"
	apperrors "sysinfo/pkg/errors"
	"sysinfo/pkg/exporting"
	"sysinfo/pkg/formatting"
	"sysinfo/pkg/logging"
	"sysinfo/pkg/monitoring"
)

// NewRootCmd creates the root command with all flags wired.
func NewRootCmd(log zerolog.Logger) *cobra.Command {
	cfg := config.New()

	root := &cobra.Command{
		Use:   "sysinfo",
		Short: "Display or export host system metrics",
		Long: `sysinfo reads host system metrics (OS identity, CPU, memory, disk,
network, uptime) and prints them, exports them to a file, or monitors
CPU and memory usage live.

Examples:
  sysinfo --display
  sysinfo --export report.json
  sysinfo --live --interval 1s`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return apperrors.NewUsageError("%v", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, cfg, log)
		},
	}

	cfg.AddFlags(root)
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return apperrors.NewUsageError("%v", err)
	})

	return root
}

func run(cmd *cobra.Command, cfg *config.Config, log zerolog.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	if !cfg.HasAction() {
		return cmd.Help()
	}

	if cfg.Live {
		return runLive(cmd, cfg, log)
	}

	manager := collecting.Default(log)
	defer manager.Close()

	record, err := manager.Collect()
	if err != nil {
		return err
	}

	if cfg.Display {
		fmt.Fprint(cmd.OutOrStdout(), formatting.Render(record, cfg.RenderOptions()))
	}

	if cfg.ExportPath != "" {
		if err := exporting.Export(record, cfg.ExportPath); err != nil {
			return err
		}
		log.Info().Str("path", cfg.ExportPath).Msg("exported")
	}

	return nil
}

func runLive(cmd *cobra.Command, cfg *config.Config, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log = log.With().Str("session", cfg.SessionID).Logger()

	manager := collecting.Default(log)
	defer manager.Close()

	monitor := monitoring.New(cfg.Interval, monitoring.NewCollectorSampler(manager),
		cmd.OutOrStdout(), cfg.RenderOptions(), log)
	monitor.Run(ctx)
	return nil
}

// Execute runs the root command and maps errors to exit codes.
func Execute() int {
	log := logging.New(os.Stderr)
	root := NewRootCmd(log)
	root.SetContext(context.Background())

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("sysinfo failed")

		var usageErr apperrors.UsageError
		if errors.As(err, &usageErr) {
			fmt.Fprintln(os.Stderr)
			_ = root.Usage()
		}
		return apperrors.ExitCode(err)
	}
	return apperrors.ExitSuccess
}
