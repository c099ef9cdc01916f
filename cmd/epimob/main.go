// SPDX-License-Identifier: MIT

// Command epimob segments study areas, scores their epidemic vulnerability
// and runs Monte Carlo mobility interventions.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/epimob/internal/config"
	"github.com/katalvlaran/epimob/internal/logging"
)

var (
	version = "0.1.0-dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "epimob",
		Short: "Mobility hotspots and epidemic vulnerability",
		Long: `epimob splits a study area into dense hotspots and sparser suburbs,
scores its vulnerability to airborne (ABD) and vector-borne (VBD) disease,
and estimates how synthetic mobility interventions change those scores.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "YAML config file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")

	rootCmd.AddCommand(
		newVersionCmd(),
		newSegmentCmd(),
		newVulnerabilityCmd(),
		newSimulateCmd(),
		newRunsCmd(),
	)

	return rootCmd
}

// loadSettings resolves the config file, env overrides and --log-level into
// a validated Config and a stderr logger.
func loadSettings(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.Logging.Level = lvl
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	var logger *slog.Logger
	if cfg.Logging.Format == "json" {
		logger = logging.NewJSONLogger(cfg.Logging.Level, cmd.ErrOrStderr())
	} else {
		logger = logging.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr())
	}

	return cfg, logger, nil
}
