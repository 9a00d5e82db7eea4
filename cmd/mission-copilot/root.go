package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"mission-copilot/internal/logging"
	"mission-copilot/internal/mission"
	"mission-copilot/internal/observability"
)

var (
	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "mission-copilot",
	Short: "Satellite mission planning toolkit",
	Long:  "mission-copilot turns mission parameters into ground tracks, coverage footprints and revisit estimates.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg := logging.ConfigFromEnv()
		if cmd.Flags().Changed("log-level") {
			cfg.Level = logLevel
		}
		if cmd.Flags().Changed("log-format") {
			cfg.Format = logFormat
		}
		l := logging.NewWithConfig(os.Stderr, cfg)
		slog.SetDefault(l)
		cmd.SetContext(logging.NewContext(cmd.Context(), l))
	},
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text, json)")

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(dashboardCmd)
}

// tracedPlannerOptions starts tracing from MISSION_TRACING_* and returns the
// planner option plus a flush function.
func tracedPlannerOptions(ctx context.Context) ([]mission.Option, func(), error) {
	tp, shutdown, err := observability.InitTracing(ctx, observability.TracingConfigFromEnv())
	if err != nil {
		return nil, nil, err
	}
	flush := func() { observability.ShutdownWithTimeout(context.WithoutCancel(ctx), shutdown) }
	return []mission.Option{mission.WithTracerProvider(tp)}, flush, nil
}
