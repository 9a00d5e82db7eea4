package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"mission-copilot/internal/logging"
	"mission-copilot/internal/output"
)

var (
	replayInput     string
	replaySpeed     float64
	replayPrintOnly bool
	replayOutput    string
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Replay a plan log file",
	Long:  "replay feeds plans from a JSONL log back into GreptimeDB or STDOUT.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if replayInput == "" {
			return fmt.Errorf("input file required")
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		writer, cleanup, err := newWriters(writerOptions{Output: replayOutput, PrintOnly: replayPrintOnly})
		if err != nil {
			return err
		}
		defer cleanup()

		n, err := output.ReplayLogFile(ctx, replayInput, writer, replaySpeed)
		logging.FromContext(ctx).Info("replay finished", "plans", n, "input", replayInput)
		return err
	},
}

func init() {
	replayCmd.Flags().StringVar(&replayInput, "input", "", "Path to plan log file")
	replayCmd.Flags().Float64Var(&replaySpeed, "speed", 0, "Playback speed multiplier (0 replays without delay)")
	replayCmd.Flags().BoolVar(&replayPrintOnly, "print-only", false, "Print plans to STDOUT instead of writing to DB")
	replayCmd.Flags().StringVar(&replayOutput, "output", "json", "Output mode (json, none)")
	replayCmd.MarkFlagRequired("input")
}
