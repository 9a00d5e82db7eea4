package main

import (
	"os"

	"github.com/spf13/cobra"

	"mission-copilot/internal/dashboard"
	"mission-copilot/internal/logging"
)

var dashboardOut string

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Render the Grafana dashboard",
	Long:  "dashboard renders Grafana JSON for the GreptimeDB plan tables. GREPTIMEDB_DATASOURCE_UID must be set.",
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := dashboard.Render(dashboardOut, dashboard.Options{
			TrackTable:   os.Getenv("GREPTIMEDB_TRACK_TABLE"),
			SummaryTable: os.Getenv("GREPTIMEDB_SUMMARY_TABLE"),
		})
		if err != nil {
			return err
		}
		for _, p := range paths {
			logging.FromContext(cmd.Context()).Info("dashboard written", "path", p)
		}
		return nil
	},
}

func init() {
	dashboardCmd.Flags().StringVar(&dashboardOut, "out", "dashboards", "Output directory")
}
