package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"mission-copilot/internal/config"
	"mission-copilot/internal/logging"
	"mission-copilot/internal/metrics"
	"mission-copilot/internal/mission"
	"mission-copilot/internal/server"
)

var (
	serveAddr       string
	serveConfigPath string
	serveSchemaPath string
	servePrintOnly  bool
	serveLogFile    string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the mission map and plan API",
	Long:  "serve starts an HTTP server with a Leaflet map page, a JSON plan API and Prometheus metrics.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		log := logging.FromContext(ctx)

		var opts []mission.Option
		if serveConfigPath != "" {
			cfg, err := config.Load(serveConfigPath, serveSchemaPath)
			if err != nil {
				return err
			}
			opts = cfg.PlannerOptions()
		}
		traceOpts, flush, err := tracedPlannerOptions(ctx)
		if err != nil {
			return err
		}
		defer flush()

		writer, cleanup, err := newWriters(writerOptions{
			Output:    "none",
			PrintOnly: servePrintOnly,
			LogFile:   serveLogFile,
		})
		if err != nil {
			return err
		}
		defer cleanup()

		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		collector, err := metrics.NewCollector(reg)
		if err != nil {
			return err
		}

		srv := server.NewServer(
			mission.NewPlanner(append(opts, traceOpts...)...),
			server.WithMetrics(collector),
			server.WithWriter(writer),
			server.WithLogger(log),
		)
		err = srv.Start(ctx, serveAddr)
		log.Info("map server stopped")
		return err
	},
}

func init() {
	f := serveCmd.Flags()
	f.StringVar(&serveAddr, "addr", ":8080", "Listen address")
	f.StringVar(&serveConfigPath, "config", "", "Mission YAML whose gazetteer extends regions and stations")
	f.StringVar(&serveSchemaPath, "schema", "", "Path to CUE schema (defaults to the embedded schema)")
	f.BoolVar(&servePrintOnly, "print-only", false, "Do not write plans to GreptimeDB even when GREPTIMEDB_ENDPOINT is set")
	f.StringVar(&serveLogFile, "log-file", "", "Append served plans to a JSONL log")
}
