package main

import (
	"fmt"
	"os"

	"mission-copilot/internal/logging"
	"mission-copilot/internal/output"
	"mission-copilot/internal/tui"
)

type writerOptions struct {
	Output    string // json | tui | none
	Indent    bool
	PrintOnly bool // skip GreptimeDB even when configured
	LogFile   string
	TrackFile string
}

// newWriters sets up plan writers based on flags and env vars. It returns the
// writer and a cleanup function to close any resources.
func newWriters(opts writerOptions) (output.Writer, func(), error) {
	cleanup := func() {}
	var ws []output.Writer

	switch opts.Output {
	case "", "json":
		ws = append(ws, output.NewJSONStdoutWriter(opts.Indent))
	case "tui":
		ws = append(ws, tui.NewWriter())
	case "none":
	default:
		return nil, nil, fmt.Errorf("unknown output mode %q", opts.Output)
	}

	if !opts.PrintOnly && os.Getenv("GREPTIMEDB_ENDPOINT") != "" {
		gw, err := newGreptimeWriter()
		if err != nil {
			return nil, nil, err
		}
		ws = append(ws, gw)
	}

	if opts.LogFile != "" {
		fw, err := output.NewFileWriter(opts.LogFile, opts.TrackFile)
		if err != nil {
			return nil, nil, err
		}
		ws = append(ws, fw)
		cleanup = func() { fw.Close() }
	}

	if len(ws) == 1 {
		return ws[0], cleanup, nil
	}
	return output.NewMultiWriter(ws...), cleanup, nil
}

func newGreptimeWriter() (*output.GreptimeDBWriter, error) {
	db := os.Getenv("GREPTIMEDB_DATABASE")
	if db == "" {
		db = "public"
	}
	return output.NewGreptimeDBWriter(output.GreptimeOptions{
		Endpoint:     os.Getenv("GREPTIMEDB_ENDPOINT"),
		Database:     db,
		TrackTable:   os.Getenv("GREPTIMEDB_TRACK_TABLE"),
		SummaryTable: os.Getenv("GREPTIMEDB_SUMMARY_TABLE"),
		Logger:       logging.New(),
	})
}
