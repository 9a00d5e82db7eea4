package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"mission-copilot/internal/config"
	"mission-copilot/internal/logging"
	"mission-copilot/internal/mission"
	"mission-copilot/internal/presets"
	"mission-copilot/internal/tui"
)

var (
	planConfigPath  string
	planSchemaPath  string
	planPreset      string
	planPresetFile  string
	planDescribe    string
	planOutput      string
	planIndent      bool
	planPrintOnly   bool
	planLogFile     string
	planTrackFile   string
	planName        string
	planAltitude    float64
	planInclination float64
	planSatellites  int
	planResolution  float64
	planDuration    float64
	planLocations   []string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Compute a mission plan",
	Long: `plan computes ground tracks, coverage and revisit statistics for a mission.

Parameters are layered: a preset (--preset or --describe) first, then the
mission file (--config), then individual flags. Anything left unset falls
back to planner defaults.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		log := logging.FromContext(ctx)

		if planOutput == "tui" && !tui.Available() {
			return fmt.Errorf("--output tui needs an interactive terminal")
		}
		if planTrackFile != "" && planLogFile == "" {
			return fmt.Errorf("--track-file requires --log-file")
		}

		spec, opts, err := buildPlanSpec(cmd)
		if err != nil {
			return err
		}

		traceOpts, flush, err := tracedPlannerOptions(ctx)
		if err != nil {
			return err
		}
		defer flush()

		writer, cleanup, err := newWriters(writerOptions{
			Output:    planOutput,
			Indent:    planIndent,
			PrintOnly: planPrintOnly,
			LogFile:   planLogFile,
			TrackFile: planTrackFile,
		})
		if err != nil {
			return err
		}
		defer cleanup()

		planner := mission.NewPlanner(append(opts, traceOpts...)...)
		plan, err := planner.Plan(ctx, spec)
		if err != nil {
			return err
		}
		log.Info("mission planned",
			slog.String("mission_id", plan.ID),
			slog.String("region", plan.Region.Name),
			slog.Int("track_points", plan.TrackPoints()),
			slog.String("revisit", plan.Stats.RevisitTime),
		)
		return writer.WritePlan(plan)
	},
}

func init() {
	f := planCmd.Flags()
	f.StringVar(&planConfigPath, "config", "", "Path to mission YAML")
	f.StringVar(&planSchemaPath, "schema", "", "Path to CUE schema (defaults to the embedded schema)")
	f.StringVar(&planPreset, "preset", "", "Start from a named preset")
	f.StringVar(&planPresetFile, "preset-file", "", "Additional presets YAML")
	f.StringVar(&planDescribe, "describe", "", "Pick a preset by keywords in a free-text mission description")
	f.StringVar(&planOutput, "output", "json", "Output mode (json, tui, none)")
	f.BoolVar(&planIndent, "indent", false, "Indent JSON output")
	f.BoolVar(&planPrintOnly, "print-only", false, "Do not write to GreptimeDB even when GREPTIMEDB_ENDPOINT is set")
	f.StringVar(&planLogFile, "log-file", "", "Append plans to a JSONL log for replay")
	f.StringVar(&planTrackFile, "track-file", "", "Write flattened track points as JSONL (requires --log-file)")
	f.StringVar(&planName, "name", "", "Mission name")
	f.Float64Var(&planAltitude, "altitude", 0, "Orbit altitude in km")
	f.Float64Var(&planInclination, "inclination", 0, "Orbit inclination in degrees")
	f.IntVar(&planSatellites, "satellites", 0, "Number of satellites")
	f.Float64Var(&planResolution, "resolution", 0, "Sensor resolution in metres (0 = wide field of view)")
	f.Float64Var(&planDuration, "duration", 0, "Ground-track duration in minutes")
	f.StringSliceVar(&planLocations, "location", nil, "Ground station or area name (repeatable)")
	planCmd.MarkFlagsMutuallyExclusive("preset", "describe")
}

// buildPlanSpec layers preset, config file and flags into one request.
func buildPlanSpec(cmd *cobra.Command) (mission.Spec, []mission.Option, error) {
	var spec mission.Spec
	var opts []mission.Option

	if planPreset != "" || planDescribe != "" {
		catalog, err := loadCatalog(planPresetFile)
		if err != nil {
			return spec, nil, err
		}
		var (
			p  presets.Preset
			ok bool
		)
		if planPreset != "" {
			p, ok = catalog.Get(planPreset)
		} else {
			p, ok = catalog.Match(planDescribe)
		}
		if !ok {
			return spec, nil, fmt.Errorf("no preset for %q", planPreset+planDescribe)
		}
		logging.FromContext(cmd.Context()).Info("using preset", "preset", p.ID)
		spec = p.Spec()
	}

	if planConfigPath != "" {
		cfg, err := config.Load(planConfigPath, planSchemaPath)
		if err != nil {
			return spec, nil, err
		}
		spec = overlay(spec, cfg.Spec())
		opts = cfg.PlannerOptions()
	}

	f := cmd.Flags()
	var fromFlags mission.Spec
	fromFlags.Name = planName
	if f.Changed("altitude") {
		fromFlags.AltitudeKm = &planAltitude
	}
	if f.Changed("inclination") {
		fromFlags.InclinationDeg = &planInclination
	}
	if f.Changed("satellites") {
		fromFlags.Satellites = &planSatellites
	}
	if f.Changed("resolution") {
		fromFlags.ResolutionM = &planResolution
	}
	if f.Changed("duration") {
		fromFlags.DurationMinutes = &planDuration
	}
	fromFlags.Locations = planLocations
	return overlay(spec, fromFlags), opts, nil
}

// overlay returns base with every field set in top replacing it.
func overlay(base, top mission.Spec) mission.Spec {
	if top.Name != "" {
		base.Name = top.Name
	}
	if top.Description != "" {
		base.Description = top.Description
	}
	if top.AltitudeKm != nil {
		base.AltitudeKm = top.AltitudeKm
	}
	if top.InclinationDeg != nil {
		base.InclinationDeg = top.InclinationDeg
	}
	if top.PeriodMinutes != nil {
		base.PeriodMinutes = top.PeriodMinutes
	}
	if top.Satellites != nil {
		base.Satellites = top.Satellites
	}
	if top.CoveragePercent != nil {
		base.CoveragePercent = top.CoveragePercent
	}
	if top.ResolutionM != nil {
		base.ResolutionM = top.ResolutionM
	}
	if top.DurationMinutes != nil {
		base.DurationMinutes = top.DurationMinutes
	}
	if len(top.Locations) > 0 {
		base.Locations = top.Locations
	}
	return base
}
