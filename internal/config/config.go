// YAML mission loader with CUE validation integration
package config

import (
	_ "embed"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueyaml "cuelang.org/go/encoding/yaml"
	"gopkg.in/yaml.v3"

	"mission-copilot/internal/geo"
	"mission-copilot/internal/mission"
)

//go:embed schema/mission.cue
var defaultSchema []byte

// Orbit holds the orbital parameters of a mission.
type Orbit struct {
	AltitudeKm     *float64 `yaml:"altitude_km"`
	InclinationDeg *float64 `yaml:"inclination_deg"`
	PeriodMinutes  *float64 `yaml:"period_minutes"`
}

// Constellation holds the constellation size.
type Constellation struct {
	Satellites      *int `yaml:"satellites"`
	CoveragePercent *int `yaml:"coverage_percent"`
}

// Payload describes the sensor.
type Payload struct {
	ResolutionM *float64 `yaml:"resolution_m"`
}

// Ground lists the ground segment locations by name.
type Ground struct {
	Locations []string `yaml:"locations"`
}

// Station adds a named station to the gazetteer.
type Station struct {
	Name        string          `yaml:"name"`
	Coordinates geo.Coordinates `yaml:"coordinates"`
}

// Gazetteer extends the built-in regions and stations.
type Gazetteer struct {
	Regions  []geo.Region `yaml:"regions"`
	Stations []Station    `yaml:"stations"`
}

// MissionConfig is the root mission document.
type MissionConfig struct {
	Name            string        `yaml:"name"`
	Description     string        `yaml:"description"`
	Orbit           Orbit         `yaml:"orbit"`
	Constellation   Constellation `yaml:"constellation"`
	Payload         Payload       `yaml:"payload"`
	Ground          Ground        `yaml:"ground"`
	DurationMinutes *float64      `yaml:"duration_minutes"`
	Gazetteer       Gazetteer     `yaml:"gazetteer"`
}

// Load reads a mission YAML file and validates it against a CUE schema. An
// empty cueSchemaPath uses the embedded schema.
func Load(configPath, cueSchemaPath string) (*MissionConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("cannot read mission config: %w", err)
	}
	schema := defaultSchema
	if cueSchemaPath != "" {
		if schema, err = os.ReadFile(cueSchemaPath); err != nil {
			return nil, fmt.Errorf("cannot read CUE schema: %w", err)
		}
	}
	return Parse(configPath, data, schema)
}

// Parse validates and decodes a mission document held in memory.
func Parse(name string, data, schema []byte) (*MissionConfig, error) {
	if err := ValidateWithCue(name, data, schema); err != nil {
		return nil, err
	}
	var cfg MissionConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("cannot unmarshal mission config: %w", err)
	}
	return &cfg, nil
}

// ValidateWithCue checks a YAML document against the #Mission definition of a
// CUE schema. The definition is closed, so unknown keys are rejected.
func ValidateWithCue(name string, yamlBytes, schemaBytes []byte) error {
	ctx := cuecontext.New()

	schemaVal := ctx.CompileBytes(schemaBytes, cue.Filename("mission.cue"))
	if err := schemaVal.Err(); err != nil {
		return fmt.Errorf("cannot compile CUE schema: %w", err)
	}
	def := schemaVal.LookupPath(cue.ParsePath("#Mission"))
	if !def.Exists() {
		return fmt.Errorf("CUE schema has no #Mission definition")
	}

	file, err := cueyaml.Extract(name, yamlBytes)
	if err != nil {
		return fmt.Errorf("cannot parse YAML config: %w", err)
	}
	configVal := ctx.BuildFile(file)

	final := def.Unify(configVal)
	if err := final.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// Spec converts the document into a planner request.
func (c *MissionConfig) Spec() mission.Spec {
	return mission.Spec{
		Name:            c.Name,
		Description:     c.Description,
		AltitudeKm:      c.Orbit.AltitudeKm,
		InclinationDeg:  c.Orbit.InclinationDeg,
		PeriodMinutes:   c.Orbit.PeriodMinutes,
		Satellites:      c.Constellation.Satellites,
		CoveragePercent: c.Constellation.CoveragePercent,
		ResolutionM:     c.Payload.ResolutionM,
		DurationMinutes: c.DurationMinutes,
		Locations:       c.Ground.Locations,
	}
}

// RegionDetector returns the built-in regions followed by any configured ones.
func (c *MissionConfig) RegionDetector() *geo.RegionDetector {
	regions := append(geo.DefaultRegions(), c.Gazetteer.Regions...)
	return geo.NewRegionDetector(regions)
}

// StationRegistry returns the built-in stations overlaid with configured ones.
func (c *MissionConfig) StationRegistry() *geo.StationRegistry {
	table := geo.DefaultStations()
	for _, s := range c.Gazetteer.Stations {
		table[s.Name] = s.Coordinates
	}
	return geo.NewStationRegistry(table)
}

// PlannerOptions wires the configured gazetteer into a planner.
func (c *MissionConfig) PlannerOptions() []mission.Option {
	return []mission.Option{
		mission.WithRegions(c.RegionDetector()),
		mission.WithStations(c.StationRegistry()),
	}
}
