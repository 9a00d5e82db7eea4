package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfig_Valid(t *testing.T) {
	cfg, err := Load("testdata/agriculture.yaml", "")
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.Name != "agriculture-monitor" {
		t.Errorf("unexpected name %q", cfg.Name)
	}
	if cfg.Orbit.AltitudeKm == nil || *cfg.Orbit.AltitudeKm != 550 {
		t.Errorf("unexpected orbit %+v", cfg.Orbit)
	}
	if cfg.Orbit.PeriodMinutes != nil {
		t.Errorf("period should be absent")
	}
	if len(cfg.Ground.Locations) != 3 {
		t.Errorf("unexpected locations %v", cfg.Ground.Locations)
	}
	if len(cfg.Gazetteer.Regions) != 1 || cfg.Gazetteer.Regions[0].Bounds[1][1] != 32 {
		t.Errorf("unexpected regions %+v", cfg.Gazetteer.Regions)
	}

	spec := cfg.Spec()
	if *spec.Satellites != 3 || *spec.ResolutionM != 10 || spec.DurationMinutes != nil {
		t.Errorf("unexpected spec %+v", spec)
	}
}

func TestLoadConfig_SchemaRejects(t *testing.T) {
	for _, f := range []string{"testdata/unknown_key.yaml", "testdata/bad_satellites.yaml", "testdata/long_duration.yaml"} {
		if _, err := Load(f, ""); err == nil || !strings.Contains(err.Error(), "validation failed") {
			t.Errorf("Load(%s) err = %v, want validation failure", f, err)
		}
	}
}

func TestLoadConfig_MissingFiles(t *testing.T) {
	if _, err := Load("testdata/nope.yaml", ""); err == nil {
		t.Fatalf("expected error for missing config")
	}
	if _, err := Load("testdata/agriculture.yaml", "testdata/nope.cue"); err == nil {
		t.Fatalf("expected error for missing schema")
	}
}

func TestLoadConfig_CustomSchema(t *testing.T) {
	dir := t.TempDir()
	schema := filepath.Join(dir, "strict.cue")
	if err := os.WriteFile(schema, []byte("#Mission: {name: string & =~\"^ops-\"}\n"), 0o644); err != nil {
		t.Fatalf("write schema: %v", err)
	}
	cfgPath := filepath.Join(dir, "m.yaml")
	if err := os.WriteFile(cfgPath, []byte("name: demo\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(cfgPath, schema); err == nil {
		t.Fatalf("expected custom schema to reject name")
	}
}

func TestGazetteerOverlay(t *testing.T) {
	cfg, err := Load("testdata/agriculture.yaml", "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, ok := cfg.StationRegistry().Lookup("Kiruna"); !ok {
		t.Fatalf("configured station missing")
	}
	if _, ok := cfg.StationRegistry().Lookup("Bangalore"); !ok {
		t.Fatalf("built-in station missing")
	}
	// Built-in regions keep priority over configured ones.
	if got := cfg.RegionDetector().Detect(cfg.Ground.Locations).Name; got != "India" {
		t.Fatalf("region = %s, want India", got)
	}
	if got := cfg.RegionDetector().Detect([]string{"Kiruna"}).Name; got != "Nordics" {
		t.Fatalf("region = %s, want Nordics", got)
	}
}
