// Package presets holds named mission templates and keyword matching
// against free-text mission descriptions.
package presets

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"mission-copilot/internal/mission"
)

// Preset is a reusable mission template.
type Preset struct {
	ID             string   `yaml:"id" json:"id"`
	Title          string   `yaml:"title" json:"title"`
	NamePrefix     string   `yaml:"name_prefix" json:"name_prefix"`
	Description    string   `yaml:"description" json:"description"`
	OrbitType      string   `yaml:"orbit_type,omitempty" json:"orbit_type,omitempty"`
	Payload        string   `yaml:"payload,omitempty" json:"payload,omitempty"`
	AltitudeKm     float64  `yaml:"altitude_km" json:"altitude_km"`
	InclinationDeg float64  `yaml:"inclination_deg" json:"inclination_deg"`
	Satellites     int      `yaml:"satellites" json:"satellites"`
	ResolutionM    *float64 `yaml:"resolution_m,omitempty" json:"resolution_m,omitempty"`
	Locations      []string `yaml:"locations,omitempty" json:"locations,omitempty"`
	Keywords       []string `yaml:"keywords,omitempty" json:"keywords,omitempty"`
}

// Spec turns the preset into a planner request.
func (p Preset) Spec() mission.Spec {
	alt, incl, sats := p.AltitudeKm, p.InclinationDeg, p.Satellites
	return mission.Spec{
		Name:           p.NamePrefix,
		Description:    p.Description,
		AltitudeKm:     &alt,
		InclinationDeg: &incl,
		Satellites:     &sats,
		ResolutionM:    p.ResolutionM,
		Locations:      slices.Clone(p.Locations),
	}
}

// Catalog is an ordered preset collection. Match checks presets in order.
type Catalog struct {
	presets []Preset
}

// NewCatalog copies presets into a catalog.
func NewCatalog(presets []Preset) *Catalog {
	return &Catalog{presets: slices.Clone(presets)}
}

// Default returns the built-in catalog.
func Default() *Catalog { return NewCatalog(BuiltIn()) }

// List returns the presets in catalog order.
func (c *Catalog) List() []Preset { return slices.Clone(c.presets) }

// Get finds a preset by ID.
func (c *Catalog) Get(id string) (Preset, bool) {
	for _, p := range c.presets {
		if p.ID == id {
			return p, true
		}
	}
	return Preset{}, false
}

// Match returns the first preset with a keyword contained in text,
// ignoring case.
func (c *Catalog) Match(text string) (Preset, bool) {
	text = strings.ToLower(text)
	for _, p := range c.presets {
		for _, kw := range p.Keywords {
			if strings.Contains(text, strings.ToLower(kw)) {
				return p, true
			}
		}
	}
	return Preset{}, false
}

type file struct {
	Presets []Preset `yaml:"presets"`
}

// Load reads a YAML preset file.
func Load(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read presets: %w", err)
	}
	var f file
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse presets: %w", err)
	}
	for i, p := range f.Presets {
		if p.ID == "" {
			return nil, fmt.Errorf("preset %d: missing id", i)
		}
	}
	return NewCatalog(f.Presets), nil
}

// Merge returns a catalog with extra presets first, so they win on ID and
// keyword conflicts.
func (c *Catalog) Merge(extra *Catalog) *Catalog {
	out := slices.Clone(extra.presets)
	for _, p := range c.presets {
		if _, dup := extra.Get(p.ID); !dup {
			out = append(out, p)
		}
	}
	return &Catalog{presets: out}
}
