// Mission inputs, defaults and the computed plan
package mission

import (
	"time"

	"mission-copilot/internal/geo"
	"mission-copilot/internal/orbit"
)

// Default mission parameters used when the collaborator omits a field.
const (
	DefaultAltitudeKm      = 550.0
	DefaultInclinationDeg  = 45.0
	DefaultSatellites      = 1
	DefaultPeriodMinutes   = 95.0
	DefaultDurationMinutes = orbit.DefaultTrackDurationMinutes
)

// Spec is a mission request as produced by the planning assistant. Nil fields
// fall back to documented defaults.
type Spec struct {
	Name            string   `json:"name,omitempty"`
	Description     string   `json:"description,omitempty"`
	AltitudeKm      *float64 `json:"altitude_km,omitempty"`
	InclinationDeg  *float64 `json:"inclination_deg,omitempty"`
	PeriodMinutes   *float64 `json:"period_minutes,omitempty"`
	Satellites      *int     `json:"satellites,omitempty"`
	CoveragePercent *int     `json:"coverage_percent,omitempty"`
	ResolutionM     *float64 `json:"resolution_m,omitempty"`
	DurationMinutes *float64 `json:"duration_minutes,omitempty"`
	Locations       []string `json:"locations,omitempty"`
}

// Parameters are the resolved inputs the geometry runs on.
type Parameters struct {
	AltitudeKm      float64  `json:"altitude_km"`
	InclinationDeg  float64  `json:"inclination_deg"`
	PeriodMinutes   float64  `json:"period_minutes"`
	Satellites      int      `json:"satellites"`
	ResolutionM     *float64 `json:"resolution_m,omitempty"`
	DurationMinutes float64  `json:"duration_minutes"`
	Locations       []string `json:"locations,omitempty"`
}

// Substitution records a default applied in place of a missing field.
type Substitution struct {
	Field string `json:"field"`
	Value any    `json:"value"`
}

// Stats feeds the summary panel.
type Stats struct {
	PeriodMinutes   float64 `json:"period_minutes"`
	SwathWidthKm    float64 `json:"swath_width_km"`
	CoverageRadiusM float64 `json:"coverage_radius_m"`
	DailyPasses     int     `json:"daily_passes"`
	CoveragePercent int     `json:"coverage_percent"`
	RevisitMinutes  float64 `json:"revisit_minutes"`
	RevisitTime     string  `json:"revisit_time"`
}

// Plan is everything the map and statistics views need for one mission.
type Plan struct {
	ID            string                `json:"id"`
	Name          string                `json:"name,omitempty"`
	Description   string                `json:"description,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
	Parameters    Parameters            `json:"parameters"`
	Substitutions []Substitution        `json:"substitutions,omitempty"`
	Tracks        []orbit.Track         `json:"tracks"`
	Coverage      []orbit.CoveragePoint `json:"coverage"`
	Region        geo.Region            `json:"region"`
	Stations      []geo.GroundStation   `json:"stations"`
	Stats         Stats                 `json:"stats"`
}

// TrackPoints returns the total number of points across all tracks.
func (p *Plan) TrackPoints() int {
	n := 0
	for _, t := range p.Tracks {
		n += len(t.Path)
	}
	return n
}
