// Physical constants and model limits for the ground-track engine
package orbit

const (
	// EarthRadiusKm is the mean Earth radius used for circular-orbit geometry.
	EarthRadiusKm = 6371.0
	// EarthMu is Earth's gravitational parameter in km^3/s^2.
	EarthMu = 398600.4418
	// SiderealRateDegPerMin is Earth's rotation relative to the stars.
	SiderealRateDegPerMin = 360.98564736629 / 1436

	// MaxRenderedSatellites caps how many tracks are produced for the map.
	MaxRenderedSatellites = 6
	// DefaultTrackDurationMinutes is the propagation window used by the map.
	DefaultTrackDurationMinutes = 200.0
	// CoverageSampleStride picks every Nth track point as a coverage circle.
	CoverageSampleStride = 15

	// MaxTrackPoints bounds the sample intervals of one track and the orbits
	// counted per day.
	MaxTrackPoints = 100_000

	samplesPerPeriod = 100
	minTrackPoints   = 2

	wideFOVDeg       = 120.0
	maxWideSwathKm   = 3000.0
	minutesPerDay    = 24 * 60
	nominalPeriodMin = 95.0
)
