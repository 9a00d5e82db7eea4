package orbit

import "math"

// LatLon is a [lat, lon] pair in degrees, serialised as a two-element array.
type LatLon [2]float64

// Lat returns the latitude in degrees.
func (p LatLon) Lat() float64 { return p[0] }

// Lon returns the longitude in degrees.
func (p LatLon) Lon() float64 { return p[1] }

// ColorTag selects one of the six track colours.
type ColorTag int

var trackPalette = [MaxRenderedSatellites]string{
	"#00ffff", // cyan
	"#ff00ff", // magenta
	"#ffff00", // yellow
	"#00ff00", // green
	"#ff6600", // orange
	"#6600ff", // purple
}

// ColorFor returns the tag for a zero-based satellite index.
func ColorFor(index int) ColorTag {
	n := len(trackPalette)
	return ColorTag(((index % n) + n) % n)
}

// Hex returns the CSS colour for the tag.
func (c ColorTag) Hex() string {
	return trackPalette[ColorFor(int(c))]
}

// Track is the ground-track polyline of one rendered satellite.
type Track struct {
	SatelliteIndex int      `json:"satellite_index"`
	Path           []LatLon `json:"path"`
	ColorTag       ColorTag `json:"color_tag"`
	Color          string   `json:"color"`
}

// Satellite returns the 1-based satellite number shown on the map.
func (t Track) Satellite() int { return t.SatelliteIndex + 1 }

// Propagator produces ground tracks for a constellation. Implementations must be
// pure so they can be shared between concurrent planners.
type Propagator interface {
	GroundTracks(altitudeKm, inclinationDeg float64, satellites int, durationMin float64) ([]Track, error)
}

// SinusoidalPropagator is the approximate ground-track model: latitude follows
// incl*sin(M) and longitude advances with the mean anomaly minus Earth rotation.
// It is not a spherical-trigonometry propagator; with inclinations above 90 the
// latitude amplitude exceeds 90 degrees and is left unclamped.
type SinusoidalPropagator struct{}

// GroundTracks implements Propagator.
func (SinusoidalPropagator) GroundTracks(altitudeKm, inclinationDeg float64, satellites int, durationMin float64) ([]Track, error) {
	return GroundTracks(altitudeKm, inclinationDeg, satellites, durationMin)
}

// GroundTracks returns one track per rendered satellite (at most
// MaxRenderedSatellites), phased evenly across the full constellation.
// A non-positive satellite count yields no tracks.
func GroundTracks(altitudeKm, inclinationDeg float64, satellites int, durationMin float64) ([]Track, error) {
	period, err := PeriodMinutes(altitudeKm)
	if err != nil {
		return nil, err
	}
	if satellites <= 0 {
		return []Track{}, nil
	}

	numPoints, err := SampleCount(durationMin, period)
	if err != nil {
		return nil, err
	}
	rendered := min(satellites, MaxRenderedSatellites)

	tracks := make([]Track, 0, rendered)
	for s := 0; s < rendered; s++ {
		phaseDeg := 360 / float64(satellites) * float64(s)
		phaseRad := phaseDeg * math.Pi / 180

		path := make([]LatLon, 0, numPoints+1)
		for i := 0; i <= numPoints; i++ {
			t := float64(i) / float64(numPoints) * durationMin
			meanAnomaly := 2*math.Pi*t/period + phaseRad

			lat := inclinationDeg * math.Sin(meanAnomaly)
			orbitRotation := meanAnomaly * 180 / math.Pi
			lon := NormalizeLon(orbitRotation - SiderealRateDegPerMin*t + phaseDeg)

			path = append(path, LatLon{lat, lon})
		}

		tag := ColorFor(s)
		tracks = append(tracks, Track{
			SatelliteIndex: s,
			Path:           path,
			ColorTag:       tag,
			Color:          tag.Hex(),
		})
	}
	return tracks, nil
}

// SampleCount is the number of sample intervals for a propagation window:
// 100 per orbital period, never fewer than 2. Windows needing more than
// MaxTrackPoints intervals fail with a TrackTooDense DomainError.
func SampleCount(durationMin, periodMin float64) (int, error) {
	n := math.Floor(durationMin / periodMin * samplesPerPeriod)
	if math.IsNaN(n) || n < minTrackPoints {
		return minTrackPoints, nil
	}
	if n > MaxTrackPoints {
		return 0, &DomainError{Kind: TrackTooDense, Samples: n}
	}
	return int(n), nil
}

// NormalizeLon folds a longitude in degrees into (-180, 180].
func NormalizeLon(lon float64) float64 {
	lon = math.Mod(lon, 360)
	if lon > 180 {
		lon -= 360
	} else if lon <= -180 {
		lon += 360
	}
	return lon
}
