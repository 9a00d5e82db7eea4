package orbit

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidAltitude is returned when altitude places the orbit at or below Earth's centre.
	ErrInvalidAltitude = errors.New("invalid altitude")
	// ErrInvalidSatelliteCount is returned when a constellation has no satellites to share revisits.
	ErrInvalidSatelliteCount = errors.New("invalid satellite count")
	// ErrTrackTooDense is returned when an orbit is too fast to sample within MaxTrackPoints.
	ErrTrackTooDense = errors.New("track too dense")
)

// DomainErrorKind classifies a DomainError.
type DomainErrorKind string

const (
	InvalidAltitude       DomainErrorKind = "invalid_altitude"
	InvalidSatelliteCount DomainErrorKind = "invalid_satellite_count"
	TrackTooDense         DomainErrorKind = "track_too_dense"
)

// DomainError reports mission parameters outside the physics the model supports.
type DomainError struct {
	Kind       DomainErrorKind
	AltitudeKm float64
	Satellites int
	Samples    float64
}

func (e *DomainError) Error() string {
	switch e.Kind {
	case InvalidSatelliteCount:
		return fmt.Sprintf("%s: %d satellites", ErrInvalidSatelliteCount, e.Satellites)
	case TrackTooDense:
		return fmt.Sprintf("%s: %g samples exceeds %d", ErrTrackTooDense, e.Samples, MaxTrackPoints)
	default:
		return fmt.Sprintf("%s: %g km gives a non-positive semi-major axis", ErrInvalidAltitude, e.AltitudeKm)
	}
}

// Unwrap lets callers match the sentinel with errors.Is.
func (e *DomainError) Unwrap() error {
	switch e.Kind {
	case InvalidSatelliteCount:
		return ErrInvalidSatelliteCount
	case TrackTooDense:
		return ErrTrackTooDense
	}
	return ErrInvalidAltitude
}

// ValidateAltitude checks that altitudeKm yields a positive semi-major axis.
func ValidateAltitude(altitudeKm float64) error {
	if math.IsNaN(altitudeKm) || math.IsInf(altitudeKm, 0) || EarthRadiusKm+altitudeKm <= 0 {
		return &DomainError{Kind: InvalidAltitude, AltitudeKm: altitudeKm}
	}
	return nil
}

// ValidateSatellites checks that a constellation has at least one satellite.
func ValidateSatellites(n int) error {
	if n < 1 {
		return &DomainError{Kind: InvalidSatelliteCount, Satellites: n}
	}
	return nil
}
