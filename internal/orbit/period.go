package orbit

import "math"

// PeriodMinutes returns the circular orbital period for a given altitude using
// Kepler's third law with the semi-major axis approximated as R + h.
func PeriodMinutes(altitudeKm float64) (float64, error) {
	if err := ValidateAltitude(altitudeKm); err != nil {
		return 0, err
	}
	a := EarthRadiusKm + altitudeKm
	seconds := 2 * math.Pi * math.Sqrt(math.Pow(a, 3)/EarthMu)
	return seconds / 60, nil
}
