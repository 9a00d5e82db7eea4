package orbit

import "math"

// SwathWidthKm estimates the cross-track swath of a payload. A nil or zero
// resolution means a wide-FOV non-imaging payload (comms, AIS); otherwise the
// resolution selects a discrete sensor class, finer resolution giving a
// narrower swath.
func SwathWidthKm(altitudeKm float64, resolutionM *float64) float64 {
	if resolutionM == nil || *resolutionM == 0 {
		half := wideFOVDeg / 2 * math.Pi / 180
		return math.Min(2*altitudeKm*math.Tan(half), maxWideSwathKm)
	}

	switch r := *resolutionM; {
	case r <= 1:
		return 10
	case r <= 5:
		return 50
	case r <= 10:
		return 100
	case r <= 30:
		return 200
	default:
		return 300
	}
}
