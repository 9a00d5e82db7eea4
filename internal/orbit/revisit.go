package orbit

import (
	"fmt"
	"math"
)

// RevisitMinutes estimates the revisit interval of a constellation.
//
// The model assumes consecutive tracks shift west by the Earth rotation during
// one orbit and that a point is revisited once the shifts have swept 360
// degrees; satellites divide that time evenly. inclinationDeg and targetLat are
// part of the signature for an inclination-aware model but do not change the
// result yet.
func RevisitMinutes(altitudeKm, inclinationDeg float64, satellites int, targetLat float64) (float64, error) {
	period, err := PeriodMinutes(altitudeKm)
	if err != nil {
		return 0, err
	}
	if err := ValidateSatellites(satellites); err != nil {
		return 0, err
	}
	trackSeparation := SiderealRateDegPerMin * period
	orbitsToRevisit := math.Ceil(360 / trackSeparation)
	return orbitsToRevisit * period / float64(satellites), nil
}

// FormatRevisit renders a revisit interval as minutes, hours or days.
func FormatRevisit(minutes float64) string {
	hours := minutes / 60
	switch {
	case hours < 1:
		return fmt.Sprintf("%.0f minutes", minutes)
	case hours < 24:
		return fmt.Sprintf("%.1f hours", hours)
	default:
		return fmt.Sprintf("%.1f days", hours/24)
	}
}

// RevisitTime is RevisitMinutes formatted for display.
func RevisitTime(altitudeKm, inclinationDeg float64, satellites int, targetLat float64) (string, error) {
	m, err := RevisitMinutes(altitudeKm, inclinationDeg, satellites, targetLat)
	if err != nil {
		return "", err
	}
	return FormatRevisit(m), nil
}
