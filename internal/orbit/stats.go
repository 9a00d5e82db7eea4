package orbit

import "math"

// DailyPasses is the number of orbits all satellites complete in a day.
// A single satellite completing more than MaxTrackPoints orbits is rejected.
func DailyPasses(periodMin float64, satellites int) (int, error) {
	orbits := math.Floor(minutesPerDay / periodMin)
	if math.IsNaN(orbits) || orbits < 0 || orbits > MaxTrackPoints {
		return 0, &DomainError{Kind: TrackTooDense, Samples: orbits}
	}
	return int(orbits) * satellites, nil
}

// CoveragePercent is a rough share of the equator swept by all swaths in one
// day, rounded to a whole percent. Passes per day use a nominal 95 minute
// period regardless of altitude.
func CoveragePercent(swathKm float64, satellites int) int {
	circumference := 2 * math.Pi * EarthRadiusKm
	passes := math.Floor(minutesPerDay/nominalPeriodMin) * float64(satellites)
	pct := math.Min(100, swathKm*passes/circumference*100)
	return int(math.Round(pct))
}
