package orbit

import "math"

// CoveragePoint is a footprint circle placed on a sampled ground-track point.
type CoveragePoint struct {
	Center         LatLon   `json:"center"`
	RadiusM        float64  `json:"radius_m"`
	SatelliteIndex int      `json:"satellite_index"`
	ColorTag       ColorTag `json:"color_tag"`
	Color          string   `json:"color"`
}

// HorizonDistanceKm is the line-of-sight distance to the horizon from altitudeKm.
func HorizonDistanceKm(altitudeKm float64) float64 {
	return math.Sqrt(2*EarthRadiusKm*altitudeKm + altitudeKm*altitudeKm)
}

// CoverageRadiusM returns the footprint radius in metres: half the swath,
// limited by the horizon distance.
func CoverageRadiusM(altitudeKm, swathKm float64) float64 {
	return math.Min(swathKm/2, HorizonDistanceKm(altitudeKm)) * 1000
}

// CoveragePoints samples every stride-th point of each track (starting with the
// first) and attaches radiusM. A stride below 1 samples every point.
func CoveragePoints(tracks []Track, radiusM float64, stride int) []CoveragePoint {
	if stride < 1 {
		stride = 1
	}
	var points []CoveragePoint
	for _, tr := range tracks {
		for i := 0; i < len(tr.Path); i += stride {
			points = append(points, CoveragePoint{
				Center:         tr.Path[i],
				RadiusM:        radiusM,
				SatelliteIndex: tr.SatelliteIndex,
				ColorTag:       tr.ColorTag,
				Color:          tr.ColorTag.Hex(),
			})
		}
	}
	return points
}
