// Named target regions and first-match location detection
package geo

import (
	"slices"
	"strings"
)

// Coordinates is a [lat, lon] pair in degrees.
type Coordinates [2]float64

// Lat returns the latitude in degrees.
func (c Coordinates) Lat() float64 { return c[0] }

// Lon returns the longitude in degrees.
func (c Coordinates) Lon() float64 { return c[1] }

// Bounds is a [[latMin, lonMin], [latMax, lonMax]] box.
type Bounds [2]Coordinates

// Contains reports whether c lies inside the box, edges included.
func (b Bounds) Contains(c Coordinates) bool {
	return c.Lat() >= b[0].Lat() && c.Lat() <= b[1].Lat() &&
		c.Lon() >= b[0].Lon() && c.Lon() <= b[1].Lon()
}

// Region is a named map area with the location tokens that select it.
type Region struct {
	Name        string      `json:"name" yaml:"name"`
	Bounds      Bounds      `json:"bounds" yaml:"bounds"`
	Center      Coordinates `json:"center" yaml:"center"`
	MatchTokens []string    `json:"match_tokens,omitempty" yaml:"match_tokens"`
}

func (r Region) clone() Region {
	r.MatchTokens = slices.Clone(r.MatchTokens)
	return r
}

// Matches reports whether any match token is a case-sensitive substring of location.
func (r Region) Matches(location string) bool {
	for _, tok := range r.MatchTokens {
		if strings.Contains(location, tok) {
			return true
		}
	}
	return false
}

// GlobalName is the name of the fallback region.
const GlobalName = "Global"

// GlobalRegion is returned when no location matches a registered region.
func GlobalRegion() Region {
	return Region{
		Name:   GlobalName,
		Bounds: Bounds{{-90, -180}, {90, 180}},
		Center: Coordinates{0, 0},
	}
}

// DefaultRegions returns the built-in region table in match order.
func DefaultRegions() []Region {
	return []Region{
		{
			Name:        "India",
			Bounds:      Bounds{{8.4, 68.7}, {35.5, 97.4}},
			Center:      Coordinates{20.5, 78.9},
			MatchTokens: []string{"India", "Bangalore", "Hyderabad", "Mumbai", "Delhi", "Punjab", "Haryana", "Karnataka", "Maharashtra"},
		},
		{
			Name:        "Europe",
			Bounds:      Bounds{{36.0, -10.0}, {71.0, 40.0}},
			Center:      Coordinates{50.0, 10.0},
			MatchTokens: []string{"Europe", "Madrid", "Munich", "Stockholm", "Paris", "London", "Berlin"},
		},
		{
			Name:        "Asia-Pacific",
			Bounds:      Bounds{{-10.0, 90.0}, {50.0, 180.0}},
			Center:      Coordinates{15.0, 120.0},
			MatchTokens: []string{"Philippines", "Indonesia", "Singapore", "Thailand", "Vietnam", "Japan", "Korea"},
		},
		{
			Name:        "Americas",
			Bounds:      Bounds{{-55.0, -170.0}, {70.0, -30.0}},
			Center:      Coordinates{0.0, -95.0},
			MatchTokens: []string{"California", "Texas", "Florida", "Brazil", "Canada", "Mexico"},
		},
	}
}

// RegionDetector resolves mission locations to a region. It is immutable after
// construction and safe for concurrent use.
type RegionDetector struct {
	regions []Region
}

// NewRegionDetector builds a detector over regions, preserving their order.
func NewRegionDetector(regions []Region) *RegionDetector {
	rs := make([]Region, len(regions))
	for i, r := range regions {
		rs[i] = r.clone()
	}
	return &RegionDetector{regions: rs}
}

// Detect returns the first region, in registry order, with a token contained
// in any of the locations. Without a match it returns GlobalRegion.
func (d *RegionDetector) Detect(locations []string) Region {
	for _, r := range d.regions {
		for _, loc := range locations {
			if r.Matches(loc) {
				return r.clone()
			}
		}
	}
	return GlobalRegion()
}

// Regions returns a copy of the registry in match order.
func (d *RegionDetector) Regions() []Region {
	out := make([]Region, len(d.regions))
	for i, r := range d.regions {
		out[i] = r.clone()
	}
	return out
}
