package geo

import (
	"maps"
	"slices"
)

// GroundStation is a resolved station marker for the map.
type GroundStation struct {
	Name        string      `json:"name"`
	Coordinates Coordinates `json:"coordinates"`
}

// DefaultStations returns the built-in gazetteer of station and region names.
func DefaultStations() map[string]Coordinates {
	return map[string]Coordinates{
		// India
		"Bangalore":   {12.9716, 77.5946},
		"Hyderabad":   {17.3850, 78.4867},
		"Mumbai":      {19.0760, 72.8777},
		"Delhi":       {28.6139, 77.2090},
		"Ahmedabad":   {23.0225, 72.5714},
		"Chennai":     {13.0827, 80.2707},
		"Pune":        {18.5204, 73.8567},
		"Punjab":      {31.1471, 75.3412},
		"Haryana":     {29.0588, 76.0856},
		"Karnataka":   {15.3173, 75.7139},
		"Maharashtra": {19.7515, 75.7139},

		// Europe
		"Madrid":    {40.4168, -3.7038},
		"Munich":    {48.1351, 11.5820},
		"Stockholm": {59.3293, 18.0686},
		"Paris":     {48.8566, 2.3522},
		"London":    {51.5074, -0.1278},
		"Berlin":    {52.5200, 13.4050},

		// Asia-Pacific
		"Singapore": {1.3521, 103.8198},
		"Tokyo":     {35.6762, 139.6503},
		"Seoul":     {37.5665, 126.9780},
		"Bangkok":   {13.7563, 100.5018},
		"Manila":    {14.5995, 120.9842},
		"Jakarta":   {-6.2088, 106.8456},

		// Americas
		"California": {36.7783, -119.4179},
		"Texas":      {31.9686, -99.9018},
		"Florida":    {27.6648, -81.5158},

		// Region centres
		"India":        {20.5937, 78.9629},
		"Europe":       {50.0, 10.0},
		"Asia-Pacific": {15.0, 120.0},
		"Global":       {0, 0},
	}
}

// StationRegistry is a read-only name to coordinate lookup.
type StationRegistry struct {
	stations map[string]Coordinates
}

// NewStationRegistry copies table into a new registry.
func NewStationRegistry(table map[string]Coordinates) *StationRegistry {
	return &StationRegistry{stations: maps.Clone(table)}
}

// Lookup returns the coordinates for an exact station name.
func (r *StationRegistry) Lookup(name string) (Coordinates, bool) {
	c, ok := r.stations[name]
	return c, ok
}

// Resolve returns stations for the known names in input order. Unknown names
// are skipped: they are simply not drawn.
func (r *StationRegistry) Resolve(names []string) []GroundStation {
	out := make([]GroundStation, 0, len(names))
	for _, n := range names {
		if c, ok := r.stations[n]; ok {
			out = append(out, GroundStation{Name: n, Coordinates: c})
		}
	}
	return out
}

// Names returns all station names sorted alphabetically.
func (r *StationRegistry) Names() []string {
	return slices.Sorted(maps.Keys(r.stations))
}

// Len returns the number of stations.
func (r *StationRegistry) Len() int { return len(r.stations) }
