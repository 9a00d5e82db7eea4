package mission

import "slices"

// ApplyDefaults resolves a Spec into Parameters and reports every default it
// substituted so callers can surface them.
func ApplyDefaults(s Spec) (Parameters, []Substitution) {
	var subs []Substitution

	p := Parameters{
		ResolutionM: s.ResolutionM,
		Locations:   slices.Clone(s.Locations),
	}
	p.AltitudeKm = orDefault(s.AltitudeKm, DefaultAltitudeKm, "altitude_km", &subs)
	p.InclinationDeg = orDefault(s.InclinationDeg, DefaultInclinationDeg, "inclination_deg", &subs)
	p.Satellites = orDefault(s.Satellites, DefaultSatellites, "satellites", &subs)
	p.PeriodMinutes = orDefault(s.PeriodMinutes, DefaultPeriodMinutes, "period_minutes", &subs)
	p.DurationMinutes = orDefault(s.DurationMinutes, DefaultDurationMinutes, "duration_minutes", &subs)
	return p, subs
}

func orDefault[T any](v *T, def T, field string, subs *[]Substitution) T {
	if v != nil {
		return *v
	}
	*subs = append(*subs, Substitution{Field: field, Value: def})
	return def
}
