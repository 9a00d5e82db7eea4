package presets

func res(m float64) *float64 { return &m }

// BuiltIn returns the quick-start missions, ordered by match priority.
func BuiltIn() []Preset {
	return []Preset{
		{
			ID:             "agriculture",
			Title:          "Agriculture Monitor",
			NamePrefix:     "AgriWatch",
			Description:    "Precision agriculture monitoring with crop health analysis over South India.",
			OrbitType:      "Sun-Synchronous Orbit (SSO)",
			Payload:        "Multispectral Camera (RGB + NIR + Red Edge)",
			AltitudeKm:     500,
			InclinationDeg: 98.2,
			Satellites:     1,
			ResolutionM:    res(3),
			Locations:      []string{"Punjab", "Haryana", "Maharashtra", "Karnataka"},
			Keywords:       []string{"agriculture", "crop", "farming", "precision", "agri"},
		},
		{
			ID:             "disaster",
			Title:          "Disaster Response",
			NamePrefix:     "DisasterGuard",
			Description:    "Rapid disaster response with all-weather monitoring.",
			OrbitType:      "Polar Orbit (SSO)",
			Payload:        "SAR + Optical + Thermal Imaging",
			AltitudeKm:     800,
			InclinationDeg: 98,
			Satellites:     12,
			ResolutionM:    res(5),
			Locations:      []string{"Manila", "Jakarta", "Tokyo"},
			Keywords:       []string{"disaster", "emergency", "earthquake", "flood", "response"},
		},
		{
			ID:             "marine",
			Title:          "Marine Watch",
			NamePrefix:     "MarineWatch",
			Description:    "Illegal fishing detection with vessel tracking.",
			OrbitType:      "Sun-Synchronous Orbit (SSO)",
			Payload:        "AIS Receiver + Multispectral Camera + SAR",
			AltitudeKm:     650,
			InclinationDeg: 98.2,
			Satellites:     6,
			ResolutionM:    res(10),
			Locations:      []string{"Singapore", "Chennai"},
			Keywords:       []string{"fishing", "marine", "ocean", "maritime", "vessel", "ship"},
		},
		{
			ID:             "forest",
			Title:          "Forest Guard",
			NamePrefix:     "ForestGuard",
			Description:    "Wildfire detection and forest monitoring.",
			OrbitType:      "Sun-Synchronous Orbit (SSO)",
			Payload:        "Thermal IR + Optical + Smoke Detector",
			AltitudeKm:     550,
			InclinationDeg: 97.8,
			Satellites:     4,
			ResolutionM:    res(10),
			Locations:      []string{"California", "Jakarta"},
			Keywords:       []string{"forest", "fire", "wildfire", "deforestation"},
		},
		{
			ID:             "broadband",
			Title:          "Broadband Coverage",
			NamePrefix:     "CommSat",
			Description:    "Broadband internet and telecommunication services over Europe.",
			OrbitType:      "Geostationary Orbit (GEO)",
			Payload:        "Ku-band Transponder (14/12 GHz)",
			AltitudeKm:     35786,
			InclinationDeg: 0,
			Satellites:     3,
			Locations:      []string{"Madrid", "Munich", "Stockholm"},
			Keywords:       []string{"communication", "broadband", "internet", "telecom"},
		},
		{
			ID:             "climate",
			Title:          "Climate Watch",
			NamePrefix:     "ClimateWatch",
			Description:    "Greenhouse gas monitoring and climate change tracking.",
			OrbitType:      "Sun-Synchronous Orbit (SSO)",
			Payload:        "Hyperspectral Imager + CO2/CH4 Sensors",
			AltitudeKm:     700,
			InclinationDeg: 98.5,
			Satellites:     8,
			ResolutionM:    res(50),
			Keywords:       []string{"climate", "greenhouse", "carbon", "co2", "methane"},
		},
		{
			ID:             "general",
			Title:          "Earth Observation",
			NamePrefix:     "EarthObs",
			Description:    "General Earth observation mission.",
			OrbitType:      "Low Earth Orbit (LEO)",
			Payload:        "Optical Camera",
			AltitudeKm:     550,
			InclinationDeg: 45,
			Satellites:     6,
			ResolutionM:    res(10),
		},
	}
}
