package mission

import "time"

// TrackPointRow is one ground-track sample flattened for storage.
type TrackPointRow struct {
	MissionID string    `json:"mission_id"` // TAG
	Satellite int       `json:"satellite"`  // TAG
	Seq       int       `json:"seq"`        // FIELD
	Lat       float64   `json:"lat"`        // FIELD
	Lon       float64   `json:"lon"`        // FIELD
	Color     string    `json:"color"`      // FIELD
	Timestamp time.Time `json:"ts"`         // TIME INDEX
}

// SummaryRow is the per-mission statistics record.
type SummaryRow struct {
	MissionID       string    `json:"mission_id"`
	Name            string    `json:"name"`
	Region          string    `json:"region"`
	AltitudeKm      float64   `json:"altitude_km"`
	InclinationDeg  float64   `json:"inclination_deg"`
	Satellites      int       `json:"satellites"`
	PeriodMinutes   float64   `json:"period_minutes"`
	SwathWidthKm    float64   `json:"swath_width_km"`
	CoverageRadiusM float64   `json:"coverage_radius_m"`
	DailyPasses     int       `json:"daily_passes"`
	CoveragePercent int       `json:"coverage_percent"`
	RevisitMinutes  float64   `json:"revisit_minutes"`
	RevisitTime     string    `json:"revisit_time"`
	Stations        int       `json:"stations"`
	Timestamp       time.Time `json:"ts"`
}

// TrackPointRows flattens every track. Each row is stamped with the simulated
// time of its sample, offset from the plan creation time.
func (p *Plan) TrackPointRows() []TrackPointRow {
	rows := make([]TrackPointRow, 0, p.TrackPoints())
	for _, tr := range p.Tracks {
		n := len(tr.Path) - 1
		for i, pt := range tr.Path {
			rows = append(rows, TrackPointRow{
				MissionID: p.ID,
				Satellite: tr.Satellite(),
				Seq:       i,
				Lat:       pt.Lat(),
				Lon:       pt.Lon(),
				Color:     tr.Color,
				Timestamp: p.CreatedAt.Add(sampleOffset(i, n, p.Parameters.DurationMinutes)),
			})
		}
	}
	return rows
}

// SummaryRow returns the statistics row for the plan.
func (p *Plan) SummaryRow() SummaryRow {
	return SummaryRow{
		MissionID:       p.ID,
		Name:            p.Name,
		Region:          p.Region.Name,
		AltitudeKm:      p.Parameters.AltitudeKm,
		InclinationDeg:  p.Parameters.InclinationDeg,
		Satellites:      p.Parameters.Satellites,
		PeriodMinutes:   p.Stats.PeriodMinutes,
		SwathWidthKm:    p.Stats.SwathWidthKm,
		CoverageRadiusM: p.Stats.CoverageRadiusM,
		DailyPasses:     p.Stats.DailyPasses,
		CoveragePercent: p.Stats.CoveragePercent,
		RevisitMinutes:  p.Stats.RevisitMinutes,
		RevisitTime:     p.Stats.RevisitTime,
		Stations:        len(p.Stations),
		Timestamp:       p.CreatedAt,
	}
}

func sampleOffset(i, n int, durationMin float64) time.Duration {
	if n <= 0 {
		return 0
	}
	minutes := float64(i) / float64(n) * durationMin
	return time.Duration(minutes * float64(time.Minute))
}
