package mission

import (
	"context"
	"testing"
	"time"
)

func TestTrackPointRows(t *testing.T) {
	plan, err := fixedPlanner().Plan(context.Background(), Spec{Satellites: intp(2), DurationMinutes: f64(100)})
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	rows := plan.TrackPointRows()
	if len(rows) != plan.TrackPoints() {
		t.Fatalf("got %d rows, want %d", len(rows), plan.TrackPoints())
	}
	first, last := rows[0], rows[len(plan.Tracks[0].Path)-1]
	if first.Satellite != 1 || first.Seq != 0 || !first.Timestamp.Equal(plan.CreatedAt) {
		t.Fatalf("unexpected first row %+v", first)
	}
	if got := last.Timestamp.Sub(plan.CreatedAt); got != 100*time.Minute {
		t.Fatalf("last sample offset = %v, want 100m", got)
	}
	if rows[len(rows)-1].Satellite != 2 {
		t.Fatalf("second track rows missing")
	}
}

func TestSummaryRow(t *testing.T) {
	plan, err := fixedPlanner().Plan(context.Background(), Spec{Name: "eu", Locations: []string{"Paris", "Berlin"}})
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	row := plan.SummaryRow()
	if row.MissionID != plan.ID || row.Region != "Europe" || row.Stations != 2 || row.RevisitTime != plan.Stats.RevisitTime {
		t.Fatalf("unexpected summary %+v", row)
	}
}

func TestApplyDefaultsKeepsProvidedValues(t *testing.T) {
	res := 5.0
	params, subs := ApplyDefaults(Spec{
		AltitudeKm:      f64(700),
		InclinationDeg:  f64(53),
		PeriodMinutes:   f64(98.8),
		Satellites:      intp(12),
		DurationMinutes: f64(90),
		ResolutionM:     &res,
	})
	if len(subs) != 0 {
		t.Fatalf("unexpected substitutions %+v", subs)
	}
	if params.AltitudeKm != 700 || params.Satellites != 12 || *params.ResolutionM != 5 {
		t.Fatalf("unexpected params %+v", params)
	}
}
