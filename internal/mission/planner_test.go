package mission

import (
	"bytes"
	"context"
	"errors"
	"math"
	"strings"
	"sync"
	"testing"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"mission-copilot/internal/geo"
	"mission-copilot/internal/logging"
	"mission-copilot/internal/orbit"
)

func f64(v float64) *float64 { return &v }
func intp(v int) *int        { return &v }

func fixedPlanner(opts ...Option) *Planner {
	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	opts = append([]Option{WithClock(func() time.Time { return ts })}, opts...)
	p := NewPlanner(opts...)
	p.newID = func() string { return "mission-1" }
	return p
}

func TestPlanSunSynchronousScenario(t *testing.T) {
	p := fixedPlanner()
	plan, err := p.Plan(context.Background(), Spec{
		Name:            "sso",
		AltitudeKm:      f64(550),
		InclinationDeg:  f64(97),
		Satellites:      intp(1),
		DurationMinutes: f64(200),
		Locations:       []string{"Bangalore", "Atlantis"},
	})
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if plan.ID != "mission-1" || !plan.CreatedAt.Equal(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)) {
		t.Fatalf("unexpected identity %s %v", plan.ID, plan.CreatedAt)
	}
	if math.Abs(plan.Stats.PeriodMinutes-95.6) > 0.5 {
		t.Fatalf("period = %v", plan.Stats.PeriodMinutes)
	}
	if len(plan.Tracks) != 1 || len(plan.Tracks[0].Path) < 2 {
		t.Fatalf("unexpected tracks %+v", plan.Tracks)
	}
	if math.Abs(plan.Stats.SwathWidthKm-1905.3) > 0.1 {
		t.Fatalf("swath = %v, want ~1905.3", plan.Stats.SwathWidthKm)
	}
	if plan.Region.Name != "India" {
		t.Fatalf("region = %s", plan.Region.Name)
	}
	if len(plan.Stations) != 1 || plan.Stations[0].Name != "Bangalore" {
		t.Fatalf("stations = %+v", plan.Stations)
	}
	if plan.Stats.RevisitTime != "23.9 hours" {
		t.Fatalf("revisit = %s", plan.Stats.RevisitTime)
	}
	if plan.Stats.DailyPasses != 15 || plan.Stats.CoveragePercent != 71 {
		t.Fatalf("stats = %+v", plan.Stats)
	}
	wantCircles := (len(plan.Tracks[0].Path) + orbit.CoverageSampleStride - 1) / orbit.CoverageSampleStride
	if len(plan.Coverage) != wantCircles {
		t.Fatalf("coverage points = %d, want %d", len(plan.Coverage), wantCircles)
	}
	if len(plan.Substitutions) != 1 || plan.Substitutions[0].Field != "period_minutes" {
		t.Fatalf("substitutions = %+v", plan.Substitutions)
	}
}

func TestPlanAppliesAndLogsDefaults(t *testing.T) {
	var buf bytes.Buffer
	ctx := logging.NewContext(context.Background(), logging.NewWithConfig(&buf, logging.Config{}))

	plan, err := fixedPlanner().Plan(ctx, Spec{Name: "bare"})
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	want := Parameters{
		AltitudeKm:      DefaultAltitudeKm,
		InclinationDeg:  DefaultInclinationDeg,
		PeriodMinutes:   DefaultPeriodMinutes,
		Satellites:      DefaultSatellites,
		DurationMinutes: DefaultDurationMinutes,
	}
	got := plan.Parameters
	if got.AltitudeKm != want.AltitudeKm || got.InclinationDeg != want.InclinationDeg ||
		got.Satellites != want.Satellites || got.PeriodMinutes != want.PeriodMinutes ||
		got.DurationMinutes != want.DurationMinutes || got.ResolutionM != nil {
		t.Fatalf("parameters = %+v, want %+v", got, want)
	}
	if len(plan.Substitutions) != 5 {
		t.Fatalf("got %d substitutions", len(plan.Substitutions))
	}
	if n := strings.Count(buf.String(), "mission default applied"); n != 5 {
		t.Fatalf("logged %d substitutions:\n%s", n, buf.String())
	}
	if plan.Region.Name != geo.GlobalName {
		t.Fatalf("region = %s", plan.Region.Name)
	}
	if plan.Stations == nil || len(plan.Stations) != 0 {
		t.Fatalf("expected empty station list, got %#v", plan.Stations)
	}
}

func TestPlanCoverageOverride(t *testing.T) {
	plan, err := fixedPlanner().Plan(context.Background(), Spec{CoveragePercent: intp(42)})
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if plan.Stats.CoveragePercent != 42 {
		t.Fatalf("coverage = %d, want override 42", plan.Stats.CoveragePercent)
	}
}

func TestPlanRevisitDecreasesWithSatellites(t *testing.T) {
	p := fixedPlanner()
	one, err := p.Plan(context.Background(), Spec{Satellites: intp(1)})
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	four, err := p.Plan(context.Background(), Spec{Satellites: intp(4)})
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if four.Stats.RevisitMinutes >= one.Stats.RevisitMinutes {
		t.Fatalf("4 sats revisit %v not below 1 sat %v", four.Stats.RevisitMinutes, one.Stats.RevisitMinutes)
	}
}

func TestPlanRejectsInvalidInputs(t *testing.T) {
	cases := []struct {
		name string
		spec Spec
		want error
	}{
		{"altitude", Spec{AltitudeKm: f64(-orbit.EarthRadiusKm)}, orbit.ErrInvalidAltitude},
		{"satellites", Spec{Satellites: intp(0)}, orbit.ErrInvalidSatelliteCount},
		{"duration", Spec{DurationMinutes: f64(0)}, ErrInvalidDuration},
		{"nan duration", Spec{DurationMinutes: f64(math.NaN())}, ErrInvalidDuration},
		{"huge duration", Spec{DurationMinutes: f64(1e15)}, ErrInvalidDuration},
		{"duration past limit", Spec{DurationMinutes: f64(MaxDurationMinutes + 1)}, ErrInvalidDuration},
		{"degenerate orbit", Spec{AltitudeKm: f64(-orbit.EarthRadiusKm + 1e-9)}, orbit.ErrTrackTooDense},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			plan, err := fixedPlanner().Plan(context.Background(), tc.spec)
			if !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
			if plan != nil {
				t.Fatalf("expected no partial plan")
			}
		})
	}
}

type stubPropagator struct{ calls int }

func (s *stubPropagator) GroundTracks(alt, incl float64, n int, d float64) ([]orbit.Track, error) {
	s.calls++
	return []orbit.Track{{SatelliteIndex: 0, Path: []orbit.LatLon{{1, 2}, {3, 4}}, Color: "#00ffff"}}, nil
}

func TestPlanUsesInjectedCollaborators(t *testing.T) {
	prop := &stubPropagator{}
	regions := geo.NewRegionDetector([]geo.Region{{Name: "Nordics", Center: geo.Coordinates{65, 18}, MatchTokens: []string{"Kiruna"}}})
	stations := geo.NewStationRegistry(map[string]geo.Coordinates{"Kiruna": {67.8558, 20.2253}})

	plan, err := fixedPlanner(WithPropagator(prop), WithRegions(regions), WithStations(stations)).
		Plan(context.Background(), Spec{Locations: []string{"Kiruna"}})
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if prop.calls != 1 || plan.TrackPoints() != 2 {
		t.Fatalf("propagator not used: calls=%d points=%d", prop.calls, plan.TrackPoints())
	}
	if plan.Region.Name != "Nordics" || len(plan.Stations) != 1 {
		t.Fatalf("gazetteer not used: %+v %+v", plan.Region, plan.Stations)
	}
}

func TestPlanRecordsSpan(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	p := fixedPlanner(WithTracerProvider(tp))

	if _, err := p.Plan(context.Background(), Spec{Name: "ok"}); err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if _, err := p.Plan(context.Background(), Spec{Name: "bad", AltitudeKm: f64(-9000)}); err == nil {
		t.Fatalf("expected error")
	}

	spans := rec.Ended()
	if len(spans) != 2 {
		t.Fatalf("got %d spans, want 2", len(spans))
	}
	if spans[0].Name() != "mission.Plan" {
		t.Fatalf("span name = %s", spans[0].Name())
	}
	found := false
	for _, kv := range spans[0].Attributes() {
		if kv.Key == attribute.Key("mission.region") && kv.Value.AsString() == geo.GlobalName {
			found = true
		}
	}
	if !found {
		t.Fatalf("region attribute missing: %v", spans[0].Attributes())
	}
	if spans[1].Status().Code != codes.Error {
		t.Fatalf("failed plan span status = %v", spans[1].Status())
	}
}

func TestPlannerConcurrentUse(t *testing.T) {
	p := NewPlanner()
	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 1; i <= 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			plan, err := p.Plan(context.Background(), Spec{Satellites: intp(n), Locations: []string{"London"}})
			if err != nil {
				errs <- err
				return
			}
			if plan.Region.Name != "Europe" {
				errs <- errors.New("wrong region " + plan.Region.Name)
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatal(err)
	}
}
