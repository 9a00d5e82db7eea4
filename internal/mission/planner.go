package mission

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"mission-copilot/internal/geo"
	"mission-copilot/internal/logging"
	"mission-copilot/internal/orbit"
)

const tracerName = "mission-copilot/internal/mission"

// MaxDurationMinutes is the longest propagation window a plan may request.
const MaxDurationMinutes = 7 * 24 * 60

// ErrInvalidDuration is returned for a propagation window that is not finite
// or falls outside (0, MaxDurationMinutes].
var ErrInvalidDuration = errors.New("invalid track duration")

// Planner turns mission specs into plans. Its collaborators are read-only, so
// one Planner may serve concurrent requests.
type Planner struct {
	regions    *geo.RegionDetector
	stations   *geo.StationRegistry
	propagator orbit.Propagator
	stride     int
	tracer     trace.Tracer
	now        func() time.Time
	newID      func() string
}

// Option customises a Planner.
type Option func(*Planner)

// WithRegions replaces the built-in region registry.
func WithRegions(d *geo.RegionDetector) Option {
	return func(p *Planner) { p.regions = d }
}

// WithStations replaces the built-in station gazetteer.
func WithStations(r *geo.StationRegistry) Option {
	return func(p *Planner) { p.stations = r }
}

// WithPropagator swaps the ground-track model.
func WithPropagator(prop orbit.Propagator) Option {
	return func(p *Planner) { p.propagator = prop }
}

// WithTracerProvider sets the provider used for plan spans.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(p *Planner) { p.tracer = tp.Tracer(tracerName) }
}

// WithClock overrides the plan timestamp source.
func WithClock(now func() time.Time) Option {
	return func(p *Planner) { p.now = now }
}

// NewPlanner builds a Planner over the default gazetteer unless overridden.
func NewPlanner(opts ...Option) *Planner {
	p := &Planner{
		propagator: orbit.SinusoidalPropagator{},
		stride:     orbit.CoverageSampleStride,
		tracer:     otel.Tracer(tracerName),
		now:        time.Now,
		newID:      func() string { return uuid.New().String() },
	}
	for _, o := range opts {
		o(p)
	}
	if p.regions == nil {
		p.regions = geo.NewRegionDetector(geo.DefaultRegions())
	}
	if p.stations == nil {
		p.stations = geo.NewStationRegistry(geo.DefaultStations())
	}
	return p
}

// Regions exposes the region registry in match order.
func (p *Planner) Regions() []geo.Region { return p.regions.Regions() }

// Stations exposes the station gazetteer.
func (p *Planner) Stations() *geo.StationRegistry { return p.stations }

// Plan computes the full plan for s. Any invalid parameter aborts the plan as a
// whole; no partial result is returned.
func (p *Planner) Plan(ctx context.Context, s Spec) (*Plan, error) {
	ctx, span := p.tracer.Start(ctx, "mission.Plan")
	defer span.End()

	log := logging.FromContext(ctx)
	params, subs := ApplyDefaults(s)
	for _, sub := range subs {
		log.Info("mission default applied", slog.String("mission", s.Name), slog.String("field", sub.Field), slog.Any("value", sub.Value))
	}
	span.SetAttributes(
		attribute.String("mission.name", s.Name),
		attribute.Float64("mission.altitude_km", params.AltitudeKm),
		attribute.Float64("mission.inclination_deg", params.InclinationDeg),
		attribute.Int("mission.satellites", params.Satellites),
		attribute.Int("mission.defaults_applied", len(subs)),
	)

	plan, err := p.compute(params)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Warn("mission plan rejected", slog.String("mission", s.Name), slog.Any("error", err))
		return nil, fmt.Errorf("plan mission %q: %w", s.Name, err)
	}

	plan.ID = p.newID()
	plan.Name = s.Name
	plan.Description = s.Description
	plan.CreatedAt = p.now().UTC()
	plan.Substitutions = subs
	if s.CoveragePercent != nil {
		plan.Stats.CoveragePercent = *s.CoveragePercent
	}

	span.SetAttributes(
		attribute.String("mission.id", plan.ID),
		attribute.String("mission.region", plan.Region.Name),
		attribute.Int("mission.track_points", plan.TrackPoints()),
	)
	log.Debug("mission planned",
		slog.String("id", plan.ID),
		slog.String("region", plan.Region.Name),
		slog.Int("tracks", len(plan.Tracks)),
		slog.Int("stations", len(plan.Stations)),
		slog.String("revisit", plan.Stats.RevisitTime),
	)
	return plan, nil
}

func (p *Planner) compute(params Parameters) (*Plan, error) {
	if err := orbit.ValidateAltitude(params.AltitudeKm); err != nil {
		return nil, err
	}
	if err := orbit.ValidateSatellites(params.Satellites); err != nil {
		return nil, err
	}
	if d := params.DurationMinutes; math.IsNaN(d) || math.IsInf(d, 0) || d <= 0 || d > MaxDurationMinutes {
		return nil, fmt.Errorf("%w: %v minutes", ErrInvalidDuration, d)
	}

	period, err := orbit.PeriodMinutes(params.AltitudeKm)
	if err != nil {
		return nil, err
	}
	tracks, err := p.propagator.GroundTracks(params.AltitudeKm, params.InclinationDeg, params.Satellites, params.DurationMinutes)
	if err != nil {
		return nil, err
	}

	passes, err := orbit.DailyPasses(period, params.Satellites)
	if err != nil {
		return nil, err
	}

	swath := orbit.SwathWidthKm(params.AltitudeKm, params.ResolutionM)
	radius := orbit.CoverageRadiusM(params.AltitudeKm, swath)
	region := p.regions.Detect(params.Locations)

	revisit, err := orbit.RevisitMinutes(params.AltitudeKm, params.InclinationDeg, params.Satellites, region.Center.Lat())
	if err != nil {
		return nil, err
	}

	return &Plan{
		Parameters: params,
		Tracks:     tracks,
		Coverage:   orbit.CoveragePoints(tracks, radius, p.stride),
		Region:     region,
		Stations:   p.stations.Resolve(params.Locations),
		Stats: Stats{
			PeriodMinutes:   period,
			SwathWidthKm:    swath,
			CoverageRadiusM: radius,
			DailyPasses:     passes,
			CoveragePercent: orbit.CoveragePercent(swath, params.Satellites),
			RevisitMinutes:  revisit,
			RevisitTime:     orbit.FormatRevisit(revisit),
		},
	}, nil
}
