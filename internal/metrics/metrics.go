// Package metrics exposes Prometheus instruments for the planner and the map API.
package metrics

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"mission-copilot/internal/mission"
	"mission-copilot/internal/orbit"
)

// Plan result labels.
const (
	ResultOK                = "ok"
	ResultInvalidAltitude   = "invalid_altitude"
	ResultInvalidSatellites = "invalid_satellites"
	ResultInvalidDuration   = "invalid_duration"
	ResultTrackTooDense     = "track_too_dense"
	ResultError             = "error"
)

// Collector bundles the mission-copilot metrics.
type Collector struct {
	gatherer prometheus.Gatherer

	Plans         *prometheus.CounterVec
	PlanDurations prometheus.Histogram
	TrackPoints   prometheus.Histogram

	HTTPRequests  *prometheus.CounterVec
	HTTPDurations *prometheus.HistogramVec
}

// NewCollector registers the metrics against reg, defaulting to the global
// registry when nil. Registering twice on the same registry reuses the
// existing collectors.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	plans, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mission_plans_total",
		Help: "Mission plans computed, labeled by result.",
	}, []string{"result"}))
	if err != nil {
		return nil, err
	}
	durations, err := register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "mission_plan_duration_seconds",
		Help:    "Time spent computing a mission plan.",
		Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
	}))
	if err != nil {
		return nil, err
	}
	points, err := register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "mission_plan_track_points",
		Help:    "Ground-track samples per plan.",
		Buckets: prometheus.ExponentialBuckets(100, 2, 10),
	}))
	if err != nil {
		return nil, err
	}
	requests, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mission_http_requests_total",
		Help: "Total number of HTTP requests.",
	}, []string{"path", "method", "code"}))
	if err != nil {
		return nil, err
	}
	httpDur, err := register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "mission_http_duration_seconds",
		Help:    "HTTP request duration in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"path", "method"}))
	if err != nil {
		return nil, err
	}

	return &Collector{
		gatherer:      gatherer,
		Plans:         plans,
		PlanDurations: durations,
		TrackPoints:   points,
		HTTPRequests:  requests,
		HTTPDurations: httpDur,
	}, nil
}

// ObservePlan records one planner call. A nil collector is a no-op.
func (c *Collector) ObservePlan(d time.Duration, plan *mission.Plan, err error) {
	if c == nil {
		return
	}
	c.Plans.WithLabelValues(Result(err)).Inc()
	c.PlanDurations.Observe(d.Seconds())
	if err == nil && plan != nil {
		c.TrackPoints.Observe(float64(plan.TrackPoints()))
	}
}

// Result maps a planner error to its metric label.
func Result(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case errors.Is(err, orbit.ErrInvalidAltitude):
		return ResultInvalidAltitude
	case errors.Is(err, orbit.ErrInvalidSatelliteCount):
		return ResultInvalidSatellites
	case errors.Is(err, mission.ErrInvalidDuration):
		return ResultInvalidDuration
	case errors.Is(err, orbit.ErrTrackTooDense):
		return ResultTrackTooDense
	default:
		return ResultError
	}
}

// Handler exposes the /metrics endpoint.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.gatherer, promhttp.HandlerOpts{})
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Middleware records request count and duration, labeled by the matched
// ServeMux pattern so path parameters do not explode cardinality.
func (c *Collector) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		path := r.Pattern
		if path == "" {
			path = "unmatched"
		}
		c.HTTPRequests.WithLabelValues(path, r.Method, strconv.Itoa(rw.statusCode)).Inc()
		c.HTTPDurations.WithLabelValues(path, r.Method).Observe(time.Since(start).Seconds())
	})
}

func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
			var zero T
			return zero, fmt.Errorf("collector already registered with incompatible type: %w", err)
		}
		var zero T
		return zero, err
	}
	return c, nil
}
