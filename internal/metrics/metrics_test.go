package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"mission-copilot/internal/mission"
	"mission-copilot/internal/orbit"
)

func TestObservePlan(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	if err != nil {
		t.Fatalf("NewCollector: %v", err)
	}

	plan, err := mission.NewPlanner().Plan(context.Background(), mission.Spec{})
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	c.ObservePlan(time.Millisecond, plan, nil)
	c.ObservePlan(time.Millisecond, nil, fmt.Errorf("plan: %w", orbit.ErrInvalidAltitude))

	if got := testutil.ToFloat64(c.Plans.WithLabelValues(ResultOK)); got != 1 {
		t.Fatalf("ok plans = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.Plans.WithLabelValues(ResultInvalidAltitude)); got != 1 {
		t.Fatalf("invalid altitude plans = %v, want 1", got)
	}
	if n := testutil.CollectAndCount(c.TrackPoints); n != 1 {
		t.Fatalf("track point series = %d", n)
	}
}

func TestResult(t *testing.T) {
	tests := map[string]error{
		ResultOK:                nil,
		ResultInvalidAltitude:   &orbit.DomainError{Kind: orbit.InvalidAltitude},
		ResultInvalidSatellites: &orbit.DomainError{Kind: orbit.InvalidSatelliteCount},
		ResultInvalidDuration:   mission.ErrInvalidDuration,
		ResultTrackTooDense:     &orbit.DomainError{Kind: orbit.TrackTooDense},
		ResultError:             errors.New("other"),
	}
	for want, err := range tests {
		if got := Result(err); got != want {
			t.Errorf("Result(%v) = %s, want %s", err, got, want)
		}
	}
}

func TestMiddlewareUsesPattern(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	if err != nil {
		t.Fatalf("NewCollector: %v", err)
	}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/stations/{name}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	h := c.Middleware(mux)

	for _, name := range []string{"Atlantis", "Lemuria"} {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/stations/"+name, nil))
	}

	if got := testutil.ToFloat64(c.HTTPRequests.WithLabelValues("GET /api/stations/{name}", "GET", "404")); got != 2 {
		t.Fatalf("requests = %v, want 2", got)
	}
}

func TestRegisterTwiceReuses(t *testing.T) {
	reg := prometheus.NewRegistry()
	a, err := NewCollector(reg)
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	b, err := NewCollector(reg)
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if a.Plans != b.Plans {
		t.Fatalf("expected shared counter")
	}
}

func TestHandlerExposesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, _ := NewCollector(reg)
	c.Plans.WithLabelValues(ResultOK).Inc()

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if !strings.Contains(rec.Body.String(), `mission_plans_total{result="ok"} 1`) {
		t.Fatalf("metrics output missing counter:\n%s", rec.Body.String())
	}
}

func TestNilCollectorIsNoop(t *testing.T) {
	var c *Collector
	c.ObservePlan(time.Second, nil, nil)
}
