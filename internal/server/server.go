// Package server serves the mission map page and its JSON API.
package server

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"mission-copilot/internal/geo"
	"mission-copilot/internal/logging"
	"mission-copilot/internal/metrics"
	"mission-copilot/internal/mission"
	"mission-copilot/internal/orbit"
	"mission-copilot/internal/output"
)

const maxBodyBytes = 1 << 20

//go:embed templates/index.html
var content embed.FS

// Server exposes a Planner over HTTP.
type Server struct {
	planner *mission.Planner
	metrics *metrics.Collector
	writer  output.Writer
	log     *slog.Logger
	tpl     *template.Template
}

// Option configures a Server.
type Option func(*Server)

// WithMetrics records plan and request metrics and mounts /metrics.
func WithMetrics(c *metrics.Collector) Option {
	return func(s *Server) { s.metrics = c }
}

// WithWriter forwards every computed plan to w.
func WithWriter(w output.Writer) Option {
	return func(s *Server) { s.writer = w }
}

// WithLogger sets the base request logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) { s.log = l }
}

// NewServer creates a Server around planner.
func NewServer(planner *mission.Planner, opts ...Option) *Server {
	s := &Server{
		planner: planner,
		log:     logging.New(),
		tpl:     template.Must(template.New("index.html").ParseFS(content, "templates/index.html")),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the routed handler with logging and metrics middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /api/plan", s.handlePlanQuery)
	mux.HandleFunc("POST /api/plan", s.handlePlanBody)
	mux.HandleFunc("GET /api/regions", s.handleRegions)
	mux.HandleFunc("GET /api/stations", s.handleStations)
	mux.HandleFunc("GET /api/stations/{name}", s.handleStation)
	mux.HandleFunc("GET /healthz", s.handleHealth)

	var h http.Handler = mux
	if s.metrics != nil {
		mux.Handle("GET /metrics", s.metrics.Handler())
		h = s.metrics.Middleware(h)
	}
	return s.logRequests(h)
}

// Start serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
	errc := make(chan error, 1)
	go func() {
		s.log.Info("map server listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log := s.log.With("request_id", uuid.NewString())
		rw := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rw, r.WithContext(logging.NewContext(r.Context(), log)))
		log.Debug("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.status,
			"duration", time.Since(start),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := struct {
		Regions  []geo.Region
		Stations []string
		Defaults mission.Parameters
	}{
		Regions:  s.planner.Regions(),
		Stations: s.planner.Stations().Names(),
	}
	data.Defaults, _ = mission.ApplyDefaults(mission.Spec{})
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tpl.Execute(w, data); err != nil {
		logging.FromContext(r.Context()).Error("render index", "err", err)
	}
}

func (s *Server) handlePlanQuery(w http.ResponseWriter, r *http.Request) {
	spec, err := specFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	s.plan(w, r, spec)
}

func (s *Server) handlePlanBody(w http.ResponseWriter, r *http.Request) {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	var spec mission.Spec
	if err := dec.Decode(&spec); err != nil {
		writeError(w, r, http.StatusBadRequest, fmt.Errorf("decode mission: %w", err))
		return
	}
	s.plan(w, r, spec)
}

func (s *Server) plan(w http.ResponseWriter, r *http.Request, spec mission.Spec) {
	ctx := r.Context()
	start := time.Now()
	plan, err := s.planner.Plan(ctx, spec)
	s.metrics.ObservePlan(time.Since(start), plan, err)
	if err != nil {
		writeError(w, r, statusFor(err), err)
		return
	}
	if s.writer != nil {
		if err := s.writer.WritePlan(plan); err != nil {
			logging.FromContext(ctx).Warn("plan sink failed", "mission_id", plan.ID, "err", err)
		}
	}
	writeJSON(w, r, http.StatusOK, plan)
}

func (s *Server) handleRegions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, s.planner.Regions())
}

func (s *Server) handleStations(w http.ResponseWriter, r *http.Request) {
	reg := s.planner.Stations()
	writeJSON(w, r, http.StatusOK, reg.Resolve(reg.Names()))
}

func (s *Server) handleStation(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	c, ok := s.planner.Stations().Lookup(name)
	if !ok {
		writeError(w, r, http.StatusNotFound, fmt.Errorf("unknown ground station %q", name))
		return
	}
	writeJSON(w, r, http.StatusOK, geo.GroundStation{Name: name, Coordinates: c})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// statusFor maps domain errors to 422 and anything else to 500.
func statusFor(err error) int {
	var de *orbit.DomainError
	if errors.As(err, &de) || errors.Is(err, mission.ErrInvalidDuration) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func specFromQuery(q url.Values) (mission.Spec, error) {
	spec := mission.Spec{
		Name:        q.Get("name"),
		Description: q.Get("description"),
	}
	floats := []struct {
		key string
		dst **float64
	}{
		{"altitude_km", &spec.AltitudeKm},
		{"inclination_deg", &spec.InclinationDeg},
		{"period_minutes", &spec.PeriodMinutes},
		{"resolution_m", &spec.ResolutionM},
		{"duration_minutes", &spec.DurationMinutes},
	}
	for _, f := range floats {
		raw := q.Get(f.key)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return spec, fmt.Errorf("%s: %w", f.key, err)
		}
		*f.dst = &v
	}
	ints := []struct {
		key string
		dst **int
	}{
		{"satellites", &spec.Satellites},
		{"coverage_percent", &spec.CoveragePercent},
	}
	for _, f := range ints {
		raw := q.Get(f.key)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return spec, fmt.Errorf("%s: %w", f.key, err)
		}
		*f.dst = &v
	}
	for _, loc := range q["location"] {
		for _, part := range strings.Split(loc, ",") {
			if part = strings.TrimSpace(part); part != "" {
				spec.Locations = append(spec.Locations, part)
			}
		}
	}
	return spec, nil
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).Error("encode response", "path", r.URL.Path, "err", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	writeJSON(w, r, status, map[string]string{"error": err.Error()})
}
