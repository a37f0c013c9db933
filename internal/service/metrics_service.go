package service

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// MetricsService owns the Prometheus registry and the instruments for
// HTTP traffic and engine runs.
type MetricsService struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	generationRuns    *prometheus.CounterVec
	generationFlights *prometheus.CounterVec
	propagationRuns   prometheus.Counter
	propagatedFlights *prometheus.CounterVec
}

// NewMetricsService builds and registers all collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	s := &MetricsService{
		registry: registry,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "osams_http_requests_total",
			Help: "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "osams_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		generationRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "osams_generation_runs_total",
			Help: "Generation engine runs by mode.",
		}, []string{"mode"}),
		generationFlights: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "osams_generation_flights_total",
			Help: "Generation outcomes per candidate flight.",
		}, []string{"outcome"}),
		propagationRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "osams_propagation_runs_total",
			Help: "Propagation engine runs.",
		}),
		propagatedFlights: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "osams_propagation_flights_total",
			Help: "Propagation outcomes per candidate flight.",
		}, []string{"outcome"}),
	}
	registry.MustRegister(s.httpRequests, s.httpDuration,
		s.generationRuns, s.generationFlights, s.propagationRuns, s.propagatedFlights)
	return s
}

// Registry exposes the registry for the /metrics handler.
func (s *MetricsService) Registry() *prometheus.Registry {
	return s.registry
}

// ObserveHTTPRequest records one handled request.
func (s *MetricsService) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	s.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	s.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordGenerationRun accumulates one generation run's outcome counts.
func (s *MetricsService) RecordGenerationRun(mode string, created, skipped, errored int) {
	s.generationRuns.WithLabelValues(mode).Inc()
	s.generationFlights.WithLabelValues("created").Add(float64(created))
	s.generationFlights.WithLabelValues("skipped").Add(float64(skipped))
	s.generationFlights.WithLabelValues("errored").Add(float64(errored))
}

// RecordPropagationRun accumulates one propagation run's outcome counts.
func (s *MetricsService) RecordPropagationRun(updated, unchanged, skipped, errored int) {
	s.propagationRuns.Inc()
	s.propagatedFlights.WithLabelValues("updated").Add(float64(updated))
	s.propagatedFlights.WithLabelValues("unchanged").Add(float64(unchanged))
	s.propagatedFlights.WithLabelValues("skipped").Add(float64(skipped))
	s.propagatedFlights.WithLabelValues("errored").Add(float64(errored))
}
