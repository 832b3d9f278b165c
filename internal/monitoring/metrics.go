// Package monitoring exposes Prometheus metrics for the console
// service: HTTP traffic, command dispatches, searches, and live
// session counts.
package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds all Prometheus collectors for the service.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	CommandsTotal   *prometheus.CounterVec
	CommandDuration *prometheus.HistogramVec
	SearchesTotal   prometheus.Counter

	SessionsActive  prometheus.Gauge
	SessionsCreated prometheus.Counter

	WSConnections prometheus.Gauge

	registry *prometheus.Registry
}

// New creates a metrics collector with its own registry, so tests can
// build as many as they like without duplicate-collector panics.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := func(c prometheus.Collector) prometheus.Collector {
		reg.MustRegister(c)
		return c
	}

	m := &Metrics{registry: reg}

	m.RequestsTotal = factory(prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "console_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)).(*prometheus.CounterVec)

	m.RequestDuration = factory(prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "console_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"method", "path"},
	)).(*prometheus.HistogramVec)

	m.CommandsTotal = factory(prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "console_commands_total",
			Help: "Console commands dispatched, by command and outcome",
		},
		[]string{"command", "status"},
	)).(*prometheus.CounterVec)

	m.CommandDuration = factory(prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "console_command_duration_seconds",
			Help:    "Console command dispatch duration in seconds",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1},
		},
		[]string{"command"},
	)).(*prometheus.HistogramVec)

	m.SearchesTotal = factory(prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "console_searches_total",
			Help: "Content searches executed",
		},
	)).(prometheus.Counter)

	m.SessionsActive = factory(prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "console_sessions_active",
			Help: "Console sessions currently alive",
		},
	)).(prometheus.Gauge)

	m.SessionsCreated = factory(prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "console_sessions_created_total",
			Help: "Console sessions created since start",
		},
	)).(prometheus.Counter)

	m.WSConnections = factory(prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "console_ws_connections",
			Help: "Open WebSocket connections",
		},
	)).(prometheus.Gauge)

	return m
}

// Registry returns the backing registry for the /metrics handler.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// RecordHTTPRequest records one served HTTP request.
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordCommand records one console dispatch.
func (m *Metrics) RecordCommand(command, status string, duration time.Duration) {
	m.CommandsTotal.WithLabelValues(command, status).Inc()
	m.CommandDuration.WithLabelValues(command).Observe(duration.Seconds())
	if command == "search" {
		m.SearchesTotal.Inc()
	}
}
