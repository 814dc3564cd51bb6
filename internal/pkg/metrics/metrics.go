package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Booking request outcomes.
const (
	ResultAccepted     = "accepted"
	ResultSlotConflict = "slot_conflict"
	ResultInvalid      = "invalid"
	ResultError        = "error"
)

type Metrics struct {
	Registry *prometheus.Registry

	httpRequests       *prometheus.CounterVec
	httpDuration       *prometheus.HistogramVec
	bookingRequests    *prometheus.CounterVec
	bookingTransitions *prometheus.CounterVec
}

// New registers every collector on a private registry so tests can build as many as they like.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		httpRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		httpDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		bookingRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "booking_requests_total",
				Help: "Booking requests by outcome",
			},
			[]string{"result"},
		),
		bookingTransitions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "booking_transitions_total",
				Help: "Booking mutations by operation and outcome",
			},
			[]string{"operation", "result"},
		),
	}
}

func (m *Metrics) ObserveHTTP(method, route, status string, seconds float64) {
	m.httpRequests.WithLabelValues(method, route, status).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(seconds)
}

func (m *Metrics) TrackBookingRequest(result string) {
	m.bookingRequests.WithLabelValues(result).Inc()
}

func (m *Metrics) TrackTransition(operation, result string) {
	m.bookingTransitions.WithLabelValues(operation, result).Inc()
}

// BookingRequests exposes the outcome counter for assertions.
func (m *Metrics) BookingRequests() *prometheus.CounterVec {
	return m.bookingRequests
}

func (m *Metrics) BookingTransitions() *prometheus.CounterVec {
	return m.bookingTransitions
}

// PoolStats is the part of *pgxpool.Stat the pool gauges read.
type PoolStats interface {
	AcquiredConns() int32
	IdleConns() int32
	TotalConns() int32
}

// WatchPool exports database pool gauges, sampled on every scrape.
func (m *Metrics) WatchPool(stat func() PoolStats) {
	gauge := func(name, help string, read func(PoolStats) int32) prometheus.GaugeFunc {
		return prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{Name: name, Help: help},
			func() float64 { return float64(read(stat())) },
		)
	}
	m.Registry.MustRegister(
		gauge("db_pool_acquired_conns", "Connections currently in use", PoolStats.AcquiredConns),
		gauge("db_pool_idle_conns", "Idle connections", PoolStats.IdleConns),
		gauge("db_pool_total_conns", "Open connections", PoolStats.TotalConns),
	)
}
