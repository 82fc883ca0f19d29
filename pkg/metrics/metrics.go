// Package metrics holds the Prometheus collectors of the console.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const DefaultPrefix = "catalog_console"

// Metrics groups every collector on its own registry.
type Metrics struct {
	reg *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	UpstreamCallsTotal   *prometheus.CounterVec
	UpstreamCallDuration *prometheus.HistogramVec
	AuthAttemptsTotal    *prometheus.CounterVec
	ActiveSessions       prometheus.GaugeFunc
}

// New registers all collectors under prefix. sessions, if non-nil, backs the active sessions gauge.
func New(prefix string, sessions func() int) *Metrics {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	m := &Metrics{reg: reg}

	m.HTTPRequestsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)
	m.HTTPRequestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
	m.UpstreamCallsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_upstream_calls_total",
			Help: "Total number of catalog API calls",
		},
		[]string{"operation", "status"},
	)
	m.UpstreamCallDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_upstream_call_duration_seconds",
			Help:    "Duration of catalog API calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
	m.AuthAttemptsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_auth_attempts_total",
			Help: "Total number of sign-in attempts by result",
		},
		[]string{"result"},
	)
	if sessions != nil {
		m.ActiveSessions = factory.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: prefix + "_active_sessions",
				Help: "Number of live console sessions",
			},
			func() float64 { return float64(sessions()) },
		)
	}

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg})
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(method, path string, status int, elapsed time.Duration) {
	code := strconv.Itoa(status)
	m.HTTPRequestsTotal.WithLabelValues(method, path, code).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path, code).Observe(elapsed.Seconds())
}

// ObserveCall records one catalog API call. status is 0 when no response was received.
func (m *Metrics) ObserveCall(op string, status int, elapsed time.Duration) {
	code := "error"
	if status > 0 {
		code = strconv.Itoa(status)
	}
	m.UpstreamCallsTotal.WithLabelValues(op, code).Inc()
	m.UpstreamCallDuration.WithLabelValues(op).Observe(elapsed.Seconds())
}

// ObserveAuth records a sign-in outcome.
func (m *Metrics) ObserveAuth(ok bool) {
	result := "failure"
	if ok {
		result = "success"
	}
	m.AuthAttemptsTotal.WithLabelValues(result).Inc()
}
