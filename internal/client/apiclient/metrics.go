package apiclient

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "wevraa"
	subsystem = "client"
)

// Refresh outcomes recorded by Metrics.
const (
	refreshSuccess = "success"
	refreshFailure = "failure"
	refreshNoToken = "no_token"
)

// Metrics holds the client's Prometheus collectors.
type Metrics struct {
	requests  *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	refreshes *prometheus.CounterVec
}

// NewMetrics registers the client collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		// Labels: method (GET, POST, ...), code (HTTP status or "error").
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "requests_total",
			Help:      "HTTP attempts issued to the back-office API, by method and status code.",
		}, []string{"method", "code"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP attempts to the back-office API.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
		// Label: result (success, failure, no_token).
		refreshes: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "refresh_total",
			Help:      "Token refresh attempts, by result.",
		}, []string{"result"}),
	}
}

func (m *Metrics) observeAttempt(method, code string, d time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(method, code).Inc()
	m.duration.WithLabelValues(method).Observe(d.Seconds())
}

func (m *Metrics) observeRefresh(result string) {
	if m == nil {
		return
	}
	m.refreshes.WithLabelValues(result).Inc()
}
