package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// RequestMetrics records HTTP surface traffic.
type RequestMetrics struct {
	total    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewRequestMetrics registers the HTTP metrics on the provided registerer.
func NewRequestMetrics(reg prometheus.Registerer) *RequestMetrics {
	if reg == nil {
		return &RequestMetrics{}
	}
	total := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Handled HTTP requests by method and status.",
	}, []string{"method", "status"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request duration in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method"})
	reg.MustRegister(total, duration)
	return &RequestMetrics{total: total, duration: duration}
}

// Observe records one handled request.
func (r *RequestMetrics) Observe(method, status string, elapsed time.Duration) {
	if r == nil || r.total == nil {
		return
	}
	r.total.WithLabelValues(normalizeLabel(method), normalizeLabel(status)).Inc()
	r.duration.WithLabelValues(normalizeLabel(method)).Observe(elapsed.Seconds())
}
