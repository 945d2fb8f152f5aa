package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

// StoreMetrics counts snapshot store traffic per collection.
type StoreMetrics struct {
	reads  *prometheus.CounterVec
	writes *prometheus.CounterVec
}

// NewStoreMetrics registers the snapshot store metrics on the provided registerer.
func NewStoreMetrics(reg prometheus.Registerer) *StoreMetrics {
	if reg == nil {
		return &StoreMetrics{}
	}
	reads := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "snapshot_reads_total",
		Help: "Snapshot reads per collection.",
	}, []string{"collection"})
	writes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "snapshot_writes_total",
		Help: "Snapshot writes per collection.",
	}, []string{"collection"})
	reg.MustRegister(reads, writes)
	return &StoreMetrics{reads: reads, writes: writes}
}

// IncRead increments the read counter for the named collection.
func (s *StoreMetrics) IncRead(collection string) {
	if s == nil || s.reads == nil {
		return
	}
	s.reads.WithLabelValues(normalizeLabel(collection)).Inc()
}

// IncWrite increments the write counter for the named collection.
func (s *StoreMetrics) IncWrite(collection string) {
	if s == nil || s.writes == nil {
		return
	}
	s.writes.WithLabelValues(normalizeLabel(collection)).Inc()
}

func normalizeLabel(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "unknown"
	}
	return trimmed
}
