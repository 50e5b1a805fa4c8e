package observability

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	recordsWritten = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stdfkit",
			Subsystem: "writer",
			Name:      "records_total",
			Help:      "Total records written to an output stream.",
		},
		[]string{"kind"},
	)
	bytesWritten = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stdfkit",
			Subsystem: "writer",
			Name:      "bytes_total",
			Help:      "Total record bytes written, headers included.",
		},
		[]string{"kind"},
	)
	recordFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stdfkit",
			Subsystem: "writer",
			Name:      "failures_total",
			Help:      "Records rejected before or during the write.",
		},
		[]string{"kind", "stage"},
	)
	encodeDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "stdfkit",
			Subsystem: "writer",
			Name:      "encode_duration_seconds",
			Help:      "Record encode and write duration in seconds.",
			Buckets:   []float64{1e-6, 5e-6, 1e-5, 5e-5, 1e-4, 5e-4, 1e-3},
		},
		[]string{"kind"},
	)
)

// Failure stages.
const (
	StageEncode = "encode"
	StageWrite  = "write"
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(recordsWritten, bytesWritten, recordFailures, encodeDuration)
	})
}

func RecordWrite(kind string, n int, duration time.Duration) {
	RegisterMetrics()
	recordsWritten.WithLabelValues(kind).Inc()
	bytesWritten.WithLabelValues(kind).Add(float64(n))
	encodeDuration.WithLabelValues(kind).Observe(duration.Seconds())
}

func RecordFailure(kind, stage string) {
	RegisterMetrics()
	recordFailures.WithLabelValues(kind, stage).Inc()
}
