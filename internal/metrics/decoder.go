// Package metrics exposes prometheus instrumentation for decode operations.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/txlens7000/internal/wire"
)

var (
	decodeTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "txlens7000",
		Subsystem: "decoder",
		Name:      "operations_total",
		Help:      "Count of transaction decode operations.",
	}, []string{"operation", "status", "kind"})
	decodeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "txlens7000",
		Subsystem: "decoder",
		Name:      "operation_duration_seconds",
		Help:      "Duration of transaction decode operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "status", "kind"})
)

// ObserveDecode records one decode attempt. The kind label carries the
// decode error classification ("none" on success).
func ObserveDecode(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	kind := wire.ErrorKind(err)

	decodeTotal.WithLabelValues(operation, status, kind).Inc()
	decodeDuration.WithLabelValues(operation, status, kind).Observe(time.Since(started).Seconds())
}
