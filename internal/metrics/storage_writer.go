package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/evm/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	storageFlushTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "storage_writer",
		Name:      "flush_total",
		Help:      "Count of columnar batches written.",
	}, []string{"network", "status"})

	storageFlushDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "storage_writer",
		Name:      "flush_duration_seconds",
		Help:      "Duration of encoding and writing a columnar batch.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	storageFlushSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "storage_writer",
		Name:      "flush_size_blocks",
		Help:      "Number of blocks per written batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 14),
	}, []string{"network"})

	storageRotateTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "storage_writer",
		Name:      "rotate_total",
		Help:      "Count of output file rotations.",
	}, []string{"network", "status"})
)

// StorageWriter tracks metrics for the columnar storage writer.
type StorageWriter struct {
	network model.Network
}

// NewStorageWriter constructs a StorageWriter with defaults.
func NewStorageWriter(network model.Network) *StorageWriter {
	if network == "" {
		network = "unknown"
	}
	return &StorageWriter{network: network}
}

// ObserveFlush records a batch write outcome, duration and size.
func (m StorageWriter) ObserveFlush(err error, blocks int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	storageFlushTotal.WithLabelValues(string(m.network), status).Inc()
	storageFlushDuration.WithLabelValues(string(m.network), status).
		Observe(time.Since(started).Seconds())
	storageFlushSize.WithLabelValues(string(m.network)).Observe(float64(blocks))
}

// ObserveRotate records a file rotation outcome.
func (m StorageWriter) ObserveRotate(err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	storageRotateTotal.WithLabelValues(string(m.network), status).Inc()
}
