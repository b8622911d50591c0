package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/evm/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	indexerBlocksProcessedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "indexer",
		Name:      "blocks_processed_total",
		Help:      "Count of blocks handed to the storage writer.",
	}, []string{"network"})

	indexerTransactionsProcessedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "indexer",
		Name:      "transactions_processed_total",
		Help:      "Count of transactions handed to the storage writer.",
	}, []string{"network"})

	indexerLatestBlockNumber = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "indexer",
		Name:      "latest_block_number",
		Help:      "Number of the most recent block handed to the storage writer.",
	}, []string{"network"})

	indexerBlockProcessingDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "indexer",
		Name:      "block_processing_time_seconds",
		Help:      "Duration of accepting a block into the storage writer.",
		Buckets:   []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"network"})

	indexerSyncCurrentBlock = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "indexer",
		Name:      "sync_current_block",
		Help:      "Block number the poller is about to fetch.",
	}, []string{"network"})

	indexerSyncLatestBlock = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "indexer",
		Name:      "sync_latest_block",
		Help:      "Latest chain height reported by the node.",
	}, []string{"network"})

	indexerSyncBlocksBehind = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "indexer",
		Name:      "sync_blocks_behind",
		Help:      "Distance between the chain head and the poller.",
	}, []string{"network"})

	indexerQueueDepth = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "indexer",
		Name:      "queue_depth",
		Help:      "Blocks waiting in the hand-off queue.",
	}, []string{"network"})
)

// Indexer tracks metrics for the block indexing pipeline.
type Indexer struct {
	network model.Network
}

// NewIndexer constructs an Indexer with defaults.
func NewIndexer(network model.Network) *Indexer {
	if network == "" {
		network = "unknown"
	}
	return &Indexer{network: network}
}

// RecordBlock counts a block and its transactions.
func (m Indexer) RecordBlock(block model.Block) {
	indexerBlocksProcessedTotal.WithLabelValues(string(m.network)).Inc()
	indexerTransactionsProcessedTotal.WithLabelValues(string(m.network)).Add(float64(len(block.Transactions)))
	indexerLatestBlockNumber.WithLabelValues(string(m.network)).Set(float64(block.Number))
}

// RecordProcessingTime records how long a block took to process.
func (m Indexer) RecordProcessingTime(d time.Duration) {
	indexerBlockProcessingDuration.WithLabelValues(string(m.network)).Observe(d.Seconds())
}

// RecordSyncStatus records the poller position against the chain head.
func (m Indexer) RecordSyncStatus(current, latest uint64) {
	indexerSyncCurrentBlock.WithLabelValues(string(m.network)).Set(float64(current))
	indexerSyncLatestBlock.WithLabelValues(string(m.network)).Set(float64(latest))
	indexerSyncBlocksBehind.WithLabelValues(string(m.network)).Set(float64(model.BlocksBehind(current, latest)))
}

// RecordQueueDepth records how many blocks are waiting for the writer.
func (m Indexer) RecordQueueDepth(depth int) {
	indexerQueueDepth.WithLabelValues(string(m.network)).Set(float64(depth))
}
