package indexer

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/evm/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Poller interface {
		Run(ctx context.Context, startOverride *uint64) error
	}
	BlockQueue interface {
		Pop(ctx context.Context) (model.Block, bool, error)
		Close()
		Len() int
	}
	BlockWriter interface {
		Accept(block model.Block) error
		Close(flushPending bool) error
	}
	IndexerMetrics interface {
		RecordBlock(block model.Block)
		RecordProcessingTime(d time.Duration)
		RecordQueueDepth(depth int)
	}
)
