package poller

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/evm/chain"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/evm/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	ChainClient interface {
		chain.Client
	}
	BlockQueue interface {
		Push(ctx context.Context, block model.Block) error
	}
	PollerMetrics interface {
		RecordSyncStatus(current, latest uint64)
	}
)
