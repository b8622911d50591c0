// Package chain defines the chain access contract shared between ingestion components.
package chain

import (
	"context"
	"errors"

	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/evm/model"
)

var (
	// ErrRPCFailure marks a transient failure talking to the chain node.
	ErrRPCFailure = errors.New("rpc failure")
	// ErrBlockNotFound is returned when the node does not know the requested block yet.
	ErrBlockNotFound = errors.New("block not found")
)

// Client reads the chain head and full blocks from a node.
type Client interface {
	Height(ctx context.Context) (uint64, error)
	BlockWithTransactions(ctx context.Context, number uint64) (model.Block, error)
}
