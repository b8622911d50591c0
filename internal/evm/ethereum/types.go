package ethereum

import (
	"context"
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// RPCMetrics records metrics for RPC calls.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
	// Caller issues raw JSON-RPC calls; satisfied by *rpc.Client.
	Caller interface {
		CallContext(ctx context.Context, result interface{}, method string, args ...interface{}) error
	}
	// BlockRPC is the subset of node methods needed to follow the chain.
	BlockRPC interface {
		BlockNumber(ctx context.Context) (uint64, error)
		BlockByNumber(ctx context.Context, number uint64) (*RPCBlock, error)
	}
)
