package ethereum

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"go.uber.org/ratelimit"
)

// RPCClient wraps a JSON-RPC connection with rate limiting and metrics instrumentation.
type RPCClient struct {
	client     Caller
	limiter    ratelimit.Limiter
	rpcMetrics RPCMetrics
}

// NewRPCClient constructs an instrumented RPC client. A nil limiter means no rate limit.
func NewRPCClient(client Caller, limiter ratelimit.Limiter, rpcMetrics RPCMetrics) *RPCClient {
	if limiter == nil {
		limiter = ratelimit.NewUnlimited()
	}
	return &RPCClient{
		client:     client,
		limiter:    limiter,
		rpcMetrics: rpcMetrics,
	}
}

// BlockNumber returns the number of the most recent block.
func (r *RPCClient) BlockNumber(ctx context.Context) (number uint64, err error) {
	r.limiter.Take()
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("eth_block_number", err, started)
	}()

	var result hexutil.Uint64
	if err = r.client.CallContext(ctx, &result, "eth_blockNumber"); err != nil {
		return 0, err
	}
	return uint64(result), nil
}

// BlockByNumber returns the block with full transactions, or nil when the node does not have it.
func (r *RPCClient) BlockByNumber(ctx context.Context, number uint64) (block *RPCBlock, err error) {
	r.limiter.Take()
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("eth_get_block_by_number", err, started)
	}()

	err = r.client.CallContext(ctx, &block, "eth_getBlockByNumber", hexutil.EncodeUint64(number), true)
	return block, err
}
