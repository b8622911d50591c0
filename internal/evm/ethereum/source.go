// Package ethereum implements chain access for Ethereum JSON-RPC nodes.
package ethereum

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/evm/chain"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/evm/model"
)

// Source implements chain.Client on top of an Ethereum node.
type Source struct {
	rpc BlockRPC
}

var _ chain.Client = (*Source)(nil)

// NewSource creates a Source for Ethereum.
func NewSource(rpc BlockRPC) *Source {
	return &Source{rpc: rpc}
}

// Height returns the latest block number known to the node.
func (s *Source) Height(ctx context.Context) (uint64, error) {
	height, err := s.rpc.BlockNumber(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: block number: %w", chain.ErrRPCFailure, err)
	}
	return height, nil
}

// BlockWithTransactions retrieves the block at number with its transactions.
func (s *Source) BlockWithTransactions(ctx context.Context, number uint64) (model.Block, error) {
	if err := ctx.Err(); err != nil {
		return model.Block{}, err
	}
	src, err := s.rpc.BlockByNumber(ctx, number)
	if err != nil {
		return model.Block{}, fmt.Errorf("%w: get block %d: %w", chain.ErrRPCFailure, number, err)
	}
	if src == nil {
		return model.Block{}, fmt.Errorf("block %d: %w", number, chain.ErrBlockNotFound)
	}

	block, err := BuildBlock(*src)
	if err != nil {
		return model.Block{}, fmt.Errorf("%w: decode block %d: %w", chain.ErrRPCFailure, number, err)
	}
	if block.Number != number {
		return model.Block{}, fmt.Errorf("%w: node returned block %d for %d", chain.ErrRPCFailure, block.Number, number)
	}
	return block, nil
}
