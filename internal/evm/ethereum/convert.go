package ethereum

import (
	"errors"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/evm/model"
	"github.com/shopspring/decimal"
)

// BuildBlock converts a JSON-RPC block into the domain model.
func BuildBlock(src RPCBlock) (model.Block, error) {
	if src.Number == nil || src.Hash == "" {
		return model.Block{}, errors.New("block is pending: number or hash missing")
	}

	txs := make([]model.Transaction, 0, len(src.Transactions))
	for i, tx := range src.Transactions {
		converted, err := buildTransaction(tx)
		if err != nil {
			return model.Block{}, fmt.Errorf("block %d tx %d: %w", uint64(*src.Number), i, err)
		}
		txs = append(txs, converted)
	}

	return model.Block{
		Number:       uint64(*src.Number),
		Hash:         src.Hash,
		Timestamp:    uint64(src.Timestamp),
		Transactions: txs,
	}, nil
}

func buildTransaction(src RPCTransaction) (model.Transaction, error) {
	if src.Hash == "" {
		return model.Transaction{}, errors.New("transaction hash missing")
	}
	if src.From == "" {
		return model.Transaction{}, fmt.Errorf("transaction %s sender missing", src.Hash)
	}

	value := decimal.Zero
	if src.Value != nil {
		value = decimal.NewFromBigInt(src.Value.ToInt(), 0)
	}

	var to *string
	if src.To != nil {
		recipient := *src.To
		to = &recipient
	}

	return model.Transaction{
		Hash:  src.Hash,
		From:  src.From,
		To:    to,
		Value: value.String(),
	}, nil
}
