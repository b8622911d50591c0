// Package model defines domain models for EVM block ingestion.
package model

// Block represents a chain block with its transactions in on-chain order.
type Block struct {
	Number       uint64
	Hash         string
	Timestamp    uint64
	Transactions []Transaction
}

// TxCount returns the number of transactions included in the block.
func (b Block) TxCount() int {
	return len(b.Transactions)
}

// BlocksBehind is the distance from the next block to fetch to the chain head, zero once caught up.
func BlocksBehind(current, latest uint64) uint64 {
	if latest > current {
		return latest - current
	}
	return 0
}
