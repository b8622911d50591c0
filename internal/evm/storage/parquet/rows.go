// Package parquet persists blocks as Snappy-compressed Parquet files.
package parquet

import (
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/evm/model"
	parquetgo "github.com/parquet-go/parquet-go"
)

// BlockRow is the on-disk layout of a block.
type BlockRow struct {
	Number       uint64           `parquet:"number"`
	Hash         string           `parquet:"hash"`
	Timestamp    uint64           `parquet:"timestamp"`
	Transactions []TransactionRow `parquet:"transactions,list"`
}

// TransactionRow is one element of the transactions list. A nil To is stored as null.
type TransactionRow struct {
	Hash  string  `parquet:"hash"`
	From  string  `parquet:"from"`
	To    *string `parquet:"to,optional"`
	Value string  `parquet:"value"`
}

// NewBlockRow converts a block to its row representation.
func NewBlockRow(block model.Block) BlockRow {
	txs := make([]TransactionRow, 0, len(block.Transactions))
	for _, tx := range block.Transactions {
		row := TransactionRow{
			Hash:  tx.Hash,
			From:  tx.From,
			Value: tx.Value,
		}
		if tx.To != nil {
			to := *tx.To
			row.To = &to
		}
		txs = append(txs, row)
	}
	return BlockRow{
		Number:       block.Number,
		Hash:         block.Hash,
		Timestamp:    block.Timestamp,
		Transactions: txs,
	}
}

// Block converts the row back to the domain model.
func (r BlockRow) Block() model.Block {
	txs := make([]model.Transaction, 0, len(r.Transactions))
	for _, row := range r.Transactions {
		tx := model.Transaction{
			Hash:  row.Hash,
			From:  row.From,
			Value: row.Value,
		}
		if row.To != nil {
			to := *row.To
			tx.To = &to
		}
		txs = append(txs, tx)
	}
	return model.Block{
		Number:       r.Number,
		Hash:         r.Hash,
		Timestamp:    r.Timestamp,
		Transactions: txs,
	}
}

// Encode builds one columnar batch from blocks, preserving their order.
func Encode(blocks []model.Block) (*parquetgo.GenericBuffer[BlockRow], error) {
	rows := make([]BlockRow, 0, len(blocks))
	for _, block := range blocks {
		rows = append(rows, NewBlockRow(block))
	}

	buf := parquetgo.NewGenericBuffer[BlockRow]()
	if _, err := buf.Write(rows); err != nil {
		return nil, fmt.Errorf("encode %d blocks: %w", len(rows), err)
	}
	return buf, nil
}

// ReadBlocks decodes every row group of a finalized file.
func ReadBlocks(path string) ([]model.Block, error) {
	rows, err := parquetgo.ReadFile[BlockRow](path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	blocks := make([]model.Block, 0, len(rows))
	for _, row := range rows {
		blocks = append(blocks, row.Block())
	}
	return blocks, nil
}
