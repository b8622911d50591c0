package ethereum

import "github.com/ethereum/go-ethereum/common/hexutil"

// RPCBlock is the eth_getBlockByNumber result with full transaction objects.
type RPCBlock struct {
	Number       *hexutil.Uint64  `json:"number"`
	Hash         string           `json:"hash"`
	Timestamp    hexutil.Uint64   `json:"timestamp"`
	Transactions []RPCTransaction `json:"transactions"`
}

// RPCTransaction is a transaction object as returned inside RPCBlock.
type RPCTransaction struct {
	Hash  string       `json:"hash"`
	From  string       `json:"from"`
	To    *string      `json:"to"`
	Value *hexutil.Big `json:"value"`
}
