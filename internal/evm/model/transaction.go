package model

// Transaction represents a value transfer or contract call included in a block.
//
// To is nil for contract creation. Value holds the transferred amount in wei as
// decimal text because it does not fit into 64 bits.
type Transaction struct {
	Hash  string
	From  string
	To    *string
	Value string
}

// IsContractCreation reports whether the transaction has no recipient.
func (t Transaction) IsContractCreation() bool {
	return t.To == nil
}
