package model

// Network names the chain network an indexer instance follows.
type Network string

// Sepolia is the default network.
const Sepolia Network = "sepolia"
