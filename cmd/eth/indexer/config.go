package main

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/goodnatureofminers/blockinsight7000-indexer/pkg/safe"
)

// startBlock accepts "123" as well as "123.9", truncating toward zero.
type startBlock struct {
	value uint64
	set   bool
}

// UnmarshalFlag implements flags.Unmarshaler.
func (s *startBlock) UnmarshalFlag(value string) error {
	n, err := safe.ParseUint64(value)
	if err != nil {
		return fmt.Errorf("invalid start block: %w", err)
	}
	s.value, s.set = n, true
	return nil
}

func (c config) validate() error {
	if c.RPCURL == "" {
		return errors.New("rpc url is required")
	}
	parsed, err := url.Parse(c.RPCURL)
	if err != nil {
		return fmt.Errorf("parse rpc url: %w", err)
	}
	switch parsed.Scheme {
	case "http", "https", "ws", "wss":
	default:
		return fmt.Errorf("rpc url scheme %q not supported", parsed.Scheme)
	}
	if parsed.Host == "" {
		return errors.New("rpc url missing host")
	}
	if c.Network == "" {
		return errors.New("network is required")
	}
	if c.BlocksInMemory <= 0 {
		return fmt.Errorf("blocks in memory must be positive, got %d", c.BlocksInMemory)
	}
	if c.DataDir == "" {
		return errors.New("data dir is required")
	}
	if c.MetricsPort == 0 {
		return errors.New("metrics port is required")
	}
	if c.RPCRPS < 0 {
		return fmt.Errorf("rpc rps must not be negative, got %d", c.RPCRPS)
	}
	return nil
}
