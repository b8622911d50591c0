package poller

import "time"

const (
	defaultRetryDelay   = 1 * time.Second
	defaultPollInterval = 1 * time.Second
)
