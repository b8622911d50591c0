// Package poller follows the chain head and hands blocks to the storage pipeline in order.
package poller

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/evm/model"
	"go.uber.org/zap"
)

// Poller fetches blocks one by one in ascending order and pushes them to a queue.
//
// Chain access failures are retried forever with a fixed delay; the cursor
// never moves past a block that was not handed off.
type Poller struct {
	logger       *zap.Logger
	client       ChainClient
	queue        BlockQueue
	metrics      PollerMetrics
	sleep        clock.SleepFunc
	retryDelay   time.Duration
	pollInterval time.Duration

	cursor atomic.Uint64
}

// Option customizes a Poller.
type Option func(*Poller)

// WithRetryDelay sets the wait between failed chain calls.
func WithRetryDelay(d time.Duration) Option {
	return func(p *Poller) {
		if d > 0 {
			p.retryDelay = d
		}
	}
}

// WithPollInterval sets the wait after catching up with the chain head.
func WithPollInterval(d time.Duration) Option {
	return func(p *Poller) {
		if d > 0 {
			p.pollInterval = d
		}
	}
}

// New builds a Poller with dependencies.
func New(client ChainClient, queue BlockQueue, metrics PollerMetrics, logger *zap.Logger, opts ...Option) (*Poller, error) {
	if client == nil {
		return nil, errors.New("poller chain client is required")
	}
	if queue == nil {
		return nil, errors.New("poller queue is required")
	}
	if metrics == nil {
		return nil, errors.New("poller metrics is required")
	}

	p := &Poller{
		logger:       logger,
		client:       client,
		queue:        queue,
		metrics:      metrics,
		sleep:        clock.SleepWithContext,
		retryDelay:   defaultRetryDelay,
		pollInterval: defaultPollInterval,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// CurrentHeight returns the chain head height reported by the node.
func (p *Poller) CurrentHeight(ctx context.Context) (uint64, error) {
	return p.client.Height(ctx)
}

// Cursor returns the number of the last block handed to the queue.
func (p *Poller) Cursor() uint64 {
	return p.cursor.Load()
}

// Run follows the chain until the context is canceled or the queue stops accepting blocks.
// When startOverride is nil the poller starts at the head observed at startup.
func (p *Poller) Run(ctx context.Context, startOverride *uint64) error {
	next, err := p.startBlock(ctx, startOverride)
	if err != nil {
		return err
	}
	if next > 0 {
		p.cursor.Store(next - 1)
	}
	p.logger.Info("entering processing loop", zap.Uint64("start_block", next))

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		latest, err := p.CurrentHeight(ctx)
		if err != nil {
			p.logger.Warn("get latest block number failed, backing off", zap.Error(err), zap.Duration("sleep", p.retryDelay))
			if sleepErr := p.sleep(ctx, p.retryDelay); sleepErr != nil {
				return sleepErr
			}
			continue
		}

		p.metrics.RecordSyncStatus(next, latest)
		p.logger.Info("block sync status",
			zap.Uint64("current_block", next),
			zap.Uint64("latest_block", latest),
			zap.Uint64("blocks_behind", model.BlocksBehind(next, latest)),
		)

		for next <= latest {
			if err := p.processBlock(ctx, next); err != nil {
				return err
			}
			next++
		}

		p.logger.Debug("caught up with chain head, waiting for new blocks",
			zap.Uint64("next_block", next), zap.Duration("sleep", p.pollInterval))
		if err := p.sleep(ctx, p.pollInterval); err != nil {
			return err
		}
	}
}

func (p *Poller) startBlock(ctx context.Context, startOverride *uint64) (uint64, error) {
	if startOverride != nil {
		p.logger.Info("using provided start block", zap.Uint64("block", *startOverride))
		return *startOverride, nil
	}

	for {
		latest, err := p.CurrentHeight(ctx)
		if err == nil {
			p.logger.Info("using latest block as start", zap.Uint64("block", latest))
			return latest, nil
		}
		p.logger.Warn("get start block failed, backing off", zap.Error(err), zap.Duration("sleep", p.retryDelay))
		if sleepErr := p.sleep(ctx, p.retryDelay); sleepErr != nil {
			return 0, sleepErr
		}
	}
}

// processBlock fetches number until it succeeds and hands it to the queue.
func (p *Poller) processBlock(ctx context.Context, number uint64) error {
	for {
		block, err := p.client.BlockWithTransactions(ctx, number)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			p.logger.Warn("fetch block failed, backing off",
				zap.Uint64("block_number", number), zap.Error(err), zap.Duration("sleep", p.retryDelay))
			if sleepErr := p.sleep(ctx, p.retryDelay); sleepErr != nil {
				return sleepErr
			}
			continue
		}

		if err := p.queue.Push(ctx, block); err != nil {
			return fmt.Errorf("hand off block %d: %w", number, err)
		}
		p.cursor.Store(number)
		p.logger.Debug("block handed off",
			zap.Uint64("block_number", number), zap.Int("tx_count", block.TxCount()))
		return nil
	}
}
