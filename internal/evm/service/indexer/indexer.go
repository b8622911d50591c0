// Package indexer runs the poller and the storage consumer as one supervised pipeline.
package indexer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Service owns the poller and the storage writer.
type Service struct {
	logger          *zap.Logger
	poller          Poller
	queue           BlockQueue
	writer          BlockWriter
	metrics         IndexerMetrics
	startBlock      *uint64
	flushOnShutdown bool
}

// Option customizes a Service.
type Option func(*Service)

// WithStartBlock makes the poller begin at n instead of the chain head.
func WithStartBlock(n uint64) Option {
	return func(s *Service) {
		s.startBlock = &n
	}
}

// WithFlushOnShutdown writes the pending batch when the pipeline stops without an error.
func WithFlushOnShutdown(enabled bool) Option {
	return func(s *Service) {
		s.flushOnShutdown = enabled
	}
}

// New builds a Service with dependencies.
func New(poller Poller, queue BlockQueue, writer BlockWriter, metrics IndexerMetrics, logger *zap.Logger, opts ...Option) (*Service, error) {
	if poller == nil {
		return nil, errors.New("indexer poller is required")
	}
	if queue == nil {
		return nil, errors.New("indexer queue is required")
	}
	if writer == nil {
		return nil, errors.New("indexer writer is required")
	}
	if metrics == nil {
		return nil, errors.New("indexer metrics is required")
	}

	s := &Service{
		logger:  logger,
		poller:  poller,
		queue:   queue,
		writer:  writer,
		metrics: metrics,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Run blocks until ctx is canceled or one of the units stops. Whichever unit
// stops first cancels the other. A canceled ctx is a clean shutdown and yields nil.
// The writer is closed on every path so written row groups stay readable.
func (s *Service) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	runCtx, cancel := context.WithCancel(gctx)
	defer cancel()

	g.Go(func() error {
		defer cancel()
		defer s.queue.Close()

		err := s.poller.Run(runCtx, s.startBlock)
		if err != nil && runCtx.Err() != nil && errors.Is(err, runCtx.Err()) {
			return nil
		}
		if err != nil {
			s.logger.Error("poller stopped", zap.Error(err))
			return fmt.Errorf("poller: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		defer cancel()
		return s.consume(runCtx)
	})

	err := g.Wait()
	flush := s.flushOnShutdown && err == nil
	if closeErr := s.writer.Close(flush); closeErr != nil {
		s.logger.Error("close storage writer failed", zap.Error(closeErr))
		if err == nil {
			err = fmt.Errorf("close writer: %w", closeErr)
		}
	}
	if err != nil {
		return err
	}
	s.logger.Info("pipeline stopped", zap.Bool("flushed_pending", flush))
	return nil
}

func (s *Service) consume(ctx context.Context) error {
	for {
		block, ok, err := s.queue.Pop(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("pop block: %w", err)
		}
		if !ok {
			s.logger.Info("block queue closed, consumer stopping")
			return nil
		}

		started := time.Now()
		s.metrics.RecordBlock(block)
		if err := s.writer.Accept(block); err != nil {
			s.logger.Error("store block failed", zap.Uint64("block_number", block.Number), zap.Error(err))
			return fmt.Errorf("store block %d: %w", block.Number, err)
		}
		s.metrics.RecordProcessingTime(time.Since(started))
		s.metrics.RecordQueueDepth(s.queue.Len())

		s.logger.Debug("block stored",
			zap.Uint64("block_number", block.Number), zap.Int("tx_count", block.TxCount()))
	}
}
