// Package batcher provides a generic size-bounded batch accumulator.
package batcher

import (
	"errors"

	"go.uber.org/zap"
)

// Batcher buffers items and hands them to flushCallback once flushSize is reached.
//
// Batcher is not safe for concurrent use; callers serialize access.
type Batcher[T any] struct {
	flushCallback func([]T) error
	flushSize     int
	logger        *zap.Logger

	buf []T
}

// New constructs a Batcher.
func New[T any](logger *zap.Logger, flushCallback func([]T) error, flushSize int) (*Batcher[T], error) {
	if flushSize <= 0 {
		return nil, errors.New("batcher flush size must be positive")
	}
	if flushCallback == nil {
		return nil, errors.New("batcher flush callback is required")
	}
	return &Batcher[T]{
		logger:        logger,
		flushCallback: flushCallback,
		flushSize:     flushSize,
		buf:           make([]T, 0, flushSize),
	}, nil
}

// Add appends item and flushes when the buffer reaches the flush size.
// The returned error is the flush error, if a flush was triggered.
func (b *Batcher[T]) Add(item T) error {
	b.buf = append(b.buf, item)
	if len(b.buf) >= b.flushSize {
		return b.Flush()
	}
	return nil
}

// Flush passes all buffered items to the callback. The buffer is cleared only
// when the callback succeeds.
func (b *Batcher[T]) Flush() error {
	if len(b.buf) == 0 {
		return nil
	}

	if err := b.flushCallback(b.buf); err != nil {
		b.logger.Error("batch not flushed", zap.Int("size", len(b.buf)), zap.Error(err))
		return err
	}
	b.logger.Debug("batch flushed", zap.Int("size", len(b.buf)))

	clear(b.buf)
	b.buf = b.buf[:0]
	return nil
}

// Len returns the number of buffered items.
func (b *Batcher[T]) Len() int {
	return len(b.buf)
}
