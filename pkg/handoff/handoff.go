// Package handoff provides a bounded single-producer/single-consumer queue with backpressure.
package handoff

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
)

// ErrClosed is returned by Push once the queue has been closed.
var ErrClosed = errors.New("handoff queue closed")

// Queue is a bounded FIFO between one producer and one consumer.
//
// Push blocks while the queue is full and Pop blocks while it is empty.
// Close must be called by the producer after its last Push; the consumer then
// drains the remaining items and observes end-of-stream.
type Queue[T any] struct {
	items     chan T
	closed    atomic.Bool
	closeOnce sync.Once
}

// New constructs a Queue holding at most capacity items.
func New[T any](capacity int) (*Queue[T], error) {
	if capacity <= 0 {
		return nil, errors.New("handoff queue capacity must be positive")
	}
	return &Queue[T]{items: make(chan T, capacity)}, nil
}

// Push enqueues item, waiting for free space or context cancellation.
func (q *Queue[T]) Push(ctx context.Context, item T) error {
	if q.closed.Load() {
		return ErrClosed
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case q.items <- item:
		return nil
	}
}

// Pop dequeues the oldest item. ok is false when the queue is closed and drained.
func (q *Queue[T]) Pop(ctx context.Context) (item T, ok bool, err error) {
	select {
	case <-ctx.Done():
		return item, false, ctx.Err()
	case item, ok = <-q.items:
		return item, ok, nil
	}
}

// Close marks the end of the stream. It is safe to call more than once.
func (q *Queue[T]) Close() {
	q.closeOnce.Do(func() {
		q.closed.Store(true)
		close(q.items)
	})
}

// Len returns the number of queued items.
func (q *Queue[T]) Len() int {
	return len(q.items)
}

// Cap returns the queue capacity.
func (q *Queue[T]) Cap() int {
	return cap(q.items)
}
