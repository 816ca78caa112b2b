package funcz

import (
	"context"
	"sync"
	"time"

	"github.com/zoobzio/clockz"
)

// Queue is an unbounded FIFO safe for concurrent producers and consumers.
// Consumers can block until at least one element is available.
type Queue[T any] struct {
	clock clockz.Clock
	ready chan struct{}
	items []T
	mu    sync.Mutex
}

// NewQueue creates an empty queue.
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{
		clock: clockz.RealClock,
		ready: make(chan struct{}),
	}
}

// WithClock sets the clock used by WaitForAndPopAll.
func (q *Queue[T]) WithClock(clock clockz.Clock) *Queue[T] {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.clock = clock
	return q
}

// Push appends v and wakes every waiting consumer.
func (q *Queue[T]) Push(v T) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = append(q.items, v)
	close(q.ready)
	q.ready = make(chan struct{})
}

// Pop removes the oldest element, if any.
func (q *Queue[T]) Pop() Maybe[T] {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		return Nothing[T]()
	}
	v := q.items[0]
	var zero T
	q.items[0] = zero
	q.items = q.items[1:]
	return Just(v)
}

// PopAll removes and returns every element, oldest first.
func (q *Queue[T]) PopAll() []T {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.drain()
}

func (q *Queue[T]) drain() []T {
	items := q.items
	q.items = nil
	return items
}

// WaitAndPopAll blocks until the queue is non-empty or ctx is done, then
// removes and returns every element.
func (q *Queue[T]) WaitAndPopAll(ctx context.Context) ([]T, error) {
	for {
		q.mu.Lock()
		if len(q.items) > 0 {
			items := q.drain()
			q.mu.Unlock()
			return items, nil
		}
		ready := q.ready
		q.mu.Unlock()

		select {
		case <-ready:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// WaitForAndPopAll is WaitAndPopAll bounded by d. It returns whatever is
// queued when d elapses, possibly nothing.
func (q *Queue[T]) WaitForAndPopAll(d time.Duration) []T {
	q.mu.Lock()
	clock := q.clock
	q.mu.Unlock()
	timeout := clock.After(d)
	for {
		q.mu.Lock()
		if len(q.items) > 0 {
			items := q.drain()
			q.mu.Unlock()
			return items
		}
		ready := q.ready
		q.mu.Unlock()

		select {
		case <-ready:
		case <-timeout:
			return q.PopAll()
		}
	}
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
