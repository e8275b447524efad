// Package queue defines the bounded queue feeding the session action loop.
package queue

import (
	"context"
	"sync"
	"time"

	"github.com/okian/campus/pkg/metrics"
)

// Default queue configuration constants.
const (
	defaultQueueCapacity = 1024
)

// Action is one unit of session work. Run executes on the loop goroutine.
type Action struct {
	Name     string
	Run      func(ctx context.Context)
	Enqueued time.Time
}

// Queue provides non-blocking enqueue and channel-based dequeue semantics.
type Queue interface {
	// Enqueue adds an action to the queue.
	// Returns false if the queue is full or closed.
	Enqueue(ctx context.Context, a Action) bool

	// Dequeue returns the channel actions are delivered on.
	// The channel is closed when the queue is closed.
	Dequeue() <-chan Action

	// Len returns the current number of queued actions.
	Len() int

	// Close stops accepting actions and closes the dequeue channel.
	Close() error

	// IsClosed returns true if the queue has been closed.
	IsClosed() bool
}

// InMemoryQueue implements Queue using a buffered channel.
type InMemoryQueue struct {
	actions  chan Action
	capacity int
	mu       sync.RWMutex
	closed   bool
}

// NewInMemoryQueue creates a new in-memory queue with configuration options.
func NewInMemoryQueue(opts ...Option) *InMemoryQueue {
	q := &InMemoryQueue{
		capacity: defaultQueueCapacity,
	}
	for _, opt := range opts {
		opt(q)
	}
	q.actions = make(chan Action, q.capacity)
	metrics.UpdateActionQueueSize(0)
	return q
}

// Enqueue adds an action without blocking.
func (q *InMemoryQueue) Enqueue(ctx context.Context, a Action) bool {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed || ctx.Err() != nil {
		metrics.RecordActionRejected()
		return false
	}
	if a.Enqueued.IsZero() {
		a.Enqueued = time.Now()
	}

	select {
	case q.actions <- a:
		metrics.UpdateActionQueueSize(len(q.actions))
		return true
	default:
		metrics.RecordActionRejected()
		metrics.RecordErrorByType("queue_full", "medium")
		return false
	}
}

// Dequeue returns the delivery channel.
func (q *InMemoryQueue) Dequeue() <-chan Action {
	return q.actions
}

// Len returns the current number of queued actions.
func (q *InMemoryQueue) Len() int {
	return len(q.actions)
}

// Capacity returns the configured bound.
func (q *InMemoryQueue) Capacity() int { return q.capacity }

// Close gracefully shuts down the queue.
func (q *InMemoryQueue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return nil
	}
	close(q.actions)
	q.closed = true
	return nil
}

// IsClosed returns true if the queue has been closed.
func (q *InMemoryQueue) IsClosed() bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.closed
}
