// Package worker runs session actions one at a time on a single goroutine.
package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/okian/campus/internal/adapters/mq/queue"
	"github.com/okian/campus/pkg/logger"
	"github.com/okian/campus/pkg/metrics"
)

// Queue defines how the loop receives actions.
type Queue interface {
	Dequeue() <-chan queue.Action
	Len() int
}

// Worker drains a queue until stopped.
type Worker interface {
	// Run starts the loop until ctx is canceled, Shutdown is called or the
	// queue is closed.
	Run(ctx context.Context)

	// Shutdown stops the loop and waits for the running action to finish.
	Shutdown(ctx context.Context) error
}

// Loop implements Worker with a single goroutine, so actions never overlap
// and run in queue order.
type Loop struct {
	queue Queue
	name  string

	shutdown     chan struct{}
	shutdownOnce sync.Once
	done         chan struct{}

	logger logger.Logger
}

// NewLoop creates a loop with configuration options.
func NewLoop(q Queue, opts ...Option) *Loop {
	l := &Loop{
		queue:    q,
		name:     "loop",
		shutdown: make(chan struct{}),
		done:     make(chan struct{}),
		logger:   logger.Nop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.logger = l.logger.Named(l.name)
	return l
}

// Run executes actions until stopped.
func (l *Loop) Run(ctx context.Context) {
	defer close(l.done)

	actions := l.queue.Dequeue()
	for {
		select {
		case <-ctx.Done():
			return
		case <-l.shutdown:
			return
		case a, ok := <-actions:
			if !ok {
				return
			}
			l.execute(ctx, a)
		}
	}
}

// Done is closed once Run has returned.
func (l *Loop) Done() <-chan struct{} { return l.done }

// Shutdown stops the loop and waits for Run to return.
func (l *Loop) Shutdown(ctx context.Context) error {
	l.shutdownOnce.Do(func() { close(l.shutdown) })

	select {
	case <-l.done:
		return nil
	case <-ctx.Done():
		l.logger.Warn(ctx, "shutdown timed out")
		return fmt.Errorf("shutdown timed out: %w", ctx.Err())
	}
}

// execute runs one action. A panicking action is logged and the loop
// keeps going.
func (l *Loop) execute(ctx context.Context, a queue.Action) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			metrics.RecordErrorByType("action_panic", "high")
			l.logger.Error(ctx, "action panicked",
				logger.String("action", a.Name),
				logger.Any("panic", r),
			)
		}
		metrics.RecordActionLatency(float64(time.Since(start)) / float64(time.Millisecond))
		metrics.UpdateActionQueueSize(l.queue.Len())
	}()
	if !a.Enqueued.IsZero() && start.Sub(a.Enqueued) > time.Second {
		l.logger.Debug(ctx, "action waited long in queue",
			logger.String("action", a.Name),
			logger.Duration("wait", start.Sub(a.Enqueued)),
		)
	}
	a.Run(ctx)
}
