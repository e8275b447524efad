// Package reveal tracks how much of a filtered result set is visible and
// grows it in fixed batches, one deferred step at a time.
package reveal

import (
	"sync"
	"time"

	"github.com/okian/campus/pkg/metrics"
)

// Default reveal configuration constants.
const (
	DefaultInitial = 12
	DefaultBatch   = 12
	DefaultDelay   = 500 * time.Millisecond
)

// Growth outcomes recorded in metrics.
const (
	outcomeApplied    = "applied"
	outcomeSuperseded = "superseded"
	outcomeSkipped    = "skipped"
)

// Scheduler runs f once after d. The returned stop func cancels it and
// reports whether it was still pending.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) (stop func() bool)
}

// SchedulerFunc adapts a function to Scheduler.
type SchedulerFunc func(d time.Duration, f func()) func() bool

// AfterFunc implements Scheduler.
func (fn SchedulerFunc) AfterFunc(d time.Duration, f func()) func() bool { return fn(d, f) }

// TimerScheduler is backed by time.AfterFunc.
//
//nolint:gochecknoglobals // stateless default
var TimerScheduler Scheduler = SchedulerFunc(func(d time.Duration, f func()) func() bool {
	return time.AfterFunc(d, f).Stop
})

// State is a point-in-time view of a Controller.
type State struct {
	Visible int  `json:"visible"`
	Total   int  `json:"total"`
	HasMore bool `json:"has_more"`
	Pending bool `json:"pending"`
}

// Controller holds the visible count for one result set.
// A Reset invalidates any growth still waiting on the scheduler.
type Controller struct {
	mu sync.Mutex

	initial int
	batch   int
	delay   time.Duration
	sched   Scheduler

	visible    int
	total      int
	generation uint64
	pending    bool
	stop       func() bool
}

// New creates a controller with the visible count at its initial value.
func New(opts ...Option) *Controller {
	c := &Controller{
		initial: DefaultInitial,
		batch:   DefaultBatch,
		delay:   DefaultDelay,
		sched:   TimerScheduler,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.visible = c.initial
	return c
}

// Reset starts over for a new result set of total items.
func (c *Controller) Reset(total int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	c.cancelLocked()
	c.visible = c.initial
	c.total = max(total, 0)
}

// Grow reveals one more batch, capped at the total. It reports whether the
// visible count changed.
func (c *Controller) Grow() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.growLocked()
}

// RequestGrow schedules a single deferred Grow. It refuses while another
// request is pending or when nothing is left to reveal.
func (c *Controller) RequestGrow() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending || !c.hasMoreLocked() {
		metrics.RecordRevealGrowth(outcomeSkipped)
		return false
	}
	c.pending = true
	gen := c.generation
	c.stop = c.sched.AfterFunc(c.delay, func() { c.complete(gen) })
	return true
}

// Cancel drops a pending growth without touching the visible count.
func (c *Controller) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	c.cancelLocked()
}

func (c *Controller) complete(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		return
	}
	c.pending = false
	c.stop = nil
	c.growLocked()
	metrics.RecordRevealGrowth(outcomeApplied)
}

func (c *Controller) cancelLocked() {
	if !c.pending {
		return
	}
	if c.stop != nil {
		c.stop()
	}
	c.pending = false
	c.stop = nil
	metrics.RecordRevealGrowth(outcomeSuperseded)
}

func (c *Controller) growLocked() bool {
	if c.visible >= c.total {
		return false
	}
	c.visible = min(c.visible+c.batch, c.total)
	return true
}

func (c *Controller) hasMoreLocked() bool { return c.visible < c.total }

// HasMore reports whether items remain hidden.
func (c *Controller) HasMore() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hasMoreLocked()
}

// Visible returns the number of items shown, never more than the total.
func (c *Controller) Visible() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return min(c.visible, c.total)
}

// Count returns the raw visible counter.
func (c *Controller) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visible
}

// Pending reports whether a deferred growth is waiting.
func (c *Controller) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending
}

// Snapshot returns the current state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{
		Visible: min(c.visible, c.total),
		Total:   c.total,
		HasMore: c.hasMoreLocked(),
		Pending: c.pending,
	}
}

// Window returns the visible prefix of items.
func Window[T any](c *Controller, items []T) []T {
	n := min(c.Count(), len(items))
	return items[:n]
}
