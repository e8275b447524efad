package reveal

import "time"

// Option applies a configuration option to the Controller.
type Option func(*Controller)

// WithInitial sets how many items are visible after a reset.
func WithInitial(n int) Option {
	return func(c *Controller) {
		if n > 0 {
			c.initial = n
		}
	}
}

// WithBatch sets how many items one growth step reveals.
func WithBatch(n int) Option {
	return func(c *Controller) {
		if n > 0 {
			c.batch = n
		}
	}
}

// WithDelay sets the pause before a requested growth is applied.
// Zero applies it on the next scheduler tick.
func WithDelay(d time.Duration) Option {
	return func(c *Controller) {
		if d >= 0 {
			c.delay = d
		}
	}
}

// WithScheduler replaces the timer used for deferred growth.
func WithScheduler(s Scheduler) Option {
	return func(c *Controller) {
		if s != nil {
			c.sched = s
		}
	}
}
