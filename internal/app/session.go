package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/okian/campus/internal/adapters/mq/queue"
	"github.com/okian/campus/internal/adapters/repository"
	"github.com/okian/campus/internal/domain/compare"
	"github.com/okian/campus/internal/domain/filter"
	"github.com/okian/campus/internal/domain/reveal"
	"github.com/okian/campus/pkg/logger"
	"github.com/okian/campus/pkg/metrics"
)

// session is the per-visitor state. It is only touched from the action loop.
type session struct {
	id       string
	compare  *compare.Manager
	reveal   *reveal.Controller
	criteria filter.Criteria
	browsed  bool
	lastSeen time.Time
}

// NewSessionID returns a fresh random session id.
func NewSessionID() string {
	return uuid.NewString()
}

func sessionPrefix(id string) string {
	return "session:" + id + ":"
}

// session returns the state for id, creating and rehydrating it on first use.
// Must run on the loop.
func (s *Service) session(ctx context.Context, id string) *session {
	if sess, ok := s.sessions[id]; ok {
		sess.lastSeen = time.Now()
		return sess
	}

	sess := &session{
		id: id,
		compare: compare.NewManager(
			repository.Namespaced(s.store, sessionPrefix(id)),
			s.catalog,
			compare.WithLogger(s.logger.Named("compare").With(logger.String("session", id))),
		),
		reveal: reveal.New(
			reveal.WithInitial(s.revealInitial),
			reveal.WithBatch(s.revealBatch),
			reveal.WithDelay(s.revealDelay),
			reveal.WithScheduler(reveal.SchedulerFunc(s.scheduleOnLoop)),
		),
		lastSeen: time.Now(),
	}
	sess.compare.Load(ctx)
	s.sessions[id] = sess
	s.sessionCount.Store(int64(len(s.sessions)))
	metrics.UpdateSessionsActive(len(s.sessions))
	return sess
}

// scheduleOnLoop arms a timer that hands f to the action loop, so a deferred
// reveal growth is serialized with every other session change. If the loop
// cannot take it, f runs on the timer goroutine.
func (s *Service) scheduleOnLoop(d time.Duration, f func()) func() bool {
	t := time.AfterFunc(d, func() {
		ok := s.queue.Enqueue(context.Background(), queue.Action{
			Name: "reveal.grow",
			Run:  func(context.Context) { f() },
		})
		if !ok {
			f()
		}
	})
	return t.Stop
}

// sweep drops sessions idle for longer than the TTL. Must run on the loop.
func (s *Service) sweep(ctx context.Context) {
	cutoff := time.Now().Add(-s.sessionTTL)
	dropped := 0
	for id, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) {
			sess.reveal.Cancel()
			delete(s.sessions, id)
			dropped++
		}
	}
	s.sessionCount.Store(int64(len(s.sessions)))
	metrics.UpdateSessionsActive(len(s.sessions))
	if dropped > 0 {
		s.logger.Debug(ctx, "swept idle sessions",
			logger.Int("dropped", dropped),
			logger.Int("remaining", len(s.sessions)),
		)
	}
}

func (s *Service) cleanupLoop(ctx context.Context) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopCh:
			return
		case <-ticker.C:
			s.queue.Enqueue(ctx, queue.Action{Name: "session.sweep", Run: s.sweep})
		}
	}
}
