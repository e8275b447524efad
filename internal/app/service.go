// Package service provides the core business service behind the HTTP API
// and the command line tool.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okian/campus/internal/adapters/mq/queue"
	"github.com/okian/campus/internal/adapters/mq/worker"
	"github.com/okian/campus/internal/adapters/repository"
	"github.com/okian/campus/internal/domain/catalog"
	"github.com/okian/campus/internal/domain/compare"
	"github.com/okian/campus/internal/domain/filter"
	"github.com/okian/campus/internal/domain/i18n"
	"github.com/okian/campus/internal/domain/model"
	"github.com/okian/campus/internal/domain/reveal"
	"github.com/okian/campus/internal/domain/scoring"
	"github.com/okian/campus/internal/domain/sorting"
	"github.com/okian/campus/internal/domain/types"
	"github.com/okian/campus/pkg/logger"
	"github.com/okian/campus/pkg/metrics"
)

// Default service configuration.
const (
	DefaultQueueSize       = 1024
	DefaultSessionTTL      = 30 * time.Minute
	DefaultCleanupInterval = time.Minute
	shutdownTimeout        = 5 * time.Second
)

// Service owns the catalog, the store and every session. Session state is
// only read and written by actions on a single loop goroutine.
type Service struct {
	mu sync.RWMutex

	// Core components
	catalog *catalog.Catalog
	store   repository.Store
	driver  repository.Driver
	scorer  scoring.Scorer
	queue   *queue.InMemoryQueue
	loop    *worker.Loop

	// Configuration
	queueSize       int
	revealInitial   int
	revealBatch     int
	revealDelay     time.Duration
	sessionTTL      time.Duration
	cleanupInterval time.Duration

	// State
	sessions     map[string]*session
	sessionCount atomic.Int64
	started      bool
	stopCh       chan struct{}
	wg           sync.WaitGroup

	logger logger.Logger
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		scorer:          scoring.NewCalculator(),
		queueSize:       DefaultQueueSize,
		revealInitial:   reveal.DefaultInitial,
		revealBatch:     reveal.DefaultBatch,
		revealDelay:     reveal.DefaultDelay,
		sessionTTL:      DefaultSessionTTL,
		cleanupInterval: DefaultCleanupInterval,
		sessions:        make(map[string]*session),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start loads missing components and starts the action loop.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting campus service...")

	if s.catalog == nil {
		c, err := catalog.Embedded()
		if err != nil {
			return fmt.Errorf("start service: %w", err)
		}
		s.catalog = c
	}
	if s.store == nil {
		s.store = repository.NewMemoryStore()
		s.driver = repository.DriverMemory
	}
	metrics.UpdateCatalogSize(s.catalog.Len())

	s.queue = queue.NewInMemoryQueue(queue.WithCapacity(s.queueSize))
	s.loop = worker.NewLoop(s.queue,
		worker.WithName("actions"),
		worker.WithLogger(s.logger),
	)
	s.stopCh = make(chan struct{})

	go s.loop.Run(ctx)
	s.wg.Add(1)
	go s.cleanupLoop(ctx)

	s.started = true
	s.logger.Info(ctx, "campus service started",
		logger.Int("universities", s.catalog.Len()),
		logger.String("store", string(s.driver)),
		logger.Int("queueSize", s.queueSize),
	)
	return nil
}

// Stop drains the loop and closes the store.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.logger.Info(ctx, "stopping campus service...")

	close(s.stopCh)
	s.wg.Wait()

	if err := s.loop.Shutdown(ctx); err != nil {
		s.logger.Warn(ctx, "action loop did not stop cleanly", logger.Error(err))
	}
	_ = s.queue.Close()

	for _, sess := range s.sessions {
		sess.reveal.Cancel()
	}
	if err := s.store.Close(); err != nil {
		s.logger.Warn(ctx, "failed to close store", logger.Error(err))
	}

	s.started = false
	s.logger.Info(ctx, "campus service stopped")
}

func (s *Service) running() (*queue.InMemoryQueue, *worker.Loop, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queue, s.loop, s.started
}

// do runs fn on the action loop and waits for it.
func (s *Service) do(ctx context.Context, name string, fn func(ctx context.Context) error) error {
	q, loop, ok := s.running()
	if !ok {
		return ErrStopped
	}

	errCh := make(chan error, 1)
	action := queue.Action{
		Name: name,
		Run:  func(loopCtx context.Context) { errCh <- fn(loopCtx) },
	}
	if !q.Enqueue(ctx, action) {
		switch {
		case q.IsClosed():
			return ErrStopped
		case ctx.Err() != nil:
			return ctx.Err()
		default:
			return fmt.Errorf("%s: %w", name, ErrBackpressure)
		}
	}

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return ctx.Err()
	case <-loop.Done():
		select {
		case err := <-errCh:
			return err
		default:
			return ErrStopped
		}
	}
}

// Search returns every record matching c in display order, without touching
// any session.
func (s *Service) Search(c filter.Criteria, loc *i18n.Localizer) []types.Card {
	records := s.query(c, loc)
	return cardsOf(records, loc)
}

func (s *Service) query(c filter.Criteria, loc *i18n.Localizer) []model.University {
	start := time.Now()
	matched := filter.Apply(s.catalog.All(), c)
	key := sorting.ParseKey(c.SortBy)
	sorted := sorting.Sort(matched, key, loc)

	label := string(key)
	if key == sorting.Default {
		label = "default"
	}
	metrics.RecordFilter(label, len(sorted), float64(time.Since(start))/float64(time.Millisecond))
	return sorted
}

// Browse filters and sorts the catalog for a session and returns the visible
// page. A change of criteria restarts the reveal window.
func (s *Service) Browse(ctx context.Context, sessionID string, c filter.Criteria, loc *i18n.Localizer) (types.Page, error) {
	var page types.Page
	err := s.do(ctx, "browse", func(ctx context.Context) error {
		sess := s.session(ctx, sessionID)
		records := s.query(c, loc)

		if !sess.browsed || !sess.criteria.Equal(c) {
			sess.reveal.Reset(len(records))
			sess.criteria = c
			sess.browsed = true
		}

		state := sess.reveal.Snapshot()
		page = types.Page{
			Total:   s.catalog.Len(),
			Matched: len(records),
			Visible: state.Visible,
			HasMore: state.HasMore,
			Pending: state.Pending,
			Items:   cardsOf(reveal.Window(sess.reveal, records), loc),
		}
		return nil
	})
	return page, err
}

// More asks for the next batch of the session's results. It reports whether
// a growth was scheduled.
func (s *Service) More(ctx context.Context, sessionID string) (reveal.State, bool, error) {
	var (
		state     reveal.State
		scheduled bool
	)
	err := s.do(ctx, "more", func(ctx context.Context) error {
		sess := s.session(ctx, sessionID)
		scheduled = sess.reveal.RequestGrow()
		state = sess.reveal.Snapshot()
		return nil
	})
	return state, scheduled, err
}

// Profile returns the detail view of one university.
func (s *Service) Profile(ctx context.Context, sessionID, id string, loc *i18n.Localizer) (types.Profile, error) {
	u, ok := s.catalog.Get(id)
	if !ok {
		return types.Profile{}, fmt.Errorf("profile %q: %w", id, ErrNotFound)
	}

	var p types.Profile
	err := s.do(ctx, "profile", func(ctx context.Context) error {
		p = profileOf(u, s.session(ctx, sessionID).compare, loc)
		return nil
	})
	return p, err
}

// Comparison returns the session's comparison list.
func (s *Service) Comparison(ctx context.Context, sessionID string, loc *i18n.Localizer) (types.Comparison, error) {
	var out types.Comparison
	err := s.do(ctx, "compare.list", func(ctx context.Context) error {
		out = comparisonOf(s.session(ctx, sessionID).compare, loc)
		return nil
	})
	return out, err
}

// Add puts a university on the session's comparison list. Rejections come
// back as *compare.Error with the outcome message filled in.
func (s *Service) Add(ctx context.Context, sessionID, id string, loc *i18n.Localizer) (types.Outcome, error) {
	var out types.Outcome
	err := s.do(ctx, "compare.add", func(ctx context.Context) error {
		m := s.session(ctx, sessionID).compare
		u, err := m.Add(ctx, id)
		switch {
		case err == nil:
			out.Message = loc.ToastAdded(loc.DisplayName(u))
		case errors.Is(err, compare.ErrAlreadyAdded):
			out.Message = loc.T("compare.toast.already-added")
		case errors.Is(err, compare.ErrLimitReached):
			out.Message = loc.T("compare.toast.limit")
		}
		out.Comparison = comparisonOf(m, loc)
		return err
	})
	return out, err
}

// Remove takes a university off the session's comparison list. It reports
// whether the id was present.
func (s *Service) Remove(ctx context.Context, sessionID, id string, loc *i18n.Localizer) (types.Comparison, bool, error) {
	var (
		out     types.Comparison
		removed bool
	)
	err := s.do(ctx, "compare.remove", func(ctx context.Context) error {
		m := s.session(ctx, sessionID).compare
		removed = m.Remove(ctx, id)
		out = comparisonOf(m, loc)
		return nil
	})
	return out, removed, err
}

// Table returns the side-by-side table for the session's selection.
func (s *Service) Table(ctx context.Context, sessionID string, loc *i18n.Localizer) (compare.Table, error) {
	var t compare.Table
	err := s.do(ctx, "compare.table", func(ctx context.Context) error {
		var err error
		t, err = s.session(ctx, sessionID).compare.Table(loc)
		return err
	})
	return t, err
}

// Candidates lists catalog entries not yet selected that match term.
func (s *Service) Candidates(ctx context.Context, sessionID, term string, loc *i18n.Localizer) ([]types.Card, error) {
	var out []types.Card
	err := s.do(ctx, "compare.candidates", func(ctx context.Context) error {
		out = cardsOf(s.session(ctx, sessionID).compare.Candidates(term), loc)
		return nil
	})
	return out, err
}

// Score computes a profile score. It holds no session state.
func (s *Service) Score(in scoring.Input) scoring.Result {
	r := s.scorer.Score(in)
	metrics.RecordScore(r.Score)
	return r
}

// Catalog returns the loaded catalog.
func (s *Service) Catalog() *catalog.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]any{
		"started":   s.started,
		"queueSize": s.queueSize,
		"store":     string(s.driver),
		"sessions":  int(s.sessionCount.Load()),
	}

	if s.started {
		queueLen := s.queue.Len()
		stats["queueLength"] = queueLen
		stats["universities"] = s.catalog.Len()

		metrics.UpdateActionQueueSize(queueLen)
		metrics.UpdateCatalogSize(s.catalog.Len())
	}
	return stats
}
