package service

import (
	"time"

	"github.com/okian/campus/internal/adapters/repository"
	"github.com/okian/campus/internal/domain/catalog"
	"github.com/okian/campus/internal/domain/reveal"
	"github.com/okian/campus/internal/domain/scoring"
	"github.com/okian/campus/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithStore sets the key-value store backing comparison lists.
// The service closes it on Stop.
func WithStore(store repository.Store, driver repository.Driver) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
			s.driver = driver
		}
	}
}

// WithCatalog sets the university catalog. The embedded one is used otherwise.
func WithCatalog(c *catalog.Catalog) Option {
	return func(s *Service) {
		if c != nil {
			s.catalog = c
		}
	}
}

// WithScorer replaces the profile score calculator.
func WithScorer(sc scoring.Scorer) Option {
	return func(s *Service) {
		if sc != nil {
			s.scorer = sc
		}
	}
}

// WithQueueSize sets the maximum number of pending actions.
func WithQueueSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.queueSize = size
		}
	}
}

// WithReveal sets the reveal window sizes and the growth delay.
func WithReveal(initial, batch int, delay time.Duration) Option {
	return func(s *Service) {
		if initial > 0 {
			s.revealInitial = initial
		}
		if batch > 0 {
			s.revealBatch = batch
		}
		if delay >= 0 {
			s.revealDelay = delay
		}
	}
}

// WithSessionTTL sets how long an idle session is kept.
func WithSessionTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.sessionTTL = ttl
		}
	}
}

// WithCleanupInterval sets how often idle sessions are swept.
func WithCleanupInterval(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.cleanupInterval = d
		}
	}
}
