// Package compare manages the bounded, persisted list of universities
// selected for side-by-side comparison.
package compare

import (
	"context"
	"errors"
	"slices"

	jsoniter "github.com/json-iterator/go"
	"github.com/okian/campus/internal/adapters/repository"
	"github.com/okian/campus/internal/domain/filter"
	"github.com/okian/campus/internal/domain/model"
	"github.com/okian/campus/pkg/logger"
	"github.com/okian/campus/pkg/metrics"
	"github.com/samber/lo"
)

// Comparison list limits.
const (
	Limit        = 4
	MinToCompare = 2
	DefaultKey   = "compare-universities"
)

// Operation outcomes recorded in metrics.
const (
	outcomeOK           = "ok"
	outcomeDuplicate    = "already_added"
	outcomeLimit        = "limit_reached"
	outcomeUnknown      = "unknown"
	outcomeNoop         = "noop"
	outcomeCorrupt      = "corrupt"
	outcomeStoreFailure = "store_error"
)

//nolint:gochecknoglobals // shared codec config
var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Store is the key-value primitive the list persists to. Get reports a
// missing key with repository.ErrNotFound.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// Catalog resolves ids to records.
type Catalog interface {
	Get(id string) (model.University, bool)
	All() []model.University
}

// Manager owns every read and write of the stored selection.
// It is not safe for concurrent use; callers serialize access.
type Manager struct {
	store   Store
	catalog Catalog
	key     string
	log     logger.Logger

	selected []model.University
}

// NewManager creates an empty manager. Call Load to rehydrate.
func NewManager(store Store, catalog Catalog, opts ...Option) *Manager {
	m := &Manager{
		store:   store,
		catalog: catalog,
		key:     DefaultKey,
		log:     logger.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Load replaces the selection with the stored one. It never fails: a
// missing, unreadable or malformed value yields an empty list, and ids that
// no longer resolve are dropped.
func (m *Manager) Load(ctx context.Context) []model.University {
	m.selected = nil
	raw, err := m.store.Get(ctx, m.key)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			m.log.Warn(ctx, "comparison list unreadable", logger.String("key", m.key), logger.Error(err))
			metrics.RecordCompareOperation("load", outcomeStoreFailure)
		}
		return m.Selection()
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		m.log.Warn(ctx, "comparison list malformed", logger.String("key", m.key), logger.Error(err))
		metrics.RecordCompareOperation("load", outcomeCorrupt)
		return m.Selection()
	}
	for _, id := range lo.Uniq(ids) {
		u, ok := m.catalog.Get(id)
		if !ok {
			m.log.Debug(ctx, "dropping unknown university", logger.String("id", id))
			continue
		}
		if len(m.selected) == Limit {
			m.log.Warn(ctx, "stored comparison list over limit", logger.Int("stored", len(ids)))
			break
		}
		m.selected = append(m.selected, u)
	}
	metrics.RecordCompareOperation("load", outcomeOK)
	metrics.ObserveSelectionSize(len(m.selected))
	return m.Selection()
}

// Save overwrites the stored value with the current ids in display order.
// Write failures are logged and swallowed.
func (m *Manager) Save(ctx context.Context) {
	data, err := json.Marshal(m.IDs())
	if err != nil {
		m.log.Error(ctx, "encode comparison list", logger.Error(err))
		return
	}
	if err := m.store.Set(ctx, m.key, string(data)); err != nil {
		m.log.Error(ctx, "persist comparison list", logger.String("key", m.key), logger.Error(err))
		metrics.RecordCompareOperation("save", outcomeStoreFailure)
	}
}

// Add appends id. Duplicates are rejected before the limit is checked.
func (m *Manager) Add(ctx context.Context, id string) (model.University, error) {
	u, ok := m.catalog.Get(id)
	if !ok {
		metrics.RecordCompareOperation("add", outcomeUnknown)
		return model.University{}, &Error{Op: "add", ID: id, Kind: ErrUnknownUniversity}
	}
	if m.Contains(id) {
		metrics.RecordCompareOperation("add", outcomeDuplicate)
		return model.University{}, &Error{Op: "add", ID: id, Kind: ErrAlreadyAdded}
	}
	if len(m.selected) >= Limit {
		metrics.RecordCompareOperation("add", outcomeLimit)
		return model.University{}, &Error{Op: "add", ID: id, Kind: ErrLimitReached}
	}
	m.selected = append(m.selected, u)
	m.Save(ctx)
	metrics.RecordCompareOperation("add", outcomeOK)
	metrics.ObserveSelectionSize(len(m.selected))
	return u, nil
}

// Remove drops id if present and persists. It reports whether id was found.
func (m *Manager) Remove(ctx context.Context, id string) bool {
	before := len(m.selected)
	m.selected = slices.DeleteFunc(m.selected, func(u model.University) bool { return u.ID == id })
	removed := len(m.selected) != before
	m.Save(ctx)
	if removed {
		metrics.RecordCompareOperation("remove", outcomeOK)
	} else {
		metrics.RecordCompareOperation("remove", outcomeNoop)
	}
	metrics.ObserveSelectionSize(len(m.selected))
	return removed
}

// Selection returns the selected records in display order.
func (m *Manager) Selection() []model.University {
	return slices.Clone(m.selected)
}

// IDs returns the selected ids in display order.
func (m *Manager) IDs() []string {
	return lo.Map(m.selected, func(u model.University, _ int) string { return u.ID })
}

// Contains reports whether id is selected.
func (m *Manager) Contains(id string) bool {
	return slices.ContainsFunc(m.selected, func(u model.University) bool { return u.ID == id })
}

// Len returns the selection size.
func (m *Manager) Len() int { return len(m.selected) }

// CanCompare reports whether enough universities are selected for a table.
func (m *Manager) CanCompare() bool { return len(m.selected) >= MinToCompare }

// CanAdd reports whether another university fits.
func (m *Manager) CanAdd() bool { return len(m.selected) < Limit }

// OpenSlots returns how many more universities fit.
func (m *Manager) OpenSlots() int { return Limit - len(m.selected) }

// Candidates lists catalog records not yet selected whose names or location
// contain term.
func (m *Manager) Candidates(term string) []model.University {
	rest := lo.Reject(m.catalog.All(), func(u model.University, _ int) bool { return m.Contains(u.ID) })
	return filter.Search(rest, term)
}
