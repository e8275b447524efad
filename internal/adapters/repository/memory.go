package repository

import (
	"context"

	"github.com/okian/campus/pkg/metrics"
	"github.com/patrickmn/go-cache"
)

// MemoryStore keeps values in process memory. Entries never expire.
type MemoryStore struct {
	items *cache.Cache
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: cache.New(cache.NoExpiration, 0)}
}

func (m *MemoryStore) Get(_ context.Context, key string) (string, error) {
	metrics.RecordStoreOperation(string(DriverMemory), "get")
	v, ok := m.items.Get(key)
	if !ok {
		return "", ErrNotFound
	}
	s, _ := v.(string)
	return s, nil
}

func (m *MemoryStore) Set(_ context.Context, key, value string) error {
	metrics.RecordStoreOperation(string(DriverMemory), "set")
	m.items.Set(key, value, cache.NoExpiration)
	return nil
}

func (m *MemoryStore) Remove(_ context.Context, key string) error {
	metrics.RecordStoreOperation(string(DriverMemory), "remove")
	m.items.Delete(key)
	return nil
}

// Len reports the number of stored keys.
func (m *MemoryStore) Len() int { return m.items.ItemCount() }

func (m *MemoryStore) Close() error {
	m.items.Flush()
	return nil
}
