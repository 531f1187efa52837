package adapter

import (
	"context"
	"sync"
	"time"

	"horror-oracle/internal/domain"
)

// MemoryCacheAdapter is the in-process fallback used when Redis is
// unreachable. Session state simply stops surviving restarts; no caller
// ever sees a cache error.
type MemoryCacheAdapter struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	value     string
	expiresAt time.Time // zero means no expiry
}

// NewMemoryCacheAdapter creates an empty in-memory cache.
func NewMemoryCacheAdapter() domain.Cache {
	return &MemoryCacheAdapter{entries: make(map[string]memoryEntry)}
}

func (m *MemoryCacheAdapter) Get(ctx context.Context, key string) (string, error) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return "", domain.ErrCacheMiss
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		m.mu.Lock()
		delete(m.entries, key)
		m.mu.Unlock()
		return "", domain.ErrCacheMiss
	}
	return entry.value, nil
}

func (m *MemoryCacheAdapter) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	entry := memoryEntry{value: value}
	if expiration > 0 {
		entry.expiresAt = time.Now().Add(expiration)
	}
	m.mu.Lock()
	m.entries[key] = entry
	m.mu.Unlock()
	return nil
}

func (m *MemoryCacheAdapter) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
	return nil
}

func (m *MemoryCacheAdapter) Ping(ctx context.Context) error {
	return nil
}
