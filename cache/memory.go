package cache

import (
	"context"
	"sync"
	"time"

	"github.com/veracomply/sdk/evidence"
)

// DefaultMaxEntries bounds the in-memory cache. At roughly a few hundred
// bytes per entry this caps memory in the low tens of megabytes.
const DefaultMaxEntries = 10000

// entry is one cached result with its write timestamp.
type entry struct {
	result    evidence.Result
	timestamp time.Time
}

// Memory is a bounded in-process TTL cache. Expiry is lazy: entries are
// checked on lookup, never swept in the background. When full, the oldest
// entry is evicted to admit a new one.
type Memory struct {
	mu         sync.Mutex
	entries    map[string]entry
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
}

// MemoryOption configures a Memory cache.
type MemoryOption func(*Memory)

// WithTTL overrides the entry time-to-live.
func WithTTL(ttl time.Duration) MemoryOption {
	return func(m *Memory) {
		if ttl > 0 {
			m.ttl = ttl
		}
	}
}

// WithMaxEntries overrides the entry bound.
func WithMaxEntries(n int) MemoryOption {
	return func(m *Memory) {
		if n > 0 {
			m.maxEntries = n
		}
	}
}

// WithClock overrides the time source. Intended for tests.
func WithClock(now func() time.Time) MemoryOption {
	return func(m *Memory) {
		if now != nil {
			m.now = now
		}
	}
}

// NewMemory creates an empty in-memory cache with the default TTL and bound.
func NewMemory(opts ...MemoryOption) *Memory {
	m := &Memory{
		entries:    make(map[string]entry),
		ttl:        DefaultTTL,
		maxEntries: DefaultMaxEntries,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Get retrieves the cached result for a document. An expired entry is
// deleted and reported as a miss.
func (m *Memory) Get(_ context.Context, documentID string) (*evidence.Result, error) {
	if documentID == "" {
		return nil, ErrInvalidKey
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[documentID]
	if !ok {
		return nil, ErrNotFound
	}
	if m.now().Sub(e.timestamp) >= m.ttl {
		delete(m.entries, documentID)
		return nil, ErrNotFound
	}

	result := e.result
	return &result, nil
}

// Set stores a result for a document, evicting the oldest entry if the
// cache is full.
func (m *Memory) Set(_ context.Context, documentID string, result evidence.Result) error {
	if documentID == "" {
		return ErrInvalidKey
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.entries[documentID]; !exists && len(m.entries) >= m.maxEntries {
		m.evictOldestLocked()
	}

	m.entries[documentID] = entry{result: result, timestamp: m.now()}
	return nil
}

// Invalidate removes the entry for a document.
func (m *Memory) Invalidate(_ context.Context, documentID string) error {
	if documentID == "" {
		return ErrInvalidKey
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, documentID)
	return nil
}

// Len returns the number of entries currently held, including entries that
// have expired but not yet been looked up.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// evictOldestLocked removes the entry with the oldest timestamp. Caller
// must hold the mutex.
func (m *Memory) evictOldestLocked() {
	var oldestKey string
	var oldestTime time.Time
	first := true
	for key, e := range m.entries {
		if first || e.timestamp.Before(oldestTime) {
			oldestKey = key
			oldestTime = e.timestamp
			first = false
		}
	}
	if oldestKey != "" {
		delete(m.entries, oldestKey)
	}
}
