package cache

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/jonathan/founder-fit/internal/types"
)

// DefaultTTL bounds how long a generated report stays servable.
const DefaultTTL = 24 * time.Hour

// memoryStoreSize caps the in-memory store. The engine never needs
// capacity-based eviction for correctness; this is only a memory bound.
const memoryStoreSize = 4096

// Store is the backing key-value layer for cache entries plus the
// single global last-reset timestamp. Implementations must make Put an
// idempotent full overwrite (last writer wins, no partial entry ever
// visible).
type Store interface {
	Get(key string) (types.CacheEntry, bool)
	Put(entry types.CacheEntry)
	Delete(key string)
	Entries() []types.CacheEntry
	Clear()
	LastReset() time.Time
	SetLastReset(t time.Time)
}

// MemoryStore keeps entries in an expirable LRU. The LRU's own TTL is a
// backstop; authoritative validity checks live in the Manager so they
// can be tested against a simulated clock.
type MemoryStore struct {
	mu        sync.Mutex
	lru       *expirable.LRU[string, types.CacheEntry]
	lastReset time.Time
}

// NewMemoryStore creates an in-memory store whose backstop expiry
// matches the given TTL.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		lru: expirable.NewLRU[string, types.CacheEntry](memoryStoreSize, nil, ttl),
	}
}

// Get returns the stored entry for key, if present.
func (s *MemoryStore) Get(key string) (types.CacheEntry, bool) {
	return s.lru.Get(key)
}

// Put overwrites the entry for its key.
func (s *MemoryStore) Put(entry types.CacheEntry) {
	s.lru.Add(entry.Key, entry)
}

// Delete removes one entry.
func (s *MemoryStore) Delete(key string) {
	s.lru.Remove(key)
}

// Entries snapshots every stored entry.
func (s *MemoryStore) Entries() []types.CacheEntry {
	return s.lru.Values()
}

// Clear removes all entries immediately.
func (s *MemoryStore) Clear() {
	s.lru.Purge()
}

// LastReset returns the global reset timestamp.
func (s *MemoryStore) LastReset() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastReset
}

// SetLastReset records a global reset.
func (s *MemoryStore) SetLastReset(t time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastReset = t
}

// Manager enforces the cache validity contract over a Store: version
// match, age under TTL, and creation after the last global reset.
// Invalid entries are removed lazily on lookup.
type Manager struct {
	store   Store
	version string
	ttl     time.Duration
	now     func() time.Time
}

// Options configures a Manager. Zero values take the package defaults.
type Options struct {
	Store   Store
	Version string
	TTL     time.Duration
}

// New creates a cache manager.
func New(opts Options) *Manager {
	if opts.Version == "" {
		opts.Version = SchemaVersion
	}
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	if opts.Store == nil {
		opts.Store = NewMemoryStore(opts.TTL)
	}
	return &Manager{
		store:   opts.Store,
		version: opts.Version,
		ttl:     opts.TTL,
		now:     time.Now,
	}
}

// Key derives the cache key for a set of answers under the manager's
// schema version.
func (m *Manager) Key(answers *types.QuizAnswers) string {
	return Key(answers, m.version)
}

// Get returns the cached payload for key if the entry is still valid.
// Stale, reset, or version-mismatched entries are discarded on the spot
// and reported as a miss.
func (m *Manager) Get(key string) (*types.GenerationResult, bool) {
	entry, ok := m.store.Get(key)
	if !ok {
		return nil, false
	}
	if !m.valid(entry) {
		m.store.Delete(key)
		return nil, false
	}
	payload := entry.Payload
	return &payload, true
}

// Put stores the payload under key, overwriting any previous entry.
func (m *Manager) Put(key string, payload types.GenerationResult) {
	size := 0
	if data, err := json.Marshal(payload); err == nil {
		size = len(data)
	}
	m.store.Put(types.CacheEntry{
		Key:       key,
		Version:   m.version,
		CreatedAt: m.now(),
		SizeBytes: size,
		Payload:   payload,
	})
}

// InvalidateAll clears every entry immediately, including ones that
// would otherwise still be valid, and stamps the global reset so any
// copies surviving in an external store are rejected too.
func (m *Manager) InvalidateAll() {
	m.store.SetLastReset(m.now())
	m.store.Clear()
}

// Status summarizes the currently valid entries.
func (m *Manager) Status() types.CacheStatus {
	var status types.CacheStatus
	for _, entry := range m.store.Entries() {
		if !m.valid(entry) {
			continue
		}
		status.Count++
		status.TotalSizeBytes += entry.SizeBytes
		if status.OldestTimestamp.IsZero() || entry.CreatedAt.Before(status.OldestTimestamp) {
			status.OldestTimestamp = entry.CreatedAt
		}
	}
	return status
}

func (m *Manager) valid(entry types.CacheEntry) bool {
	if entry.Version != m.version {
		return false
	}
	now := m.now()
	if now.Sub(entry.CreatedAt) >= m.ttl {
		return false
	}
	if reset := m.store.LastReset(); !reset.IsZero() && !entry.CreatedAt.After(reset) {
		return false
	}
	return true
}
