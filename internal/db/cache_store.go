package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/founder-fit/internal/types"
)

// storeQueryTimeout bounds each cache store query. The cache is an
// optimization layer; a slow database must not stall generation.
const storeQueryTimeout = 3 * time.Second

// CacheStore is the PostgreSQL implementation of cache.Store, backed by
// the report_cache and cache_meta tables. Query failures degrade to
// cache misses and a warning, never to a generation error.
type CacheStore struct {
	db *DB
}

// NewCacheStore creates a store over an existing connection.
func NewCacheStore(db *DB) *CacheStore {
	return &CacheStore{db: db}
}

// Get returns the stored entry for key, if present.
func (s *CacheStore) Get(key string) (types.CacheEntry, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), storeQueryTimeout)
	defer cancel()

	var entry types.CacheEntry
	var payload []byte
	err := s.db.pool.QueryRow(ctx,
		`SELECT report_key, version, created_at, size_bytes, payload
		 FROM report_cache WHERE report_key = $1`,
		key,
	).Scan(&entry.Key, &entry.Version, &entry.CreatedAt, &entry.SizeBytes, &payload)
	if err != nil {
		if err != pgx.ErrNoRows {
			fmt.Printf("Warning: cache lookup failed: %v\n", err)
		}
		return types.CacheEntry{}, false
	}

	if err := json.Unmarshal(payload, &entry.Payload); err != nil {
		fmt.Printf("Warning: discarding unreadable cache entry %s: %v\n", key, err)
		s.Delete(key)
		return types.CacheEntry{}, false
	}
	return entry, true
}

// Put overwrites the entry for its key. The upsert is a full replace so
// a partially updated entry is never visible.
func (s *CacheStore) Put(entry types.CacheEntry) {
	ctx, cancel := context.WithTimeout(context.Background(), storeQueryTimeout)
	defer cancel()

	payload, err := json.Marshal(entry.Payload)
	if err != nil {
		fmt.Printf("Warning: failed to marshal cache entry %s: %v\n", entry.Key, err)
		return
	}

	_, err = s.db.pool.Exec(ctx,
		`INSERT INTO report_cache (report_key, version, created_at, size_bytes, payload)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (report_key) DO UPDATE
		 SET version = $2, created_at = $3, size_bytes = $4, payload = $5`,
		entry.Key, entry.Version, entry.CreatedAt, entry.SizeBytes, payload,
	)
	if err != nil {
		fmt.Printf("Warning: failed to store cache entry %s: %v\n", entry.Key, err)
	}
}

// Delete removes one entry.
func (s *CacheStore) Delete(key string) {
	ctx, cancel := context.WithTimeout(context.Background(), storeQueryTimeout)
	defer cancel()

	if _, err := s.db.pool.Exec(ctx,
		`DELETE FROM report_cache WHERE report_key = $1`, key,
	); err != nil {
		fmt.Printf("Warning: failed to delete cache entry %s: %v\n", key, err)
	}
}

// Entries snapshots every stored entry.
func (s *CacheStore) Entries() []types.CacheEntry {
	ctx, cancel := context.WithTimeout(context.Background(), storeQueryTimeout)
	defer cancel()

	rows, err := s.db.pool.Query(ctx,
		`SELECT report_key, version, created_at, size_bytes, payload FROM report_cache`,
	)
	if err != nil {
		fmt.Printf("Warning: failed to list cache entries: %v\n", err)
		return nil
	}
	defer rows.Close()

	var entries []types.CacheEntry
	for rows.Next() {
		var entry types.CacheEntry
		var payload []byte
		if err := rows.Scan(&entry.Key, &entry.Version, &entry.CreatedAt, &entry.SizeBytes, &payload); err != nil {
			fmt.Printf("Warning: failed to scan cache entry: %v\n", err)
			continue
		}
		if err := json.Unmarshal(payload, &entry.Payload); err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

// Clear removes all entries immediately.
func (s *CacheStore) Clear() {
	ctx, cancel := context.WithTimeout(context.Background(), storeQueryTimeout)
	defer cancel()

	if _, err := s.db.pool.Exec(ctx, `DELETE FROM report_cache`); err != nil {
		fmt.Printf("Warning: failed to clear cache: %v\n", err)
	}
}

// LastReset returns the global reset timestamp.
func (s *CacheStore) LastReset() time.Time {
	ctx, cancel := context.WithTimeout(context.Background(), storeQueryTimeout)
	defer cancel()

	var reset *time.Time
	err := s.db.pool.QueryRow(ctx,
		`SELECT last_reset FROM cache_meta WHERE id = 1`,
	).Scan(&reset)
	if err != nil || reset == nil {
		return time.Time{}
	}
	return *reset
}

// SetLastReset records a global reset.
func (s *CacheStore) SetLastReset(t time.Time) {
	ctx, cancel := context.WithTimeout(context.Background(), storeQueryTimeout)
	defer cancel()

	if _, err := s.db.pool.Exec(ctx,
		`UPDATE cache_meta SET last_reset = $1 WHERE id = 1`, t,
	); err != nil {
		fmt.Printf("Warning: failed to record cache reset: %v\n", err)
	}
}
