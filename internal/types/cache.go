package types

import "time"

// CacheEntry is one stored generation result keyed by the hash of the
// answers projection plus schema version. An entry is only served while
// its version matches the current schema version, its age is under the
// configured TTL, and it was created after the last global reset.
type CacheEntry struct {
	Key       string           `json:"key"`
	Version   string           `json:"version"`
	CreatedAt time.Time        `json:"created_at"`
	SizeBytes int              `json:"size_bytes"`
	Payload   GenerationResult `json:"payload"`
}

// CacheStatus summarizes the live contents of the content cache.
type CacheStatus struct {
	Count           int       `json:"count"`
	TotalSizeBytes  int       `json:"total_size_bytes"`
	OldestTimestamp time.Time `json:"oldest_timestamp,omitzero"`
}
