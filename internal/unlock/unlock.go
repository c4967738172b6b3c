// Package unlock holds the report view and unlock ledgers. These are
// interfaces to external collaborators; the engine only marks and
// queries them, it never owns payment or rendering concerns.
package unlock

import (
	"context"
	"sync"
)

// ViewTracker records which reports have been shown. MarkViewed is
// idempotent: re-marking a viewed report is not an error.
type ViewTracker interface {
	MarkViewed(ctx context.Context, reportKey string) error
	HasViewed(ctx context.Context, reportKey string) (bool, error)
}

// Ledger records which reports have been paid for. Unlock is
// idempotent like MarkViewed.
type Ledger interface {
	Unlock(ctx context.Context, reportKey string) error
	IsUnlocked(ctx context.Context, reportKey string) (bool, error)
}

// MemoryTracker is the in-process ViewTracker and Ledger used by tests
// and single-process deployments.
type MemoryTracker struct {
	mu       sync.RWMutex
	viewed   map[string]bool
	unlocked map[string]bool
}

// NewMemoryTracker creates an empty tracker.
func NewMemoryTracker() *MemoryTracker {
	return &MemoryTracker{
		viewed:   make(map[string]bool),
		unlocked: make(map[string]bool),
	}
}

// MarkViewed implements ViewTracker.
func (m *MemoryTracker) MarkViewed(_ context.Context, reportKey string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.viewed[reportKey] = true
	return nil
}

// HasViewed implements ViewTracker.
func (m *MemoryTracker) HasViewed(_ context.Context, reportKey string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.viewed[reportKey], nil
}

// Unlock implements Ledger.
func (m *MemoryTracker) Unlock(_ context.Context, reportKey string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.unlocked[reportKey] = true
	return nil
}

// IsUnlocked implements Ledger.
func (m *MemoryTracker) IsUnlocked(_ context.Context, reportKey string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.unlocked[reportKey], nil
}
