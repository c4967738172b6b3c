// Package lock guards against duplicate concurrent pipeline runs, e.g.
// a duplicate tab or reload kicking off generation twice.
package lock

import (
	"context"
	"sync"
	"time"
)

// DefaultStaleness is how old an unreleased lock may get before the
// next acquirer treats it as abandoned and force-clears it.
const DefaultStaleness = 2 * time.Minute

// Locker is a process-wide or externally shared generation lock with
// check-and-set acquire semantics.
type Locker interface {
	// TryAcquire returns true if the caller now holds the lock. A held
	// lock younger than the staleness threshold makes it return false;
	// a stale lock is force-cleared and reacquired.
	TryAcquire(ctx context.Context) (bool, error)
	// Release frees the lock. Releasing an unheld lock is a no-op.
	Release(ctx context.Context) error
}

// MemoryLock is the in-process Locker. The check-and-set runs under a
// mutex so two near-simultaneous acquirers can never both win.
type MemoryLock struct {
	mu        sync.Mutex
	active    bool
	since     time.Time
	staleness time.Duration
	now       func() time.Time
}

// NewMemoryLock creates a lock with the given staleness threshold.
// A non-positive threshold takes the default.
func NewMemoryLock(staleness time.Duration) *MemoryLock {
	if staleness <= 0 {
		staleness = DefaultStaleness
	}
	return &MemoryLock{
		staleness: staleness,
		now:       time.Now,
	}
}

// TryAcquire implements Locker.
func (l *MemoryLock) TryAcquire(_ context.Context) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if l.active && now.Sub(l.since) < l.staleness {
		return false, nil
	}

	// Either free or abandoned; abandoned locks are cleared implicitly
	// by taking ownership.
	l.active = true
	l.since = now
	return true, nil
}

// Release implements Locker.
func (l *MemoryLock) Release(_ context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.active = false
	return nil
}
