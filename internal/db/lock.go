package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jonathan/founder-fit/internal/lock"
)

// Lock is the shared-database implementation of lock.Locker. The
// check-and-set runs inside a single UPDATE guarded by the row's
// current state, so two processes can never both win.
type Lock struct {
	db        *DB
	staleness time.Duration
}

// NewLock creates a database lock with the given staleness threshold.
// A non-positive threshold takes the package default.
func NewLock(db *DB, staleness time.Duration) *Lock {
	if staleness <= 0 {
		staleness = lock.DefaultStaleness
	}
	return &Lock{db: db, staleness: staleness}
}

// TryAcquire implements lock.Locker. A held lock older than the
// staleness threshold is treated as abandoned and taken over.
func (l *Lock) TryAcquire(ctx context.Context) (bool, error) {
	// Seed the row once; later calls hit the conflict branch.
	tag, err := l.db.pool.Exec(ctx,
		`INSERT INTO generation_locks (id, active, since)
		 VALUES (1, true, NOW())
		 ON CONFLICT (id) DO UPDATE SET active = true, since = NOW()
		 WHERE generation_locks.active = false
		    OR generation_locks.since < NOW() - make_interval(secs => $1)`,
		l.staleness.Seconds(),
	)
	if err != nil {
		return false, fmt.Errorf("failed to acquire generation lock: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Release implements lock.Locker. Releasing an unheld lock is a no-op.
func (l *Lock) Release(ctx context.Context) error {
	if _, err := l.db.pool.Exec(ctx,
		`UPDATE generation_locks SET active = false WHERE id = 1`,
	); err != nil {
		return fmt.Errorf("failed to release generation lock: %w", err)
	}
	return nil
}
