package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// ViewLedger is the PostgreSQL implementation of unlock.ViewTracker and
// unlock.Ledger.
type ViewLedger struct {
	db *DB
}

// NewViewLedger creates a ledger over an existing connection.
func NewViewLedger(db *DB) *ViewLedger {
	return &ViewLedger{db: db}
}

// MarkViewed implements unlock.ViewTracker. Re-marking is a no-op.
func (v *ViewLedger) MarkViewed(ctx context.Context, reportKey string) error {
	if _, err := v.db.pool.Exec(ctx,
		`INSERT INTO report_views (report_key) VALUES ($1)
		 ON CONFLICT (report_key) DO NOTHING`,
		reportKey,
	); err != nil {
		return fmt.Errorf("failed to mark report viewed: %w", err)
	}
	return nil
}

// HasViewed implements unlock.ViewTracker.
func (v *ViewLedger) HasViewed(ctx context.Context, reportKey string) (bool, error) {
	return v.exists(ctx, `SELECT 1 FROM report_views WHERE report_key = $1`, reportKey)
}

// Unlock implements unlock.Ledger. Re-unlocking is a no-op.
func (v *ViewLedger) Unlock(ctx context.Context, reportKey string) error {
	if _, err := v.db.pool.Exec(ctx,
		`INSERT INTO report_unlocks (report_key) VALUES ($1)
		 ON CONFLICT (report_key) DO NOTHING`,
		reportKey,
	); err != nil {
		return fmt.Errorf("failed to unlock report: %w", err)
	}
	return nil
}

// IsUnlocked implements unlock.Ledger.
func (v *ViewLedger) IsUnlocked(ctx context.Context, reportKey string) (bool, error) {
	return v.exists(ctx, `SELECT 1 FROM report_unlocks WHERE report_key = $1`, reportKey)
}

func (v *ViewLedger) exists(ctx context.Context, query, reportKey string) (bool, error) {
	var one int
	err := v.db.pool.QueryRow(ctx, query, reportKey).Scan(&one)
	if err != nil {
		if err == pgx.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("failed to query report ledger: %w", err)
	}
	return true, nil
}
