// Package db provides PostgreSQL persistence for generation runs, the
// shared report cache, the cross-process generation lock, and the view
// ledger.
package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/founder-fit/internal/types"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// Migrate creates the tables this package needs. Statements are
// idempotent so it is safe to run on every startup.
func (db *DB) Migrate(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS generation_runs (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			report_key TEXT NOT NULL,
			top_model TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'running',
			started_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			completed_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS report_cache (
			report_key TEXT PRIMARY KEY,
			version TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			size_bytes INTEGER NOT NULL DEFAULT 0,
			payload JSONB NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS cache_meta (
			id INTEGER PRIMARY KEY,
			last_reset TIMESTAMPTZ
		)`,
		`INSERT INTO cache_meta (id, last_reset) VALUES (1, NULL)
			ON CONFLICT (id) DO NOTHING`,
		`CREATE TABLE IF NOT EXISTS generation_locks (
			id INTEGER PRIMARY KEY,
			active BOOLEAN NOT NULL DEFAULT false,
			since TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS report_views (
			report_key TEXT PRIMARY KEY,
			viewed_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS report_unlocks (
			report_key TEXT PRIMARY KEY,
			unlocked_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}
	return nil
}

// CreateRun records the start of a generation run and returns its ID
func (db *DB) CreateRun(ctx context.Context, reportKey string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO generation_runs (report_key, status)
		 VALUES ($1, 'running')
		 RETURNING id`,
		reportKey,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create run: %w", err)
	}
	return id, nil
}

// CompleteRun marks a generation run as finished
func (db *DB) CompleteRun(ctx context.Context, runID uuid.UUID, status, topModel string) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE generation_runs
		 SET status = $1, top_model = $2, completed_at = NOW()
		 WHERE id = $3`,
		status, topModel, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete run: %w", err)
	}
	return nil
}

// GetRunResult loads the cached payload recorded for a run's report
// key, if any.
func (db *DB) GetRunResult(ctx context.Context, runID uuid.UUID) (*types.GenerationResult, error) {
	var payload []byte
	err := db.pool.QueryRow(ctx,
		`SELECT c.payload
		 FROM generation_runs r
		 JOIN report_cache c ON c.report_key = r.report_key
		 WHERE r.id = $1`,
		runID,
	).Scan(&payload)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get run result: %w", err)
	}

	var result types.GenerationResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal run result: %w", err)
	}
	return &result, nil
}
