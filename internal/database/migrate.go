package database

import (
	"context"
	"database/sql"
	"fmt"
)

// schema is applied in order; every statement must be idempotent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS listings (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		vehicle_id TEXT NOT NULL,
		title TEXT NOT NULL,
		price BIGINT NOT NULL CHECK (price > 0),
		description TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'available',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		deleted_at TIMESTAMPTZ
	)`,
	`CREATE INDEX IF NOT EXISTS listings_status_idx ON listings (status) WHERE deleted_at IS NULL`,
	`CREATE TABLE IF NOT EXISTS favorites (
		vehicle_id TEXT PRIMARY KEY,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// Migrate creates the tables backing the listing and favorite stores.
func Migrate(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin migration: %w", err)
	}
	defer tx.Rollback()

	for i, stmt := range schema {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration step %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit migration: %w", err)
	}

	return nil
}
