package storage

import (
	"context"
	"fmt"
)

// migrations are applied in order; the schema_migrations table records the
// current version.
var migrations = []string{
	// v1: runs + per-source run stats + canonical listings.
	`CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		total INTEGER NOT NULL,
		dropped INTEGER NOT NULL
	);
	CREATE TABLE IF NOT EXISTS run_sources (
		run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		source TEXT NOT NULL,
		kept INTEGER NOT NULL,
		dropped INTEGER NOT NULL,
		PRIMARY KEY (run_id, source)
	);
	CREATE TABLE IF NOT EXISTS listings (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		source TEXT NOT NULL,
		name TEXT NOT NULL DEFAULT '',
		product_id TEXT NOT NULL DEFAULT '',
		sku TEXT NOT NULL DEFAULT '',
		brand TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL DEFAULT '',
		price_current TEXT NOT NULL DEFAULT '0.00',
		price_old TEXT NOT NULL DEFAULT '',
		discount_pct TEXT NOT NULL DEFAULT '',
		discount_amount TEXT NOT NULL DEFAULT '',
		installment_6m TEXT NOT NULL DEFAULT '',
		installment_12m TEXT NOT NULL DEFAULT '',
		installment_18m TEXT NOT NULL DEFAULT '',
		installment_monthly TEXT NOT NULL DEFAULT '',
		installment_term TEXT NOT NULL DEFAULT '',
		installment TEXT NOT NULL DEFAULT '',
		installment_active_term TEXT NOT NULL DEFAULT '',
		installment_active_price TEXT NOT NULL DEFAULT '',
		in_stock TEXT NOT NULL DEFAULT '',
		is_new TEXT NOT NULL DEFAULT '',
		is_online TEXT NOT NULL DEFAULT '',
		quantity TEXT NOT NULL DEFAULT '',
		review_count TEXT NOT NULL DEFAULT '',
		rating TEXT NOT NULL DEFAULT '',
		special_offer TEXT NOT NULL DEFAULT '',
		region TEXT NOT NULL DEFAULT '',
		updated_at TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT '',
		kinds TEXT NOT NULL DEFAULT '',
		shop_id TEXT NOT NULL DEFAULT '',
		url TEXT NOT NULL DEFAULT '',
		image_url TEXT NOT NULL DEFAULT '',
		page TEXT NOT NULL DEFAULT ''
	);
	CREATE INDEX IF NOT EXISTS idx_listings_run_source ON listings(run_id, source);`,
}

// Migrate applies any pending schema migrations.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx,
		`CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	var current int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&current); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	for i := current; i < len(migrations); i++ {
		version := i + 1
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin migration %d: %w", version, err)
		}
		if _, err := tx.ExecContext(ctx, migrations[i]); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to apply migration %d: %w", version, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO schema_migrations (version) VALUES (?)`, version); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", version, err)
		}
	}
	return nil
}
