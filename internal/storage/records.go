package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/bazarstat/bazarstat/internal/model"
	"github.com/bazarstat/bazarstat/internal/normalize"
)

// insertListingSQL is built once from the canonical column order so the
// statement can never drift from model.Columns.
var insertListingSQL = fmt.Sprintf(
	"INSERT INTO listings (run_id, %s) VALUES (?%s)",
	strings.Join(model.Columns, ", "),
	strings.Repeat(", ?", len(model.Columns)),
)

var selectListingSQL = fmt.Sprintf(
	"SELECT %s FROM listings WHERE run_id = ? ORDER BY id",
	strings.Join(model.Columns, ", "),
)

// SaveSnapshot stores one merged dataset as a new run and returns its ID.
// The run row, per-source stats, and all listings commit atomically.
func (s *SQLiteStorage) SaveSnapshot(ctx context.Context, ds *normalize.Dataset) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (total, dropped) VALUES (?, ?)`,
		ds.Stats.Total, ds.Stats.TotalDropped())
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read run id: %w", err)
	}

	for src, kept := range ds.Stats.Kept {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO run_sources (run_id, source, kept, dropped) VALUES (?, ?, ?, ?)`,
			runID, src, kept, ds.Stats.Dropped[src]); err != nil {
			return 0, fmt.Errorf("failed to insert run stats for %s: %w", src, err)
		}
	}

	stmt, err := tx.PrepareContext(ctx, insertListingSQL)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare listing insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i := range ds.Records {
		args := make([]any, 0, len(model.Columns)+1)
		args = append(args, runID)
		for _, v := range ds.Records[i].Fields() {
			args = append(args, v)
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return 0, fmt.Errorf("failed to insert listing: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return runID, nil
}

// LatestRunID returns the most recent run's ID, or sql.ErrNoRows when no
// snapshot has been saved yet.
func (s *SQLiteStorage) LatestRunID(ctx context.Context) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(id), 0) FROM runs`).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to read latest run: %w", err)
	}
	if id == 0 {
		return 0, sql.ErrNoRows
	}
	return id, nil
}

// ListRecords loads the canonical records of one run in merge order.
// runID 0 means the latest run.
func (s *SQLiteStorage) ListRecords(ctx context.Context, runID int64) ([]model.Record, error) {
	if runID == 0 {
		latest, err := s.LatestRunID(ctx)
		if err != nil {
			return nil, err
		}
		runID = latest
	}

	rows, err := s.db.QueryContext(ctx, selectListingSQL, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query listings: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []model.Record
	for rows.Next() {
		values := make([]string, len(model.Columns))
		dest := make([]any, len(model.Columns))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan listing: %w", err)
		}
		var rec model.Record
		for i, col := range model.Columns {
			rec.Set(col, values[i])
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate listings: %w", err)
	}
	return records, nil
}
