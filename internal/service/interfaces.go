// Package service defines the interfaces between the engine and its
// infrastructure collaborators.
package service

import (
	"context"

	"github.com/bazarstat/bazarstat/internal/model"
	"github.com/bazarstat/bazarstat/internal/normalize"
)

// SnapshotStore persists canonical snapshots and their run stats.
type SnapshotStore interface {
	Migrate(ctx context.Context) error
	SaveSnapshot(ctx context.Context, ds *normalize.Dataset) (runID int64, err error)
	ListRecords(ctx context.Context, runID int64) ([]model.Record, error)
	LatestRunID(ctx context.Context) (int64, error)
	Close() error
}
