package storage

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bazarstat/bazarstat/internal/model"
	"github.com/bazarstat/bazarstat/internal/normalize"
)

func newTestStore(t *testing.T) *SQLiteStorage {
	t.Helper()
	store, err := NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	require.NoError(t, store.Migrate(context.Background()))
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func testDataset() *normalize.Dataset {
	return &normalize.Dataset{
		Records: []model.Record{
			{
				Source:       model.SourceIrshad,
				Name:         "Samsung Galaxy Tab A9 4/64GB",
				SKU:          "IR-18342",
				PriceCurrent: "349.99",
				PriceOld:     "419.99",
				DiscountPct:  "-16%",
				URL:          "https://irshad.az/tab-a9",
				ImageURL:     "https://irshad.az/img/tab-a9.jpg",
				Page:         "2",
			},
			{
				Source:       model.SourceTap,
				Name:         "Planşet Apple iPad 10.9",
				PriceCurrent: "750.00",
				Region:       "Bakı",
				IsNew:        "False",
				URL:          "https://tap.az/elanlar/12345",
				Page:         "1",
			},
		},
		Stats: normalize.Stats{
			Kept:    map[string]int{model.SourceIrshad: 1, model.SourceTap: 1},
			Dropped: map[string]int{model.SourceIrshad: 2, model.SourceTap: 0},
			Total:   2,
		},
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Migrate(context.Background()))
}

func TestSaveAndListSnapshot(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	runID, err := store.SaveSnapshot(ctx, testDataset())
	require.NoError(t, err)
	require.Positive(t, runID)

	records, err := store.ListRecords(ctx, runID)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// The full 33-field record survives the roundtrip.
	assert.Equal(t, testDataset().Records, records)

	latest, err := store.LatestRunID(ctx)
	require.NoError(t, err)
	assert.Equal(t, runID, latest)
}

func TestListRecordsLatestRun(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.SaveSnapshot(ctx, testDataset())
	require.NoError(t, err)

	second := testDataset()
	second.Records = second.Records[:1]
	second.Stats.Total = 1
	runID2, err := store.SaveSnapshot(ctx, second)
	require.NoError(t, err)

	// runID 0 resolves to the latest run.
	records, err := store.ListRecords(ctx, 0)
	require.NoError(t, err)
	require.Len(t, records, 1)

	latest, err := store.LatestRunID(ctx)
	require.NoError(t, err)
	assert.Equal(t, runID2, latest)
}

func TestLatestRunIDEmpty(t *testing.T) {
	store := newTestStore(t)
	_, err := store.LatestRunID(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
