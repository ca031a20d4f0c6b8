package compare

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bazarstat/bazarstat/internal/model"
)

func TestByModelAccessoryFloor(t *testing.T) {
	records := []model.Record{
		// A case that carries the model name in its title.
		{Source: model.SourceTap, Name: "Samsung Galaxy Tab A9 case", PriceCurrent: "12.00"},
		{Source: model.SourceTap, Name: "Samsung Galaxy Tab A9 4/64GB", PriceCurrent: "240.00"},
	}

	res := ByModel("Tab A9", records, DefaultOptions())
	require.Len(t, res.Platforms, 11)

	var tap PlatformRange
	for _, p := range res.Platforms {
		if p.Source == model.SourceTap {
			tap = p
		}
	}
	require.True(t, tap.HasData)
	assert.Equal(t, 1, tap.Matches)
	assert.Equal(t, "240.00", tap.Min.StringFixed(2))
	assert.Equal(t, "240.00", tap.Max.StringFixed(2))
	assert.Equal(t, "240.00", tap.Median.StringFixed(2))
}

func TestByModelCaseSensitive(t *testing.T) {
	records := []model.Record{
		{Source: model.SourceIrshad, Name: "Samsung Galaxy TAB A9", PriceCurrent: "300.00"},
	}

	res := ByModel("Tab A9", records, DefaultOptions())
	for _, p := range res.Platforms {
		assert.False(t, p.HasData, "%s must not match a differently-cased name", p.Source)
	}
}

func TestByModelEveryPlatformReported(t *testing.T) {
	records := []model.Record{
		{Source: model.SourceIrshad, Name: "Samsung Galaxy Tab A9 64GB", PriceCurrent: "320.00"},
		{Source: model.SourceIrshad, Name: "Samsung Galaxy Tab A9 128GB", PriceCurrent: "400.00"},
		{Source: model.SourceIrshad, Name: "Samsung Galaxy Tab A9 256GB", PriceCurrent: "480.00"},
	}

	res := ByModel("Tab A9", records, DefaultOptions())
	require.Len(t, res.Platforms, len(model.AllSources))

	// Platforms without matches are explicit "no data", never omitted.
	sources := make([]string, len(res.Platforms))
	withData := 0
	for i, p := range res.Platforms {
		sources[i] = p.Source
		if p.HasData {
			withData++
			assert.Equal(t, model.SourceIrshad, p.Source)
			assert.Equal(t, "320.00", p.Min.StringFixed(2))
			assert.Equal(t, "400.00", p.Median.StringFixed(2))
			assert.Equal(t, "480.00", p.Max.StringFixed(2))
		} else {
			assert.Zero(t, p.Matches)
		}
	}
	assert.Equal(t, 1, withData)
	assert.Equal(t, model.AllSources, sources)
}

func TestByModelFloorAndValidity(t *testing.T) {
	records := []model.Record{
		// Valid price but exactly at the floor: excluded.
		{Source: model.SourceSoliton, Name: "Tab A9 charger", PriceCurrent: "50.00"},
		// Price with no numeric meaning: excluded by validity, not floor.
		{Source: model.SourceSoliton, Name: "Tab A9 8/128GB", PriceCurrent: "n/a"},
		{Source: model.SourceSoliton, Name: "Tab A9 8/128GB", PriceCurrent: "340.00"},
	}

	res := ByModel("Tab A9", records, Options{Floor: decimal.NewFromInt(50)})
	for _, p := range res.Platforms {
		if p.Source != model.SourceSoliton {
			continue
		}
		require.True(t, p.HasData)
		assert.Equal(t, 1, p.Matches)
	}
}
