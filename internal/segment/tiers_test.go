package segment

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bazarstat/bazarstat/internal/model"
)

func TestTierOf(t *testing.T) {
	tests := []struct {
		price string
		want  Tier
	}{
		{price: "0.02", want: TierBudget},
		{price: "299.99", want: TierBudget},
		{price: "300.00", want: TierMainstream},
		{price: "599.99", want: TierMainstream},
		{price: "600.00", want: TierUpperMid},
		{price: "1199.99", want: TierUpperMid},
		{price: "1200.00", want: TierPremium},
		{price: "4999.00", want: TierPremium},
	}

	for _, tt := range tests {
		t.Run(tt.price, func(t *testing.T) {
			p, err := decimal.NewFromString(tt.price)
			require.NoError(t, err)
			assert.Equal(t, tt.want, TierOf(p))
		})
	}
}

func TestTierMatrix(t *testing.T) {
	records := []model.Record{
		{Source: model.SourceIrshad, PriceCurrent: "250.00"},
		{Source: model.SourceIrshad, PriceCurrent: "450.00"},
		{Source: model.SourceIrshad, PriceCurrent: "800.00"},
		{Source: model.SourceIrshad, PriceCurrent: "1500.00"},
		// Invalid prices are excluded, not assigned a tier.
		{Source: model.SourceIrshad, PriceCurrent: "0.00"},
		{Source: model.SourceIrshad, PriceCurrent: "бесплатно"},
		{Source: model.SourceTap, PriceCurrent: "199.00"},
		// A platform with no valid price is omitted entirely.
		{Source: model.SourceWT, PriceCurrent: "0.01"},
	}

	rows := TierMatrix(records)
	require.Len(t, rows, 2)

	irshad := rows[0]
	assert.Equal(t, model.SourceIrshad, irshad.Source)
	assert.Equal(t, 4, irshad.Valid)
	for _, share := range irshad.Share {
		assert.InDelta(t, 25.0, share, 1e-9)
	}

	tap := rows[1]
	assert.Equal(t, model.SourceTap, tap.Source)
	assert.InDelta(t, 100.0, tap.Share[TierBudget], 1e-9)
}

func TestTierMatrixRowsSumTo100(t *testing.T) {
	records := []model.Record{
		{Source: model.SourceSoliton, PriceCurrent: "123.45"},
		{Source: model.SourceSoliton, PriceCurrent: "678.90"},
		{Source: model.SourceSoliton, PriceCurrent: "678.91"},
		{Source: model.SourceSoliton, PriceCurrent: "2000.00"},
		{Source: model.SourceSoliton, PriceCurrent: "333.33"},
		{Source: model.SourceSoliton, PriceCurrent: "334.00"},
		{Source: model.SourceSoliton, PriceCurrent: "335.00"},
	}

	for _, row := range TierMatrix(records) {
		sum := 0.0
		for _, share := range row.Share {
			sum += share
		}
		assert.InDelta(t, 100.0, sum, 1e-9, "tier shares for %s must sum to 100", row.Source)
	}
}
