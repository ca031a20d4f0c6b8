package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bazarstat/bazarstat/internal/model"
)

func TestExtractDiscount(t *testing.T) {
	tests := []struct {
		name  string
		label string
		want  float64
		ok    bool
	}{
		{name: "plain percent", label: "15%", want: 15, ok: true},
		{name: "signed percent", label: "-16%", want: 16, ok: true},
		{name: "bare number", label: "27", want: 27, ok: true},
		{name: "fractional", label: "12.5%", want: 12.5, ok: true},
		{name: "label text around", label: "Endirim 20%", want: 20, ok: true},
		{name: "empty is no data", label: "", ok: false},
		{name: "whitespace only", label: "   ", ok: false},
		{name: "no digits", label: "SALE", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractDiscount(tt.label)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

func TestDiscountDepths(t *testing.T) {
	records := []model.Record{
		{Source: model.SourceIrshad, DiscountPct: "10%"},
		{Source: model.SourceIrshad, DiscountPct: "-30%"},
		// No numeric substring: excluded from avg and max, not zero.
		{Source: model.SourceIrshad, DiscountPct: ""},
		{Source: model.SourceIrshad, DiscountPct: "SALE"},
		{Source: model.SourceSoliton, DiscountPct: "5"},
		// A platform with no discount data at all is omitted.
		{Source: model.SourceTap},
	}

	depths := DiscountDepths(records)
	require.Len(t, depths, 2)

	irshad := depths[0]
	assert.Equal(t, model.SourceIrshad, irshad.Source)
	assert.Equal(t, 2, irshad.Samples)
	assert.InDelta(t, 20.0, irshad.Avg, 1e-9)
	assert.InDelta(t, 30.0, irshad.Max, 1e-9)

	soliton := depths[1]
	assert.Equal(t, model.SourceSoliton, soliton.Source)
	assert.Equal(t, 1, soliton.Samples)
	assert.InDelta(t, 5.0, soliton.Avg, 1e-9)
	assert.InDelta(t, 5.0, soliton.Max, 1e-9)
}
