package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bazarstat/bazarstat/internal/model"
)

func TestFinancingFullCoverage(t *testing.T) {
	// Every record carries installment_monthly and nothing else: coverage
	// must be exactly 100%.
	records := []model.Record{
		{Source: model.SourceBytelecom, InstallmentMonthly: "24.99"},
		{Source: model.SourceBytelecom, InstallmentMonthly: "41.67"},
		{Source: model.SourceBytelecom, InstallmentMonthly: "12.50"},
	}

	coverage := Financing(records)
	require.Len(t, coverage, 1)
	assert.Equal(t, model.SourceBytelecom, coverage[0].Source)
	assert.Equal(t, 3, coverage[0].Listings)
	assert.Equal(t, 3, coverage[0].WithFinancing)
	assert.InDelta(t, 100.0, coverage[0].Pct, 1e-9)
}

func TestFinancingPartialAndExclusions(t *testing.T) {
	records := []model.Record{
		{Source: model.SourceIrshad, Installment12M: "29.17"},
		{Source: model.SourceIrshad},
		{Source: model.SourceIrshad},
		{Source: model.SourceIrshad, Installment6M: "58.33"},
		// Term labels alone are not financing offers.
		{Source: model.SourceKontakt, InstallmentTerm: "12 ay"},
		// Marketplaces are out of scope for this aggregate.
		{Source: model.SourceBirmarket, InstallmentMonthly: "33.00"},
	}

	coverage := Financing(records)
	require.Len(t, coverage, 2)

	irshad := coverage[0]
	assert.Equal(t, model.SourceIrshad, irshad.Source)
	assert.Equal(t, 4, irshad.Listings)
	assert.Equal(t, 2, irshad.WithFinancing)
	assert.InDelta(t, 50.0, irshad.Pct, 1e-9)

	kontakt := coverage[1]
	assert.Equal(t, model.SourceKontakt, kontakt.Source)
	assert.Equal(t, 0, kontakt.WithFinancing)
	assert.InDelta(t, 0.0, kontakt.Pct, 1e-9)
}

func TestSplit(t *testing.T) {
	records := []model.Record{
		{Source: model.SourceIrshad},
		{Source: model.SourceTap},
		{Source: model.SourceBirmarket},
		{Source: model.SourceWT},
	}

	retail, marketplace := Split(records)
	require.Len(t, retail, 2)
	require.Len(t, marketplace, 2)
	assert.Equal(t, model.SourceIrshad, retail[0].Source)
	assert.Equal(t, model.SourceTap, marketplace[0].Source)
}

func TestCatalogueSizes(t *testing.T) {
	records := []model.Record{
		{Source: model.SourceTap},
		{Source: model.SourceIrshad},
		{Source: model.SourceTap},
		{Source: model.SourceTap},
	}

	sizes := CatalogueSizes(records)
	require.Len(t, sizes, 2)
	// Fixed order: retail before marketplace.
	assert.Equal(t, CatalogueSize{Source: model.SourceIrshad, Channel: model.ChannelRetail, Listings: 1}, sizes[0])
	assert.Equal(t, CatalogueSize{Source: model.SourceTap, Channel: model.ChannelMarketplace, Listings: 3}, sizes[1])
}
