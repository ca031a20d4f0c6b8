package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bazarstat/bazarstat/internal/common"
	"github.com/bazarstat/bazarstat/internal/model"
)

func TestRegistryCoversAllSources(t *testing.T) {
	reg := NewRegistry()
	assert.Equal(t, model.AllSources, reg.Sources())

	for _, src := range model.AllSources {
		m, err := reg.Lookup(src)
		require.NoError(t, err, "source %s must be registered", src)
		assert.Equal(t, src, m.Source)

		// Every source must designate the identification triplet.
		for _, col := range []string{"name", "price_current", "url"} {
			_, ok := m.Fields[col]
			assert.True(t, ok, "source %s must map %s", src, col)
		}
		// And provide provenance.
		_, ok := m.Fields["page"]
		assert.True(t, ok, "source %s must map page", src)

		// Mapped canonical columns must actually exist.
		for col := range m.Fields {
			var r model.Record
			assert.True(t, r.Set(col, "x"), "source %s maps unknown column %q", src, col)
		}
	}
}

func TestRegistryLookupUnknown(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.Lookup("aliexpress.com")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUnknownSource)
}

func TestSourceMappingApply(t *testing.T) {
	reg := NewRegistry()
	m, err := reg.Lookup(model.SourceTap)
	require.NoError(t, err)

	raw := model.RawRecord{
		"title":  " Samsung Galaxy Tab A9 8/128GB ",
		"price":  "340 AZN",
		"region": "Bakı",
	}

	name, ok := m.Apply(raw, "name")
	require.True(t, ok)
	assert.Equal(t, "Samsung Galaxy Tab A9 8/128GB", name)

	price, ok := m.Apply(raw, "price_current")
	require.True(t, ok)
	assert.Equal(t, "340", price)

	// Covered column with absent raw value resolves to empty.
	shop, ok := m.Apply(raw, "shop_id")
	require.True(t, ok)
	assert.Equal(t, "", shop)

	// tap.az has no brand column at all.
	_, ok = m.Apply(raw, "brand")
	assert.False(t, ok)
}

func TestCleanPrice(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "649.99 AZN", want: "649.99"},
		{in: "349,99 ₼", want: "349.99"},
		{in: "1.899,99 ₼", want: "1899.99"},
		{in: "1.899.99", want: "1899.99"},
		{in: "240", want: "240"},
		{in: "", want: ""},
		{in: "AZN", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanPrice(tt.in))
		})
	}
}

func TestCanonBool(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "True", want: "True"},
		{in: "1", want: "True"},
		{in: "var", want: "True"},
		{in: "False", want: "False"},
		{in: "0", want: "False"},
		{in: "yox", want: "False"},
		{in: "", want: ""},
		{in: "  sifarişlə  ", want: "sifarişlə"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, CanonBool(tt.in))
		})
	}
}
