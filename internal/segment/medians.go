package segment

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/bazarstat/bazarstat/internal/model"
)

var two = decimal.NewFromInt(2)

// Median returns the median of prices. For an even count it averages the
// two middle values, exactly. The input slice is not modified; an empty
// input yields the zero decimal.
func Median(prices []decimal.Decimal) decimal.Decimal {
	if len(prices) == 0 {
		return decimal.Decimal{}
	}
	sorted := make([]decimal.Decimal, len(prices))
	copy(sorted, prices)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Cmp(sorted[j]) < 0 })

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return sorted[mid-1].Add(sorted[mid]).Div(two)
}

// MedianPrice is one platform's median over its valid-priced listings.
type MedianPrice struct {
	Source  string
	Channel model.Channel
	Valid   int
	Median  decimal.Decimal
}

// MedianReport carries per-platform medians plus the overall median across
// the pooled valid prices. HasData distinguishes an empty result from a
// zero-valued metric.
type MedianReport struct {
	Platforms []MedianPrice
	Overall   decimal.Decimal
	HasData   bool
}

// MedianPrices computes median price positioning per platform. With
// retailOnly set, marketplace records are excluded (the retail positioning
// view); otherwise all platforms participate. Platforms without a single
// valid price are omitted from the rows.
func MedianPrices(records []model.Record, retailOnly bool) MedianReport {
	bySource := make(map[string][]decimal.Decimal)
	var all []decimal.Decimal
	for _, r := range records {
		if retailOnly {
			if ch, _ := model.ChannelOf(r.Source); ch != model.ChannelRetail {
				continue
			}
		}
		p, ok := r.ValidPrice()
		if !ok {
			continue
		}
		bySource[r.Source] = append(bySource[r.Source], p)
		all = append(all, p)
	}

	report := MedianReport{}
	if len(all) == 0 {
		return report
	}
	report.HasData = true
	report.Overall = Median(all)
	for _, src := range model.AllSources {
		ps, ok := bySource[src]
		if !ok {
			continue
		}
		ch, _ := model.ChannelOf(src)
		report.Platforms = append(report.Platforms, MedianPrice{
			Source:  src,
			Channel: ch,
			Valid:   len(ps),
			Median:  Median(ps),
		})
	}
	return report
}

// PriceBucketRow compares the share of retail vs tap.az listings falling
// into one price bucket.
type PriceBucketRow struct {
	Label     string
	RetailPct float64
	TapPct    float64
}

var bucketBounds = []struct {
	label string
	lo    decimal.Decimal
	hi    decimal.Decimal // zero value means unbounded
}{
	{label: "< 200", lo: decimal.Zero, hi: decimal.NewFromInt(200)},
	{label: "200–400", lo: decimal.NewFromInt(200), hi: decimal.NewFromInt(400)},
	{label: "400–700", lo: decimal.NewFromInt(400), hi: decimal.NewFromInt(700)},
	{label: "700–1200", lo: decimal.NewFromInt(700), hi: decimal.NewFromInt(1200)},
	{label: "> 1200", lo: decimal.NewFromInt(1200)},
}

// PriceBuckets computes the secondary-market vs retail price distribution:
// the share of valid-priced listings per bucket, separately for the retail
// channel and for tap.az.
func PriceBuckets(records []model.Record) []PriceBucketRow {
	var retail, tap []decimal.Decimal
	for _, r := range records {
		p, ok := r.ValidPrice()
		if !ok {
			continue
		}
		if r.Source == model.SourceTap {
			tap = append(tap, p)
			continue
		}
		if ch, _ := model.ChannelOf(r.Source); ch == model.ChannelRetail {
			retail = append(retail, p)
		}
	}

	share := func(prices []decimal.Decimal, i int) float64 {
		if len(prices) == 0 {
			return 0
		}
		b := bucketBounds[i]
		n := 0
		for _, p := range prices {
			if p.Cmp(b.lo) < 0 {
				continue
			}
			if i < len(bucketBounds)-1 && p.Cmp(b.hi) >= 0 {
				continue
			}
			n++
		}
		return 100 * float64(n) / float64(len(prices))
	}

	out := make([]PriceBucketRow, len(bucketBounds))
	for i, b := range bucketBounds {
		out[i] = PriceBucketRow{
			Label:     b.label,
			RetailPct: share(retail, i),
			TapPct:    share(tap, i),
		}
	}
	return out
}
