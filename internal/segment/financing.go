package segment

import (
	"github.com/bazarstat/bazarstat/internal/model"
)

// FinancingCoverage is the share of one retail platform's catalogue that
// advertises any payment plan.
type FinancingCoverage struct {
	Source        string
	Listings      int
	WithFinancing int
	Pct           float64
}

// Financing computes installment coverage per retail platform: the
// percentage of records with at least one non-empty installment-bearing
// field. Marketplaces are excluded; financing terms on resale listings are
// not comparable to store credit offers.
func Financing(records []model.Record) []FinancingCoverage {
	type acc struct {
		total int
		with  int
	}
	bySource := make(map[string]*acc)
	for _, r := range records {
		if ch, _ := model.ChannelOf(r.Source); ch != model.ChannelRetail {
			continue
		}
		a := bySource[r.Source]
		if a == nil {
			a = &acc{}
			bySource[r.Source] = a
		}
		a.total++
		if r.HasFinancing() {
			a.with++
		}
	}

	out := make([]FinancingCoverage, 0, len(bySource))
	for _, src := range model.RetailSources {
		a, ok := bySource[src]
		if !ok {
			continue
		}
		out = append(out, FinancingCoverage{
			Source:        src,
			Listings:      a.total,
			WithFinancing: a.with,
			Pct:           100 * float64(a.with) / float64(a.total),
		})
	}
	return out
}
