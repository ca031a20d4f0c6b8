// Package compare implements best-effort cross-platform model comparison.
// There is no canonical product key linking "the same tablet" across
// sources, so matching is case-sensitive substring containment over listing
// names — a deliberately bounded heuristic, not entity resolution.
package compare

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bazarstat/bazarstat/internal/model"
	"github.com/bazarstat/bazarstat/internal/segment"
)

// Options tunes a comparison run.
type Options struct {
	// Floor excludes matches priced at or below this value. Accessory
	// listings (cases, chargers) often carry the model name in their title;
	// the floor filters most of them out. Known to be imperfect both ways:
	// a cheap genuine listing is lost, an expensive accessory slips in.
	Floor decimal.Decimal
}

// DefaultOptions uses the 50 AZN accessory floor.
func DefaultOptions() Options {
	return Options{Floor: decimal.NewFromInt(50)}
}

// PlatformRange is one platform's price range over matching listings.
// HasData is false when the platform had zero matching valid-priced
// records — an explicit "no data" result, distinct from a zero price.
type PlatformRange struct {
	Source  string
	Matches int
	Min     decimal.Decimal
	Max     decimal.Decimal
	Median  decimal.Decimal
	HasData bool
}

// Result is a full cross-platform comparison for one model query. Every
// registered platform appears exactly once, in the fixed source order, so
// consumers can tell "no listings" from "not computed".
type Result struct {
	Query     string
	Platforms []PlatformRange
}

// ByModel selects records whose name contains query (case-sensitive) and a
// valid price above the accessory floor, then summarizes min/max/median per
// platform.
func ByModel(query string, records []model.Record, opts Options) Result {
	bySource := make(map[string][]decimal.Decimal)
	for _, r := range records {
		if !strings.Contains(r.Name, query) {
			continue
		}
		p, ok := r.ValidPrice()
		if !ok {
			continue
		}
		if p.Cmp(opts.Floor) <= 0 {
			continue
		}
		bySource[r.Source] = append(bySource[r.Source], p)
	}

	res := Result{Query: query, Platforms: make([]PlatformRange, 0, len(model.AllSources))}
	for _, src := range model.AllSources {
		ps := bySource[src]
		pr := PlatformRange{Source: src, Matches: len(ps)}
		if len(ps) > 0 {
			pr.HasData = true
			pr.Min, pr.Max = ps[0], ps[0]
			for _, p := range ps[1:] {
				if p.Cmp(pr.Min) < 0 {
					pr.Min = p
				}
				if p.Cmp(pr.Max) > 0 {
					pr.Max = p
				}
			}
			pr.Median = segment.Median(ps)
		}
		res.Platforms = append(res.Platforms, pr)
	}
	return res
}
