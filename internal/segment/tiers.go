package segment

import (
	"github.com/shopspring/decimal"

	"github.com/bazarstat/bazarstat/internal/model"
)

// Tier is one of the four half-open price bands used for market-segment
// aggregation.
type Tier int

// Tier bands, in ascending price order.
const (
	TierBudget     Tier = iota // [0, 300)
	TierMainstream             // [300, 600)
	TierUpperMid               // [600, 1200)
	TierPremium                // [1200, ∞)
)

// TierCount is the number of tiers.
const TierCount = 4

func (t Tier) String() string {
	switch t {
	case TierBudget:
		return "Under 300 AZN"
	case TierMainstream:
		return "300 – 600 AZN"
	case TierUpperMid:
		return "600 – 1200 AZN"
	case TierPremium:
		return "Over 1200 AZN"
	default:
		return "unknown"
	}
}

var (
	tierMainstreamLo = decimal.NewFromInt(300)
	tierUpperMidLo   = decimal.NewFromInt(600)
	tierPremiumLo    = decimal.NewFromInt(1200)
)

// TierOf maps a valid price to exactly one tier.
func TierOf(p decimal.Decimal) Tier {
	switch {
	case p.Cmp(tierMainstreamLo) < 0:
		return TierBudget
	case p.Cmp(tierUpperMidLo) < 0:
		return TierMainstream
	case p.Cmp(tierPremiumLo) < 0:
		return TierUpperMid
	default:
		return TierPremium
	}
}

// TierShares is one platform's tier mix. Share percentages are computed
// over the platform's valid-priced listings and sum to 100.
type TierShares struct {
	Source string
	Valid  int
	Share  [TierCount]float64
}

// TierMatrix computes the per-platform tier percentage rows. Records
// without a valid price are excluded, not assigned a tier; platforms with
// zero valid prices are omitted from the matrix.
func TierMatrix(records []model.Record) []TierShares {
	counts := make(map[string]*[TierCount]int)
	for _, r := range records {
		p, ok := r.ValidPrice()
		if !ok {
			continue
		}
		c := counts[r.Source]
		if c == nil {
			c = &[TierCount]int{}
			counts[r.Source] = c
		}
		c[TierOf(p)]++
	}

	out := make([]TierShares, 0, len(counts))
	for _, src := range model.AllSources {
		c, ok := counts[src]
		if !ok {
			continue
		}
		row := TierShares{Source: src}
		for _, n := range c {
			row.Valid += n
		}
		for i, n := range c {
			row.Share[i] = 100 * float64(n) / float64(row.Valid)
		}
		out = append(out, row)
	}
	return out
}
