package segment

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/bazarstat/bazarstat/internal/model"
)

// discountPattern captures the first numeric substring: one or more digits
// with an optional decimal part. Covers every observed label shape:
// "15%", "-16%", bare "27".
var discountPattern = regexp.MustCompile(`\d+(?:\.\d+)?`)

// ExtractDiscount pulls the discount percentage out of a free-text label.
// The sign is presentational ("-16%" means 16 percent off), so the value is
// always the absolute percentage. ok is false when the label carries no
// numeric substring at all: that is "no discount data", never zero.
func ExtractDiscount(label string) (float64, bool) {
	m := discountPattern.FindString(strings.TrimSpace(label))
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// DiscountDepth is one platform's discount profile over the listings that
// carry discount data.
type DiscountDepth struct {
	Source  string
	Samples int
	Avg     float64
	Max     float64
}

// DiscountDepths computes average and maximum discount per platform.
// Platforms with no extractable discount data are omitted.
func DiscountDepths(records []model.Record) []DiscountDepth {
	type acc struct {
		sum float64
		max float64
		n   int
	}
	bySource := make(map[string]*acc)
	for _, r := range records {
		pct, ok := ExtractDiscount(r.DiscountPct)
		if !ok {
			continue
		}
		a := bySource[r.Source]
		if a == nil {
			a = &acc{}
			bySource[r.Source] = a
		}
		a.sum += pct
		if pct > a.max {
			a.max = pct
		}
		a.n++
	}

	out := make([]DiscountDepth, 0, len(bySource))
	for _, src := range model.AllSources {
		a, ok := bySource[src]
		if !ok {
			continue
		}
		out = append(out, DiscountDepth{
			Source:  src,
			Samples: a.n,
			Avg:     a.sum / float64(a.n),
			Max:     a.max,
		})
	}
	return out
}
