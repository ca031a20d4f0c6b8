package segment

import (
	"regexp"
	"sort"
	"strings"

	"github.com/bazarstat/bazarstat/internal/model"
)

var termNumber = regexp.MustCompile(`\d+`)

// NormalizeTerm canonicalizes an installment-term label to "N months" when
// it carries a numeric duration ("18 ay" → "18 months"). Labels without a
// number pass through trimmed.
func NormalizeTerm(label string) string {
	label = strings.TrimSpace(label)
	if m := termNumber.FindString(label); m != "" {
		return m + " months"
	}
	return label
}

// TermCount is the popularity of one installment term.
type TermCount struct {
	Term     string
	Listings int
}

// TermPreference counts birmarket listings per installment term, with term
// labels normalized, sorted by popularity. birmarket is the only platform
// exposing a chosen term per listing, so the aggregate is scoped to it.
func TermPreference(records []model.Record) []TermCount {
	counts := make(map[string]int)
	for _, r := range records {
		if r.Source != model.SourceBirmarket {
			continue
		}
		if strings.TrimSpace(r.InstallmentTerm) == "" {
			continue
		}
		counts[NormalizeTerm(r.InstallmentTerm)]++
	}

	out := make([]TermCount, 0, len(counts))
	for term, n := range counts {
		out = append(out, TermCount{Term: term, Listings: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Listings != out[j].Listings {
			return out[i].Listings > out[j].Listings
		}
		return out[i].Term < out[j].Term
	})
	return out
}
