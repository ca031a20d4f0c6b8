// Package segment derives the market aggregates from the canonical
// dataset: channel split, price tiers, discount depth, financing coverage,
// median positioning, and installment-term preference. Every operation is a
// pure read over the merged collection; a record that cannot contribute to
// one aggregate (no valid price, no discount data) is excluded from that
// aggregate only.
package segment

import (
	"github.com/bazarstat/bazarstat/internal/model"
)

// Split partitions records into retail and marketplace channels using the
// static source roster. Records from unknown sources do not occur in a
// normalized dataset; they would fall out of both partitions.
func Split(records []model.Record) (retail, marketplace []model.Record) {
	for _, r := range records {
		switch ch, _ := model.ChannelOf(r.Source); ch {
		case model.ChannelRetail:
			retail = append(retail, r)
		case model.ChannelMarketplace:
			marketplace = append(marketplace, r)
		}
	}
	return retail, marketplace
}

// CatalogueSize is one platform's listing volume.
type CatalogueSize struct {
	Source   string
	Channel  model.Channel
	Listings int
}

// CatalogueSizes counts listings per platform, in the fixed source order.
// Platforms absent from the dataset are omitted: "no listings collected" is
// the collector's story, not a zero-size catalogue.
func CatalogueSizes(records []model.Record) []CatalogueSize {
	counts := make(map[string]int, len(model.AllSources))
	for _, r := range records {
		counts[r.Source]++
	}

	out := make([]CatalogueSize, 0, len(counts))
	for _, src := range model.AllSources {
		n, ok := counts[src]
		if !ok {
			continue
		}
		ch, _ := model.ChannelOf(src)
		out = append(out, CatalogueSize{Source: src, Channel: ch, Listings: n})
	}
	return out
}
