// Package model defines the core domain types shared across the engine:
// the canonical listing record, the platform roster, and derived views.
package model

// Platform identifiers as they appear in the source column.
const (
	SourceBakuElectronics  = "bakuelectronics.az"
	SourceBytelecom        = "bytelecom.az"
	SourceIrshad           = "irshad.az"
	SourceKontakt          = "kontakt.az"
	SourceMGStore          = "mgstore.az"
	SourceSmartElectronics = "smartelectronics.az"
	SourceSoliton          = "soliton.az"
	SourceTexnohome        = "texnohome.az"
	SourceWT               = "w-t.az"
	SourceBirmarket        = "birmarket.az"
	SourceTap              = "tap.az"
)

// RetailSources lists the branded retail stores.
var RetailSources = []string{
	SourceBakuElectronics,
	SourceBytelecom,
	SourceIrshad,
	SourceKontakt,
	SourceMGStore,
	SourceSmartElectronics,
	SourceSoliton,
	SourceTexnohome,
	SourceWT,
}

// MarketplaceSources lists the consumer marketplaces.
var MarketplaceSources = []string{
	SourceBirmarket,
	SourceTap,
}

// AllSources is the fixed merge order: retail stores first, then
// marketplaces. The Merger concatenates per-source results in exactly this
// order so positional operations downstream are reproducible.
var AllSources = append(append([]string{}, RetailSources...), MarketplaceSources...)

// Channel distinguishes branded retail stores from consumer marketplaces.
type Channel string

// Channel values.
const (
	ChannelRetail      Channel = "retail"
	ChannelMarketplace Channel = "marketplace"
)

var channelBySource = func() map[string]Channel {
	m := make(map[string]Channel, len(AllSources))
	for _, s := range RetailSources {
		m[s] = ChannelRetail
	}
	for _, s := range MarketplaceSources {
		m[s] = ChannelMarketplace
	}
	return m
}()

// ChannelOf returns the channel for a platform identifier. The second
// return is false for identifiers outside the known roster.
func ChannelOf(source string) (Channel, bool) {
	c, ok := channelBySource[source]
	return c, ok
}

// KnownSource reports whether source is one of the registered platforms.
func KnownSource(source string) bool {
	_, ok := channelBySource[source]
	return ok
}
