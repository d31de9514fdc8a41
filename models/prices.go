package models

// PriceType selects which energy price a lookup should resolve.
type PriceType string

const (
	PriceTypeGas         PriceType = "gas"
	PriceTypeElectricity PriceType = "electricity"
)

// NationalRegion is the cache/fallback key used when a ZIP cannot be
// resolved to a state.
const NationalRegion = "US"

// PriceResult is a resolved pair of prices for one energy type.
// For gas, Regular/Premium are USD per gallon for the two grades.
// For electricity, Regular is the residential USD/kWh rate and Premium
// is the DC fast-charging rate.
// Source names the tier that satisfied the lookup and is shown to the
// end user, not just logged.
type PriceResult struct {
	Regular float64 `json:"regular"`
	Premium float64 `json:"premium"`
	Source  string  `json:"source"`
}

// PriceLookupResult is the resolver's response for one ZIP lookup.
type PriceLookupResult struct {
	ZIP    string                    `json:"zip"`
	Region string                    `json:"region"`
	Prices map[PriceType]PriceResult `json:"prices"`
}
