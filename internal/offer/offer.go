package offer

import "github.com/shopspring/decimal"

// PriceMode identifies how a tier's priceAmount is interpreted.
type PriceMode string

const (
	// PriceModePercentage discounts the basis by priceAmount percent.
	PriceModePercentage PriceMode = "PERCENTAGE"
	// PriceModeFixedPrice sets priceAmount as the target price; the discount
	// is the gap from the basis down to it.
	PriceModeFixedPrice PriceMode = "FIXED_PRICE"
	// PriceModeFixedAmount takes priceAmount off per unit.
	PriceModeFixedAmount PriceMode = "FIXED_AMOUNT"
)

// Known reports whether the mode belongs to the closed set above.
func (m PriceMode) Known() bool {
	switch m {
	case PriceModePercentage, PriceModeFixedPrice, PriceModeFixedAmount:
		return true
	}
	return false
}

// Offer is a single quantity tier within a bundle.
type Offer struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Subtitle    string          `json:"subtitle"`
	Quantity    int             `json:"quantity"`
	PriceMode   PriceMode       `json:"priceMode"`
	PriceAmount decimal.Decimal `json:"priceAmount"`
}

// BundleOffer is one published bundle with its tiers in configured order.
type BundleOffer struct {
	BundleID   string  `json:"bundleId"`
	BundleName string  `json:"bundleName"`
	Offers     []Offer `json:"offers"`
}

// OrderConfig is the order-level configuration record: every bundle
// published at evaluation time.
type OrderConfig struct {
	Bundles []BundleOffer
}

// Empty reports whether the record carries no bundles.
func (c OrderConfig) Empty() bool { return len(c.Bundles) == 0 }

// LineConfig is the line-level configuration record: one tier list applied
// to every cart line. SelectedOfferIndex is authored alongside the offers
// by the configuration UI and travels with the record; evaluation itself
// resolves tiers purely by quantity.
type LineConfig struct {
	Offers             []Offer `json:"offers"`
	SelectedOfferIndex int     `json:"selectedOfferIndex"`
}

// Empty reports whether the record carries no offers.
func (c LineConfig) Empty() bool { return len(c.Offers) == 0 }
