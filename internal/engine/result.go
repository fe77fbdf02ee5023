package engine

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/noah-isme/volume-discounts/internal/offer"
)

// clampPercent bounds a percentage to the emittable [0,100] range.
func clampPercent(p decimal.Decimal) decimal.Decimal {
	if p.Sign() < 0 {
		return decimal.Zero
	}
	if p.GreaterThan(hundred) {
		return hundred
	}
	return p
}

// offerLabel picks the human-facing label for a tier: subtitle, then title,
// then the configured default.
func offerLabel(o offer.Offer, fallback string) string {
	if s := strings.TrimSpace(o.Subtitle); s != "" {
		return s
	}
	if t := strings.TrimSpace(o.Title); t != "" {
		return t
	}
	return fallback
}

// orderMessage combines the winning tier's label with its bundle name.
func orderMessage(c Candidate, fallback string) string {
	label := offerLabel(c.Offer, fallback)
	name := strings.TrimSpace(c.BundleName)
	if name == "" {
		return label
	}
	return label + " (" + name + ")"
}
