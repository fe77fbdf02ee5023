package engine

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/noah-isme/volume-discounts/internal/obs"
	"github.com/noah-isme/volume-discounts/internal/offer"
)

// Candidate is the winning bundle/offer pair of a cross-bundle scan.
type Candidate struct {
	Offer      offer.Offer
	BundleName string
	Amount     decimal.Decimal
}

// BestOffer resolves every bundle's tier against the cart quantity,
// computes each candidate's discount against the subtotal, and returns the
// single greatest. Only a strictly greater amount displaces the current
// leader, so the bundle seen first keeps ties. Returns nil when no bundle
// yields a positive amount.
func BestOffer(ctx context.Context, bundles []offer.BundleOffer, cartQuantity int, subtotal decimal.Decimal) *Candidate {
	trace := obs.Trace(ctx)
	var best *Candidate
	for _, bundle := range bundles {
		if len(bundle.Offers) == 0 {
			continue
		}
		tier := ResolveTier(cartQuantity, bundle.Offers)
		if tier == nil {
			trace.Debug().
				Str("bundle", bundle.BundleName).
				Int("cart_quantity", cartQuantity).
				Msg("no qualifying tier")
			continue
		}
		if !tier.PriceMode.Known() {
			trace.Debug().
				Str("bundle", bundle.BundleName).
				Str("price_mode", string(tier.PriceMode)).
				Msg("unknown price mode")
			continue
		}
		amount := Amount(*tier, subtotal)
		trace.Debug().
			Str("bundle", bundle.BundleName).
			Int("tier_quantity", tier.Quantity).
			Str("price_mode", string(tier.PriceMode)).
			Str("amount", amount.String()).
			Msg("bundle candidate")
		if amount.Sign() <= 0 {
			continue
		}
		if best == nil || amount.GreaterThan(best.Amount) {
			best = &Candidate{Offer: *tier, BundleName: bundle.BundleName, Amount: amount}
		}
	}
	return best
}
