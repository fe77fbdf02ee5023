package engine

import "github.com/noah-isme/volume-discounts/internal/offer"

// ResolveTier selects the tier applicable to a quantity in a single scan.
//
// An offer whose quantity equals the evaluated quantity wins outright;
// otherwise the offer with the greatest quantity not exceeding it wins.
// Both branches break ties in favor of the offer encountered first in
// configured order. Returns nil when no offer qualifies, and never an offer
// whose quantity exceeds the evaluated quantity.
func ResolveTier(quantity int, offers []offer.Offer) *offer.Offer {
	var best *offer.Offer
	for i := range offers {
		o := &offers[i]
		if o.Quantity == quantity {
			return o
		}
		if o.Quantity > quantity {
			continue
		}
		if best == nil || o.Quantity > best.Quantity {
			best = o
		}
	}
	return best
}
