package engine

import (
	"github.com/shopspring/decimal"

	"github.com/noah-isme/volume-discounts/internal/offer"
)

var hundred = decimal.NewFromInt(100)

// Amount computes the discount a resolved tier yields against a price
// basis. The basis is a per-unit price for line-level evaluation or the
// order subtotal for order-level evaluation; a fixed-amount tier takes its
// configured amount straight off the basis.
//
// The result is never negative but may exceed the basis; candidates
// compete on the raw amount, and clampPercent bounds what is emitted.
// A non-positive basis or an unknown price mode yields zero.
func Amount(o offer.Offer, basis decimal.Decimal) decimal.Decimal {
	if basis.Sign() <= 0 {
		return decimal.Zero
	}
	var amount decimal.Decimal
	switch o.PriceMode {
	case offer.PriceModePercentage:
		amount = basis.Mul(o.PriceAmount).Div(hundred)
	case offer.PriceModeFixedPrice:
		amount = basis.Sub(o.PriceAmount)
	case offer.PriceModeFixedAmount:
		amount = o.PriceAmount
	default:
		return decimal.Zero
	}
	if amount.Sign() < 0 {
		return decimal.Zero
	}
	return amount
}
