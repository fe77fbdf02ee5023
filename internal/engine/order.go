package engine

import (
	"context"

	"github.com/noah-isme/volume-discounts/internal/function"
	"github.com/noah-isme/volume-discounts/internal/obs"
	"github.com/noah-isme/volume-discounts/internal/offer"
)

// EvaluateOrder runs the order-level variant: every published bundle
// competes, and the single best candidate is emitted as one percentage
// discount against the order subtotal. A cart with a non-positive subtotal,
// an empty configuration, or no positive candidate yields the empty result.
func EvaluateOrder(ctx context.Context, cfg offer.OrderConfig, cart Snapshot, opts Options) function.Result {
	trace := obs.Trace(ctx)
	if cfg.Empty() {
		trace.Debug().Msg("no published bundles")
		return function.EmptyResult(function.StrategyFirst)
	}
	if cart.Subtotal.Sign() <= 0 {
		trace.Debug().Str("subtotal", cart.Subtotal.String()).Msg("non-positive subtotal")
		return function.EmptyResult(function.StrategyFirst)
	}

	quantity := cart.TotalQuantity()
	best := BestOffer(ctx, cfg.Bundles, quantity, cart.Subtotal)
	if best == nil {
		trace.Debug().Int("cart_quantity", quantity).Msg("no winning bundle")
		return function.EmptyResult(function.StrategyFirst)
	}

	// The winner is re-expressed as a percentage of the subtotal regardless
	// of its configured price mode; the division is safe because the
	// subtotal was checked positive above.
	percent := clampPercent(best.Amount.Div(cart.Subtotal).Mul(hundred))
	trace.Debug().
		Str("bundle", best.BundleName).
		Str("amount", best.Amount.String()).
		Str("percent", percent.StringFixed(2)).
		Msg("winner selected")

	return function.Result{
		Strategy: function.StrategyFirst,
		Discounts: []function.Discount{{
			Message: orderMessage(*best, opts.DefaultMessage),
			Value: function.Value{
				Percentage: &function.Percentage{Value: percent.StringFixed(2)},
			},
			Targets: []function.Target{{
				OrderSubtotal: &function.OrderSubtotalTarget{ExcludedVariantIDs: []string{}},
			}},
		}},
	}
}
