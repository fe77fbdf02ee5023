package engine

import (
	"context"

	"github.com/noah-isme/volume-discounts/internal/function"
	"github.com/noah-isme/volume-discounts/internal/obs"
	"github.com/noah-isme/volume-discounts/internal/offer"
)

// EvaluateLines runs the line-level variant: the configured tier list is
// resolved against each cart line independently, and every line whose tier
// yields a strictly positive amount receives its own percentage discount.
func EvaluateLines(ctx context.Context, cfg offer.LineConfig, cart Snapshot, opts Options) function.Result {
	trace := obs.Trace(ctx)
	result := function.EmptyResult(function.StrategyMaximum)
	if cfg.Empty() {
		trace.Debug().Msg("no configured offers")
		return result
	}

	for _, line := range cart.Lines {
		if line.Quantity <= 0 || line.UnitAmount.Sign() <= 0 {
			continue
		}
		tier := ResolveTier(line.Quantity, cfg.Offers)
		if tier == nil {
			trace.Debug().
				Str("line_id", line.ID).
				Int("quantity", line.Quantity).
				Msg("no qualifying tier")
			continue
		}
		if !tier.PriceMode.Known() {
			trace.Debug().
				Str("line_id", line.ID).
				Str("price_mode", string(tier.PriceMode)).
				Msg("unknown price mode")
			continue
		}
		perUnit := Amount(*tier, line.UnitAmount)
		if perUnit.Sign() <= 0 {
			trace.Debug().
				Str("line_id", line.ID).
				Int("tier_quantity", tier.Quantity).
				Msg("non-positive amount suppressed")
			continue
		}
		percent := clampPercent(perUnit.Div(line.UnitAmount).Mul(hundred))
		trace.Debug().
			Str("line_id", line.ID).
			Int("tier_quantity", tier.Quantity).
			Str("per_unit", perUnit.String()).
			Str("percent", percent.StringFixed(2)).
			Msg("line discount")
		result.Discounts = append(result.Discounts, function.Discount{
			Message: offerLabel(*tier, opts.DefaultMessage),
			Value: function.Value{
				Percentage: &function.Percentage{Value: percent.StringFixed(2)},
			},
			Targets: []function.Target{{
				Line: &function.LineTarget{ID: line.ID},
			}},
		})
	}
	return result
}
