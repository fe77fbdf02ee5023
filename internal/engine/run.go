package engine

import (
	"context"
	"encoding/json"

	"github.com/noah-isme/volume-discounts/internal/function"
	"github.com/noah-isme/volume-discounts/internal/obs"
	"github.com/noah-isme/volume-discounts/internal/offer"
)

// Variant identifies which discount function an invocation executes.
type Variant string

const (
	// VariantOrder is the order-level function.
	VariantOrder Variant = "order-discount"
	// VariantLine is the line-level function.
	VariantLine Variant = "product-discount"
)

// Run decodes a raw invocation payload and evaluates the given variant.
// A payload that cannot be decoded evaluates as an empty invocation; Run
// never fails and always returns a structurally valid result.
func Run(ctx context.Context, variant Variant, payload []byte, opts Options) function.Result {
	trace := obs.Trace(ctx)
	var input function.Input
	if err := json.Unmarshal(payload, &input); err != nil {
		trace.Debug().Err(err).Msg("invocation payload not decodable")
		input = function.Input{}
	}
	snapshot := SnapshotFrom(input.Cart)

	switch variant {
	case VariantLine:
		cfg := offer.ParseLineConfig(input.LineConfigValue())
		return EvaluateLines(ctx, cfg, snapshot, opts)
	default:
		cfg := offer.ParseOrderConfig(input.OrderConfigValue())
		return EvaluateOrder(ctx, cfg, snapshot, opts)
	}
}
