package engine

import (
	"context"
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"github.com/noah-isme/volume-discounts/internal/function"
	"github.com/noah-isme/volume-discounts/internal/obs"
	"github.com/noah-isme/volume-discounts/internal/offer"
)

func orderFixture() (offer.OrderConfig, Snapshot) {
	cfg := offer.OrderConfig{Bundles: []offer.BundleOffer{
		{BundleName: "Bundle A", Offers: []offer.Offer{
			tier("a1", 2, offer.PriceModePercentage, "10"),
			tier("a2", 5, offer.PriceModePercentage, "20"),
		}},
		{BundleName: "Bundle B", Offers: []offer.Offer{
			tier("b1", 3, offer.PriceModeFixedAmount, "5"),
		}},
		{BundleName: "Bundle C", Offers: []offer.Offer{
			tier("c1", 10, offer.PriceModePercentage, "50"),
		}},
	}}
	cart := Snapshot{
		Lines: []Line{
			{ID: "line-1", Quantity: 4, UnitAmount: dec("15.00")},
			{ID: "line-2", Quantity: 2, UnitAmount: dec("20.00")},
		},
		Subtotal: dec("100.00"),
	}
	return cfg, cart
}

func TestEvaluateOrderWinner(t *testing.T) {
	cfg, cart := orderFixture()
	result := EvaluateOrder(context.Background(), cfg, cart, Options{DefaultMessage: "Volume discount"})
	if result.Strategy != function.StrategyFirst {
		t.Fatalf("expected First strategy, got %s", result.Strategy)
	}
	if len(result.Discounts) != 1 {
		t.Fatalf("expected exactly one discount, got %d", len(result.Discounts))
	}
	d := result.Discounts[0]
	if d.Value.Percentage == nil || d.Value.Percentage.Value != "20.00" {
		t.Fatalf("expected 20.00 percent, got %+v", d.Value)
	}
	if len(d.Targets) != 1 || d.Targets[0].OrderSubtotal == nil {
		t.Fatalf("expected order subtotal target, got %+v", d.Targets)
	}
	if d.Targets[0].OrderSubtotal.ExcludedVariantIDs == nil {
		t.Fatal("excludedVariantIds must be an empty list, not nil")
	}
	if d.Message != "Volume discount (Bundle A)" {
		t.Fatalf("unexpected message %q", d.Message)
	}
}

func TestEvaluateOrderPercentageClampedAtFull(t *testing.T) {
	cfg := offer.OrderConfig{Bundles: []offer.BundleOffer{
		{BundleName: "Over", Offers: []offer.Offer{
			tier("o1", 1, offer.PriceModeFixedAmount, "150"),
		}},
	}}
	_, cart := orderFixture()
	result := EvaluateOrder(context.Background(), cfg, cart, Options{DefaultMessage: "Volume discount"})
	if len(result.Discounts) != 1 {
		t.Fatalf("expected one discount, got %d", len(result.Discounts))
	}
	if v := result.Discounts[0].Value.Percentage; v == nil || v.Value != "100.00" {
		t.Fatalf("expected percentage clamped to 100.00, got %+v", result.Discounts[0].Value)
	}
}

func TestEvaluateOrderEmptyConfig(t *testing.T) {
	_, cart := orderFixture()
	result := EvaluateOrder(context.Background(), offer.OrderConfig{}, cart, Options{})
	if result.Strategy != function.StrategyFirst || len(result.Discounts) != 0 {
		t.Fatalf("expected empty First result, got %+v", result)
	}
	if result.Discounts == nil {
		t.Fatal("discounts must be an empty list, not nil")
	}
}

func TestEvaluateOrderZeroSubtotal(t *testing.T) {
	cfg, cart := orderFixture()
	cart.Subtotal = dec("0")
	result := EvaluateOrder(context.Background(), cfg, cart, Options{})
	if len(result.Discounts) != 0 {
		t.Fatalf("expected no discounts at zero subtotal, got %+v", result.Discounts)
	}
}

func TestEvaluateOrderNoEligibleTier(t *testing.T) {
	cfg, cart := orderFixture()
	cart.Lines = []Line{{ID: "line-1", Quantity: 1, UnitAmount: dec("100.00")}}
	result := EvaluateOrder(context.Background(), cfg, cart, Options{})
	if len(result.Discounts) != 0 {
		t.Fatalf("expected no discounts for quantity 1, got %+v", result.Discounts)
	}
}

func TestEvaluateOrderDeterministic(t *testing.T) {
	cfg, cart := orderFixture()
	first := EvaluateOrder(context.Background(), cfg, cart, Options{DefaultMessage: "Volume discount"})
	second := EvaluateOrder(context.Background(), cfg, cart, Options{DefaultMessage: "Volume discount"})
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results, got %+v vs %+v", first, second)
	}
}

func TestEvaluateOrderTraceNeutral(t *testing.T) {
	cfg, cart := orderFixture()
	plain := EvaluateOrder(context.Background(), cfg, cart, Options{DefaultMessage: "Volume discount"})
	traced := EvaluateOrder(
		obs.WithTrace(context.Background(), zerolog.New(zerolog.NewTestWriter(t))),
		cfg, cart, Options{DefaultMessage: "Volume discount"},
	)
	if !reflect.DeepEqual(plain, traced) {
		t.Fatalf("trace changed the result: %+v vs %+v", plain, traced)
	}
}

func TestEvaluateOrderSubtitleInMessage(t *testing.T) {
	cfg, cart := orderFixture()
	cfg.Bundles[0].Offers[1].Subtitle = "Buy 5 save 20%"
	result := EvaluateOrder(context.Background(), cfg, cart, Options{DefaultMessage: "Volume discount"})
	if len(result.Discounts) != 1 || result.Discounts[0].Message != "Buy 5 save 20% (Bundle A)" {
		t.Fatalf("unexpected message in %+v", result.Discounts)
	}
}
