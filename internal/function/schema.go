// Package function defines the JSON shapes exchanged with the host
// commerce platform: the invocation payload handed to a discount function
// and the discount-application result handed back.
package function

import "github.com/shopspring/decimal"

// Input is the snapshot the host supplies for a single evaluation.
type Input struct {
	Shop         Shop  `json:"shop"`
	Cart         Cart  `json:"cart"`
	DiscountNode *Node `json:"discountNode,omitempty"`
}

// Shop carries shop-scoped configuration.
type Shop struct {
	Metafield *Metafield `json:"metafield"`
}

// Node carries configuration attached to the discount node itself.
type Node struct {
	Metafield *Metafield `json:"metafield"`
}

// Metafield is a serialized configuration record.
type Metafield struct {
	Value string `json:"value"`
}

// Cart is the host's view of the cart at evaluation time.
type Cart struct {
	Lines []CartLine `json:"lines"`
	Cost  CartCost   `json:"cost"`
}

// CartLine is one line of the cart.
type CartLine struct {
	ID       string   `json:"id"`
	Quantity int      `json:"quantity"`
	Cost     LineCost `json:"cost"`
}

// LineCost holds per-line pricing.
type LineCost struct {
	AmountPerItem Money `json:"amountPerItem"`
}

// CartCost holds cart-level pricing.
type CartCost struct {
	SubtotalAmount Money `json:"subtotalAmount"`
}

// Money is a monetary value as the host serializes it.
type Money struct {
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode,omitempty"`
}

// OrderConfigValue returns the shop-level configuration blob, or nil when
// the metafield is absent.
func (i Input) OrderConfigValue() *string {
	if i.Shop.Metafield == nil {
		return nil
	}
	return &i.Shop.Metafield.Value
}

// LineConfigValue returns the configuration blob for the line-level
// variant: the discount node's metafield when present, else the shop's.
func (i Input) LineConfigValue() *string {
	if i.DiscountNode != nil && i.DiscountNode.Metafield != nil {
		return &i.DiscountNode.Metafield.Value
	}
	return i.OrderConfigValue()
}
