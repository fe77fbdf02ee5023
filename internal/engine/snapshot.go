// Package engine evaluates quantity-tiered offers against a cart snapshot.
// Evaluation is a pure function of its inputs: no state survives a call,
// nothing is read or written outside it, and every path returns a
// structurally valid result.
package engine

import (
	"github.com/shopspring/decimal"

	"github.com/noah-isme/volume-discounts/internal/function"
)

// Line is one cart line at evaluation time.
type Line struct {
	ID         string
	Quantity   int
	UnitAmount decimal.Decimal
}

// Snapshot is the host-supplied view of the cart.
type Snapshot struct {
	Lines    []Line
	Subtotal decimal.Decimal
}

// TotalQuantity sums the quantities of all lines. Lines with non-positive
// quantities contribute nothing.
func (s Snapshot) TotalQuantity() int {
	var total int
	for _, line := range s.Lines {
		if line.Quantity > 0 {
			total += line.Quantity
		}
	}
	return total
}

// SnapshotFrom converts the host cart payload into an evaluation snapshot.
func SnapshotFrom(cart function.Cart) Snapshot {
	lines := make([]Line, 0, len(cart.Lines))
	for _, l := range cart.Lines {
		lines = append(lines, Line{
			ID:         l.ID,
			Quantity:   l.Quantity,
			UnitAmount: l.Cost.AmountPerItem.Amount,
		})
	}
	return Snapshot{Lines: lines, Subtotal: cart.Cost.SubtotalAmount.Amount}
}

// Options carries evaluation settings shared by both variants.
type Options struct {
	// DefaultMessage labels a discount whose offer has neither subtitle nor
	// title.
	DefaultMessage string
}
