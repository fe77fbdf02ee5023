package function

// Strategy tells the host how to apply the emitted discounts.
type Strategy string

const (
	// StrategyFirst applies only the first discount in the list.
	StrategyFirst Strategy = "First"
	// StrategyMaximum applies the maximum applicable discounts.
	StrategyMaximum Strategy = "Maximum"
)

// Result is the discount-application result returned to the host. It is
// always structurally valid; an evaluation that applies nothing returns a
// result with an empty (never nil) discount list.
type Result struct {
	Strategy  Strategy   `json:"discountApplicationStrategy"`
	Discounts []Discount `json:"discounts"`
}

// Discount is a single discount entry with its value and target scope.
type Discount struct {
	Message string   `json:"message"`
	Value   Value    `json:"value"`
	Targets []Target `json:"targets"`
}

// Value holds exactly one of the supported discount value kinds.
type Value struct {
	Percentage  *Percentage  `json:"percentage,omitempty"`
	FixedAmount *FixedAmount `json:"fixedAmount,omitempty"`
}

// Percentage is a percentage discount value rendered as a decimal string.
type Percentage struct {
	Value string `json:"value"`
}

// FixedAmount is a fixed monetary discount value rendered as a decimal
// string.
type FixedAmount struct {
	Value string `json:"value"`
}

// Target scopes a discount to the order subtotal or to a single line.
type Target struct {
	OrderSubtotal *OrderSubtotalTarget `json:"orderSubtotal,omitempty"`
	Line          *LineTarget          `json:"line,omitempty"`
}

// OrderSubtotalTarget applies a discount across the order subtotal.
type OrderSubtotalTarget struct {
	ExcludedVariantIDs []string `json:"excludedVariantIds"`
}

// LineTarget applies a discount to one cart line.
type LineTarget struct {
	ID string `json:"id"`
}

// EmptyResult returns the canonical no-discount result for a strategy.
func EmptyResult(s Strategy) Result {
	return Result{Strategy: s, Discounts: []Discount{}}
}
