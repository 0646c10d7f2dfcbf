package models

// Discount kinds
const (
	DiscountPercentage = "percentage"
	DiscountFixed      = "fixed"
)

// Discount maps a code to a price reduction. Applied discounts are transient:
// they affect the payable total at checkout and are never persisted with the cart.
type Discount struct {
	Code        string  `json:"code"`
	Kind        string  `json:"kind"`
	Value       float64 `json:"value"`
	Description string  `json:"description"`
}
