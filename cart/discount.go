package cart

import (
	"errors"
	"math"
	"strings"

	"learnflow/models"
)

// ErrUnknownDiscount is returned for codes missing from the table
var ErrUnknownDiscount = errors.New("invalid discount code")

// DiscountTable maps upper-cased codes to discounts. Lookup is case-insensitive.
type DiscountTable map[string]models.Discount

// DefaultDiscounts is the built-in promotion table
func DefaultDiscounts() DiscountTable {
	return DiscountTable{
		"SAVE10":  {Code: "SAVE10", Kind: models.DiscountPercentage, Value: 10, Description: "10% off"},
		"WELCOME": {Code: "WELCOME", Kind: models.DiscountFixed, Value: 25, Description: "$25 off"},
		"STUDENT": {Code: "STUDENT", Kind: models.DiscountPercentage, Value: 15, Description: "15% student discount"},
	}
}

// Lookup resolves a code regardless of case
func (t DiscountTable) Lookup(code string) (*models.Discount, error) {
	discount, ok := t[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return nil, ErrUnknownDiscount
	}
	return &discount, nil
}

// DiscountAmount computes the reduction a discount takes off the given
// subtotal. Fixed discounts are capped at the subtotal so they can never
// produce a negative payable amount.
func DiscountAmount(discount *models.Discount, subtotal float64) float64 {
	if discount == nil || subtotal <= 0 {
		return 0
	}
	switch discount.Kind {
	case models.DiscountPercentage:
		return round2(subtotal * discount.Value / 100)
	case models.DiscountFixed:
		return round2(math.Min(discount.Value, subtotal))
	}
	return 0
}

// FinalTotal applies a discount amount to a total, flooring at zero
func FinalTotal(total, discountAmount float64) float64 {
	return round2(math.Max(0, total-discountAmount))
}
