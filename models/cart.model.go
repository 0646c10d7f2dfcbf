package models

import "time"

// CartItem is a line in the shopping cart. At most one item exists per course;
// repeated adds bump the quantity instead of appending a duplicate.
type CartItem struct {
	CourseSnapshot
	Quantity int       `json:"quantity"` // always >= 1, items never persist at 0
	AddedAt  time.Time `json:"added_at"`
}

// CartSummary carries the derived totals. Rounding to two decimals happens
// only here, at the summary boundary; internal accumulation keeps precision.
type CartSummary struct {
	ItemCount int     `json:"item_count"` // sum of quantities
	Subtotal  float64 `json:"subtotal"`
	Tax       float64 `json:"tax"`
	Total     float64 `json:"total"`
	Lines     int     `json:"lines"` // distinct items
}

// CheckoutLine is the slimmed line item handed to the checkout flow
type CheckoutLine struct {
	CourseID   uint    `json:"course_id"`
	Title      string  `json:"title"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
	Instructor string  `json:"instructor"`
	Category   string  `json:"category"`
}

// CheckoutOrder is the contract between the cart engine and the checkout flow
type CheckoutOrder struct {
	Items     []CheckoutLine `json:"items"`
	Summary   CartSummary    `json:"summary"`
	Timestamp time.Time      `json:"timestamp"`
}
