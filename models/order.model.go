package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Order statuses
const (
	OrderStatusPaid   = "PAID"
	OrderStatusFailed = "FAILED"
)

// Order is the persisted record of a completed checkout. Items hold the
// CheckoutLine snapshot so later catalog price changes do not rewrite history.
type Order struct {
	gorm.Model
	OrderNumber   string         `json:"order_number" gorm:"unique;not null"`
	UserID        uint           `json:"user_id" gorm:"index;not null"`
	Items         datatypes.JSON `json:"items"`
	Subtotal      float64        `json:"subtotal"`
	Tax           float64        `json:"tax"`
	DiscountCode  string         `json:"discount_code"`
	Discount      float64        `json:"discount"`
	Total         float64        `json:"total"`
	Status        string         `json:"status" gorm:"default:'PAID'"`
	TransactionID string         `json:"transaction_id"`
	BillingName   string         `json:"billing_name"`
	BillingEmail  string         `json:"billing_email"`
	IsDeleted     bool           `gorm:"default:false"`
}
