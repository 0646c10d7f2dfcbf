// Package checkout implements the three-step purchase wizard:
// Billing -> Payment -> Review.
package checkout

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"

	"learnflow/cart"
	"learnflow/models"
	"learnflow/payment"
)

// Step identifies the wizard position
type Step int

const (
	StepBilling Step = iota + 1
	StepPayment
	StepReview
)

func (s Step) String() string {
	switch s {
	case StepBilling:
		return "billing"
	case StepPayment:
		return "payment"
	case StepReview:
		return "review"
	}
	return "unknown"
}

var (
	// ErrIncompleteStep means required fields for the current step are missing
	ErrIncompleteStep = errors.New("required fields missing for this step")

	// ErrNotAtReview means submission was attempted before the review step
	ErrNotAtReview = errors.New("submission only allowed from the review step")
)

// BillingInfo holds step-one fields. Presence is all that is validated; the
// design performs no format or checksum checks.
type BillingInfo struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required"`
	Phone     string `json:"phone"`
	Address   string `json:"address" validate:"required"`
	City      string `json:"city" validate:"required"`
	State     string `json:"state" validate:"required"`
	ZipCode   string `json:"zip_code" validate:"required"`
	Country   string `json:"country"`
}

// PaymentInfo holds step-two fields
type PaymentInfo struct {
	CardNumber string `json:"card_number" validate:"required"`
	ExpiryDate string `json:"expiry_date" validate:"required"`
	CVV        string `json:"cvv" validate:"required"`
	CardName   string `json:"card_name" validate:"required"`
}

// Result is what a successful submission hands back to the caller
type Result struct {
	Order         *models.CheckoutOrder
	Billing       BillingInfo
	Discount      *models.Discount
	DiscountValue float64
	PayableTotal  float64
	TransactionID string
}

// Flow is one user's trip through the wizard. Forward movement requires the
// current step to validate; Back always succeeds and clamps at billing.
type Flow struct {
	step      Step
	billing   BillingInfo
	payment   PaymentInfo
	discount  *models.Discount
	engine    *cart.Engine
	payments  *payment.Client
	validate  *validator.Validate
	startedAt time.Time
}

// NewFlow starts the wizard. An empty cart refuses entry; the caller should
// redirect to the catalog.
func NewFlow(engine *cart.Engine, payments *payment.Client) (*Flow, error) {
	if _, err := engine.PrepareCheckout(); err != nil {
		return nil, err
	}
	return &Flow{
		step:      StepBilling,
		billing:   BillingInfo{Country: "United States"},
		engine:    engine,
		payments:  payments,
		validate:  validator.New(),
		startedAt: time.Now(),
	}, nil
}

// Step returns the current wizard position
func (f *Flow) Step() Step { return f.step }

// StartedAt reports when the flow was opened
func (f *Flow) StartedAt() time.Time { return f.startedAt }

// SetBilling stores the billing fields without validating them
func (f *Flow) SetBilling(info BillingInfo) {
	if info.Country == "" {
		info.Country = f.billing.Country
	}
	f.billing = info
}

// SetPayment stores the payment fields without validating them
func (f *Flow) SetPayment(info PaymentInfo) {
	f.payment = info
}

// ApplyDiscount attaches a transient discount to this flow
func (f *Flow) ApplyDiscount(code string) (*models.Discount, error) {
	discount, err := f.engine.ApplyDiscount(code)
	if err != nil {
		return nil, err
	}
	f.discount = discount
	return discount, nil
}

// Next advances the wizard when the current step validates, clamping at review
func (f *Flow) Next() error {
	switch f.step {
	case StepBilling:
		if err := f.validate.Struct(f.billing); err != nil {
			return ErrIncompleteStep
		}
	case StepPayment:
		if err := f.validate.Struct(f.payment); err != nil {
			return ErrIncompleteStep
		}
	}
	if f.step < StepReview {
		f.step++
	}
	return nil
}

// Back moves one step backwards, clamping at billing. It never fails.
func (f *Flow) Back() {
	if f.step > StepBilling {
		f.step--
	}
}

// Review summarizes the payable amount with any applied discount
func (f *Flow) Review() (models.CartSummary, float64, float64) {
	summary := f.engine.GetCartSummary()
	discountValue := cart.DiscountAmount(f.discount, summary.Subtotal)
	return summary, discountValue, cart.FinalTotal(summary.Total, discountValue)
}

// Submit charges the payment and clears the cart. Only reachable from the
// review step. The gateway call always succeeds in sandbox mode; a gateway
// error leaves the cart untouched so the user can retry.
func (f *Flow) Submit(ctx context.Context) (*Result, error) {
	if f.step != StepReview {
		return nil, ErrNotAtReview
	}

	order, err := f.engine.PrepareCheckout()
	if err != nil {
		return nil, err
	}
	discountValue := cart.DiscountAmount(f.discount, order.Summary.Subtotal)
	payable := cart.FinalTotal(order.Summary.Total, discountValue)

	charge, err := f.payments.Charge(ctx, payment.ChargeRequest{
		Amount:     payable,
		Currency:   "USD",
		CardNumber: f.payment.CardNumber,
		CardName:   f.payment.CardName,
		ExpiryDate: f.payment.ExpiryDate,
		CVV:        f.payment.CVV,
	})
	if err != nil {
		return nil, err
	}

	f.engine.ClearCart()
	return &Result{
		Order:         order,
		Billing:       f.billing,
		Discount:      f.discount,
		DiscountValue: discountValue,
		PayableTotal:  payable,
		TransactionID: charge.TransactionID,
	}, nil
}
