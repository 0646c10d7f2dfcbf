// Package payment wraps the sandbox payment gateway. Without a configured
// gateway URL the client simulates a charge: fixed delay, always approved.
package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// Charge statuses
const (
	StatusSucceeded = "SUCCEEDED"
)

// Config carries gateway credentials. An empty BaseURL enables sandbox mode.
type Config struct {
	BaseURL    string
	ApiKey     string
	SecretKey  string
	ApiVersion string
	Delay      time.Duration
}

// ChargeRequest describes one payment attempt
type ChargeRequest struct {
	OrderNumber string  `json:"order_number"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	CardNumber  string  `json:"card_number"`
	CardName    string  `json:"card_name"`
	ExpiryDate  string  `json:"expiry_date"`
	CVV         string  `json:"cvv"`
}

// ChargeResult is the gateway's answer
type ChargeResult struct {
	TransactionID string `json:"transaction_id"`
	Status        string `json:"status"`
}

// Client talks to the payment gateway
type Client struct {
	http *resty.Client
	cfg  Config
}

func NewClient(cfg Config) *Client {
	return &Client{
		http: resty.New(),
		cfg:  cfg,
	}
}

// Charge submits a payment. Sandbox mode waits out the configured delay and
// approves unconditionally; there is no declined-card path in this design.
func (c *Client) Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error) {
	if c.cfg.BaseURL == "" {
		return c.simulate(ctx)
	}

	var result ChargeResult
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Authorization", c.cfg.ApiKey).
		SetHeader("X-Api-Secret", c.cfg.SecretKey).
		SetHeader("X-Api-Version", c.cfg.ApiVersion).
		SetBody(req).
		SetResult(&result).
		Post(c.cfg.BaseURL + "charges")
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("payment gateway returned %d", resp.StatusCode())
	}
	return &result, nil
}

func (c *Client) simulate(ctx context.Context) (*ChargeResult, error) {
	if c.cfg.Delay > 0 {
		timer := time.NewTimer(c.cfg.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
	return &ChargeResult{
		TransactionID: uuid.NewString(),
		Status:        StatusSucceeded,
	}, nil
}
