// Package gateway is the opaque payment boundary. A charge is a single
// bounded external call that either succeeds with a receipt or fails; the
// caller persists nothing before the outcome is known.
package gateway

import (
	"context"

	"github.com/herculesarena/turfbooking/config"
)

//go:generate go run go.uber.org/mock/mockgen -source=gateway.go -destination=mock/gateway.go -package=mock github.com/herculesarena/turfbooking/internal/domains/payments/gateway Gateway

type Charge struct {
	OrderID     string
	Amount      float64
	PayerName   string
	PayerPhone  string
	Description string
}

type Receipt struct {
	TransactionID string
	PaymentURL    string
}

type Gateway interface {
	Charge(ctx context.Context, req Charge) (Receipt, error)
}

// New selects the configured driver, defaulting to the simulated one.
func New(cfg *config.Config) Gateway {
	if cfg.Payment.Driver == "xendit" {
		return NewXendit(cfg.Payment.XenditAPIKey)
	}

	return NewSimulated(cfg.Payment.ProcessingMs)
}
