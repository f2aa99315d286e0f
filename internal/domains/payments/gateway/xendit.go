package gateway

import (
	"context"
	"fmt"

	x "github.com/xendit/xendit-go/v7"
	"github.com/xendit/xendit-go/v7/invoice"
)

// Xendit charges by creating a hosted invoice; the receipt carries the
// invoice URL the customer completes payment on.
type Xendit struct {
	client *x.APIClient
}

var _ Gateway = (*Xendit)(nil)

func NewXendit(apiKey string) *Xendit {
	return &Xendit{client: x.NewClient(apiKey)}
}

func (g *Xendit) Charge(ctx context.Context, req Charge) (Receipt, error) {
	createInvoice := *invoice.NewCreateInvoiceRequest(req.OrderID, req.Amount)
	if req.Description != "" {
		createInvoice.SetDescription(req.Description)
	}

	result, _, xerr := g.client.InvoiceApi.CreateInvoice(ctx).CreateInvoiceRequest(createInvoice).Execute()
	if xerr != nil {
		return Receipt{}, fmt.Errorf("xendit: create invoice failed: %w", xerr)
	}

	if result.Id == nil {
		return Receipt{}, fmt.Errorf("xendit: invoice %s has no id", req.OrderID)
	}

	return Receipt{
		TransactionID: *result.Id,
		PaymentURL:    result.InvoiceUrl,
	}, nil
}
