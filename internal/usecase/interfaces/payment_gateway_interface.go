package interfaces

import (
	"context"
	"encoding/json"
)

// PaymentSession is the provider handle returned when deposit collection is
// initiated. RedirectURL is the customer-facing checkout handle; Raw keeps
// the provider response for traceability.
type PaymentSession struct {
	Reference   string
	RedirectURL string
	Raw         json.RawMessage
}

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// The proposal workflow only initiates collection here; the accepted -> paid
// transition is driven exclusively by the provider's confirmation webhook.
type IPaymentGateway interface {
	CreatePaymentSession(ctx context.Context, proposalID string, amount float64, currency string) (PaymentSession, error)
}
