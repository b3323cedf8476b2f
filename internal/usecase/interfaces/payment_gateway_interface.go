package interfaces

import (
	"context"
	"encoding/json"
)

// GatewayPaymentRequest is the provider-agnostic capture request built from an
// order payment.
type GatewayPaymentRequest struct {
	Amount      float64
	Method      string
	CardToken   string
	Description string
	ReferenceID string
}

// GatewayPaymentResult carries the provider outcome plus the raw response body
// for traceability.
type GatewayPaymentResult struct {
	ProviderPaymentID string
	ProviderStatus    string
	Raw               json.RawMessage
}

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, req GatewayPaymentRequest) (GatewayPaymentResult, error)
}
