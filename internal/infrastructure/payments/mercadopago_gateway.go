package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"oficina_xyz/internal/usecase/interfaces"
	"oficina_xyz/pkg/logger"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway captures card payments through the Mercado Pago SDK.
//
// Set PAYMENT_GATEWAY_MOCK=true (or MERCADOPAGO_MOCK=true) to approve every
// charge locally without touching the provider.

type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		logger.Warn().Msg("payment gateway mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		logger.Error().Err(err).Msg("failed creating mercado pago sdk config")
		return nil, err
	}
	logger.Info().Msg("mercado pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, req interfaces.GatewayPaymentRequest) (interfaces.GatewayPaymentResult, error) {
	if g != nil && g.mockMode {
		return g.mockCreate(req)
	}
	if g == nil || g.client == nil {
		return interfaces.GatewayPaymentResult{}, ErrMercadoPagoGatewayNotConfigured
	}

	sdkReq := payment.Request{
		TransactionAmount: req.Amount,
		Token:             req.CardToken,
		Description:       req.Description,
		ExternalReference: req.ReferenceID,
		PaymentMethodID:   req.Method,
		Installments:      1,
	}

	resp, err := g.client.Create(ctx, sdkReq)
	if err != nil {
		logger.Error().Err(err).
			Str("reference_id", req.ReferenceID).
			Msg("mercado pago create payment failed")
		return interfaces.GatewayPaymentResult{}, err
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		return interfaces.GatewayPaymentResult{}, err
	}

	logger.Info().
		Int("provider_payment_id", resp.ID).
		Str("provider_status", resp.Status).
		Str("reference_id", req.ReferenceID).
		Msg("mercado pago payment created")

	return interfaces.GatewayPaymentResult{
		ProviderPaymentID: fmt.Sprintf("%d", resp.ID),
		ProviderStatus:    resp.Status,
		Raw:               raw,
	}, nil
}

func (g *MercadoPagoGateway) mockCreate(req interfaces.GatewayPaymentRequest) (interfaces.GatewayPaymentResult, error) {
	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	now := time.Now().UTC().Format(time.RFC3339Nano)

	raw, err := json.Marshal(map[string]any{
		"id":                 id,
		"status":             "approved",
		"status_detail":      "accredited",
		"transaction_amount": req.Amount,
		"external_reference": req.ReferenceID,
		"date_created":       now,
		"date_approved":      now,
	})
	if err != nil {
		return interfaces.GatewayPaymentResult{}, err
	}

	logger.Info().
		Str("provider_payment_id", id).
		Str("reference_id", req.ReferenceID).
		Msg("mock payment approved")

	return interfaces.GatewayPaymentResult{
		ProviderPaymentID: id,
		ProviderStatus:    "approved",
		Raw:               raw,
	}, nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
