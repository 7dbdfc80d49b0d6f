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

	"github.com/CVO-TreeAi/treeshop-production-sub002/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	log "github.com/sirupsen/logrus"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway initiates deposit collection for accepted proposals.
//
// The proposal id rides as external_reference so the confirmation webhook can
// be reconciled back to the proposal.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) CreatePaymentSession(ctx context.Context, proposalID string, amount float64, currency string) (interfaces.PaymentSession, error) {
	if g != nil && g.mockMode {
		return g.mockSession(proposalID, amount)
	}
	if g == nil || g.client == nil {
		return interfaces.PaymentSession{}, ErrMercadoPagoGatewayNotConfigured
	}

	payload := map[string]any{
		"transaction_amount": amount,
		"description":        fmt.Sprintf("Proposal %s deposit", proposalID),
		"external_reference": proposalID,
		"payment_method_id":  getenvDefault("MERCADOPAGO_PAYMENT_METHOD", "pix"),
	}
	if email := strings.TrimSpace(os.Getenv("MERCADOPAGO_PAYER_EMAIL")); email != "" {
		payload["payer"] = map[string]any{"email": email}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return interfaces.PaymentSession{}, err
	}
	var req payment.Request
	if err := json.Unmarshal(body, &req); err != nil {
		log.Printf("[payment][gateway] payload unmarshal failed proposal_id=%s err=%v", proposalID, err)
		return interfaces.PaymentSession{}, err
	}

	log.Printf("[payment][gateway] create start proposal_id=%s amount=%.2f currency=%s", proposalID, amount, currency)
	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed proposal_id=%s err=%v", proposalID, err)
		return interfaces.PaymentSession{}, err
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		return interfaces.PaymentSession{}, err
	}

	session := interfaces.PaymentSession{
		Reference:   fmt.Sprintf("%d", resp.ID),
		RedirectURL: extractRedirectHandle(raw),
		Raw:         raw,
	}
	log.Printf("[payment][gateway] create success proposal_id=%s provider_payment_id=%s provider_status=%s", proposalID, session.Reference, resp.Status)
	return session, nil
}

func (g *MercadoPagoGateway) mockSession(proposalID string, amount float64) (interfaces.PaymentSession, error) {
	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	now := time.Now().UTC().Format(time.RFC3339Nano)
	resp := map[string]any{
		"id":                 id,
		"status":             "pending",
		"external_reference": proposalID,
		"transaction_amount": amount,
		"date_created":       now,
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		return interfaces.PaymentSession{}, err
	}
	log.Printf("[payment][gateway] mock session created proposal_id=%s provider_payment_id=%s", proposalID, id)
	return interfaces.PaymentSession{
		Reference:   id,
		RedirectURL: "https://checkout.example.test/session/" + id,
		Raw:         raw,
	}, nil
}

// extractRedirectHandle digs the customer-facing checkout handle out of the
// provider response without depending on the SDK's nested response types.
func extractRedirectHandle(raw json.RawMessage) string {
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return ""
	}
	poi, ok := m["point_of_interaction"].(map[string]any)
	if !ok {
		return ""
	}
	txData, ok := poi["transaction_data"].(map[string]any)
	if !ok {
		return ""
	}
	if u, ok := txData["ticket_url"].(string); ok {
		return u
	}
	return ""
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
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
