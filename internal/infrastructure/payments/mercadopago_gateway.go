package payments

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"marketplace_payments/internal/domain/entities"
	"marketplace_payments/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"github.com/shopspring/decimal"
)

const ProviderMercadoPago = "mercadopago"

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMissingMercadoPagoWebhookSecret = errors.New("missing MERCADOPAGO_WEBHOOK_SECRET")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
var ErrPreferenceExpiryUnsupported = errors.New("mercado pago preferences cannot be expired by reference")

// preferenceLifetime bounds how long an unpaid preference stays payable.
const preferenceLifetime = 24 * time.Hour

type mpPreferences interface {
	Create(ctx context.Context, request preference.Request) (*preference.Response, error)
}

type mpPayments interface {
	Get(ctx context.Context, id int) (*payment.Response, error)
}

type MercadoPagoOptions struct {
	AccessToken     string
	WebhookSecret   string
	SuccessURL      string
	CancelURL       string
	NotificationURL string
	MockMode        bool
}

// MercadoPagoGateway opens Checkout Pro preferences on the seller's account with
// a marketplace_fee for the platform.
//
// The professional's payment account is the seller access token obtained
// through the marketplace OAuth flow. Notifications are looked up with the
// platform token.
type MercadoPagoGateway struct {
	payments      mpPayments
	preferencesOf func(sellerToken string) (mpPreferences, error)
	webhookSecret string
	successURL    string
	cancelURL     string
	notifyURL     string
	mockMode      bool
}

var (
	_ interfaces.IPaymentGateway       = (*MercadoPagoGateway)(nil)
	_ interfaces.IPaymentEventVerifier = (*MercadoPagoGateway)(nil)
)

func NewMercadoPagoGateway(opts MercadoPagoOptions) (*MercadoPagoGateway, error) {
	g := &MercadoPagoGateway{
		webhookSecret: opts.WebhookSecret,
		successURL:    opts.SuccessURL,
		cancelURL:     opts.CancelURL,
		notifyURL:     opts.NotificationURL,
	}
	if opts.MockMode {
		log.Printf("[payment][mercadopago] mock mode enabled")
		g.mockMode = true
		return g, nil
	}

	if opts.AccessToken == "" {
		log.Printf("[payment][mercadopago] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}
	if opts.WebhookSecret == "" {
		log.Printf("[payment][mercadopago] missing MERCADOPAGO_WEBHOOK_SECRET")
		return nil, ErrMissingMercadoPagoWebhookSecret
	}

	cfg, err := config.New(opts.AccessToken)
	if err != nil {
		log.Printf("[payment][mercadopago] failed creating sdk config err=%v", err)
		return nil, err
	}
	g.payments = payment.NewClient(cfg)
	g.preferencesOf = func(sellerToken string) (mpPreferences, error) {
		sellerCfg, err := config.New(sellerToken)
		if err != nil {
			return nil, err
		}
		return preference.NewClient(sellerCfg), nil
	}
	log.Printf("[payment][mercadopago] client initialized")
	return g, nil
}

func (g *MercadoPagoGateway) Provider() string { return ProviderMercadoPago }

func (g *MercadoPagoGateway) CreateCheckout(ctx context.Context, req entities.CheckoutRequest) (entities.CheckoutSession, error) {
	reference := uuid.NewString()
	if g.mockMode {
		log.Printf("[payment][mercadopago] mock preference created reference=%s mission_id=%s", reference, req.MissionID)
		return entities.CheckoutSession{ID: reference, URL: "https://www.mercadopago.test/checkout?pref_id=" + reference}, nil
	}
	if g.preferencesOf == nil {
		return entities.CheckoutSession{}, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[payment][mercadopago] create preference start mission_id=%s reference=%s gross=%d fee=%d", req.MissionID, reference, req.Charge.Gross, req.Charge.Fee)

	prefs, err := g.preferencesOf(req.PaymentAccount)
	if err != nil {
		log.Printf("[payment][mercadopago] seller config failed mission_id=%s err=%v", req.MissionID, err)
		return entities.CheckoutSession{}, err
	}

	expiresAt := time.Now().UTC().Add(preferenceLifetime)
	resp, err := prefs.Create(ctx, preference.Request{
		Items: []preference.ItemRequest{{
			ID:         req.MissionID,
			Title:      productName(req.Description),
			Quantity:   1,
			UnitPrice:  minorToFloat(req.Charge.Gross),
			CurrencyID: strings.ToUpper(req.Currency),
		}},
		MarketplaceFee:    minorToFloat(req.Charge.Fee),
		ExternalReference: reference,
		NotificationURL:   g.notifyURL,
		Expires:           true,
		ExpirationDateTo:  &expiresAt,
		BackURLs: &preference.BackURLsRequest{
			Success: g.successURL,
			Failure: g.cancelURL,
			Pending: g.successURL,
		},
		Metadata: map[string]any{
			metadataMissionID:   req.MissionID,
			metadataProID:       req.ProID,
			metadataClientID:    req.ClientID,
			metadataPlatformFee: strconv.FormatInt(req.Charge.Fee, 10),
		},
	})
	if err != nil {
		log.Printf("[payment][mercadopago] sdk create preference failed mission_id=%s err=%v", req.MissionID, err)
		return entities.CheckoutSession{}, err
	}
	log.Printf("[payment][mercadopago] create preference success mission_id=%s preference_id=%s reference=%s", req.MissionID, resp.ID, reference)

	return entities.CheckoutSession{ID: reference, URL: resp.InitPoint}, nil
}

// ExpireCheckout cannot close a preference addressed by its external reference.
// The preference lapses after preferenceLifetime, and a payment made before that
// is still recorded from its notification.
func (g *MercadoPagoGateway) ExpireCheckout(_ context.Context, sessionID string, _ string) error {
	if g.mockMode {
		log.Printf("[payment][mercadopago] mock preference expired reference=%s", sessionID)
		return nil
	}
	log.Printf("[payment][mercadopago] preference left to lapse reference=%s", sessionID)
	return ErrPreferenceExpiryUnsupported
}

type mpNotification struct {
	ID     json.Number `json:"id"`
	Type   string      `json:"type"`
	Action string      `json:"action"`
	Data   struct {
		ID string `json:"id"`
	} `json:"data"`
}

// ParseEvent verifies the x-signature header of a notification and resolves the
// payment it points to.
func (g *MercadoPagoGateway) ParseEvent(ctx context.Context, payload entities.SignedPayload) (entities.PaymentEvent, error) {
	if g.webhookSecret == "" {
		log.Printf("[payment][mercadopago] notification rejected; MERCADOPAGO_WEBHOOK_SECRET not configured")
		return entities.PaymentEvent{}, fmt.Errorf("%w: %w", interfaces.ErrSignatureVerification, ErrMissingMercadoPagoWebhookSecret)
	}

	var n mpNotification
	if err := json.Unmarshal(payload.Body, &n); err != nil {
		// The manifest cannot be rebuilt without data.id, so nothing was authenticated.
		return entities.PaymentEvent{}, fmt.Errorf("%w: unreadable notification: %v", interfaces.ErrSignatureVerification, err)
	}
	if err := verifyMercadoPagoSignature(payload.Signature, payload.RequestID, n.Data.ID, g.webhookSecret); err != nil {
		return entities.PaymentEvent{}, fmt.Errorf("%w: %v", interfaces.ErrSignatureVerification, err)
	}

	ev := entities.PaymentEvent{
		ID:       n.Type + ":" + n.Data.ID,
		RawType:  n.Type,
		Provider: ProviderMercadoPago,
		Type:     entities.PaymentEventOther,
	}
	if n.Type != "payment" || n.Data.ID == "" {
		return ev, nil
	}

	p, err := g.lookupPayment(ctx, payload.Body, n.Data.ID)
	if err != nil {
		return entities.PaymentEvent{}, err
	}
	return normalizeMercadoPagoPayment(ev, p), nil
}

func (g *MercadoPagoGateway) lookupPayment(ctx context.Context, body []byte, dataID string) (*payment.Response, error) {
	if g.mockMode {
		// Mock notifications carry the payment inline under data.
		var inline struct {
			Data struct {
				Status            string         `json:"status"`
				ExternalReference string         `json:"external_reference"`
				TransactionAmount float64        `json:"transaction_amount"`
				CurrencyID        string         `json:"currency_id"`
				Metadata          map[string]any `json:"metadata"`
			} `json:"data"`
		}
		if err := json.Unmarshal(body, &inline); err != nil {
			return nil, fmt.Errorf("%w: %v", interfaces.ErrMalformedPayload, err)
		}
		id, _ := strconv.Atoi(dataID)
		return &payment.Response{
			ID:                id,
			Status:            inline.Data.Status,
			ExternalReference: inline.Data.ExternalReference,
			TransactionAmount: inline.Data.TransactionAmount,
			CurrencyID:        inline.Data.CurrencyID,
			Metadata:          inline.Data.Metadata,
		}, nil
	}
	if g.payments == nil {
		return nil, ErrMercadoPagoGatewayNotConfigured
	}
	id, err := strconv.Atoi(dataID)
	if err != nil {
		return nil, fmt.Errorf("%w: payment id %q", interfaces.ErrMalformedPayload, dataID)
	}
	p, err := g.payments.Get(ctx, id)
	if err != nil {
		log.Printf("[payment][mercadopago] sdk get payment failed payment_id=%d err=%v", id, err)
		return nil, err
	}
	return p, nil
}

func normalizeMercadoPagoPayment(ev entities.PaymentEvent, p *payment.Response) entities.PaymentEvent {
	// Every status change is its own event; redeliveries of the same status collapse.
	ev.ID = fmt.Sprintf("payment:%d:%s", p.ID, p.Status)
	ev.RawType = "payment." + p.Status
	ev.SessionID = p.ExternalReference
	ev.PaymentIntentID = strconv.Itoa(p.ID)
	ev.MissionID = metadataString(p.Metadata, metadataMissionID)
	ev.ProID = metadataString(p.Metadata, metadataProID)
	ev.ClientID = metadataString(p.Metadata, metadataClientID)
	ev.PlatformFee, _ = strconv.ParseInt(metadataString(p.Metadata, metadataPlatformFee), 10, 64)
	ev.AmountTotal = decimal.NewFromFloat(p.TransactionAmount).Shift(2).Round(0).IntPart()
	ev.Currency = strings.ToLower(p.CurrencyID)

	switch p.Status {
	case "approved":
		ev.Type = entities.PaymentEventCheckoutCompleted
	case "rejected", "cancelled":
		ev.Type = entities.PaymentEventCheckoutExpired
	case "refunded", "charged_back":
		ev.Type = entities.PaymentEventPaymentRefunded
	default:
		ev.Type = entities.PaymentEventOther
	}
	return ev
}

// verifyMercadoPagoSignature checks "ts=<unix>,v1=<hex>" against the manifest
// "id:<data.id>;request-id:<x-request-id>;ts:<ts>;".
func verifyMercadoPagoSignature(header, requestID, dataID, secret string) error {
	var ts, v1 string
	for _, part := range strings.Split(header, ",") {
		k, v, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch k {
		case "ts":
			ts = v
		case "v1":
			v1 = v
		}
	}
	if ts == "" || v1 == "" {
		return errors.New("malformed x-signature header")
	}

	var manifest strings.Builder
	if dataID != "" {
		manifest.WriteString("id:" + strings.ToLower(dataID) + ";")
	}
	if requestID != "" {
		manifest.WriteString("request-id:" + requestID + ";")
	}
	manifest.WriteString("ts:" + ts + ";")

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(manifest.String()))
	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(strings.ToLower(v1))) {
		return errors.New("signature mismatch")
	}
	return nil
}

func metadataString(m map[string]any, key string) string {
	switch v := m[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

func minorToFloat(amount int64) float64 {
	f, _ := entities.MinorToMajor(amount).Float64()
	return f
}
