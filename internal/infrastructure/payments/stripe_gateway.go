package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"marketplace_payments/internal/domain/entities"
	"marketplace_payments/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v83"
	"github.com/stripe/stripe-go/v83/webhook"
)

const ProviderStripe = "stripe"

// Metadata keys attached to every checkout and read back from events.
const (
	metadataMissionID   = "mission_id"
	metadataProID       = "pro_id"
	metadataClientID    = "client_id"
	metadataPlatformFee = "platform_fee"
)

var ErrMissingStripeSecretKey = errors.New("missing STRIPE_SECRET_KEY")
var ErrMissingStripeWebhookSecret = errors.New("missing STRIPE_WEBHOOK_SECRET")

type StripeOptions struct {
	SecretKey     string
	WebhookSecret string
	SuccessURL    string
	CancelURL     string
	// BackendURL overrides the API base URL (stripe-mock, tests).
	BackendURL string
	HTTPClient *http.Client
	MockMode   bool
}

// StripeGateway opens Checkout Sessions as destination charges: the client pays
// the gross amount, the platform keeps application_fee_amount and the rest is
// transferred to the professional's connected account.
type StripeGateway struct {
	client        *stripe.Client
	webhookSecret string
	successURL    string
	cancelURL     string
	mockMode      bool
}

var (
	_ interfaces.IPaymentGateway       = (*StripeGateway)(nil)
	_ interfaces.IPaymentEventVerifier = (*StripeGateway)(nil)
)

func NewStripeGateway(opts StripeOptions) (*StripeGateway, error) {
	g := &StripeGateway{
		webhookSecret: opts.WebhookSecret,
		successURL:    opts.SuccessURL,
		cancelURL:     opts.CancelURL,
	}
	if opts.MockMode {
		log.Printf("[payment][stripe] mock mode enabled")
		g.mockMode = true
		return g, nil
	}
	if opts.SecretKey == "" {
		log.Printf("[payment][stripe] missing STRIPE_SECRET_KEY")
		return nil, ErrMissingStripeSecretKey
	}
	if opts.WebhookSecret == "" {
		log.Printf("[payment][stripe] missing STRIPE_WEBHOOK_SECRET")
		return nil, ErrMissingStripeWebhookSecret
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	backendCfg := &stripe.BackendConfig{HTTPClient: httpClient}
	if opts.BackendURL != "" {
		backendCfg.URL = stripe.String(opts.BackendURL)
	}
	g.client = stripe.NewClient(opts.SecretKey, stripe.WithBackends(stripe.NewBackendsWithConfig(backendCfg)))
	log.Printf("[payment][stripe] client initialized")
	return g, nil
}

func (g *StripeGateway) Provider() string { return ProviderStripe }

func (g *StripeGateway) CreateCheckout(ctx context.Context, req entities.CheckoutRequest) (entities.CheckoutSession, error) {
	if g.mockMode {
		id := "cs_mock_" + uuid.NewString()
		log.Printf("[payment][stripe] mock checkout created session_id=%s mission_id=%s", id, req.MissionID)
		return entities.CheckoutSession{ID: id, URL: "https://checkout.stripe.test/pay/" + id}, nil
	}
	log.Printf("[payment][stripe] create checkout start mission_id=%s gross=%d fee=%d", req.MissionID, req.Charge.Gross, req.Charge.Fee)

	metadata := map[string]string{
		metadataMissionID:   req.MissionID,
		metadataProID:       req.ProID,
		metadataClientID:    req.ClientID,
		metadataPlatformFee: strconv.FormatInt(req.Charge.Fee, 10),
	}
	params := &stripe.CheckoutSessionCreateParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:        stripe.String(g.successURL),
		CancelURL:         stripe.String(g.cancelURL),
		ClientReferenceID: stripe.String(req.MissionID),
		LineItems: []*stripe.CheckoutSessionCreateLineItemParams{{
			Quantity: stripe.Int64(1),
			PriceData: &stripe.CheckoutSessionCreateLineItemPriceDataParams{
				Currency:   stripe.String(req.Currency),
				UnitAmount: stripe.Int64(req.Charge.Gross),
				ProductData: &stripe.CheckoutSessionCreateLineItemPriceDataProductDataParams{
					Name: stripe.String(productName(req.Description)),
				},
			},
		}},
		PaymentIntentData: &stripe.CheckoutSessionCreatePaymentIntentDataParams{
			ApplicationFeeAmount: stripe.Int64(req.Charge.Fee),
			TransferData: &stripe.CheckoutSessionCreatePaymentIntentDataTransferDataParams{
				Destination: stripe.String(req.PaymentAccount),
			},
			Metadata: metadata,
		},
		Metadata: metadata,
	}

	s, err := g.client.V1CheckoutSessions.Create(ctx, params)
	if err != nil {
		log.Printf("[payment][stripe] create checkout failed mission_id=%s err=%v", req.MissionID, err)
		return entities.CheckoutSession{}, err
	}
	log.Printf("[payment][stripe] create checkout success mission_id=%s session_id=%s", req.MissionID, s.ID)
	return entities.CheckoutSession{ID: s.ID, URL: s.URL}, nil
}

// ExpireCheckout closes an open session. Destination charges live on the
// platform account, so paymentAccount is not needed here.
func (g *StripeGateway) ExpireCheckout(ctx context.Context, sessionID string, _ string) error {
	if g.mockMode {
		log.Printf("[payment][stripe] mock checkout expired session_id=%s", sessionID)
		return nil
	}
	if _, err := g.client.V1CheckoutSessions.Expire(ctx, sessionID, &stripe.CheckoutSessionExpireParams{}); err != nil {
		log.Printf("[payment][stripe] expire checkout failed session_id=%s err=%v", sessionID, err)
		return err
	}
	return nil
}

// ParseEvent verifies the Stripe-Signature header and normalizes the event.
func (g *StripeGateway) ParseEvent(_ context.Context, payload entities.SignedPayload) (entities.PaymentEvent, error) {
	if g.webhookSecret == "" {
		log.Printf("[payment][stripe] webhook rejected; STRIPE_WEBHOOK_SECRET not configured")
		return entities.PaymentEvent{}, fmt.Errorf("%w: %w", interfaces.ErrSignatureVerification, ErrMissingStripeWebhookSecret)
	}
	if err := webhook.ValidatePayload(payload.Body, payload.Signature, g.webhookSecret); err != nil {
		return entities.PaymentEvent{}, fmt.Errorf("%w: %v", interfaces.ErrSignatureVerification, err)
	}
	event, err := webhook.ConstructEventWithOptions(payload.Body, payload.Signature, g.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return entities.PaymentEvent{}, fmt.Errorf("%w: %v", interfaces.ErrMalformedPayload, err)
	}
	return normalizeStripeEvent(event)
}

func normalizeStripeEvent(event stripe.Event) (entities.PaymentEvent, error) {
	ev := entities.PaymentEvent{
		ID:       event.ID,
		RawType:  string(event.Type),
		Provider: ProviderStripe,
		Type:     entities.PaymentEventOther,
	}
	if event.Data == nil {
		return ev, nil
	}

	switch ev.RawType {
	case "checkout.session.completed", "checkout.session.async_payment_succeeded":
		ev.Type = entities.PaymentEventCheckoutCompleted
	case "checkout.session.expired", "checkout.session.async_payment_failed":
		ev.Type = entities.PaymentEventCheckoutExpired
	case "charge.refunded":
		ev.Type = entities.PaymentEventPaymentRefunded
		var ch stripe.Charge
		if err := json.Unmarshal(event.Data.Raw, &ch); err != nil {
			return entities.PaymentEvent{}, fmt.Errorf("%w: %v", interfaces.ErrMalformedPayload, err)
		}
		if ch.PaymentIntent != nil {
			ev.PaymentIntentID = ch.PaymentIntent.ID
		}
		if !ch.Refunded {
			// Partial refunds keep the payment paid.
			ev.Type = entities.PaymentEventOther
		}
		return ev, nil
	default:
		return ev, nil
	}

	var s stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &s); err != nil {
		return entities.PaymentEvent{}, fmt.Errorf("%w: %v", interfaces.ErrMalformedPayload, err)
	}
	ev.SessionID = s.ID
	if s.PaymentIntent != nil {
		ev.PaymentIntentID = s.PaymentIntent.ID
	}
	ev.MissionID = s.Metadata[metadataMissionID]
	ev.ProID = s.Metadata[metadataProID]
	ev.ClientID = s.Metadata[metadataClientID]
	ev.PlatformFee, _ = strconv.ParseInt(s.Metadata[metadataPlatformFee], 10, 64)
	ev.AmountTotal = s.AmountTotal
	ev.Currency = string(s.Currency)
	if ev.Type == entities.PaymentEventCheckoutCompleted && s.PaymentStatus == stripe.CheckoutSessionPaymentStatusUnpaid {
		ev.Unsettled = true
	}
	return ev, nil
}

func productName(description string) string {
	if description == "" {
		return "Mission"
	}
	r := []rune(description)
	if len(r) > 250 {
		return string(r[:250])
	}
	return description
}
