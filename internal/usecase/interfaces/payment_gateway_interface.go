package interfaces

import (
	"context"
	"marketplace_payments/internal/domain/entities"
)

// IPaymentGateway abstracts the external payment processor (Stripe, Mercado Pago).
//
// CreateCheckout opens a hosted checkout on behalf of the professional's
// payment account. ExpireCheckout closes a checkout that must not be paid, used
// to compensate when the local Payment row could not be written.
type IPaymentGateway interface {
	Provider() string
	CreateCheckout(ctx context.Context, req entities.CheckoutRequest) (entities.CheckoutSession, error)
	ExpireCheckout(ctx context.Context, sessionID string, paymentAccount string) error
}

// IPaymentEventVerifier authenticates a processor delivery and normalizes it.
// Authentication failures wrap ErrSignatureVerification.
type IPaymentEventVerifier interface {
	ParseEvent(ctx context.Context, payload entities.SignedPayload) (entities.PaymentEvent, error)
}
