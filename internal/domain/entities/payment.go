package entities

import "time"

// PaymentStatus represents the outcome of one attempted charge.

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentStatusPaid:     {PaymentStatusPending, PaymentStatusFailed, PaymentStatusPaid},
	PaymentStatusFailed:   {PaymentStatusPending, PaymentStatusFailed},
	PaymentStatusRefunded: {PaymentStatusPaid, PaymentStatusRefunded},
	PaymentStatusPending:  {PaymentStatusPending},
}

// CanTransitionTo reports whether a payment in status s may move to next. A
// completion wins over an earlier expiry, never the opposite.
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	for _, from := range paymentTransitions[next] {
		if from == s {
			return true
		}
	}
	return false
}

// Payment is one checkout attempt persisted by the service.
//
// Storage model (DynamoDB):
//   - PK: session_id (external checkout reference, unique)
//   - GSI mission_id-index: mission_id
//   - GSI status-index: status
//   - GSI payment_intent_id-index: payment_intent_id
//
// Amounts are in minor units. GrossAmount = professional price + PlatformFee.
type Payment struct {
	ID              string        `json:"id"`
	SessionID       string        `json:"session_id"`
	PaymentIntentID string        `json:"payment_intent_id,omitempty"`
	CheckoutURL     string        `json:"checkout_url,omitempty"`
	Provider        string        `json:"provider"`
	MissionID       string        `json:"mission_id"`
	ClientID        string        `json:"client_id"`
	ProID           string        `json:"pro_id"`
	GrossAmount     int64         `json:"gross_amount"`
	PlatformFee     int64         `json:"platform_fee"`
	Currency        string        `json:"currency"`
	Status          PaymentStatus `json:"status"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// ProfessionalAmount is the share routed to the professional.
func (p Payment) ProfessionalAmount() int64 {
	return p.GrossAmount - p.PlatformFee
}
