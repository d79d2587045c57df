package entities

// PaymentEventType is the provider-independent kind of a processor event.

type PaymentEventType string

const (
	PaymentEventCheckoutCompleted PaymentEventType = "checkout_completed"
	PaymentEventCheckoutExpired   PaymentEventType = "checkout_expired"
	PaymentEventPaymentRefunded   PaymentEventType = "payment_refunded"
	PaymentEventOther             PaymentEventType = "other"
)

// PaymentEvent is a verified processor event, normalized by the payment gateway.
//
// SessionID matches Payment.SessionID. Metadata ids are copied from what the
// checkout builder attached when the session was created and may be empty if
// the event was not produced by this service.
type PaymentEvent struct {
	ID              string           `json:"id"`
	Type            PaymentEventType `json:"type"`
	RawType         string           `json:"raw_type"`
	Provider        string           `json:"provider"`
	SessionID       string           `json:"session_id,omitempty"`
	PaymentIntentID string           `json:"payment_intent_id,omitempty"`
	MissionID       string           `json:"mission_id,omitempty"`
	ProID           string           `json:"pro_id,omitempty"`
	ClientID        string           `json:"client_id,omitempty"`
	AmountTotal     int64            `json:"amount_total,omitempty"`
	PlatformFee     int64            `json:"platform_fee,omitempty"`
	Currency        string           `json:"currency,omitempty"`
	// Unsettled is true when a completed checkout still waits for the funds
	// (asynchronous payment methods). Such events are acknowledged and ignored.
	Unsettled bool `json:"unsettled,omitempty"`
}

// SignedPayload is an inbound processor delivery before verification.
type SignedPayload struct {
	Body      []byte
	Signature string
	RequestID string
}

// CheckoutSession is what the processor returns for a created checkout.
type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// CheckoutRequest describes the checkout the builder asks the processor for.
type CheckoutRequest struct {
	MissionID      string
	ClientID       string
	ProID          string
	Description    string
	Currency       string
	Charge         Charge
	PaymentAccount string
}
