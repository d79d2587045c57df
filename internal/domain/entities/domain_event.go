package entities

import "time"

// Routing keys of the domain events announced after ledger changes.
const (
	RoutingKeyMissionConfirmed = "mission.confirmed"
	RoutingKeyPaymentFailed    = "payment.failed"
	RoutingKeyPaymentRefunded  = "payment.refunded"
	RoutingKeyPaymentAnomaly   = "payment.anomaly"
)

// Reasons carried by a PaymentAnomalyEvent.
const (
	AnomalyDuplicatePayment = "duplicate_payment"
	AnomalyMissionCancelled = "mission_cancelled"
	AnomalyMissionNotFound  = "mission_not_found"
)

// MissionConfirmedEvent is published once a payment confirms a mission.
type MissionConfirmedEvent struct {
	MissionID  string    `json:"mission_id"`
	ProID      string    `json:"pro_id"`
	ClientID   string    `json:"client_id"`
	SessionID  string    `json:"session_id"`
	ChatID     string    `json:"chat_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// PaymentStatusChangedEvent is published when a payment fails or is refunded.
type PaymentStatusChangedEvent struct {
	PaymentID  string        `json:"payment_id"`
	SessionID  string        `json:"session_id"`
	MissionID  string        `json:"mission_id"`
	Status     PaymentStatus `json:"status"`
	OccurredAt time.Time     `json:"occurred_at"`
}

// PaymentAnomalyEvent is published when money was captured for a mission that
// cannot take it. Operators settle these by hand, usually with a refund.
type PaymentAnomalyEvent struct {
	Reason        string        `json:"reason"`
	PaymentID     string        `json:"payment_id"`
	SessionID     string        `json:"session_id"`
	MissionID     string        `json:"mission_id"`
	MissionStatus MissionStatus `json:"mission_status,omitempty"`
	OtherSessions []string      `json:"other_sessions,omitempty"`
	OccurredAt    time.Time     `json:"occurred_at"`
}
