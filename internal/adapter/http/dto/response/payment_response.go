package response

import (
	"time"

	"marketplace_payments/internal/domain/entities"
)

type CheckoutResponse struct {
	URL       string `json:"url"`
	SessionID string `json:"session_id"`
	PaymentID string `json:"payment_id"`
}

type PaymentResponse struct {
	ID                 string    `json:"id"`
	SessionID          string    `json:"session_id"`
	Provider           string    `json:"provider"`
	MissionID          string    `json:"mission_id"`
	ClientID           string    `json:"client_id"`
	ProID              string    `json:"pro_id"`
	GrossAmount        int64     `json:"gross_amount"`
	PlatformFee        int64     `json:"platform_fee"`
	ProfessionalAmount int64     `json:"professional_amount"`
	Currency           string    `json:"currency"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type WebhookResponse struct {
	Received bool `json:"received"`
}

type ReconcileResponse struct {
	MissionID string   `json:"mission_id"`
	SessionID string   `json:"session_id,omitempty"`
	Repaired  []string `json:"repaired"`
}

type ReconcileSummaryResponse struct {
	Scanned  int      `json:"scanned"`
	Repaired int      `json:"repaired"`
	Skipped  int      `json:"skipped"`
	Failed   []string `json:"failed"`
}

func FromCheckout(url string, p entities.Payment) CheckoutResponse {
	return CheckoutResponse{URL: url, SessionID: p.SessionID, PaymentID: p.ID}
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                 p.ID,
		SessionID:          p.SessionID,
		Provider:           p.Provider,
		MissionID:          p.MissionID,
		ClientID:           p.ClientID,
		ProID:              p.ProID,
		GrossAmount:        p.GrossAmount,
		PlatformFee:        p.PlatformFee,
		ProfessionalAmount: p.ProfessionalAmount(),
		Currency:           p.Currency,
		Status:             string(p.Status),
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

func FromPayments(ps []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromPayment(p))
	}
	return out
}

func FromReconcile(missionID, sessionID string, repaired []string) ReconcileResponse {
	if repaired == nil {
		repaired = []string{}
	}
	return ReconcileResponse{MissionID: missionID, SessionID: sessionID, Repaired: repaired}
}

func FromReconcileSummary(scanned, repaired, skipped int, failed []string) ReconcileSummaryResponse {
	if failed == nil {
		failed = []string{}
	}
	return ReconcileSummaryResponse{Scanned: scanned, Repaired: repaired, Skipped: skipped, Failed: failed}
}
