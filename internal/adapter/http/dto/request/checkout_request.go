package request

import "strings"

// CheckoutRequest starts a hosted checkout for a mission.
type CheckoutRequest struct {
	MissionID string `json:"mission_id" binding:"required"`
	ClientID  string `json:"client_id" binding:"required"`
}

func (r CheckoutRequest) Normalize() CheckoutRequest {
	return CheckoutRequest{
		MissionID: strings.TrimSpace(r.MissionID),
		ClientID:  strings.TrimSpace(r.ClientID),
	}
}
