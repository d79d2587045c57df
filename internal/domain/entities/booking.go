package entities

import "time"

// Booking is the client-facing mirror of a Mission.
//
// Mission is the canonical entity. A booking shares the mission id and is only
// ever written after its mission, so it can always be re-derived from it.
type Booking struct {
	ID        string        `json:"id"`
	ClientID  string        `json:"client_id"`
	ProID     string        `json:"pro_id,omitempty"`
	Status    MissionStatus `json:"status"`
	UpdatedAt time.Time     `json:"updated_at"`
}
