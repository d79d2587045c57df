package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// MissionStatus represents the lifecycle of a requested service.
//
// Domain notes:
//   - Status moves forward only: pending -> proposed -> confirmed -> completed.
//   - cancelled is reachable from any non-terminal status.
//   - completed and cancelled are terminal.

type MissionStatus string

const (
	MissionStatusPending   MissionStatus = "pending"
	MissionStatusProposed  MissionStatus = "proposed"
	MissionStatusConfirmed MissionStatus = "confirmed"
	MissionStatusCompleted MissionStatus = "completed"
	MissionStatusCancelled MissionStatus = "cancelled"
)

var missionStatusRank = map[MissionStatus]int{
	MissionStatusPending:   0,
	MissionStatusProposed:  1,
	MissionStatusConfirmed: 2,
	MissionStatusCompleted: 3,
}

func (s MissionStatus) Valid() bool {
	if s == MissionStatusCancelled {
		return true
	}
	_, ok := missionStatusRank[s]
	return ok
}

func (s MissionStatus) Terminal() bool {
	return s == MissionStatusCompleted || s == MissionStatusCancelled
}

// CanTransitionTo reports whether a mission in status s may move to next.
// Re-applying the current status is allowed and is a no-op for callers.
func (s MissionStatus) CanTransitionTo(next MissionStatus) bool {
	if s == next {
		return true
	}
	if s.Terminal() {
		return false
	}
	if next == MissionStatusCancelled {
		return true
	}
	from, ok := missionStatusRank[s]
	if !ok {
		return false
	}
	to, ok := missionStatusRank[next]
	if !ok {
		return false
	}
	return to > from
}

// Mission is a requested service instance between a client and a professional.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary representation:
//   - Price is expressed in the major currency unit (e.g. 50.00 EUR).
//   - ProID stays empty until a professional is assigned.
type Mission struct {
	ID          string          `json:"id"`
	ClientID    string          `json:"client_id"`
	ProID       string          `json:"pro_id,omitempty"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Status      MissionStatus   `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Payable reports whether the mission may still be paid for.
func (m Mission) Payable() bool {
	return m.Status == MissionStatusPending || m.Status == MissionStatusProposed
}

// MissionTransitionNeeded reports whether moving a mission (or its booking) from
// current to next changes anything and is allowed. proID is assigned only when
// the status moves or no professional was recorded yet.
func MissionTransitionNeeded(current MissionStatus, currentPro string, next MissionStatus, proID string) bool {
	if !current.CanTransitionTo(next) {
		return false
	}
	return current != next || (proID != "" && currentPro == "")
}
