package interfaces

import (
	"context"
	"marketplace_payments/internal/domain/entities"
)

// IBookingRepository abstracts persistence for the Booking mirror of a Mission.

type IBookingRepository interface {
	GetByID(ctx context.Context, id string) (entities.Booking, error)
	TransitionStatus(ctx context.Context, id string, next entities.MissionStatus, proID string) (b entities.Booking, applied bool, err error)
}
