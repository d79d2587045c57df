package interfaces

import (
	"context"
	"marketplace_payments/internal/domain/entities"
)

// IPaymentRepository abstracts persistence for Payment, keyed by the external
// checkout session reference.
//
// Create fails with ErrAlreadyExists when the session reference is taken.
// TransitionStatus applies next only when entities.PaymentStatus.CanTransitionTo
// allows it from the stored status, re-checking after every lost concurrent
// write; paymentIntentID is recorded when not empty. applied is false when
// nothing was written.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetBySessionID(ctx context.Context, sessionID string) (entities.Payment, error)
	GetByPaymentIntentID(ctx context.Context, paymentIntentID string) (entities.Payment, error)
	ListByMissionID(ctx context.Context, missionID string) ([]entities.Payment, error)
	ListByStatus(ctx context.Context, status entities.PaymentStatus) ([]entities.Payment, error)
	TransitionStatus(ctx context.Context, sessionID string, next entities.PaymentStatus, paymentIntentID string) (p entities.Payment, applied bool, err error)
}
