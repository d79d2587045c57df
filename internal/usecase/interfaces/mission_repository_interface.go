package interfaces

import (
	"context"
	"marketplace_payments/internal/domain/entities"
)

// IMissionRepository abstracts persistence for Mission.
//
// GetByID returns a zero Mission when the id is unknown.
// TransitionStatus applies next (and assigns proID when not empty) only when the
// stored status allows it; applied=false means the row was left untouched and
// the returned Mission is the stored one (zero when absent).

type IMissionRepository interface {
	GetByID(ctx context.Context, id string) (entities.Mission, error)
	TransitionStatus(ctx context.Context, id string, next entities.MissionStatus, proID string) (m entities.Mission, applied bool, err error)
}
