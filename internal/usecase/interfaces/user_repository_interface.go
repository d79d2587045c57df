package interfaces

import (
	"context"
	"marketplace_payments/internal/domain/entities"
)

type IUserRepository interface {
	GetByID(ctx context.Context, id string) (entities.User, error)
}
