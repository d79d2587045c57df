package repository

import (
	"context"

	"marketplace_payments/internal/domain/entities"
	"marketplace_payments/internal/usecase/interfaces"
)

const DefaultUsersTableName = "users"

type userItem struct {
	ID              string            `dynamodbav:"id"`
	Role            string            `dynamodbav:"role"`
	DisplayName     string            `dynamodbav:"display_name,omitempty"`
	PaymentAccounts map[string]string `dynamodbav:"payment_accounts,omitempty"`
}

// UserDynamoRepository reads marketplace users.
//
// Table requirements:
//   - PK: id (string)
//
// payment_accounts maps a provider name to the connected account id.

type UserDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb DynamoAPI, tableName string) *UserDynamoRepository {
	if tableName == "" {
		tableName = DefaultUsersTableName
	}
	return &UserDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *UserDynamoRepository) GetByID(ctx context.Context, id string) (entities.User, error) {
	var it userItem
	found, err := getItem(ctx, r.ddb, r.tableName, "id", id, &it)
	if err != nil || !found {
		return entities.User{}, err
	}
	return entities.User{
		ID:              it.ID,
		Role:            entities.UserRole(it.Role),
		DisplayName:     it.DisplayName,
		PaymentAccounts: it.PaymentAccounts,
	}, nil
}
