package repository

import (
	"context"
	"fmt"
	"log"

	"marketplace_payments/internal/domain/entities"
	"marketplace_payments/internal/usecase/interfaces"
)

const DefaultBookingsTableName = "bookings"

type bookingItem struct {
	ID        string `dynamodbav:"id"`
	ClientID  string `dynamodbav:"client_id"`
	ProID     string `dynamodbav:"pro_id,omitempty"`
	Status    string `dynamodbav:"status"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// BookingDynamoRepository persists the Booking mirror of a Mission.
//
// Table requirements:
//   - PK: id (string, equal to the mission id)

type BookingDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IBookingRepository = (*BookingDynamoRepository)(nil)

func NewBookingDynamoRepository(ddb DynamoAPI, tableName string) *BookingDynamoRepository {
	if tableName == "" {
		tableName = DefaultBookingsTableName
	}
	return &BookingDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *BookingDynamoRepository) GetByID(ctx context.Context, id string) (entities.Booking, error) {
	var it bookingItem
	found, err := getItem(ctx, r.ddb, r.tableName, "id", id, &it)
	if err != nil || !found {
		return entities.Booking{}, err
	}
	return fromBookingItem(it), nil
}

func (r *BookingDynamoRepository) TransitionStatus(ctx context.Context, id string, next entities.MissionStatus, proID string) (entities.Booking, bool, error) {
	for attempt := 0; attempt < maxTransitionAttempts; attempt++ {
		b, err := r.GetByID(ctx, id)
		if err != nil || b.ID == "" {
			return b, false, err
		}
		if !entities.MissionTransitionNeeded(b.Status, b.ProID, next, proID) {
			return b, false, nil
		}

		var it bookingItem
		applied, err := proTransition(b.Status, b.ProID, next, proID, r.tableName, id).apply(ctx, r.ddb, &it)
		if err != nil {
			return entities.Booking{}, false, err
		}
		if applied {
			return fromBookingItem(it), true, nil
		}
		log.Printf("[bookings][repository] transition lost race id=%s from=%s to=%s attempt=%d", id, b.Status, next, attempt+1)
	}
	return entities.Booking{}, false, fmt.Errorf("booking %s: %w", id, ErrTransitionContention)
}

func fromBookingItem(it bookingItem) entities.Booking {
	return entities.Booking{
		ID:        it.ID,
		ClientID:  it.ClientID,
		ProID:     it.ProID,
		Status:    entities.MissionStatus(it.Status),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
