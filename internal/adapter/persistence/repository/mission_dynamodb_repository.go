package repository

import (
	"context"
	"fmt"
	"log"

	"marketplace_payments/internal/domain/entities"
	"marketplace_payments/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const DefaultMissionsTableName = "missions"

type missionItem struct {
	ID          string `dynamodbav:"id"`
	ClientID    string `dynamodbav:"client_id"`
	ProID       string `dynamodbav:"pro_id,omitempty"`
	Description string `dynamodbav:"description"`
	Price       string `dynamodbav:"price"`
	Status      string `dynamodbav:"status"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// MissionDynamoRepository persists Mission entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Missions are owned by the marketplace core; this service only reads them and
// moves their status forward after a payment.

type MissionDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IMissionRepository = (*MissionDynamoRepository)(nil)

func NewMissionDynamoRepository(ddb DynamoAPI, tableName string) *MissionDynamoRepository {
	if tableName == "" {
		tableName = DefaultMissionsTableName
	}
	return &MissionDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *MissionDynamoRepository) GetByID(ctx context.Context, id string) (entities.Mission, error) {
	var it missionItem
	found, err := getItem(ctx, r.ddb, r.tableName, "id", id, &it)
	if err != nil || !found {
		return entities.Mission{}, err
	}
	return fromMissionItem(it), nil
}

func (r *MissionDynamoRepository) TransitionStatus(ctx context.Context, id string, next entities.MissionStatus, proID string) (entities.Mission, bool, error) {
	for attempt := 0; attempt < maxTransitionAttempts; attempt++ {
		m, err := r.GetByID(ctx, id)
		if err != nil || m.ID == "" {
			return m, false, err
		}
		if !entities.MissionTransitionNeeded(m.Status, m.ProID, next, proID) {
			return m, false, nil
		}

		var it missionItem
		applied, err := proTransition(m.Status, m.ProID, next, proID, r.tableName, id).apply(ctx, r.ddb, &it)
		if err != nil {
			return entities.Mission{}, false, err
		}
		if applied {
			return fromMissionItem(it), true, nil
		}
		log.Printf("[missions][repository] transition lost race id=%s from=%s to=%s attempt=%d", id, m.Status, next, attempt+1)
	}
	return entities.Mission{}, false, fmt.Errorf("mission %s: %w", id, ErrTransitionContention)
}

// proTransition builds the status update shared by missions and bookings. The
// stored professional is part of the condition so a concurrent assignment is
// never overwritten silently.
func proTransition(current entities.MissionStatus, currentPro string, next entities.MissionStatus, proID, table, id string) statusUpdate {
	u := statusUpdate{
		table:    table,
		keyName:  "id",
		keyValue: id,
		current:  string(current),
		next:     string(next),
		names:    map[string]string{"#pro_id": "pro_id"},
		values:   map[string]types.AttributeValue{},
	}
	if currentPro == "" {
		u.conditions = append(u.conditions, "(attribute_not_exists(#pro_id) OR #pro_id = :empty)")
		u.values[":empty"] = &types.AttributeValueMemberS{Value: ""}
	} else {
		u.conditions = append(u.conditions, "#pro_id = :current_pro")
		u.values[":current_pro"] = &types.AttributeValueMemberS{Value: currentPro}
	}
	if proID != "" {
		u.set = append(u.set, "#pro_id = :pro_id")
		u.values[":pro_id"] = &types.AttributeValueMemberS{Value: proID}
	}
	return u
}

func toMissionItem(m entities.Mission) missionItem {
	return missionItem{
		ID:          m.ID,
		ClientID:    m.ClientID,
		ProID:       m.ProID,
		Description: m.Description,
		Price:       m.Price.String(),
		Status:      string(m.Status),
		CreatedAt:   formatTime(m.CreatedAt),
		UpdatedAt:   formatTime(m.UpdatedAt),
	}
}

func fromMissionItem(it missionItem) entities.Mission {
	price, err := decimal.NewFromString(it.Price)
	if err != nil {
		log.Printf("[missions][repository] unparsable price id=%s value=%q err=%v", it.ID, it.Price, err)
		price = decimal.Zero
	}
	if it.Status != "" && !entities.MissionStatus(it.Status).Valid() {
		log.Printf("[missions][repository] unknown status id=%s status=%q", it.ID, it.Status)
	}
	return entities.Mission{
		ID:          it.ID,
		ClientID:    it.ClientID,
		ProID:       it.ProID,
		Description: it.Description,
		Price:       price,
		Status:      entities.MissionStatus(it.Status),
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}
