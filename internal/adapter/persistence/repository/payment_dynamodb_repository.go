package repository

import (
	"context"
	"fmt"
	"log"
	"sort"

	"marketplace_payments/internal/domain/entities"
	"marketplace_payments/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultPaymentsTableName       = "payments"
	paymentsMissionIDIndex         = "mission_id-index"
	paymentsStatusIndex            = "status-index"
	paymentsPaymentIntentIDIndex   = "payment_intent_id-index"
	paymentsSessionIDAttributeName = "session_id"
)

type paymentItem struct {
	SessionID       string `dynamodbav:"session_id"`
	ID              string `dynamodbav:"id"`
	PaymentIntentID string `dynamodbav:"payment_intent_id,omitempty"`
	CheckoutURL     string `dynamodbav:"checkout_url,omitempty"`
	Provider        string `dynamodbav:"provider"`
	MissionID       string `dynamodbav:"mission_id"`
	ClientID        string `dynamodbav:"client_id"`
	ProID           string `dynamodbav:"pro_id"`
	GrossAmount     int64  `dynamodbav:"gross_amount"`
	PlatformFee     int64  `dynamodbav:"platform_fee"`
	Currency        string `dynamodbav:"currency"`
	Status          string `dynamodbav:"status"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - PK: session_id (string)
//   - GSI: mission_id-index (PK: mission_id)
//   - GSI: status-index (PK: status)
//   - GSI: payment_intent_id-index (PK: payment_intent_id)
//
// Keying by the processor session makes webhook matching a strongly consistent
// GetItem and lets the conditional put reject a reused session reference.

type PaymentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb DynamoAPI, tableName string) *PaymentDynamoRepository {
	if tableName == "" {
		tableName = DefaultPaymentsTableName
	}
	return &PaymentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	err := putIfAbsent(ctx, r.ddb, r.tableName, paymentsSessionIDAttributeName, toPaymentItem(p))
	if isConditionFailed(err) {
		return entities.Payment{}, interfaces.ErrAlreadyExists
	}
	if err != nil {
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetBySessionID(ctx context.Context, sessionID string) (entities.Payment, error) {
	var it paymentItem
	found, err := getItem(ctx, r.ddb, r.tableName, paymentsSessionIDAttributeName, sessionID, &it)
	if err != nil || !found {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) GetByPaymentIntentID(ctx context.Context, paymentIntentID string) (entities.Payment, error) {
	if paymentIntentID == "" {
		return entities.Payment{}, nil
	}
	items, err := r.queryIndex(ctx, paymentsPaymentIntentIDIndex, "payment_intent_id", paymentIntentID)
	if err != nil || len(items) == 0 {
		return entities.Payment{}, err
	}
	// Index reads are eventually consistent; confirm against the table.
	return r.GetBySessionID(ctx, items[0].SessionID)
}

func (r *PaymentDynamoRepository) ListByMissionID(ctx context.Context, missionID string) ([]entities.Payment, error) {
	return r.queryIndex(ctx, paymentsMissionIDIndex, "mission_id", missionID)
}

func (r *PaymentDynamoRepository) ListByStatus(ctx context.Context, status entities.PaymentStatus) ([]entities.Payment, error) {
	return r.queryIndex(ctx, paymentsStatusIndex, "status", string(status))
}

func (r *PaymentDynamoRepository) queryIndex(ctx context.Context, index, attr, value string) ([]entities.Payment, error) {
	items, err := queryAll[paymentItem](ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": attr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})
	if err != nil {
		return nil, err
	}
	out := make([]entities.Payment, 0, len(items))
	for _, it := range items {
		out = append(out, fromPaymentItem(it))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *PaymentDynamoRepository) TransitionStatus(ctx context.Context, sessionID string, next entities.PaymentStatus, paymentIntentID string) (entities.Payment, bool, error) {
	for attempt := 0; attempt < maxTransitionAttempts; attempt++ {
		p, err := r.GetBySessionID(ctx, sessionID)
		if err != nil || p.SessionID == "" {
			return p, false, err
		}
		if p.Status == next || !p.Status.CanTransitionTo(next) {
			return p, false, nil
		}

		u := statusUpdate{
			table:    r.tableName,
			keyName:  paymentsSessionIDAttributeName,
			keyValue: sessionID,
			current:  string(p.Status),
			next:     string(next),
		}
		if paymentIntentID != "" {
			u.set = []string{"#pi = :pi"}
			u.names = map[string]string{"#pi": "payment_intent_id"}
			u.values = map[string]types.AttributeValue{
				":pi": &types.AttributeValueMemberS{Value: paymentIntentID},
			}
		}

		var it paymentItem
		applied, err := u.apply(ctx, r.ddb, &it)
		if err != nil {
			return entities.Payment{}, false, err
		}
		if applied {
			return fromPaymentItem(it), true, nil
		}
		log.Printf("[payments][repository] transition lost race session_id=%s from=%s to=%s attempt=%d", sessionID, p.Status, next, attempt+1)
	}
	return entities.Payment{}, false, fmt.Errorf("payment %s: %w", sessionID, ErrTransitionContention)
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		SessionID:       p.SessionID,
		ID:              p.ID,
		PaymentIntentID: p.PaymentIntentID,
		CheckoutURL:     p.CheckoutURL,
		Provider:        p.Provider,
		MissionID:       p.MissionID,
		ClientID:        p.ClientID,
		ProID:           p.ProID,
		GrossAmount:     p.GrossAmount,
		PlatformFee:     p.PlatformFee,
		Currency:        p.Currency,
		Status:          string(p.Status),
		CreatedAt:       formatTime(p.CreatedAt),
		UpdatedAt:       formatTime(p.UpdatedAt),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	return entities.Payment{
		ID:              it.ID,
		SessionID:       it.SessionID,
		PaymentIntentID: it.PaymentIntentID,
		CheckoutURL:     it.CheckoutURL,
		Provider:        it.Provider,
		MissionID:       it.MissionID,
		ClientID:        it.ClientID,
		ProID:           it.ProID,
		GrossAmount:     it.GrossAmount,
		PlatformFee:     it.PlatformFee,
		Currency:        it.Currency,
		Status:          entities.PaymentStatus(it.Status),
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
}
