package repository

import (
	"context"
	"sort"
	"time"

	"marketplace_payments/internal/domain/entities"
	"marketplace_payments/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultChatsTableName = "chats"
	chatsProIDIndex       = "pro_id-index"
	chatsClientIDIndex    = "client_id-index"
)

type chatItem struct {
	ID                 string `dynamodbav:"id"`
	MissionID          string `dynamodbav:"mission_id,omitempty"`
	ProID              string `dynamodbav:"pro_id"`
	ClientID           string `dynamodbav:"client_id"`
	LastMessagePreview string `dynamodbav:"last_message_preview,omitempty"`
	LastActivityAt     string `dynamodbav:"last_activity_at,omitempty"`
	CreatedAt          string `dynamodbav:"created_at"`
}

// ChatDynamoRepository persists Chat entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: pro_id-index (PK: pro_id)
//   - GSI: client_id-index (PK: client_id)

type ChatDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IChatRepository = (*ChatDynamoRepository)(nil)

func NewChatDynamoRepository(ddb DynamoAPI, tableName string) *ChatDynamoRepository {
	if tableName == "" {
		tableName = DefaultChatsTableName
	}
	return &ChatDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ChatDynamoRepository) Create(ctx context.Context, c entities.Chat) (entities.Chat, error) {
	err := putIfAbsent(ctx, r.ddb, r.tableName, "id", toChatItem(c))
	if isConditionFailed(err) {
		return entities.Chat{}, interfaces.ErrAlreadyExists
	}
	if err != nil {
		return entities.Chat{}, err
	}
	return c, nil
}

func (r *ChatDynamoRepository) GetByID(ctx context.Context, id string) (entities.Chat, error) {
	var it chatItem
	found, err := getItem(ctx, r.ddb, r.tableName, "id", id, &it)
	if err != nil || !found {
		return entities.Chat{}, err
	}
	return fromChatItem(it), nil
}

func (r *ChatDynamoRepository) ListByParticipant(ctx context.Context, userID string) ([]entities.Chat, error) {
	seen := map[string]struct{}{}
	out := []entities.Chat{}
	for _, idx := range []struct{ name, attr string }{
		{chatsProIDIndex, "pro_id"},
		{chatsClientIDIndex, "client_id"},
	} {
		items, err := queryAll[chatItem](ctx, r.ddb, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(idx.name),
			KeyConditionExpression: aws.String("#k = :v"),
			ExpressionAttributeNames: map[string]string{
				"#k": idx.attr,
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":v": &types.AttributeValueMemberS{Value: userID},
			},
		})
		if err != nil {
			return nil, err
		}
		for _, it := range items {
			if _, dup := seen[it.ID]; dup {
				continue
			}
			seen[it.ID] = struct{}{}
			out = append(out, fromChatItem(it))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LastActivityAt.After(out[j].LastActivityAt) })
	return out, nil
}

// Touch moves last_activity_at forward. Older timestamps are dropped silently.
func (r *ChatDynamoRepository) Touch(ctx context.Context, id string, preview string, at time.Time) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 stringKey("id", id),
		UpdateExpression:    aws.String("SET #at = :at, #preview = :preview"),
		ConditionExpression: aws.String("attribute_exists(#id) AND (attribute_not_exists(#at) OR #at <= :at)"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#at":      "last_activity_at",
			"#preview": "last_message_preview",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":at":      &types.AttributeValueMemberS{Value: formatTime(at)},
			":preview": &types.AttributeValueMemberS{Value: preview},
		},
	})
	if isConditionFailed(err) {
		return nil
	}
	return err
}

func toChatItem(c entities.Chat) chatItem {
	return chatItem{
		ID:                 c.ID,
		MissionID:          c.MissionID,
		ProID:              c.ProID,
		ClientID:           c.ClientID,
		LastMessagePreview: c.LastMessagePreview,
		LastActivityAt:     formatTime(c.LastActivityAt),
		CreatedAt:          formatTime(c.CreatedAt),
	}
}

func fromChatItem(it chatItem) entities.Chat {
	return entities.Chat{
		ID:                 it.ID,
		MissionID:          it.MissionID,
		ProID:              it.ProID,
		ClientID:           it.ClientID,
		LastMessagePreview: it.LastMessagePreview,
		LastActivityAt:     parseTime(it.LastActivityAt),
		CreatedAt:          parseTime(it.CreatedAt),
	}
}
