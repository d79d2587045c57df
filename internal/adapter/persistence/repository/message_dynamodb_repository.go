package repository

import (
	"context"
	"time"

	"marketplace_payments/internal/domain/entities"
	"marketplace_payments/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultMessagesTableName = "messages"
	messagesChatIDIndex      = "chat_id-index"
)

type messageItem struct {
	ID            string `dynamodbav:"id"`
	ChatID        string `dynamodbav:"chat_id"`
	SenderID      string `dynamodbav:"sender_id"`
	Content       string `dynamodbav:"content"`
	AttachmentURL string `dynamodbav:"attachment_url,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
	ReadAt        string `dynamodbav:"read_at,omitempty"`
}

// MessageDynamoRepository persists Message entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: chat_id-index (PK: chat_id, SK: created_at)

type MessageDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IMessageRepository = (*MessageDynamoRepository)(nil)

func NewMessageDynamoRepository(ddb DynamoAPI, tableName string) *MessageDynamoRepository {
	if tableName == "" {
		tableName = DefaultMessagesTableName
	}
	return &MessageDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *MessageDynamoRepository) Create(ctx context.Context, msg entities.Message) (entities.Message, error) {
	err := putIfAbsent(ctx, r.ddb, r.tableName, "id", toMessageItem(msg))
	if isConditionFailed(err) {
		return entities.Message{}, interfaces.ErrAlreadyExists
	}
	if err != nil {
		return entities.Message{}, err
	}
	return msg, nil
}

func (r *MessageDynamoRepository) ListByChatID(ctx context.Context, chatID string) ([]entities.Message, error) {
	items, err := queryAll[messageItem](ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(messagesChatIDIndex),
		KeyConditionExpression: aws.String("chat_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: chatID},
		},
		ScanIndexForward: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	out := make([]entities.Message, 0, len(items))
	for _, it := range items {
		out = append(out, fromMessageItem(it))
	}
	return out, nil
}

// MarkRead stamps every unread message of chatID not sent by readerID and
// returns how many were stamped by this call.
func (r *MessageDynamoRepository) MarkRead(ctx context.Context, chatID string, readerID string, at time.Time) (int, error) {
	msgs, err := r.ListByChatID(ctx, chatID)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, m := range msgs {
		if m.SenderID == readerID || m.ReadAt != nil {
			continue
		}
		_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
			TableName:           aws.String(r.tableName),
			Key:                 stringKey("id", m.ID),
			UpdateExpression:    aws.String("SET #read_at = :read_at"),
			ConditionExpression: aws.String("attribute_not_exists(#read_at)"),
			ExpressionAttributeNames: map[string]string{
				"#read_at": "read_at",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":read_at": &types.AttributeValueMemberS{Value: formatTime(at)},
			},
		})
		if isConditionFailed(err) {
			continue
		}
		if err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

func toMessageItem(m entities.Message) messageItem {
	it := messageItem{
		ID:            m.ID,
		ChatID:        m.ChatID,
		SenderID:      m.SenderID,
		Content:       m.Content,
		AttachmentURL: m.AttachmentURL,
		CreatedAt:     formatTime(m.CreatedAt),
	}
	if m.ReadAt != nil {
		it.ReadAt = formatTime(*m.ReadAt)
	}
	return it
}

func fromMessageItem(it messageItem) entities.Message {
	m := entities.Message{
		ID:            it.ID,
		ChatID:        it.ChatID,
		SenderID:      it.SenderID,
		Content:       it.Content,
		AttachmentURL: it.AttachmentURL,
		CreatedAt:     parseTime(it.CreatedAt),
	}
	if it.ReadAt != "" {
		readAt := parseTime(it.ReadAt)
		m.ReadAt = &readAt
	}
	return m
}
