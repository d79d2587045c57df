package interfaces

import (
	"context"
	"time"

	"marketplace_payments/internal/domain/entities"
)

// IChatRepository abstracts persistence for Chat.
//
// Create is a conditional insert on the chat id and fails with ErrAlreadyExists
// when another writer got there first. Touch moves the last-activity marker
// forward only.

type IChatRepository interface {
	Create(ctx context.Context, c entities.Chat) (entities.Chat, error)
	GetByID(ctx context.Context, id string) (entities.Chat, error)
	ListByParticipant(ctx context.Context, userID string) ([]entities.Chat, error)
	Touch(ctx context.Context, id string, preview string, at time.Time) error
}

// IMessageRepository abstracts persistence for Message, ordered by creation.

type IMessageRepository interface {
	Create(ctx context.Context, msg entities.Message) (entities.Message, error)
	ListByChatID(ctx context.Context, chatID string) ([]entities.Message, error)
	MarkRead(ctx context.Context, chatID string, readerID string, at time.Time) (int, error)
}
