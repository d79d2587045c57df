package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"marketplace_payments/internal/domain/entities"
	"marketplace_payments/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// IMessagingUseCase exposes the conversation operations used by both parties.

type IMessagingUseCase interface {
	ListChats(ctx context.Context, userID string) ([]entities.Chat, error)
	ListMessages(ctx context.Context, chatID string) ([]entities.Message, error)
	SendMessage(ctx context.Context, chatID, senderID, content, attachmentURL string) (entities.Message, error)
	MarkRead(ctx context.Context, chatID, readerID string) (int, error)
}

type MessagingUseCase struct {
	chats    interfaces.IChatRepository
	messages interfaces.IMessageRepository
}

var _ IMessagingUseCase = (*MessagingUseCase)(nil)

func NewMessagingUseCase(chats interfaces.IChatRepository, messages interfaces.IMessageRepository) *MessagingUseCase {
	return &MessagingUseCase{chats: chats, messages: messages}
}

func (u *MessagingUseCase) ListChats(ctx context.Context, userID string) ([]entities.Chat, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	chats, err := u.chats.ListByParticipant(ctx, userID)
	if err != nil {
		return nil, dependencyError("list chats", err)
	}
	return chats, nil
}

func (u *MessagingUseCase) ListMessages(ctx context.Context, chatID string) ([]entities.Message, error) {
	if _, err := u.loadChat(ctx, chatID); err != nil {
		return nil, err
	}
	msgs, err := u.messages.ListByChatID(ctx, strings.TrimSpace(chatID))
	if err != nil {
		return nil, dependencyError("list messages", err)
	}
	return msgs, nil
}

func (u *MessagingUseCase) SendMessage(ctx context.Context, chatID, senderID, content, attachmentURL string) (entities.Message, error) {
	content = strings.TrimSpace(content)
	attachmentURL = strings.TrimSpace(attachmentURL)
	if content == "" && attachmentURL == "" {
		return entities.Message{}, ErrEmptyMessage
	}
	chat, err := u.loadChat(ctx, chatID)
	if err != nil {
		return entities.Message{}, err
	}
	senderID = strings.TrimSpace(senderID)
	if !chat.HasParticipant(senderID) {
		log.Printf("[chat][usecase] sender not participant chat_id=%s sender_id=%q", chat.ID, senderID)
		return entities.Message{}, ErrNotParticipant
	}

	msg := entities.Message{
		ID:            uuid.NewString(),
		ChatID:        chat.ID,
		SenderID:      senderID,
		Content:       content,
		AttachmentURL: attachmentURL,
		CreatedAt:     time.Now().UTC(),
	}
	created, err := u.messages.Create(ctx, msg)
	if err != nil {
		log.Printf("[chat][usecase] message create failed chat_id=%s err=%v", chat.ID, err)
		return entities.Message{}, dependencyError("create message", err)
	}
	if err := u.chats.Touch(ctx, chat.ID, created.Preview(), created.CreatedAt); err != nil {
		log.Printf("[chat][usecase] touch failed chat_id=%s err=%v", chat.ID, err)
	}
	return created, nil
}

func (u *MessagingUseCase) MarkRead(ctx context.Context, chatID, readerID string) (int, error) {
	chat, err := u.loadChat(ctx, chatID)
	if err != nil {
		return 0, err
	}
	readerID = strings.TrimSpace(readerID)
	if !chat.HasParticipant(readerID) {
		return 0, ErrNotParticipant
	}
	n, err := u.messages.MarkRead(ctx, chat.ID, readerID, time.Now().UTC())
	if err != nil {
		return 0, dependencyError("mark read", err)
	}
	return n, nil
}

func (u *MessagingUseCase) loadChat(ctx context.Context, chatID string) (entities.Chat, error) {
	chatID = strings.TrimSpace(chatID)
	if chatID == "" {
		return entities.Chat{}, ErrInvalidChatID
	}
	chat, err := u.chats.GetByID(ctx, chatID)
	if err != nil {
		return entities.Chat{}, dependencyError("load chat", err)
	}
	if chat.ID == "" {
		return entities.Chat{}, ErrChatNotFound
	}
	return chat, nil
}
