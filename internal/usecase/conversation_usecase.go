package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"marketplace_payments/internal/domain/entities"
	"marketplace_payments/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var seedNamespace = uuid.MustParse("0b5c9a3e-7d41-4e8f-8c62-3a9e51f0d2c4")

// IConversationUseCase provisions the chat between a client and a professional.
//
// EnsureChat is idempotent: at most one chat exists per mission (or per
// participant pair for freeform conversations) no matter how many callers race.
// created reports whether this call inserted the chat.

type IConversationUseCase interface {
	EnsureChat(ctx context.Context, req ProvisionRequest) (chat entities.Chat, created bool, err error)
}

type ProvisionRequest struct {
	MissionID   string
	ProID       string
	ClientID    string
	Description string
}

type ConversationUseCase struct {
	chats    interfaces.IChatRepository
	messages interfaces.IMessageRepository
}

var _ IConversationUseCase = (*ConversationUseCase)(nil)

func NewConversationUseCase(chats interfaces.IChatRepository, messages interfaces.IMessageRepository) *ConversationUseCase {
	return &ConversationUseCase{chats: chats, messages: messages}
}

func (u *ConversationUseCase) EnsureChat(ctx context.Context, req ProvisionRequest) (entities.Chat, bool, error) {
	req.MissionID = strings.TrimSpace(req.MissionID)
	req.ProID = strings.TrimSpace(req.ProID)
	req.ClientID = strings.TrimSpace(req.ClientID)
	if req.ProID == "" || req.ClientID == "" || req.ProID == req.ClientID {
		return entities.Chat{}, false, ErrInvalidParticipants
	}

	chatID := entities.ChatIDForParticipants(req.ProID, req.ClientID)
	if req.MissionID != "" {
		chatID = entities.ChatIDForMission(req.MissionID)
	}

	existing, err := u.chats.GetByID(ctx, chatID)
	if err != nil {
		log.Printf("[chat][usecase] lookup failed chat_id=%s mission_id=%q err=%v", chatID, req.MissionID, err)
		return entities.Chat{}, false, dependencyError("load chat", err)
	}
	if existing.ID != "" {
		return u.completeSeed(ctx, existing, req, false)
	}

	chat := entities.Chat{
		ID:        chatID,
		MissionID: req.MissionID,
		ProID:     req.ProID,
		ClientID:  req.ClientID,
		CreatedAt: time.Now().UTC(),
	}
	created, err := u.chats.Create(ctx, chat)
	if errors.Is(err, ErrConflict) {
		log.Printf("[chat][usecase] concurrent create detected chat_id=%s mission_id=%q", chatID, req.MissionID)
		winner, gerr := u.chats.GetByID(ctx, chatID)
		if gerr != nil {
			return entities.Chat{}, false, dependencyError("load chat", gerr)
		}
		if winner.ID == "" {
			return entities.Chat{}, false, dependencyError("load chat", fmt.Errorf("chat %s vanished after conflict", chatID))
		}
		return winner, false, nil
	}
	if err != nil {
		log.Printf("[chat][usecase] create failed chat_id=%s mission_id=%q err=%v", chatID, req.MissionID, err)
		return entities.Chat{}, false, dependencyError("create chat", err)
	}
	log.Printf("[chat][usecase] chat created chat_id=%s mission_id=%q", created.ID, created.MissionID)

	return u.completeSeed(ctx, created, req, true)
}

// completeSeed writes the system seed message and stamps the chat activity.
// A chat without activity never got its seed; the seed id is derived from the
// chat id so retrying after a crash cannot duplicate it.
func (u *ConversationUseCase) completeSeed(ctx context.Context, chat entities.Chat, req ProvisionRequest, created bool) (entities.Chat, bool, error) {
	if !chat.LastActivityAt.IsZero() {
		return chat, created, nil
	}

	now := time.Now().UTC()
	seed := entities.Message{
		ID:        uuid.NewSHA1(seedNamespace, []byte(chat.ID)).String(),
		ChatID:    chat.ID,
		SenderID:  entities.SystemSenderID,
		Content:   seedContent(chat.MissionID, req.Description),
		CreatedAt: now,
	}
	if _, err := u.messages.Create(ctx, seed); err != nil && !errors.Is(err, ErrConflict) {
		log.Printf("[chat][usecase] seed message failed chat_id=%s err=%v", chat.ID, err)
		return entities.Chat{}, false, dependencyError("create seed message", err)
	}
	if err := u.chats.Touch(ctx, chat.ID, seed.Preview(), now); err != nil {
		log.Printf("[chat][usecase] touch failed chat_id=%s err=%v", chat.ID, err)
		return entities.Chat{}, false, dependencyError("touch chat", err)
	}
	chat.LastActivityAt = now
	chat.LastMessagePreview = seed.Preview()
	log.Printf("[chat][usecase] seed written chat_id=%s", chat.ID)
	return chat, created, nil
}

func seedContent(missionID, description string) string {
	if missionID == "" {
		return "New conversation started."
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return "Booking confirmed. This conversation is linked to your mission."
	}
	return fmt.Sprintf("Booking confirmed for %q. This conversation is linked to your mission.", description)
}
