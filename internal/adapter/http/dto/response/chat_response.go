package response

import (
	"time"

	"marketplace_payments/internal/domain/entities"
)

type CreateChatResponse struct {
	ChatID  string `json:"chat_id"`
	Created bool   `json:"created"`
}

type ChatResponse struct {
	ID                 string     `json:"id"`
	MissionID          string     `json:"mission_id,omitempty"`
	ProID              string     `json:"pro_id"`
	ClientID           string     `json:"client_id"`
	LastMessagePreview string     `json:"last_message_preview"`
	LastActivityAt     *time.Time `json:"last_activity_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

type MessageResponse struct {
	ID            string     `json:"id"`
	ChatID        string     `json:"chat_id"`
	SenderID      string     `json:"sender_id"`
	Content       string     `json:"content"`
	AttachmentURL string     `json:"attachment_url,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	ReadAt        *time.Time `json:"read_at,omitempty"`
}

type MarkReadResponse struct {
	Updated int `json:"updated"`
}

func FromChat(c entities.Chat) ChatResponse {
	res := ChatResponse{
		ID:                 c.ID,
		MissionID:          c.MissionID,
		ProID:              c.ProID,
		ClientID:           c.ClientID,
		LastMessagePreview: c.LastMessagePreview,
		CreatedAt:          c.CreatedAt,
	}
	if !c.LastActivityAt.IsZero() {
		at := c.LastActivityAt
		res.LastActivityAt = &at
	}
	return res
}

func FromChats(cs []entities.Chat) []ChatResponse {
	out := make([]ChatResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromChat(c))
	}
	return out
}

func FromMessage(m entities.Message) MessageResponse {
	return MessageResponse{
		ID:            m.ID,
		ChatID:        m.ChatID,
		SenderID:      m.SenderID,
		Content:       m.Content,
		AttachmentURL: m.AttachmentURL,
		CreatedAt:     m.CreatedAt,
		ReadAt:        m.ReadAt,
	}
}

func FromMessages(ms []entities.Message) []MessageResponse {
	out := make([]MessageResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromMessage(m))
	}
	return out
}
