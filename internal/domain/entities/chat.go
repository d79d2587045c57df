package entities

import (
	"time"

	"github.com/google/uuid"
)

// SystemSenderID authors the seed message of every chat.
const SystemSenderID = "system"

var chatNamespace = uuid.MustParse("6f1c7f5e-2b4a-4c55-9a53-0f3d2c1e8b77")

// Chat is a conversation channel between a client and a professional.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI pro_id-index / client_id-index for listing
//
// A mission-linked chat id is derived from the mission id, so two concurrent
// creations for the same mission collide on the primary key.
type Chat struct {
	ID                 string    `json:"id"`
	MissionID          string    `json:"mission_id,omitempty"`
	ProID              string    `json:"pro_id"`
	ClientID           string    `json:"client_id"`
	LastMessagePreview string    `json:"last_message_preview,omitempty"`
	LastActivityAt     time.Time `json:"last_activity_at"`
	CreatedAt          time.Time `json:"created_at"`
}

func (c Chat) HasParticipant(userID string) bool {
	return userID != "" && (c.ProID == userID || c.ClientID == userID)
}

// ChatIDForMission returns the deterministic chat id of a mission conversation.
func ChatIDForMission(missionID string) string {
	return uuid.NewSHA1(chatNamespace, []byte("mission:"+missionID)).String()
}

// ChatIDForParticipants returns the deterministic id of a freeform conversation.
func ChatIDForParticipants(proID, clientID string) string {
	return uuid.NewSHA1(chatNamespace, []byte("direct:"+proID+":"+clientID)).String()
}

// Message is an entry in a Chat. Messages are ordered by CreatedAt ascending and
// never mutated except to set ReadAt.
type Message struct {
	ID            string     `json:"id"`
	ChatID        string     `json:"chat_id"`
	SenderID      string     `json:"sender_id"`
	Content       string     `json:"content"`
	AttachmentURL string     `json:"attachment_url,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	ReadAt        *time.Time `json:"read_at,omitempty"`
}

// Preview returns the text shown in chat lists for this message.
func (m Message) Preview() string {
	const max = 120
	text := m.Content
	if text == "" && m.AttachmentURL != "" {
		text = "[attachment]"
	}
	r := []rune(text)
	if len(r) > max {
		return string(r[:max-1]) + "…"
	}
	return text
}
