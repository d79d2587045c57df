package request

import "strings"

// CreateChatRequest opens a conversation. MissionID is optional; without it the
// chat is a freeform conversation between the two participants.
type CreateChatRequest struct {
	ProID     string `json:"pro_id" binding:"required"`
	ClientID  string `json:"client_id" binding:"required"`
	MissionID string `json:"mission_id"`
}

type SendMessageRequest struct {
	SenderID      string `json:"sender_id" binding:"required"`
	Content       string `json:"content"`
	AttachmentURL string `json:"attachment_url"`
}

type MarkReadRequest struct {
	ReaderID string `json:"reader_id" binding:"required"`
}

// HasBody reports whether the message carries text or an attachment.
func (r SendMessageRequest) HasBody() bool {
	return strings.TrimSpace(r.Content) != "" || strings.TrimSpace(r.AttachmentURL) != ""
}
