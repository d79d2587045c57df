package handlers

import (
	"log"
	"net/http"

	request "marketplace_payments/internal/adapter/http/dto/request"
	response "marketplace_payments/internal/adapter/http/dto/response"
	"marketplace_payments/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ChatHandler serves the conversation endpoints used by clients and professionals.

type ChatHandler struct {
	conversations usecase.IConversationUseCase
	messaging     usecase.IMessagingUseCase
}

func NewChatHandler(conversations usecase.IConversationUseCase, messaging usecase.IMessagingUseCase) *ChatHandler {
	return &ChatHandler{conversations: conversations, messaging: messaging}
}

// CreateChat godoc
// @Summary      Open (or return) the conversation between a client and a professional
// @Tags         chats
// @Accept       json
// @Produce      json
// @Param        payload  body      request.CreateChatRequest  true  "Participants"
// @Success      200      {object}  response.CreateChatResponse
// @Failure      400      {object}  map[string]string
// @Router       /chats [post]
func (h *ChatHandler) CreateChat(c *gin.Context) {
	var payload request.CreateChatRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}

	chat, created, err := h.conversations.EnsureChat(c.Request.Context(), usecase.ProvisionRequest{
		MissionID: payload.MissionID,
		ProID:     payload.ProID,
		ClientID:  payload.ClientID,
	})
	if err != nil {
		log.Printf("[chat][handler] ensure failed pro_id=%s client_id=%s err=%v", payload.ProID, payload.ClientID, err)
		respondError(c, mapChatError(err))
		return
	}

	c.JSON(http.StatusOK, response.CreateChatResponse{ChatID: chat.ID, Created: created})
}

// ListUserChats godoc
// @Summary      List the chats of a user, most recent activity first
// @Tags         chats
// @Produce      json
// @Param        user_id  path      string  true  "User id"
// @Success      200      {array}   response.ChatResponse
// @Router       /users/{user_id}/chats [get]
func (h *ChatHandler) ListUserChats(c *gin.Context) {
	chats, err := h.messaging.ListChats(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		respondError(c, mapChatError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromChats(chats))
}

// ListMessages godoc
// @Summary      List the messages of a chat, oldest first
// @Tags         chats
// @Produce      json
// @Param        chat_id  path      string  true  "Chat id"
// @Success      200      {array}   response.MessageResponse
// @Failure      404      {object}  map[string]string
// @Router       /chats/{chat_id}/messages [get]
func (h *ChatHandler) ListMessages(c *gin.Context) {
	msgs, err := h.messaging.ListMessages(c.Request.Context(), c.Param("chat_id"))
	if err != nil {
		respondError(c, mapChatError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMessages(msgs))
}

// SendMessage godoc
// @Summary      Post a message to a chat
// @Tags         chats
// @Accept       json
// @Produce      json
// @Param        chat_id  path      string                      true  "Chat id"
// @Param        payload  body      request.SendMessageRequest  true  "Message"
// @Success      201      {object}  response.MessageResponse
// @Failure      400      {object}  map[string]string
// @Failure      403      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Router       /chats/{chat_id}/messages [post]
func (h *ChatHandler) SendMessage(c *gin.Context) {
	chatID := c.Param("chat_id")
	var payload request.SendMessageRequest
	if err := c.ShouldBindJSON(&payload); err != nil || !payload.HasBody() {
		respondError(c, errInvalidRequest)
		return
	}

	msg, err := h.messaging.SendMessage(c.Request.Context(), chatID, payload.SenderID, payload.Content, payload.AttachmentURL)
	if err != nil {
		log.Printf("[chat][handler] send failed chat_id=%s sender_id=%s err=%v", chatID, payload.SenderID, err)
		respondError(c, mapChatError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromMessage(msg))
}

// MarkRead godoc
// @Summary      Mark the messages of a chat as read by a participant
// @Tags         chats
// @Accept       json
// @Produce      json
// @Param        chat_id  path      string                   true  "Chat id"
// @Param        payload  body      request.MarkReadRequest  true  "Reader"
// @Success      200      {object}  response.MarkReadResponse
// @Failure      403      {object}  map[string]string
// @Router       /chats/{chat_id}/read [patch]
func (h *ChatHandler) MarkRead(c *gin.Context) {
	var payload request.MarkReadRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}

	n, err := h.messaging.MarkRead(c.Request.Context(), c.Param("chat_id"), payload.ReaderID)
	if err != nil {
		respondError(c, mapChatError(err))
		return
	}
	c.JSON(http.StatusOK, response.MarkReadResponse{Updated: n})
}
