package routes

import (
	"marketplace_payments/internal/adapter/http/handlers"
	"marketplace_payments/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathCheckout = "/checkout"
	PathWebhooks = "/webhooks"
	PathMissions = "/missions"
	PathChats    = "/chats"
	PathUsers    = "/users"
	PathAdmin    = "/admin"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", handlers.Ping)
}

func addWebhookRoutes(rg *gin.RouterGroup, h *handlers.WebhookHandler) {
	rg.POST(PathWebhooks+"/payments", h.HandlePaymentEvent)
}

func addCheckoutRoutes(rg *gin.RouterGroup, h *handlers.CheckoutHandler) {
	rg.POST(PathCheckout, h.CreateCheckout)
	rg.GET(PathMissions+"/:mission_id/payments", h.ListMissionPayments)
}

func addChatRoutes(rg *gin.RouterGroup, h *handlers.ChatHandler) {
	chats := rg.Group(PathChats)
	{
		chats.POST("", h.CreateChat)
		chats.GET("/:chat_id/messages", h.ListMessages)
		chats.POST("/:chat_id/messages", h.SendMessage)
		chats.PATCH("/:chat_id/read", h.MarkRead)
	}
	rg.GET(PathUsers+"/:user_id/chats", h.ListUserChats)
}

func addAdminRoutes(rg *gin.RouterGroup, adminKey string, h *handlers.ReconcileHandler) {
	admin := rg.Group(PathAdmin, middleware.RequireAdminKey(adminKey))
	{
		admin.POST("/reconcile", h.ReconcilePaid)
		admin.POST(PathMissions+"/:mission_id/reconcile", h.ReconcileMission)
	}
}
