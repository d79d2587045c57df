package handlers

import (
	"log"
	"net/http"
	"strings"

	response "marketplace_payments/internal/adapter/http/dto/response"
	"marketplace_payments/internal/domain/entities"
	"marketplace_payments/internal/usecase"

	"github.com/gin-gonic/gin"
)

// Signature headers, in lookup order.
var signatureHeaders = []string{"Stripe-Signature", "signature", "x-signature"}

const requestIDHeader = "x-request-id"

type WebhookHandler struct {
	usecase usecase.IPaymentEventUseCase
}

func NewWebhookHandler(uc usecase.IPaymentEventUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc}
}

// HandlePaymentEvent godoc
// @Summary      Receive a signed payment processor event
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        Stripe-Signature  header    string  false  "Stripe signature"
// @Param        x-signature       header    string  false  "Mercado Pago signature"
// @Param        x-request-id      header    string  false  "Mercado Pago request id"
// @Success      200               {object}  response.WebhookResponse
// @Failure      400               {object}  map[string]string
// @Failure      500               {object}  map[string]string
// @Router       /webhooks/payments [post]
func (h *WebhookHandler) HandlePaymentEvent(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		log.Printf("[webhook][handler] read body failed err=%v", err)
		respondError(c, errInvalidRequest)
		return
	}

	payload := entities.SignedPayload{
		Body:      body,
		Signature: signatureFrom(c),
		RequestID: strings.TrimSpace(c.GetHeader(requestIDHeader)),
	}
	if payload.Signature == "" {
		log.Printf("[webhook][handler] missing signature header payload_len=%d", len(body))
		respondError(c, mapWebhookError(usecase.ErrInvalidSignature))
		return
	}

	res, err := h.usecase.HandleEvent(c.Request.Context(), payload)
	if err != nil {
		log.Printf("[webhook][handler] event rejected err=%v", err)
		respondError(c, mapWebhookError(err))
		return
	}
	log.Printf("[webhook][handler] event acknowledged event_id=%s type=%s ignored=%t duplicate=%t", res.EventID, res.Type, res.Ignored, res.Duplicate)

	c.JSON(http.StatusOK, response.WebhookResponse{Received: true})
}

func signatureFrom(c *gin.Context) string {
	for _, h := range signatureHeaders {
		if v := strings.TrimSpace(c.GetHeader(h)); v != "" {
			return v
		}
	}
	return ""
}
