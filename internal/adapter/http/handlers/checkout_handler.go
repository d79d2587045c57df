package handlers

import (
	"log"
	"net/http"

	request "marketplace_payments/internal/adapter/http/dto/request"
	response "marketplace_payments/internal/adapter/http/dto/response"
	"marketplace_payments/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CheckoutHandler handles checkout creation and payment lookups.

type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

// CreateCheckout godoc
// @Summary      Create a hosted checkout for a mission
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        payload  body      request.CheckoutRequest  true  "Mission and client"
// @Success      200      {object}  response.CheckoutResponse
// @Failure      400      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Failure      409      {object}  map[string]string
// @Failure      422      {object}  map[string]string
// @Failure      502      {object}  map[string]string
// @Router       /checkout [post]
func (h *CheckoutHandler) CreateCheckout(c *gin.Context) {
	var payload request.CheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[checkout][handler] invalid payload err=%v", err)
		respondError(c, errInvalidRequest)
		return
	}
	payload = payload.Normalize()
	log.Printf("[checkout][handler] create start mission_id=%s client_id=%s", payload.MissionID, payload.ClientID)

	res, err := h.usecase.CreateCheckout(c.Request.Context(), payload.MissionID, payload.ClientID)
	if err != nil {
		log.Printf("[checkout][handler] create failed mission_id=%s err=%v", payload.MissionID, err)
		respondError(c, mapCheckoutError(err))
		return
	}
	log.Printf("[checkout][handler] create success mission_id=%s session_id=%s", payload.MissionID, res.Payment.SessionID)

	c.JSON(http.StatusOK, response.FromCheckout(res.URL, res.Payment))
}

// ListMissionPayments godoc
// @Summary      List the payments attempted for a mission
// @Tags         checkout
// @Produce      json
// @Param        mission_id  path      string  true  "Mission id"
// @Success      200         {array}   response.PaymentResponse
// @Failure      400         {object}  map[string]string
// @Router       /missions/{mission_id}/payments [get]
func (h *CheckoutHandler) ListMissionPayments(c *gin.Context) {
	missionID := c.Param("mission_id")

	payments, err := h.usecase.ListPaymentsByMissionID(c.Request.Context(), missionID)
	if err != nil {
		log.Printf("[checkout][handler] list payments failed mission_id=%s err=%v", missionID, err)
		respondError(c, mapCheckoutError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromPayments(payments))
}
