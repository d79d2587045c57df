package handlers

import (
	"errors"
	"log"
	"net/http"

	response "marketplace_payments/internal/adapter/http/dto/response"
	"marketplace_payments/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ReconcileHandler struct {
	usecase usecase.IReconciliationUseCase
}

func NewReconcileHandler(uc usecase.IReconciliationUseCase) *ReconcileHandler {
	return &ReconcileHandler{usecase: uc}
}

// ReconcilePaid godoc
// @Summary      Repair every mission with a paid payment
// @Tags         admin
// @Produce      json
// @Security     AdminKey
// @Success      200  {object}  response.ReconcileSummaryResponse
// @Failure      500  {object}  map[string]string
// @Router       /admin/reconcile [post]
func (h *ReconcileHandler) ReconcilePaid(c *gin.Context) {
	summary, err := h.usecase.ReconcilePaid(c.Request.Context())
	if err != nil {
		log.Printf("[reconcile][handler] sweep failed err=%v", err)
		respondError(c, errInternal)
		return
	}
	c.JSON(http.StatusOK, response.FromReconcileSummary(summary.Scanned, summary.Repaired, summary.Skipped, summary.Failed))
}

// ReconcileMission godoc
// @Summary      Repair one mission from its paid payment
// @Tags         admin
// @Produce      json
// @Security     AdminKey
// @Param        mission_id  path      string  true  "Mission id"
// @Success      200         {object}  response.ReconcileResponse
// @Failure      400         {object}  map[string]string
// @Failure      500         {object}  map[string]string
// @Router       /admin/missions/{mission_id}/reconcile [post]
func (h *ReconcileHandler) ReconcileMission(c *gin.Context) {
	missionID := c.Param("mission_id")
	res, err := h.usecase.ReconcileMission(c.Request.Context(), missionID)
	if err != nil {
		log.Printf("[reconcile][handler] mission repair failed mission_id=%s err=%v", missionID, err)
		if errors.Is(err, usecase.ErrValidation) {
			respondError(c, errInvalidRequest)
			return
		}
		respondError(c, errInternal)
		return
	}
	c.JSON(http.StatusOK, response.FromReconcile(res.MissionID, res.SessionID, res.Repaired))
}
