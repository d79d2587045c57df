package handlers

import (
	"errors"
	"net/http"

	"marketplace_payments/internal/usecase"
	"marketplace_payments/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInternal       = pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)
)

func respondError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrProfessionalNotPayable):
		return pkg.NewDomainErrorSimple("PROFESSIONAL_NOT_PAYABLE", "Professional cannot receive payments", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrMissionNotFound):
		return pkg.NewDomainErrorSimple("MISSION_NOT_FOUND", "Mission not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMissionNotPayable):
		return pkg.NewDomainErrorSimple("MISSION_NOT_PAYABLE", "Mission is not awaiting payment", http.StatusConflict)
	case errors.Is(err, usecase.ErrCheckoutStillOpen):
		return pkg.NewDomainErrorSimple("CHECKOUT_IN_PROGRESS", "A previous checkout for this mission is still open", http.StatusConflict)
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDependency):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider unavailable", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// mapWebhookError keeps the processor contract: 400 stops redelivery of a bad
// payload, 500 asks the processor to retry.
func mapWebhookError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrAuthenticity):
		return pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Invalid signature", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainErrorSimple("MALFORMED_EVENT", "Malformed event", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Event processing failed", err, http.StatusInternalServerError)
	}
}

func mapChatError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrNotParticipant):
		return pkg.NewDomainErrorSimple("NOT_A_PARTICIPANT", "User is not a participant of this chat", http.StatusForbidden)
	case errors.Is(err, usecase.ErrChatNotFound):
		return pkg.NewDomainErrorSimple("CHAT_NOT_FOUND", "Chat not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotFound):
		return pkg.NewDomainError("NOT_FOUND", "Resource not found", err, http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
