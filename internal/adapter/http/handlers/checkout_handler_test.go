package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"marketplace_payments/internal/adapter/http/handlers/mocks"
	"marketplace_payments/internal/domain/entities"
	"marketplace_payments/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCheckoutHandler_CreateCheckout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(t *testing.T) (*gin.Engine, *mocks.MockICheckoutUseCase) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewCheckoutHandler(uc)
		r := gin.New()
		r.POST("/v1/checkout", h.CreateCheckout)
		return r, uc
	}

	post := func(r *gin.Engine, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/v1/checkout", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("invalid payload", func(t *testing.T) {
		r, _ := newRouter(t)
		if w := post(r, "{"); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing client_id", func(t *testing.T) {
		r, _ := newRouter(t)
		if w := post(r, `{"mission_id":"mis-1"}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"mission not found", usecase.ErrMissionNotFound, http.StatusNotFound},
		{"client mismatch", usecase.ErrMissionClientMismatch, http.StatusBadRequest},
		{"not payable pro", usecase.ErrProfessionalNotPayable, http.StatusUnprocessableEntity},
		{"mission not payable", usecase.ErrMissionNotPayable, http.StatusConflict},
		{"previous checkout still open", usecase.ErrCheckoutStillOpen, http.StatusConflict},
		{"gateway down", fmt.Errorf("%w: create checkout: timeout", usecase.ErrDependency), http.StatusBadGateway},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, uc := newRouter(t)
			uc.EXPECT().CreateCheckout(gomock.Any(), "mis-1", "cli-1").Return(usecase.CheckoutResult{}, tc.err)

			w := post(r, `{"mission_id":" mis-1 ","client_id":"cli-1"}`)
			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
			var body map[string]string
			_ = json.Unmarshal(w.Body.Bytes(), &body)
			if body["code"] == "" || body["error"] == "" {
				t.Fatalf("expected error body, got %s", w.Body.String())
			}
		})
	}

	t.Run("success", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.EXPECT().CreateCheckout(gomock.Any(), "mis-1", "cli-1").Return(usecase.CheckoutResult{
			URL:     "https://checkout.test/cs_1",
			Payment: entities.Payment{ID: "pay-1", SessionID: "cs_1"},
		}, nil)

		w := post(r, `{"mission_id":"mis-1","client_id":"cli-1"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["url"] != "https://checkout.test/cs_1" || body["session_id"] != "cs_1" || body["payment_id"] != "pay-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestCheckoutHandler_ListMissionPayments(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewCheckoutHandler(uc)
		r := gin.New()
		r.GET("/v1/missions/:mission_id/payments", h.ListMissionPayments)

		uc.EXPECT().ListPaymentsByMissionID(gomock.Any(), "mis-1").Return([]entities.Payment{
			{ID: "pay-1", SessionID: "cs_1", GrossAmount: 5500, PlatformFee: 500, Status: entities.PaymentStatusPaid},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/missions/mis-1/payments", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["status"] != "paid" || body[0]["professional_amount"] != float64(5000) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("dependency error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewCheckoutHandler(uc)
		r := gin.New()
		r.GET("/v1/missions/:mission_id/payments", h.ListMissionPayments)

		uc.EXPECT().ListPaymentsByMissionID(gomock.Any(), "mis-1").Return(nil, fmt.Errorf("%w: list payments: throttled", usecase.ErrDependency))

		req := httptest.NewRequest(http.MethodGet, "/v1/missions/mis-1/payments", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}
