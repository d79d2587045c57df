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

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

func TestWebhookHandler_HandlePaymentEvent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	const body = `{"id":"evt_1","type":"checkout.session.completed"}`

	newRouter := func(t *testing.T) (*gin.Engine, *mocks.MockIPaymentEventUseCase) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentEventUseCase(ctrl)
		h := NewWebhookHandler(uc)
		r := gin.New()
		r.POST("/v1/webhooks/payments", h.HandlePaymentEvent)
		return r, uc
	}

	t.Run("missing signature", func(t *testing.T) {
		r, _ := newRouter(t)
		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/payments", bytes.NewBufferString(body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unreadable body", func(t *testing.T) {
		r, _ := newRouter(t)
		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/payments", nil)
		req.Body = failingReadCloser{}
		req.Header.Set("Stripe-Signature", "t=1,v1=abc")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("passes raw body and stripe signature", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.EXPECT().HandleEvent(gomock.Any(), entities.SignedPayload{Body: []byte(body), Signature: "t=1,v1=abc"}).
			Return(usecase.EventResult{EventID: "evt_1", Type: entities.PaymentEventCheckoutCompleted}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/payments", bytes.NewBufferString(body))
		req.Header.Set("Stripe-Signature", "t=1,v1=abc")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &got)
		if got["received"] != true {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("mercado pago headers", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.EXPECT().HandleEvent(gomock.Any(), entities.SignedPayload{Body: []byte(body), Signature: "ts=1,v1=abc", RequestID: "req-9"}).
			Return(usecase.EventResult{EventID: "payment:1:approved", Ignored: true}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/payments", bytes.NewBufferString(body))
		req.Header.Set("x-signature", "ts=1,v1=abc")
		req.Header.Set("x-request-id", "req-9")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"invalid signature", usecase.ErrInvalidSignature, http.StatusBadRequest},
		{"malformed", usecase.ErrMalformedEvent, http.StatusBadRequest},
		{"ledger down", fmt.Errorf("%w: confirm mission: throttled", usecase.ErrDependency), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, uc := newRouter(t)
			uc.EXPECT().HandleEvent(gomock.Any(), gomock.Any()).Return(usecase.EventResult{}, tc.err)

			req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/payments", bytes.NewBufferString(body))
			req.Header.Set("signature", "t=1,v1=abc")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
			var got map[string]string
			_ = json.Unmarshal(w.Body.Bytes(), &got)
			if got["error"] == "" {
				t.Fatalf("expected error body, got %s", w.Body.String())
			}
		})
	}
}
