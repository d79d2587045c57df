package routes

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"marketplace_payments/internal/adapter/http/middleware"
	"marketplace_payments/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v83/webhook"
)

const testWebhookSecret = "whsec_routes_test"

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		LedgerBackend:       config.LedgerBackendMemory,
		PaymentProvider:     config.ProviderStripe,
		PaymentGatewayMock:  true,
		StripeWebhookSecret: testWebhookSecret,
		Currency:            "eur",
		CheckoutTimeout:     time.Second,
		RateLimit:           100,
		RateBurst:           100,
		AdminAPIKey:         "admin-key",
	}
	deps, err := buildDependencies(context.Background(), cfg)
	require.NoError(t, err)
	return NewRouter(cfg, deps.useCases)
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_Ping(t *testing.T) {
	r := newTestRouter(t)
	w := serve(r, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
}

func TestRouter_Checkout_UnknownMission(t *testing.T) {
	r := newTestRouter(t)
	req := httptest.NewRequest(http.MethodPost, "/v1/checkout", bytes.NewBufferString(`{"mission_id":"mis-404","client_id":"cli-1"}`))
	req.Header.Set("Content-Type", "application/json")

	w := serve(r, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "MISSION_NOT_FOUND")
}

func TestRouter_Webhook(t *testing.T) {
	r := newTestRouter(t)
	body := []byte(`{"id":"evt_1","object":"event","type":"customer.created","data":{"object":{"id":"cus_1","object":"customer"}}}`)

	bad := httptest.NewRequest(http.MethodPost, "/v1/webhooks/payments", bytes.NewReader(body))
	bad.Header.Set("Stripe-Signature", "t=1,v1=deadbeef")
	assert.Equal(t, http.StatusBadRequest, serve(r, bad).Code)

	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{Payload: body, Secret: testWebhookSecret})
	good := httptest.NewRequest(http.MethodPost, "/v1/webhooks/payments", bytes.NewReader(body))
	good.Header.Set("Stripe-Signature", signed.Header)
	w := serve(r, good)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"received":true}`, w.Body.String())
}

func TestRouter_AdminRequiresKey(t *testing.T) {
	r := newTestRouter(t)

	assert.Equal(t, http.StatusUnauthorized, serve(r, httptest.NewRequest(http.MethodPost, "/v1/admin/reconcile", nil)).Code)

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/reconcile", nil)
	req.Header.Set(middleware.AdminKeyHeader, "admin-key")
	w := serve(r, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"scanned":0,"repaired":0,"failed":[]}`, w.Body.String())
}

func TestRouter_ChatFlow(t *testing.T) {
	r := newTestRouter(t)

	create := httptest.NewRequest(http.MethodPost, "/v1/chats", bytes.NewBufferString(`{"pro_id":"pro-1","client_id":"cli-1"}`))
	create.Header.Set("Content-Type", "application/json")
	w := serve(r, create)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"created":true`)

	again := httptest.NewRequest(http.MethodPost, "/v1/chats", bytes.NewBufferString(`{"pro_id":"pro-1","client_id":"cli-1"}`))
	again.Header.Set("Content-Type", "application/json")
	w = serve(r, again)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"created":false`)

	list := serve(r, httptest.NewRequest(http.MethodGet, "/v1/users/cli-1/chats", nil))
	assert.Equal(t, http.StatusOK, list.Code)
	assert.Contains(t, list.Body.String(), `"pro_id":"pro-1"`)
}
