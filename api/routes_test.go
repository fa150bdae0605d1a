package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/wallet-server/internal/logging"
	"github.com/carson-networks/wallet-server/internal/service"
	"github.com/carson-networks/wallet-server/internal/state"
)

func newTestRest() *Rest {
	return &Rest{
		Logger:  logging.SetupLogging("error"),
		Port:    "0",
		Service: service.NewService(service.Dependencies{Sessions: state.NewRegistry()}),
	}
}

func TestHandler_Status(t *testing.T) {
	handler := newTestRest().Handler()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/status", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_RegistersOpenAPIRoutes(t *testing.T) {
	handler := newTestRest().Handler()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	for _, path := range []string{
		"/v1/cards",
		"/v1/transactions",
		"/v1/subscriptions",
		"/v1/summary",
		"/v1/settings",
		"/v1/profile",
		"/v1/advice",
		"/v1/session/refresh",
		"/v1/form/transaction/check",
	} {
		assert.Contains(t, body, path)
	}
}

func TestHandler_AnonymousListIsEmpty(t *testing.T) {
	handler := newTestRest().Handler()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/cards", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"cards":[]`)
}
