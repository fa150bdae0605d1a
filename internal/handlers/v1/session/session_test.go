package session

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/wallet-server/internal/handlers/v1/common"
	"github.com/carson-networks/wallet-server/internal/ledger"
	"github.com/carson-networks/wallet-server/internal/service"
	"github.com/carson-networks/wallet-server/internal/state"
)

type mockSessionService struct {
	mock.Mock
}

func (m *mockSessionService) Load(ctx context.Context, userID uuid.UUID) (state.Snapshot, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(state.Snapshot), args.Error(1)
}

func (m *mockSessionService) Drop(userID uuid.UUID) {
	m.Called(userID)
}

func newTestAPI(t *testing.T, svc *mockSessionService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewHandler(svc).Register(api)
	return api
}

func TestHTTP_Refresh(t *testing.T) {
	user := ledger.NewID()
	svc := new(mockSessionService)
	svc.On("Load", mock.Anything, user).Return(state.Snapshot{
		Cards:        []ledger.Card{{ID: ledger.NewID()}},
		Transactions: []ledger.Transaction{{ID: ledger.NewID()}, {ID: ledger.NewID()}},
	}, nil)

	resp := newTestAPI(t, svc).Post("/v1/session/refresh", common.UserHeader+": "+user.String())
	require.Equal(t, http.StatusOK, resp.Code)

	var body RefreshResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, RefreshResponseBody{Cards: 1, Transactions: 2}, body)
}

func TestHTTP_Refresh_Failure(t *testing.T) {
	user := ledger.NewID()
	svc := new(mockSessionService)
	svc.On("Load", mock.Anything, user).
		Return(state.Snapshot{}, &service.PersistenceError{Message: "failed to load data", Err: errors.New("db down")})

	resp := newTestAPI(t, svc).Post("/v1/session/refresh", common.UserHeader+": "+user.String())
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Contains(t, resp.Body.String(), "failed to load data")
}

func TestHTTP_Refresh_Anonymous(t *testing.T) {
	svc := new(mockSessionService)
	resp := newTestAPI(t, svc).Post("/v1/session/refresh")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestHTTP_EndSession(t *testing.T) {
	user := ledger.NewID()
	svc := new(mockSessionService)
	svc.On("Drop", user).Return()

	resp := newTestAPI(t, svc).Delete("/v1/session", common.UserHeader+": "+user.String())
	assert.Equal(t, http.StatusNoContent, resp.Code)
	svc.AssertExpectations(t)
}
