package profile

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/wallet-server/internal/handlers/v1/common"
	"github.com/carson-networks/wallet-server/internal/ledger"
	"github.com/carson-networks/wallet-server/internal/service"
)

type mockProfileService struct {
	mock.Mock
}

func (m *mockProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*ledger.Profile, error) {
	args := m.Called(ctx, userID)
	p, _ := args.Get(0).(*ledger.Profile)
	return p, args.Error(1)
}

func (m *mockProfileService) SaveProfile(ctx context.Context, userID uuid.UUID, update service.ProfileUpdate) (ledger.Profile, error) {
	args := m.Called(ctx, userID, update)
	return args.Get(0).(ledger.Profile), args.Error(1)
}

func newTestAPI(t *testing.T, svc *mockProfileService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewHandler(svc).Register(api)
	return api
}

func TestHTTP_GetProfile_None(t *testing.T) {
	user := ledger.NewID()
	svc := new(mockProfileService)
	svc.On("GetProfile", mock.Anything, user).Return(nil, nil)

	resp := newTestAPI(t, svc).Get("/v1/profile", common.UserHeader+": "+user.String())
	require.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Profile *Profile `json:"profile"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Nil(t, body.Profile)
}

func TestHTTP_PutProfile(t *testing.T) {
	user := ledger.NewID()
	updatedAt := time.Date(2025, 10, 3, 12, 0, 0, 0, time.UTC)
	svc := new(mockProfileService)
	svc.On("SaveProfile", mock.Anything, user, service.ProfileUpdate{Username: "ana", Website: "https://ana.dev"}).
		Return(ledger.Profile{ID: user, Username: "ana", Website: "https://ana.dev", UpdatedAt: updatedAt}, nil)

	resp := newTestAPI(t, svc).Put("/v1/profile", common.UserHeader+": "+user.String(),
		ProfileBody{Username: "ana", Website: "https://ana.dev"})
	require.Equal(t, http.StatusOK, resp.Code)

	var body Profile
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ana", body.Username)
	assert.Equal(t, "2025-10-03T12:00:00Z", body.UpdatedAt)
}

func TestHTTP_GetProfile_Unauthenticated(t *testing.T) {
	svc := new(mockProfileService)
	svc.On("GetProfile", mock.Anything, uuid.Nil).Return(nil, service.ErrUnauthenticated)

	resp := newTestAPI(t, svc).Get("/v1/profile")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}
