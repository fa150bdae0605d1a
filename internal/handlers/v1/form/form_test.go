package form

import (
	"context"
	"encoding/json"
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
)

type mockFormService struct {
	mock.Mock
}

func (m *mockFormService) CheckTransactionForm(ctx context.Context, userID, id uuid.UUID, form ledger.TransactionForm) (service.FormCheck, error) {
	args := m.Called(ctx, userID, id, form)
	return args.Get(0).(service.FormCheck), args.Error(1)
}

func (m *mockFormService) CheckCardForm(ctx context.Context, userID, id uuid.UUID, form ledger.CardForm) (service.FormCheck, error) {
	args := m.Called(ctx, userID, id, form)
	return args.Get(0).(service.FormCheck), args.Error(1)
}

func (m *mockFormService) CheckSubscriptionForm(ctx context.Context, userID, id uuid.UUID, form ledger.SubscriptionForm) (service.FormCheck, error) {
	args := m.Called(ctx, userID, id, form)
	return args.Get(0).(service.FormCheck), args.Error(1)
}

func (m *mockFormService) BlankTransactionForm(ctx context.Context, userID uuid.UUID) (ledger.TransactionForm, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(ledger.TransactionForm), args.Error(1)
}

func (m *mockFormService) BlankSubscriptionForm(ctx context.Context, userID uuid.UUID) (ledger.SubscriptionForm, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(ledger.SubscriptionForm), args.Error(1)
}

func newTestAPI(t *testing.T, svc *mockFormService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewCheckHandler(svc).Register(api)
	NewBlankHandler(svc).Register(api)
	return api
}

func TestHTTP_CheckTransactionForm_Dirty(t *testing.T) {
	user := ledger.NewID()
	id := ledger.NewID()
	prompt := ledger.ConfirmDiscardChanges("transaction")

	svc := new(mockFormService)
	svc.On("CheckTransactionForm", mock.Anything, user, id, mock.MatchedBy(func(f ledger.TransactionForm) bool {
		return f.Description == "changed"
	})).Return(service.FormCheck{Dirty: true, Confirmation: &prompt}, nil)

	resp := newTestAPI(t, svc).Post("/v1/form/transaction/check", common.UserHeader+": "+user.String(), map[string]any{
		"id":   id.String(),
		"form": common.TransactionForm{Amount: "10", Description: "changed", CardID: ledger.NewID().String(), Date: "2025-10-02"},
	})
	require.Equal(t, http.StatusOK, resp.Code)

	var body CheckResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Dirty)
	require.NotNil(t, body.Confirmation)
	assert.Equal(t, prompt.Message, body.Confirmation.Message)
}

func TestHTTP_CheckCardForm_NewClean(t *testing.T) {
	user := ledger.NewID()
	svc := new(mockFormService)
	svc.On("CheckCardForm", mock.Anything, user, uuid.Nil, mock.Anything).Return(service.FormCheck{}, nil)

	resp := newTestAPI(t, svc).Post("/v1/form/card/check", common.UserHeader+": "+user.String(), map[string]any{
		"form": common.CardForm{},
	})
	require.Equal(t, http.StatusOK, resp.Code)

	var body CheckResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Dirty)
	assert.Nil(t, body.Confirmation)
}

func TestHTTP_CheckSubscriptionForm_NotFound(t *testing.T) {
	user := ledger.NewID()
	id := ledger.NewID()
	svc := new(mockFormService)
	svc.On("CheckSubscriptionForm", mock.Anything, user, id, mock.Anything).Return(service.FormCheck{}, service.ErrNotFound)

	resp := newTestAPI(t, svc).Post("/v1/form/subscription/check", common.UserHeader+": "+user.String(), map[string]any{
		"id":   id.String(),
		"form": common.SubscriptionForm{Name: "x"},
	})
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_NewTransactionForm(t *testing.T) {
	user := ledger.NewID()
	cardID := ledger.NewID()
	svc := new(mockFormService)
	svc.On("BlankTransactionForm", mock.Anything, user).Return(ledger.TransactionForm{
		CardID: cardID.String(), Date: "2025-10-03", Type: ledger.TransactionTypeExpense, Category: ledger.DefaultCategory,
	}, nil)

	resp := newTestAPI(t, svc).Get("/v1/form/transaction/new", common.UserHeader+": "+user.String())
	require.Equal(t, http.StatusOK, resp.Code)

	var body common.TransactionForm
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, cardID.String(), body.CardID)
	assert.Equal(t, "expense", body.Type)
}
