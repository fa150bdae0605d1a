package advice

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

	"github.com/carson-networks/wallet-server/internal/advisor"
	"github.com/carson-networks/wallet-server/internal/handlers/v1/common"
	"github.com/carson-networks/wallet-server/internal/ledger"
	"github.com/carson-networks/wallet-server/internal/service"
)

type mockAdviceService struct {
	mock.Mock
}

func (m *mockAdviceService) Advice(ctx context.Context, userID uuid.UUID) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func (m *mockAdviceService) ExtractReceipt(ctx context.Context, userID uuid.UUID, base64Image string) (service.ReceiptScan, error) {
	args := m.Called(ctx, userID, base64Image)
	return args.Get(0).(service.ReceiptScan), args.Error(1)
}

func (m *mockAdviceService) AnalyzeImage(ctx context.Context, base64Image string) string {
	return m.Called(ctx, base64Image).String(0)
}

func newTestAPI(t *testing.T, svc *mockAdviceService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewHandler(svc).Register(api)
	return api
}

func TestHTTP_Advice(t *testing.T) {
	user := ledger.NewID()
	svc := new(mockAdviceService)
	svc.On("Advice", mock.Anything, user).Return("Spend less on coffee ☕", nil)

	resp := newTestAPI(t, svc).Post("/v1/advice", common.UserHeader+": "+user.String())
	require.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Text string `json:"text"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Spend less on coffee ☕", body.Text)
}

func TestHTTP_ExtractReceipt(t *testing.T) {
	user := ledger.NewID()
	svc := new(mockAdviceService)
	svc.On("ExtractReceipt", mock.Anything, user, "aGVsbG8=").Return(service.ReceiptScan{
		Info: &advisor.ReceiptInfo{Amount: 12990, Description: "Supermarket", Category: "food"},
		Form: ledger.TransactionForm{Amount: "12990", Description: "Supermarket", Category: "food", Type: ledger.TransactionTypeExpense},
	}, nil)

	resp := newTestAPI(t, svc).Post("/v1/receipt/extract", common.UserHeader+": "+user.String(), ImageBody{Image: "aGVsbG8="})
	require.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Receipt *Receipt               `json:"receipt"`
		Form    common.TransactionForm `json:"form"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotNil(t, body.Receipt)
	assert.Equal(t, int64(12990), body.Receipt.Amount)
	assert.Equal(t, "12990", body.Form.Amount)
}

func TestHTTP_ExtractReceipt_Unreadable(t *testing.T) {
	svc := new(mockAdviceService)
	svc.On("ExtractReceipt", mock.Anything, uuid.Nil, "aGVsbG8=").Return(service.ReceiptScan{
		Form: ledger.TransactionForm{Type: ledger.TransactionTypeExpense},
	}, nil)

	resp := newTestAPI(t, svc).Post("/v1/receipt/extract", ImageBody{Image: "aGVsbG8="})
	require.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Receipt *Receipt `json:"receipt"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Nil(t, body.Receipt)
}

func TestHTTP_AnalyzeImage_RequiresImage(t *testing.T) {
	svc := new(mockAdviceService)

	resp := newTestAPI(t, svc).Post("/v1/image/analyze", map[string]any{})
	assert.GreaterOrEqual(t, resp.Code, 400)
	svc.AssertNotCalled(t, "AnalyzeImage")
}

func TestHTTP_AnalyzeImage(t *testing.T) {
	svc := new(mockAdviceService)
	svc.On("AnalyzeImage", mock.Anything, "aGVsbG8=").Return(advisor.ImageFailed)

	resp := newTestAPI(t, svc).Post("/v1/image/analyze", ImageBody{Image: "aGVsbG8="})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), advisor.ImageFailed)
}
