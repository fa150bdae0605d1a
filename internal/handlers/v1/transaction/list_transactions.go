package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/wallet-server/internal/handlers/v1/common"
	"github.com/carson-networks/wallet-server/internal/logging"
	"github.com/carson-networks/wallet-server/internal/service"
)

// ListTransactionsInput is the Huma input for listing transactions.
type ListTransactionsInput struct {
	common.Identity
	CardID string `query:"cardId" doc:"Only transactions on this card"`
}

// ListTransactionsResponseBody is the response body for listing transactions.
type ListTransactionsResponseBody struct {
	Transactions []Transaction `json:"transactions" doc:"Transactions, newest first"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	ListTransactions(ctx context.Context, userID, cardID uuid.UUID) ([]service.TransactionView, error)
}

// ListTransactionsHandler handles GET /v1/transactions.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/transactions",
		Summary:     "List transactions",
		Description: "Returns the user's transactions newest first, optionally only those of one card.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseListTransactionsInput parses and validates the API input.
// An empty cardId means every card.
func parseListTransactionsInput(input *ListTransactionsInput) (userID, cardID uuid.UUID, err error) {
	userID, err = input.User()
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	if input.CardID == "" {
		return userID, uuid.Nil, nil
	}
	cardID, err = uuid.FromString(input.CardID)
	if err != nil {
		return uuid.Nil, uuid.Nil, huma.NewError(http.StatusBadRequest, "invalid cardId", err)
	}
	return userID, cardID, nil
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)
	userID, cardID, err := parseListTransactionsInput(input)
	if err != nil {
		return nil, err
	}

	stopTimer := logData.AddTiming("listTransactionsMs")
	transactions, err := h.TransactionService.ListTransactions(ctx, userID, cardID)
	stopTimer()
	if err != nil {
		return nil, common.ServiceError(err, "failed to list transactions")
	}

	resp := ListTransactionsResponseBody{
		Transactions: make([]Transaction, len(transactions)),
	}
	for i, tx := range transactions {
		resp.Transactions[i] = NewTransactionView(tx)
	}

	return &ListTransactionsOutput{Body: resp}, nil
}
