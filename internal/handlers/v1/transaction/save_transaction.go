package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/wallet-server/internal/handlers/v1/common"
	"github.com/carson-networks/wallet-server/internal/ledger"
)

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	common.Identity
	Body common.TransactionForm
}

// UpdateTransactionInput is the Huma input for replacing a transaction.
type UpdateTransactionInput struct {
	common.Identity
	ID   string `path:"id" doc:"Transaction UUID"`
	Body common.TransactionForm
}

// SaveTransactionOutput is the Huma output for a saved transaction.
type SaveTransactionOutput struct {
	Status int
	Body   Transaction
}

// transactionSaver is the interface for creating and replacing transactions.
type transactionSaver interface {
	SaveTransaction(ctx context.Context, userID, id uuid.UUID, form ledger.TransactionForm) (ledger.Transaction, error)
}

// SaveTransactionHandler handles POST /v1/transaction and PUT /v1/transaction/{id}.
type SaveTransactionHandler struct {
	TransactionService transactionSaver
}

// NewSaveTransactionHandler creates a new SaveTransactionHandler.
func NewSaveTransactionHandler(svc transactionSaver) *SaveTransactionHandler {
	return &SaveTransactionHandler{TransactionService: svc}
}

// Register registers the create and update transaction endpoints with the Huma API.
func (h *SaveTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/v1/transaction",
		Summary:       "Create transaction",
		Description:   "Creates a new transaction from the submitted form.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.create)

	huma.Register(api, huma.Operation{
		OperationID: "update-transaction",
		Method:      http.MethodPut,
		Path:        "/v1/transaction/{id}",
		Summary:     "Update transaction",
		Description: "Replaces a transaction with the submitted form.",
		Tags:        []string{"Transactions"},
	}, h.update)
}

func (h *SaveTransactionHandler) create(ctx context.Context, input *CreateTransactionInput) (*SaveTransactionOutput, error) {
	return h.save(ctx, input.Identity, uuid.Nil, input.Body, http.StatusCreated)
}

func (h *SaveTransactionHandler) update(ctx context.Context, input *UpdateTransactionInput) (*SaveTransactionOutput, error) {
	id, err := common.ParseID(input.ID)
	if err != nil {
		return nil, err
	}
	return h.save(ctx, input.Identity, id, input.Body, http.StatusOK)
}

func (h *SaveTransactionHandler) save(ctx context.Context, identity common.Identity, id uuid.UUID, form common.TransactionForm, status int) (*SaveTransactionOutput, error) {
	userID, err := identity.User()
	if err != nil {
		return nil, err
	}

	saved, err := h.TransactionService.SaveTransaction(ctx, userID, id, form.ToLedger())
	if err != nil {
		return nil, common.ServiceError(err, "failed to save transaction")
	}
	return &SaveTransactionOutput{Status: status, Body: NewTransaction(saved)}, nil
}
