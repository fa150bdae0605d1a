package form

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/wallet-server/internal/handlers/v1/common"
	"github.com/carson-networks/wallet-server/internal/ledger"
)

type BlankFormInput struct {
	common.Identity
}

type BlankTransactionOutput struct {
	Body common.TransactionForm
}

type BlankSubscriptionOutput struct {
	Body common.SubscriptionForm
}

type blankFormBuilder interface {
	BlankTransactionForm(ctx context.Context, userID uuid.UUID) (ledger.TransactionForm, error)
	BlankSubscriptionForm(ctx context.Context, userID uuid.UUID) (ledger.SubscriptionForm, error)
}

// BlankHandler handles GET /v1/form/{kind}/new.
type BlankHandler struct {
	FormService blankFormBuilder
}

func NewBlankHandler(svc blankFormBuilder) *BlankHandler {
	return &BlankHandler{FormService: svc}
}

func (h *BlankHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "new-transaction-form",
		Method:      http.MethodGet,
		Path:        "/v1/form/transaction/new",
		Summary:     "New transaction form",
		Description: "Returns the initial values of a new transaction form, with the default card preselected.",
		Tags:        []string{"Forms"},
	}, h.transaction)

	huma.Register(api, huma.Operation{
		OperationID: "new-subscription-form",
		Method:      http.MethodGet,
		Path:        "/v1/form/subscription/new",
		Summary:     "New subscription form",
		Tags:        []string{"Forms"},
	}, h.subscription)
}

func (h *BlankHandler) transaction(ctx context.Context, input *BlankFormInput) (*BlankTransactionOutput, error) {
	userID, err := input.User()
	if err != nil {
		return nil, err
	}
	f, err := h.FormService.BlankTransactionForm(ctx, userID)
	if err != nil {
		return nil, common.ServiceError(err, "failed to build form")
	}
	return &BlankTransactionOutput{Body: common.NewTransactionForm(f)}, nil
}

func (h *BlankHandler) subscription(ctx context.Context, input *BlankFormInput) (*BlankSubscriptionOutput, error) {
	userID, err := input.User()
	if err != nil {
		return nil, err
	}
	f, err := h.FormService.BlankSubscriptionForm(ctx, userID)
	if err != nil {
		return nil, common.ServiceError(err, "failed to build form")
	}
	return &BlankSubscriptionOutput{Body: common.NewSubscriptionForm(f)}, nil
}
