package card

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/wallet-server/internal/handlers/v1/common"
	"github.com/carson-networks/wallet-server/internal/ledger"
)

type PayFormInput struct {
	common.Identity
	ID string `path:"id" doc:"Card UUID"`
}

type PayFormOutput struct {
	Body common.TransactionForm
}

type payFormBuilder interface {
	PayBillForm(ctx context.Context, userID, id uuid.UUID) (ledger.TransactionForm, error)
}

// PayFormHandler handles GET /v1/card/{id}/pay-form.
type PayFormHandler struct {
	CardService payFormBuilder
}

func NewPayFormHandler(svc payFormBuilder) *PayFormHandler {
	return &PayFormHandler{CardService: svc}
}

func (h *PayFormHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "card-pay-form",
		Method:      http.MethodGet,
		Path:        "/v1/card/{id}/pay-form",
		Summary:     "Bill payment form",
		Description: "Returns a transaction form prefilled to pay the card's current bill.",
		Tags:        []string{"Cards"},
	}, h.handle)
}

func (h *PayFormHandler) handle(ctx context.Context, input *PayFormInput) (*PayFormOutput, error) {
	userID, err := input.User()
	if err != nil {
		return nil, err
	}
	id, err := common.ParseID(input.ID)
	if err != nil {
		return nil, err
	}

	form, err := h.CardService.PayBillForm(ctx, userID, id)
	if err != nil {
		return nil, common.ServiceError(err, "failed to build payment form")
	}
	return &PayFormOutput{Body: common.NewTransactionForm(form)}, nil
}
