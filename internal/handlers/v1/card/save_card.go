package card

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/wallet-server/internal/handlers/v1/common"
	"github.com/carson-networks/wallet-server/internal/ledger"
)

// CreateCardInput is the Huma input for creating a card.
type CreateCardInput struct {
	common.Identity
	Body common.CardForm
}

// UpdateCardInput is the Huma input for replacing a card.
type UpdateCardInput struct {
	common.Identity
	ID   string `path:"id" doc:"Card UUID"`
	Body common.CardForm
}

// SaveCardOutput is the Huma output for a saved card.
type SaveCardOutput struct {
	Status int
	Body   Card
}

type cardSaver interface {
	SaveCard(ctx context.Context, userID, id uuid.UUID, form ledger.CardForm) (ledger.Card, error)
}

// SaveCardHandler handles POST /v1/card and PUT /v1/card/{id}.
type SaveCardHandler struct {
	CardService cardSaver
}

func NewSaveCardHandler(svc cardSaver) *SaveCardHandler {
	return &SaveCardHandler{CardService: svc}
}

func (h *SaveCardHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-card",
		Method:        http.MethodPost,
		Path:          "/v1/card",
		Summary:       "Create card",
		Description:   "Creates a card. A missing last4 is generated.",
		Tags:          []string{"Cards"},
		DefaultStatus: http.StatusCreated,
	}, h.create)

	huma.Register(api, huma.Operation{
		OperationID: "update-card",
		Method:      http.MethodPut,
		Path:        "/v1/card/{id}",
		Summary:     "Update card",
		Description: "Replaces a card. The payment reminder is kept.",
		Tags:        []string{"Cards"},
	}, h.update)
}

func (h *SaveCardHandler) create(ctx context.Context, input *CreateCardInput) (*SaveCardOutput, error) {
	return h.save(ctx, input.Identity, uuid.Nil, input.Body, http.StatusCreated)
}

func (h *SaveCardHandler) update(ctx context.Context, input *UpdateCardInput) (*SaveCardOutput, error) {
	id, err := common.ParseID(input.ID)
	if err != nil {
		return nil, err
	}
	return h.save(ctx, input.Identity, id, input.Body, http.StatusOK)
}

func (h *SaveCardHandler) save(ctx context.Context, identity common.Identity, id uuid.UUID, form common.CardForm, status int) (*SaveCardOutput, error) {
	userID, err := identity.User()
	if err != nil {
		return nil, err
	}

	saved, err := h.CardService.SaveCard(ctx, userID, id, form.ToLedger())
	if err != nil {
		return nil, common.ServiceError(err, "failed to save card")
	}
	return &SaveCardOutput{Status: status, Body: NewCard(saved)}, nil
}
