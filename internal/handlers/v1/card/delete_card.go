package card

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/wallet-server/internal/handlers/v1/common"
)

// DeleteCardInput is the Huma input for deleting a card.
type DeleteCardInput struct {
	common.Identity
	ID      string `path:"id" doc:"Card UUID"`
	Confirm bool   `query:"confirm" doc:"Set once the user accepted the delete prompt"`
}

type cardDeleter interface {
	DeleteCard(ctx context.Context, userID, id uuid.UUID, confirmed bool) error
}

// DeleteCardHandler handles DELETE /v1/card/{id}.
type DeleteCardHandler struct {
	CardService cardDeleter
}

func NewDeleteCardHandler(svc cardDeleter) *DeleteCardHandler {
	return &DeleteCardHandler{CardService: svc}
}

func (h *DeleteCardHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-card",
		Method:      http.MethodDelete,
		Path:        "/v1/card/{id}",
		Summary:     "Delete card",
		Description: "Deletes a card. Without confirm=true it answers 428 with the prompt to show. " +
			"Transactions on the card are kept.",
		Tags:          []string{"Cards"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteCardHandler) handle(ctx context.Context, input *DeleteCardInput) (*struct{}, error) {
	userID, err := input.User()
	if err != nil {
		return nil, err
	}
	id, err := common.ParseID(input.ID)
	if err != nil {
		return nil, err
	}

	if err := h.CardService.DeleteCard(ctx, userID, id, input.Confirm); err != nil {
		return nil, common.ServiceError(err, "failed to delete card")
	}
	return nil, nil
}
