package card

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/wallet-server/internal/handlers/v1/common"
	"github.com/carson-networks/wallet-server/internal/service"
)

// ListCardsInput is the Huma input for listing cards.
type ListCardsInput struct {
	common.Identity
}

// ListCardsResponseBody is the response body for listing cards.
type ListCardsResponseBody struct {
	Cards        []Card `json:"cards" doc:"Cards with derived balances"`
	TotalBalance int64  `json:"totalBalance" doc:"Sum of all card balances"`
}

// ListCardsOutput is the Huma output for listing cards.
type ListCardsOutput struct {
	Body ListCardsResponseBody
}

// cardLister is the interface for listing cards.
type cardLister interface {
	ListCards(ctx context.Context, userID uuid.UUID) ([]service.CardView, error)
}

// ListCardsHandler handles GET /v1/cards.
type ListCardsHandler struct {
	CardService cardLister
}

func NewListCardsHandler(svc cardLister) *ListCardsHandler {
	return &ListCardsHandler{CardService: svc}
}

// Register registers the list cards endpoint with the Huma API.
func (h *ListCardsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-cards",
		Method:      http.MethodGet,
		Path:        "/v1/cards",
		Summary:     "List cards",
		Description: "Returns every card with its balance, current bill, payment status and utilization.",
		Tags:        []string{"Cards"},
	}, h.handle)
}

func (h *ListCardsHandler) handle(ctx context.Context, input *ListCardsInput) (*ListCardsOutput, error) {
	userID, err := input.User()
	if err != nil {
		return nil, err
	}

	views, err := h.CardService.ListCards(ctx, userID)
	if err != nil {
		return nil, common.ServiceError(err, "failed to list cards")
	}

	resp := ListCardsResponseBody{Cards: make([]Card, len(views))}
	for i, v := range views {
		resp.Cards[i] = NewCardView(v)
		resp.TotalBalance += v.CurrentBalance
	}
	return &ListCardsOutput{Body: resp}, nil
}
