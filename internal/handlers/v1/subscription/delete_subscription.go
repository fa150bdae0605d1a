package subscription

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/wallet-server/internal/handlers/v1/common"
)

type DeleteSubscriptionInput struct {
	common.Identity
	ID      string `path:"id" doc:"Subscription UUID"`
	Confirm bool   `query:"confirm" doc:"Set once the user accepted the delete prompt"`
}

type subscriptionDeleter interface {
	DeleteSubscription(ctx context.Context, userID, id uuid.UUID, confirmed bool) error
}

// DeleteSubscriptionHandler handles DELETE /v1/subscription/{id}.
type DeleteSubscriptionHandler struct {
	SubscriptionService subscriptionDeleter
}

func NewDeleteSubscriptionHandler(svc subscriptionDeleter) *DeleteSubscriptionHandler {
	return &DeleteSubscriptionHandler{SubscriptionService: svc}
}

func (h *DeleteSubscriptionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-subscription",
		Method:        http.MethodDelete,
		Path:          "/v1/subscription/{id}",
		Summary:       "Delete subscription",
		Description:   "Deletes a subscription. Without confirm=true it answers 428 with the prompt to show.",
		Tags:          []string{"Subscriptions"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteSubscriptionHandler) handle(ctx context.Context, input *DeleteSubscriptionInput) (*struct{}, error) {
	userID, err := input.User()
	if err != nil {
		return nil, err
	}
	id, err := common.ParseID(input.ID)
	if err != nil {
		return nil, err
	}

	if err := h.SubscriptionService.DeleteSubscription(ctx, userID, id, input.Confirm); err != nil {
		return nil, common.ServiceError(err, "failed to delete subscription")
	}
	return nil, nil
}
