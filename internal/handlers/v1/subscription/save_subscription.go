package subscription

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/wallet-server/internal/handlers/v1/common"
	"github.com/carson-networks/wallet-server/internal/ledger"
)

type CreateSubscriptionInput struct {
	common.Identity
	Body common.SubscriptionForm
}

type UpdateSubscriptionInput struct {
	common.Identity
	ID   string `path:"id" doc:"Subscription UUID"`
	Body common.SubscriptionForm
}

type SaveSubscriptionOutput struct {
	Status int
	Body   Subscription
}

type subscriptionSaver interface {
	SaveSubscription(ctx context.Context, userID, id uuid.UUID, form ledger.SubscriptionForm) (ledger.Subscription, error)
}

// SaveSubscriptionHandler handles POST /v1/subscription and PUT /v1/subscription/{id}.
type SaveSubscriptionHandler struct {
	SubscriptionService subscriptionSaver
}

func NewSaveSubscriptionHandler(svc subscriptionSaver) *SaveSubscriptionHandler {
	return &SaveSubscriptionHandler{SubscriptionService: svc}
}

func (h *SaveSubscriptionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-subscription",
		Method:        http.MethodPost,
		Path:          "/v1/subscription",
		Summary:       "Create subscription",
		Tags:          []string{"Subscriptions"},
		DefaultStatus: http.StatusCreated,
	}, h.create)

	huma.Register(api, huma.Operation{
		OperationID: "update-subscription",
		Method:      http.MethodPut,
		Path:        "/v1/subscription/{id}",
		Summary:     "Update subscription",
		Tags:        []string{"Subscriptions"},
	}, h.update)
}

func (h *SaveSubscriptionHandler) create(ctx context.Context, input *CreateSubscriptionInput) (*SaveSubscriptionOutput, error) {
	return h.save(ctx, input.Identity, uuid.Nil, input.Body, http.StatusCreated)
}

func (h *SaveSubscriptionHandler) update(ctx context.Context, input *UpdateSubscriptionInput) (*SaveSubscriptionOutput, error) {
	id, err := common.ParseID(input.ID)
	if err != nil {
		return nil, err
	}
	return h.save(ctx, input.Identity, id, input.Body, http.StatusOK)
}

func (h *SaveSubscriptionHandler) save(ctx context.Context, identity common.Identity, id uuid.UUID, form common.SubscriptionForm, status int) (*SaveSubscriptionOutput, error) {
	userID, err := identity.User()
	if err != nil {
		return nil, err
	}

	saved, err := h.SubscriptionService.SaveSubscription(ctx, userID, id, form.ToLedger())
	if err != nil {
		return nil, common.ServiceError(err, "failed to save subscription")
	}
	return &SaveSubscriptionOutput{Status: status, Body: NewSubscription(saved)}, nil
}
