package subscription

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/wallet-server/internal/handlers/v1/common"
	"github.com/carson-networks/wallet-server/internal/service"
)

type ListSubscriptionsInput struct {
	common.Identity
}

type ListSubscriptionsResponseBody struct {
	Subscriptions []Due  `json:"subscriptions" doc:"Soonest charge first"`
	Totals        Totals `json:"totals"`
}

type ListSubscriptionsOutput struct {
	Body ListSubscriptionsResponseBody
}

type subscriptionLister interface {
	ListSubscriptions(ctx context.Context, userID uuid.UUID) (service.SubscriptionList, error)
}

// ListSubscriptionsHandler handles GET /v1/subscriptions.
type ListSubscriptionsHandler struct {
	SubscriptionService subscriptionLister
}

func NewListSubscriptionsHandler(svc subscriptionLister) *ListSubscriptionsHandler {
	return &ListSubscriptionsHandler{SubscriptionService: svc}
}

func (h *ListSubscriptionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-subscriptions",
		Method:      http.MethodGet,
		Path:        "/v1/subscriptions",
		Summary:     "List subscriptions",
		Description: "Returns every subscription ordered by days until the next charge, with monthly and yearly totals.",
		Tags:        []string{"Subscriptions"},
	}, h.handle)
}

func (h *ListSubscriptionsHandler) handle(ctx context.Context, input *ListSubscriptionsInput) (*ListSubscriptionsOutput, error) {
	userID, err := input.User()
	if err != nil {
		return nil, err
	}

	list, err := h.SubscriptionService.ListSubscriptions(ctx, userID)
	if err != nil {
		return nil, common.ServiceError(err, "failed to list subscriptions")
	}

	return &ListSubscriptionsOutput{Body: ListSubscriptionsResponseBody{
		Subscriptions: NewDueList(list.Items),
		Totals:        NewTotals(list.Totals),
	}}, nil
}
