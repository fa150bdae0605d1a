package form

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/wallet-server/internal/handlers/v1/common"
	"github.com/carson-networks/wallet-server/internal/ledger"
	"github.com/carson-networks/wallet-server/internal/service"
)

type Confirmation struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// CheckResponseBody tells the client whether closing the form loses edits.
type CheckResponseBody struct {
	Dirty        bool          `json:"dirty"`
	Confirmation *Confirmation `json:"confirmation,omitempty" doc:"Prompt to show before discarding"`
}

type CheckOutput struct {
	Body CheckResponseBody
}

type CheckTransactionInput struct {
	common.Identity
	Body struct {
		ID   string                 `json:"id,omitempty" doc:"Transaction being edited, empty for a new one"`
		Form common.TransactionForm `json:"form"`
	}
}

type CheckCardInput struct {
	common.Identity
	Body struct {
		ID   string          `json:"id,omitempty" doc:"Card being edited, empty for a new one"`
		Form common.CardForm `json:"form"`
	}
}

type CheckSubscriptionInput struct {
	common.Identity
	Body struct {
		ID   string                  `json:"id,omitempty" doc:"Subscription being edited, empty for a new one"`
		Form common.SubscriptionForm `json:"form"`
	}
}

type formChecker interface {
	CheckTransactionForm(ctx context.Context, userID, id uuid.UUID, form ledger.TransactionForm) (service.FormCheck, error)
	CheckCardForm(ctx context.Context, userID, id uuid.UUID, form ledger.CardForm) (service.FormCheck, error)
	CheckSubscriptionForm(ctx context.Context, userID, id uuid.UUID, form ledger.SubscriptionForm) (service.FormCheck, error)
}

// CheckHandler handles POST /v1/form/{kind}/check.
type CheckHandler struct {
	FormService formChecker
}

func NewCheckHandler(svc formChecker) *CheckHandler {
	return &CheckHandler{FormService: svc}
}

func (h *CheckHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "check-transaction-form",
		Method:      http.MethodPost,
		Path:        "/v1/form/transaction/check",
		Summary:     "Check transaction form",
		Description: "Reports whether closing the transaction form would discard edits.",
		Tags:        []string{"Forms"},
	}, h.checkTransaction)

	huma.Register(api, huma.Operation{
		OperationID: "check-card-form",
		Method:      http.MethodPost,
		Path:        "/v1/form/card/check",
		Summary:     "Check card form",
		Tags:        []string{"Forms"},
	}, h.checkCard)

	huma.Register(api, huma.Operation{
		OperationID: "check-subscription-form",
		Method:      http.MethodPost,
		Path:        "/v1/form/subscription/check",
		Summary:     "Check subscription form",
		Tags:        []string{"Forms"},
	}, h.checkSubscription)
}

// parseCheckTarget resolves the caller and the optional id of the edited entity.
func parseCheckTarget(identity common.Identity, rawID string) (userID, id uuid.UUID, err error) {
	userID, err = identity.User()
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	if rawID == "" {
		return userID, uuid.Nil, nil
	}
	id, err = common.ParseID(rawID)
	return userID, id, err
}

func (h *CheckHandler) checkTransaction(ctx context.Context, input *CheckTransactionInput) (*CheckOutput, error) {
	userID, id, err := parseCheckTarget(input.Identity, input.Body.ID)
	if err != nil {
		return nil, err
	}
	check, err := h.FormService.CheckTransactionForm(ctx, userID, id, input.Body.Form.ToLedger())
	return checkOutput(check, err)
}

func (h *CheckHandler) checkCard(ctx context.Context, input *CheckCardInput) (*CheckOutput, error) {
	userID, id, err := parseCheckTarget(input.Identity, input.Body.ID)
	if err != nil {
		return nil, err
	}
	check, err := h.FormService.CheckCardForm(ctx, userID, id, input.Body.Form.ToLedger())
	return checkOutput(check, err)
}

func (h *CheckHandler) checkSubscription(ctx context.Context, input *CheckSubscriptionInput) (*CheckOutput, error) {
	userID, id, err := parseCheckTarget(input.Identity, input.Body.ID)
	if err != nil {
		return nil, err
	}
	check, err := h.FormService.CheckSubscriptionForm(ctx, userID, id, input.Body.Form.ToLedger())
	return checkOutput(check, err)
}

func checkOutput(check service.FormCheck, err error) (*CheckOutput, error) {
	if err != nil {
		return nil, common.ServiceError(err, "failed to check form")
	}
	body := CheckResponseBody{Dirty: check.Dirty}
	if check.Confirmation != nil {
		body.Confirmation = &Confirmation{Title: check.Confirmation.Title, Message: check.Confirmation.Message}
	}
	return &CheckOutput{Body: body}, nil
}
