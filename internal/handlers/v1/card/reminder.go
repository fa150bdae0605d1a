package card

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/wallet-server/internal/handlers/v1/common"
	"github.com/carson-networks/wallet-server/internal/ledger"
)

type ReminderBody struct {
	Date string `json:"date" required:"true" doc:"YYYY-MM-DD"`
}

// SetReminderInput is the Huma input for setting a payment reminder.
type SetReminderInput struct {
	common.Identity
	ID   string `path:"id" doc:"Card UUID"`
	Body ReminderBody
}

type ClearReminderInput struct {
	common.Identity
	ID string `path:"id" doc:"Card UUID"`
}

type ReminderOutput struct {
	Body Card
}

type reminderSetter interface {
	SetReminder(ctx context.Context, userID, id uuid.UUID, date *time.Time) (ledger.Card, error)
	ClearReminder(ctx context.Context, userID, id uuid.UUID) (ledger.Card, error)
}

// ReminderHandler handles PUT and DELETE /v1/card/{id}/reminder.
type ReminderHandler struct {
	CardService reminderSetter
}

func NewReminderHandler(svc reminderSetter) *ReminderHandler {
	return &ReminderHandler{CardService: svc}
}

func (h *ReminderHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "set-card-reminder",
		Method:      http.MethodPut,
		Path:        "/v1/card/{id}/reminder",
		Summary:     "Set payment reminder",
		Description: "Sets a one-off payment reminder. It takes precedence over the card's automatic payment status.",
		Tags:        []string{"Cards"},
	}, h.set)

	huma.Register(api, huma.Operation{
		OperationID: "clear-card-reminder",
		Method:      http.MethodDelete,
		Path:        "/v1/card/{id}/reminder",
		Summary:     "Clear payment reminder",
		Tags:        []string{"Cards"},
	}, h.clear)
}

func (h *ReminderHandler) set(ctx context.Context, input *SetReminderInput) (*ReminderOutput, error) {
	userID, err := input.User()
	if err != nil {
		return nil, err
	}
	id, err := common.ParseID(input.ID)
	if err != nil {
		return nil, err
	}
	date, err := time.Parse(ledger.DateLayout, input.Body.Date)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid date", err)
	}

	card, err := h.CardService.SetReminder(ctx, userID, id, &date)
	if err != nil {
		return nil, common.ServiceError(err, "failed to update reminder")
	}
	return &ReminderOutput{Body: NewCard(card)}, nil
}

func (h *ReminderHandler) clear(ctx context.Context, input *ClearReminderInput) (*ReminderOutput, error) {
	userID, err := input.User()
	if err != nil {
		return nil, err
	}
	id, err := common.ParseID(input.ID)
	if err != nil {
		return nil, err
	}

	card, err := h.CardService.ClearReminder(ctx, userID, id)
	if err != nil {
		return nil, common.ServiceError(err, "failed to update reminder")
	}
	return &ReminderOutput{Body: NewCard(card)}, nil
}
