package session

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/wallet-server/internal/handlers/v1/common"
	"github.com/carson-networks/wallet-server/internal/state"
)

type SessionInput struct {
	common.Identity
}

type RefreshResponseBody struct {
	Cards         int `json:"cards" doc:"Number of cards loaded"`
	Transactions  int `json:"transactions" doc:"Number of transactions loaded"`
	Subscriptions int `json:"subscriptions" doc:"Number of subscriptions loaded"`
}

type RefreshOutput struct {
	Body RefreshResponseBody
}

type sessionManager interface {
	Load(ctx context.Context, userID uuid.UUID) (state.Snapshot, error)
	Drop(userID uuid.UUID)
}

// Handler handles POST /v1/session/refresh and DELETE /v1/session.
type Handler struct {
	SessionService sessionManager
}

func NewHandler(svc sessionManager) *Handler {
	return &Handler{SessionService: svc}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "refresh-session",
		Method:      http.MethodPost,
		Path:        "/v1/session/refresh",
		Summary:     "Refresh session",
		Description: "Reloads cards, transactions and subscriptions from storage, replacing the session copy.",
		Tags:        []string{"Session"},
	}, h.refresh)

	huma.Register(api, huma.Operation{
		OperationID:   "end-session",
		Method:        http.MethodDelete,
		Path:          "/v1/session",
		Summary:       "End session",
		Description:   "Forgets the session copy, as on sign-out.",
		Tags:          []string{"Session"},
		DefaultStatus: http.StatusNoContent,
	}, h.end)
}

func (h *Handler) refresh(ctx context.Context, input *SessionInput) (*RefreshOutput, error) {
	userID, err := input.User()
	if err != nil {
		return nil, err
	}
	if userID == uuid.Nil {
		return nil, huma.NewError(http.StatusUnauthorized, "sign in required")
	}

	snap, err := h.SessionService.Load(ctx, userID)
	if err != nil {
		return nil, common.ServiceError(err, "failed to load data")
	}
	return &RefreshOutput{Body: RefreshResponseBody{
		Cards:         len(snap.Cards),
		Transactions:  len(snap.Transactions),
		Subscriptions: len(snap.Subscriptions),
	}}, nil
}

func (h *Handler) end(ctx context.Context, input *SessionInput) (*struct{}, error) {
	userID, err := input.User()
	if err != nil {
		return nil, err
	}
	if userID != uuid.Nil {
		h.SessionService.Drop(userID)
	}
	return nil, nil
}
