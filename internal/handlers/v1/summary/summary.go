package summary

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/wallet-server/internal/handlers/v1/card"
	"github.com/carson-networks/wallet-server/internal/handlers/v1/common"
	"github.com/carson-networks/wallet-server/internal/handlers/v1/subscription"
	"github.com/carson-networks/wallet-server/internal/handlers/v1/transaction"
	"github.com/carson-networks/wallet-server/internal/service"
)

type SummaryInput struct {
	common.Identity
}

// SummaryResponseBody is the dashboard.
type SummaryResponseBody struct {
	Currency           string                    `json:"currency" enum:"CLP,USD"`
	TotalBalance       int64                     `json:"totalBalance"`
	FormattedTotal     string                    `json:"formattedTotal" doc:"Total balance in the display currency"`
	Cards              []card.Card               `json:"cards"`
	RecentTransactions []transaction.Transaction `json:"recentTransactions" doc:"Newest first"`
	Upcoming           []subscription.Due        `json:"upcoming" doc:"Next active charges"`
	SubscriptionTotals subscription.Totals       `json:"subscriptionTotals"`
}

type SummaryOutput struct {
	Body SummaryResponseBody
}

type summarizer interface {
	Summary(ctx context.Context, userID uuid.UUID) (service.Summary, error)
}

// Handler handles GET /v1/summary.
type Handler struct {
	SummaryService summarizer
}

func NewHandler(svc summarizer) *Handler {
	return &Handler{SummaryService: svc}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-summary",
		Method:      http.MethodGet,
		Path:        "/v1/summary",
		Summary:     "Dashboard summary",
		Description: "Returns the total balance, every card, recent transactions and upcoming payments.",
		Tags:        []string{"Summary"},
	}, h.handle)
}

func (h *Handler) handle(ctx context.Context, input *SummaryInput) (*SummaryOutput, error) {
	userID, err := input.User()
	if err != nil {
		return nil, err
	}

	s, err := h.SummaryService.Summary(ctx, userID)
	if err != nil {
		return nil, common.ServiceError(err, "failed to build summary")
	}

	body := SummaryResponseBody{
		Currency:           string(s.Currency),
		TotalBalance:       s.TotalBalance,
		FormattedTotal:     s.FormattedTotal,
		Cards:              make([]card.Card, len(s.Cards)),
		RecentTransactions: make([]transaction.Transaction, len(s.RecentTransactions)),
		Upcoming:           subscription.NewDueList(s.Upcoming),
		SubscriptionTotals: subscription.NewTotals(s.SubscriptionTotals),
	}
	for i, c := range s.Cards {
		body.Cards[i] = card.NewCardView(c)
	}
	for i, tx := range s.RecentTransactions {
		body.RecentTransactions[i] = transaction.NewTransactionView(tx)
	}
	return &SummaryOutput{Body: body}, nil
}
