package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/wallet-server/internal/ledger"
	"github.com/carson-networks/wallet-server/internal/money"
)

// RecentTransactionLimit is how many movements the dashboard lists.
const RecentTransactionLimit = 5

// Summary is the dashboard: the total, every card and what comes next.
type Summary struct {
	Currency           money.Currency
	TotalBalance       int64
	FormattedTotal     string
	Cards              []CardView
	RecentTransactions []TransactionView
	Upcoming           []ledger.SubscriptionDue
	SubscriptionTotals ledger.SubscriptionTotals
}

type SummaryService struct {
	cards         *CardService
	transactions  *TransactionService
	subscriptions *SubscriptionService
	settings      *SettingsService
}

func NewSummaryService(cards *CardService, transactions *TransactionService, subscriptions *SubscriptionService, settings *SettingsService) *SummaryService {
	return &SummaryService{cards: cards, transactions: transactions, subscriptions: subscriptions, settings: settings}
}

func (s *SummaryService) Summary(ctx context.Context, userID uuid.UUID) (Summary, error) {
	current, err := s.settings.Get(ctx, userID)
	if err != nil {
		return Summary{}, err
	}

	cards, err := s.cards.ListCards(ctx, userID)
	if err != nil {
		return Summary{}, err
	}
	var total int64
	for _, c := range cards {
		total += c.CurrentBalance
	}

	txs, err := s.transactions.ListTransactions(ctx, userID, uuid.Nil)
	if err != nil {
		return Summary{}, err
	}
	if len(txs) > RecentTransactionLimit {
		txs = txs[:RecentTransactionLimit]
	}

	subs, err := s.subscriptions.ListSubscriptions(ctx, userID)
	if err != nil {
		return Summary{}, err
	}
	upcoming, err := s.subscriptions.Upcoming(ctx, userID)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		Currency:           current.Currency,
		TotalBalance:       total,
		FormattedTotal:     money.Format(total, current.Currency),
		Cards:              cards,
		RecentTransactions: txs,
		Upcoming:           upcoming,
		SubscriptionTotals: subs.Totals,
	}, nil
}
