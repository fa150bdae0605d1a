package service

import (
	"context"
	"time"

	"github.com/goodsign/monday"

	"github.com/carson-networks/wallet-server/internal/ledger"
	"github.com/carson-networks/wallet-server/internal/operator/actions"
	"github.com/carson-networks/wallet-server/internal/state"
	"github.com/carson-networks/wallet-server/internal/storage"
)

// IOperator runs a mutation to completion against the store.
type IOperator interface {
	Process(ctx context.Context, action actions.IAction) error
}

type Dependencies struct {
	Storage     *storage.Storage
	Sessions    *state.Registry
	Operator    IOperator
	Settings    ISettingsStore
	Advisor     IAdvisor
	MonthLocale monday.Locale
	Now         func() time.Time
}

// Service holds all business logic services.
type Service struct {
	Session      *SessionService
	Card         *CardService
	Transaction  *TransactionService
	Subscription *SubscriptionService
	Profile      *ProfileService
	Form         *FormService
	Settings     *SettingsService
	Advice       *AdviceService
	Summary      *SummaryService
}

// NewService wires every service over the same session registry and
// operator.
func NewService(deps Dependencies) *Service {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.MonthLocale == "" {
		deps.MonthLocale = ledger.DefaultMonthLocale
	}

	session := NewSessionService(deps.Storage, deps.Sessions, deps.Operator)
	settings := NewSettingsService(deps.Settings)
	cards := NewCardService(session, deps.Operator, deps.MonthLocale, deps.Now)
	transactions := NewTransactionService(session, deps.Operator)
	subscriptions := NewSubscriptionService(session, deps.Operator, deps.Now)
	forms := NewFormService(session, settings, deps.Now)

	return &Service{
		Session:      session,
		Card:         cards,
		Transaction:  transactions,
		Subscription: subscriptions,
		Profile:      NewProfileService(deps.Storage, deps.Operator, deps.Now),
		Form:         forms,
		Settings:     settings,
		Advice:       NewAdviceService(session, settings, forms, deps.Advisor),
		Summary:      NewSummaryService(cards, transactions, subscriptions, settings),
	}
}
