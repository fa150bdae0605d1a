package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/goodsign/monday"

	"github.com/carson-networks/wallet-server/internal/ledger"
	"github.com/carson-networks/wallet-server/internal/logging"
	"github.com/carson-networks/wallet-server/internal/operator/actions"
)

// CardView is a card with everything derived from the transaction set.
type CardView struct {
	ledger.CardBalance
	Billing       *ledger.BillingInfo
	PaymentStatus *ledger.PaymentStatus
	Utilization   ledger.Utilization
}

// CardService handles card business logic.
type CardService struct {
	session  *SessionService
	operator IOperator
	locale   monday.Locale
	now      func() time.Time
}

func NewCardService(session *SessionService, operator IOperator, locale monday.Locale, now func() time.Time) *CardService {
	return &CardService{session: session, operator: operator, locale: locale, now: now}
}

// ListCards returns every card with its derived balance, bill and status.
func (s *CardService) ListCards(ctx context.Context, userID uuid.UUID) ([]CardView, error) {
	snap, err := s.session.Snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := s.now()
	balances := ledger.WithBalances(snap.Cards, snap.Transactions)
	views := make([]CardView, len(balances))
	for i, cb := range balances {
		view := CardView{CardBalance: cb, Utilization: ledger.CardUtilization(cb)}
		if info, ok := ledger.ResolveBillingCycle(cb.Card, snap.Transactions, today, s.locale); ok {
			view.Billing = &info
		}
		if status, ok := ledger.CardPaymentStatus(cb.Card, snap.Transactions, today); ok {
			view.PaymentStatus = &status
		}
		views[i] = view
	}

	logging.GetLogData(ctx).AddData("cardCount", len(views))
	return views, nil
}

func (s *CardService) TotalBalance(ctx context.Context, userID uuid.UUID) (int64, error) {
	snap, err := s.session.Snapshot(ctx, userID)
	if err != nil {
		return 0, err
	}
	return ledger.TotalBalance(snap.Cards, snap.Transactions), nil
}

// SaveCard creates a card when id is uuid.Nil, otherwise replaces the
// existing one. The reminder date survives edits.
func (s *CardService) SaveCard(ctx context.Context, userID, id uuid.UUID, form ledger.CardForm) (ledger.Card, error) {
	if err := requireUser(userID); err != nil {
		return ledger.Card{}, err
	}

	card, err := ledger.ParseCardForm(form)
	if err != nil {
		return ledger.Card{}, err
	}

	if id == uuid.Nil {
		card.ID = ledger.NewID()
	} else {
		existing, _, err := s.session.card(ctx, userID, id)
		if err != nil {
			return ledger.Card{}, err
		}
		card.ID = id
		card.ReminderDate = existing.ReminderDate
	}

	if err := s.operator.Process(ctx, &actions.SaveCard{UserID: userID, Card: card}); err != nil {
		return ledger.Card{}, persistenceError(ctx, userID, "failed to save card", err)
	}
	return card, nil
}

// DeleteCard removes a card after confirmation. Its transactions remain.
func (s *CardService) DeleteCard(ctx context.Context, userID, id uuid.UUID, confirmed bool) error {
	if err := requireUser(userID); err != nil {
		return err
	}
	if _, _, err := s.session.card(ctx, userID, id); err != nil {
		return err
	}
	if !confirmed {
		return &ConfirmationRequiredError{Confirmation: ledger.ConfirmDeleteCard}
	}

	if err := s.operator.Process(ctx, &actions.DeleteCard{UserID: userID, ID: id}); err != nil {
		return persistenceError(ctx, userID, "failed to delete card", err)
	}
	return nil
}

// SetReminder sets a one-off payment reminder on any card type. A nil date
// clears it.
func (s *CardService) SetReminder(ctx context.Context, userID, id uuid.UUID, date *time.Time) (ledger.Card, error) {
	if err := requireUser(userID); err != nil {
		return ledger.Card{}, err
	}
	card, _, err := s.session.card(ctx, userID, id)
	if err != nil {
		return ledger.Card{}, err
	}

	card.ReminderDate = date
	if err := s.operator.Process(ctx, &actions.SaveCard{UserID: userID, Card: *card}); err != nil {
		return ledger.Card{}, persistenceError(ctx, userID, "failed to update reminder", err)
	}
	return *card, nil
}

func (s *CardService) ClearReminder(ctx context.Context, userID, id uuid.UUID) (ledger.Card, error) {
	return s.SetReminder(ctx, userID, id, nil)
}

// PayBillForm prefills the transaction form that pays the card's current
// bill.
func (s *CardService) PayBillForm(ctx context.Context, userID, id uuid.UUID) (ledger.TransactionForm, error) {
	card, snap, err := s.session.card(ctx, userID, id)
	if err != nil {
		return ledger.TransactionForm{}, err
	}
	return ledger.PayBillForm(*card, snap.Transactions, s.now(), s.locale), nil
}
