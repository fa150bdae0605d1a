package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/wallet-server/internal/ledger"
)

// FormCheck tells the client whether closing an edit form loses edits, and
// the prompt to show if it does.
type FormCheck struct {
	Dirty        bool
	Confirmation *ledger.Confirmation
}

func formCheck(dirty bool, entity string) FormCheck {
	if !dirty {
		return FormCheck{}
	}
	c := ledger.ConfirmDiscardChanges(entity)
	return FormCheck{Dirty: true, Confirmation: &c}
}

type FormService struct {
	session  *SessionService
	settings *SettingsService
	now      func() time.Time
}

func NewFormService(session *SessionService, settings *SettingsService, now func() time.Time) *FormService {
	return &FormService{session: session, settings: settings, now: now}
}

// BlankTransactionForm is a new transaction form with the default card
// preselected, when it still exists.
func (s *FormService) BlankTransactionForm(ctx context.Context, userID uuid.UUID) (ledger.TransactionForm, error) {
	defaultCard, err := s.defaultCard(ctx, userID)
	if err != nil {
		return ledger.TransactionForm{}, err
	}
	return ledger.BlankTransactionForm(defaultCard, s.now()), nil
}

func (s *FormService) BlankSubscriptionForm(ctx context.Context, userID uuid.UUID) (ledger.SubscriptionForm, error) {
	defaultCard, err := s.defaultCard(ctx, userID)
	if err != nil {
		return ledger.SubscriptionForm{}, err
	}
	return ledger.BlankSubscriptionForm(defaultCard), nil
}

func (s *FormService) defaultCard(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	current, err := s.settings.Get(ctx, userID)
	if err != nil {
		return uuid.Nil, err
	}
	id := current.DefaultCard()
	if id == uuid.Nil {
		return uuid.Nil, nil
	}
	snap, err := s.session.Snapshot(ctx, userID)
	if err != nil {
		return uuid.Nil, err
	}
	if snap.CardByID(id) == nil {
		return uuid.Nil, nil
	}
	return id, nil
}

// CheckTransactionForm compares the form with the transaction it edits.
// id is uuid.Nil for a new transaction.
func (s *FormService) CheckTransactionForm(ctx context.Context, userID, id uuid.UUID, form ledger.TransactionForm) (FormCheck, error) {
	snap, err := s.session.Snapshot(ctx, userID)
	if err != nil {
		return FormCheck{}, err
	}
	var original *ledger.Transaction
	if id != uuid.Nil {
		if original = snap.TransactionByID(id); original == nil {
			return FormCheck{}, ErrNotFound
		}
	}
	return formCheck(form.IsDirty(original), "transaction"), nil
}

func (s *FormService) CheckCardForm(ctx context.Context, userID, id uuid.UUID, form ledger.CardForm) (FormCheck, error) {
	snap, err := s.session.Snapshot(ctx, userID)
	if err != nil {
		return FormCheck{}, err
	}
	var original *ledger.Card
	if id != uuid.Nil {
		if original = snap.CardByID(id); original == nil {
			return FormCheck{}, ErrNotFound
		}
	}
	return formCheck(form.IsDirty(original), "card"), nil
}

func (s *FormService) CheckSubscriptionForm(ctx context.Context, userID, id uuid.UUID, form ledger.SubscriptionForm) (FormCheck, error) {
	snap, err := s.session.Snapshot(ctx, userID)
	if err != nil {
		return FormCheck{}, err
	}
	var original *ledger.Subscription
	if id != uuid.Nil {
		if original = snap.SubscriptionByID(id); original == nil {
			return FormCheck{}, ErrNotFound
		}
	}
	return formCheck(form.IsDirty(original), "subscription"), nil
}
