package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/wallet-server/internal/ledger"
	"github.com/carson-networks/wallet-server/internal/operator/actions"
)

// UpcomingLimit is how many payments the dashboard shows.
const UpcomingLimit = 3

// SubscriptionList is every subscription ordered by the next charge.
type SubscriptionList struct {
	Items  []ledger.SubscriptionDue
	Totals ledger.SubscriptionTotals
}

// SubscriptionService handles subscription business logic.
type SubscriptionService struct {
	session  *SessionService
	operator IOperator
	now      func() time.Time
}

func NewSubscriptionService(session *SessionService, operator IOperator, now func() time.Time) *SubscriptionService {
	return &SubscriptionService{session: session, operator: operator, now: now}
}

func (s *SubscriptionService) ListSubscriptions(ctx context.Context, userID uuid.UUID) (SubscriptionList, error) {
	snap, err := s.session.Snapshot(ctx, userID)
	if err != nil {
		return SubscriptionList{}, err
	}
	return SubscriptionList{
		Items:  ledger.SortByDaysLeft(snap.Subscriptions, s.now()),
		Totals: ledger.TotalSubscriptions(snap.Subscriptions),
	}, nil
}

// Upcoming returns the next active charges, soonest first.
func (s *SubscriptionService) Upcoming(ctx context.Context, userID uuid.UUID) ([]ledger.SubscriptionDue, error) {
	snap, err := s.session.Snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	return ledger.UpcomingSubscriptions(snap.Subscriptions, s.now(), UpcomingLimit), nil
}

// SaveSubscription creates a subscription when id is uuid.Nil, otherwise
// replaces the existing one.
func (s *SubscriptionService) SaveSubscription(ctx context.Context, userID, id uuid.UUID, form ledger.SubscriptionForm) (ledger.Subscription, error) {
	if err := requireUser(userID); err != nil {
		return ledger.Subscription{}, err
	}

	sub, err := ledger.ParseSubscriptionForm(form)
	if err != nil {
		return ledger.Subscription{}, err
	}

	snap, err := s.session.Snapshot(ctx, userID)
	if err != nil {
		return ledger.Subscription{}, err
	}
	if snap.CardByID(sub.CardID) == nil {
		return ledger.Subscription{}, &ledger.ValidationError{Field: "cardId", Message: "unknown card"}
	}

	if id == uuid.Nil {
		sub.ID = ledger.NewID()
	} else {
		if snap.SubscriptionByID(id) == nil {
			return ledger.Subscription{}, ErrNotFound
		}
		sub.ID = id
	}

	if err := s.operator.Process(ctx, &actions.SaveSubscription{UserID: userID, Subscription: sub}); err != nil {
		return ledger.Subscription{}, persistenceError(ctx, userID, "failed to save subscription", err)
	}
	return sub, nil
}

func (s *SubscriptionService) DeleteSubscription(ctx context.Context, userID, id uuid.UUID, confirmed bool) error {
	if err := requireUser(userID); err != nil {
		return err
	}
	snap, err := s.session.Snapshot(ctx, userID)
	if err != nil {
		return err
	}
	if snap.SubscriptionByID(id) == nil {
		return ErrNotFound
	}
	if !confirmed {
		return &ConfirmationRequiredError{Confirmation: ledger.ConfirmDeleteSubscription}
	}

	if err := s.operator.Process(ctx, &actions.DeleteSubscription{UserID: userID, ID: id}); err != nil {
		return persistenceError(ctx, userID, "failed to delete subscription", err)
	}
	return nil
}
