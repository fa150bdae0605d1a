package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/wallet-server/internal/ledger"
	"github.com/carson-networks/wallet-server/internal/state"
	"github.com/carson-networks/wallet-server/internal/storage"
)

type SaveSubscription struct {
	UserID       uuid.UUID
	Subscription ledger.Subscription
}

func (a *SaveSubscription) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Subscriptions.Upsert(ctx, a.UserID, a.Subscription)
}

func (a *SaveSubscription) Reduce() (uuid.UUID, state.Action) {
	return a.UserID, state.SubscriptionSaved{Subscription: a.Subscription}
}

type DeleteSubscription struct {
	UserID uuid.UUID
	ID     uuid.UUID
}

func (a *DeleteSubscription) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Subscriptions.Delete(ctx, a.UserID, a.ID)
}

func (a *DeleteSubscription) Reduce() (uuid.UUID, state.Action) {
	return a.UserID, state.SubscriptionDeleted{ID: a.ID}
}
