package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/wallet-server/internal/ledger"
	"github.com/carson-networks/wallet-server/internal/state"
	"github.com/carson-networks/wallet-server/internal/storage"
)

type SaveTransaction struct {
	UserID      uuid.UUID
	Transaction ledger.Transaction
}

func (a *SaveTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Transactions.Upsert(ctx, a.UserID, a.Transaction)
}

func (a *SaveTransaction) Reduce() (uuid.UUID, state.Action) {
	return a.UserID, state.TransactionSaved{Transaction: a.Transaction}
}

type DeleteTransaction struct {
	UserID uuid.UUID
	ID     uuid.UUID
}

func (a *DeleteTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Transactions.Delete(ctx, a.UserID, a.ID)
}

func (a *DeleteTransaction) Reduce() (uuid.UUID, state.Action) {
	return a.UserID, state.TransactionDeleted{ID: a.ID}
}
