package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/wallet-server/internal/ledger"
	"github.com/carson-networks/wallet-server/internal/state"
	"github.com/carson-networks/wallet-server/internal/storage"
)

type SaveCard struct {
	UserID uuid.UUID
	Card   ledger.Card
}

func (a *SaveCard) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Cards.Upsert(ctx, a.UserID, a.Card)
}

func (a *SaveCard) Reduce() (uuid.UUID, state.Action) {
	return a.UserID, state.CardSaved{Card: a.Card}
}

// DeleteCard removes only the card. Its transactions are kept.
type DeleteCard struct {
	UserID uuid.UUID
	ID     uuid.UUID
}

func (a *DeleteCard) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Cards.Delete(ctx, a.UserID, a.ID)
}

func (a *DeleteCard) Reduce() (uuid.UUID, state.Action) {
	return a.UserID, state.CardDeleted{ID: a.ID}
}
