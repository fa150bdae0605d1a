package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/wallet-server/internal/state"
	"github.com/carson-networks/wallet-server/internal/storage"
)

// LoadSession reads the three collections of a user and installs them as the
// user's session. It runs in the queue like any mutation, so no commit can
// land between the read and the install.
type LoadSession struct {
	UserID uuid.UUID
	// Reader serves the reads from the pool, three lists at once.
	Reader storage.Tables

	Loaded state.Loaded
}

func (a *LoadSession) Perform(ctx context.Context, _ *storage.Writer) error {
	var loaded state.Loaded
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		loaded.Cards, err = a.Reader.Cards.List(gctx, a.UserID)
		return err
	})
	g.Go(func() (err error) {
		loaded.Transactions, err = a.Reader.Transactions.List(gctx, a.UserID)
		return err
	})
	g.Go(func() (err error) {
		loaded.Subscriptions, err = a.Reader.Subscriptions.List(gctx, a.UserID)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}
	a.Loaded = loaded
	return nil
}

func (a *LoadSession) Install() (uuid.UUID, state.Loaded) {
	return a.UserID, a.Loaded
}
