package actions

import (
	"context"

	"github.com/carson-networks/wallet-server/internal/ledger"
	"github.com/carson-networks/wallet-server/internal/storage"
)

// SaveProfile is not part of the session snapshot and has no reducer.
type SaveProfile struct {
	Profile ledger.Profile
}

func (a *SaveProfile) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Profiles.Upsert(ctx, a.Profile)
}
