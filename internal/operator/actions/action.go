package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/wallet-server/internal/state"
	"github.com/carson-networks/wallet-server/internal/storage"
)

type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}

// IReducer is implemented by actions whose committed change is mirrored into
// the owner's session state.
type IReducer interface {
	Reduce() (userID uuid.UUID, action state.Action)
}

// ISessionLoader is implemented by actions that replace the owner's session
// wholesale, loaded or not.
type ISessionLoader interface {
	Install() (userID uuid.UUID, loaded state.Loaded)
}
