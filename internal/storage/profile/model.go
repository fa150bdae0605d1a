package profile

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/wallet-server/internal/ledger"
)

// IProfileTable reads and writes the public profile of a user. The profile
// id is the user id.
//
//go:generate mockery --name IProfileTable --output mock_IProfileTable.go
type IProfileTable interface {
	// Get returns nil without an error when the user has no profile yet.
	Get(ctx context.Context, userID uuid.UUID) (*ledger.Profile, error)
	Upsert(ctx context.Context, profile ledger.Profile) error
}

type profileRow struct {
	ID        uuid.UUID `db:"id"`
	Username  string    `db:"username"`
	FullName  string    `db:"full_name"`
	AvatarURL string    `db:"avatar_url"`
	Website   string    `db:"website"`
	UpdatedAt time.Time `db:"updated_at"`
}

func rowToProfile(row profileRow) *ledger.Profile {
	return &ledger.Profile{
		ID:        row.ID,
		Username:  row.Username,
		FullName:  row.FullName,
		AvatarURL: row.AvatarURL,
		Website:   row.Website,
		UpdatedAt: row.UpdatedAt,
	}
}
