package profile

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/wallet-server/internal/ledger"
)

const tableName = "profiles"

var _ IProfileTable = (*ProfilesTable)(nil)

type ProfilesTable struct {
	exec bob.Executor
}

func NewProfilesTable(exec bob.Executor) *ProfilesTable {
	return &ProfilesTable{exec: exec}
}

func (t *ProfilesTable) Get(ctx context.Context, userID uuid.UUID) (*ledger.Profile, error) {
	q := psql.Select(
		sm.Columns("id", "username", "full_name", "avatar_url", "website", "updated_at"),
		sm.From(tableName),
		sm.Where(psql.Quote("id").EQ(psql.Arg(userID))),
	)

	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[profileRow]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rowToProfile(row), nil
}

// Upsert replaces the profile and stamps updated_at.
func (t *ProfilesTable) Upsert(ctx context.Context, p ledger.Profile) error {
	updatedAt := p.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	q := psql.Insert(
		im.Into(tableName, "id", "username", "full_name", "avatar_url", "website", "updated_at"),
		im.Values(psql.Arg(p.ID, p.Username, p.FullName, p.AvatarURL, p.Website, updatedAt)),
		im.OnConflict("id").DoUpdate(im.SetExcluded(
			"username", "full_name", "avatar_url", "website", "updated_at",
		)),
	)

	_, err := bob.Exec(ctx, t.exec, q)
	return err
}
