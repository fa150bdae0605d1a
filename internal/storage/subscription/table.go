package subscription

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/wallet-server/internal/ledger"
)

const tableName = "subscriptions"

var _ ISubscriptionTable = (*SubscriptionsTable)(nil)

type SubscriptionsTable struct {
	exec bob.Executor
}

func NewSubscriptionsTable(exec bob.Executor) *SubscriptionsTable {
	return &SubscriptionsTable{exec: exec}
}

func (t *SubscriptionsTable) List(ctx context.Context, userID uuid.UUID) ([]ledger.Subscription, error) {
	q := psql.Select(
		sm.Columns(
			"user_id", "id", "name", "amount", "card_id", "billing_day",
			"billing_cycle", "category", "active", "color",
		),
		sm.From(tableName),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.OrderBy(psql.Quote("created_at")).Asc(),
		sm.OrderBy(psql.Quote("id")).Asc(),
	)

	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[subscriptionRow]())
	if err != nil {
		return nil, err
	}

	result := make([]ledger.Subscription, len(rows))
	for i, row := range rows {
		result[i] = rowToSubscription(row)
	}
	return result, nil
}

func (t *SubscriptionsTable) Upsert(ctx context.Context, userID uuid.UUID, s ledger.Subscription) error {
	row := subscriptionToRow(userID, s)
	q := psql.Insert(
		im.Into(tableName,
			"user_id", "id", "name", "amount", "card_id", "billing_day",
			"billing_cycle", "category", "active", "color",
		),
		im.Values(psql.Arg(
			row.UserID, row.ID, row.Name, row.Amount, row.CardID, row.BillingDay,
			row.BillingCycle, row.Category, row.Active, row.Color,
		)),
		im.OnConflict("user_id", "id").DoUpdate(im.SetExcluded(
			"name", "amount", "card_id", "billing_day",
			"billing_cycle", "category", "active", "color",
		)),
	)

	_, err := bob.Exec(ctx, t.exec, q)
	return err
}

func (t *SubscriptionsTable) Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	q := psql.Delete(
		dm.From(tableName),
		dm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	_, err := bob.Exec(ctx, t.exec, q)
	return err
}
