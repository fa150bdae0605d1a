package card

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

const tableName = "cards"

// CardsTable provides access to the cards table.
type CardsTable struct {
	exec bob.Executor
}

// Ensure CardsTable implements ICardTable at compile time.
var _ ICardTable = (*CardsTable)(nil)

func NewCardsTable(exec bob.Executor) *CardsTable {
	return &CardsTable{exec: exec}
}

// List returns the user's cards in creation order.
func (t *CardsTable) List(ctx context.Context, userID uuid.UUID) ([]ledger.Card, error) {
	q := psql.Select(
		sm.Columns(
			"user_id", "id", "name", "type", "initial_balance", "color", "last4",
			"payment_day", "custom_monthly_bill_amount", "total_limit",
			"reminder_date", "min_balance_threshold",
		),
		sm.From(tableName),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.OrderBy(psql.Quote("created_at")).Asc(),
		sm.OrderBy(psql.Quote("id")).Asc(),
	)

	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[cardRow]())
	if err != nil {
		return nil, err
	}

	result := make([]ledger.Card, len(rows))
	for i, row := range rows {
		result[i] = rowToCard(row)
	}
	return result, nil
}

// Upsert writes the full card record, replacing any existing row with the
// same id.
func (t *CardsTable) Upsert(ctx context.Context, userID uuid.UUID, c ledger.Card) error {
	row := cardToRow(userID, c)
	q := psql.Insert(
		im.Into(tableName,
			"user_id", "id", "name", "type", "initial_balance", "color", "last4",
			"payment_day", "custom_monthly_bill_amount", "total_limit",
			"reminder_date", "min_balance_threshold",
		),
		im.Values(psql.Arg(
			row.UserID, row.ID, row.Name, row.Type, row.InitialBalance, row.Color, row.Last4,
			row.PaymentDay, row.CustomMonthlyBillAmount, row.TotalLimit,
			row.ReminderDate, row.MinBalanceThreshold,
		)),
		im.OnConflict("user_id", "id").DoUpdate(im.SetExcluded(
			"name", "type", "initial_balance", "color", "last4",
			"payment_day", "custom_monthly_bill_amount", "total_limit",
			"reminder_date", "min_balance_threshold",
		)),
	)

	_, err := bob.Exec(ctx, t.exec, q)
	return err
}

// Delete removes the card. Deleting a missing card is not an error.
func (t *CardsTable) Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	q := psql.Delete(
		dm.From(tableName),
		dm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	_, err := bob.Exec(ctx, t.exec, q)
	return err
}
