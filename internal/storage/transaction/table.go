package transaction

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

const tableName = "transactions"

var _ ITransactionTable = (*TransactionsTable)(nil)

type TransactionsTable struct {
	exec bob.Executor
}

func NewTransactionsTable(exec bob.Executor) *TransactionsTable {
	return &TransactionsTable{exec: exec}
}

// List returns the user's transactions, newest first.
func (t *TransactionsTable) List(ctx context.Context, userID uuid.UUID) ([]ledger.Transaction, error) {
	q := psql.Select(
		sm.Columns(
			"user_id", "id", "card_id", "amount", "type", "description", "date",
			"category", "is_monthly_payment", "installments_current", "installments_total",
		),
		sm.From(tableName),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.OrderBy(psql.Quote("date")).Desc(),
		sm.OrderBy(psql.Quote("created_at")).Desc(),
	)

	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[transactionRow]())
	if err != nil {
		return nil, err
	}

	result := make([]ledger.Transaction, len(rows))
	for i, row := range rows {
		result[i] = rowToTransaction(row)
	}
	return result, nil
}

// Upsert writes the full transaction record keyed by id.
func (t *TransactionsTable) Upsert(ctx context.Context, userID uuid.UUID, tx ledger.Transaction) error {
	row := transactionToRow(userID, tx)
	q := psql.Insert(
		im.Into(tableName,
			"user_id", "id", "card_id", "amount", "type", "description", "date",
			"category", "is_monthly_payment", "installments_current", "installments_total",
		),
		im.Values(psql.Arg(
			row.UserID, row.ID, row.CardID, row.Amount, row.Type, row.Description, row.Date,
			row.Category, row.IsMonthlyPayment, row.InstallmentsCurrent, row.InstallmentsTotal,
		)),
		im.OnConflict("user_id", "id").DoUpdate(im.SetExcluded(
			"card_id", "amount", "type", "description", "date",
			"category", "is_monthly_payment", "installments_current", "installments_total",
		)),
	)

	_, err := bob.Exec(ctx, t.exec, q)
	return err
}

func (t *TransactionsTable) Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	q := psql.Delete(
		dm.From(tableName),
		dm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	_, err := bob.Exec(ctx, t.exec, q)
	return err
}
