package transaction

import (
	"context"
	"time"

	"github.com/aarondl/opt/null"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/wallet-server/internal/ledger"
)

// ITransactionTable defines the storage operations for a user's transactions.
//
//go:generate mockery --name ITransactionTable --output mock_ITransactionTable.go
type ITransactionTable interface {
	List(ctx context.Context, userID uuid.UUID) ([]ledger.Transaction, error)
	Upsert(ctx context.Context, userID uuid.UUID, transaction ledger.Transaction) error
	Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error
}

type transactionRow struct {
	UserID              uuid.UUID       `db:"user_id"`
	ID                  uuid.UUID       `db:"id"`
	CardID              uuid.UUID       `db:"card_id"`
	Amount              decimal.Decimal `db:"amount"`
	Type                string          `db:"type"`
	Description         string          `db:"description"`
	Date                time.Time       `db:"date"`
	Category            string          `db:"category"`
	IsMonthlyPayment    bool            `db:"is_monthly_payment"`
	InstallmentsCurrent null.Val[int64] `db:"installments_current"`
	InstallmentsTotal   null.Val[int64] `db:"installments_total"`
}

func rowToTransaction(row transactionRow) ledger.Transaction {
	tx := ledger.Transaction{
		ID:               row.ID,
		CardID:           row.CardID,
		Amount:           row.Amount.IntPart(),
		Type:             ledger.TransactionType(row.Type),
		Description:      row.Description,
		Date:             row.Date,
		Category:         row.Category,
		IsMonthlyPayment: row.IsMonthlyPayment,
	}
	current, hasCurrent := row.InstallmentsCurrent.Get()
	total, hasTotal := row.InstallmentsTotal.Get()
	if hasCurrent && hasTotal {
		tx.Installments = &ledger.Installments{Current: int(current), Total: int(total)}
	}
	return tx
}

func transactionToRow(userID uuid.UUID, tx ledger.Transaction) transactionRow {
	row := transactionRow{
		UserID:           userID,
		ID:               tx.ID,
		CardID:           tx.CardID,
		Amount:           decimal.NewFromInt(tx.Amount),
		Type:             string(tx.Type),
		Description:      tx.Description,
		Date:             tx.Date,
		Category:         tx.Category,
		IsMonthlyPayment: tx.IsMonthlyPayment,
	}
	if tx.Installments != nil {
		row.InstallmentsCurrent = null.From(int64(tx.Installments.Current))
		row.InstallmentsTotal = null.From(int64(tx.Installments.Total))
	}
	return row
}
