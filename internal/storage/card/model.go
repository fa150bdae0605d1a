package card

import (
	"context"
	"time"

	"github.com/aarondl/opt/null"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/wallet-server/internal/ledger"
)

// ICardTable defines the storage operations for a user's cards. Every call is
// scoped to the owning user.
//
//go:generate mockery --name ICardTable --output mock_ICardTable.go
type ICardTable interface {
	List(ctx context.Context, userID uuid.UUID) ([]ledger.Card, error)
	Upsert(ctx context.Context, userID uuid.UUID, card ledger.Card) error
	Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error
}

// cardRow mirrors a row of the cards table.
type cardRow struct {
	UserID                  uuid.UUID           `db:"user_id"`
	ID                      uuid.UUID           `db:"id"`
	Name                    string              `db:"name"`
	Type                    string              `db:"type"`
	InitialBalance          decimal.Decimal     `db:"initial_balance"`
	Color                   string              `db:"color"`
	Last4                   string              `db:"last4"`
	PaymentDay              null.Val[int64]     `db:"payment_day"`
	CustomMonthlyBillAmount decimal.NullDecimal `db:"custom_monthly_bill_amount"`
	TotalLimit              decimal.NullDecimal `db:"total_limit"`
	ReminderDate            null.Val[time.Time] `db:"reminder_date"`
	MinBalanceThreshold     decimal.NullDecimal `db:"min_balance_threshold"`
}

func rowToCard(row cardRow) ledger.Card {
	c := ledger.Card{
		ID:                      row.ID,
		Name:                    row.Name,
		Type:                    ledger.CardType(row.Type),
		InitialBalance:          row.InitialBalance.IntPart(),
		Color:                   row.Color,
		Last4:                   row.Last4,
		CustomMonthlyBillAmount: fromNullDecimal(row.CustomMonthlyBillAmount),
		TotalLimit:              fromNullDecimal(row.TotalLimit),
		ReminderDate:            row.ReminderDate.Ptr(),
		MinBalanceThreshold:     fromNullDecimal(row.MinBalanceThreshold),
	}
	if day, ok := row.PaymentDay.Get(); ok {
		d := int(day)
		c.PaymentDay = &d
	}
	return c
}

func cardToRow(userID uuid.UUID, c ledger.Card) cardRow {
	row := cardRow{
		UserID:                  userID,
		ID:                      c.ID,
		Name:                    c.Name,
		Type:                    string(c.Type),
		InitialBalance:          decimal.NewFromInt(c.InitialBalance),
		Color:                   c.Color,
		Last4:                   c.Last4,
		CustomMonthlyBillAmount: toNullDecimal(c.CustomMonthlyBillAmount),
		TotalLimit:              toNullDecimal(c.TotalLimit),
		ReminderDate:            null.FromPtr(c.ReminderDate),
		MinBalanceThreshold:     toNullDecimal(c.MinBalanceThreshold),
	}
	if c.PaymentDay != nil {
		row.PaymentDay = null.From(int64(*c.PaymentDay))
	}
	return row
}

func fromNullDecimal(d decimal.NullDecimal) *int64 {
	if !d.Valid {
		return nil
	}
	v := d.Decimal.IntPart()
	return &v
}

func toNullDecimal(v *int64) decimal.NullDecimal {
	if v == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: decimal.NewFromInt(*v), Valid: true}
}
