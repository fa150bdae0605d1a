package subscription

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/wallet-server/internal/ledger"
)

// ISubscriptionTable defines the storage operations for a user's
// subscriptions.
//
//go:generate mockery --name ISubscriptionTable --output mock_ISubscriptionTable.go
type ISubscriptionTable interface {
	List(ctx context.Context, userID uuid.UUID) ([]ledger.Subscription, error)
	Upsert(ctx context.Context, userID uuid.UUID, subscription ledger.Subscription) error
	Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error
}

type subscriptionRow struct {
	UserID       uuid.UUID       `db:"user_id"`
	ID           uuid.UUID       `db:"id"`
	Name         string          `db:"name"`
	Amount       decimal.Decimal `db:"amount"`
	CardID       uuid.UUID       `db:"card_id"`
	BillingDay   int64           `db:"billing_day"`
	BillingCycle string          `db:"billing_cycle"`
	Category     string          `db:"category"`
	Active       bool            `db:"active"`
	Color        string          `db:"color"`
}

func rowToSubscription(row subscriptionRow) ledger.Subscription {
	return ledger.Subscription{
		ID:           row.ID,
		Name:         row.Name,
		Amount:       row.Amount.IntPart(),
		CardID:       row.CardID,
		BillingDay:   int(row.BillingDay),
		BillingCycle: ledger.BillingCycle(row.BillingCycle),
		Category:     row.Category,
		Active:       row.Active,
		Color:        row.Color,
	}
}

func subscriptionToRow(userID uuid.UUID, s ledger.Subscription) subscriptionRow {
	return subscriptionRow{
		UserID:       userID,
		ID:           s.ID,
		Name:         s.Name,
		Amount:       decimal.NewFromInt(s.Amount),
		CardID:       s.CardID,
		BillingDay:   int64(s.BillingDay),
		BillingCycle: string(s.BillingCycle),
		Category:     s.Category,
		Active:       s.Active,
		Color:        s.Color,
	}
}
