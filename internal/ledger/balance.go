package ledger

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// CardBalance is a card together with the values derived from the
// transaction set. It is recomputed on every read and never stored.
type CardBalance struct {
	Card
	CurrentBalance  int64
	LastPaymentDate *time.Time
	LowBalance      bool
}

// Balance returns initialBalance + income - expense over the card's transactions.
func Balance(card Card, txs []Transaction) int64 {
	balance := card.InitialBalance
	for _, tx := range txs {
		if tx.CardID == card.ID {
			balance += tx.Signed()
		}
	}
	return balance
}

// WithBalances projects every card onto its derived balance view.
func WithBalances(cards []Card, txs []Transaction) []CardBalance {
	sums := make(map[uuid.UUID]int64, len(cards))
	for _, tx := range txs {
		sums[tx.CardID] += tx.Signed()
	}

	out := make([]CardBalance, len(cards))
	for i, card := range cards {
		current := card.InitialBalance + sums[card.ID]
		out[i] = CardBalance{
			Card:            card,
			CurrentBalance:  current,
			LastPaymentDate: LastPaymentDate(card, txs),
			LowBalance:      card.MinBalanceThreshold != nil && current < *card.MinBalanceThreshold,
		}
	}
	return out
}

// TotalBalance sums the current balance of every card.
func TotalBalance(cards []Card, txs []Transaction) int64 {
	var total int64
	for _, cb := range WithBalances(cards, txs) {
		total += cb.CurrentBalance
	}
	return total
}

// LastPaymentDate returns the date of the latest transaction on a credit
// card flagged as a monthly bill payment, or nil when there is none.
func LastPaymentDate(card Card, txs []Transaction) *time.Time {
	if !card.IsCredit() {
		return nil
	}
	var latest *time.Time
	for i := range txs {
		tx := &txs[i]
		if tx.CardID != card.ID || !tx.IsMonthlyPayment {
			continue
		}
		if latest == nil || tx.Date.After(*latest) {
			d := tx.Date
			latest = &d
		}
	}
	return latest
}

// Utilization is how much of a card's limit has been spent.
type Utilization struct {
	Limit      int64
	Spent      int64
	Percentage float64
}

// CardUtilization uses the credit limit (falling back to the initial
// balance) for credit cards and the initial balance for everything else.
func CardUtilization(cb CardBalance) Utilization {
	limit := cb.InitialBalance
	if cb.IsCredit() && cb.TotalLimit != nil && *cb.TotalLimit != 0 {
		limit = *cb.TotalLimit
	}
	spent := limit - cb.CurrentBalance

	u := Utilization{Limit: limit, Spent: spent}
	if limit > 0 {
		pct := float64(spent) / float64(limit) * 100
		u.Percentage = min(100, max(0, pct))
	}
	return u
}
