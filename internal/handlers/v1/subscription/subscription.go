package subscription

import (
	"github.com/carson-networks/wallet-server/internal/ledger"
)

// Subscription is the API response model for a recurring charge.
type Subscription struct {
	ID           string `json:"id" doc:"Subscription UUID"`
	Name         string `json:"name"`
	Amount       int64  `json:"amount"`
	CardID       string `json:"cardId" doc:"Card UUID"`
	BillingDay   int    `json:"billingDay"`
	BillingCycle string `json:"billingCycle" enum:"monthly,yearly"`
	Category     string `json:"category"`
	Active       bool   `json:"active"`
	Color        string `json:"color"`
}

// Due is a subscription with its countdown to the next charge.
type Due struct {
	Subscription
	DaysLeft int    `json:"daysLeft"`
	Label    string `json:"label" doc:"today, or in N days"`
	Urgent   bool   `json:"urgent" doc:"Charge within 3 days"`
}

type Totals struct {
	Monthly     int64 `json:"monthly" doc:"Sum of active monthly subscriptions"`
	Yearly      int64 `json:"yearly" doc:"Sum of active yearly subscriptions"`
	ActiveCount int   `json:"activeCount"`
}

func NewSubscription(s ledger.Subscription) Subscription {
	return Subscription{
		ID:           s.ID.String(),
		Name:         s.Name,
		Amount:       s.Amount,
		CardID:       s.CardID.String(),
		BillingDay:   s.BillingDay,
		BillingCycle: string(s.BillingCycle),
		Category:     s.Category,
		Active:       s.Active,
		Color:        s.Color,
	}
}

func NewDue(d ledger.SubscriptionDue) Due {
	return Due{
		Subscription: NewSubscription(d.Subscription),
		DaysLeft:     d.DaysLeft,
		Label:        d.Label,
		Urgent:       d.Urgent,
	}
}

func NewDueList(items []ledger.SubscriptionDue) []Due {
	out := make([]Due, len(items))
	for i, d := range items {
		out[i] = NewDue(d)
	}
	return out
}

func NewTotals(t ledger.SubscriptionTotals) Totals {
	return Totals{Monthly: t.Monthly, Yearly: t.Yearly, ActiveCount: t.ActiveCount}
}
