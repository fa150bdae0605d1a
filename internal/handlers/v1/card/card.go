package card

import (
	"github.com/carson-networks/wallet-server/internal/handlers/v1/common"
	"github.com/carson-networks/wallet-server/internal/ledger"
	"github.com/carson-networks/wallet-server/internal/service"
)

// Billing is the bill a credit card is currently collecting.
type Billing struct {
	Month  int    `json:"month" doc:"1-12"`
	Year   int    `json:"year"`
	Label  string `json:"label" doc:"Localized month name"`
	Amount int64  `json:"amount"`
}

// PaymentStatus is the badge shown on a card.
type PaymentStatus struct {
	State    string `json:"state" enum:"overdue,reminder_today,reminder_soon,reminder_pending,paid,pending"`
	Label    string `json:"label"`
	DaysLeft int    `json:"daysLeft"`
	Urgent   bool   `json:"urgent"`
}

type Utilization struct {
	Limit      int64   `json:"limit"`
	Spent      int64   `json:"spent"`
	Percentage float64 `json:"percentage" doc:"0-100"`
}

// Card is the API response model for a card with its derived values.
type Card struct {
	ID                      string         `json:"id" doc:"Card UUID"`
	Name                    string         `json:"name"`
	Type                    string         `json:"type" enum:"debit,checking,credit"`
	InitialBalance          int64          `json:"initialBalance"`
	Color                   string         `json:"color"`
	Last4                   string         `json:"last4"`
	PaymentDay              *int           `json:"paymentDay,omitempty"`
	CustomMonthlyBillAmount *int64         `json:"customMonthlyBillAmount,omitempty"`
	TotalLimit              *int64         `json:"totalLimit,omitempty"`
	MinBalanceThreshold     *int64         `json:"minBalanceThreshold,omitempty"`
	ReminderDate            *string        `json:"reminderDate,omitempty" doc:"YYYY-MM-DD"`
	CurrentBalance          int64          `json:"currentBalance"`
	LastPaymentDate         *string        `json:"lastPaymentDate,omitempty" doc:"YYYY-MM-DD of the latest bill payment"`
	LowBalance              bool           `json:"lowBalance"`
	Billing                 *Billing       `json:"billing,omitempty"`
	PaymentStatus           *PaymentStatus `json:"paymentStatus,omitempty"`
	Utilization             Utilization    `json:"utilization"`
}

// NewCard converts a stored card. Derived fields are left zero.
func NewCard(c ledger.Card) Card {
	return Card{
		ID:                      c.ID.String(),
		Name:                    c.Name,
		Type:                    string(c.Type),
		InitialBalance:          c.InitialBalance,
		Color:                   c.Color,
		Last4:                   c.Last4,
		PaymentDay:              c.PaymentDay,
		CustomMonthlyBillAmount: c.CustomMonthlyBillAmount,
		TotalLimit:              c.TotalLimit,
		MinBalanceThreshold:     c.MinBalanceThreshold,
		ReminderDate:            common.FormatOptionalDate(c.ReminderDate),
	}
}

func NewCardView(v service.CardView) Card {
	c := NewCard(v.Card)
	c.CurrentBalance = v.CurrentBalance
	c.LastPaymentDate = common.FormatOptionalDate(v.LastPaymentDate)
	c.LowBalance = v.LowBalance
	c.Utilization = Utilization{Limit: v.Utilization.Limit, Spent: v.Utilization.Spent, Percentage: v.Utilization.Percentage}
	if v.Billing != nil {
		c.Billing = &Billing{
			Month:  int(v.Billing.Month),
			Year:   v.Billing.Year,
			Label:  v.Billing.Label,
			Amount: v.Billing.Amount,
		}
	}
	if v.PaymentStatus != nil {
		c.PaymentStatus = &PaymentStatus{
			State:    string(v.PaymentStatus.State),
			Label:    v.PaymentStatus.Label,
			DaysLeft: v.PaymentStatus.DaysLeft,
			Urgent:   v.PaymentStatus.Urgent,
		}
	}
	return c
}
