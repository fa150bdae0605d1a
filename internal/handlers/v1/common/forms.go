package common

import (
	"time"

	"github.com/carson-networks/wallet-server/internal/ledger"
)

// TransactionForm is the raw transaction edit form. Numbers stay strings
// so the server validates exactly what was typed.
type TransactionForm struct {
	Amount              string `json:"amount" doc:"Whole base-currency units"`
	Description         string `json:"description"`
	Category            string `json:"category,omitempty"`
	CardID              string `json:"cardId" doc:"Card UUID"`
	Date                string `json:"date" doc:"Calendar date, YYYY-MM-DD"`
	Type                string `json:"type,omitempty" enum:"expense,income" doc:"Defaults to expense"`
	MarkAsPaid          bool   `json:"markAsPaid,omitempty" doc:"Record an income as this month's bill payment"`
	InstallmentsTotal   string `json:"installmentsTotal,omitempty"`
	InstallmentsCurrent string `json:"installmentsCurrent,omitempty"`
}

func (f TransactionForm) ToLedger() ledger.TransactionForm {
	return ledger.TransactionForm{
		Amount:              f.Amount,
		Description:         f.Description,
		Category:            f.Category,
		CardID:              f.CardID,
		Date:                f.Date,
		Type:                ledger.TransactionType(f.Type),
		MarkAsPaid:          f.MarkAsPaid,
		InstallmentsTotal:   f.InstallmentsTotal,
		InstallmentsCurrent: f.InstallmentsCurrent,
	}
}

func NewTransactionForm(f ledger.TransactionForm) TransactionForm {
	return TransactionForm{
		Amount:              f.Amount,
		Description:         f.Description,
		Category:            f.Category,
		CardID:              f.CardID,
		Date:                f.Date,
		Type:                string(f.Type),
		MarkAsPaid:          f.MarkAsPaid,
		InstallmentsTotal:   f.InstallmentsTotal,
		InstallmentsCurrent: f.InstallmentsCurrent,
	}
}

// CardForm is the raw card edit form.
type CardForm struct {
	Name                    string `json:"name"`
	Type                    string `json:"type,omitempty" enum:"debit,checking,credit" doc:"Defaults to debit"`
	InitialBalance          string `json:"initialBalance"`
	Color                   string `json:"color,omitempty"`
	Last4                   string `json:"last4,omitempty" doc:"Generated when empty"`
	PaymentDay              string `json:"paymentDay,omitempty" doc:"Credit only, 1-31"`
	CustomMonthlyBillAmount string `json:"customMonthlyBillAmount,omitempty" doc:"Credit only"`
	MinBalanceThreshold     string `json:"minBalanceThreshold,omitempty"`
	TotalLimit              string `json:"totalLimit,omitempty" doc:"Credit only"`
}

func (f CardForm) ToLedger() ledger.CardForm {
	return ledger.CardForm{
		Name:                    f.Name,
		Type:                    ledger.CardType(f.Type),
		InitialBalance:          f.InitialBalance,
		Color:                   f.Color,
		Last4:                   f.Last4,
		PaymentDay:              f.PaymentDay,
		CustomMonthlyBillAmount: f.CustomMonthlyBillAmount,
		MinBalanceThreshold:     f.MinBalanceThreshold,
		TotalLimit:              f.TotalLimit,
	}
}

// SubscriptionForm is the raw subscription edit form.
type SubscriptionForm struct {
	Name         string `json:"name"`
	Amount       string `json:"amount"`
	CardID       string `json:"cardId" doc:"Card UUID"`
	BillingDay   string `json:"billingDay" doc:"Day of month, 1-31"`
	BillingCycle string `json:"billingCycle,omitempty" enum:"monthly,yearly"`
	Category     string `json:"category,omitempty"`
	Active       bool   `json:"active"`
	Color        string `json:"color,omitempty"`
}

func (f SubscriptionForm) ToLedger() ledger.SubscriptionForm {
	return ledger.SubscriptionForm{
		Name:         f.Name,
		Amount:       f.Amount,
		CardID:       f.CardID,
		BillingDay:   f.BillingDay,
		BillingCycle: ledger.BillingCycle(f.BillingCycle),
		Category:     f.Category,
		Active:       f.Active,
		Color:        f.Color,
	}
}

func NewSubscriptionForm(f ledger.SubscriptionForm) SubscriptionForm {
	return SubscriptionForm{
		Name:         f.Name,
		Amount:       f.Amount,
		CardID:       f.CardID,
		BillingDay:   f.BillingDay,
		BillingCycle: string(f.BillingCycle),
		Category:     f.Category,
		Active:       f.Active,
		Color:        f.Color,
	}
}

// FormatDate renders a calendar date the way forms accept it.
func FormatDate(t time.Time) string {
	return t.UTC().Format(ledger.DateLayout)
}

// FormatOptionalDate is FormatDate for optional dates.
func FormatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := FormatDate(*t)
	return &s
}
