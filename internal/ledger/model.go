package ledger

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// CardType is the kind of payment instrument.
type CardType string

const (
	CardTypeDebit    CardType = "debit"
	CardTypeChecking CardType = "checking"
	CardTypeCredit   CardType = "credit"
)

// Valid reports whether t is a known card type.
func (t CardType) Valid() bool {
	switch t {
	case CardTypeDebit, CardTypeChecking, CardTypeCredit:
		return true
	}
	return false
}

// TransactionType decides the sign of a transaction at aggregation time.
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

func (t TransactionType) Valid() bool {
	return t == TransactionTypeExpense || t == TransactionTypeIncome
}

// BillingCycle is how often a subscription charges.
type BillingCycle string

const (
	BillingCycleMonthly BillingCycle = "monthly"
	BillingCycleYearly  BillingCycle = "yearly"
)

func (c BillingCycle) Valid() bool {
	return c == BillingCycleMonthly || c == BillingCycleYearly
}

// Card is a payment instrument. Amounts are whole base-currency units.
//
// The last payment date is not a field: it is projected from the
// transaction set by LastPaymentDate.
type Card struct {
	ID             uuid.UUID
	Name           string
	Type           CardType
	InitialBalance int64
	Color          string
	Last4          string

	// Credit only.
	PaymentDay              *int
	CustomMonthlyBillAmount *int64
	TotalLimit              *int64

	ReminderDate        *time.Time
	MinBalanceThreshold *int64
}

// IsCredit reports whether the card is a credit card.
func (c Card) IsCredit() bool {
	return c.Type == CardTypeCredit
}

// Installments splits a credit card expense over several billing periods.
type Installments struct {
	Current int
	Total   int
}

// Transaction is a single movement on a card. Amount is always a
// non-negative magnitude; Type carries the sign.
type Transaction struct {
	ID               uuid.UUID
	CardID           uuid.UUID
	Amount           int64
	Type             TransactionType
	Description      string
	Date             time.Time
	Category         string
	IsMonthlyPayment bool
	Installments     *Installments
}

// Signed returns the amount with the sign implied by the transaction type.
func (t Transaction) Signed() int64 {
	if t.Type == TransactionTypeIncome {
		return t.Amount
	}
	return -t.Amount
}

// Subscription is a recurring charge definition. It never generates
// transactions on its own.
type Subscription struct {
	ID           uuid.UUID
	Name         string
	Amount       int64
	CardID       uuid.UUID
	BillingDay   int
	BillingCycle BillingCycle
	Category     string
	Active       bool
	Color        string
}

// Profile is the signed-in user's public profile.
type Profile struct {
	ID        uuid.UUID
	Username  string
	FullName  string
	AvatarURL string
	Website   string
	UpdatedAt time.Time
}

// NewID returns a random 128-bit identifier for a new entity.
func NewID() uuid.UUID {
	return uuid.Must(uuid.NewV4())
}
