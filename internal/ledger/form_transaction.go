package ledger

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
)

// DateLayout is the calendar-date format used by edit forms.
const DateLayout = "2006-01-02"

// TransactionForm holds the raw values of a transaction edit form.
type TransactionForm struct {
	Amount              string
	Description         string
	Category            string
	CardID              string
	Date                string
	Type                TransactionType
	MarkAsPaid          bool
	InstallmentsTotal   string
	InstallmentsCurrent string
}

// BlankTransactionForm is the form opened for a new transaction.
func BlankTransactionForm(defaultCardID uuid.UUID, today time.Time) TransactionForm {
	form := TransactionForm{
		Type:     TransactionTypeExpense,
		Category: DefaultCategory,
		Date:     today.Format(DateLayout),
	}
	if defaultCardID != uuid.Nil {
		form.CardID = defaultCardID.String()
	}
	return form
}

// TransactionFormFor snapshots an existing transaction into form values.
func TransactionFormFor(tx Transaction) TransactionForm {
	form := TransactionForm{
		Amount:      strconv.FormatInt(tx.Amount, 10),
		Description: tx.Description,
		Category:    categoryOrDefault(tx.Category),
		CardID:      tx.CardID.String(),
		Date:        tx.Date.UTC().Format(DateLayout),
		Type:        tx.Type,
		MarkAsPaid:  tx.IsMonthlyPayment,
	}
	if tx.Installments != nil {
		form.InstallmentsTotal = strconv.Itoa(tx.Installments.Total)
		form.InstallmentsCurrent = strconv.Itoa(tx.Installments.Current)
	}
	return form
}

// IsDirty reports whether closing the form would lose edits. original is
// nil for a new transaction, where only the typed-in amount and description
// count. Installments and the paid flag are not tracked.
func (f TransactionForm) IsDirty(original *Transaction) bool {
	if original == nil {
		return f.Amount != "" || f.Description != ""
	}
	o := TransactionFormFor(*original)
	return f.Amount != o.Amount ||
		f.Description != o.Description ||
		f.Category != o.Category ||
		f.CardID != o.CardID ||
		f.Date != o.Date ||
		f.Type != o.Type
}

// ParseTransactionForm validates the form and builds the transaction it
// describes. card is the card selected in the form, nil when unknown. The
// returned transaction has no ID.
func ParseTransactionForm(f TransactionForm, card *Card) (Transaction, error) {
	if strings.TrimSpace(f.Amount) == "" || f.CardID == "" || strings.TrimSpace(f.Description) == "" {
		return Transaction{}, invalid("", "amount, description and card are required")
	}

	amount, err := strconv.ParseInt(strings.TrimSpace(f.Amount), 10, 64)
	if err != nil || amount < 0 {
		return Transaction{}, invalid("amount", "enter a valid amount")
	}

	cardID, err := uuid.FromString(f.CardID)
	if err != nil {
		return Transaction{}, invalid("cardId", "unknown card")
	}

	date, err := parseFormDate(f.Date)
	if err != nil {
		return Transaction{}, invalid("date", "the selected date is not valid")
	}

	txType := f.Type
	if txType == "" {
		txType = TransactionTypeExpense
	}
	if !txType.Valid() {
		return Transaction{}, invalid("type", fmt.Sprintf("unknown transaction type %q", f.Type))
	}

	tx := Transaction{
		CardID:           cardID,
		Amount:           amount,
		Type:             txType,
		Description:      strings.TrimSpace(f.Description),
		Date:             date,
		Category:         categoryOrDefault(f.Category),
		IsMonthlyPayment: txType == TransactionTypeIncome && f.MarkAsPaid,
	}

	if txType == TransactionTypeExpense && card != nil && card.IsCredit() && f.InstallmentsTotal != "" {
		installments, err := parseInstallments(f.InstallmentsTotal, f.InstallmentsCurrent)
		if err != nil {
			return Transaction{}, err
		}
		tx.Installments = installments
	}

	return tx, nil
}

// parseInstallments returns nil for a single payment: a total that is not a
// number or is at most 1 means the expense is not split.
func parseInstallments(totalStr, currentStr string) (*Installments, error) {
	total, err := strconv.Atoi(strings.TrimSpace(totalStr))
	if err != nil || total <= 1 {
		return nil, nil
	}
	current := 1
	if strings.TrimSpace(currentStr) != "" {
		current, err = strconv.Atoi(strings.TrimSpace(currentStr))
		if err != nil {
			return nil, invalid("installmentsCurrent", "enter a valid installment number")
		}
	}
	if current < 1 || current > total {
		return nil, invalid("installmentsCurrent", fmt.Sprintf("installment must be between 1 and %d", total))
	}
	return &Installments{Current: current, Total: total}, nil
}

// parseFormDate returns the calendar date of s at UTC midnight. A full
// timestamp keeps the date it names in its own offset.
func parseFormDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	if d, err := time.Parse(DateLayout, s); err == nil {
		return d, nil
	}
	d, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC), nil
}
