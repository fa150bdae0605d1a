package ledger

import (
	"strconv"
	"time"

	"github.com/goodsign/monday"
)

// PayBillForm prefills an income form that settles the current bill of a
// credit card. Saving it records a monthly payment, which moves the card's
// last payment date.
func PayBillForm(card Card, txs []Transaction, today time.Time, locale monday.Locale) TransactionForm {
	form := BlankTransactionForm(card.ID, today)
	form.Type = TransactionTypeIncome
	form.Category = "bills"
	form.MarkAsPaid = true
	form.Description = "Bill payment"

	if info, ok := ResolveBillingCycle(card, txs, today, locale); ok {
		form.Description = "Bill payment " + info.Label
		if info.Amount > 0 {
			form.Amount = strconv.FormatInt(info.Amount, 10)
		}
	}
	return form
}
