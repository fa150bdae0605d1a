package ledger

import (
	"time"

	"github.com/goodsign/monday"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultMonthLocale names months in bill labels.
const DefaultMonthLocale = monday.LocaleEsES

// BillingInfo is the amount due on a credit card for one billing month.
type BillingInfo struct {
	Month  time.Month
	Year   int
	Label  string
	Amount int64
}

// ResolveBillingCycle works out which calendar month the next bill of a
// credit card covers and how much is due for it.
//
// Up to and including the payment day, the bill covers the previous month;
// after it, the current month. today is read in its own location while
// transaction dates are calendar dates stored at UTC midnight. A custom monthly amount replaces the
// computed expense sum. ok is false for non-credit cards and for credit
// cards without a payment day.
func ResolveBillingCycle(card Card, txs []Transaction, today time.Time, locale monday.Locale) (info BillingInfo, ok bool) {
	if !card.IsCredit() || card.PaymentDay == nil {
		return BillingInfo{}, false
	}

	target := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	if today.Day() <= *card.PaymentDay {
		target = target.AddDate(0, -1, 0)
	}

	var expenses int64
	for _, tx := range txs {
		if tx.CardID != card.ID || tx.Type != TransactionTypeExpense {
			continue
		}
		d := tx.Date.UTC()
		if d.Month() == target.Month() && d.Year() == target.Year() {
			expenses += tx.Amount
		}
	}

	amount := expenses
	if card.CustomMonthlyBillAmount != nil {
		amount = *card.CustomMonthlyBillAmount
	}

	return BillingInfo{
		Month:  target.Month(),
		Year:   target.Year(),
		Label:  MonthLabel(target, locale),
		Amount: amount,
	}, true
}

// MonthLabel returns the capitalized, localized month name of t.
func MonthLabel(t time.Time, locale monday.Locale) string {
	if locale == "" {
		locale = DefaultMonthLocale
	}
	name := monday.Format(t, "January", locale)
	return cases.Title(localeTag(locale)).String(name)
}

func localeTag(locale monday.Locale) language.Tag {
	tag, err := language.Parse(string(locale))
	if err != nil {
		return language.Und
	}
	return tag
}
