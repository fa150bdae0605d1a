package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Currency is the display currency chosen in the session settings. It only
// affects formatting; stored amounts are never converted.
type Currency string

const (
	CLP Currency = "CLP"
	USD Currency = "USD"
)

func (c Currency) Valid() bool {
	return c == CLP || c == USD
}

var printer = message.NewPrinter(language.MustParse("es-CL"))

// Format renders a whole-unit amount with es-CL digit grouping, e.g.
// "$150.000" for CLP and "US$150.000" for USD. Negative amounts keep the
// sign in front of the symbol.
func Format(amount int64, currency Currency) string {
	symbol := "$"
	if currency == USD {
		symbol = "US$"
	}

	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return sign + symbol + printer.Sprintf("%d", amount)
}
