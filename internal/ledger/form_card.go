package ledger

import (
	"math/rand/v2"
	"strconv"
	"strings"
)

// DefaultCardColor is preselected on a new card form.
const DefaultCardColor = "bg-slate-900"

// CardForm holds the raw values of a card edit form.
type CardForm struct {
	Name                    string
	Type                    CardType
	InitialBalance          string
	Color                   string
	Last4                   string
	PaymentDay              string
	CustomMonthlyBillAmount string
	MinBalanceThreshold     string
	TotalLimit              string
}

// BlankCardForm is the form opened for a new card.
func BlankCardForm() CardForm {
	return CardForm{Type: CardTypeDebit, Color: DefaultCardColor}
}

// CardFormFor snapshots an existing card into form values.
func CardFormFor(c Card) CardForm {
	form := CardForm{
		Name:           c.Name,
		Type:           c.Type,
		InitialBalance: strconv.FormatInt(c.InitialBalance, 10),
		Color:          c.Color,
		Last4:          c.Last4,
	}
	if c.PaymentDay != nil {
		form.PaymentDay = strconv.Itoa(*c.PaymentDay)
	}
	form.CustomMonthlyBillAmount = formatOptional(c.CustomMonthlyBillAmount)
	form.MinBalanceThreshold = formatOptional(c.MinBalanceThreshold)
	form.TotalLimit = formatOptional(c.TotalLimit)
	return form
}

// IsDirty reports whether closing the form would lose edits. original is
// nil for a new card.
func (f CardForm) IsDirty(original *Card) bool {
	if original == nil {
		return f.Name != "" || f.InitialBalance != "" || f.Last4 != ""
	}
	o := CardFormFor(*original)
	return f.Name != o.Name ||
		f.InitialBalance != o.InitialBalance ||
		f.Type != o.Type ||
		f.Color != o.Color ||
		f.Last4 != o.Last4 ||
		f.TotalLimit != o.TotalLimit
}

// ParseCardForm validates the form and builds the card it describes. The
// returned card has no ID and no reminder date. Credit-only fields are
// dropped for other card types.
func ParseCardForm(f CardForm) (Card, error) {
	if strings.TrimSpace(f.Name) == "" || strings.TrimSpace(f.InitialBalance) == "" {
		return Card{}, invalid("", "enter a name and the initial balance")
	}

	initial, err := strconv.ParseInt(strings.TrimSpace(f.InitialBalance), 10, 64)
	if err != nil {
		return Card{}, invalid("initialBalance", "enter a valid initial balance")
	}

	cardType := f.Type
	if cardType == "" {
		cardType = CardTypeDebit
	}
	if !cardType.Valid() {
		return Card{}, invalid("type", "card type must be debit, checking or credit")
	}

	last4 := strings.TrimSpace(f.Last4)
	if last4 == "" {
		last4 = strconv.Itoa(1000 + rand.IntN(9000))
	} else if !isFourDigits(last4) {
		return Card{}, invalid("last4", "must be exactly 4 digits")
	}

	color := f.Color
	if color == "" {
		color = DefaultCardColor
	}

	card := Card{
		Name:           strings.TrimSpace(f.Name),
		Type:           cardType,
		InitialBalance: initial,
		Color:          color,
		Last4:          last4,
	}

	if card.MinBalanceThreshold, err = parseOptional(f.MinBalanceThreshold, "minBalanceThreshold"); err != nil {
		return Card{}, err
	}

	if !card.IsCredit() {
		return card, nil
	}

	if s := strings.TrimSpace(f.PaymentDay); s != "" {
		day, err := strconv.Atoi(s)
		if err != nil || day < 1 || day > 31 {
			return Card{}, invalid("paymentDay", "must be a day between 1 and 31")
		}
		card.PaymentDay = &day
	}
	if card.CustomMonthlyBillAmount, err = parseOptional(f.CustomMonthlyBillAmount, "customMonthlyBillAmount"); err != nil {
		return Card{}, err
	}
	if card.TotalLimit, err = parseOptional(f.TotalLimit, "totalLimit"); err != nil {
		return Card{}, err
	}
	return card, nil
}

func parseOptional(s, field string) (*int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, invalid(field, "enter a valid amount")
	}
	return &v, nil
}

func formatOptional(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

func isFourDigits(s string) bool {
	if len(s) != 4 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
