package ledger

import (
	"strconv"
	"strings"

	"github.com/gofrs/uuid/v5"
)

// SubscriptionForm holds the raw values of a subscription edit form.
type SubscriptionForm struct {
	Name         string
	Amount       string
	CardID       string
	BillingDay   string
	BillingCycle BillingCycle
	Category     string
	Active       bool
	Color        string
}

// BlankSubscriptionForm is the form opened for a new subscription.
func BlankSubscriptionForm(defaultCardID uuid.UUID) SubscriptionForm {
	form := SubscriptionForm{
		BillingDay:   "1",
		BillingCycle: BillingCycleMonthly,
		Category:     "subscriptions",
		Active:       true,
		Color:        DefaultCardColor,
	}
	if defaultCardID != uuid.Nil {
		form.CardID = defaultCardID.String()
	}
	return form
}

func SubscriptionFormFor(s Subscription) SubscriptionForm {
	color := s.Color
	if color == "" {
		color = DefaultCardColor
	}
	return SubscriptionForm{
		Name:         s.Name,
		Amount:       strconv.FormatInt(s.Amount, 10),
		CardID:       s.CardID.String(),
		BillingDay:   strconv.Itoa(s.BillingDay),
		BillingCycle: s.BillingCycle,
		Category:     s.Category,
		Active:       s.Active,
		Color:        color,
	}
}

// IsDirty reports whether closing the form would lose edits. original is
// nil for a new subscription.
func (f SubscriptionForm) IsDirty(original *Subscription) bool {
	if original == nil {
		return f.Name != "" || f.Amount != ""
	}
	return f != SubscriptionFormFor(*original)
}

// ParseSubscriptionForm validates the form and builds the subscription it
// describes. The returned subscription has no ID.
func ParseSubscriptionForm(f SubscriptionForm) (Subscription, error) {
	if strings.TrimSpace(f.Name) == "" || strings.TrimSpace(f.Amount) == "" ||
		f.CardID == "" || strings.TrimSpace(f.BillingDay) == "" {
		return Subscription{}, invalid("", "please fill in all required fields")
	}

	amount, err := strconv.ParseInt(strings.TrimSpace(f.Amount), 10, 64)
	if err != nil || amount < 0 {
		return Subscription{}, invalid("amount", "enter a valid amount")
	}

	cardID, err := uuid.FromString(f.CardID)
	if err != nil {
		return Subscription{}, invalid("cardId", "unknown card")
	}

	day, err := strconv.Atoi(strings.TrimSpace(f.BillingDay))
	if err != nil || day < 1 || day > 31 {
		return Subscription{}, invalid("billingDay", "must be a day between 1 and 31")
	}

	cycle := f.BillingCycle
	if cycle == "" {
		cycle = BillingCycleMonthly
	}
	if !cycle.Valid() {
		return Subscription{}, invalid("billingCycle", "must be monthly or yearly")
	}

	category := f.Category
	if category == "" {
		category = "subscriptions"
	}

	return Subscription{
		Name:         strings.TrimSpace(f.Name),
		Amount:       amount,
		CardID:       cardID,
		BillingDay:   day,
		BillingCycle: cycle,
		Category:     category,
		Active:       f.Active,
		Color:        f.Color,
	}, nil
}
