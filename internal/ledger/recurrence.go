package ledger

import (
	"fmt"
	"slices"
	"time"
)

// UrgentWithinDays flags a due date as urgent. Display only.
const UrgentWithinDays = 3

// DaysUntil returns the number of days from today until day-of-month day
// next comes around. When day has already passed this month, it wraps into
// next month using the real length of the current month.
func DaysUntil(day int, today time.Time) int {
	t := today.Day()
	if day >= t {
		return day - t
	}
	return (daysInMonth(today) - t) + day
}

func daysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

// DueLabel renders a days-left count.
func DueLabel(daysLeft int) string {
	switch daysLeft {
	case 0:
		return "today"
	case 1:
		return "in 1 day"
	}
	return fmt.Sprintf("in %d days", daysLeft)
}

// IsUrgent reports whether a due date is close enough to highlight.
func IsUrgent(daysLeft int) bool {
	return daysLeft <= UrgentWithinDays
}

// SubscriptionDue is a subscription with its next billing countdown.
type SubscriptionDue struct {
	Subscription
	DaysLeft int
	Label    string
	Urgent   bool
}

// SortByDaysLeft returns every subscription ordered by ascending days
// until its next billing day. Ties keep their input order.
func SortByDaysLeft(subs []Subscription, today time.Time) []SubscriptionDue {
	out := make([]SubscriptionDue, len(subs))
	for i, sub := range subs {
		days := DaysUntil(sub.BillingDay, today)
		out[i] = SubscriptionDue{
			Subscription: sub,
			DaysLeft:     days,
			Label:        DueLabel(days),
			Urgent:       IsUrgent(days),
		}
	}
	slices.SortStableFunc(out, func(a, b SubscriptionDue) int {
		return a.DaysLeft - b.DaysLeft
	})
	return out
}

// UpcomingSubscriptions returns the active subscriptions due soonest. A
// limit of zero or less returns all of them.
func UpcomingSubscriptions(subs []Subscription, today time.Time, limit int) []SubscriptionDue {
	active := make([]Subscription, 0, len(subs))
	for _, sub := range subs {
		if sub.Active {
			active = append(active, sub)
		}
	}
	due := SortByDaysLeft(active, today)
	if limit > 0 && len(due) > limit {
		due = due[:limit]
	}
	return due
}

// SubscriptionTotals sums active subscriptions per billing cycle.
type SubscriptionTotals struct {
	Monthly     int64
	Yearly      int64
	ActiveCount int
}

func TotalSubscriptions(subs []Subscription) SubscriptionTotals {
	var totals SubscriptionTotals
	for _, sub := range subs {
		if !sub.Active {
			continue
		}
		totals.ActiveCount++
		switch sub.BillingCycle {
		case BillingCycleMonthly:
			totals.Monthly += sub.Amount
		case BillingCycleYearly:
			totals.Yearly += sub.Amount
		}
	}
	return totals
}
