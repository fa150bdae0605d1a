package ledger

import (
	"fmt"
	"time"
)

// PaymentState classifies the badge shown on a card.
type PaymentState string

const (
	PaymentStateOverdue         PaymentState = "overdue"
	PaymentStateReminderToday   PaymentState = "reminder_today"
	PaymentStateReminderSoon    PaymentState = "reminder_soon"
	PaymentStateReminderPending PaymentState = "reminder_pending"
	PaymentStatePaid            PaymentState = "paid"
	PaymentStatePending         PaymentState = "pending"
)

// PaymentStatus is the reminder or bill-payment state of a card.
type PaymentStatus struct {
	State    PaymentState
	Label    string
	DaysLeft int
	Urgent   bool
}

// CardPaymentStatus derives the badge for a card. A user-set reminder date
// wins; otherwise credit cards with a payment day count down to it, unless a
// bill payment was already recorded this month. ok is false when neither
// applies.
func CardPaymentStatus(card Card, txs []Transaction, today time.Time) (status PaymentStatus, ok bool) {
	if card.ReminderDate != nil {
		return reminderStatus(*card.ReminderDate, today), true
	}

	if !card.IsCredit() || card.PaymentDay == nil {
		return PaymentStatus{}, false
	}

	if last := LastPaymentDate(card, txs); last != nil {
		l := last.UTC()
		if l.Month() == today.Month() && l.Year() == today.Year() {
			return PaymentStatus{State: PaymentStatePaid, Label: "Paid"}, true
		}
	}

	day := *card.PaymentDay
	days := DaysUntil(day, today)
	status = PaymentStatus{
		State:    PaymentStatePending,
		Label:    fmt.Sprintf("Pay on the %d", day),
		DaysLeft: days,
		Urgent:   IsUrgent(days),
	}
	if days == 0 {
		status.Label = "Pay today!"
	}
	return status, true
}

// reminderStatus compares the reminder, a calendar date stored at UTC
// midnight, with the calendar date of today in its own location.
func reminderStatus(reminder, today time.Time) PaymentStatus {
	reminder = reminder.UTC()
	days := calendarDaysBetween(today, reminder)
	switch {
	case days < 0:
		return PaymentStatus{State: PaymentStateOverdue, Label: "Overdue", DaysLeft: days, Urgent: true}
	case days == 0:
		return PaymentStatus{State: PaymentStateReminderToday, Label: "Reminder today!", Urgent: true}
	case days <= UrgentWithinDays:
		return PaymentStatus{
			State:    PaymentStateReminderSoon,
			Label:    fmt.Sprintf("Reminder: %s", DueLabel(days)),
			DaysLeft: days,
			Urgent:   true,
		}
	}
	return PaymentStatus{
		State:    PaymentStateReminderPending,
		Label:    "Reminder: " + reminder.Format("02 Jan"),
		DaysLeft: days,
	}
}

// calendarDaysBetween counts whole days between the calendar dates of a and
// b, ignoring the time of day.
func calendarDaysBetween(a, b time.Time) int {
	da := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	db := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(db.Sub(da).Hours() / 24)
}
