package state

import (
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/wallet-server/internal/ledger"
)

// Action is a single change to a session snapshot. Actions are only
// dispatched after the persistence round-trip for the change succeeded.
type Action interface {
	apply(s Snapshot) Snapshot
}

// Loaded replaces every collection wholesale.
type Loaded struct {
	Cards         []ledger.Card
	Transactions  []ledger.Transaction
	Subscriptions []ledger.Subscription
}

func (a Loaded) apply(Snapshot) Snapshot {
	return Snapshot{
		Cards:         clone(a.Cards),
		Transactions:  clone(a.Transactions),
		Subscriptions: clone(a.Subscriptions),
	}
}

type CardSaved struct {
	Card ledger.Card
}

func (a CardSaved) apply(s Snapshot) Snapshot {
	s.Cards = upsert(s.Cards, a.Card, func(c ledger.Card) uuid.UUID { return c.ID })
	return s
}

// CardDeleted removes the card only. Its transactions stay in the snapshot
// and show up against a deleted card.
type CardDeleted struct {
	ID uuid.UUID
}

func (a CardDeleted) apply(s Snapshot) Snapshot {
	s.Cards = remove(s.Cards, a.ID, func(c ledger.Card) uuid.UUID { return c.ID })
	return s
}

type TransactionSaved struct {
	Transaction ledger.Transaction
}

func (a TransactionSaved) apply(s Snapshot) Snapshot {
	s.Transactions = upsert(s.Transactions, a.Transaction, func(t ledger.Transaction) uuid.UUID { return t.ID })
	return s
}

type TransactionDeleted struct {
	ID uuid.UUID
}

func (a TransactionDeleted) apply(s Snapshot) Snapshot {
	s.Transactions = remove(s.Transactions, a.ID, func(t ledger.Transaction) uuid.UUID { return t.ID })
	return s
}

type SubscriptionSaved struct {
	Subscription ledger.Subscription
}

func (a SubscriptionSaved) apply(s Snapshot) Snapshot {
	s.Subscriptions = upsert(s.Subscriptions, a.Subscription, func(sub ledger.Subscription) uuid.UUID { return sub.ID })
	return s
}

type SubscriptionDeleted struct {
	ID uuid.UUID
}

func (a SubscriptionDeleted) apply(s Snapshot) Snapshot {
	s.Subscriptions = remove(s.Subscriptions, a.ID, func(sub ledger.Subscription) uuid.UUID { return sub.ID })
	return s
}

// upsert replaces the element with the same id in place, or appends it.
// The input slice is never modified.
func upsert[T any](items []T, item T, id func(T) uuid.UUID) []T {
	out := clone(items)
	for i := range out {
		if id(out[i]) == id(item) {
			out[i] = item
			return out
		}
	}
	return append(out, item)
}

func remove[T any](items []T, target uuid.UUID, id func(T) uuid.UUID) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if id(item) != target {
			out = append(out, item)
		}
	}
	return out
}

func clone[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}
