package state

import (
	"sync"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/wallet-server/internal/ledger"
)

// Snapshot is a consistent view of one user's collections.
type Snapshot struct {
	Cards         []ledger.Card
	Transactions  []ledger.Transaction
	Subscriptions []ledger.Subscription
}

// CardByID returns the card with the given id, or nil.
func (s Snapshot) CardByID(id uuid.UUID) *ledger.Card {
	for i := range s.Cards {
		if s.Cards[i].ID == id {
			c := s.Cards[i]
			return &c
		}
	}
	return nil
}

func (s Snapshot) TransactionByID(id uuid.UUID) *ledger.Transaction {
	for i := range s.Transactions {
		if s.Transactions[i].ID == id {
			t := s.Transactions[i]
			return &t
		}
	}
	return nil
}

func (s Snapshot) SubscriptionByID(id uuid.UUID) *ledger.Subscription {
	for i := range s.Subscriptions {
		if s.Subscriptions[i].ID == id {
			sub := s.Subscriptions[i]
			return &sub
		}
	}
	return nil
}

// Store holds the session snapshot of a single user. Readers never observe a
// partially applied action.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Dispatch(action Action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = action.apply(s.snapshot)
}

// Snapshot returns a copy that is safe to read after later dispatches.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Cards:         clone(s.snapshot.Cards),
		Transactions:  clone(s.snapshot.Transactions),
		Subscriptions: clone(s.snapshot.Subscriptions),
	}
}

// Registry maps signed-in users to their session stores.
type Registry struct {
	mu     sync.Mutex
	stores map[uuid.UUID]*Store
}

func NewRegistry() *Registry {
	return &Registry{stores: make(map[uuid.UUID]*Store)}
}

// Get returns the store for a user, or false when no session is loaded.
func (r *Registry) Get(userID uuid.UUID) (*Store, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	store, ok := r.stores[userID]
	return store, ok
}

// Load installs a freshly loaded snapshot for the user, replacing any
// previous session.
func (r *Registry) Load(userID uuid.UUID, loaded Loaded) *Store {
	store := NewStore()
	store.Dispatch(loaded)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.stores[userID] = store
	return store
}

// Dispatch applies the action to the user's session if one is loaded.
func (r *Registry) Dispatch(userID uuid.UUID, action Action) bool {
	store, ok := r.Get(userID)
	if !ok {
		return false
	}
	store.Dispatch(action)
	return true
}

// Drop forgets the user's session.
func (r *Registry) Drop(userID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.stores, userID)
}
