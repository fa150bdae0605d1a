package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/wallet-server/internal/ledger"
	"github.com/carson-networks/wallet-server/internal/logging"
	"github.com/carson-networks/wallet-server/internal/operator/actions"
	"github.com/carson-networks/wallet-server/internal/state"
	"github.com/carson-networks/wallet-server/internal/storage"
)

// SessionService owns the in-memory snapshot of each signed-in user.
type SessionService struct {
	storage  *storage.Storage
	sessions *state.Registry
	operator IOperator
}

func NewSessionService(store *storage.Storage, sessions *state.Registry, operator IOperator) *SessionService {
	return &SessionService{storage: store, sessions: sessions, operator: operator}
}

// Load replaces the user's session with a fresh copy of the three
// collections. The load is queued behind pending mutations, so a refresh
// never drops a committed write. An anonymous user gets an empty snapshot.
func (s *SessionService) Load(ctx context.Context, userID uuid.UUID) (state.Snapshot, error) {
	if userID == uuid.Nil {
		return state.Snapshot{}, nil
	}

	endTimer := logging.GetLogData(ctx).AddTiming("sessionLoadMs")
	defer endTimer()

	action := &actions.LoadSession{UserID: userID, Reader: s.storage.Tables}
	if err := s.operator.Process(ctx, action); err != nil {
		return state.Snapshot{}, persistenceError(ctx, userID, "failed to load data", err)
	}

	if store, ok := s.sessions.Get(userID); ok {
		return store.Snapshot(), nil
	}
	return state.Snapshot{
		Cards:         action.Loaded.Cards,
		Transactions:  action.Loaded.Transactions,
		Subscriptions: action.Loaded.Subscriptions,
	}, nil
}

// Snapshot returns the user's session, loading it on first use.
func (s *SessionService) Snapshot(ctx context.Context, userID uuid.UUID) (state.Snapshot, error) {
	if userID == uuid.Nil {
		return state.Snapshot{}, nil
	}
	if store, ok := s.sessions.Get(userID); ok {
		return store.Snapshot(), nil
	}
	return s.Load(ctx, userID)
}

// Drop forgets the user's session, as on sign-out.
func (s *SessionService) Drop(userID uuid.UUID) {
	s.sessions.Drop(userID)
}

func (s *SessionService) card(ctx context.Context, userID, id uuid.UUID) (*ledger.Card, state.Snapshot, error) {
	snap, err := s.Snapshot(ctx, userID)
	if err != nil {
		return nil, snap, err
	}
	c := snap.CardByID(id)
	if c == nil {
		return nil, snap, ErrNotFound
	}
	return c, snap, nil
}
