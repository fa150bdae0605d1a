package operator

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/wallet-server/internal/ledger"
	"github.com/carson-networks/wallet-server/internal/operator/actions"
	"github.com/carson-networks/wallet-server/internal/state"
	"github.com/carson-networks/wallet-server/internal/storage"
	"github.com/carson-networks/wallet-server/internal/storage/card"
	"github.com/carson-networks/wallet-server/internal/storage/profile"
	"github.com/carson-networks/wallet-server/internal/storage/subscription"
	"github.com/carson-networks/wallet-server/internal/storage/transaction"
)

type testEnv struct {
	delegator     *OperatorDelegator
	sessions      *state.Registry
	tx            *storage.MockTx
	tables        storage.Tables
	cards         *card.MockICardTable
	transactions  *transaction.MockITransactionTable
	subscriptions *subscription.MockISubscriptionTable
	profiles      *profile.MockIProfileTable
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		sessions:      state.NewRegistry(),
		tx:            storage.NewMockTx(t),
		cards:         card.NewMockICardTable(t),
		transactions:  transaction.NewMockITransactionTable(t),
		subscriptions: subscription.NewMockISubscriptionTable(t),
		profiles:      profile.NewMockIProfileTable(t),
	}
	env.tables = storage.Tables{
		Cards:         env.cards,
		Transactions:  env.transactions,
		Subscriptions: env.subscriptions,
		Profiles:      env.profiles,
	}
	store := &storage.Storage{
		Tables: env.tables,
		Begin: func(context.Context) (storage.Tx, storage.Tables, error) {
			return env.tx, env.tables, nil
		},
	}
	env.delegator = NewOperatorDelegator(store, env.sessions)
	env.delegator.Start()
	t.Cleanup(env.delegator.Stop)
	return env
}

func TestProcess_CommitsAndDispatches(t *testing.T) {
	env := newTestEnv(t)
	user := ledger.NewID()
	env.sessions.Load(user, state.Loaded{})

	c := ledger.Card{ID: ledger.NewID(), Name: "Test", Type: ledger.CardTypeDebit, InitialBalance: 100000}
	env.cards.EXPECT().Upsert(mock.Anything, user, c).Return(nil)
	env.tx.EXPECT().Commit(mock.Anything).Return(nil)

	err := env.delegator.Process(context.Background(), &actions.SaveCard{UserID: user, Card: c})
	require.NoError(t, err)

	store, _ := env.sessions.Get(user)
	assert.Equal(t, []ledger.Card{c}, store.Snapshot().Cards)
}

func TestProcess_PerformErrorRollsBackWithoutLocalChange(t *testing.T) {
	env := newTestEnv(t)
	user := ledger.NewID()
	existing := ledger.Transaction{ID: ledger.NewID(), Amount: 10}
	env.sessions.Load(user, state.Loaded{Transactions: []ledger.Transaction{existing}})

	env.transactions.EXPECT().Delete(mock.Anything, user, existing.ID).Return(errors.New("network down"))
	env.tx.EXPECT().Rollback(mock.Anything).Return(nil)

	err := env.delegator.Process(context.Background(), &actions.DeleteTransaction{UserID: user, ID: existing.ID})
	assert.EqualError(t, err, "network down")

	store, _ := env.sessions.Get(user)
	assert.Len(t, store.Snapshot().Transactions, 1)
}

func TestProcess_CommitErrorLeavesSessionUnchanged(t *testing.T) {
	env := newTestEnv(t)
	user := ledger.NewID()
	env.sessions.Load(user, state.Loaded{})

	c := ledger.Card{ID: ledger.NewID()}
	env.cards.EXPECT().Upsert(mock.Anything, user, c).Return(nil)
	env.tx.EXPECT().Commit(mock.Anything).Return(errors.New("commit failed"))

	err := env.delegator.Process(context.Background(), &actions.SaveCard{UserID: user, Card: c})
	assert.Error(t, err)

	store, _ := env.sessions.Get(user)
	assert.Empty(t, store.Snapshot().Cards)
}

func TestProcess_NoSessionLoaded(t *testing.T) {
	env := newTestEnv(t)
	user := ledger.NewID()

	env.cards.EXPECT().Delete(mock.Anything, user, mock.Anything).Return(nil)
	env.tx.EXPECT().Commit(mock.Anything).Return(nil)

	err := env.delegator.Process(context.Background(), &actions.DeleteCard{UserID: user, ID: ledger.NewID()})
	assert.NoError(t, err)

	_, ok := env.sessions.Get(user)
	assert.False(t, ok)
}

func TestProcess_SaveProfile(t *testing.T) {
	env := newTestEnv(t)
	p := ledger.Profile{ID: ledger.NewID(), Username: "carson"}

	env.profiles.EXPECT().Upsert(mock.Anything, p).Return(nil)
	env.tx.EXPECT().Commit(mock.Anything).Return(nil)

	assert.NoError(t, env.delegator.Process(context.Background(), &actions.SaveProfile{Profile: p}))
}

func TestProcess_BeginError(t *testing.T) {
	store := &storage.Storage{
		Begin: func(context.Context) (storage.Tx, storage.Tables, error) {
			return nil, storage.Tables{}, errors.New("pool exhausted")
		},
	}
	d := NewOperatorDelegator(store, state.NewRegistry())
	d.Start()
	t.Cleanup(d.Stop)

	err := d.Process(context.Background(), &actions.DeleteCard{UserID: uuid.Nil, ID: uuid.Nil})
	assert.EqualError(t, err, "pool exhausted")
}

func TestProcess_CancelledContext(t *testing.T) {
	d := NewOperatorDelegator(&storage.Storage{}, state.NewRegistry())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Not started: nothing drains the queue, so only the context can end the call.
	for i := 0; i < cap(d.queue); i++ {
		d.queue <- ActionItem{}
	}
	err := d.Process(ctx, &actions.DeleteCard{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProcess_CancelAfterQueuedReportsOutcome(t *testing.T) {
	env := newTestEnv(t)
	user := ledger.NewID()
	env.sessions.Load(user, state.Loaded{})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := ledger.Card{ID: ledger.NewID(), Name: "Visa"}
	env.cards.EXPECT().Upsert(mock.Anything, user, c).RunAndReturn(func(context.Context, uuid.UUID, ledger.Card) error {
		cancel()
		return nil
	})
	env.tx.EXPECT().Commit(mock.Anything).Return(nil)

	err := env.delegator.Process(ctx, &actions.SaveCard{UserID: user, Card: c})
	require.NoError(t, err)

	store, _ := env.sessions.Get(user)
	assert.Equal(t, []ledger.Card{c}, store.Snapshot().Cards)
}

// -- LoadSession tests --

func TestProcess_LoadSessionInstallsSession(t *testing.T) {
	env := newTestEnv(t)
	user := ledger.NewID()
	c := ledger.Card{ID: ledger.NewID(), Name: "Visa"}

	env.cards.EXPECT().List(mock.Anything, user).Return([]ledger.Card{c}, nil)
	env.transactions.EXPECT().List(mock.Anything, user).Return(nil, nil)
	env.subscriptions.EXPECT().List(mock.Anything, user).Return(nil, nil)
	env.tx.EXPECT().Commit(mock.Anything).Return(nil)

	err := env.delegator.Process(context.Background(), &actions.LoadSession{UserID: user, Reader: env.tables})
	require.NoError(t, err)

	store, ok := env.sessions.Get(user)
	require.True(t, ok)
	assert.Equal(t, []ledger.Card{c}, store.Snapshot().Cards)
}

func TestProcess_LoadSessionFailureKeepsSession(t *testing.T) {
	env := newTestEnv(t)
	user := ledger.NewID()
	existing := ledger.Card{ID: ledger.NewID()}
	env.sessions.Load(user, state.Loaded{Cards: []ledger.Card{existing}})

	env.cards.EXPECT().List(mock.Anything, user).Return(nil, errors.New("connection refused"))
	env.transactions.EXPECT().List(mock.Anything, user).Return(nil, nil).Maybe()
	env.subscriptions.EXPECT().List(mock.Anything, user).Return(nil, nil).Maybe()
	env.tx.EXPECT().Rollback(mock.Anything).Return(nil)

	err := env.delegator.Process(context.Background(), &actions.LoadSession{UserID: user, Reader: env.tables})
	assert.EqualError(t, err, "connection refused")

	store, _ := env.sessions.Get(user)
	assert.Equal(t, []ledger.Card{existing}, store.Snapshot().Cards)
}

func TestProcess_LoadSessionWaitsForQueuedSave(t *testing.T) {
	env := newTestEnv(t)
	user := ledger.NewID()
	env.sessions.Load(user, state.Loaded{})
	c := ledger.Card{ID: ledger.NewID(), Name: "Visa"}

	var (
		mu     sync.Mutex
		events []string
	)
	record := func(event string) {
		mu.Lock()
		defer mu.Unlock()
		events = append(events, event)
	}

	saving := make(chan struct{})
	release := make(chan struct{})
	env.cards.EXPECT().Upsert(mock.Anything, user, c).RunAndReturn(func(context.Context, uuid.UUID, ledger.Card) error {
		close(saving)
		<-release
		return nil
	})
	env.tx.EXPECT().Commit(mock.Anything).RunAndReturn(func(context.Context) error {
		record("commit")
		return nil
	})
	env.cards.EXPECT().List(mock.Anything, user).RunAndReturn(func(context.Context, uuid.UUID) ([]ledger.Card, error) {
		record("read")
		return []ledger.Card{c}, nil
	})
	env.transactions.EXPECT().List(mock.Anything, user).Return(nil, nil)
	env.subscriptions.EXPECT().List(mock.Anything, user).Return(nil, nil)

	saveErr := make(chan error, 1)
	go func() {
		saveErr <- env.delegator.Process(context.Background(), &actions.SaveCard{UserID: user, Card: c})
	}()
	<-saving

	loadErr := make(chan error, 1)
	go func() {
		loadErr <- env.delegator.Process(context.Background(), &actions.LoadSession{UserID: user, Reader: env.tables})
	}()
	require.Eventually(t, func() bool { return len(env.delegator.queue) == 1 }, time.Second, time.Millisecond)

	mu.Lock()
	assert.Empty(t, events, "the refresh must not read while the save is in flight")
	mu.Unlock()

	close(release)
	require.NoError(t, <-saveErr)
	require.NoError(t, <-loadErr)

	mu.Lock()
	require.GreaterOrEqual(t, len(events), 2)
	assert.Equal(t, []string{"commit", "read"}, events[:2])
	mu.Unlock()

	store, _ := env.sessions.Get(user)
	assert.Equal(t, []ledger.Card{c}, store.Snapshot().Cards)
}
