package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/wallet-server/internal/advisor"
	"github.com/carson-networks/wallet-server/internal/ledger"
	"github.com/carson-networks/wallet-server/internal/money"
	"github.com/carson-networks/wallet-server/internal/operator"
	"github.com/carson-networks/wallet-server/internal/settings"
	"github.com/carson-networks/wallet-server/internal/state"
	"github.com/carson-networks/wallet-server/internal/storage"
	"github.com/carson-networks/wallet-server/internal/storage/card"
	"github.com/carson-networks/wallet-server/internal/storage/profile"
	"github.com/carson-networks/wallet-server/internal/storage/subscription"
	"github.com/carson-networks/wallet-server/internal/storage/transaction"
)

var today = time.Date(2025, 10, 3, 12, 0, 0, 0, time.UTC)

type fakeAdvisor struct {
	receipt  *advisor.ReceiptInfo
	gotTotal int64
	gotTxs   []ledger.Transaction
}

func (f *fakeAdvisor) FinancialAdvice(_ context.Context, total int64, _ []ledger.CardBalance, txs []ledger.Transaction, _ money.Currency) string {
	f.gotTotal = total
	f.gotTxs = txs
	return "spend less"
}

func (f *fakeAdvisor) ExtractReceiptInfo(context.Context, string) *advisor.ReceiptInfo {
	return f.receipt
}

func (f *fakeAdvisor) AnalyzeImage(context.Context, string) string {
	return "a receipt"
}

type testEnv struct {
	svc           *Service
	sessions      *state.Registry
	tx            *storage.MockTx
	cards         *card.MockICardTable
	transactions  *transaction.MockITransactionTable
	subscriptions *subscription.MockISubscriptionTable
	profiles      *profile.MockIProfileTable
	advisor       *fakeAdvisor
	user          uuid.UUID
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
		advisor:       &fakeAdvisor{},
		user:          ledger.NewID(),
	}
	tables := storage.Tables{
		Cards:         env.cards,
		Transactions:  env.transactions,
		Subscriptions: env.subscriptions,
		Profiles:      env.profiles,
	}
	store := &storage.Storage{
		Tables: tables,
		Begin: func(context.Context) (storage.Tx, storage.Tables, error) {
			return env.tx, tables, nil
		},
	}

	delegator := operator.NewOperatorDelegator(store, env.sessions)
	delegator.Start()
	t.Cleanup(delegator.Stop)

	env.svc = NewService(Dependencies{
		Storage:  store,
		Sessions: env.sessions,
		Operator: delegator,
		Settings: settings.NewFileStore(t.TempDir()),
		Advisor:  env.advisor,
		Now:      func() time.Time { return today },
	})
	return env
}

// seed loads the user's session without touching storage.
func (e *testEnv) seed(loaded state.Loaded) {
	e.sessions.Load(e.user, loaded)
}

func (e *testEnv) expectCommit() {
	e.tx.EXPECT().Commit(mock.Anything).Return(nil)
}

// -- SessionService tests --

func TestSessionLoad_FetchesAllCollections(t *testing.T) {
	env := newTestEnv(t)
	c := ledger.Card{ID: ledger.NewID(), Name: "Checking", InitialBalance: 1000}
	tx := ledger.Transaction{ID: ledger.NewID(), CardID: c.ID, Amount: 200, Type: ledger.TransactionTypeExpense}
	sub := ledger.Subscription{ID: ledger.NewID(), CardID: c.ID, BillingDay: 5}

	env.cards.EXPECT().List(mock.Anything, env.user).Return([]ledger.Card{c}, nil)
	env.transactions.EXPECT().List(mock.Anything, env.user).Return([]ledger.Transaction{tx}, nil)
	env.subscriptions.EXPECT().List(mock.Anything, env.user).Return([]ledger.Subscription{sub}, nil)
	env.expectCommit()

	snap, err := env.svc.Session.Load(context.Background(), env.user)
	require.NoError(t, err)
	assert.Len(t, snap.Cards, 1)
	assert.Len(t, snap.Transactions, 1)
	assert.Len(t, snap.Subscriptions, 1)

	total, err := env.svc.Card.TotalBalance(context.Background(), env.user)
	require.NoError(t, err)
	assert.Equal(t, int64(800), total)
}

func TestSessionLoad_Failure(t *testing.T) {
	env := newTestEnv(t)
	env.cards.EXPECT().List(mock.Anything, env.user).Return(nil, errors.New("connection refused"))
	env.transactions.EXPECT().List(mock.Anything, env.user).Return(nil, nil).Maybe()
	env.subscriptions.EXPECT().List(mock.Anything, env.user).Return(nil, nil).Maybe()
	env.tx.EXPECT().Rollback(mock.Anything).Return(nil)

	_, err := env.svc.Session.Load(context.Background(), env.user)
	var perr *PersistenceError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "failed to load data", perr.Message)

	_, loaded := env.sessions.Get(env.user)
	assert.False(t, loaded)
}

func TestSessionLoad_RefreshAfterSaveKeepsWrite(t *testing.T) {
	env := newTestEnv(t)
	env.seed(state.Loaded{})

	var saved ledger.Card
	env.cards.EXPECT().Upsert(mock.Anything, env.user, mock.Anything).RunAndReturn(func(_ context.Context, _ uuid.UUID, c ledger.Card) error {
		saved = c
		return nil
	})
	env.cards.EXPECT().List(mock.Anything, env.user).RunAndReturn(func(context.Context, uuid.UUID) ([]ledger.Card, error) {
		return []ledger.Card{saved}, nil
	})
	env.transactions.EXPECT().List(mock.Anything, env.user).Return(nil, nil)
	env.subscriptions.EXPECT().List(mock.Anything, env.user).Return(nil, nil)
	env.expectCommit()

	_, err := env.svc.Card.SaveCard(context.Background(), env.user, uuid.Nil,
		ledger.CardForm{Name: "Checking", Type: ledger.CardTypeChecking, InitialBalance: "1000"})
	require.NoError(t, err)

	snap, err := env.svc.Session.Load(context.Background(), env.user)
	require.NoError(t, err)
	require.Len(t, snap.Cards, 1)
	assert.Equal(t, "Checking", snap.Cards[0].Name)
}

func TestAnonymousUser(t *testing.T) {
	env := newTestEnv(t)

	cards, err := env.svc.Card.ListCards(context.Background(), uuid.Nil)
	require.NoError(t, err)
	assert.Empty(t, cards)

	_, err = env.svc.Card.SaveCard(context.Background(), uuid.Nil, uuid.Nil, ledger.CardForm{Name: "x", InitialBalance: "1"})
	assert.ErrorIs(t, err, ErrUnauthenticated)

	s, err := env.svc.Settings.Get(context.Background(), uuid.Nil)
	require.NoError(t, err)
	assert.Equal(t, settings.Defaults(), s)
}

// -- CardService tests --

func TestSaveCard_CreateAppendsToSession(t *testing.T) {
	env := newTestEnv(t)
	env.seed(state.Loaded{})

	env.cards.EXPECT().Upsert(mock.Anything, env.user, mock.MatchedBy(func(c ledger.Card) bool {
		return c.ID != uuid.Nil && c.Name == "Checking"
	})).Return(nil)
	env.expectCommit()

	saved, err := env.svc.Card.SaveCard(context.Background(), env.user, uuid.Nil,
		ledger.CardForm{Name: "Checking", Type: ledger.CardTypeChecking, InitialBalance: "100000"})
	require.NoError(t, err)

	cards, err := env.svc.Card.ListCards(context.Background(), env.user)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, saved.ID, cards[0].ID)
	assert.Equal(t, int64(100000), cards[0].CurrentBalance)
}

func TestSaveCard_EditKeepsReminder(t *testing.T) {
	env := newTestEnv(t)
	reminder := time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)
	existing := ledger.Card{ID: ledger.NewID(), Name: "Visa", Type: ledger.CardTypeCredit, ReminderDate: &reminder}
	env.seed(state.Loaded{Cards: []ledger.Card{existing}})

	env.cards.EXPECT().Upsert(mock.Anything, env.user, mock.Anything).Return(nil)
	env.expectCommit()

	form := ledger.CardFormFor(existing)
	form.Name = "Visa Gold"
	saved, err := env.svc.Card.SaveCard(context.Background(), env.user, existing.ID, form)
	require.NoError(t, err)
	assert.Equal(t, existing.ID, saved.ID)
	require.NotNil(t, saved.ReminderDate)
	assert.True(t, saved.ReminderDate.Equal(reminder))
}

func TestSaveCard_UnknownID(t *testing.T) {
	env := newTestEnv(t)
	env.seed(state.Loaded{})

	_, err := env.svc.Card.SaveCard(context.Background(), env.user, ledger.NewID(), ledger.CardForm{Name: "x", InitialBalance: "1"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSaveCard_FailureLeavesSessionUnchanged(t *testing.T) {
	env := newTestEnv(t)
	env.seed(state.Loaded{})

	env.cards.EXPECT().Upsert(mock.Anything, env.user, mock.Anything).Return(errors.New("timeout"))
	env.tx.EXPECT().Rollback(mock.Anything).Return(nil)

	_, err := env.svc.Card.SaveCard(context.Background(), env.user, uuid.Nil, ledger.CardForm{Name: "x", InitialBalance: "1"})
	var perr *PersistenceError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "failed to save card", perr.Message)

	cards, err := env.svc.Card.ListCards(context.Background(), env.user)
	require.NoError(t, err)
	assert.Empty(t, cards)
}

func TestSaveCard_ValidationError(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.Card.SaveCard(context.Background(), env.user, uuid.Nil, ledger.CardForm{Name: ""})
	var verr *ledger.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestDeleteCard_RequiresConfirmationAndKeepsTransactions(t *testing.T) {
	env := newTestEnv(t)
	c := ledger.Card{ID: ledger.NewID(), Name: "Old", InitialBalance: 500}
	tx := ledger.Transaction{ID: ledger.NewID(), CardID: c.ID, Amount: 100, Type: ledger.TransactionTypeExpense, Date: today}
	env.seed(state.Loaded{Cards: []ledger.Card{c}, Transactions: []ledger.Transaction{tx}})

	err := env.svc.Card.DeleteCard(context.Background(), env.user, c.ID, false)
	var cerr *ConfirmationRequiredError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, ledger.ConfirmDeleteCard, cerr.Confirmation)

	env.cards.EXPECT().Delete(mock.Anything, env.user, c.ID).Return(nil)
	env.expectCommit()
	require.NoError(t, env.svc.Card.DeleteCard(context.Background(), env.user, c.ID, true))

	txs, err := env.svc.Transaction.ListTransactions(context.Background(), env.user, uuid.Nil)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.True(t, txs[0].CardDeleted)
	assert.Equal(t, DeletedCardName, txs[0].CardName)
}

func TestSetReminder_AndClear(t *testing.T) {
	env := newTestEnv(t)
	c := ledger.Card{ID: ledger.NewID(), Name: "Checking", Type: ledger.CardTypeChecking}
	env.seed(state.Loaded{Cards: []ledger.Card{c}})

	env.cards.EXPECT().Upsert(mock.Anything, env.user, mock.Anything).Return(nil).Times(2)
	env.tx.EXPECT().Commit(mock.Anything).Return(nil).Times(2)

	reminder := time.Date(2025, 10, 3, 0, 0, 0, 0, time.UTC)
	_, err := env.svc.Card.SetReminder(context.Background(), env.user, c.ID, &reminder)
	require.NoError(t, err)

	cards, err := env.svc.Card.ListCards(context.Background(), env.user)
	require.NoError(t, err)
	require.NotNil(t, cards[0].PaymentStatus)
	assert.Equal(t, ledger.PaymentStateReminderToday, cards[0].PaymentStatus.State)

	_, err = env.svc.Card.ClearReminder(context.Background(), env.user, c.ID)
	require.NoError(t, err)

	cards, err = env.svc.Card.ListCards(context.Background(), env.user)
	require.NoError(t, err)
	assert.Nil(t, cards[0].PaymentStatus)
}

// -- TransactionService tests --

func TestSaveTransaction_UpdatesBalance(t *testing.T) {
	env := newTestEnv(t)
	c := ledger.Card{ID: ledger.NewID(), Name: "A", InitialBalance: 100000}
	env.seed(state.Loaded{Cards: []ledger.Card{c}})

	env.transactions.EXPECT().Upsert(mock.Anything, env.user, mock.Anything).Return(nil)
	env.expectCommit()

	_, err := env.svc.Transaction.SaveTransaction(context.Background(), env.user, uuid.Nil, ledger.TransactionForm{
		Amount: "15000", Description: "Groceries", CardID: c.ID.String(), Date: "2025-10-02",
	})
	require.NoError(t, err)

	total, err := env.svc.Card.TotalBalance(context.Background(), env.user)
	require.NoError(t, err)
	assert.Equal(t, int64(85000), total)
}

func TestSaveTransaction_UnknownCard(t *testing.T) {
	env := newTestEnv(t)
	env.seed(state.Loaded{})

	_, err := env.svc.Transaction.SaveTransaction(context.Background(), env.user, uuid.Nil, ledger.TransactionForm{
		Amount: "10", Description: "x", CardID: ledger.NewID().String(), Date: "2025-10-02",
	})
	var verr *ledger.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "cardId", verr.Field)
}

func TestListTransactions_NewestFirstWithFilter(t *testing.T) {
	env := newTestEnv(t)
	a := ledger.Card{ID: ledger.NewID(), Name: "A"}
	b := ledger.Card{ID: ledger.NewID(), Name: "B"}
	old := ledger.Transaction{ID: ledger.NewID(), CardID: a.ID, Date: today.AddDate(0, 0, -3)}
	recent := ledger.Transaction{ID: ledger.NewID(), CardID: a.ID, Date: today}
	other := ledger.Transaction{ID: ledger.NewID(), CardID: b.ID, Date: today.AddDate(0, 0, -1)}
	env.seed(state.Loaded{Cards: []ledger.Card{a, b}, Transactions: []ledger.Transaction{old, recent, other}})

	all, err := env.svc.Transaction.ListTransactions(context.Background(), env.user, uuid.Nil)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []uuid.UUID{recent.ID, other.ID, old.ID}, []uuid.UUID{all[0].ID, all[1].ID, all[2].ID})

	onlyA, err := env.svc.Transaction.ListTransactions(context.Background(), env.user, a.ID)
	require.NoError(t, err)
	require.Len(t, onlyA, 2)
	assert.Equal(t, "A", onlyA[0].CardName)
}

func TestDeleteTransaction(t *testing.T) {
	env := newTestEnv(t)
	tx := ledger.Transaction{ID: ledger.NewID()}
	env.seed(state.Loaded{Transactions: []ledger.Transaction{tx}})

	assert.ErrorIs(t, env.svc.Transaction.DeleteTransaction(context.Background(), env.user, ledger.NewID(), true), ErrNotFound)

	env.transactions.EXPECT().Delete(mock.Anything, env.user, tx.ID).Return(nil)
	env.expectCommit()
	require.NoError(t, env.svc.Transaction.DeleteTransaction(context.Background(), env.user, tx.ID, true))

	txs, err := env.svc.Transaction.ListTransactions(context.Background(), env.user, uuid.Nil)
	require.NoError(t, err)
	assert.Empty(t, txs)
}

// -- SubscriptionService tests --

func TestSubscriptions_SortedAndUpcoming(t *testing.T) {
	env := newTestEnv(t)
	c := ledger.Card{ID: ledger.NewID()}
	subs := []ledger.Subscription{
		{ID: ledger.NewID(), Name: "late", CardID: c.ID, BillingDay: 20, Amount: 10, BillingCycle: ledger.BillingCycleMonthly, Active: true},
		{ID: ledger.NewID(), Name: "soon", CardID: c.ID, BillingDay: 4, Amount: 20, BillingCycle: ledger.BillingCycleMonthly, Active: true},
		{ID: ledger.NewID(), Name: "paused", CardID: c.ID, BillingDay: 3, Amount: 30, BillingCycle: ledger.BillingCycleMonthly},
		{ID: ledger.NewID(), Name: "mid", CardID: c.ID, BillingDay: 10, Amount: 40, BillingCycle: ledger.BillingCycleMonthly, Active: true},
		{ID: ledger.NewID(), Name: "later", CardID: c.ID, BillingDay: 25, Amount: 50, BillingCycle: ledger.BillingCycleMonthly, Active: true},
	}
	env.seed(state.Loaded{Cards: []ledger.Card{c}, Subscriptions: subs})

	list, err := env.svc.Subscription.ListSubscriptions(context.Background(), env.user)
	require.NoError(t, err)
	require.Len(t, list.Items, 5)
	assert.Equal(t, "paused", list.Items[0].Name)
	assert.Equal(t, "today", list.Items[0].Label)
	assert.Equal(t, int64(120), list.Totals.Monthly)

	upcoming, err := env.svc.Subscription.Upcoming(context.Background(), env.user)
	require.NoError(t, err)
	require.Len(t, upcoming, UpcomingLimit)
	assert.Equal(t, "soon", upcoming[0].Name)
	assert.Equal(t, "mid", upcoming[1].Name)
	assert.Equal(t, "late", upcoming[2].Name)
}

func TestSaveSubscription_UnknownCard(t *testing.T) {
	env := newTestEnv(t)
	env.seed(state.Loaded{})

	form := ledger.BlankSubscriptionForm(ledger.NewID())
	form.Name = "Music"
	form.Amount = "5990"
	_, err := env.svc.Subscription.SaveSubscription(context.Background(), env.user, uuid.Nil, form)
	var verr *ledger.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestDeleteSubscription_Confirmation(t *testing.T) {
	env := newTestEnv(t)
	sub := ledger.Subscription{ID: ledger.NewID()}
	env.seed(state.Loaded{Subscriptions: []ledger.Subscription{sub}})

	err := env.svc.Subscription.DeleteSubscription(context.Background(), env.user, sub.ID, false)
	var cerr *ConfirmationRequiredError
	assert.ErrorAs(t, err, &cerr)
}

// -- FormService tests --

func TestCheckTransactionForm(t *testing.T) {
	env := newTestEnv(t)
	tx := ledger.Transaction{ID: ledger.NewID(), CardID: ledger.NewID(), Amount: 10, Type: ledger.TransactionTypeExpense, Description: "x", Date: today}
	env.seed(state.Loaded{Transactions: []ledger.Transaction{tx}})

	form := ledger.TransactionFormFor(tx)
	check, err := env.svc.Form.CheckTransactionForm(context.Background(), env.user, tx.ID, form)
	require.NoError(t, err)
	assert.False(t, check.Dirty)
	assert.Nil(t, check.Confirmation)

	form.Description = "y"
	check, err = env.svc.Form.CheckTransactionForm(context.Background(), env.user, tx.ID, form)
	require.NoError(t, err)
	assert.True(t, check.Dirty)
	require.NotNil(t, check.Confirmation)
	assert.Equal(t, ledger.ConfirmDiscardChanges("transaction"), *check.Confirmation)
}

func TestBlankTransactionForm_UsesDefaultCard(t *testing.T) {
	env := newTestEnv(t)
	c := ledger.Card{ID: ledger.NewID()}
	env.seed(state.Loaded{Cards: []ledger.Card{c}})

	s := settings.Defaults()
	s.DefaultCardID = c.ID.String()
	_, err := env.svc.Settings.Save(context.Background(), env.user, s)
	require.NoError(t, err)

	form, err := env.svc.Form.BlankTransactionForm(context.Background(), env.user)
	require.NoError(t, err)
	assert.Equal(t, c.ID.String(), form.CardID)
	assert.Equal(t, "2025-10-03", form.Date)
}

// -- SettingsService tests --

func TestUpdateNotification(t *testing.T) {
	env := newTestEnv(t)

	updated, err := env.svc.Settings.UpdateNotification(context.Background(), env.user,
		settings.SetFrequency(settings.LowBalance, settings.Monthly))
	require.NoError(t, err)
	assert.Equal(t, settings.Monthly, updated.Notifications.LowBalance.Frequency)

	reloaded, err := env.svc.Settings.Get(context.Background(), env.user)
	require.NoError(t, err)
	assert.Equal(t, updated, reloaded)

	_, err = env.svc.Settings.UpdateNotification(context.Background(), env.user,
		settings.SetFrequency(settings.LowBalance, "hourly"))
	var verr *ledger.ValidationError
	assert.ErrorAs(t, err, &verr)
}

// -- AdviceService tests --

func TestAdvice_SendsNewestFirst(t *testing.T) {
	env := newTestEnv(t)
	c := ledger.Card{ID: ledger.NewID(), InitialBalance: 1000}
	old := ledger.Transaction{ID: ledger.NewID(), CardID: c.ID, Amount: 100, Type: ledger.TransactionTypeExpense, Date: today.AddDate(0, -1, 0)}
	recent := ledger.Transaction{ID: ledger.NewID(), CardID: c.ID, Amount: 50, Type: ledger.TransactionTypeIncome, Date: today}
	env.seed(state.Loaded{Cards: []ledger.Card{c}, Transactions: []ledger.Transaction{old, recent}})

	text, err := env.svc.Advice.Advice(context.Background(), env.user)
	require.NoError(t, err)
	assert.Equal(t, "spend less", text)
	assert.Equal(t, int64(950), env.advisor.gotTotal)
	require.Len(t, env.advisor.gotTxs, 2)
	assert.Equal(t, recent.ID, env.advisor.gotTxs[0].ID)
}

func TestExtractReceipt_PrefillsForm(t *testing.T) {
	env := newTestEnv(t)
	env.seed(state.Loaded{})
	blank := ledger.BlankTransactionForm(uuid.Nil, today)

	scan, err := env.svc.Advice.ExtractReceipt(context.Background(), env.user, "aGVsbG8=")
	require.NoError(t, err)
	assert.Nil(t, scan.Info)
	assert.Equal(t, blank, scan.Form)

	env.advisor.receipt = &advisor.ReceiptInfo{Amount: 12990, Description: "Supermarket", Category: "food"}
	scan, err = env.svc.Advice.ExtractReceipt(context.Background(), env.user, "aGVsbG8=")
	require.NoError(t, err)
	require.NotNil(t, scan.Info)
	assert.Equal(t, "12990", scan.Form.Amount)
	assert.Equal(t, "Supermarket", scan.Form.Description)
	assert.Equal(t, "food", scan.Form.Category)
}

// -- ProfileService tests --

func TestProfile(t *testing.T) {
	env := newTestEnv(t)

	env.profiles.EXPECT().Get(mock.Anything, env.user).Return(nil, nil).Once()
	p, err := env.svc.Profile.GetProfile(context.Background(), env.user)
	require.NoError(t, err)
	assert.Nil(t, p)

	env.profiles.EXPECT().Upsert(mock.Anything, mock.MatchedBy(func(p ledger.Profile) bool {
		return p.ID == env.user && p.Username == "ana" && p.UpdatedAt.Equal(today)
	})).Return(nil)
	env.expectCommit()

	saved, err := env.svc.Profile.SaveProfile(context.Background(), env.user, ProfileUpdate{Username: " ana "})
	require.NoError(t, err)
	assert.Equal(t, "ana", saved.Username)
}

// -- SummaryService tests --

func TestSummary(t *testing.T) {
	env := newTestEnv(t)
	c := ledger.Card{ID: ledger.NewID(), Name: "A", InitialBalance: 150000}
	txs := make([]ledger.Transaction, 0, 7)
	for i := range 7 {
		txs = append(txs, ledger.Transaction{ID: ledger.NewID(), CardID: c.ID, Amount: 1000, Type: ledger.TransactionTypeExpense, Date: today.AddDate(0, 0, -i)})
	}
	env.seed(state.Loaded{Cards: []ledger.Card{c}, Transactions: txs})

	summary, err := env.svc.Summary.Summary(context.Background(), env.user)
	require.NoError(t, err)
	assert.Equal(t, int64(143000), summary.TotalBalance)
	assert.Equal(t, "$143.000", summary.FormattedTotal)
	assert.Len(t, summary.RecentTransactions, RecentTransactionLimit)
	assert.Len(t, summary.Cards, 1)
}
