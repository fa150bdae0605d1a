package service

import (
	"context"
	"slices"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/wallet-server/internal/ledger"
	"github.com/carson-networks/wallet-server/internal/logging"
	"github.com/carson-networks/wallet-server/internal/operator/actions"
	"github.com/carson-networks/wallet-server/internal/state"
)

const DeletedCardName = "Deleted card"

// TransactionView is a transaction with the name of its card.
type TransactionView struct {
	ledger.Transaction
	CardName    string
	CardDeleted bool
}

// TransactionService handles transaction business logic.
type TransactionService struct {
	session  *SessionService
	operator IOperator
}

func NewTransactionService(session *SessionService, operator IOperator) *TransactionService {
	return &TransactionService{session: session, operator: operator}
}

// ListTransactions returns transactions newest first. A non-nil cardID
// keeps only that card's transactions.
func (s *TransactionService) ListTransactions(ctx context.Context, userID, cardID uuid.UUID) ([]TransactionView, error) {
	snap, err := s.session.Snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := transactionViews(snap, cardID)
	logging.GetLogData(ctx).AddData("transactionCount", len(views))
	return views, nil
}

func transactionViews(snap state.Snapshot, cardID uuid.UUID) []TransactionView {
	names := make(map[uuid.UUID]string, len(snap.Cards))
	for _, c := range snap.Cards {
		names[c.ID] = c.Name
	}

	views := make([]TransactionView, 0, len(snap.Transactions))
	for _, tx := range snap.Transactions {
		if cardID != uuid.Nil && tx.CardID != cardID {
			continue
		}
		name, ok := names[tx.CardID]
		if !ok {
			name = DeletedCardName
		}
		views = append(views, TransactionView{Transaction: tx, CardName: name, CardDeleted: !ok})
	}

	slices.SortStableFunc(views, func(a, b TransactionView) int {
		return b.Date.Compare(a.Date)
	})
	return views
}

// SaveTransaction creates a transaction when id is uuid.Nil, otherwise
// replaces the existing one.
func (s *TransactionService) SaveTransaction(ctx context.Context, userID, id uuid.UUID, form ledger.TransactionForm) (ledger.Transaction, error) {
	if err := requireUser(userID); err != nil {
		return ledger.Transaction{}, err
	}

	snap, err := s.session.Snapshot(ctx, userID)
	if err != nil {
		return ledger.Transaction{}, err
	}

	var card *ledger.Card
	if cardID, err := uuid.FromString(form.CardID); err == nil {
		card = snap.CardByID(cardID)
	}
	if form.CardID != "" && card == nil {
		return ledger.Transaction{}, &ledger.ValidationError{Field: "cardId", Message: "unknown card"}
	}

	tx, err := ledger.ParseTransactionForm(form, card)
	if err != nil {
		return ledger.Transaction{}, err
	}

	if id == uuid.Nil {
		tx.ID = ledger.NewID()
	} else {
		if snap.TransactionByID(id) == nil {
			return ledger.Transaction{}, ErrNotFound
		}
		tx.ID = id
	}

	if err := s.operator.Process(ctx, &actions.SaveTransaction{UserID: userID, Transaction: tx}); err != nil {
		return ledger.Transaction{}, persistenceError(ctx, userID, "failed to save transaction", err)
	}
	return tx, nil
}

func (s *TransactionService) DeleteTransaction(ctx context.Context, userID, id uuid.UUID, confirmed bool) error {
	if err := requireUser(userID); err != nil {
		return err
	}
	snap, err := s.session.Snapshot(ctx, userID)
	if err != nil {
		return err
	}
	if snap.TransactionByID(id) == nil {
		return ErrNotFound
	}
	if !confirmed {
		return &ConfirmationRequiredError{Confirmation: ledger.ConfirmDeleteTransaction}
	}

	if err := s.operator.Process(ctx, &actions.DeleteTransaction{UserID: userID, ID: id}); err != nil {
		return persistenceError(ctx, userID, "failed to delete transaction", err)
	}
	return nil
}
