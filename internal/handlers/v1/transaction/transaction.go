package transaction

import (
	"github.com/carson-networks/wallet-server/internal/handlers/v1/common"
	"github.com/carson-networks/wallet-server/internal/ledger"
	"github.com/carson-networks/wallet-server/internal/service"
)

type Installments struct {
	Current int `json:"current"`
	Total   int `json:"total"`
}

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID               string        `json:"id" doc:"Transaction UUID"`
	CardID           string        `json:"cardId" doc:"Card UUID"`
	CardName         string        `json:"cardName,omitempty" doc:"Name of the card, or Deleted card"`
	CardDeleted      bool          `json:"cardDeleted,omitempty"`
	Amount           int64         `json:"amount" doc:"Non-negative magnitude, the type carries the sign"`
	Type             string        `json:"type" enum:"expense,income"`
	Description      string        `json:"description"`
	Date             string        `json:"date" doc:"YYYY-MM-DD"`
	Category         string        `json:"category"`
	IsMonthlyPayment bool          `json:"isMonthlyPayment"`
	Installments     *Installments `json:"installments,omitempty"`
}

func NewTransaction(tx ledger.Transaction) Transaction {
	t := Transaction{
		ID:               tx.ID.String(),
		CardID:           tx.CardID.String(),
		Amount:           tx.Amount,
		Type:             string(tx.Type),
		Description:      tx.Description,
		Date:             common.FormatDate(tx.Date),
		Category:         tx.Category,
		IsMonthlyPayment: tx.IsMonthlyPayment,
	}
	if tx.Installments != nil {
		t.Installments = &Installments{Current: tx.Installments.Current, Total: tx.Installments.Total}
	}
	return t
}

func NewTransactionView(v service.TransactionView) Transaction {
	t := NewTransaction(v.Transaction)
	t.CardName = v.CardName
	t.CardDeleted = v.CardDeleted
	return t
}
