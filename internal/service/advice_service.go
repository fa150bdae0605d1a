package service

import (
	"context"
	"slices"
	"strconv"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/wallet-server/internal/advisor"
	"github.com/carson-networks/wallet-server/internal/ledger"
	"github.com/carson-networks/wallet-server/internal/logging"
	"github.com/carson-networks/wallet-server/internal/money"
)

// IAdvisor is the AI collaborator. Every method degrades to a fallback
// instead of failing.
type IAdvisor interface {
	FinancialAdvice(ctx context.Context, total int64, cards []ledger.CardBalance, txs []ledger.Transaction, currency money.Currency) string
	ExtractReceiptInfo(ctx context.Context, base64Image string) *advisor.ReceiptInfo
	AnalyzeImage(ctx context.Context, base64Image string) string
}

// ReceiptScan is what was read off a receipt, plus a new transaction form
// prefilled with it.
type ReceiptScan struct {
	Info *advisor.ReceiptInfo
	Form ledger.TransactionForm
}

type AdviceService struct {
	session  *SessionService
	settings *SettingsService
	forms    *FormService
	advisor  IAdvisor
}

func NewAdviceService(session *SessionService, settings *SettingsService, forms *FormService, advisor IAdvisor) *AdviceService {
	return &AdviceService{session: session, settings: settings, forms: forms, advisor: advisor}
}

// Advice asks for a summary of the user's current finances.
func (s *AdviceService) Advice(ctx context.Context, userID uuid.UUID) (string, error) {
	snap, err := s.session.Snapshot(ctx, userID)
	if err != nil {
		return "", err
	}
	current, err := s.settings.Get(ctx, userID)
	if err != nil {
		return "", err
	}

	txs := slices.Clone(snap.Transactions)
	slices.SortStableFunc(txs, func(a, b ledger.Transaction) int {
		return b.Date.Compare(a.Date)
	})

	endTimer := logging.GetLogData(ctx).AddTiming("adviceMs")
	defer endTimer()

	return s.advisor.FinancialAdvice(ctx,
		ledger.TotalBalance(snap.Cards, snap.Transactions),
		ledger.WithBalances(snap.Cards, snap.Transactions),
		txs,
		current.Currency,
	), nil
}

// ExtractReceipt reads a receipt photo into a new transaction form. When
// nothing usable comes back the scan has a nil Info and a blank form.
func (s *AdviceService) ExtractReceipt(ctx context.Context, userID uuid.UUID, base64Image string) (ReceiptScan, error) {
	form, err := s.forms.BlankTransactionForm(ctx, userID)
	if err != nil {
		return ReceiptScan{}, err
	}

	endTimer := logging.GetLogData(ctx).AddTiming("receiptMs")
	info := s.advisor.ExtractReceiptInfo(ctx, base64Image)
	endTimer()

	if info == nil {
		logging.GetLogData(ctx).AddData("receiptRead", false)
		return ReceiptScan{Form: form}, nil
	}

	form.Amount = strconv.FormatInt(info.Amount, 10)
	form.Description = info.Description
	form.Category = info.Category
	form.Type = ledger.TransactionTypeExpense
	return ReceiptScan{Info: info, Form: form}, nil
}

func (s *AdviceService) AnalyzeImage(ctx context.Context, base64Image string) string {
	endTimer := logging.GetLogData(ctx).AddTiming("imageMs")
	defer endTimer()
	return s.advisor.AnalyzeImage(ctx, base64Image)
}
