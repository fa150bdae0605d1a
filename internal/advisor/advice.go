package advisor

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/carson-networks/wallet-server/internal/ledger"
	"github.com/carson-networks/wallet-server/internal/money"
)

const (
	RecentTransactionLimit = 20

	AdviceUnavailable = "Could not generate an analysis right now."
	AdviceFailed      = "Sorry, there was an error reaching the financial assistant."
	ImageUnavailable  = "Could not generate a description for this image."
	ImageFailed       = "An error occurred while analyzing the image."
)

const advicePrompt = `Act as an expert financial advisor.

Current data:
- Total balance: %s
- Cards: %s
- Latest movements:
%s

Give me a very short summary (at most 3 paragraphs) of my current financial situation.
Identify spending patterns and give me 1 actionable tip to save money.
Answer in simple Markdown and use emojis to keep it friendly.`

const imagePrompt = "Analyze this image in detail. Describe what you see, identify objects, relevant text and any useful context. Answer clearly and in an organized way."

// FinancialAdvice asks for a short summary of the user's finances. txs are
// expected newest first; only the most recent ones are sent.
func (c *Client) FinancialAdvice(ctx context.Context, total int64, cards []ledger.CardBalance, txs []ledger.Transaction, currency money.Currency) string {
	prompt := advicePromptFor(total, cards, txs, currency)

	text, err := c.complete(ctx, c.cfg.Model, false, chatMessage{Role: "user", Content: prompt})
	if err != nil {
		log.WithError(err).Error("Failed to get financial advice")
		return AdviceFailed
	}
	if text == "" {
		return AdviceUnavailable
	}
	return text
}

func advicePromptFor(total int64, cards []ledger.CardBalance, txs []ledger.Transaction, currency money.Currency) string {
	names := make(map[string]string, len(cards))
	cardSummary := make([]string, 0, len(cards))
	for _, c := range cards {
		names[c.ID.String()] = c.Name
		cardSummary = append(cardSummary, fmt.Sprintf("%s (%s): %s", c.Name, c.Type, money.Format(c.CurrentBalance, currency)))
	}

	if len(txs) > RecentTransactionLimit {
		txs = txs[:RecentTransactionLimit]
	}
	lines := make([]string, 0, len(txs))
	for _, t := range txs {
		cardName, ok := names[t.CardID.String()]
		if !ok {
			cardName = "unknown card"
		}
		lines = append(lines, fmt.Sprintf("- %s: %s (%s) %s on %s",
			t.Date.UTC().Format(ledger.DateLayout), t.Description, t.Type, money.Format(t.Amount, currency), cardName))
	}

	return fmt.Sprintf(advicePrompt, money.Format(total, currency), strings.Join(cardSummary, ", "), strings.Join(lines, "\n"))
}

// AnalyzeImage describes a base64 encoded JPEG in free text.
func (c *Client) AnalyzeImage(ctx context.Context, base64Image string) string {
	text, err := c.complete(ctx, c.cfg.VisionModel, false, imageMessage(base64Image, imagePrompt))
	if err != nil {
		log.WithError(err).Error("Failed to analyze image")
		return ImageFailed
	}
	if text == "" {
		return ImageUnavailable
	}
	return text
}
