package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/xeipuuv/gojsonschema"

	"github.com/carson-networks/wallet-server/internal/ledger"
)

const DefaultReceiptDescription = "Scanned purchase"

// MaxReceiptAmount bounds extracted totals well inside int64.
const MaxReceiptAmount = 1_000_000_000_000_000

var receiptSchema = fmt.Sprintf(`{
  "type": "object",
  "properties": {
    "amount": {"type": "number", "minimum": 0, "maximum": %d},
    "description": {"type": "string"},
    "category": {"type": "string"}
  },
  "required": ["amount"]
}`, int64(MaxReceiptAmount))

var (
	compiledReceiptSchema = mustSchema(receiptSchema)
	jsonObject            = regexp.MustCompile(`(?s)\{.*\}`)
)

func mustSchema(s string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(s))
	if err != nil {
		panic(err)
	}
	return schema
}

// ReceiptInfo is what could be read off a receipt photo.
type ReceiptInfo struct {
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// ExtractReceiptInfo reads the total, merchant and a category from a base64
// encoded JPEG. It returns nil when the model fails or answers with
// something that is not a receipt object.
func (c *Client) ExtractReceiptInfo(ctx context.Context, base64Image string) *ReceiptInfo {
	instruction := fmt.Sprintf(
		"Analyze this receipt and extract the following as JSON: total amount (integer) as \"amount\", "+
			"a short description of the merchant or purchase as \"description\", and a suggested category "+
			"as \"category\" (%s). Reply with the JSON only.",
		strings.Join(ledger.ReceiptCategories, ", "))

	text, err := c.complete(ctx, c.cfg.VisionModel, true, imageMessage(base64Image, instruction))
	if err != nil {
		log.WithError(err).Error("Failed to extract receipt info")
		return nil
	}

	info, err := parseReceipt(text)
	if err != nil {
		log.WithError(err).WithField("response", text).Warn("Unusable receipt extraction")
		return nil
	}
	return info
}

func parseReceipt(text string) (*ReceiptInfo, error) {
	raw := jsonObject.FindString(text)
	if raw == "" {
		raw = text
	}

	res, err := compiledReceiptSchema.Validate(gojsonschema.NewStringLoader(raw))
	if err != nil {
		return nil, err
	}
	if !res.Valid() {
		return nil, fmt.Errorf("receipt does not match schema: %v", res.Errors())
	}

	var out struct {
		Amount      float64 `json:"amount"`
		Description string  `json:"description"`
		Category    string  `json:"category"`
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, err
	}

	info := &ReceiptInfo{
		Amount:      int64(math.Round(out.Amount)),
		Description: strings.TrimSpace(out.Description),
		Category:    strings.TrimSpace(out.Category),
	}
	if info.Description == "" {
		info.Description = DefaultReceiptDescription
	}
	if info.Category == "" {
		info.Category = ledger.DefaultCategory
	}
	return info, nil
}
