package advice

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/wallet-server/internal/handlers/v1/common"
	"github.com/carson-networks/wallet-server/internal/service"
)

// maxImageBytes bounds the base64 payload of image endpoints.
const maxImageBytes = 10 << 20

type AdviceInput struct {
	common.Identity
}

type TextOutput struct {
	Body struct {
		Text string `json:"text" doc:"Markdown answer, or a fallback message when the assistant failed"`
	}
}

type ImageBody struct {
	Image string `json:"image" required:"true" minLength:"1" doc:"Base64 encoded JPEG"`
}

type ImageInput struct {
	common.Identity
	Body ImageBody
}

// Receipt is what could be read off the photo.
type Receipt struct {
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

type ReceiptOutput struct {
	Body struct {
		Receipt *Receipt               `json:"receipt" doc:"Null when nothing could be read"`
		Form    common.TransactionForm `json:"form" doc:"New transaction form, prefilled when the receipt was read"`
	}
}

type adviceService interface {
	Advice(ctx context.Context, userID uuid.UUID) (string, error)
	ExtractReceipt(ctx context.Context, userID uuid.UUID, base64Image string) (service.ReceiptScan, error)
	AnalyzeImage(ctx context.Context, base64Image string) string
}

// Handler handles the AI assistant endpoints.
type Handler struct {
	AdviceService adviceService
}

func NewHandler(svc adviceService) *Handler {
	return &Handler{AdviceService: svc}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "financial-advice",
		Method:      http.MethodPost,
		Path:        "/v1/advice",
		Summary:     "Financial advice",
		Description: "Asks the assistant for a short summary of the user's finances and one saving tip.",
		Tags:        []string{"Assistant"},
	}, h.advice)

	huma.Register(api, huma.Operation{
		OperationID:  "extract-receipt",
		Method:       http.MethodPost,
		Path:         "/v1/receipt/extract",
		Summary:      "Scan receipt",
		Description:  "Reads the total, merchant and category from a receipt photo into a new transaction form.",
		Tags:         []string{"Assistant"},
		MaxBodyBytes: maxImageBytes,
	}, h.extractReceipt)

	huma.Register(api, huma.Operation{
		OperationID:  "analyze-image",
		Method:       http.MethodPost,
		Path:         "/v1/image/analyze",
		Summary:      "Describe image",
		Tags:         []string{"Assistant"},
		MaxBodyBytes: maxImageBytes,
	}, h.analyzeImage)
}

func (h *Handler) advice(ctx context.Context, input *AdviceInput) (*TextOutput, error) {
	userID, err := input.User()
	if err != nil {
		return nil, err
	}
	text, err := h.AdviceService.Advice(ctx, userID)
	if err != nil {
		return nil, common.ServiceError(err, "failed to build advice")
	}
	out := &TextOutput{}
	out.Body.Text = text
	return out, nil
}

func (h *Handler) extractReceipt(ctx context.Context, input *ImageInput) (*ReceiptOutput, error) {
	userID, err := input.User()
	if err != nil {
		return nil, err
	}
	scan, err := h.AdviceService.ExtractReceipt(ctx, userID, input.Body.Image)
	if err != nil {
		return nil, common.ServiceError(err, "failed to scan receipt")
	}

	out := &ReceiptOutput{}
	out.Body.Form = common.NewTransactionForm(scan.Form)
	if scan.Info != nil {
		out.Body.Receipt = &Receipt{
			Amount:      scan.Info.Amount,
			Description: scan.Info.Description,
			Category:    scan.Info.Category,
		}
	}
	return out, nil
}

func (h *Handler) analyzeImage(ctx context.Context, input *ImageInput) (*TextOutput, error) {
	out := &TextOutput{}
	out.Body.Text = h.AdviceService.AnalyzeImage(ctx, input.Body.Image)
	return out, nil
}
