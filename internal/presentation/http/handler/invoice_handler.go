package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kerrwood/stagebill-api/internal/application/service"
	"github.com/kerrwood/stagebill-api/internal/config"
	"github.com/kerrwood/stagebill-api/internal/domain/entity"
	"github.com/kerrwood/stagebill-api/internal/presentation/http/dto/request"
	"github.com/kerrwood/stagebill-api/internal/presentation/http/dto/response"
	"github.com/kerrwood/stagebill-api/pkg/pdf"
)

// InvoiceHandler handles invoice and receipt generation requests
type InvoiceHandler struct {
	invoiceService *service.InvoiceService
	catalogService *service.CatalogService
	renderer       pdf.Renderer
	business       *config.BusinessConfig
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(
	invoiceService *service.InvoiceService,
	catalogService *service.CatalogService,
	renderer pdf.Renderer,
	business *config.BusinessConfig,
) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
		catalogService: catalogService,
		renderer:       renderer,
		business:       business,
	}
}

// GenerateInvoice handles POST /invoices: validates the request, assembles
// the invoice document and returns the rendered PDF as an attachment.
func (h *InvoiceHandler) GenerateInvoice(c *gin.Context) {
	var req request.GenerateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	opts, err := h.buildOptions(
		req.CustomerName, req.EventDate, req.Venue, req.InvoiceNumber,
		req.PresetIDs, req.CustomItems,
		req.DiscountPercent, req.TravelCost,
		req.AdditionalCharges, req.PaymentMade,
	)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	doc, err := h.invoiceService.GenerateInvoice(opts, service.GenerateFlags{
		DepositOnly:       req.DepositOnly,
		AmountDueOverride: req.AmountDueOverride,
		ShowDeposit:       showDeposit(req.ShowDeposit),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	h.respondPDF(c, doc)
}

// GenerateReceipt handles POST /receipts. The receipt reuses the invoice
// inputs but always settles to a zero balance.
func (h *InvoiceHandler) GenerateReceipt(c *gin.Context) {
	var req request.GenerateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	opts, err := h.buildOptions(
		req.CustomerName, req.EventDate, req.Venue, req.InvoiceNumber,
		req.PresetIDs, req.CustomItems,
		req.DiscountPercent, req.TravelCost,
		req.AdditionalCharges, req.PaymentMade,
	)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	doc, err := h.invoiceService.GenerateReceipt(opts, showDeposit(req.ShowDeposit))
	if err != nil {
		response.Error(c, err)
		return
	}

	h.respondPDF(c, doc)
}

// buildOptions resolves preset ids through the catalog and merges them with
// custom items into validated invoice options. An unknown preset id fails
// the whole request before any document is assembled.
func (h *InvoiceHandler) buildOptions(
	customerName, eventDate, venue, invoiceNumber string,
	presetIDs []string,
	customItems []request.ItemRequest,
	discountPercent, travelCost float64,
	additionalCharges, paymentMade []request.ItemRequest,
) (service.InvoiceOptions, error) {
	var lineItems []entity.LineItem
	for _, presetID := range presetIDs {
		item, err := h.catalogService.GetServiceByID(presetID)
		if err != nil {
			return service.InvoiceOptions{}, err
		}
		lineItems = append(lineItems, item)
	}
	for _, item := range customItems {
		lineItems = append(lineItems, entity.LineItem{
			Description: item.Description,
			Price:       item.Price,
			Bold:        item.Bold,
		})
	}

	return service.InvoiceOptions{
		CustomerName:      customerName,
		EventDate:         eventDate,
		Venue:             venue,
		InvoiceNumber:     invoiceNumber,
		LineItems:         lineItems,
		DiscountPercent:   discountPercent,
		TravelCost:        travelCost,
		AdditionalCharges: toLineItems(additionalCharges),
		PaymentMade:       toLineItems(paymentMade),
	}, nil
}

// respondPDF renders the document and streams it back as a download.
// Renderer failures map to 500, keeping them distinguishable from the
// 4xx validation rejections.
func (h *InvoiceHandler) respondPDF(c *gin.Context, doc entity.Document) {
	pdfBytes, err := h.renderer.Render(doc, h.business)
	if err != nil {
		response.InternalServerError(c, fmt.Sprintf("Error generating %s: %v", doc.Type, err))
		return
	}

	filename := fmt.Sprintf("%s-%s.pdf", doc.Type, doc.InvoiceNumber)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

func toLineItems(items []request.ItemRequest) []entity.LineItem {
	if len(items) == 0 {
		return nil
	}
	result := make([]entity.LineItem, 0, len(items))
	for _, item := range items {
		result = append(result, entity.LineItem{
			Description: item.Description,
			Price:       item.Price,
			Bold:        item.Bold,
		})
	}
	return result
}

// showDeposit defaults the optional flag to true.
func showDeposit(flag *bool) bool {
	if flag == nil {
		return true
	}
	return *flag
}
