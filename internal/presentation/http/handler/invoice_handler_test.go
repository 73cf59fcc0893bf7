package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerrwood/stagebill-api/internal/application/service"
	"github.com/kerrwood/stagebill-api/internal/config"
	"github.com/kerrwood/stagebill-api/internal/infrastructure/repository"
	"github.com/kerrwood/stagebill-api/internal/presentation/http/handler"
	"github.com/kerrwood/stagebill-api/internal/presentation/http/routes"
	"github.com/kerrwood/stagebill-api/pkg/pdf"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		App: config.AppConfig{Name: "stagebill-api-test"},
		Business: config.BusinessConfig{
			BusinessName:      "Every Angle",
			DepositPercentage: 20,
		},
		RateLimit: config.RateLimitConfig{Requests: 1000, Duration: 1},
	}

	serviceRepo := repository.NewServiceRepository()
	invoiceService := service.NewInvoiceService(cfg.Business.DepositPercentage)
	catalogService := service.NewCatalogService(serviceRepo)

	handlers := &routes.Handlers{
		Invoice: handler.NewInvoiceHandler(invoiceService, catalogService, pdf.NewRenderer(), &cfg.Business),
		Catalog: handler.NewCatalogHandler(catalogService),
	}
	return routes.Setup(handlers, cfg)
}

func postJSON(t *testing.T, router *gin.Engine, path string, body map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func validInvoiceBody() map[string]any {
	return map[string]any{
		"customer_name":  "Jane Smith",
		"event_date":     "14/06/2026",
		"venue":          "Carlowrie Castle",
		"invoice_number": "INV-042",
		"preset_ids":     []string{"band_5pc"},
		"custom_items": []map[string]any{
			{"description": "Custom lighting", "price": 150.0},
		},
		"discount_percent": 10.0,
		"travel_cost":      20.0,
	}
}

func TestGenerateInvoicePDF(t *testing.T) {
	router := testRouter()

	w := postJSON(t, router, "/api/v1/invoices", validInvoiceBody())

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=invoice-INV-042.pdf", w.Header().Get("Content-Disposition"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF"))
}

func TestGenerateReceiptPDF(t *testing.T) {
	router := testRouter()

	body := validInvoiceBody()
	body["payment_made"] = []map[string]any{
		{"description": "Paid in full", "price": 1535.0},
	}
	w := postJSON(t, router, "/api/v1/receipts", body)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "attachment; filename=receipt-INV-042.pdf", w.Header().Get("Content-Disposition"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF"))
}

func TestGenerateInvoiceMissingField(t *testing.T) {
	router := testRouter()

	body := validInvoiceBody()
	delete(body, "customer_name")
	w := postJSON(t, router, "/api/v1/invoices", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "CustomerName")
}

func TestGenerateInvoiceUnknownPreset(t *testing.T) {
	router := testRouter()

	body := validInvoiceBody()
	body["preset_ids"] = []string{"nonexistent"}
	w := postJSON(t, router, "/api/v1/invoices", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "nonexistent")
}

func TestGenerateInvoiceEmptyItems(t *testing.T) {
	router := testRouter()

	body := validInvoiceBody()
	delete(body, "preset_ids")
	delete(body, "custom_items")
	w := postJSON(t, router, "/api/v1/invoices", body)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "line_items")
}

func TestGenerateInvoiceNonNumericPrice(t *testing.T) {
	router := testRouter()

	body := validInvoiceBody()
	body["custom_items"] = []map[string]any{
		{"description": "Custom lighting", "price": "lots"},
	}
	w := postJSON(t, router, "/api/v1/invoices", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListServices(t *testing.T) {
	router := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/services", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Success bool `json:"success"`
		Data    []struct {
			ID       string  `json:"id"`
			Name     string  `json:"name"`
			Category string  `json:"category"`
			Price    float64 `json:"price"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	require.Len(t, envelope.Data, 28)
	assert.Equal(t, "singing_waiter_duet", envelope.Data[0].ID)
}

func TestHealth(t *testing.T) {
	router := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}
