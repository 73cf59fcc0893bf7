package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/kerrwood/stagebill-api/internal/application/service"
	"github.com/kerrwood/stagebill-api/internal/presentation/http/dto/response"
)

// CatalogHandler handles service catalog HTTP requests
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// List handles GET /services, returning every preset in catalog order.
func (h *CatalogHandler) List(c *gin.Context) {
	services := h.catalogService.ListServices()
	response.OK(c, "Services retrieved successfully", services)
}
