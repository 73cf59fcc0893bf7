package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/kerrwood/stagebill-api/internal/application/service"
	"github.com/kerrwood/stagebill-api/internal/config"
	"github.com/kerrwood/stagebill-api/internal/infrastructure/repository"
	"github.com/kerrwood/stagebill-api/internal/presentation/http/handler"
	"github.com/kerrwood/stagebill-api/internal/presentation/http/routes"
	"github.com/kerrwood/stagebill-api/pkg/pdf"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize repositories
	serviceRepo := repository.NewServiceRepository()

	// Initialize services
	invoiceService := service.NewInvoiceService(cfg.Business.DepositPercentage)
	catalogService := service.NewCatalogService(serviceRepo)

	// Initialize PDF renderer
	renderer := pdf.NewRenderer()

	// Initialize handlers
	handlers := &routes.Handlers{
		Invoice: handler.NewInvoiceHandler(invoiceService, catalogService, renderer, &cfg.Business),
		Catalog: handler.NewCatalogHandler(catalogService),
	}

	// Setup routes
	router := routes.Setup(handlers, cfg)

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
