package service

import (
	"github.com/kerrwood/stagebill-api/internal/domain/entity"
	"github.com/kerrwood/stagebill-api/internal/domain/repository"
)

// CatalogService handles service preset lookup
type CatalogService struct {
	serviceRepo repository.ServiceRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(serviceRepo repository.ServiceRepository) *CatalogService {
	return &CatalogService{serviceRepo: serviceRepo}
}

// GetServiceByID resolves a preset id to its line item.
func (s *CatalogService) GetServiceByID(id string) (entity.LineItem, error) {
	return s.serviceRepo.GetByID(id)
}

// ListServices returns the flattened catalog in declaration order.
func (s *CatalogService) ListServices() []repository.ServicePreset {
	return s.serviceRepo.GetAllFlat()
}
