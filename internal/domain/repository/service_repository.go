package repository

import (
	"github.com/kerrwood/stagebill-api/internal/domain/entity"
)

// ServicePreset is a flattened catalog entry for presentation.
type ServicePreset struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
}

// ServiceRepository defines the service catalog lookup interface.
type ServiceRepository interface {
	// GetByID returns the line item for a preset service id, or a
	// not-found error naming the id.
	GetByID(id string) (entity.LineItem, error)
	// GetAllFlat returns every preset with its category, in catalog
	// declaration order.
	GetAllFlat() []ServicePreset
}
