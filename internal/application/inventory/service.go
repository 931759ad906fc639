// Package inventory provides read-side inventory queries for the dashboard
// and inventory screens. Stock only changes through postings.
package inventory

import (
	"context"

	"github.com/google/uuid"
	"github.com/synergytrade/backend/internal/domain/catalog"
)

// Service provides application-level inventory queries
type Service struct {
	products catalog.ProductRepository
}

// NewService creates a new inventory Service
func NewService(products catalog.ProductRepository) *Service {
	return &Service{products: products}
}

// ListProducts returns the full catalog
func (s *Service) ListProducts(ctx context.Context) ([]catalog.Product, error) {
	return s.products.FindAll(ctx)
}

// GetProduct returns one product by ID
func (s *Service) GetProduct(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	return s.products.FindByID(ctx, id)
}

// ListLowStock returns products at or below their minimum stock level
func (s *Service) ListLowStock(ctx context.Context) ([]catalog.Product, error) {
	return s.products.FindBelowMinStock(ctx)
}
