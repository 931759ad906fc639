package catalog

import (
	"context"

	"github.com/google/uuid"
)

// ProductRepository defines the persistence contract for products
type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	FindByCode(ctx context.Context, code string) (*Product, error)
	FindAll(ctx context.Context) ([]Product, error)
	FindBelowMinStock(ctx context.Context) ([]Product, error)
	Save(ctx context.Context, product *Product) error
	Count(ctx context.Context) (int64, error)
}
