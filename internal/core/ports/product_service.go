package ports

import (
	"context"

	"github.com/storefront/commerce-api/internal/core/domain"
)

// ProductInput carries the writable product fields.
type ProductInput struct {
	Name        string
	Company     string
	Description string
	Category    string
	PriceCents  int64
	Inventory   int
}

// ProductService implements catalog management. Mutations are admin-only,
// enforced at the route level.
type ProductService interface {
	Create(ctx context.Context, input ProductInput) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Update(ctx context.Context, id string, input ProductInput) (*domain.Product, error)
	// Delete removes the product and all of its reviews.
	Delete(ctx context.Context, id string) error
}
