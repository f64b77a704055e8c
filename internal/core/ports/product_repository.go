package ports

import (
	"context"

	"github.com/storefront/commerce-api/internal/core/domain"
)

// ProductRepository defines persistence operations for catalog products.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	Update(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id string) error
	// UpdateRating persists the derived rating fields only.
	UpdateRating(ctx context.Context, productID string, summary domain.RatingSummary) error
}
