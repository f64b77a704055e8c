package ports

import (
	"context"

	"github.com/storefront/commerce-api/internal/core/domain"
)

// ReviewRepository defines persistence operations for reviews.
//
// Create must surface domain.ErrDuplicateReview when the store's unique
// (product_id, user_id) index rejects the insert, so a race between two
// concurrent creates resolves to the same error as the application pre-check.
type ReviewRepository interface {
	Create(ctx context.Context, r *domain.Review) (*domain.Review, error)
	FindByID(ctx context.Context, id string) (*domain.Review, error)
	FindByProductAndUser(ctx context.Context, productID, userID string) (*domain.Review, error)
	List(ctx context.Context) ([]*domain.Review, error)
	ListByProduct(ctx context.Context, productID string) ([]*domain.Review, error)
	Update(ctx context.Context, r *domain.Review) error
	Delete(ctx context.Context, id string) error
	DeleteByProduct(ctx context.Context, productID string) error
	// AggregateRating recomputes the average rating and count for a product.
	AggregateRating(ctx context.Context, productID string) (domain.RatingSummary, error)
}
