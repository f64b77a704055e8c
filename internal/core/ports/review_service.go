package ports

import (
	"context"

	"github.com/storefront/commerce-api/internal/core/domain"
)

// CreateReviewInput carries the data needed to create a review. The owner is
// always taken from the principal, never from the payload.
type CreateReviewInput struct {
	ProductID string
	Rating    int
	Title     string
	Comment   string
}

// UpdateReviewInput carries the mutable review fields.
type UpdateReviewInput struct {
	Rating  int
	Title   string
	Comment string
}

// ReviewService implements review CRUD with ownership and uniqueness rules.
type ReviewService interface {
	// Create fails with domain.ErrProductNotFound when the product does not
	// exist, then domain.ErrDuplicateReview when the principal already
	// reviewed it. That ordering is part of the contract.
	Create(ctx context.Context, principal domain.Principal, input CreateReviewInput) (*domain.Review, error)
	List(ctx context.Context) ([]*domain.Review, error)
	Get(ctx context.Context, id string) (*domain.Review, error)
	ListByProduct(ctx context.Context, productID string) ([]*domain.Review, error)
	// Update and Delete are permitted to the review owner or an admin.
	Update(ctx context.Context, principal domain.Principal, id string, input UpdateReviewInput) (*domain.Review, error)
	Delete(ctx context.Context, principal domain.Principal, id string) error
}

// RatingQueue accepts product ids whose rating aggregates need recomputing.
type RatingQueue interface {
	Enqueue(productID string)
}

// RatingService recomputes a product's rating aggregate from its reviews.
type RatingService interface {
	Recalculate(ctx context.Context, productID string) error
}
