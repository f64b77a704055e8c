package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/storefront/commerce-api/internal/core/ports"
)

type ratingService struct {
	reviews  ports.ReviewRepository
	products ports.ProductRepository
	log      zerolog.Logger
}

// NewRatingService returns a RatingService implementation.
func NewRatingService(
	reviews ports.ReviewRepository,
	products ports.ProductRepository,
	log zerolog.Logger,
) ports.RatingService {
	return &ratingService{reviews: reviews, products: products, log: log}
}

// Recalculate recomputes the product's rating aggregate from the reviews
// collection and persists it. Events for the same product are processed in
// order by the dispatcher, so the last write always reflects the newest state.
func (s *ratingService) Recalculate(ctx context.Context, productID string) error {
	summary, err := s.reviews.AggregateRating(ctx, productID)
	if err != nil {
		return fmt.Errorf("recalculate rating: %w", err)
	}

	if err := s.products.UpdateRating(ctx, productID, summary); err != nil {
		return fmt.Errorf("recalculate rating: persist: %w", err)
	}

	s.log.Debug().
		Str("product_id", productID).
		Float64("average", summary.Average).
		Int("count", summary.Count).
		Msg("rating recalculated")
	return nil
}
