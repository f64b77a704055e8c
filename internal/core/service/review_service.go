package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/storefront/commerce-api/internal/api/metrics"
	"github.com/storefront/commerce-api/internal/core/domain"
	"github.com/storefront/commerce-api/internal/core/ports"
)

type reviewService struct {
	reviews  ports.ReviewRepository
	products ports.ProductRepository
	ratings  ports.RatingQueue
	log      zerolog.Logger
}

// NewReviewService returns a ReviewService implementation.
func NewReviewService(
	reviews ports.ReviewRepository,
	products ports.ProductRepository,
	ratings ports.RatingQueue,
	log zerolog.Logger,
) ports.ReviewService {
	return &reviewService{reviews: reviews, products: products, ratings: ratings, log: log}
}

// Create enforces the contractual failure ordering: product existence first,
// then uniqueness, then the insert. The uniqueness pre-check is the friendly
// fast path; the store's unique index is the source of truth under races.
func (s *reviewService) Create(ctx context.Context, principal domain.Principal, in ports.CreateReviewInput) (*domain.Review, error) {
	if _, err := s.products.FindByID(ctx, in.ProductID); err != nil {
		return nil, err
	}

	_, err := s.reviews.FindByProductAndUser(ctx, in.ProductID, principal.ID)
	if err == nil {
		metrics.DuplicateReviewsTotal.Inc()
		return nil, domain.ErrDuplicateReview
	}
	if !errors.Is(err, domain.ErrReviewNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	review := &domain.Review{
		ProductID: in.ProductID,
		UserID:    principal.ID,
		UserName:  principal.Name,
		Rating:    in.Rating,
		Title:     in.Title,
		Comment:   in.Comment,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.reviews.Create(ctx, review)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateReview) {
			// Lost a race against a concurrent create; same outcome as the
			// pre-check.
			metrics.DuplicateReviewsTotal.Inc()
		}
		return nil, err
	}

	metrics.ReviewsCreatedTotal.Inc()
	s.ratings.Enqueue(created.ProductID)
	s.log.Info().Str("review_id", created.ID).Str("product_id", created.ProductID).Msg("review created")
	return created, nil
}

func (s *reviewService) List(ctx context.Context) ([]*domain.Review, error) {
	return s.reviews.List(ctx)
}

func (s *reviewService) Get(ctx context.Context, id string) (*domain.Review, error) {
	return s.reviews.FindByID(ctx, id)
}

func (s *reviewService) ListByProduct(ctx context.Context, productID string) ([]*domain.Review, error) {
	return s.reviews.ListByProduct(ctx, productID)
}

func (s *reviewService) Update(ctx context.Context, principal domain.Principal, id string, in ports.UpdateReviewInput) (*domain.Review, error) {
	review, err := s.reviews.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := principal.CheckOwnership(review.UserID); err != nil {
		return nil, err
	}

	review.Rating = in.Rating
	review.Title = in.Title
	review.Comment = in.Comment
	review.UpdatedAt = time.Now().UTC()
	if err := s.reviews.Update(ctx, review); err != nil {
		return nil, err
	}

	s.ratings.Enqueue(review.ProductID)
	return review, nil
}

func (s *reviewService) Delete(ctx context.Context, principal domain.Principal, id string) error {
	review, err := s.reviews.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := principal.CheckOwnership(review.UserID); err != nil {
		return err
	}

	if err := s.reviews.Delete(ctx, review.ID); err != nil {
		return err
	}

	s.ratings.Enqueue(review.ProductID)
	s.log.Info().Str("review_id", review.ID).Msg("review deleted")
	return nil
}
