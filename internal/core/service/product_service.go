package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/storefront/commerce-api/internal/core/domain"
	"github.com/storefront/commerce-api/internal/core/ports"
)

type productService struct {
	products ports.ProductRepository
	reviews  ports.ReviewRepository
	log      zerolog.Logger
}

// NewProductService returns a ProductService implementation.
func NewProductService(
	products ports.ProductRepository,
	reviews ports.ReviewRepository,
	log zerolog.Logger,
) ports.ProductService {
	return &productService{products: products, reviews: reviews, log: log}
}

func (s *productService) Create(ctx context.Context, in ports.ProductInput) (*domain.Product, error) {
	if in.Name == "" || in.PriceCents <= 0 {
		return nil, domain.ErrMissingFields
	}

	now := time.Now().UTC()
	product := &domain.Product{
		Name:        in.Name,
		Company:     in.Company,
		Description: in.Description,
		Category:    in.Category,
		PriceCents:  in.PriceCents,
		Inventory:   in.Inventory,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.products.Create(ctx, product)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("product_id", created.ID).Str("name", created.Name).Msg("product created")
	return created, nil
}

func (s *productService) List(ctx context.Context) ([]*domain.Product, error) {
	return s.products.List(ctx)
}

func (s *productService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.products.FindByID(ctx, id)
}

func (s *productService) Update(ctx context.Context, id string, in ports.ProductInput) (*domain.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Name = in.Name
	product.Company = in.Company
	product.Description = in.Description
	product.Category = in.Category
	product.PriceCents = in.PriceCents
	product.Inventory = in.Inventory
	product.UpdatedAt = time.Now().UTC()
	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete removes the product and its reviews. The reviews go first so a
// failure never leaves reviews pointing at a product that no longer exists.
func (s *productService) Delete(ctx context.Context, id string) error {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.reviews.DeleteByProduct(ctx, product.ID); err != nil {
		return err
	}
	if err := s.products.Delete(ctx, product.ID); err != nil {
		return err
	}

	s.log.Info().Str("product_id", product.ID).Msg("product deleted")
	return nil
}
