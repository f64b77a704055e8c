package handler

import "github.com/storefront/commerce-api/internal/core/domain"

type createReviewRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Title     string `json:"title" validate:"required,max=100"`
	Comment   string `json:"comment" validate:"required"`
}

type updateReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Title   string `json:"title" validate:"required,max=100"`
	Comment string `json:"comment" validate:"required"`
}

type reviewResponse struct {
	Review *domain.Review `json:"review"`
}

type reviewsResponse struct {
	Reviews []*domain.Review `json:"reviews"`
	Count   int              `json:"count"`
}
