package handler

import "github.com/storefront/commerce-api/internal/core/domain"

type productRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Company     string `json:"company"`
	Description string `json:"description" validate:"max=1000"`
	Category    string `json:"category"`
	PriceCents  int64  `json:"price_cents" validate:"required,gt=0"`
	Inventory   int    `json:"inventory" validate:"min=0"`
}

type productResponse struct {
	Product *domain.Product `json:"product"`
}

type productsResponse struct {
	Products []*domain.Product `json:"products"`
	Count    int               `json:"count"`
}
