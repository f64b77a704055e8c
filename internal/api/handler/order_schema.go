package handler

import "github.com/storefront/commerce-api/internal/core/domain"

type orderItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

type createOrderRequest struct {
	Items         []orderItemRequest `json:"items" validate:"required,min=1,dive"`
	TaxCents      int64              `json:"tax_cents" validate:"min=0"`
	ShippingCents int64              `json:"shipping_cents" validate:"min=0"`
}

type payOrderRequest struct {
	PaymentIntentID string `json:"payment_intent_id" validate:"required"`
}

type orderResponse struct {
	Order *domain.Order `json:"order"`
}

type ordersResponse struct {
	Orders []*domain.Order `json:"orders"`
	Count  int             `json:"count"`
}
