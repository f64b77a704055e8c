package ports

import (
	"context"

	"github.com/storefront/commerce-api/internal/core/domain"
)

// OrderItemInput is a requested catalog line: product plus quantity.
type OrderItemInput struct {
	ProductID string
	Quantity  int
}

// CreateOrderInput carries the data needed to place an order.
type CreateOrderInput struct {
	Items         []OrderItemInput
	TaxCents      int64
	ShippingCents int64
}

// OrderService implements order placement and retrieval.
type OrderService interface {
	// Create resolves each item against the catalog at current prices and
	// stores the order pending with a payment client secret.
	Create(ctx context.Context, principal domain.Principal, input CreateOrderInput) (*domain.Order, error)
	List(ctx context.Context) ([]*domain.Order, error)
	ListMine(ctx context.Context, principal domain.Principal) ([]*domain.Order, error)
	// Get is permitted to the order owner or an admin.
	Get(ctx context.Context, principal domain.Principal, id string) (*domain.Order, error)
	// MarkPaid records the payment intent and moves the order to paid.
	MarkPaid(ctx context.Context, principal domain.Principal, id, paymentIntentID string) (*domain.Order, error)
}
