package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/storefront/commerce-api/internal/api/metrics"
	"github.com/storefront/commerce-api/internal/core/domain"
	"github.com/storefront/commerce-api/internal/core/ports"
)

type orderService struct {
	orders   ports.OrderRepository
	products ports.ProductRepository
	log      zerolog.Logger
}

// NewOrderService returns an OrderService implementation.
func NewOrderService(
	orders ports.OrderRepository,
	products ports.ProductRepository,
	log zerolog.Logger,
) ports.OrderService {
	return &orderService{orders: orders, products: products, log: log}
}

// Create resolves every requested item against the catalog at current prices
// and stores the order pending payment. Prices come from the loaded product
// records, never from the client payload.
func (s *orderService) Create(ctx context.Context, principal domain.Principal, in ports.CreateOrderInput) (*domain.Order, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrMissingFields
	}

	items := make([]domain.OrderItem, 0, len(in.Items))
	var subtotal int64
	for _, item := range in.Items {
		if item.Quantity <= 0 {
			return nil, domain.ErrMissingFields
		}
		product, err := s.products.FindByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		items = append(items, domain.OrderItem{
			ProductID:  product.ID,
			Name:       product.Name,
			PriceCents: product.PriceCents,
			Quantity:   item.Quantity,
		})
		subtotal += product.PriceCents * int64(item.Quantity)
	}

	now := time.Now().UTC()
	order := &domain.Order{
		UserID:        principal.ID,
		Items:         items,
		SubtotalCents: subtotal,
		TaxCents:      in.TaxCents,
		ShippingCents: in.ShippingCents,
		TotalCents:    subtotal + in.TaxCents + in.ShippingCents,
		Status:        domain.OrderPending,
		ClientSecret:  generateClientSecret(),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.orders.Create(ctx, order)
	if err != nil {
		return nil, err
	}

	metrics.OrdersCreatedTotal.Inc()
	s.log.Info().Str("order_id", created.ID).Str("user_id", principal.ID).Int64("total_cents", created.TotalCents).Msg("order created")
	return created, nil
}

func (s *orderService) List(ctx context.Context) ([]*domain.Order, error) {
	return s.orders.List(ctx)
}

func (s *orderService) ListMine(ctx context.Context, principal domain.Principal) ([]*domain.Order, error) {
	return s.orders.ListByUser(ctx, principal.ID)
}

func (s *orderService) Get(ctx context.Context, principal domain.Principal, id string) (*domain.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := principal.CheckOwnership(order.UserID); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) MarkPaid(ctx context.Context, principal domain.Principal, id, paymentIntentID string) (*domain.Order, error) {
	if paymentIntentID == "" {
		return nil, domain.ErrMissingFields
	}

	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := principal.CheckOwnership(order.UserID); err != nil {
		return nil, err
	}

	order.PaymentIntentID = paymentIntentID
	order.Status = domain.OrderPaid
	order.UpdatedAt = time.Now().UTC()
	if err := s.orders.Update(ctx, order); err != nil {
		return nil, err
	}

	s.log.Info().Str("order_id", order.ID).Msg("order marked paid")
	return order, nil
}

// generateClientSecret produces the placeholder payment secret in the format
// pi_XXXXXXXXXXXXXXXX.
func generateClientSecret() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("pi_%016X", time.Now().UnixNano())
	}
	return fmt.Sprintf("pi_%016X", b)
}
