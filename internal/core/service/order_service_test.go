package service

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/storefront/commerce-api/internal/core/domain"
	"github.com/storefront/commerce-api/internal/core/ports"
)

func newOrderFixture() (*stubOrderRepo, *stubProductRepo, ports.OrderService) {
	orders := newStubOrderRepo()
	products := newStubProductRepo()
	svc := NewOrderService(orders, products, zerolog.Nop())
	return orders, products, svc
}

func TestOrderService_Create_PricesFromCatalog(t *testing.T) {
	_, products, svc := newOrderFixture()
	keyboard, _ := products.Create(context.Background(), &domain.Product{Name: "keyboard", PriceCents: 4999})
	mouse, _ := products.Create(context.Background(), &domain.Product{Name: "mouse", PriceCents: 1500})

	order, err := svc.Create(context.Background(), buyer, ports.CreateOrderInput{
		Items: []ports.OrderItemInput{
			{ProductID: keyboard.ID, Quantity: 2},
			{ProductID: mouse.ID, Quantity: 1},
		},
		TaxCents:      500,
		ShippingCents: 300,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if order.UserID != buyer.ID {
		t.Fatalf("order owner must come from the principal, got %s", order.UserID)
	}
	if order.SubtotalCents != 2*4999+1500 {
		t.Fatalf("unexpected subtotal: %d", order.SubtotalCents)
	}
	if order.TotalCents != order.SubtotalCents+500+300 {
		t.Fatalf("unexpected total: %d", order.TotalCents)
	}
	if order.Status != domain.OrderPending {
		t.Fatalf("expected pending status, got %s", order.Status)
	}
	if !strings.HasPrefix(order.ClientSecret, "pi_") {
		t.Fatalf("unexpected client secret: %s", order.ClientSecret)
	}
}

func TestOrderService_Create_Validation(t *testing.T) {
	orders, products, svc := newOrderFixture()
	keyboard, _ := products.Create(context.Background(), &domain.Product{Name: "keyboard", PriceCents: 4999})

	if _, err := svc.Create(context.Background(), buyer, ports.CreateOrderInput{}); err != domain.ErrMissingFields {
		t.Fatalf("expected ErrMissingFields for empty items, got %v", err)
	}
	if _, err := svc.Create(context.Background(), buyer, ports.CreateOrderInput{
		Items: []ports.OrderItemInput{{ProductID: keyboard.ID, Quantity: 0}},
	}); err != domain.ErrMissingFields {
		t.Fatalf("expected ErrMissingFields for zero quantity, got %v", err)
	}
	if _, err := svc.Create(context.Background(), buyer, ports.CreateOrderInput{
		Items: []ports.OrderItemInput{{ProductID: "p404", Quantity: 1}},
	}); err != domain.ErrProductNotFound {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
	if len(orders.orders) != 0 {
		t.Fatalf("no order should be stored on failure")
	}
}

func TestOrderService_Get_OwnershipGuard(t *testing.T) {
	_, products, svc := newOrderFixture()
	keyboard, _ := products.Create(context.Background(), &domain.Product{Name: "keyboard", PriceCents: 4999})

	order, _ := svc.Create(context.Background(), buyer, ports.CreateOrderInput{
		Items: []ports.OrderItemInput{{ProductID: keyboard.ID, Quantity: 1}},
	})

	stranger := domain.Principal{ID: "u2", Role: domain.RoleCustomer}
	if _, err := svc.Get(context.Background(), stranger, order.ID); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := svc.Get(context.Background(), buyer, order.ID); err != nil {
		t.Fatalf("owner read failed: %v", err)
	}
	admin := domain.Principal{ID: "u99", Role: domain.RoleAdmin}
	if _, err := svc.Get(context.Background(), admin, order.ID); err != nil {
		t.Fatalf("admin read failed: %v", err)
	}
}

func TestOrderService_ListMine_FiltersByOwner(t *testing.T) {
	_, products, svc := newOrderFixture()
	keyboard, _ := products.Create(context.Background(), &domain.Product{Name: "keyboard", PriceCents: 4999})

	items := []ports.OrderItemInput{{ProductID: keyboard.ID, Quantity: 1}}
	_, _ = svc.Create(context.Background(), buyer, ports.CreateOrderInput{Items: items})
	u2 := domain.Principal{ID: "u2", Role: domain.RoleCustomer}
	_, _ = svc.Create(context.Background(), u2, ports.CreateOrderInput{Items: items})

	mine, err := svc.ListMine(context.Background(), buyer)
	if err != nil {
		t.Fatalf("ListMine returned error: %v", err)
	}
	if len(mine) != 1 || mine[0].UserID != buyer.ID {
		t.Fatalf("expected only the caller's orders, got %+v", mine)
	}

	all, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 orders total, got %d", len(all))
	}
}

func TestOrderService_MarkPaid(t *testing.T) {
	orders, products, svc := newOrderFixture()
	keyboard, _ := products.Create(context.Background(), &domain.Product{Name: "keyboard", PriceCents: 4999})

	order, _ := svc.Create(context.Background(), buyer, ports.CreateOrderInput{
		Items: []ports.OrderItemInput{{ProductID: keyboard.ID, Quantity: 1}},
	})

	if _, err := svc.MarkPaid(context.Background(), buyer, order.ID, ""); err != domain.ErrMissingFields {
		t.Fatalf("expected ErrMissingFields for empty payment intent, got %v", err)
	}

	stranger := domain.Principal{ID: "u2", Role: domain.RoleCustomer}
	if _, err := svc.MarkPaid(context.Background(), stranger, order.ID, "pi_abc"); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	paid, err := svc.MarkPaid(context.Background(), buyer, order.ID, "pi_abc")
	if err != nil {
		t.Fatalf("MarkPaid returned error: %v", err)
	}
	if paid.Status != domain.OrderPaid || paid.PaymentIntentID != "pi_abc" {
		t.Fatalf("order not marked paid: %+v", paid)
	}

	stored, _ := orders.FindByID(context.Background(), order.ID)
	if stored.Status != domain.OrderPaid {
		t.Fatalf("stored order not updated: %+v", stored)
	}
}
