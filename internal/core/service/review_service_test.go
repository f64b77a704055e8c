package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/storefront/commerce-api/internal/core/domain"
	"github.com/storefront/commerce-api/internal/core/ports"
)

func newReviewFixture() (*stubReviewRepo, *stubProductRepo, *stubQueue, ports.ReviewService) {
	reviews := newStubReviewRepo()
	products := newStubProductRepo()
	queue := &stubQueue{}
	svc := NewReviewService(reviews, products, queue, zerolog.Nop())
	return reviews, products, queue, svc
}

func seedProduct(products *stubProductRepo) *domain.Product {
	p, _ := products.Create(context.Background(), &domain.Product{Name: "keyboard", PriceCents: 4999})
	return p
}

var buyer = domain.Principal{ID: "u1", Name: "alice", Role: domain.RoleCustomer}

func TestReviewService_Create_Success(t *testing.T) {
	reviews, products, queue, svc := newReviewFixture()
	product := seedProduct(products)

	created, err := svc.Create(context.Background(), buyer, ports.CreateReviewInput{
		ProductID: product.ID,
		Rating:    5,
		Title:     "great",
		Comment:   "works well",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.UserID != buyer.ID {
		t.Fatalf("review owner must come from the principal, got %s", created.UserID)
	}
	if reviews.countFor(product.ID, buyer.ID) != 1 {
		t.Fatalf("expected exactly 1 stored review")
	}
	if len(queue.enqueued) != 1 || queue.enqueued[0] != product.ID {
		t.Fatalf("expected rating recalculation enqueued, got %v", queue.enqueued)
	}
}

func TestReviewService_Create_ProductNotFoundBeforeUniqueness(t *testing.T) {
	reviews, _, queue, svc := newReviewFixture()

	_, err := svc.Create(context.Background(), buyer, ports.CreateReviewInput{ProductID: "p404", Rating: 4})
	if err != domain.ErrProductNotFound {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
	if len(reviews.reviews) != 0 {
		t.Fatalf("no review should be created for a missing product")
	}
	if len(queue.enqueued) != 0 {
		t.Fatalf("nothing should be enqueued on failure")
	}
}

func TestReviewService_Create_Duplicate(t *testing.T) {
	reviews, products, _, svc := newReviewFixture()
	product := seedProduct(products)

	if _, err := svc.Create(context.Background(), buyer, ports.CreateReviewInput{ProductID: product.ID, Rating: 5}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), buyer, ports.CreateReviewInput{ProductID: product.ID, Rating: 1}); err != domain.ErrDuplicateReview {
		t.Fatalf("expected ErrDuplicateReview, got %v", err)
	}
	if reviews.countFor(product.ID, buyer.ID) != 1 {
		t.Fatalf("expected exactly 1 stored review after duplicate attempt")
	}
}

func TestReviewService_Create_DifferentUsersAllowed(t *testing.T) {
	_, products, _, svc := newReviewFixture()
	product := seedProduct(products)

	other := domain.Principal{ID: "u2", Name: "bob", Role: domain.RoleCustomer}
	if _, err := svc.Create(context.Background(), buyer, ports.CreateReviewInput{ProductID: product.ID, Rating: 5}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), other, ports.CreateReviewInput{ProductID: product.ID, Rating: 3}); err != nil {
		t.Fatalf("second user's review rejected: %v", err)
	}
}

func TestReviewService_Update_OwnerOnly(t *testing.T) {
	_, products, _, svc := newReviewFixture()
	product := seedProduct(products)

	created, _ := svc.Create(context.Background(), buyer, ports.CreateReviewInput{ProductID: product.ID, Rating: 5, Title: "great"})

	stranger := domain.Principal{ID: "u2", Role: domain.RoleCustomer}
	if _, err := svc.Update(context.Background(), stranger, created.ID, ports.UpdateReviewInput{Rating: 1}); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	updated, err := svc.Update(context.Background(), buyer, created.ID, ports.UpdateReviewInput{Rating: 2, Title: "meh", Comment: "broke"})
	if err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if updated.Rating != 2 || updated.Title != "meh" {
		t.Fatalf("update not applied: %+v", updated)
	}
}

func TestReviewService_Delete_Scenarios(t *testing.T) {
	_, products, _, svc := newReviewFixture()
	product := seedProduct(products)

	owned, _ := svc.Create(context.Background(), buyer, ports.CreateReviewInput{ProductID: product.ID, Rating: 5})
	u2 := domain.Principal{ID: "u2", Role: domain.RoleCustomer}
	theirs, _ := svc.Create(context.Background(), u2, ports.CreateReviewInput{ProductID: product.ID, Rating: 3})

	// u1 cannot delete u2's review.
	if err := svc.Delete(context.Background(), buyer, theirs.ID); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	// u1 deletes their own; it is no longer retrievable.
	if err := svc.Delete(context.Background(), buyer, owned.ID); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if _, err := svc.Get(context.Background(), owned.ID); err != domain.ErrReviewNotFound {
		t.Fatalf("expected ErrReviewNotFound after delete, got %v", err)
	}

	// An admin may delete anyone's review.
	admin := domain.Principal{ID: "u99", Role: domain.RoleAdmin}
	if err := svc.Delete(context.Background(), admin, theirs.ID); err != nil {
		t.Fatalf("admin delete failed: %v", err)
	}
}

func TestReviewService_MutationsEnqueueRecalculation(t *testing.T) {
	_, products, queue, svc := newReviewFixture()
	product := seedProduct(products)

	created, _ := svc.Create(context.Background(), buyer, ports.CreateReviewInput{ProductID: product.ID, Rating: 5})
	_, _ = svc.Update(context.Background(), buyer, created.ID, ports.UpdateReviewInput{Rating: 4})
	_ = svc.Delete(context.Background(), buyer, created.ID)

	if len(queue.enqueued) != 3 {
		t.Fatalf("expected 3 enqueued recalculations, got %d", len(queue.enqueued))
	}
}
