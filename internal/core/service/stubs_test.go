package service

import (
	"context"
	"strconv"
	"sync"

	"github.com/storefront/commerce-api/internal/core/domain"
)

// In-memory fakes shared by the service tests.

type stubUserRepo struct {
	mu      sync.Mutex
	users   map[string]*domain.User
	nextID  int
	reads   int
	updates int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	r.nextID++
	copy := cloneUser(user)
	copy.ID = "u" + strconv.Itoa(r.nextID)
	r.users[copy.ID] = cloneUser(copy)
	return copy, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reads++
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reads++
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) ListByRole(_ context.Context, role string) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.User
	for _, u := range r.users {
		if u.Role == role {
			out = append(out, cloneUser(u))
		}
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updates++
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.users)), nil
}

type stubProductRepo struct {
	products map[string]*domain.Product
	ratings  map[string]domain.RatingSummary
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{
		products: make(map[string]*domain.Product),
		ratings:  make(map[string]domain.RatingSummary),
	}
}

func (r *stubProductRepo) Create(_ context.Context, p *domain.Product) (*domain.Product, error) {
	copy := *p
	if copy.ID == "" {
		copy.ID = "p" + strconv.Itoa(len(r.products)+1)
	}
	r.products[copy.ID] = &copy
	out := copy
	return &out, nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	if p, ok := r.products[id]; ok {
		copy := *p
		return &copy, nil
	}
	return nil, domain.ErrProductNotFound
}

func (r *stubProductRepo) List(_ context.Context) ([]*domain.Product, error) {
	var out []*domain.Product
	for _, p := range r.products {
		copy := *p
		out = append(out, &copy)
	}
	return out, nil
}

func (r *stubProductRepo) Update(_ context.Context, p *domain.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return domain.ErrProductNotFound
	}
	copy := *p
	r.products[p.ID] = &copy
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *stubProductRepo) UpdateRating(_ context.Context, productID string, summary domain.RatingSummary) error {
	if _, ok := r.products[productID]; !ok {
		return domain.ErrProductNotFound
	}
	r.ratings[productID] = summary
	r.products[productID].AverageRating = summary.Average
	r.products[productID].NumOfReviews = summary.Count
	return nil
}

type stubReviewRepo struct {
	reviews map[string]*domain.Review
	nextID  int
}

func newStubReviewRepo() *stubReviewRepo {
	return &stubReviewRepo{reviews: make(map[string]*domain.Review)}
}

func (r *stubReviewRepo) Create(_ context.Context, review *domain.Review) (*domain.Review, error) {
	for _, existing := range r.reviews {
		if existing.ProductID == review.ProductID && existing.UserID == review.UserID {
			return nil, domain.ErrDuplicateReview
		}
	}
	r.nextID++
	copy := *review
	copy.ID = "r" + strconv.Itoa(r.nextID)
	r.reviews[copy.ID] = &copy
	out := copy
	return &out, nil
}

func (r *stubReviewRepo) FindByID(_ context.Context, id string) (*domain.Review, error) {
	if rev, ok := r.reviews[id]; ok {
		copy := *rev
		return &copy, nil
	}
	return nil, domain.ErrReviewNotFound
}

func (r *stubReviewRepo) FindByProductAndUser(_ context.Context, productID, userID string) (*domain.Review, error) {
	for _, rev := range r.reviews {
		if rev.ProductID == productID && rev.UserID == userID {
			copy := *rev
			return &copy, nil
		}
	}
	return nil, domain.ErrReviewNotFound
}

func (r *stubReviewRepo) List(_ context.Context) ([]*domain.Review, error) {
	var out []*domain.Review
	for _, rev := range r.reviews {
		copy := *rev
		out = append(out, &copy)
	}
	return out, nil
}

func (r *stubReviewRepo) ListByProduct(_ context.Context, productID string) ([]*domain.Review, error) {
	var out []*domain.Review
	for _, rev := range r.reviews {
		if rev.ProductID == productID {
			copy := *rev
			out = append(out, &copy)
		}
	}
	return out, nil
}

func (r *stubReviewRepo) Update(_ context.Context, review *domain.Review) error {
	if _, ok := r.reviews[review.ID]; !ok {
		return domain.ErrReviewNotFound
	}
	copy := *review
	r.reviews[review.ID] = &copy
	return nil
}

func (r *stubReviewRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.reviews[id]; !ok {
		return domain.ErrReviewNotFound
	}
	delete(r.reviews, id)
	return nil
}

func (r *stubReviewRepo) DeleteByProduct(_ context.Context, productID string) error {
	for id, rev := range r.reviews {
		if rev.ProductID == productID {
			delete(r.reviews, id)
		}
	}
	return nil
}

func (r *stubReviewRepo) AggregateRating(_ context.Context, productID string) (domain.RatingSummary, error) {
	var sum, count int
	for _, rev := range r.reviews {
		if rev.ProductID == productID {
			sum += rev.Rating
			count++
		}
	}
	if count == 0 {
		return domain.RatingSummary{}, nil
	}
	return domain.RatingSummary{Average: float64(sum) / float64(count), Count: count}, nil
}

func (r *stubReviewRepo) countFor(productID, userID string) int {
	n := 0
	for _, rev := range r.reviews {
		if rev.ProductID == productID && rev.UserID == userID {
			n++
		}
	}
	return n
}

type stubOrderRepo struct {
	orders map[string]*domain.Order
	nextID int
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{orders: make(map[string]*domain.Order)}
}

func (r *stubOrderRepo) Create(_ context.Context, o *domain.Order) (*domain.Order, error) {
	r.nextID++
	copy := *o
	copy.ID = "o" + strconv.Itoa(r.nextID)
	r.orders[copy.ID] = &copy
	out := copy
	return &out, nil
}

func (r *stubOrderRepo) FindByID(_ context.Context, id string) (*domain.Order, error) {
	if o, ok := r.orders[id]; ok {
		copy := *o
		return &copy, nil
	}
	return nil, domain.ErrOrderNotFound
}

func (r *stubOrderRepo) List(_ context.Context) ([]*domain.Order, error) {
	var out []*domain.Order
	for _, o := range r.orders {
		copy := *o
		out = append(out, &copy)
	}
	return out, nil
}

func (r *stubOrderRepo) ListByUser(_ context.Context, userID string) ([]*domain.Order, error) {
	var out []*domain.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			copy := *o
			out = append(out, &copy)
		}
	}
	return out, nil
}

func (r *stubOrderRepo) Update(_ context.Context, o *domain.Order) error {
	if _, ok := r.orders[o.ID]; !ok {
		return domain.ErrOrderNotFound
	}
	copy := *o
	r.orders[o.ID] = &copy
	return nil
}

type stubRevoker struct {
	revoked []string
}

func (s *stubRevoker) RevokeAll(_ context.Context, userID string) error {
	s.revoked = append(s.revoked, userID)
	return nil
}

type stubQueue struct {
	enqueued []string
}

func (q *stubQueue) Enqueue(productID string) {
	q.enqueued = append(q.enqueued, productID)
}
