package ports

import (
	"context"

	"github.com/storefront/commerce-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// ListByRole returns all users holding the given role.
	ListByRole(ctx context.Context, role string) ([]*domain.User, error)
	// Update persists name, email, password hash and updated_at.
	Update(ctx context.Context, user *domain.User) error
	// Count returns the total number of accounts (used for admin bootstrap).
	Count(ctx context.Context) (int64, error)
}
