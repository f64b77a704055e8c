package ports

import (
	"context"

	"github.com/storefront/commerce-api/internal/core/domain"
)

// UserService implements account queries, profile updates and credential
// rotation.
type UserService interface {
	// ListCustomers returns all customer accounts (admin only, enforced by
	// the route).
	ListCustomers(ctx context.Context) ([]*domain.User, error)
	// Get returns a single account; the principal must be an admin or the
	// account owner.
	Get(ctx context.Context, principal domain.Principal, id string) (*domain.User, error)
	// UpdateProfile changes name and email and returns a reissued session
	// token reflecting the new identity fields.
	UpdateProfile(ctx context.Context, principal domain.Principal, name, email string) (string, *domain.User, error)
	// RotatePassword verifies the old credential, stores a hash of the new
	// one, revokes prior sessions, and returns a fresh token.
	RotatePassword(ctx context.Context, principal domain.Principal, oldPassword, newPassword string) (string, error)
}
