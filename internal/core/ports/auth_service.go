package ports

import (
	"context"

	"github.com/storefront/commerce-api/internal/core/domain"
)

// AuthService implements account registration and session establishment.
type AuthService interface {
	// Register creates an account. The first account in the store becomes an
	// admin; every later registration is a customer regardless of input.
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	// Login verifies credentials and returns a fresh session token.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Logout revokes all outstanding session tokens for the principal.
	Logout(ctx context.Context, principal domain.Principal) error
}
