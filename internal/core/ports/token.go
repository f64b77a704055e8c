package ports

import (
	"context"

	"github.com/storefront/commerce-api/internal/core/domain"
)

// TokenIssuer derives a signed session token from a user record. The token
// carries only the public identity projection (id, name, role) plus time
// claims — never credential material.
type TokenIssuer interface {
	Issue(user *domain.User) (string, error)
}

// SessionRevoker invalidates every session token issued to a user before the
// moment of the call. Used on logout and credential rotation.
type SessionRevoker interface {
	RevokeAll(ctx context.Context, userID string) error
}
