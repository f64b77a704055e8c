package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/storefront/commerce-api/internal/core/domain"
)

// TokenIssuer signs session tokens. The claims are a minimal public
// projection of the user record; credential material is never included.
type TokenIssuer struct {
	secret string
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenIssuer{secret: secret, ttl: ttl}
}

// TTL reports the configured token lifetime (cookie expiry mirrors it).
func (t *TokenIssuer) TTL() time.Duration {
	return t.ttl
}

// Issue returns a signed HS256 token for the user.
func (t *TokenIssuer) Issue(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"name":    user.Name,
		"role":    user.Role,
		"iat":     now.Unix(),
		"exp":     now.Add(t.ttl).Unix(),
	}

	tkn := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tkn.SignedString([]byte(t.secret))
}
