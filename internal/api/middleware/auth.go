package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/storefront/commerce-api/internal/core/domain"
)

// CookieName is the session cookie carrying the signed identity token.
const CookieName = "token"

// PrincipalKey is the echo context key the authenticated principal is stored
// under.
const PrincipalKey = "principal"

// RevocationChecker abstracts the session revocation store (Redis).
type RevocationChecker interface {
	RevokedAt(ctx context.Context, userID string) (time.Time, error)
}

// Auth validates the session token (cookie first, then bearer header),
// rejects revoked sessions, and injects the reconstructed Principal into the
// request context.
func Auth(jwtSecret string, revocations RevocationChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := tokenFromRequest(c)
			if raw == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			principal := domain.Principal{
				ID:   stringClaim(claims, "user_id"),
				Name: stringClaim(claims, "name"),
				Role: stringClaim(claims, "role"),
			}
			if principal.ID == "" || principal.Role == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			// A token issued before the user's revocation mark (logout or
			// credential rotation) is dead even if its signature is valid.
			if revocations != nil {
				revokedAt, err := revocations.RevokedAt(c.Request().Context(), principal.ID)
				if err == nil && !revokedAt.IsZero() {
					if iat, iatErr := claims.GetIssuedAt(); iatErr == nil && iat != nil && iat.Time.Before(revokedAt) {
						return echo.NewHTTPError(http.StatusUnauthorized, "session revoked")
					}
				}
			}

			c.Set(PrincipalKey, principal)
			return next(c)
		}
	}
}

// tokenFromRequest prefers the session cookie and falls back to a bearer
// Authorization header.
func tokenFromRequest(c echo.Context) string {
	if cookie, err := c.Cookie(CookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}
	return ""
}

func stringClaim(claims jwt.MapClaims, key string) string {
	s, _ := claims[key].(string)
	return s
}
