package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/storefront/commerce-api/internal/core/domain"
)

const testSecret = "test-secret"

type stubRevocations struct {
	revokedAt map[string]time.Time
}

func (s *stubRevocations) RevokedAt(_ context.Context, userID string) (time.Time, error) {
	return s.revokedAt[userID], nil
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return raw
}

func sessionClaims(issuedAt time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"user_id": "u1",
		"name":    "alice",
		"role":    domain.RoleCustomer,
		"iat":     issuedAt.Unix(),
		"exp":     issuedAt.Add(time.Hour).Unix(),
	}
}

func runAuth(t *testing.T, revocations RevocationChecker, prepare func(*http.Request)) (*httptest.ResponseRecorder, domain.Principal, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	if prepare != nil {
		prepare(req)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen domain.Principal
	handler := Auth(testSecret, revocations)(func(c echo.Context) error {
		seen, _ = c.Get(PrincipalKey).(domain.Principal)
		return c.NoContent(http.StatusOK)
	})
	err := handler(c)
	return rec, seen, err
}

func TestAuth_ValidCookie(t *testing.T) {
	token := signToken(t, testSecret, sessionClaims(time.Now()))

	rec, principal, err := runAuth(t, &stubRevocations{}, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	})
	if err != nil {
		t.Fatalf("expected pass-through, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if principal.ID != "u1" || principal.Role != domain.RoleCustomer {
		t.Fatalf("principal not injected: %+v", principal)
	}
}

func TestAuth_ValidBearerHeader(t *testing.T) {
	token := signToken(t, testSecret, sessionClaims(time.Now()))

	_, principal, err := runAuth(t, &stubRevocations{}, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
	})
	if err != nil {
		t.Fatalf("expected pass-through, got %v", err)
	}
	if principal.ID != "u1" {
		t.Fatalf("principal not injected: %+v", principal)
	}
}

func TestAuth_MissingToken(t *testing.T) {
	_, _, err := runAuth(t, &stubRevocations{}, nil)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_BadSignature(t *testing.T) {
	token := signToken(t, "wrong-secret", sessionClaims(time.Now()))

	_, _, err := runAuth(t, &stubRevocations{}, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	})
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	token := signToken(t, testSecret, sessionClaims(time.Now().Add(-2*time.Hour)))

	_, _, err := runAuth(t, &stubRevocations{}, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	})
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_MissingIdentityClaims(t *testing.T) {
	now := time.Now()
	token := signToken(t, testSecret, jwt.MapClaims{
		"iat": now.Unix(),
		"exp": now.Add(time.Hour).Unix(),
	})

	_, _, err := runAuth(t, &stubRevocations{}, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	})
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_RevokedSession(t *testing.T) {
	issuedAt := time.Now().Add(-10 * time.Minute)
	token := signToken(t, testSecret, sessionClaims(issuedAt))
	revocations := &stubRevocations{revokedAt: map[string]time.Time{
		"u1": issuedAt.Add(5 * time.Minute),
	}}

	_, _, err := runAuth(t, revocations, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	})
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for revoked session, got %v", err)
	}
}

func TestAuth_TokenIssuedAfterRevocationSurvives(t *testing.T) {
	revokedAt := time.Now().Add(-10 * time.Minute)
	token := signToken(t, testSecret, sessionClaims(time.Now()))
	revocations := &stubRevocations{revokedAt: map[string]time.Time{"u1": revokedAt}}

	_, principal, err := runAuth(t, revocations, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	})
	if err != nil {
		t.Fatalf("freshly issued token must survive an older revocation mark: %v", err)
	}
	if principal.ID != "u1" {
		t.Fatalf("principal not injected: %+v", principal)
	}
}
