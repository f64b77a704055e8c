package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/storefront/commerce-api/internal/core/domain"
)

func TestTokenIssuer_ClaimsNeverCarryCredentials(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)
	user := &domain.User{
		ID:           "u1",
		Name:         "alice",
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$somethinghashed",
		Role:         domain.RoleCustomer,
	}

	token, err := issuer.Issue(user)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	}); err != nil {
		t.Fatalf("token did not parse: %v", err)
	}

	for key := range claims {
		switch key {
		case "user_id", "name", "role", "iat", "exp":
		default:
			t.Fatalf("unexpected claim %q", key)
		}
	}
	if claims["user_id"] != "u1" || claims["role"] != domain.RoleCustomer {
		t.Fatalf("unexpected identity claims: %v", claims)
	}
}

func TestTokenIssuer_DefaultTTL(t *testing.T) {
	issuer := NewTokenIssuer("secret", 0)
	if issuer.TTL() != 24*time.Hour {
		t.Fatalf("expected 24h default, got %v", issuer.TTL())
	}
}

func TestTokenIssuer_ExpiryMatchesTTL(t *testing.T) {
	issuer := NewTokenIssuer("secret", 2*time.Hour)
	token, err := issuer.Issue(&domain.User{ID: "u1", Role: domain.RoleCustomer})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	}); err != nil {
		t.Fatalf("token did not parse: %v", err)
	}

	iat := int64(claims["iat"].(float64))
	exp := int64(claims["exp"].(float64))
	if exp-iat != int64((2 * time.Hour).Seconds()) {
		t.Fatalf("expected 2h lifetime, got %ds", exp-iat)
	}
}
