package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/storefront/commerce-api/internal/api/metrics"
	"github.com/storefront/commerce-api/internal/core/domain"
	"github.com/storefront/commerce-api/internal/core/ports"
)

type authService struct {
	users    ports.UserRepository
	tokens   ports.TokenIssuer
	sessions ports.SessionRevoker
	log      zerolog.Logger
}

// NewAuthService returns an AuthService implementation.
func NewAuthService(
	users ports.UserRepository,
	tokens ports.TokenIssuer,
	sessions ports.SessionRevoker,
	log zerolog.Logger,
) ports.AuthService {
	return &authService{users: users, tokens: tokens, sessions: sessions, log: log}
}

func (s *authService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, domain.ErrMissingFields
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	// The first account in the store becomes the admin; everyone after is a
	// customer no matter what the payload asked for.
	role := domain.RoleCustomer
	count, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		role = domain.RoleAdmin
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Str("role", created.Role).Msg("account registered")
	return created, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrMissingFields
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// An unknown email reads the same as a wrong password, so login
			// never confirms whether an account exists.
			metrics.AuthFailuresTotal.WithLabelValues("unknown_email").Inc()
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !verifyPassword(password, user.PasswordHash) {
		metrics.AuthFailuresTotal.WithLabelValues("bad_password").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}

	metrics.LoginsTotal.Inc()
	s.log.Info().Str("user_id", user.ID).Msg("login")
	return token, user, nil
}

func (s *authService) Logout(ctx context.Context, principal domain.Principal) error {
	if err := s.sessions.RevokeAll(ctx, principal.ID); err != nil {
		return err
	}
	s.log.Info().Str("user_id", principal.ID).Msg("logout, sessions revoked")
	return nil
}
