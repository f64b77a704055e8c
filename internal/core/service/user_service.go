package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/storefront/commerce-api/internal/api/metrics"
	"github.com/storefront/commerce-api/internal/core/domain"
	"github.com/storefront/commerce-api/internal/core/ports"
)

type userService struct {
	users    ports.UserRepository
	tokens   ports.TokenIssuer
	sessions ports.SessionRevoker
	log      zerolog.Logger
}

// NewUserService returns a UserService implementation.
func NewUserService(
	users ports.UserRepository,
	tokens ports.TokenIssuer,
	sessions ports.SessionRevoker,
	log zerolog.Logger,
) ports.UserService {
	return &userService{users: users, tokens: tokens, sessions: sessions, log: log}
}

func (s *userService) ListCustomers(ctx context.Context) ([]*domain.User, error) {
	return s.users.ListByRole(ctx, domain.RoleCustomer)
}

func (s *userService) Get(ctx context.Context, principal domain.Principal, id string) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	// Ownership is checked against the id resolved from the loaded record,
	// never against anything the client sent.
	if err := principal.CheckOwnership(user.ID); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, principal domain.Principal, name, email string) (string, *domain.User, error) {
	if name == "" || email == "" {
		return "", nil, domain.ErrMissingFields
	}

	user, err := s.users.FindByID(ctx, principal.ID)
	if err != nil {
		return "", nil, err
	}

	user.Name = name
	user.Email = email
	user.UpdatedAt = time.Now().UTC()
	if err := s.users.Update(ctx, user); err != nil {
		return "", nil, err
	}

	// Identity-bearing fields changed; reissue so the client's cached
	// identity view matches the committed state.
	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("user_id", user.ID).Msg("profile updated")
	return token, user, nil
}

func (s *userService) RotatePassword(ctx context.Context, principal domain.Principal, oldPassword, newPassword string) (string, error) {
	// Fail before touching storage when either field is missing.
	if oldPassword == "" || newPassword == "" {
		return "", domain.ErrMissingFields
	}

	user, err := s.users.FindByID(ctx, principal.ID)
	if err != nil {
		return "", err
	}

	if !verifyPassword(oldPassword, user.PasswordHash) {
		metrics.AuthFailuresTotal.WithLabelValues("rotation_old_password").Inc()
		return "", domain.ErrInvalidCredentials
	}

	// Same hashing path as registration; a rotated credential is never
	// stored unhashed.
	hash, err := hashPassword(newPassword)
	if err != nil {
		return "", err
	}
	user.PasswordHash = hash
	user.UpdatedAt = time.Now().UTC()
	if err := s.users.Update(ctx, user); err != nil {
		return "", err
	}

	// A credential change invalidates every previously issued token, then
	// hands back a fresh one for the current session.
	if err := s.sessions.RevokeAll(ctx, user.ID); err != nil {
		s.log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to revoke sessions after rotation")
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", err
	}

	metrics.PasswordRotationsTotal.Inc()
	s.log.Info().Str("user_id", user.ID).Msg("password rotated")
	return token, nil
}
