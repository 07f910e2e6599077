package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/99minutos/user-manager/internal/api/metrics"
	"github.com/99minutos/user-manager/internal/core/domain"
	"github.com/99minutos/user-manager/internal/core/ports"
)

// AuthService implements the login flow: credential lookup, password
// verification, role resolution and token issuance.
type AuthService struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	roles  ports.RoleResolver
	tokens ports.TokenIssuer
	log    zerolog.Logger

	// dummyDigest is verified against when the username is unknown, so both
	// rejection paths spend the same bcrypt work.
	dummyDigest string
}

func NewAuthService(
	ctx context.Context,
	users ports.UserRepository,
	hasher ports.PasswordHasher,
	roles ports.RoleResolver,
	tokens ports.TokenIssuer,
	log zerolog.Logger,
) (*AuthService, error) {
	dummy, err := hasher.Hash(ctx, uuid.NewString())
	if err != nil {
		return nil, fmt.Errorf("auth service: %w", err)
	}
	return &AuthService{
		users:       users,
		hasher:      hasher,
		roles:       roles,
		tokens:      tokens,
		log:         log,
		dummyDigest: dummy,
	}, nil
}

// Login returns a signed token for valid credentials. Unknown usernames,
// wrong passwords and credential-store failures all return
// domain.ErrInvalidCredentials. The lookup is not retried.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	attempt := domain.NewLoginAttempt()
	attempt.Username = username
	if err := attempt.Advance(domain.LoginCredentialsSubmitted); err != nil {
		return "", err
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			s.log.Error().Err(err).Str("username", username).Msg("credential lookup failed")
		}
		s.hasher.Verify(ctx, password, s.dummyDigest)
		return "", s.reject(attempt)
	}

	if !s.hasher.Verify(ctx, password, user.PasswordHash) {
		return "", s.reject(attempt)
	}
	if err := attempt.Advance(domain.LoginVerified); err != nil {
		return "", err
	}

	roleName := s.roles.ResolveName(ctx, user.RoleID)
	token, err := s.tokens.Issue(user.Username, user.ID, roleName)
	if err != nil {
		return "", err
	}
	if err := attempt.Advance(domain.LoginTokenIssued); err != nil {
		return "", err
	}

	metrics.LoginAttemptsTotal.WithLabelValues(string(attempt.State())).Inc()
	metrics.TokensIssuedTotal.Inc()
	s.log.Info().Str("username", username).Str("role", roleName).Msg("login succeeded")
	return token, nil
}

func (s *AuthService) reject(attempt *domain.LoginAttempt) error {
	if err := attempt.Advance(domain.LoginRejected); err != nil {
		return err
	}
	metrics.LoginAttemptsTotal.WithLabelValues(string(attempt.State())).Inc()
	s.log.Warn().Str("username", attempt.Username).Msg("login rejected")
	return domain.ErrInvalidCredentials
}
