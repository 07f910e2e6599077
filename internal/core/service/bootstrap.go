package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/user-manager/internal/core/domain"
	"github.com/99minutos/user-manager/internal/core/ports"
)

// SeedAdmin names an administrator account to create at startup.
type SeedAdmin struct {
	Username string
	Password string
}

// Bootstrap makes sure the built-in roles exist and, when admin carries
// credentials, that an administrator account exists. Existing records are
// left untouched.
func Bootstrap(
	ctx context.Context,
	roles ports.RoleRepository,
	users ports.UserRepository,
	hasher ports.PasswordHasher,
	admin SeedAdmin,
	log zerolog.Logger,
) error {
	var adminRole *domain.Role
	for _, name := range []string{domain.RoleAdmin, domain.RoleUser} {
		role, err := ensureRoleNamed(ctx, roles, name)
		if err != nil {
			return fmt.Errorf("bootstrap role %s: %w", name, err)
		}
		if name == domain.RoleAdmin {
			adminRole = role
		}
	}

	if admin.Username == "" || admin.Password == "" {
		return nil
	}

	_, err := users.FindByUsername(ctx, admin.Username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return fmt.Errorf("bootstrap admin: %w", err)
	}

	digest, err := hasher.Hash(ctx, admin.Password)
	if err != nil {
		return fmt.Errorf("bootstrap admin: %w", err)
	}
	now := time.Now().UTC()
	if _, err := users.Create(ctx, &domain.User{
		Username:     admin.Username,
		PasswordHash: digest,
		RoleID:       adminRole.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}); err != nil && !errors.Is(err, domain.ErrUserExists) {
		return fmt.Errorf("bootstrap admin: %w", err)
	}

	log.Info().Str("username", admin.Username).Msg("seeded admin account")
	return nil
}

func ensureRoleNamed(ctx context.Context, roles ports.RoleRepository, name string) (*domain.Role, error) {
	role, err := roles.FindByName(ctx, name)
	if err == nil {
		return role, nil
	}
	if !errors.Is(err, domain.ErrRoleNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	role, err = roles.Create(ctx, &domain.Role{Name: name, CreatedAt: now, UpdatedAt: now})
	if errors.Is(err, domain.ErrRoleExists) {
		return roles.FindByName(ctx, name)
	}
	return role, err
}
