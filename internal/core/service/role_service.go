package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/user-manager/internal/core/domain"
	"github.com/99minutos/user-manager/internal/core/ports"
)

// RoleService implements role management. Renames and deletes drop the
// cached name so later lookups see the change.
type RoleService struct {
	roles ports.RoleRepository
	users ports.UserRepository
	cache ports.RoleCache
	log   zerolog.Logger
}

// NewRoleService creates a RoleService. cache may be nil.
func NewRoleService(roles ports.RoleRepository, users ports.UserRepository, cache ports.RoleCache, log zerolog.Logger) *RoleService {
	return &RoleService{roles: roles, users: users, cache: cache, log: log}
}

func (s *RoleService) List(ctx context.Context) ([]*domain.Role, error) {
	return s.roles.List(ctx)
}

func (s *RoleService) Get(ctx context.Context, id string) (*domain.Role, error) {
	return s.roles.FindByID(ctx, id)
}

func (s *RoleService) Create(ctx context.Context, name string) (*domain.Role, error) {
	now := time.Now().UTC()
	role, err := s.roles.Create(ctx, &domain.Role{Name: name, CreatedAt: now, UpdatedAt: now})
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("role_id", role.ID).Str("name", role.Name).Msg("role created")
	return role, nil
}

func (s *RoleService) Update(ctx context.Context, id, name string) error {
	role, err := s.roles.FindByID(ctx, id)
	if err != nil {
		return err
	}
	role.Name = name
	role.UpdatedAt = time.Now().UTC()

	if err := s.roles.Update(ctx, role); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	s.log.Info().Str("role_id", id).Str("name", name).Msg("role updated")
	return nil
}

// Delete removes a role that no user references; otherwise it returns
// domain.ErrRoleInUse.
//
// The reference check and the delete are separate store calls, so a user
// assigned the role in between is left pointing at a missing role and
// resolves to domain.FallbackRoleName. Delete counts references again after
// removing the role and logs any such users at error level.
func (s *RoleService) Delete(ctx context.Context, id string) error {
	if _, err := s.roles.FindByID(ctx, id); err != nil {
		return err
	}
	n, err := s.users.CountByRole(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrRoleInUse
	}

	if err := s.roles.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	s.log.Info().Str("role_id", id).Msg("role deleted")

	orphaned, err := s.users.CountByRole(ctx, id)
	switch {
	case err != nil:
		s.log.Warn().Err(err).Str("role_id", id).Msg("post-delete reference check failed")
	case orphaned > 0:
		s.log.Error().
			Str("role_id", id).
			Int64("users", orphaned).
			Str("fallback", domain.FallbackRoleName).
			Msg("role deleted while still referenced")
	}
	return nil
}

func (s *RoleService) invalidate(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.log.Warn().Err(err).Str("role_id", id).Msg("role cache invalidation failed")
	}
}
