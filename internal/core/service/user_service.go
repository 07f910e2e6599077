package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/user-manager/internal/core/domain"
	"github.com/99minutos/user-manager/internal/core/ports"
)

// UserService implements account management on top of the user and role
// repositories. Passwords are hashed here before they reach storage.
type UserService struct {
	users    ports.UserRepository
	roles    ports.RoleRepository
	resolver ports.RoleResolver
	hasher   ports.PasswordHasher
	log      zerolog.Logger
}

func NewUserService(
	users ports.UserRepository,
	roles ports.RoleRepository,
	resolver ports.RoleResolver,
	hasher ports.PasswordHasher,
	log zerolog.Logger,
) *UserService {
	return &UserService{users: users, roles: roles, resolver: resolver, hasher: hasher, log: log}
}

func (s *UserService) List(ctx context.Context) ([]ports.UserView, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ports.UserView, 0, len(users))
	for _, u := range users {
		out = append(out, s.view(ctx, u))
	}
	return out, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*ports.UserView, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	v := s.view(ctx, u)
	return &v, nil
}

func (s *UserService) Create(ctx context.Context, in ports.CreateUserInput) (*ports.UserView, error) {
	if err := s.ensureRole(ctx, in.RoleID); err != nil {
		return nil, err
	}

	digest, err := s.hasher.Hash(ctx, in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.users.Create(ctx, &domain.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: digest,
		RoleID:       in.RoleID,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Str("username", created.Username).Msg("user created")
	v := s.view(ctx, created)
	return &v, nil
}

func (s *UserService) Update(ctx context.Context, in ports.UpdateUserInput) error {
	user, err := s.users.FindByID(ctx, in.ID)
	if err != nil {
		return err
	}
	if err := s.ensureRole(ctx, in.RoleID); err != nil {
		return err
	}

	user.Username = in.Username
	user.Email = in.Email
	user.RoleID = in.RoleID
	if in.Password != "" {
		digest, err := s.hasher.Hash(ctx, in.Password)
		if err != nil {
			return err
		}
		user.PasswordHash = digest
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.users.Update(ctx, user); err != nil {
		return err
	}
	s.log.Info().Str("user_id", user.ID).Msg("user updated")
	return nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("user_id", id).Msg("user deleted")
	return nil
}

func (s *UserService) ensureRole(ctx context.Context, roleID string) error {
	if _, err := s.roles.FindByID(ctx, roleID); err != nil {
		if errors.Is(err, domain.ErrRoleNotFound) {
			return domain.ErrUnknownRole
		}
		return err
	}
	return nil
}

func (s *UserService) view(ctx context.Context, u *domain.User) ports.UserView {
	return ports.UserView{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		RoleID:    u.RoleID,
		RoleName:  s.resolver.ResolveName(ctx, u.RoleID),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
