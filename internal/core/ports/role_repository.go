package ports

import (
	"context"

	"github.com/99minutos/user-manager/internal/core/domain"
)

// RoleRepository defines persistence operations for roles.
// Lookups of absent records return domain.ErrRoleNotFound.
type RoleRepository interface {
	List(ctx context.Context) ([]*domain.Role, error)
	FindByID(ctx context.Context, id string) (*domain.Role, error)
	FindByName(ctx context.Context, name string) (*domain.Role, error)
	Create(ctx context.Context, role *domain.Role) (*domain.Role, error)
	Update(ctx context.Context, role *domain.Role) error
	Delete(ctx context.Context, id string) error
}

// RoleCache stores role names keyed by role id. A miss is reported as
// ("", false, nil).
type RoleCache interface {
	GetName(ctx context.Context, roleID string) (string, bool, error)
	SetName(ctx context.Context, roleID, name string) error
	Invalidate(ctx context.Context, roleID string) error
}
