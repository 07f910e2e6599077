package ports

import (
	"context"

	"github.com/99minutos/user-manager/internal/core/domain"
)

type RoleService interface {
	List(ctx context.Context) ([]*domain.Role, error)
	Get(ctx context.Context, id string) (*domain.Role, error)
	Create(ctx context.Context, name string) (*domain.Role, error)
	Update(ctx context.Context, id, name string) error
	Delete(ctx context.Context, id string) error
}
