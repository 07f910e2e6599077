package ports

import (
	"context"

	"github.com/99minutos/user-manager/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
// Lookups of absent records return domain.ErrUserNotFound.
type UserRepository interface {
	List(ctx context.Context) ([]*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
	CountByRole(ctx context.Context, roleID string) (int64, error)
}
