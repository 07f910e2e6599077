package ports

import (
	"context"
	"time"
)

// CreateUserInput carries the fields accepted when creating a user.
type CreateUserInput struct {
	Username string
	Email    string
	Password string
	RoleID   string
}

// UpdateUserInput carries the fields accepted when updating a user.
// An empty Password keeps the stored digest.
type UpdateUserInput struct {
	ID       string
	Username string
	Email    string
	Password string
	RoleID   string
}

// UserView is the outward representation of a user. It never carries the
// password digest.
type UserView struct {
	ID        string
	Username  string
	Email     string
	RoleID    string
	RoleName  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type UserService interface {
	List(ctx context.Context) ([]UserView, error)
	Get(ctx context.Context, id string) (*UserView, error)
	Create(ctx context.Context, in CreateUserInput) (*UserView, error)
	Update(ctx context.Context, in UpdateUserInput) error
	Delete(ctx context.Context, id string) error
}
