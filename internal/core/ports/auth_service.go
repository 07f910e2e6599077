package ports

import (
	"context"
)

type AuthService interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// RoleResolver maps a role id to its display name, falling back to
// domain.FallbackRoleName when the role cannot be found.
type RoleResolver interface {
	ResolveName(ctx context.Context, roleID string) string
}
