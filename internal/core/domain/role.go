package domain

import "time"

const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

// FallbackRoleName is embedded in tokens when a user's role cannot be
// resolved. Login stays available while role data is inconsistent; the
// resulting token carries the least-privileged built-in role.
const FallbackRoleName = RoleUser

// Role is a named permission group referenced by users.
type Role struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
