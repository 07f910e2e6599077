package domain

import "time"

// User is an account record. PasswordHash holds the bcrypt digest and never
// the plaintext; it is excluded from every JSON rendering.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	RoleID       string    `json:"role_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
