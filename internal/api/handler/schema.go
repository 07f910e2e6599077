package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Message string `json:"message"`
}

// --- Auth ---

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type meResponse struct {
	Username  string    `json:"username"`
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

// --- Users ---

type createUserRequest struct {
	Username string `json:"username" validate:"required,min=5,max=30"`
	Email    string `json:"email"    validate:"omitempty,email"`
	Password string `json:"password" validate:"required,min=6,max=30"`
	RoleID   string `json:"role_id"  validate:"required"`
}

type updateUserRequest struct {
	Username string `json:"username" validate:"required,min=5,max=30"`
	Email    string `json:"email"    validate:"omitempty,email"`
	Password string `json:"password" validate:"omitempty,min=6,max=30"`
	RoleID   string `json:"role_id"  validate:"required"`
}

// userResponse never carries the password digest.
type userResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	RoleID    string    `json:"role_id"`
	RoleName  string    `json:"role_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// --- Roles ---

type roleRequest struct {
	Name string `json:"name" validate:"required,min=3,max=50"`
}

type roleResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
