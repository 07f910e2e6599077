package domain

import "errors"

var (
	// ErrInvalidCredentials covers both unknown usernames and wrong passwords.
	ErrInvalidCredentials = errors.New("Invalid credentials")
	// ErrInvalidToken covers every token validation failure (bad signature,
	// expired, wrong issuer or audience, malformed).
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrMissingSigningKey is a startup error: the service must not run
	// without a token signing secret.
	ErrMissingSigningKey = errors.New("jwt signing secret is not configured")

	ErrUserNotFound = errors.New("User not found.")
	ErrUserExists   = errors.New("user already exists")
	ErrRoleNotFound = errors.New("Role not found.")
	ErrRoleExists   = errors.New("role already exists")
	ErrRoleInUse    = errors.New("role is still assigned to users")
	ErrUnknownRole  = errors.New("role does not exist")
	ErrForbidden    = errors.New("access forbidden")
)
