package domain

import "time"

// TokenClaims are the identity and timing facts carried by a signed token.
// Values are built once per issuance or validation and never persisted.
type TokenClaims struct {
	Subject   string    `json:"sub"`
	UserID    string    `json:"uid"`
	Role      string    `json:"role"`
	TokenID   string    `json:"jti"`
	IssuedAt  time.Time `json:"iat"`
	ExpiresAt time.Time `json:"exp"`
	Issuer    string    `json:"iss"`
	Audience  string    `json:"aud"`
}

// HasRole reports whether the claims carry one of the given role names.
func (c TokenClaims) HasRole(roles ...string) bool {
	for _, r := range roles {
		if c.Role == r {
			return true
		}
	}
	return false
}
