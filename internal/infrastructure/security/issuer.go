package security

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// tokenClaims is the JWT payload. Subject carries the username and ID the
// per-issuance token id.
type tokenClaims struct {
	UserID string `json:"uid"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer signs HS256 tokens from a SigningConfig.
type TokenIssuer struct {
	cfg   SigningConfig
	now   func() time.Time
	newID func() string
}

func NewTokenIssuer(cfg SigningConfig) *TokenIssuer {
	return &TokenIssuer{
		cfg:   cfg,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Issue returns a compact signed token for the given identity and role.
func (i *TokenIssuer) Issue(username, userID, roleName string) (string, error) {
	now := i.now().UTC()
	claims := tokenClaims{
		UserID: userID,
		Role:   roleName,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    i.cfg.issuer,
			Subject:   username,
			Audience:  jwt.ClaimStrings{i.cfg.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.cfg.expiry)),
			ID:        i.newID(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.cfg.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
