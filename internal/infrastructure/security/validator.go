package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/99minutos/user-manager/internal/core/domain"
)

// TokenValidator checks tokens minted by TokenIssuer. It needs nothing but
// the SigningConfig: no store lookup happens during validation.
type TokenValidator struct {
	cfg SigningConfig
	now func() time.Time
}

func NewTokenValidator(cfg SigningConfig) *TokenValidator {
	return &TokenValidator{cfg: cfg, now: time.Now}
}

// Validate verifies the HS256 signature, the exact issuer and audience, and
// that now lies in [issuedAt, expiresAt) with no leeway. Every failure
// returns domain.ErrInvalidToken.
func (v *TokenValidator) Validate(token string) (domain.TokenClaims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(v.cfg.issuer),
		jwt.WithAudience(v.cfg.audience),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithLeeway(0),
		jwt.WithTimeFunc(v.now),
	)

	var claims tokenClaims
	parsed, err := parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return v.cfg.secret, nil
	})
	if err != nil || !parsed.Valid {
		return domain.TokenClaims{}, domain.ErrInvalidToken
	}

	if claims.IssuedAt == nil || claims.Subject == "" || claims.ID == "" {
		return domain.TokenClaims{}, domain.ErrInvalidToken
	}
	if len(claims.Audience) != 1 || claims.Audience[0] != v.cfg.audience {
		return domain.TokenClaims{}, domain.ErrInvalidToken
	}

	return domain.TokenClaims{
		Subject:   claims.Subject,
		UserID:    claims.UserID,
		Role:      claims.Role,
		TokenID:   claims.ID,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
		Issuer:    claims.Issuer,
		Audience:  claims.Audience[0],
	}, nil
}
