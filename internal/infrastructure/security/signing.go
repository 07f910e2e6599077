package security

import (
	"time"

	"github.com/99minutos/user-manager/internal/core/domain"
)

const (
	DefaultIssuer   = "app"
	DefaultAudience = "users"
	DefaultExpiry   = 60 * time.Minute
)

// SigningConfig holds the process-wide token settings. Build it once with
// NewSigningConfig at startup and pass it to the issuer and validator.
type SigningConfig struct {
	secret   []byte
	issuer   string
	audience string
	expiry   time.Duration
}

// NewSigningConfig validates and freezes the token settings. An empty
// secret returns domain.ErrMissingSigningKey; empty issuer, audience and
// non-positive expiry fall back to their defaults.
func NewSigningConfig(secret, issuer, audience string, expiry time.Duration) (SigningConfig, error) {
	if secret == "" {
		return SigningConfig{}, domain.ErrMissingSigningKey
	}
	if issuer == "" {
		issuer = DefaultIssuer
	}
	if audience == "" {
		audience = DefaultAudience
	}
	if expiry <= 0 {
		expiry = DefaultExpiry
	}

	key := make([]byte, len(secret))
	copy(key, secret)

	return SigningConfig{
		secret:   key,
		issuer:   issuer,
		audience: audience,
		expiry:   expiry,
	}, nil
}

func (c SigningConfig) Issuer() string        { return c.issuer }
func (c SigningConfig) Audience() string      { return c.audience }
func (c SigningConfig) Expiry() time.Duration { return c.expiry }
