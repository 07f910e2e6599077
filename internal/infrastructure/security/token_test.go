package security

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/99minutos/user-manager/internal/core/domain"
)

func mustSigningConfig(t *testing.T) SigningConfig {
	t.Helper()
	cfg, err := NewSigningConfig("test-secret", "", "", 0)
	if err != nil {
		t.Fatalf("signing config: %v", err)
	}
	return cfg
}

func TestNewSigningConfig_MissingSecret(t *testing.T) {
	if _, err := NewSigningConfig("", "iss", "aud", time.Minute); !errors.Is(err, domain.ErrMissingSigningKey) {
		t.Fatalf("expected ErrMissingSigningKey, got %v", err)
	}
}

func TestNewSigningConfig_Defaults(t *testing.T) {
	cfg := mustSigningConfig(t)
	if cfg.Issuer() != "app" || cfg.Audience() != "users" || cfg.Expiry() != time.Hour {
		t.Fatalf("unexpected defaults: %s %s %s", cfg.Issuer(), cfg.Audience(), cfg.Expiry())
	}
}

func TestTokenIssuer_RoundTrip(t *testing.T) {
	cfg := mustSigningConfig(t)
	token, err := NewTokenIssuer(cfg).Issue("admin", "u-1", "Admin")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if strings.Count(token, ".") != 2 {
		t.Fatalf("expected compact JWS, got %q", token)
	}

	claims, err := NewTokenValidator(cfg).Validate(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.Subject != "admin" || claims.UserID != "u-1" || claims.Role != "Admin" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.Issuer != "app" || claims.Audience != "users" {
		t.Fatalf("unexpected issuer/audience: %+v", claims)
	}
	if claims.TokenID == "" {
		t.Fatalf("expected token id")
	}
	if got := claims.ExpiresAt.Sub(claims.IssuedAt); got != time.Hour {
		t.Fatalf("expected 1h lifetime, got %s", got)
	}
}

func TestTokenIssuer_UniqueTokenIDs(t *testing.T) {
	cfg := mustSigningConfig(t)
	issuer := NewTokenIssuer(cfg)
	validator := NewTokenValidator(cfg)

	t1, _ := issuer.Issue("bob", "u-2", "User")
	t2, _ := issuer.Issue("bob", "u-2", "User")
	if t1 == t2 {
		t.Fatalf("expected distinct tokens")
	}

	c1, err1 := validator.Validate(t1)
	c2, err2 := validator.Validate(t2)
	if err1 != nil || err2 != nil {
		t.Fatalf("validate: %v %v", err1, err2)
	}
	if c1.TokenID == c2.TokenID {
		t.Fatalf("expected distinct token ids, got %s", c1.TokenID)
	}
}

func TestTokenValidator_Expired(t *testing.T) {
	cfg := mustSigningConfig(t)
	issuer := NewTokenIssuer(cfg)
	issuer.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := issuer.Issue("admin", "u-1", "Admin")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := NewTokenValidator(cfg).Validate(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenValidator_ExpiryBoundary(t *testing.T) {
	cfg := mustSigningConfig(t)
	issued := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	issuer := NewTokenIssuer(cfg)
	issuer.now = func() time.Time { return issued }
	token, err := issuer.Issue("admin", "u-1", "Admin")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	v := NewTokenValidator(cfg)

	v.now = func() time.Time { return issued.Add(time.Hour - time.Second) }
	if _, err := v.Validate(token); err != nil {
		t.Fatalf("expected valid one second before expiry, got %v", err)
	}

	v.now = func() time.Time { return issued.Add(time.Hour) }
	if _, err := v.Validate(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected rejection at expiry, got %v", err)
	}

	v.now = func() time.Time { return issued.Add(-time.Second) }
	if _, err := v.Validate(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected rejection before issuedAt, got %v", err)
	}
}

func TestTokenValidator_WrongSecret(t *testing.T) {
	cfg := mustSigningConfig(t)
	other, _ := NewSigningConfig("other-secret", "", "", 0)

	token, _ := NewTokenIssuer(other).Issue("admin", "u-1", "Admin")
	if _, err := NewTokenValidator(cfg).Validate(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenValidator_WrongIssuerOrAudience(t *testing.T) {
	cfg := mustSigningConfig(t)
	wrongIss, _ := NewSigningConfig("test-secret", "someone-else", "users", 0)
	wrongAud, _ := NewSigningConfig("test-secret", "app", "admins", 0)

	v := NewTokenValidator(cfg)
	for _, c := range []SigningConfig{wrongIss, wrongAud} {
		token, _ := NewTokenIssuer(c).Issue("admin", "u-1", "Admin")
		if _, err := v.Validate(token); !errors.Is(err, domain.ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken for iss=%s aud=%s, got %v", c.Issuer(), c.Audience(), err)
		}
	}
}

func TestTokenValidator_Tampered(t *testing.T) {
	cfg := mustSigningConfig(t)
	token, _ := NewTokenIssuer(cfg).Issue("bob", "u-2", "User")

	// Re-sign a forged payload with a different key but keep the header.
	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		UserID: "u-2",
		Role:   "Admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "app",
			Subject:   "bob",
			Audience:  jwt.ClaimStrings{"users"},
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			ID:        "x",
		},
	})
	forgedSigned, _ := forged.SignedString([]byte("guess"))
	parts := strings.Split(token, ".")
	forgedParts := strings.Split(forgedSigned, ".")
	spliced := parts[0] + "." + forgedParts[1] + "." + parts[2]

	v := NewTokenValidator(cfg)
	for _, tok := range []string{forgedSigned, spliced, token + "x", "", "not-a-token", "a.b.c"} {
		if _, err := v.Validate(tok); !errors.Is(err, domain.ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken for %q, got %v", tok, err)
		}
	}
}

func TestTokenValidator_RejectsOtherAlgorithms(t *testing.T) {
	cfg := mustSigningConfig(t)
	claims := tokenClaims{
		UserID: "u-1",
		Role:   "Admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "app",
			Subject:   "admin",
			Audience:  jwt.ClaimStrings{"users"},
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			ID:        "id",
		},
	}

	hs512, _ := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("test-secret"))
	none, _ := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)

	v := NewTokenValidator(cfg)
	for _, tok := range []string{hs512, none} {
		if _, err := v.Validate(tok); !errors.Is(err, domain.ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	}
}

func TestTokenValidator_MissingExpiry(t *testing.T) {
	cfg := mustSigningConfig(t)
	claims := tokenClaims{
		Role: "Admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   "app",
			Subject:  "admin",
			Audience: jwt.ClaimStrings{"users"},
			IssuedAt: jwt.NewNumericDate(time.Now()),
			ID:       "id",
		},
	}
	tok, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))

	if _, err := NewTokenValidator(cfg).Validate(tok); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
