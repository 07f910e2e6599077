package ports

import (
	"context"

	"github.com/99minutos/user-manager/internal/core/domain"
)

// PasswordHasher turns plaintext secrets into salted digests and checks
// plaintexts against them. Verify never returns an error: any malformed
// digest or cancelled context yields false.
type PasswordHasher interface {
	Hash(ctx context.Context, plaintext string) (string, error)
	Verify(ctx context.Context, plaintext, digest string) bool
}

// TokenIssuer mints signed, time-bounded tokens.
type TokenIssuer interface {
	Issue(username, userID, roleName string) (string, error)
}

// TokenValidator checks a received token and returns its claims. Every
// failure is reported as domain.ErrInvalidToken.
type TokenValidator interface {
	Validate(token string) (domain.TokenClaims, error)
}
