package security

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/99minutos/user-manager/internal/api/metrics"
	"github.com/99minutos/user-manager/internal/infrastructure/queue"
)

// BcryptHasher hashes and verifies passwords with bcrypt. Digests embed the
// salt and cost, so Verify needs nothing but the digest itself. bcrypt
// compares the final hash bytes in constant time.
//
// When a pool is set, every hash and verify call runs on it.
type BcryptHasher struct {
	cost int
	pool *queue.Pool
}

// NewBcryptHasher returns a hasher using cost, clamped to bcrypt's valid
// range. pool may be nil to run calls on the caller's goroutine.
func NewBcryptHasher(cost int, pool *queue.Pool) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost, pool: pool}
}

// Hash returns a freshly salted digest of plaintext.
func (h *BcryptHasher) Hash(ctx context.Context, plaintext string) (string, error) {
	var (
		digest []byte
		err    error
	)
	runErr := h.run(ctx, "hash", func() {
		digest, err = bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	})
	if runErr != nil {
		return "", fmt.Errorf("hash password: %w", runErr)
	}
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches digest. Malformed, truncated or
// non-bcrypt digests and cancelled contexts all return false.
func (h *BcryptHasher) Verify(ctx context.Context, plaintext, digest string) bool {
	var err error
	runErr := h.run(ctx, "verify", func() {
		err = bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext))
	})
	return runErr == nil && err == nil
}

func (h *BcryptHasher) run(ctx context.Context, op string, fn func()) error {
	timed := func() {
		start := time.Now()
		fn()
		metrics.PasswordHashDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	}
	if h.pool == nil {
		if err := ctx.Err(); err != nil {
			return err
		}
		timed()
		return nil
	}
	return h.pool.Do(ctx, timed)
}
