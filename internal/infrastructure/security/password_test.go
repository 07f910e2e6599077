package security

import (
	"context"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/99minutos/user-manager/internal/infrastructure/queue"
)

func newTestHasher() *BcryptHasher {
	return NewBcryptHasher(bcrypt.MinCost, nil)
}

func TestBcryptHasher_RoundTrip(t *testing.T) {
	h := newTestHasher()
	ctx := context.Background()

	for _, p := range []string{"Admin123!", "a", "pässwörd", strings.Repeat("x", 72), ""} {
		digest, err := h.Hash(ctx, p)
		if err != nil {
			t.Fatalf("Hash(%q) returned error: %v", p, err)
		}
		if digest == p {
			t.Fatalf("digest equals plaintext for %q", p)
		}
		if !h.Verify(ctx, p, digest) {
			t.Fatalf("Verify(%q, hash) = false, want true", p)
		}
	}
}

func TestBcryptHasher_SaltedDigestsDiffer(t *testing.T) {
	h := newTestHasher()
	ctx := context.Background()

	d1, err := h.Hash(ctx, "secret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	d2, err := h.Hash(ctx, "secret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	if d1 == d2 {
		t.Fatalf("expected distinct digests, got %q twice", d1)
	}
	if !h.Verify(ctx, "secret", d1) || !h.Verify(ctx, "secret", d2) {
		t.Fatalf("both digests should verify")
	}
}

func TestBcryptHasher_WrongPassword(t *testing.T) {
	h := newTestHasher()
	ctx := context.Background()

	digest, err := h.Hash(ctx, "correct horse")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if h.Verify(ctx, "correct horse ", digest) {
		t.Fatalf("Verify accepted a different plaintext")
	}
	if h.Verify(ctx, "Correct horse", digest) {
		t.Fatalf("Verify accepted a different plaintext")
	}
}

func TestBcryptHasher_MalformedDigests(t *testing.T) {
	h := newTestHasher()
	ctx := context.Background()

	valid, err := h.Hash(ctx, "pw")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	malformed := []string{
		"",
		"pw",
		"$2a$",
		"$2a$04$",
		valid[:len(valid)-5],
		valid[:29],
		"$argon2id$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA",
		"5f4dcc3b5aa765d61d8327deb882cf99",
		"$2a$99$abcdefghijklmnopqrstuuABCDEFGHIJKLMNOPQRSTUVWXYZ01234",
		strings.Repeat("$", 60),
	}
	for _, d := range malformed {
		if h.Verify(ctx, "pw", d) {
			t.Fatalf("Verify accepted malformed digest %q", d)
		}
	}
}

func TestBcryptHasher_TooLongPassword(t *testing.T) {
	h := newTestHasher()
	if _, err := h.Hash(context.Background(), strings.Repeat("x", 73)); err == nil {
		t.Fatalf("expected error for password over 72 bytes")
	}
}

func TestBcryptHasher_CostClamped(t *testing.T) {
	if h := NewBcryptHasher(1, nil); h.cost != bcrypt.DefaultCost {
		t.Fatalf("expected default cost, got %d", h.cost)
	}
	if h := NewBcryptHasher(bcrypt.MaxCost+1, nil); h.cost != bcrypt.DefaultCost {
		t.Fatalf("expected default cost, got %d", h.cost)
	}
}

func TestBcryptHasher_Pooled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool := queue.NewPool(2)
	pool.Start(ctx)
	h := NewBcryptHasher(bcrypt.MinCost, pool)

	digest, err := h.Hash(ctx, "pooled")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !h.Verify(ctx, "pooled", digest) {
		t.Fatalf("pooled verify failed")
	}
}

func TestBcryptHasher_CancelledContextFailsClosed(t *testing.T) {
	h := newTestHasher()
	digest, err := h.Hash(context.Background(), "pw")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if h.Verify(ctx, "pw", digest) {
		t.Fatalf("Verify should fail closed on a cancelled context")
	}
	if _, err := h.Hash(ctx, "pw"); err == nil {
		t.Fatalf("Hash should fail on a cancelled context")
	}
}

func TestBcryptHasher_StoppedPoolFailsFast(t *testing.T) {
	poolCtx, stopPool := context.WithCancel(context.Background())
	pool := queue.NewPool(1)
	pool.Start(poolCtx)
	h := NewBcryptHasher(bcrypt.MinCost, pool)

	digest, err := h.Hash(context.Background(), "pw")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	stopPool()

	done := make(chan struct{})
	go func() {
		// Either a worker still alive verifies it or the stopped pool
		// refuses it; neither may wait for the caller's context.
		h.Verify(context.Background(), "pw", digest)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Verify blocked after the pool stopped")
	}
}
