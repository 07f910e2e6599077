package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/99minutos/user-manager/internal/core/domain"
)

func TestRoleResolver_FromRepository(t *testing.T) {
	roles := newStubRoleRepo()
	roles.seed("r-1", "Editor")
	cache := newStubRoleCache()
	r := NewRoleResolver(roles, cache, zerolog.Nop())

	if got := r.ResolveName(context.Background(), "r-1"); got != "Editor" {
		t.Fatalf("expected Editor, got %q", got)
	}
	if cache.names["r-1"] != "Editor" {
		t.Fatalf("expected name to be cached")
	}
}

func TestRoleResolver_CacheHit(t *testing.T) {
	roles := newStubRoleRepo()
	roles.findErr = errStoreDown
	cache := newStubRoleCache()
	cache.names["r-1"] = "Cached"

	r := NewRoleResolver(roles, cache, zerolog.Nop())
	if got := r.ResolveName(context.Background(), "r-1"); got != "Cached" {
		t.Fatalf("expected cached name, got %q", got)
	}
}

func TestRoleResolver_CacheErrorFallsThrough(t *testing.T) {
	roles := newStubRoleRepo()
	roles.seed("r-1", "Editor")
	cache := newStubRoleCache()
	cache.getErr = errStoreDown

	r := NewRoleResolver(roles, cache, zerolog.Nop())
	if got := r.ResolveName(context.Background(), "r-1"); got != "Editor" {
		t.Fatalf("expected Editor, got %q", got)
	}
}

func TestRoleResolver_Fallback(t *testing.T) {
	r := NewRoleResolver(newStubRoleRepo(), nil, zerolog.Nop())
	if got := r.ResolveName(context.Background(), "missing"); got != domain.FallbackRoleName {
		t.Fatalf("expected fallback, got %q", got)
	}
}
