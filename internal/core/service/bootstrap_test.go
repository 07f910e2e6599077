package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/99minutos/user-manager/internal/core/domain"
)

func TestBootstrap_CreatesRolesAndAdmin(t *testing.T) {
	roles := newStubRoleRepo()
	users := newStubUserRepo()

	err := Bootstrap(context.Background(), roles, users, &countingHasher{},
		SeedAdmin{Username: "admin", Password: "Admin123!"}, zerolog.Nop())
	if err != nil {
		t.Fatalf("Bootstrap returned error: %v", err)
	}

	adminRole, err := roles.FindByName(context.Background(), domain.RoleAdmin)
	if err != nil {
		t.Fatalf("Admin role missing: %v", err)
	}
	if _, err := roles.FindByName(context.Background(), domain.RoleUser); err != nil {
		t.Fatalf("User role missing: %v", err)
	}

	admin, err := users.FindByUsername(context.Background(), "admin")
	if err != nil {
		t.Fatalf("admin missing: %v", err)
	}
	if admin.RoleID != adminRole.ID || admin.PasswordHash != "hashed:Admin123!" {
		t.Fatalf("unexpected admin: %+v", admin)
	}
}

func TestBootstrap_Idempotent(t *testing.T) {
	roles := newStubRoleRepo()
	users := newStubUserRepo()
	seed := SeedAdmin{Username: "admin", Password: "Admin123!"}

	for i := 0; i < 2; i++ {
		if err := Bootstrap(context.Background(), roles, users, &countingHasher{}, seed, zerolog.Nop()); err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
	}

	all, _ := roles.List(context.Background())
	if len(all) != 2 {
		t.Fatalf("expected 2 roles, got %d", len(all))
	}
	list, _ := users.List(context.Background())
	if len(list) != 1 {
		t.Fatalf("expected 1 user, got %d", len(list))
	}
}

func TestBootstrap_NoAdminWithoutCredentials(t *testing.T) {
	users := newStubUserRepo()
	if err := Bootstrap(context.Background(), newStubRoleRepo(), users, &countingHasher{}, SeedAdmin{}, zerolog.Nop()); err != nil {
		t.Fatalf("Bootstrap returned error: %v", err)
	}
	list, _ := users.List(context.Background())
	if len(list) != 0 {
		t.Fatalf("expected no users, got %d", len(list))
	}
}
