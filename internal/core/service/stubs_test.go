package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/99minutos/user-manager/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory repositories
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	mu      sync.Mutex
	byID    map[string]*domain.User
	nextID  int
	findErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, u := range r.byID {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byID {
		if u.Username == user.Username {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	c := cloneUser(user)
	c.ID = fmt.Sprintf("u-%d", r.nextID)
	r.byID[c.ID] = c
	return cloneUser(c), nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.byID[user.ID] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubUserRepo) CountByRole(_ context.Context, roleID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, u := range r.byID {
		if u.RoleID == roleID {
			n++
		}
	}
	return n, nil
}

type stubRoleRepo struct {
	mu      sync.Mutex
	byID    map[string]*domain.Role
	nextID  int
	findErr error
}

func newStubRoleRepo() *stubRoleRepo {
	return &stubRoleRepo{byID: make(map[string]*domain.Role)}
}

func (r *stubRoleRepo) seed(id, name string) {
	r.byID[id] = &domain.Role{ID: id, Name: name}
}

func (r *stubRoleRepo) List(_ context.Context) ([]*domain.Role, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Role, 0, len(r.byID))
	for _, role := range r.byID {
		c := *role
		out = append(out, &c)
	}
	return out, nil
}

func (r *stubRoleRepo) FindByID(_ context.Context, id string) (*domain.Role, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	role, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrRoleNotFound
	}
	c := *role
	return &c, nil
}

func (r *stubRoleRepo) FindByName(_ context.Context, name string) (*domain.Role, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, role := range r.byID {
		if role.Name == name {
			c := *role
			return &c, nil
		}
	}
	return nil, domain.ErrRoleNotFound
}

func (r *stubRoleRepo) Create(_ context.Context, role *domain.Role) (*domain.Role, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byID {
		if existing.Name == role.Name {
			return nil, domain.ErrRoleExists
		}
	}
	r.nextID++
	c := *role
	c.ID = fmt.Sprintf("r-%d", r.nextID)
	r.byID[c.ID] = &c
	out := c
	return &out, nil
}

func (r *stubRoleRepo) Update(_ context.Context, role *domain.Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[role.ID]; !ok {
		return domain.ErrRoleNotFound
	}
	c := *role
	r.byID[role.ID] = &c
	return nil
}

func (r *stubRoleRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return domain.ErrRoleNotFound
	}
	delete(r.byID, id)
	return nil
}

// ---------------------------------------------------------------------------
// Cache and security stubs
// ---------------------------------------------------------------------------

type stubRoleCache struct {
	names       map[string]string
	getErr      error
	invalidated []string
}

func newStubRoleCache() *stubRoleCache {
	return &stubRoleCache{names: make(map[string]string)}
}

func (c *stubRoleCache) GetName(_ context.Context, roleID string) (string, bool, error) {
	if c.getErr != nil {
		return "", false, c.getErr
	}
	name, ok := c.names[roleID]
	return name, ok, nil
}

func (c *stubRoleCache) SetName(_ context.Context, roleID, name string) error {
	c.names[roleID] = name
	return nil
}

func (c *stubRoleCache) Invalidate(_ context.Context, roleID string) error {
	delete(c.names, roleID)
	c.invalidated = append(c.invalidated, roleID)
	return nil
}

// countingHasher prefixes plaintexts and records every verified digest.
type countingHasher struct {
	mu       sync.Mutex
	verified []string
}

func (h *countingHasher) Hash(_ context.Context, plaintext string) (string, error) {
	return "hashed:" + plaintext, nil
}

func (h *countingHasher) Verify(_ context.Context, plaintext, digest string) bool {
	h.mu.Lock()
	h.verified = append(h.verified, digest)
	h.mu.Unlock()
	return digest == "hashed:"+plaintext
}

type stubIssuer struct {
	err error
}

func (s *stubIssuer) Issue(username, userID, roleName string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return username + "|" + userID + "|" + roleName, nil
}

var errStoreDown = errors.New("store unavailable")
