package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultRoleTTL = 5 * time.Minute

// RoleCache keeps role names in Redis so role resolution during login does
// not hit the database every time.
// Key format: role:name:<role_id>
type RoleCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRoleCache creates a RoleCache wrapping the given Redis client.
// A non-positive ttl uses defaultRoleTTL.
func NewRoleCache(client *redis.Client, ttl time.Duration) *RoleCache {
	if ttl <= 0 {
		ttl = defaultRoleTTL
	}
	return &RoleCache{client: client, ttl: ttl}
}

// GetName returns the cached name for roleID. A miss returns ("", false, nil).
func (c *RoleCache) GetName(ctx context.Context, roleID string) (string, bool, error) {
	name, err := c.client.Get(ctx, c.key(roleID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("role cache get: %w", err)
	}
	return name, true, nil
}

// SetName stores name for roleID (expires after the configured ttl).
func (c *RoleCache) SetName(ctx context.Context, roleID, name string) error {
	if err := c.client.Set(ctx, c.key(roleID), name, c.ttl).Err(); err != nil {
		return fmt.Errorf("role cache set: %w", err)
	}
	return nil
}

// Invalidate drops the cached name for roleID.
func (c *RoleCache) Invalidate(ctx context.Context, roleID string) error {
	if err := c.client.Del(ctx, c.key(roleID)).Err(); err != nil {
		return fmt.Errorf("role cache invalidate: %w", err)
	}
	return nil
}

func (c *RoleCache) key(roleID string) string {
	return fmt.Sprintf("role:name:%s", roleID)
}
