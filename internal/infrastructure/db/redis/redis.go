package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultDialTimeout = 5 * time.Second
	defaultIOTimeout   = 500 * time.Millisecond
)

// Config holds the role cache connection settings.
type Config struct {
	Addr     string
	Password string
	DB       int
	// DialTimeout bounds connecting and the startup ping.
	DialTimeout time.Duration
	// IOTimeout bounds every read and write.
	IOTimeout time.Duration
}

// Connect returns a client for cfg once a ping succeeds.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	dial := cfg.DialTimeout
	if dial <= 0 {
		dial = defaultDialTimeout
	}
	ioTimeout := cfg.IOTimeout
	if ioTimeout <= 0 {
		ioTimeout = defaultIOTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  dial,
		ReadTimeout:  ioTimeout,
		WriteTimeout: ioTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, dial)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}
	return client, nil
}
