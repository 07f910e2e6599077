package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"

	"github.com/99minutos/user-manager/internal/core/domain"
	"github.com/99minutos/user-manager/internal/infrastructure/security"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWT   JWTConfig
	Hash  HashConfig
	Mongo MongoConfig
	Redis RedisConfig
	Seed  SeedConfig
}

type JWTConfig struct {
	SecretKey     string `env:"JWT_SECRET_KEY"`
	Issuer        string `env:"JWT_ISSUER,         default=app"`
	Audience      string `env:"JWT_AUDIENCE,       default=users"`
	ExpiryMinutes int    `env:"JWT_EXPIRY_MINUTES, default=60"`
}

type HashConfig struct {
	Cost    int `env:"BCRYPT_COST,  default=10"`
	Workers int `env:"HASH_WORKERS, default=0"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=user_manager"`
}

type RedisConfig struct {
	Addr         string        `env:"REDIS_ADDR,     default=localhost:6379"`
	Password     string        `env:"REDIS_PASSWORD"`
	DB           int           `env:"REDIS_DB,       default=0"`
	RoleCacheTTL time.Duration `env:"ROLE_CACHE_TTL, default=5m"`
}

type SeedConfig struct {
	AdminUsername string `env:"SEED_ADMIN_USERNAME"`
	AdminPassword string `env:"SEED_ADMIN_PASSWORD"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return LoadWith(ctx, envconfig.OsLookuper())
}

// LoadWith reads configuration through lookuper and validates it. A missing
// JWT secret returns domain.ErrMissingSigningKey.
func LoadWith(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks settings the service cannot run without.
func (c *Config) Validate() error {
	if c.JWT.SecretKey == "" {
		return fmt.Errorf("config: %w", domain.ErrMissingSigningKey)
	}
	if c.JWT.ExpiryMinutes <= 0 {
		return fmt.Errorf("config: JWT_EXPIRY_MINUTES must be positive, got %d", c.JWT.ExpiryMinutes)
	}
	return nil
}

// Signing builds the immutable token signing settings.
func (c *Config) Signing() (security.SigningConfig, error) {
	return security.NewSigningConfig(
		c.JWT.SecretKey,
		c.JWT.Issuer,
		c.JWT.Audience,
		time.Duration(c.JWT.ExpiryMinutes)*time.Minute,
	)
}

// Development reports whether the service runs in a local environment.
func (c *Config) Development() bool {
	return c.Env == "development"
}
