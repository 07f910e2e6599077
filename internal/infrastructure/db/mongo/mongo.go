package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const defaultTimeout = 10 * time.Second

// Config holds the credential store connection settings.
type Config struct {
	URI      string
	Database string
	AppName  string
	Timeout  time.Duration
}

// Connect opens a client, pings the primary and returns the client together
// with the configured database. Timeout bounds both server selection and the
// ping and defaults to defaultTimeout.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(timeout)
	if cfg.AppName != "" {
		opts.SetAppName(cfg.AppName)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("mongo ping %s: %w", cfg.Database, err)
	}

	return client, client.Database(cfg.Database), nil
}

// EnsureIndexes creates the unique indexes the repositories rely on to
// report duplicates: users.username, users.email (when set) and roles.name.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(usersCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true),
		},
		{
			Keys: bson.D{{Key: "role_id", Value: 1}},
		},
	})
	if err != nil {
		return fmt.Errorf("users indexes: %w", err)
	}

	_, err = db.Collection(rolesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("roles indexes: %w", err)
	}
	return nil
}
