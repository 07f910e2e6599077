// @title                      User Manager API
// @version                    1.0
// @description                Account management with credential login and signed bearer tokens.
// @BasePath                   /
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/99minutos/user-manager/internal/api"
	"github.com/99minutos/user-manager/internal/core/service"
	"github.com/99minutos/user-manager/internal/infrastructure/config"
	mongodb "github.com/99minutos/user-manager/internal/infrastructure/db/mongo"
	redisdb "github.com/99minutos/user-manager/internal/infrastructure/db/redis"
	"github.com/99minutos/user-manager/internal/infrastructure/http/handlers"
	"github.com/99minutos/user-manager/internal/infrastructure/queue"
	"github.com/99minutos/user-manager/internal/infrastructure/security"
	"github.com/99minutos/user-manager/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		// The logger is not configured yet; fall back to defaults to report it.
		bootLog := logger.Init(logger.Options{})
		bootLog.Fatal().Err(err).Msg("load config")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Development(),
	})

	signing, err := cfg.Signing()
	if err != nil {
		log.Fatal().Err(err).Msg("signing config")
	}

	// --- Storage ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		AppName:  logger.DefaultService,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect mongo")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("ensure mongo indexes")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect redis")
	}
	defer rdb.Close()

	userRepo := mongodb.NewUserRepository(db)
	roleRepo := mongodb.NewRoleRepository(db)
	roleCache := redisdb.NewRoleCache(rdb, cfg.Redis.RoleCacheTTL)

	// --- Security ---
	// The pool outlives the signal context so requests still draining in
	// e.Shutdown can hash and verify passwords.
	poolCtx, stopPool := context.WithCancel(context.Background())
	defer stopPool()
	hashPool := queue.NewPool(cfg.Hash.Workers)
	hashPool.Start(poolCtx)
	hasher := security.NewBcryptHasher(cfg.Hash.Cost, hashPool)
	tokenIssuer := security.NewTokenIssuer(signing)
	tokenValidator := security.NewTokenValidator(signing)

	// --- Services ---
	resolver := service.NewRoleResolver(roleRepo, roleCache, logger.Component("roles"))
	authService, err := service.NewAuthService(ctx, userRepo, hasher, resolver, tokenIssuer, logger.Component("auth"))
	if err != nil {
		log.Fatal().Err(err).Msg("init auth service")
	}
	userService := service.NewUserService(userRepo, roleRepo, resolver, hasher, logger.Component("users"))
	roleService := service.NewRoleService(roleRepo, userRepo, roleCache, logger.Component("roles"))

	if err := service.Bootstrap(ctx, roleRepo, userRepo, hasher, service.SeedAdmin{
		Username: cfg.Seed.AdminUsername,
		Password: cfg.Seed.AdminPassword,
	}, logger.Component("bootstrap")); err != nil {
		log.Fatal().Err(err).Msg("bootstrap")
	}

	// --- HTTP ---
	e := api.NewRouter(api.Dependencies{
		AuthService:    authService,
		UserService:    userService,
		RoleService:    roleService,
		TokenValidator: tokenValidator,
		HealthChecks: map[string]handlers.Check{
			"mongo": handlers.MongoCheck(db),
			"redis": handlers.RedisCheck(rdb),
		},
		Logger: logger.Component("http"),
	})

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		log.Info().
			Str("port", cfg.Port).
			Int("hash_workers", hashPool.Workers()).
			Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		log.Info().Msg("shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	err = group.Wait()
	stopPool()
	if err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		return
	}
	log.Info().Msg("server stopped")
}
