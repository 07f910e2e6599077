package handlers

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthHandler serves the liveness probe. It never touches dependencies.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// Check probes one dependency.
type Check func(ctx context.Context) error

// MongoCheck pings the server and runs a ping command on db.
func MongoCheck(db *mongo.Database) Check {
	return func(ctx context.Context) error {
		if err := db.Client().Ping(ctx, nil); err != nil {
			return err
		}
		return db.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
	}
}

// RedisCheck pings the Redis server.
func RedisCheck(rdb *redis.Client) Check {
	return func(ctx context.Context) error {
		return rdb.Ping(ctx).Err()
	}
}

// HealthDependenciesHandler serves the readiness probe: every named check
// must pass, in name order, within one shared deadline.
type HealthDependenciesHandler struct {
	checks  map[string]Check
	timeout time.Duration
}

func NewHealthDependenciesHandler(checks map[string]Check) *HealthDependenciesHandler {
	return &HealthDependenciesHandler{
		checks:  checks,
		timeout: 3 * time.Second,
	}
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

func (h *HealthDependenciesHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	deps := make(map[string]dependencyStatus, len(names))
	healthy := true
	for _, name := range names {
		if err := h.checks[name](ctx); err != nil {
			deps[name] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
			healthy = false
			continue
		}
		deps[name] = dependencyStatus{Status: "ok"}
	}

	status := "ok"
	httpStatus := http.StatusOK
	if !healthy {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, readinessResponse{
		Status:       status,
		Dependencies: deps,
	})
}
