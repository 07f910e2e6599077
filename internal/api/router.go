package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/99minutos/user-manager/docs"
	"github.com/99minutos/user-manager/internal/api/handler"
	"github.com/99minutos/user-manager/internal/api/middleware"
	"github.com/99minutos/user-manager/internal/core/domain"
	"github.com/99minutos/user-manager/internal/core/ports"
	"github.com/99minutos/user-manager/internal/infrastructure/http/handlers"
)

// Dependencies carries everything the router wires into handlers.
type Dependencies struct {
	AuthService    ports.AuthService
	UserService    ports.UserService
	RoleService    ports.RoleService
	TokenValidator ports.TokenValidator
	HealthChecks   map[string]handlers.Check
	Logger         zerolog.Logger
	// Registry receives the HTTP request metrics and backs /metrics.
	// Nil uses the Prometheus default registry.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Logger))
	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if deps.Registry != nil {
		registerer, gatherer = deps.Registry, deps.Registry
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "usermanager",
		Subsystem:  "http",
		Registerer: registerer,
	}))

	// --- Dependencies ---
	authHandler := handler.NewAuthHandler(deps.AuthService)
	userHandler := handler.NewUserHandler(deps.UserService)
	roleHandler := handler.NewRoleHandler(deps.RoleService)
	auth := middleware.Auth(deps.TokenValidator)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/login", authHandler.Login)
	e.POST("/api/auth/login", authHandler.Login)
	e.GET("/api/auth/me", authHandler.Me, auth)

	// --- Users (token required; writes need Admin) ---
	users := e.Group("/api/users", auth)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.POST("", userHandler.Create, adminOnly)
	users.PUT("/:id", userHandler.Update, adminOnly)
	users.DELETE("/:id", userHandler.Delete, adminOnly)

	// --- Roles (token required; writes need Admin) ---
	roles := e.Group("/api/roles", auth)
	roles.GET("", roleHandler.List)
	roles.GET("/:id", roleHandler.Get)
	roles.POST("", roleHandler.Create, adminOnly)
	roles.PUT("/:id", roleHandler.Update, adminOnly)
	roles.DELETE("/:id", roleHandler.Delete, adminOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps.HealthChecks)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Ops ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// requestLogger writes one structured line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			if v.Error != nil {
				evt = log.Warn().Err(v.Error)
			}
			evt.
				Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	})
}
