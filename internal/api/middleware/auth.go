package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/user-manager/internal/api/metrics"
	"github.com/99minutos/user-manager/internal/core/domain"
	"github.com/99minutos/user-manager/internal/core/ports"
)

// ClaimsKey is the echo context key holding the validated domain.TokenClaims.
const ClaimsKey = "claims"

// unauthorized is returned for every auth failure so callers cannot tell a
// missing header from an expired or tampered token.
func unauthorized() error {
	return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrInvalidToken.Error())
}

// Auth validates the bearer token with validator before any protected
// handler runs and stores the typed claims in the context.
func Auth(validator ports.TokenValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				metrics.TokenRejectionsTotal.WithLabelValues("missing_header").Inc()
				return unauthorized()
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
				metrics.TokenRejectionsTotal.WithLabelValues("bad_header").Inc()
				return unauthorized()
			}

			claims, err := validator.Validate(parts[1])
			if err != nil {
				metrics.TokenRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return unauthorized()
			}

			c.Set(ClaimsKey, claims)
			return next(c)
		}
	}
}

// Claims returns the claims stored by Auth, if any.
func Claims(c echo.Context) (domain.TokenClaims, bool) {
	claims, ok := c.Get(ClaimsKey).(domain.TokenClaims)
	return claims, ok
}
