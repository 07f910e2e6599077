package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/user-manager/internal/core/domain"
)

// RBAC enforces role-based access control on the claims set by Auth.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := Claims(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrInvalidToken.Error())
			}
			if !claims.HasRole(allowedRoles...) {
				return echo.NewHTTPError(http.StatusForbidden, domain.ErrForbidden.Error())
			}
			return next(c)
		}
	}
}
