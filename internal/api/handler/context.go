package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/user-manager/internal/api/middleware"
	"github.com/99minutos/user-manager/internal/core/domain"
)

// ctxClaims extracts the claims injected by the Auth middleware. Their
// absence means the route was registered without Auth.
func ctxClaims(c echo.Context) (domain.TokenClaims, error) {
	claims, ok := middleware.Claims(c)
	if !ok || claims.Subject == "" {
		return domain.TokenClaims{}, echo.NewHTTPError(http.StatusUnauthorized, domain.ErrInvalidToken.Error())
	}
	return claims, nil
}
