package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/user-manager/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login authenticates a user and returns a JWT token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /login [post]
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, loginResponse{Token: token})
}

// Me returns the claims of the calling token.
//
// @Summary      Current identity
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  meResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, meResponse{
		Username:  claims.Subject,
		UserID:    claims.UserID,
		Role:      claims.Role,
		ExpiresAt: claims.ExpiresAt,
	})
}
