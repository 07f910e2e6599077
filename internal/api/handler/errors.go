package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/user-manager/internal/core/domain"
)

// StatusFor maps a domain error to its HTTP status and client message.
// ok is false for errors that are not part of the domain contract.
func StatusFor(err error) (code int, msg string, ok bool) {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, domain.ErrInvalidCredentials.Error(), true
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, domain.ErrInvalidToken.Error(), true
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, domain.ErrForbidden.Error(), true
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, domain.ErrUserNotFound.Error(), true
	case errors.Is(err, domain.ErrRoleNotFound):
		return http.StatusNotFound, domain.ErrRoleNotFound.Error(), true
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, domain.ErrUserExists.Error(), true
	case errors.Is(err, domain.ErrRoleExists):
		return http.StatusConflict, domain.ErrRoleExists.Error(), true
	case errors.Is(err, domain.ErrRoleInUse):
		return http.StatusConflict, domain.ErrRoleInUse.Error(), true
	case errors.Is(err, domain.ErrUnknownRole):
		return http.StatusUnprocessableEntity, domain.ErrUnknownRole.Error(), true
	}
	return 0, "", false
}

// toHTTPError converts known domain errors into echo errors and passes
// everything else through for the central error handler to log.
func toHTTPError(err error) error {
	if code, msg, ok := StatusFor(err); ok {
		return echo.NewHTTPError(code, msg)
	}
	return err
}
