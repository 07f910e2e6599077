package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/99minutos/user-manager/internal/api/handler"
)

const internalErrorMessage = "internal server error"

type errorResponse struct {
	Message string `json:"message"`
}

// NewHTTPErrorHandler renders every error as {"message": "..."}.
// Echo errors keep their status, domain errors are mapped by
// handler.StatusFor, and anything else becomes a logged 500 whose cause is
// never sent to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := classify(err)
		if code >= http.StatusInternalServerError {
			log.Error().
				Err(err).
				Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
				Str("method", c.Request().Method).
				Str("route", c.Path()).
				Int("status", code).
				Msg("request failed")
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, errorResponse{Message: msg})
	}
}

func classify(err error) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Code >= http.StatusInternalServerError {
			return he.Code, internalErrorMessage
		}
		return he.Code, fmt.Sprint(he.Message)
	}
	if code, msg, ok := handler.StatusFor(err); ok {
		return code, msg
	}
	return http.StatusInternalServerError, internalErrorMessage
}
