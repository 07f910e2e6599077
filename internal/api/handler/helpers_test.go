package handler

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

// serve runs h against a request and renders any returned error with echo's
// default error handler, which emits {"message": "..."}.
func serve(t *testing.T, h echo.HandlerFunc, method, path, body string, setup func(c echo.Context)) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req = httptest.NewRequest(method, path, nil)
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if setup != nil {
		setup(c)
	}

	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("invalid json %q: %v", rec.Body.String(), err)
	}
}
