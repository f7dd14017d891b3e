package handler_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"inkwell/backend/internal/handler"
	"inkwell/backend/internal/model"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

var testUser = model.User{ID: 42, Email: "writer@example.com", FullName: "Writer", Role: model.RoleUser}

// newTestServer mounts routes under /api with testUser signed in.
func newTestServer(register func(g *echo.Group)) *echo.Echo {
	e := echo.New()
	g := e.Group("/api", func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			handler.SetCurrentUser(c, testUser)
			return next(c)
		}
	})
	register(g)
	return e
}

func doRequest(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func requireError(t *testing.T, rec *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	require.Equal(t, status, rec.Code, rec.Body.String())
	var body map[string]any
	decodeJSON(t, rec, &body)
	require.Equal(t, message, body["error"])
}
