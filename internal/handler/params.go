package handler

import (
	"errors"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"inkwell/backend/internal/service"
)

var errInvalidID = errors.New("invalid id")

func parseIDParam(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

// parsePage reads limit and offset query parameters. Missing or malformed
// values are left to the service defaults.
func parsePage(c echo.Context) service.Page {
	var p service.Page
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil {
		p.Limit = v
	}
	if v, err := strconv.Atoi(c.QueryParam("offset")); err == nil {
		p.Offset = v
	}
	return p
}

func parseIntQuery(c echo.Context, name string) int {
	v, _ := strconv.Atoi(c.QueryParam(name))
	return v
}

// parseBoolQuery returns nil when the parameter is absent or not a boolean.
func parseBoolQuery(c echo.Context, name string) *bool {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}

// splitList splits a comma separated query value, dropping empty items.
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
