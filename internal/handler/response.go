package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"inkwell/backend/internal/logger"
	"inkwell/backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

type quotaErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
	Limit int    `json:"limit"`
	Used  int    `json:"used"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// writeServiceError maps service sentinel errors to status codes. Messages of
// client errors are passed through; server errors are logged and hidden.
func writeServiceError(c echo.Context, err error) error {
	var quota *service.QuotaError
	switch {
	case errors.As(err, &quota):
		return c.JSON(http.StatusPaymentRequired, quotaErrorResponse{
			Error: quota.Error(),
			Kind:  quota.Kind,
			Limit: quota.Limit,
			Used:  quota.Used,
		})
	case errors.Is(err, service.ErrInvalid):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: clientMessage(err, service.ErrInvalid, "invalid request")})
	case errors.Is(err, service.ErrUnauthorized):
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: clientMessage(err, service.ErrUnauthorized, "unauthorized")})
	case errors.Is(err, service.ErrForbidden):
		return c.JSON(http.StatusForbidden, errorResponse{Error: clientMessage(err, service.ErrForbidden, "forbidden")})
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: "resource not found"})
	case errors.Is(err, service.ErrConflict):
		return c.JSON(http.StatusConflict, errorResponse{Error: clientMessage(err, service.ErrConflict, "conflict")})
	case errors.Is(err, service.ErrQuotaExceeded):
		return c.JSON(http.StatusPaymentRequired, errorResponse{Error: "quota exceeded"})
	case errors.Is(err, service.ErrUpstream):
		logger.Warn("upstream failure", "module", "handler", "action", "request", "resource", "upstream", "result", "failed", "path", c.Request().URL.Path, "error", err)
		return c.JSON(http.StatusBadGateway, errorResponse{Error: "upstream service failed"})
	default:
		logger.Error("request failed", "module", "handler", "action", "request", "resource", "http", "result", "failed", "path", c.Request().URL.Path, "error", err)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

// clientMessage strips the "<sentinel>: " prefix added by the service layer.
func clientMessage(err, sentinel error, fallback string) string {
	msg := err.Error()
	prefix := sentinel.Error() + ": "
	if i := strings.Index(msg, prefix); i >= 0 {
		if rest := msg[i+len(prefix):]; rest != "" {
			return rest
		}
	}
	return fallback
}

// Error returns a JSON error response with the given status and message
func Error(c echo.Context, status int, message string) error {
	return c.JSON(status, errorResponse{Error: message})
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func formatOptionalID(id *int64) *string {
	if id == nil {
		return nil
	}
	s := formatID(*id)
	return &s
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func formatOptionalTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}
