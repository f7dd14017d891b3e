package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"inkwell/backend/internal/handler"
	"inkwell/backend/internal/logger"
	"inkwell/backend/internal/model"
	"inkwell/backend/internal/service"
)

// RequestLoggerMiddleware logs HTTP requests using logger.
func RequestLoggerMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			status := res.Status
			result := "ok"
			if status >= 400 {
				result = "failed"
			}

			attrs := []any{
				"module", "http",
				"action", "request",
				"resource", "http",
				"result", result,
				"method", req.Method,
				"path", req.URL.Path,
				"status_code", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"remote_ip", c.RealIP(),
				"request_id", res.Header().Get(echo.HeaderXRequestID),
			}
			if user, ok := handler.CurrentUser(c); ok {
				attrs = append(attrs, "user_id", user.ID)
			}

			switch {
			case status >= 500:
				logger.Error("http request", attrs...)
			case status >= 400:
				logger.Warn("http request", attrs...)
			default:
				logger.Debug("http request", attrs...)
			}
			return nil
		}
	}
}

// JWTAuthMiddleware validates the token and stores its user on the context.
// It checks both Authorization header (for API calls) and Cookie (for browser
// downloads like exports).
func JWTAuthMiddleware(authService service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c.Request())
			if token == "" {
				if cookie, err := c.Cookie(handler.AuthCookieName); err == nil && cookie.Value != "" {
					token = cookie.Value
				}
			}

			if token == "" {
				logAuthFailure(c, "auth missing")
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "missing authentication",
				})
			}

			user, err := authService.Authenticate(c.Request().Context(), token)
			if err != nil {
				logAuthFailure(c, "auth invalid")
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "invalid token",
				})
			}

			handler.SetCurrentUser(c, user)
			return next(c)
		}
	}
}

// AdminOnlyMiddleware must run after JWTAuthMiddleware.
func AdminOnlyMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := handler.CurrentUser(c)
			if !ok || user.Role != model.RoleAdmin {
				logAuthFailure(c, "admin required")
				return c.JSON(http.StatusForbidden, map[string]string{
					"error": "admin access required",
				})
			}
			return next(c)
		}
	}
}

// RateLimitMiddleware limits requests per client IP to perSecond with a
// burst of burst. Exhausted clients get 429.
func RateLimitMiddleware(perSecond float64, burst int) echo.MiddlewareFunc {
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(perSecond),
		Burst:     burst,
		ExpiresIn: 10 * time.Minute,
	})
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			logger.Warn("rate limited", "module", "http", "action", "request", "resource", "rate_limit", "result", "failed", "path", c.Request().URL.Path, "remote_ip", identifier)
			return c.JSON(http.StatusTooManyRequests, map[string]string{
				"error": "too many requests",
			})
		},
	})
}

func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

func logAuthFailure(c echo.Context, msg string) {
	logger.Warn(msg,
		"module", "http",
		"action", "request",
		"resource", "auth",
		"result", "failed",
		"method", c.Request().Method,
		"path", c.Request().URL.Path,
		"remote_ip", c.RealIP(),
	)
}
