package http

import (
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "inkwell/backend/docs"
	"inkwell/backend/internal/config"
	"inkwell/backend/internal/handler"
	"inkwell/backend/internal/service"
)

// Handlers groups the API handlers mounted by NewRouter.
type Handlers struct {
	Auth         *handler.AuthHandler
	Users        *handler.UserHandler
	Blog         *handler.BlogHandler
	Translations *handler.TranslationHandler
	Content      *handler.ContentHandler
	Subscription *handler.SubscriptionHandler
	Contact      *handler.ContactHandler
	Settings     *handler.SettingsHandler
	Import       *handler.ImportHandler
}

type RouterConfig struct {
	StaticDir string
	// AllowOrigins enables CORS for a separately hosted client.
	AllowOrigins []string
	// ContactRate is the per-IP contact form rate in requests per second.
	ContactRate  float64
	ContactBurst int
	// TrustedProxies are the reverse proxies allowed to set X-Forwarded-For.
	TrustedProxies []*net.IPNet
}

func NewRouter(h Handlers, authService service.AuthService, cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = httpErrorHandler
	e.IPExtractor = ipExtractor(cfg.TrustedProxies)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	if len(cfg.AllowOrigins) > 0 {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins:     cfg.AllowOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
			AllowCredentials: true,
			MaxAge:           3600,
		}))
	}
	e.Use(RequestLoggerMiddleware())

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")
	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "version": config.AppVersion})
	})

	// Public routes
	h.Auth.RegisterPublicRoutes(api)
	h.Subscription.RegisterPublicRoutes(api)
	contactBurst := cfg.ContactBurst
	if contactBurst <= 0 {
		contactBurst = 3
	}
	if cfg.ContactRate > 0 {
		h.Contact.RegisterPublicRoutes(api, RateLimitMiddleware(cfg.ContactRate, contactBurst))
	} else {
		h.Contact.RegisterPublicRoutes(api)
	}

	// Protected routes
	protected := api.Group("", JWTAuthMiddleware(authService))
	h.Auth.RegisterProtectedRoutes(protected)
	h.Subscription.RegisterProtectedRoutes(protected)
	h.Blog.RegisterRoutes(protected)
	h.Translations.RegisterRoutes(protected)
	h.Content.RegisterRoutes(protected)
	h.Import.RegisterRoutes(protected)

	// Admin routes
	admin := protected.Group("/admin", AdminOnlyMiddleware())
	h.Users.RegisterRoutes(admin)
	h.Subscription.RegisterAdminRoutes(admin)
	h.Contact.RegisterAdminRoutes(admin)
	h.Settings.RegisterRoutes(admin)

	registerStatic(e, cfg.StaticDir)

	return e
}

// ipExtractor uses the peer address unless trusted proxies are configured.
// Forwarding headers from anyone else are ignored, so clients cannot pick
// their own rate limit key.
func ipExtractor(trusted []*net.IPNet) echo.IPExtractor {
	if len(trusted) == 0 {
		return echo.ExtractIPDirect()
	}
	opts := []echo.TrustOption{
		echo.TrustLoopback(false),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(false),
	}
	for _, n := range trusted {
		opts = append(opts, echo.TrustIPRange(n))
	}
	return echo.ExtractIPFromXFFHeader(opts...)
}

// httpErrorHandler renders router and middleware errors with the same
// {"error": ...} body the handlers use.
func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := "internal error"
	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		if msg, ok := he.Message.(string); ok && strings.TrimSpace(msg) != "" {
			message = msg
		} else if text := http.StatusText(status); text != "" {
			message = text
		}
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	_ = c.JSON(status, map[string]string{"error": strings.ToLower(message)})
}
