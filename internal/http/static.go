package http

import (
	nethttp "net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"inkwell/backend/internal/logger"
)

// assetsPrefix holds content-hashed bundles emitted by the client build.
const assetsPrefix = "assets/"

// registerStatic serves the single page client from dir. Unknown paths fall
// back to index.html so client-side routes survive a reload.
func registerStatic(e *echo.Echo, dir string) {
	if dir == "" {
		return
	}
	indexPath := filepath.Join(dir, "index.html")
	info, err := os.Stat(indexPath)
	if err != nil || info.IsDir() {
		logger.Warn("static index missing", "module", "http", "action", "request", "resource", "static", "result", "failed", "path", indexPath)
		return
	}

	logger.Info("static assets enabled", "module", "http", "action", "request", "resource", "static", "result", "ok", "dir", dir)

	fileServer := nethttp.FileServer(nethttp.Dir(dir))

	serveIndex := func(c echo.Context) error {
		c.Response().Header().Set("Cache-Control", "no-cache")
		return c.File(indexPath)
	}

	e.GET("/*", func(c echo.Context) error {
		requestPath := c.Request().URL.Path
		if requestPath == "/api" || strings.HasPrefix(requestPath, "/api/") {
			return echo.ErrNotFound
		}

		cleanPath := strings.TrimPrefix(path.Clean(requestPath), "/")
		if cleanPath == "." || cleanPath == "" || cleanPath == "index.html" {
			return serveIndex(c)
		}

		candidate := filepath.Join(dir, filepath.FromSlash(cleanPath))
		fileInfo, err := os.Stat(candidate)
		if err == nil && !fileInfo.IsDir() {
			if strings.HasPrefix(cleanPath, assetsPrefix) {
				c.Response().Header().Set("Cache-Control", "public, max-age=31536000, immutable")
			}
			logger.Debug("static file served", "module", "http", "action", "fetch", "resource", "static", "result", "ok", "path", requestPath)
			fileServer.ServeHTTP(c.Response(), c.Request())
			return nil
		}

		// Missing hashed assets are real 404s, not client routes.
		if strings.HasPrefix(cleanPath, assetsPrefix) {
			return echo.ErrNotFound
		}

		logger.Debug("static fallback", "module", "http", "action", "fetch", "resource", "static", "result", "ok", "path", requestPath)
		return serveIndex(c)
	})
}
