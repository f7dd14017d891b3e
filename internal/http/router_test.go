package http

import (
	"net"
	nethttp "net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"inkwell/backend/internal/handler"
	"inkwell/backend/internal/model"
	"inkwell/backend/internal/service"
	svcmock "inkwell/backend/internal/service/mock"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type routerFixture struct {
	e       *echo.Echo
	auth    *svcmock.MockAuthService
	users   *svcmock.MockUserService
	contact *svcmock.MockContactService
}

func newRouterFixture(t *testing.T, cfg RouterConfig) *routerFixture {
	ctrl := gomock.NewController(t)
	f := &routerFixture{
		auth:    svcmock.NewMockAuthService(ctrl),
		users:   svcmock.NewMockUserService(ctrl),
		contact: svcmock.NewMockContactService(ctrl),
	}
	h := Handlers{
		Auth:         handler.NewAuthHandler(f.auth),
		Users:        handler.NewUserHandler(f.users),
		Blog:         handler.NewBlogHandler(svcmock.NewMockBlogService(ctrl)),
		Translations: handler.NewTranslationHandler(svcmock.NewMockTranslationService(ctrl)),
		Content:      handler.NewContentHandler(svcmock.NewMockContentService(ctrl)),
		Subscription: handler.NewSubscriptionHandler(svcmock.NewMockSubscriptionService(ctrl)),
		Contact:      handler.NewContactHandler(f.contact),
		Settings:     handler.NewSettingsHandler(svcmock.NewMockSettingsService(ctrl)),
		Import:       handler.NewImportHandler(svcmock.NewMockImportService(ctrl)),
	}
	f.e = NewRouter(h, f.auth, cfg)
	return f
}

func (f *routerFixture) do(method, target, token, body string) *httptest.ResponseRecorder {
	var req *nethttp.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func TestRouterRequiresAuthentication(t *testing.T) {
	f := newRouterFixture(t, RouterConfig{})
	f.auth.EXPECT().Authenticate(gomock.Any(), "bad").Return(model.User{}, service.ErrInvalidToken)

	rec := f.do(nethttp.MethodGet, "/api/posts", "", "")
	require.Equal(t, nethttp.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"error":"missing authentication"}`, rec.Body.String())

	rec = f.do(nethttp.MethodGet, "/api/posts", "bad", "")
	require.Equal(t, nethttp.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"error":"invalid token"}`, rec.Body.String())
}

func TestRouterAuthenticatesCookie(t *testing.T) {
	f := newRouterFixture(t, RouterConfig{})
	user := model.User{ID: 5, Email: "a@example.com", Role: model.RoleUser}
	f.auth.EXPECT().Authenticate(gomock.Any(), "cookie-token").Return(user, nil)
	f.auth.EXPECT().Me(gomock.Any(), int64(5)).Return(user, nil)

	req := httptest.NewRequest(nethttp.MethodGet, "/api/auth/me", nil)
	req.AddCookie(&nethttp.Cookie{Name: handler.AuthCookieName, Value: "cookie-token"})
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	require.Equal(t, nethttp.StatusOK, rec.Code, rec.Body.String())
	require.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestRouterAdminGuard(t *testing.T) {
	f := newRouterFixture(t, RouterConfig{})
	f.auth.EXPECT().Authenticate(gomock.Any(), "user-token").Return(model.User{ID: 5, Role: model.RoleUser}, nil)
	f.auth.EXPECT().Authenticate(gomock.Any(), "admin-token").Return(model.User{ID: 1, Role: model.RoleAdmin}, nil)
	f.users.EXPECT().ListUsers(gomock.Any(), "", "", service.Page{}).Return(service.UserPage{}, nil)

	rec := f.do(nethttp.MethodGet, "/api/admin/users", "user-token", "")
	require.Equal(t, nethttp.StatusForbidden, rec.Code)

	rec = f.do(nethttp.MethodGet, "/api/admin/users", "admin-token", "")
	require.Equal(t, nethttp.StatusOK, rec.Code, rec.Body.String())
}

func TestRouterContactRateLimit(t *testing.T) {
	f := newRouterFixture(t, RouterConfig{ContactRate: 0.001, ContactBurst: 1})
	f.contact.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(model.ContactMessage{ID: 1}, nil).Times(1)

	body := `{"name":"Ada","email":"ada@example.com","message":"Hi"}`
	rec := f.do(nethttp.MethodPost, "/api/contact", "", body)
	require.Equal(t, nethttp.StatusCreated, rec.Code, rec.Body.String())

	rec = f.do(nethttp.MethodPost, "/api/contact", "", body)
	require.Equal(t, nethttp.StatusTooManyRequests, rec.Code)
	require.JSONEq(t, `{"error":"too many requests"}`, rec.Body.String())
}

func TestRouterContactRateLimitIgnoresForwardedFor(t *testing.T) {
	f := newRouterFixture(t, RouterConfig{ContactRate: 0.001, ContactBurst: 1})
	f.contact.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(model.ContactMessage{ID: 1}, nil).Times(1)

	body := `{"name":"Ada","email":"ada@example.com","message":"Hi"}`
	codes := make([]int, 0, 3)
	for _, xff := range []string{"203.0.113.1", "203.0.113.2", "203.0.113.3"} {
		req := httptest.NewRequest(nethttp.MethodPost, "/api/contact", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		req.Header.Set(echo.HeaderXForwardedFor, xff)
		req.Header.Set(echo.HeaderXRealIP, xff)
		rec := httptest.NewRecorder()
		f.e.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	require.Equal(t, []int{nethttp.StatusCreated, nethttp.StatusTooManyRequests, nethttp.StatusTooManyRequests}, codes)
}

func TestRouterTrustedProxyForwardedFor(t *testing.T) {
	_, proxyNet, err := net.ParseCIDR("192.0.2.0/24")
	require.NoError(t, err)
	f := newRouterFixture(t, RouterConfig{ContactRate: 0.001, ContactBurst: 1, TrustedProxies: []*net.IPNet{proxyNet}})
	f.contact.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(model.ContactMessage{ID: 1}, nil).Times(2)

	body := `{"name":"Ada","email":"ada@example.com","message":"Hi"}`
	send := func(xff string) int {
		req := httptest.NewRequest(nethttp.MethodPost, "/api/contact", strings.NewReader(body))
		req.RemoteAddr = "192.0.2.10:4000"
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		req.Header.Set(echo.HeaderXForwardedFor, xff)
		rec := httptest.NewRecorder()
		f.e.ServeHTTP(rec, req)
		return rec.Code
	}

	// Behind a trusted proxy each forwarded client has its own budget.
	require.Equal(t, nethttp.StatusCreated, send("203.0.113.1"))
	require.Equal(t, nethttp.StatusCreated, send("203.0.113.2"))
	require.Equal(t, nethttp.StatusTooManyRequests, send("203.0.113.2"))
}

func TestRouterServesSwaggerDocs(t *testing.T) {
	f := newRouterFixture(t, RouterConfig{})

	rec := f.do(nethttp.MethodGet, "/swagger/doc.json", "", "")
	require.Equal(t, nethttp.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"/projects/{id}/article"`)
	require.Contains(t, rec.Body.String(), `"BearerAuth"`)

	rec = f.do(nethttp.MethodGet, "/swagger/index.html", "", "")
	require.Equal(t, nethttp.StatusOK, rec.Code)
}

func TestRouterUnknownAPIRoute(t *testing.T) {
	f := newRouterFixture(t, RouterConfig{})
	f.auth.EXPECT().Authenticate(gomock.Any(), "token").Return(model.User{ID: 5, Role: model.RoleUser}, nil)

	// Unknown paths under /api are behind authentication like the rest.
	rec := f.do(nethttp.MethodGet, "/api/nope", "", "")
	require.Equal(t, nethttp.StatusUnauthorized, rec.Code)

	rec = f.do(nethttp.MethodGet, "/api/nope", "token", "")
	require.Equal(t, nethttp.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"error":"not found"}`, rec.Body.String())

	rec = f.do(nethttp.MethodGet, "/api/health", "", "")
	require.Equal(t, nethttp.StatusOK, rec.Code)
}

func TestRouterServesSinglePageClient(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>inkwell</html>"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "assets"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "assets", "app-1a2b.js"), []byte("console.log(1)"), 0o644))

	f := newRouterFixture(t, RouterConfig{StaticDir: dir})

	rec := f.do(nethttp.MethodGet, "/projects/12/outline", "", "")
	require.Equal(t, nethttp.StatusOK, rec.Code)
	require.Equal(t, "<html>inkwell</html>", rec.Body.String())
	require.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))

	rec = f.do(nethttp.MethodGet, "/assets/app-1a2b.js", "", "")
	require.Equal(t, nethttp.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get("Cache-Control"), "immutable")

	rec = f.do(nethttp.MethodGet, "/assets/missing.js", "", "")
	require.Equal(t, nethttp.StatusNotFound, rec.Code)

	rec = f.do(nethttp.MethodGet, "/api/unknown", "", "")
	require.NotEqual(t, "<html>inkwell</html>", rec.Body.String())
}
