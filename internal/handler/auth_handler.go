package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"inkwell/backend/internal/model"
	"inkwell/backend/internal/service"
)

// AuthCookieName is read by the auth middleware as a fallback to the
// Authorization header.
const AuthCookieName = "inkwell_auth"

const userContextKey = "auth.user"

// SetCurrentUser stores the authenticated user on the request context.
func SetCurrentUser(c echo.Context, user model.User) {
	c.Set(userContextKey, user)
}

// CurrentUser returns the user stored by the auth middleware.
func CurrentUser(c echo.Context) (model.User, bool) {
	user, ok := c.Get(userContextKey).(model.User)
	return user, ok
}

// currentUserID returns zero outside protected routes; no row is owned by zero.
func currentUserID(c echo.Context) int64 {
	user, _ := CurrentUser(c)
	return user.ID
}

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(service service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Request/Response types

type authStatusResponse struct {
	Exists bool `json:"exists"`
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type profileRequest struct {
	FullName string `json:"fullName"`
}

type passwordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type authResponse struct {
	Token     string       `json:"token"`
	ExpiresAt string       `json:"expiresAt"`
	User      userResponse `json:"user"`
}

type userResponse struct {
	ID          string  `json:"id"`
	Email       string  `json:"email"`
	FullName    string  `json:"fullName"`
	Role        string  `json:"role"`
	AvatarURL   string  `json:"avatarUrl"`
	LastLoginAt *string `json:"lastLoginAt,omitempty"`
	CreatedAt   string  `json:"createdAt"`
}

// RegisterPublicRoutes registers routes that don't require authentication.
func (h *AuthHandler) RegisterPublicRoutes(g *echo.Group) {
	g.GET("/auth/status", h.GetStatus)
	g.POST("/auth/register", h.Register)
	g.POST("/auth/login", h.Login)
}

// RegisterProtectedRoutes registers routes that require authentication.
func (h *AuthHandler) RegisterProtectedRoutes(g *echo.Group) {
	g.GET("/auth/me", h.GetCurrentUser)
	g.PUT("/auth/profile", h.UpdateProfile)
	g.PUT("/auth/password", h.ChangePassword)
	g.POST("/auth/logout", h.Logout)
}

// GetStatus reports whether any account exists, so the client can offer
// first-run registration of the admin.
// @Summary Account status
// @Description Report whether any account exists
// @Tags auth
// @Produce json
// @Success 200 {object} authStatusResponse
// @Router /auth/status [get]
func (h *AuthHandler) GetStatus(c echo.Context) error {
	exists, err := h.service.HasUsers(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, authStatusResponse{Exists: exists})
}

// Register creates a new account and signs it in.
// @Summary Register
// @Description Create an account and sign it in. The first account becomes admin
// @Tags auth
// @Accept json
// @Produce json
// @Param user body registerRequest true "Registration request"
// @Success 201 {object} authResponse
// @Failure 400 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	resp, err := h.service.Register(c.Request().Context(), req.Email, req.Password, req.FullName)
	if err != nil {
		return writeServiceError(c, err)
	}

	// Set auth cookie for browser resource requests (exports, etc.)
	setAuthCookie(c, resp.Token)
	return c.JSON(http.StatusCreated, toAuthResponse(resp))
}

// Login authenticates a user and returns a JWT token.
// @Summary Log in
// @Description Authenticate with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body loginRequest true "Login request"
// @Success 200 {object} authResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	resp, err := h.service.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return writeServiceError(c, err)
	}

	setAuthCookie(c, resp.Token)
	return c.JSON(http.StatusOK, toAuthResponse(resp))
}

// GetCurrentUser returns the authenticated user.
// @Summary Current user
// @Description Get the authenticated user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} userResponse
// @Failure 401 {object} errorResponse
// @Router /auth/me [get]
func (h *AuthHandler) GetCurrentUser(c echo.Context) error {
	user, err := h.service.Me(c.Request().Context(), currentUserID(c))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// @Summary Update profile
// @Description Change the full name of the authenticated user
// @Tags auth
// @Accept json
// @Produce json
// @Param profile body profileRequest true "Profile update"
// @Security BearerAuth
// @Success 200 {object} userResponse
// @Failure 400 {object} errorResponse
// @Router /auth/profile [put]
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	var req profileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	user, err := h.service.UpdateProfile(c.Request().Context(), currentUserID(c), req.FullName)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// @Summary Change password
// @Description Change the password of the authenticated user
// @Tags auth
// @Accept json
// @Produce json
// @Param password body passwordRequest true "Password change"
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Router /auth/password [put]
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	var req passwordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	if err := h.service.ChangePassword(c.Request().Context(), currentUserID(c), req.CurrentPassword, req.NewPassword); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Logout clears the authentication cookie.
// @Summary Log out
// @Description Clear the authentication cookie
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} messageResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	clearAuthCookie(c)
	return c.JSON(http.StatusOK, messageResponse{Message: "logged out"})
}

func toAuthResponse(resp *service.AuthResponse) authResponse {
	return authResponse{
		Token:     resp.Token,
		ExpiresAt: formatTime(resp.ExpiresAt),
		User:      toUserResponse(resp.User),
	}
}

func toUserResponse(user model.User) userResponse {
	return userResponse{
		ID:          formatID(user.ID),
		Email:       user.Email,
		FullName:    user.FullName,
		Role:        user.Role,
		AvatarURL:   service.GravatarURL(user.Email),
		LastLoginAt: formatOptionalTime(user.LastLoginAt),
		CreatedAt:   formatTime(user.CreatedAt),
	}
}

// setAuthCookie sets the authentication cookie for browser resource requests.
func setAuthCookie(c echo.Context, token string) {
	cookie := &http.Cookie{
		Name:     AuthCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   c.Request().TLS != nil,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(service.TokenTTL.Seconds()),
	}
	c.SetCookie(cookie)
}

// clearAuthCookie clears the authentication cookie.
func clearAuthCookie(c echo.Context) {
	cookie := &http.Cookie{
		Name:     AuthCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	}
	c.SetCookie(cookie)
}
