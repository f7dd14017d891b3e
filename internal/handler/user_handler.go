package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"inkwell/backend/internal/service"
)

// UserHandler serves account administration. Routes are mounted on the
// admin group.
type UserHandler struct {
	service service.UserService
}

func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type createUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

type updateRoleRequest struct {
	Role string `json:"role"`
}

type userListResponse struct {
	Users []userResponse `json:"users"`
	Total int            `json:"total"`
}

func (h *UserHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/users", h.List)
	g.POST("/users", h.Create)
	g.GET("/users/:id", h.Get)
	g.PUT("/users/:id/role", h.UpdateRole)
	g.DELETE("/users/:id", h.Delete)
}

// List returns accounts matching the optional q and role filters.
// @Summary List users
// @Tags admin
// @Produce json
// @Param q query string false "Search email or name"
// @Param role query string false "Filter by role"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Security BearerAuth
// @Success 200 {object} userListResponse
// @Failure 403 {object} errorResponse
// @Router /admin/users [get]
func (h *UserHandler) List(c echo.Context) error {
	page, err := h.service.ListUsers(c.Request().Context(), c.QueryParam("q"), c.QueryParam("role"), parsePage(c))
	if err != nil {
		return writeServiceError(c, err)
	}

	resp := userListResponse{Users: make([]userResponse, 0, len(page.Users)), Total: page.Total}
	for _, u := range page.Users {
		resp.Users = append(resp.Users, toUserResponse(u))
	}
	return c.JSON(http.StatusOK, resp)
}

// @Summary Get a user
// @Tags admin
// @Produce json
// @Param id path int true "User ID"
// @Security BearerAuth
// @Success 200 {object} userResponse
// @Failure 403 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /admin/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid id"})
	}

	user, err := h.service.GetUser(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// @Summary Create a user
// @Tags admin
// @Accept json
// @Produce json
// @Param user body createUserRequest true "User"
// @Security BearerAuth
// @Success 201 {object} userResponse
// @Failure 400 {object} errorResponse
// @Failure 403 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Router /admin/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	user, err := h.service.CreateUser(c.Request().Context(), service.CreateUserInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Role:     req.Role,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, toUserResponse(user))
}

// @Summary Change a user's role
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param role body updateRoleRequest true "Role"
// @Security BearerAuth
// @Success 200 {object} userResponse
// @Failure 400 {object} errorResponse
// @Failure 403 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /admin/users/{id}/role [put]
func (h *UserHandler) UpdateRole(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid id"})
	}
	var req updateRoleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	user, err := h.service.UpdateRole(c.Request().Context(), currentUserID(c), id, req.Role)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// @Summary Delete a user
// @Tags admin
// @Produce json
// @Param id path int true "User ID"
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 403 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /admin/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid id"})
	}

	if err := h.service.DeleteUser(c.Request().Context(), currentUserID(c), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
