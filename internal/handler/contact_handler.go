package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"inkwell/backend/internal/model"
	"inkwell/backend/internal/service"
)

type ContactHandler struct {
	service service.ContactService
}

func NewContactHandler(service service.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type markHandledRequest struct {
	Handled bool `json:"handled"`
}

type contactResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	Handled   bool   `json:"handled"`
	CreatedAt string `json:"createdAt"`
}

// RegisterPublicRoutes mounts the contact form. The router wraps it with
// the per-IP rate limiter passed as mw.
func (h *ContactHandler) RegisterPublicRoutes(g *echo.Group, mw ...echo.MiddlewareFunc) {
	g.POST("/contact", h.Submit, mw...)
}

func (h *ContactHandler) RegisterAdminRoutes(g *echo.Group) {
	g.GET("/contact", h.List)
	g.PUT("/contact/:id/handled", h.MarkHandled)
}

// @Summary Send a contact message
// @Description Rate limited per client IP
// @Tags contact
// @Accept json
// @Produce json
// @Param message body contactRequest true "Contact message"
// @Success 201 {object} contactResponse
// @Failure 400 {object} errorResponse
// @Failure 429 {object} errorResponse
// @Router /contact [post]
func (h *ContactHandler) Submit(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	msg, err := h.service.Submit(c.Request().Context(), service.ContactInput{
		Name:     req.Name,
		Email:    req.Email,
		Subject:  req.Subject,
		Message:  req.Message,
		RemoteIP: c.RealIP(),
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, toContactResponse(msg))
}

// List returns messages newest first; handled=true|false filters.
// @Summary List contact messages
// @Tags admin
// @Produce json
// @Param handled query bool false "Filter by handled state"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Security BearerAuth
// @Success 200 {array} contactResponse
// @Failure 403 {object} errorResponse
// @Router /admin/contact [get]
func (h *ContactHandler) List(c echo.Context) error {
	msgs, err := h.service.List(c.Request().Context(), parseBoolQuery(c, "handled"), parsePage(c))
	if err != nil {
		return writeServiceError(c, err)
	}
	resp := make([]contactResponse, 0, len(msgs))
	for _, m := range msgs {
		resp = append(resp, toContactResponse(m))
	}
	return c.JSON(http.StatusOK, resp)
}

// @Summary Mark a contact message
// @Description Set the handled flag of a contact message
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Message ID"
// @Param request body markHandledRequest true "Handled flag"
// @Security BearerAuth
// @Success 200 {object} contactResponse
// @Failure 403 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /admin/contact/{id}/handled [put]
func (h *ContactHandler) MarkHandled(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid id"})
	}
	var req markHandledRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	msg, err := h.service.MarkHandled(c.Request().Context(), id, req.Handled)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toContactResponse(msg))
}

func toContactResponse(m model.ContactMessage) contactResponse {
	return contactResponse{
		ID:        formatID(m.ID),
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Message:   m.Message,
		Handled:   m.Handled,
		CreatedAt: formatTime(m.CreatedAt),
	}
}
