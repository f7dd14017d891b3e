package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"inkwell/backend/internal/service"
)

// ImportHandler starts and tracks the caller's feed import.
type ImportHandler struct {
	service service.ImportService
}

func NewImportHandler(service service.ImportService) *ImportHandler {
	return &ImportHandler{service: service}
}

type importRequest struct {
	URL string `json:"url"`
}

type importCancelledResponse struct {
	Cancelled bool `json:"cancelled"`
}

type importIdleResponse struct {
	Status string `json:"status"`
}

func (h *ImportHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/import/feed", h.Start)
	g.GET("/import/status", h.Status)
	g.DELETE("/import", h.Cancel)
}

// Start fetches the feed and creates its items as drafts in the background.
// @Summary Import a feed
// @Description Import the items of an RSS or Atom feed as draft posts
// @Tags import
// @Accept json
// @Produce json
// @Param request body importRequest true "Feed URL"
// @Security BearerAuth
// @Success 202 {object} service.ImportTask
// @Failure 400 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /import/feed [post]
func (h *ImportHandler) Start(c echo.Context) error {
	var req importRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	task, err := h.service.StartImport(c.Request().Context(), currentUserID(c), req.URL)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusAccepted, task)
}

// @Summary Import status
// @Description Get the caller's current import task
// @Tags import
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.ImportTask
// @Router /import/status [get]
func (h *ImportHandler) Status(c echo.Context) error {
	task := h.service.GetTask(currentUserID(c))
	if task == nil {
		return c.JSON(http.StatusOK, importIdleResponse{Status: "idle"})
	}
	return c.JSON(http.StatusOK, task)
}

// @Summary Cancel import
// @Description Cancel the caller's running import
// @Tags import
// @Produce json
// @Security BearerAuth
// @Success 200 {object} importCancelledResponse
// @Router /import [delete]
func (h *ImportHandler) Cancel(c echo.Context) error {
	return c.JSON(http.StatusOK, importCancelledResponse{Cancelled: h.service.CancelTask(currentUserID(c))})
}
