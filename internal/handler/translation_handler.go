package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"inkwell/backend/internal/model"
	"inkwell/backend/internal/service"
)

// TranslationHandler queues and inspects background translation workflows.
type TranslationHandler struct {
	service service.TranslationService
}

func NewTranslationHandler(service service.TranslationService) *TranslationHandler {
	return &TranslationHandler{service: service}
}

type translateRequest struct {
	Languages []string `json:"languages"`
}

type workflowResponse struct {
	ID             string  `json:"id"`
	PostID         string  `json:"postId"`
	TargetLanguage string  `json:"targetLanguage"`
	Status         string  `json:"status"`
	Attempts       int     `json:"attempts"`
	ErrorMessage   *string `json:"errorMessage,omitempty"`
	CompletedAt    *string `json:"completedAt,omitempty"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

func (h *TranslationHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/posts/:id/translate", h.Request)
	g.GET("/posts/:id/workflows", h.List)
	g.POST("/workflows/:id/retry", h.Retry)
}

// Request queues a translation per language. Languages that already have
// an open workflow return it unchanged.
// @Summary Request translations
// @Description Queue translation workflows for the given languages
// @Tags translations
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Param request body translateRequest true "Target languages"
// @Security BearerAuth
// @Success 202 {array} workflowResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /posts/{id}/translate [post]
func (h *TranslationHandler) Request(c echo.Context) error {
	postID, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid id"})
	}
	var req translateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	workflows, err := h.service.RequestTranslations(c.Request().Context(), currentUserID(c), postID, req.Languages)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusAccepted, toWorkflowResponses(workflows))
}

// @Summary List workflows
// @Description List the translation workflows of a post
// @Tags translations
// @Produce json
// @Param id path int true "Post ID"
// @Security BearerAuth
// @Success 200 {array} workflowResponse
// @Failure 404 {object} errorResponse
// @Router /posts/{id}/workflows [get]
func (h *TranslationHandler) List(c echo.Context) error {
	postID, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid id"})
	}

	workflows, err := h.service.ListWorkflows(c.Request().Context(), currentUserID(c), postID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toWorkflowResponses(workflows))
}

// @Summary Retry a workflow
// @Description Requeue a failed translation workflow
// @Tags translations
// @Produce json
// @Param id path int true "Workflow ID"
// @Security BearerAuth
// @Success 202 {object} workflowResponse
// @Failure 404 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Router /workflows/{id}/retry [post]
func (h *TranslationHandler) Retry(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid id"})
	}

	wf, err := h.service.RetryWorkflow(c.Request().Context(), currentUserID(c), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusAccepted, toWorkflowResponse(wf))
}

func toWorkflowResponses(workflows []model.TranslationWorkflow) []workflowResponse {
	out := make([]workflowResponse, 0, len(workflows))
	for _, wf := range workflows {
		out = append(out, toWorkflowResponse(wf))
	}
	return out
}

func toWorkflowResponse(wf model.TranslationWorkflow) workflowResponse {
	return workflowResponse{
		ID:             formatID(wf.ID),
		PostID:         formatID(wf.PostID),
		TargetLanguage: wf.TargetLanguage,
		Status:         wf.Status,
		Attempts:       wf.Attempts,
		ErrorMessage:   wf.ErrorMessage,
		CompletedAt:    formatOptionalTime(wf.CompletedAt),
		CreatedAt:      formatTime(wf.CreatedAt),
		UpdatedAt:      formatTime(wf.UpdatedAt),
	}
}
