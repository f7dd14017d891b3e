package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"inkwell/backend/internal/keyword"
	"inkwell/backend/internal/model"
	"inkwell/backend/internal/service"
)

// ContentHandler drives the keyword to article workflow of content projects.
type ContentHandler struct {
	service service.ContentService
}

func NewContentHandler(service service.ContentService) *ContentHandler {
	return &ContentHandler{service: service}
}

type projectRequest struct {
	Name        string `json:"name"`
	SeedKeyword string `json:"seedKeyword"`
	Language    string `json:"language"`
	Country     string `json:"country"`
}

type titlesRequest struct {
	Count int `json:"count"`
}

type selectTitleRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type outlineRequest struct {
	Outline []model.OutlineSection `json:"outline"`
}

type articleRequest struct {
	ReferenceURLs []string `json:"referenceUrls"`
}

type prioritySlotRequest struct {
	Slot int `json:"slot"`
}

type projectResponse struct {
	ID                  string                  `json:"id"`
	Name                string                  `json:"name"`
	SeedKeyword         string                  `json:"seedKeyword"`
	Language            string                  `json:"language"`
	Country             string                  `json:"country"`
	Step                string                  `json:"step"`
	Keywords            []model.Keyword         `json:"keywords"`
	Clusters            []model.Cluster         `json:"clusters"`
	SelectedClusters    []string                `json:"selectedClusters"`
	Priorities          map[string]int          `json:"priorities"`
	Titles              []model.TitleSuggestion `json:"titles"`
	SelectedTitle       string                  `json:"selectedTitle"`
	SelectedDescription string                  `json:"selectedDescription"`
	Outline             []model.OutlineSection  `json:"outline"`
	ReferenceURLs       []string                `json:"referenceUrls"`
	BlogPostID          *string                 `json:"blogPostId,omitempty"`
	CreatedAt           string                  `json:"createdAt"`
	UpdatedAt           string                  `json:"updatedAt"`
}

// projectSummaryResponse omits the research payload for list views.
type projectSummaryResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	SeedKeyword string  `json:"seedKeyword"`
	Language    string  `json:"language"`
	Step        string  `json:"step"`
	BlogPostID  *string `json:"blogPostId,omitempty"`
	UpdatedAt   string  `json:"updatedAt"`
}

func (h *ContentHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/projects", h.ListProjects)
	g.POST("/projects", h.CreateProject)
	g.GET("/projects/:id", h.GetProject)
	g.DELETE("/projects/:id", h.DeleteProject)

	g.POST("/projects/:id/research", h.ResearchKeywords)
	g.GET("/projects/:id/keywords", h.FilterKeywords)
	g.GET("/projects/:id/keywords/groups", h.GroupKeywords)
	g.GET("/projects/:id/keywords/report", h.Report)

	g.POST("/projects/:id/cluster", h.ClusterKeywords)
	g.GET("/projects/:id/clusters", h.FilterClusters)
	g.POST("/projects/:id/clusters/:cid/select", h.SelectCluster)
	g.DELETE("/projects/:id/clusters/:cid/select", h.DeselectCluster)
	g.POST("/projects/:id/clusters/:cid/toggle", h.ToggleCluster)
	g.POST("/projects/:id/clusters/:cid/priority", h.AssignPriority)
	g.PUT("/projects/:id/clusters/:cid/priority", h.MovePriority)
	g.DELETE("/projects/:id/clusters/:cid/priority", h.RemovePriority)

	g.POST("/projects/:id/titles", h.GenerateTitles)
	g.POST("/projects/:id/title", h.SelectTitle)
	g.POST("/projects/:id/outline", h.GenerateOutline)
	g.PUT("/projects/:id/outline", h.UpdateOutline)
	g.POST("/projects/:id/article", h.GenerateArticle)
}

// @Summary List projects
// @Tags projects
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Security BearerAuth
// @Success 200 {array} projectSummaryResponse
// @Router /projects [get]
func (h *ContentHandler) ListProjects(c echo.Context) error {
	projects, err := h.service.ListProjects(c.Request().Context(), currentUserID(c))
	if err != nil {
		return writeServiceError(c, err)
	}
	resp := make([]projectSummaryResponse, 0, len(projects))
	for _, p := range projects {
		resp = append(resp, projectSummaryResponse{
			ID:          formatID(p.ID),
			Name:        p.Name,
			SeedKeyword: p.SeedKeyword,
			Language:    p.Language,
			Step:        p.Step,
			BlogPostID:  formatOptionalID(p.BlogPostID),
			UpdatedAt:   formatTime(p.UpdatedAt),
		})
	}
	return c.JSON(http.StatusOK, resp)
}

// @Summary Create a project
// @Description Start a content project from a seed keyword
// @Tags projects
// @Accept json
// @Produce json
// @Param project body projectRequest true "Project"
// @Security BearerAuth
// @Success 201 {object} projectResponse
// @Failure 400 {object} errorResponse
// @Router /projects [post]
func (h *ContentHandler) CreateProject(c echo.Context) error {
	var req projectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	project, err := h.service.CreateProject(c.Request().Context(), currentUserID(c), service.ProjectInput{
		Name:        req.Name,
		SeedKeyword: req.SeedKeyword,
		Language:    req.Language,
		Country:     req.Country,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, toProjectResponse(project))
}

// @Summary Get a project
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Security BearerAuth
// @Success 200 {object} projectResponse
// @Failure 404 {object} errorResponse
// @Router /projects/{id} [get]
func (h *ContentHandler) GetProject(c echo.Context) error {
	return h.projectAction(c, h.service.GetProject)
}

// @Summary Delete a project
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 404 {object} errorResponse
// @Router /projects/{id} [delete]
func (h *ContentHandler) DeleteProject(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid id"})
	}

	if err := h.service.DeleteProject(c.Request().Context(), currentUserID(c), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ResearchKeywords runs keyword research for the project's seed keyword.
// @Summary Research keywords
// @Description Run keyword research for the seed keyword. Counts against the plan quota
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Security BearerAuth
// @Success 200 {object} projectResponse
// @Failure 402 {object} quotaErrorResponse
// @Failure 404 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /projects/{id}/research [post]
func (h *ContentHandler) ResearchKeywords(c echo.Context) error {
	return h.projectAction(c, h.service.ResearchKeywords)
}

// FilterKeywords accepts q, minVolume, maxVolume, minDifficulty,
// maxDifficulty, intents (comma separated), sort and dir.
// @Summary Filter keywords
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Param q query string false "Substring match on the keyword"
// @Param minVolume query int false "Minimum monthly search volume"
// @Param maxVolume query int false "Maximum monthly search volume"
// @Param minDifficulty query int false "Minimum difficulty"
// @Param maxDifficulty query int false "Maximum difficulty"
// @Param intents query string false "Comma separated search intents"
// @Param sort query string false "Sort field"
// @Param dir query string false "Sort direction, asc or desc"
// @Security BearerAuth
// @Success 200 {array} model.Keyword
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /projects/{id}/keywords [get]
func (h *ContentHandler) FilterKeywords(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid id"})
	}

	keywords, err := h.service.FilterKeywords(c.Request().Context(), currentUserID(c), id, parseKeywordQuery(c))
	if err != nil {
		return writeServiceError(c, err)
	}
	if keywords == nil {
		keywords = []model.Keyword{}
	}
	return c.JSON(http.StatusOK, keywords)
}

// @Summary Group keywords
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Param by query string false "Grouping, intent or difficulty"
// @Security BearerAuth
// @Success 200 {array} keyword.Group
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /projects/{id}/keywords/groups [get]
func (h *ContentHandler) GroupKeywords(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid id"})
	}

	groups, err := h.service.GroupKeywords(c.Request().Context(), currentUserID(c), id, c.QueryParam("by"))
	if err != nil {
		return writeServiceError(c, err)
	}
	if groups == nil {
		groups = []keyword.Group{}
	}
	return c.JSON(http.StatusOK, groups)
}

// Report downloads the filtered keywords as csv or an aligned text table.
// @Summary Keyword report
// @Description Download the filtered keywords as csv or an aligned text table
// @Tags projects
// @Produce octet-stream
// @Param id path int true "Project ID"
// @Param format query string false "csv or text"
// @Param q query string false "Substring match on the keyword"
// @Param minVolume query int false "Minimum monthly search volume"
// @Param maxVolume query int false "Maximum monthly search volume"
// @Param minDifficulty query int false "Minimum difficulty"
// @Param maxDifficulty query int false "Maximum difficulty"
// @Param intents query string false "Comma separated search intents"
// @Param sort query string false "Sort field"
// @Param dir query string false "Sort direction, asc or desc"
// @Security BearerAuth
// @Success 200 {file} file
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /projects/{id}/keywords/report [get]
func (h *ContentHandler) Report(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid id"})
	}
	format := c.QueryParam("format")
	if format == "" {
		format = service.ReportCSV
	}

	report, err := h.service.Report(c.Request().Context(), currentUserID(c), id, format, parseKeywordQuery(c))
	if err != nil {
		return writeServiceError(c, err)
	}
	return sendAttachment(c, report)
}

// @Summary Cluster keywords
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Security BearerAuth
// @Success 200 {object} projectResponse
// @Failure 404 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Router /projects/{id}/cluster [post]
func (h *ContentHandler) ClusterKeywords(c echo.Context) error {
	return h.projectAction(c, h.service.ClusterKeywords)
}

// @Summary Filter clusters
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Param q query string false "Substring match on the keyword"
// @Param minVolume query int false "Minimum monthly search volume"
// @Param maxVolume query int false "Maximum monthly search volume"
// @Param minDifficulty query int false "Minimum difficulty"
// @Param maxDifficulty query int false "Maximum difficulty"
// @Param intents query string false "Comma separated search intents"
// @Param sort query string false "Sort field"
// @Param dir query string false "Sort direction, asc or desc"
// @Security BearerAuth
// @Success 200 {array} model.Cluster
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /projects/{id}/clusters [get]
func (h *ContentHandler) FilterClusters(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid id"})
	}

	clusters, err := h.service.FilterClusters(c.Request().Context(), currentUserID(c), id, parseKeywordQuery(c))
	if err != nil {
		return writeServiceError(c, err)
	}
	if clusters == nil {
		clusters = []model.Cluster{}
	}
	return c.JSON(http.StatusOK, clusters)
}

// @Summary Select a cluster
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Param cid path string true "Cluster ID"
// @Security BearerAuth
// @Success 200 {object} projectResponse
// @Failure 404 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Router /projects/{id}/clusters/{cid}/select [post]
func (h *ContentHandler) SelectCluster(c echo.Context) error {
	return h.clusterAction(c, h.service.SelectCluster)
}

// @Summary Deselect a cluster
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Param cid path string true "Cluster ID"
// @Security BearerAuth
// @Success 200 {object} projectResponse
// @Failure 404 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Router /projects/{id}/clusters/{cid}/select [delete]
func (h *ContentHandler) DeselectCluster(c echo.Context) error {
	return h.clusterAction(c, h.service.DeselectCluster)
}

// @Summary Toggle a cluster
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Param cid path string true "Cluster ID"
// @Security BearerAuth
// @Success 200 {object} projectResponse
// @Failure 404 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Router /projects/{id}/clusters/{cid}/toggle [post]
func (h *ContentHandler) ToggleCluster(c echo.Context) error {
	return h.clusterAction(c, h.service.ToggleCluster)
}

// @Summary Prioritize a cluster
// @Description Append a selected cluster to the priority list
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Param cid path string true "Cluster ID"
// @Security BearerAuth
// @Success 200 {object} projectResponse
// @Failure 404 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Router /projects/{id}/clusters/{cid}/priority [post]
func (h *ContentHandler) AssignPriority(c echo.Context) error {
	return h.clusterAction(c, h.service.AssignPriority)
}

// @Summary Remove a priority
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Param cid path string true "Cluster ID"
// @Security BearerAuth
// @Success 200 {object} projectResponse
// @Failure 404 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Router /projects/{id}/clusters/{cid}/priority [delete]
func (h *ContentHandler) RemovePriority(c echo.Context) error {
	return h.clusterAction(c, h.service.RemovePriority)
}

// @Summary Move a priority
// @Tags projects
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param cid path string true "Cluster ID"
// @Param request body prioritySlotRequest true "Target slot"
// @Security BearerAuth
// @Success 200 {object} projectResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Router /projects/{id}/clusters/{cid}/priority [put]
func (h *ContentHandler) MovePriority(c echo.Context) error {
	var req prioritySlotRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	return h.clusterAction(c, func(ctx context.Context, userID, id int64, clusterID string) (model.ContentProject, error) {
		return h.service.MovePriority(ctx, userID, id, clusterID, req.Slot)
	})
}

// @Summary Generate titles
// @Tags projects
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param request body titlesRequest false "Title options"
// @Security BearerAuth
// @Success 200 {object} projectResponse
// @Failure 404 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /projects/{id}/titles [post]
func (h *ContentHandler) GenerateTitles(c echo.Context) error {
	var req titlesRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	return h.projectAction(c, func(ctx context.Context, userID, id int64) (model.ContentProject, error) {
		return h.service.GenerateTitles(ctx, userID, id, req.Count)
	})
}

// SelectTitle picks the article title and creates the project's draft post.
// @Summary Select a title
// @Description Pick the article title and create the draft post
// @Tags projects
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param request body selectTitleRequest true "Title"
// @Security BearerAuth
// @Success 200 {object} projectResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Router /projects/{id}/title [post]
func (h *ContentHandler) SelectTitle(c echo.Context) error {
	var req selectTitleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	return h.projectAction(c, func(ctx context.Context, userID, id int64) (model.ContentProject, error) {
		return h.service.SelectTitle(ctx, userID, id, req.Title, req.Description)
	})
}

// @Summary Generate an outline
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Security BearerAuth
// @Success 200 {object} projectResponse
// @Failure 404 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /projects/{id}/outline [post]
func (h *ContentHandler) GenerateOutline(c echo.Context) error {
	return h.projectAction(c, h.service.GenerateOutline)
}

// @Summary Edit the outline
// @Tags projects
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param request body outlineRequest true "Outline"
// @Security BearerAuth
// @Success 200 {object} projectResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Router /projects/{id}/outline [put]
func (h *ContentHandler) UpdateOutline(c echo.Context) error {
	var req outlineRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	return h.projectAction(c, func(ctx context.Context, userID, id int64) (model.ContentProject, error) {
		return h.service.UpdateOutline(ctx, userID, id, req.Outline)
	})
}

// @Summary Generate the article
// @Description Write the article from the outline and reference pages. Counts against the plan quota
// @Tags projects
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param request body articleRequest false "Reference URLs"
// @Security BearerAuth
// @Success 200 {object} projectResponse
// @Failure 400 {object} errorResponse
// @Failure 402 {object} quotaErrorResponse
// @Failure 404 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /projects/{id}/article [post]
func (h *ContentHandler) GenerateArticle(c echo.Context) error {
	var req articleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	return h.projectAction(c, func(ctx context.Context, userID, id int64) (model.ContentProject, error) {
		return h.service.GenerateArticle(ctx, userID, id, req.ReferenceURLs)
	})
}

type projectOp func(ctx context.Context, userID, id int64) (model.ContentProject, error)

type clusterOp func(ctx context.Context, userID, id int64, clusterID string) (model.ContentProject, error)

func (h *ContentHandler) projectAction(c echo.Context, op projectOp) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid id"})
	}

	project, err := op(c.Request().Context(), currentUserID(c), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toProjectResponse(project))
}

func (h *ContentHandler) clusterAction(c echo.Context, op clusterOp) error {
	clusterID := c.Param("cid")
	return h.projectAction(c, func(ctx context.Context, userID, id int64) (model.ContentProject, error) {
		return op(ctx, userID, id, clusterID)
	})
}

func parseKeywordQuery(c echo.Context) service.KeywordQuery {
	return service.KeywordQuery{
		Filter: keyword.Filter{
			Query:         c.QueryParam("q"),
			MinVolume:     parseIntQuery(c, "minVolume"),
			MaxVolume:     parseIntQuery(c, "maxVolume"),
			MinDifficulty: parseIntQuery(c, "minDifficulty"),
			MaxDifficulty: parseIntQuery(c, "maxDifficulty"),
			Intents:       splitList(c.QueryParam("intents")),
		},
		SortField: c.QueryParam("sort"),
		SortDir:   c.QueryParam("dir"),
	}
}

func toProjectResponse(p model.ContentProject) projectResponse {
	resp := projectResponse{
		ID:                  formatID(p.ID),
		Name:                p.Name,
		SeedKeyword:         p.SeedKeyword,
		Language:            p.Language,
		Country:             p.Country,
		Step:                p.Step,
		Keywords:            p.Keywords,
		Clusters:            p.Clusters,
		SelectedClusters:    p.SelectedClusters,
		Priorities:          p.Priorities,
		Titles:              p.Titles,
		SelectedTitle:       p.SelectedTitle,
		SelectedDescription: p.SelectedDescription,
		Outline:             p.Outline,
		ReferenceURLs:       p.ReferenceURLs,
		BlogPostID:          formatOptionalID(p.BlogPostID),
		CreatedAt:           formatTime(p.CreatedAt),
		UpdatedAt:           formatTime(p.UpdatedAt),
	}
	if resp.Keywords == nil {
		resp.Keywords = []model.Keyword{}
	}
	if resp.Clusters == nil {
		resp.Clusters = []model.Cluster{}
	}
	if resp.SelectedClusters == nil {
		resp.SelectedClusters = []string{}
	}
	if resp.Priorities == nil {
		resp.Priorities = map[string]int{}
	}
	if resp.Titles == nil {
		resp.Titles = []model.TitleSuggestion{}
	}
	if resp.Outline == nil {
		resp.Outline = []model.OutlineSection{}
	}
	if resp.ReferenceURLs == nil {
		resp.ReferenceURLs = []string{}
	}
	return resp
}
