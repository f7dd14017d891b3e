package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"inkwell/backend/internal/markdown"
	"inkwell/backend/internal/model"
	"inkwell/backend/internal/service"
)

type BlogHandler struct {
	service service.BlogService
}

func NewBlogHandler(service service.BlogService) *BlogHandler {
	return &BlogHandler{service: service}
}

// postRequest fields are optional on update; omitted fields keep their value.
type postRequest struct {
	Title       *string  `json:"title"`
	Slug        *string  `json:"slug"`
	Description *string  `json:"description"`
	Content     *string  `json:"content"`
	Keywords    []string `json:"keywords"`
	Language    *string  `json:"language"`
}

type postResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
	Keywords    []string `json:"keywords"`
	Language    string   `json:"language"`
	Status      string   `json:"status"`
	SourceURL   *string  `json:"sourceUrl,omitempty"`
	PublishedAt *string  `json:"publishedAt,omitempty"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

type postListResponse struct {
	Posts []postResponse `json:"posts"`
	Total int            `json:"total"`
}

type translationResponse struct {
	ID          string `json:"id"`
	PostID      string `json:"postId"`
	Language    string `json:"language"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

type htmlResponse struct {
	HTML string `json:"html"`
}

type tocResponse struct {
	Headings []markdown.Heading `json:"headings"`
}

func (h *BlogHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/posts", h.List)
	g.POST("/posts", h.Create)
	g.GET("/posts/:id", h.Get)
	g.PUT("/posts/:id", h.Update)
	g.DELETE("/posts/:id", h.Delete)
	g.POST("/posts/:id/publish", h.Publish)
	g.POST("/posts/:id/unpublish", h.Unpublish)
	g.POST("/posts/:id/archive", h.Archive)
	g.GET("/posts/:id/html", h.RenderHTML)
	g.GET("/posts/:id/toc", h.TableOfContents)
	g.GET("/posts/:id/export", h.Export)
	g.GET("/posts/:id/translations", h.ListTranslations)
	g.GET("/posts/:id/translations/:lang", h.GetTranslation)
	g.DELETE("/posts/:id/translations/:lang", h.DeleteTranslation)
}

// List returns the caller's posts, newest first, filtered by status and q.
// @Summary List posts
// @Description List the caller's posts
// @Tags posts
// @Produce json
// @Param status query string false "Filter by status"
// @Param q query string false "Search title and content"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Security BearerAuth
// @Success 200 {object} postListResponse
// @Failure 400 {object} errorResponse
// @Router /posts [get]
func (h *BlogHandler) List(c echo.Context) error {
	page, err := h.service.ListPosts(c.Request().Context(), currentUserID(c), c.QueryParam("status"), c.QueryParam("q"), parsePage(c))
	if err != nil {
		return writeServiceError(c, err)
	}

	resp := postListResponse{Posts: make([]postResponse, 0, len(page.Posts)), Total: page.Total}
	for _, p := range page.Posts {
		resp.Posts = append(resp.Posts, toPostResponse(p))
	}
	return c.JSON(http.StatusOK, resp)
}

// @Summary Create a post
// @Description Create a draft post
// @Tags posts
// @Accept json
// @Produce json
// @Param post body postRequest true "Post"
// @Security BearerAuth
// @Success 201 {object} postResponse
// @Failure 400 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Router /posts [post]
func (h *BlogHandler) Create(c echo.Context) error {
	var req postRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	post, err := h.service.CreatePost(c.Request().Context(), currentUserID(c), req.toInput())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, toPostResponse(post))
}

// @Summary Get a post
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Security BearerAuth
// @Success 200 {object} postResponse
// @Failure 404 {object} errorResponse
// @Router /posts/{id} [get]
func (h *BlogHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid id"})
	}

	post, err := h.service.GetPost(c.Request().Context(), currentUserID(c), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toPostResponse(post))
}

// @Summary Update a post
// @Tags posts
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Param post body postRequest true "Post"
// @Security BearerAuth
// @Success 200 {object} postResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Router /posts/{id} [put]
func (h *BlogHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid id"})
	}
	var req postRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	post, err := h.service.UpdatePost(c.Request().Context(), currentUserID(c), id, req.toInput())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toPostResponse(post))
}

// @Summary Delete a post
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 404 {object} errorResponse
// @Router /posts/{id} [delete]
func (h *BlogHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid id"})
	}

	if err := h.service.DeletePost(c.Request().Context(), currentUserID(c), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// @Summary Publish a post
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Security BearerAuth
// @Success 200 {object} postResponse
// @Failure 404 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Router /posts/{id}/publish [post]
func (h *BlogHandler) Publish(c echo.Context) error {
	return h.transition(c, h.service.Publish)
}

// @Summary Unpublish a post
// @Description Move a published post back to draft
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Security BearerAuth
// @Success 200 {object} postResponse
// @Failure 404 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Router /posts/{id}/unpublish [post]
func (h *BlogHandler) Unpublish(c echo.Context) error {
	return h.transition(c, h.service.Unpublish)
}

// @Summary Archive a post
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Security BearerAuth
// @Success 200 {object} postResponse
// @Failure 404 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Router /posts/{id}/archive [post]
func (h *BlogHandler) Archive(c echo.Context) error {
	return h.transition(c, h.service.Archive)
}

type statusChange func(ctx context.Context, userID, id int64) (model.BlogPost, error)

func (h *BlogHandler) transition(c echo.Context, change statusChange) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid id"})
	}

	post, err := change(c.Request().Context(), currentUserID(c), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toPostResponse(post))
}

// RenderHTML returns the sanitized HTML of the post, or of its translation
// when lang is given.
// @Summary Render a post
// @Description Render the markdown of a post or one of its translations as HTML
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Param lang query string false "Translation language"
// @Security BearerAuth
// @Success 200 {object} htmlResponse
// @Failure 404 {object} errorResponse
// @Router /posts/{id}/html [get]
func (h *BlogHandler) RenderHTML(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid id"})
	}

	html, err := h.service.RenderHTML(c.Request().Context(), currentUserID(c), id, c.QueryParam("lang"))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, htmlResponse{HTML: html})
}

// @Summary Table of contents
// @Description List the headings of a post
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Security BearerAuth
// @Success 200 {object} tocResponse
// @Failure 404 {object} errorResponse
// @Router /posts/{id}/toc [get]
func (h *BlogHandler) TableOfContents(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid id"})
	}

	headings, err := h.service.TableOfContents(c.Request().Context(), currentUserID(c), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	if headings == nil {
		headings = []markdown.Heading{}
	}
	return c.JSON(http.StatusOK, tocResponse{Headings: headings})
}

// Export downloads the post as html, markdown or text.
// @Summary Export a post
// @Description Download a post as markdown or HTML
// @Tags posts
// @Produce octet-stream
// @Param id path int true "Post ID"
// @Param format query string false "markdown or html"
// @Param lang query string false "Translation language"
// @Security BearerAuth
// @Success 200 {file} file
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /posts/{id}/export [get]
func (h *BlogHandler) Export(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid id"})
	}
	format := c.QueryParam("format")
	if format == "" {
		format = service.FormatMarkdown
	}

	export, err := h.service.Export(c.Request().Context(), currentUserID(c), id, format, c.QueryParam("lang"))
	if err != nil {
		return writeServiceError(c, err)
	}
	return sendAttachment(c, export)
}

// @Summary List translations
// @Tags translations
// @Produce json
// @Param id path int true "Post ID"
// @Security BearerAuth
// @Success 200 {array} translationResponse
// @Failure 404 {object} errorResponse
// @Router /posts/{id}/translations [get]
func (h *BlogHandler) ListTranslations(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid id"})
	}

	translations, err := h.service.ListTranslations(c.Request().Context(), currentUserID(c), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	resp := make([]translationResponse, 0, len(translations))
	for _, t := range translations {
		resp = append(resp, toTranslationResponse(t))
	}
	return c.JSON(http.StatusOK, resp)
}

// @Summary Get a translation
// @Tags translations
// @Produce json
// @Param id path int true "Post ID"
// @Param lang path string true "Language code"
// @Security BearerAuth
// @Success 200 {object} translationResponse
// @Failure 404 {object} errorResponse
// @Router /posts/{id}/translations/{lang} [get]
func (h *BlogHandler) GetTranslation(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid id"})
	}

	t, err := h.service.GetTranslation(c.Request().Context(), currentUserID(c), id, c.Param("lang"))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toTranslationResponse(t))
}

// @Summary Delete a translation
// @Tags translations
// @Produce json
// @Param id path int true "Post ID"
// @Param lang path string true "Language code"
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 404 {object} errorResponse
// @Router /posts/{id}/translations/{lang} [delete]
func (h *BlogHandler) DeleteTranslation(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid id"})
	}

	if err := h.service.DeleteTranslation(c.Request().Context(), currentUserID(c), id, c.Param("lang")); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func sendAttachment(c echo.Context, export service.Export) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", export.Filename))
	return c.Blob(http.StatusOK, export.ContentType, export.Body)
}

func (r postRequest) toInput() service.PostInput {
	return service.PostInput{
		Title:       r.Title,
		Slug:        r.Slug,
		Description: r.Description,
		Content:     r.Content,
		Keywords:    r.Keywords,
		Language:    r.Language,
	}
}

func toPostResponse(p model.BlogPost) postResponse {
	keywords := p.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	return postResponse{
		ID:          formatID(p.ID),
		Title:       p.Title,
		Slug:        p.Slug,
		Description: p.Description,
		Content:     p.Content,
		Keywords:    keywords,
		Language:    p.Language,
		Status:      p.Status,
		SourceURL:   p.SourceURL,
		PublishedAt: formatOptionalTime(p.PublishedAt),
		CreatedAt:   formatTime(p.CreatedAt),
		UpdatedAt:   formatTime(p.UpdatedAt),
	}
}

func toTranslationResponse(t model.BlogPostTranslation) translationResponse {
	return translationResponse{
		ID:          formatID(t.ID),
		PostID:      formatID(t.PostID),
		Language:    t.Language,
		Title:       t.Title,
		Description: t.Description,
		Content:     t.Content,
		CreatedAt:   formatTime(t.CreatedAt),
		UpdatedAt:   formatTime(t.UpdatedAt),
	}
}
