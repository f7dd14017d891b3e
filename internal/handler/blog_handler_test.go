package handler_test

import (
	"net/http"
	"testing"
	"time"

	"inkwell/backend/internal/handler"
	"inkwell/backend/internal/model"
	"inkwell/backend/internal/service"
	svcmock "inkwell/backend/internal/service/mock"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newBlogServer(t *testing.T) (*echo.Echo, *svcmock.MockBlogService, *svcmock.MockTranslationService) {
	ctrl := gomock.NewController(t)
	blog := svcmock.NewMockBlogService(ctrl)
	translations := svcmock.NewMockTranslationService(ctrl)
	e := newTestServer(func(g *echo.Group) {
		handler.NewBlogHandler(blog).RegisterRoutes(g)
		handler.NewTranslationHandler(translations).RegisterRoutes(g)
	})
	return e, blog, translations
}

func TestBlogHandlerCreate(t *testing.T) {
	e, blog, _ := newBlogServer(t)
	created := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	blog.EXPECT().CreatePost(gomock.Any(), testUser.ID, gomock.Any()).
		DoAndReturn(func(_ any, _ int64, in service.PostInput) (model.BlogPost, error) {
			require.Equal(t, "Hello", *in.Title)
			require.Nil(t, in.Slug)
			require.Equal(t, []string{"go"}, in.Keywords)
			return model.BlogPost{
				ID: 1234567890123, Title: "Hello", Slug: "hello", Language: "en",
				Status: model.PostStatusDraft, CreatedAt: created, UpdatedAt: created,
			}, nil
		})

	rec := doRequest(e, http.MethodPost, "/api/posts", `{"title":"Hello","keywords":["go"]}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var body map[string]any
	decodeJSON(t, rec, &body)
	require.Equal(t, "1234567890123", body["id"])
	require.Equal(t, "hello", body["slug"])
	require.Equal(t, []any{}, body["keywords"])
	require.Equal(t, "2026-10-01T12:00:00Z", body["createdAt"])
	require.NotContains(t, body, "publishedAt")
}

func TestBlogHandlerListPassesFilters(t *testing.T) {
	e, blog, _ := newBlogServer(t)
	blog.EXPECT().ListPosts(gomock.Any(), testUser.ID, model.PostStatusPublished, "go", service.Page{Limit: 10, Offset: 20}).
		Return(service.PostPage{Posts: []model.BlogPost{{ID: 1, Title: "Go"}}, Total: 21}, nil)

	rec := doRequest(e, http.MethodGet, "/api/posts?status=published&q=go&limit=10&offset=20", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Posts []map[string]any `json:"posts"`
		Total int              `json:"total"`
	}
	decodeJSON(t, rec, &body)
	require.Equal(t, 21, body.Total)
	require.Len(t, body.Posts, 1)
}

func TestBlogHandlerInvalidID(t *testing.T) {
	e, _, _ := newBlogServer(t)

	for _, path := range []string{"/api/posts/abc", "/api/posts/0", "/api/posts/-5"} {
		rec := doRequest(e, http.MethodGet, path, "")
		requireError(t, rec, http.StatusBadRequest, "invalid id")
	}
}

func TestBlogHandlerNotFound(t *testing.T) {
	e, blog, _ := newBlogServer(t)
	blog.EXPECT().Publish(gomock.Any(), testUser.ID, int64(9)).Return(model.BlogPost{}, service.ErrNotFound)

	rec := doRequest(e, http.MethodPost, "/api/posts/9/publish", "")
	requireError(t, rec, http.StatusNotFound, "resource not found")
}

func TestBlogHandlerExport(t *testing.T) {
	e, blog, _ := newBlogServer(t)
	blog.EXPECT().Export(gomock.Any(), testUser.ID, int64(5), service.FormatMarkdown, "fr").
		Return(service.Export{Filename: "hello.fr.md", ContentType: "text/markdown; charset=utf-8", Body: []byte("# Bonjour")}, nil)

	rec := doRequest(e, http.MethodGet, "/api/posts/5/export?lang=fr", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, `attachment; filename="hello.fr.md"`, rec.Header().Get(echo.HeaderContentDisposition))
	require.Equal(t, "text/markdown; charset=utf-8", rec.Header().Get(echo.HeaderContentType))
	require.Equal(t, "# Bonjour", rec.Body.String())
}

func TestBlogHandlerTableOfContentsEmpty(t *testing.T) {
	e, blog, _ := newBlogServer(t)
	blog.EXPECT().TableOfContents(gomock.Any(), testUser.ID, int64(5)).Return(nil, nil)

	rec := doRequest(e, http.MethodGet, "/api/posts/5/toc", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"headings":[]}`, rec.Body.String())
}

func TestTranslationHandlerRequest(t *testing.T) {
	e, _, translations := newBlogServer(t)
	translations.EXPECT().RequestTranslations(gomock.Any(), testUser.ID, int64(5), []string{"de", "fr"}).
		Return([]model.TranslationWorkflow{
			{ID: 1, PostID: 5, TargetLanguage: "de", Status: model.WorkflowPending},
			{ID: 2, PostID: 5, TargetLanguage: "fr", Status: model.WorkflowProcessing},
		}, nil)

	rec := doRequest(e, http.MethodPost, "/api/posts/5/translate", `{"languages":["de","fr"]}`)
	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())

	var body []map[string]any
	decodeJSON(t, rec, &body)
	require.Len(t, body, 2)
	require.Equal(t, "5", body[0]["postId"])
	require.Equal(t, "processing", body[1]["status"])
}

func TestTranslationHandlerRetryConflict(t *testing.T) {
	e, _, translations := newBlogServer(t)
	translations.EXPECT().RetryWorkflow(gomock.Any(), testUser.ID, int64(3)).
		Return(model.TranslationWorkflow{}, service.ErrConflict)

	rec := doRequest(e, http.MethodPost, "/api/workflows/3/retry", "")
	requireError(t, rec, http.StatusConflict, "conflict")
}
