package service_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"inkwell/backend/internal/model"
	"inkwell/backend/internal/network"
	"inkwell/backend/internal/repository"
	"inkwell/backend/internal/repository/testutil"
	"inkwell/backend/internal/service"

	"github.com/stretchr/testify/require"
)

const testFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
  <title>Example blog</title>
  <language>en-us</language>
  <item>
    <title>First post</title>
    <link>https://blog.example.com/first</link>
    <description>A short teaser about the first post.</description>
    <category>intro</category>
  </item>
  <item>
    <title>Second post</title>
    <link>https://blog.example.com/second</link>
    <description><![CDATA[<p>Hello <b>world</b></p><script>alert(1)</script>]]></description>
  </item>
  <item>
    <title></title>
    <link>https://blog.example.com/untitled</link>
  </item>
</channel>
</rss>`

type importFixture struct {
	svc   service.ImportService
	blog  service.BlogService
	posts repository.BlogPostRepository
	user  model.User
}

// newImportFixture trusts loopback so the feed can be served by httptest.
func newImportFixture(t *testing.T) importFixture {
	t.Helper()
	return newImportFixtureWithClients(t, network.NewClientFactoryForTest(&http.Client{Timeout: 5 * time.Second}))
}

func newImportFixtureWithClients(t *testing.T, clients *network.ClientFactory) importFixture {
	t.Helper()
	db := testutil.NewTestDB(t)
	posts := repository.NewBlogPostRepository(db)
	blog := service.NewBlogService(posts, repository.NewTranslationRepository(db))
	return importFixture{
		svc:   service.NewImportService(blog, posts, service.NewImportTaskService(), clients),
		blog:  blog,
		posts: posts,
		user:  testutil.SeedUser(t, db, model.User{}),
	}
}

func waitForTask(t *testing.T, svc service.ImportService, userID int64) *service.ImportTask {
	t.Helper()
	var task *service.ImportTask
	require.Eventually(t, func() bool {
		task = svc.GetTask(userID)
		return task != nil && task.Status != service.TaskRunning
	}, 5*time.Second, 10*time.Millisecond)
	return task
}

func TestImportService_ImportsFeedItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(testFeed))
	}))
	defer srv.Close()

	f := newImportFixture(t)
	ctx := context.Background()

	task, err := f.svc.StartImport(ctx, f.user.ID, srv.URL)
	require.NoError(t, err)
	require.Equal(t, 3, task.Total)

	done := waitForTask(t, f.svc, f.user.ID)
	require.Equal(t, service.TaskDone, done.Status)
	require.Equal(t, &service.ImportResult{Created: 2, Skipped: 1}, done.Result)

	page, err := f.blog.ListPosts(ctx, f.user.ID, "", "", service.Page{})
	require.NoError(t, err)
	require.Equal(t, 2, page.Total)
	for _, post := range page.Posts {
		require.Equal(t, "en", post.Language)
		require.Equal(t, model.PostStatusDraft, post.Status)
		require.NotNil(t, post.SourceURL)
		require.NotContains(t, post.Content, "script")
	}

	// A second run skips what was already imported.
	_, err = f.svc.StartImport(ctx, f.user.ID, srv.URL)
	require.NoError(t, err)
	done = waitForTask(t, f.svc, f.user.ID)
	require.Equal(t, &service.ImportResult{Skipped: 3}, done.Result)
}

func TestImportService_RejectsBadInput(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("<html><body>not a feed</body></html>"))
	}))
	defer srv.Close()

	f := newImportFixture(t)
	ctx := context.Background()

	_, err := f.svc.StartImport(ctx, f.user.ID, "not a url")
	require.ErrorIs(t, err, service.ErrInvalid)

	_, err = f.svc.StartImport(ctx, f.user.ID, srv.URL+"/missing")
	require.ErrorIs(t, err, service.ErrUpstream)
	require.ErrorIs(t, err, service.ErrFeedFetch)

	_, err = f.svc.StartImport(ctx, f.user.ID, srv.URL+"/page")
	require.ErrorIs(t, err, service.ErrInvalid)

	require.Nil(t, f.svc.GetTask(f.user.ID))
	require.False(t, f.svc.CancelTask(f.user.ID))
}

func TestImportService_RefusesPrivateAddress(t *testing.T) {
	hit := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit = true
		_, _ = w.Write([]byte(testFeed))
	}))
	defer srv.Close()

	f := newImportFixtureWithClients(t, network.NewClientFactory(nil, "inkwell-test"))
	ctx := context.Background()

	_, err := f.svc.StartImport(ctx, f.user.ID, srv.URL)
	require.ErrorIs(t, err, service.ErrInvalid)
	_, err = f.svc.StartImport(ctx, f.user.ID, "http://169.254.169.254/latest/meta-data/")
	require.ErrorIs(t, err, service.ErrInvalid)

	require.False(t, hit)
	require.Nil(t, f.svc.GetTask(f.user.ID))
}

func TestImportTaskService_Lifecycle(t *testing.T) {
	tasks := service.NewImportTaskService()

	id, ctx := tasks.Start(1, "https://example.com/feed", 10)
	tasks.Update(1, id, 3, "Item three")
	task := tasks.Get(1)
	require.Equal(t, 3, task.Current)
	require.Equal(t, "Item three", task.Item)
	require.Nil(t, tasks.Get(2))

	// A new import replaces and cancels the running one.
	next, _ := tasks.Start(1, "https://example.com/other", 1)
	require.Error(t, ctx.Err())
	tasks.Complete(1, id, service.ImportResult{Created: 5})
	require.Equal(t, service.TaskRunning, tasks.Get(1).Status)

	tasks.Complete(1, next, service.ImportResult{Created: 1})
	require.Equal(t, service.TaskDone, tasks.Get(1).Status)
	require.False(t, tasks.Cancel(1))

	failing, _ := tasks.Start(2, "https://example.com/feed", 1)
	require.True(t, tasks.Cancel(2))
	require.Equal(t, service.TaskCancelled, tasks.Get(2).Status)
	tasks.Fail(2, failing, context.Canceled)
	require.Equal(t, service.TaskCancelled, tasks.Get(2).Status)
}
