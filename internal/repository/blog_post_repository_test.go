package repository_test

import (
	"context"
	"testing"
	"time"

	"inkwell/backend/internal/model"
	"inkwell/backend/internal/repository"
	"inkwell/backend/internal/repository/testutil"

	"github.com/stretchr/testify/require"
)

func TestBlogPostRepository_CreateAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewBlogPostRepository(db)
	ctx := context.Background()
	user := testutil.SeedUser(t, db, model.User{})

	post, err := repo.Create(ctx, model.BlogPost{
		UserID:   user.ID,
		Title:    "Hello",
		Slug:     "hello",
		Content:  "# Hello",
		Keywords: []string{"greeting", "intro"},
		Language: "en",
	})
	require.NoError(t, err)
	require.Equal(t, model.PostStatusDraft, post.Status)

	got, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	require.Equal(t, []string{"greeting", "intro"}, got.Keywords)
	require.Nil(t, got.PublishedAt)
	require.Nil(t, got.SourceURL)

	bySlug, err := repo.GetBySlug(ctx, user.ID, "hello")
	require.NoError(t, err)
	require.Equal(t, post.ID, bySlug.ID)
}

func TestBlogPostRepository_SlugUniquePerUser(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewBlogPostRepository(db)
	ctx := context.Background()
	alice := testutil.SeedUser(t, db, model.User{Email: "alice@example.com"})
	bob := testutil.SeedUser(t, db, model.User{Email: "bob@example.com"})

	post := testutil.SeedPost(t, db, model.BlogPost{UserID: alice.ID, Slug: "same"})
	testutil.SeedPost(t, db, model.BlogPost{UserID: bob.ID, Slug: "same"})

	_, err := repo.Create(ctx, model.BlogPost{UserID: alice.ID, Title: "Again", Slug: "same"})
	require.Error(t, err)

	exists, err := repo.SlugExists(ctx, alice.ID, "same", 0)
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = repo.SlugExists(ctx, alice.ID, "same", post.ID)
	require.NoError(t, err)
	require.False(t, exists)
}

func TestBlogPostRepository_ListFilters(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewBlogPostRepository(db)
	ctx := context.Background()
	user := testutil.SeedUser(t, db, model.User{})
	other := testutil.SeedUser(t, db, model.User{Email: "other@example.com"})

	testutil.SeedPost(t, db, model.BlogPost{UserID: user.ID, Title: "Go Concurrency", Slug: "a"})
	testutil.SeedPost(t, db, model.BlogPost{UserID: user.ID, Title: "SEO basics", Slug: "b", Status: model.PostStatusPublished})
	testutil.SeedPost(t, db, model.BlogPost{UserID: user.ID, Title: "Keyword clustering", Description: "go deeper", Slug: "c"})
	testutil.SeedPost(t, db, model.BlogPost{UserID: other.ID, Title: "Go elsewhere", Slug: "d"})

	posts, err := repo.List(ctx, repository.PostListFilter{UserID: user.ID})
	require.NoError(t, err)
	require.Len(t, posts, 3)

	posts, err = repo.List(ctx, repository.PostListFilter{UserID: user.ID, Status: model.PostStatusPublished})
	require.NoError(t, err)
	require.Len(t, posts, 1)
	require.Equal(t, "SEO basics", posts[0].Title)

	posts, err = repo.List(ctx, repository.PostListFilter{UserID: user.ID, Query: "GO"})
	require.NoError(t, err)
	require.Len(t, posts, 2)

	count, err := repo.Count(ctx, repository.PostListFilter{UserID: user.ID, Query: "go"})
	require.NoError(t, err)
	require.Equal(t, 2, count)

	posts, err = repo.List(ctx, repository.PostListFilter{UserID: user.ID, Limit: 2})
	require.NoError(t, err)
	require.Len(t, posts, 2)
}

func TestBlogPostRepository_UpdateAndStatus(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewBlogPostRepository(db)
	ctx := context.Background()
	user := testutil.SeedUser(t, db, model.User{})
	post := testutil.SeedPost(t, db, model.BlogPost{UserID: user.ID})

	post.Title = "Renamed"
	post.Keywords = nil
	updated, err := repo.Update(ctx, post)
	require.NoError(t, err)
	require.Equal(t, "Renamed", updated.Title)
	require.Empty(t, updated.Keywords)

	now := time.Now().UTC()
	require.NoError(t, repo.UpdateStatus(ctx, post.ID, model.PostStatusPublished, &now))
	got, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	require.Equal(t, model.PostStatusPublished, got.Status)
	require.NotNil(t, got.PublishedAt)

	require.Error(t, repo.UpdateStatus(ctx, post.ID, "bogus", nil))

	require.NoError(t, repo.Delete(ctx, post.ID))
	_, err = repo.GetByID(ctx, post.ID)
	require.Error(t, err)
}

func TestBlogPostRepository_SourceURL(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewBlogPostRepository(db)
	ctx := context.Background()
	user := testutil.SeedUser(t, db, model.User{})

	src := "https://example.com/a"
	testutil.SeedPost(t, db, model.BlogPost{UserID: user.ID, SourceURL: &src})

	exists, err := repo.ExistsBySourceURL(ctx, user.ID, src)
	require.NoError(t, err)
	require.True(t, exists)

	_, err = repo.Create(ctx, model.BlogPost{UserID: user.ID, Title: "dup", Slug: "dup", SourceURL: &src})
	require.Error(t, err)
}
