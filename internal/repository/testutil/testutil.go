package testutil

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"inkwell/backend/internal/db"
	"inkwell/backend/internal/model"
	"inkwell/backend/internal/repository"
)

// NewTestDB opens a migrated SQLite database in a temp dir, closed on cleanup.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	return database
}

// SeedUser inserts a user; empty fields get test defaults.
func SeedUser(t *testing.T, database *sql.DB, user model.User) model.User {
	t.Helper()
	if user.Email == "" {
		user.Email = "user@example.com"
	}
	if user.PasswordHash == "" {
		user.PasswordHash = "hash"
	}
	created, err := repository.NewUserRepository(database).Create(context.Background(), user)
	require.NoError(t, err)
	return created
}

// SeedPost inserts a blog post owned by post.UserID.
func SeedPost(t *testing.T, database *sql.DB, post model.BlogPost) model.BlogPost {
	t.Helper()
	if post.Title == "" {
		post.Title = "Post"
	}
	if post.Slug == "" {
		post.Slug = "post"
	}
	created, err := repository.NewBlogPostRepository(database).Create(context.Background(), post)
	require.NoError(t, err)
	return created
}
