package repository_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"inkwell/backend/internal/model"
	"inkwell/backend/internal/repository"
	"inkwell/backend/internal/repository/testutil"

	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewUserRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, model.User{Email: "ada@example.com", FullName: "Ada", PasswordHash: "h"})
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.Equal(t, model.RoleUser, created.Role)

	byID, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Ada", byID.FullName)
	require.Nil(t, byID.LastLoginAt)

	byEmail, err := repo.GetByEmail(ctx, "  ADA@example.com ")
	require.NoError(t, err)
	require.Equal(t, created.ID, byEmail.ID)

	_, err = repo.GetByID(ctx, 42)
	require.ErrorIs(t, err, sql.ErrNoRows)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewUserRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, model.User{Email: "a@example.com", PasswordHash: "h"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, model.User{Email: "a@example.com", PasswordHash: "h"})
	require.Error(t, err)
}

func TestUserRepository_CreateOrBootstrap(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewUserRepository(db)
	ctx := context.Background()

	first, err := repo.CreateOrBootstrap(ctx, model.User{Email: "owner@example.com", PasswordHash: "h"})
	require.NoError(t, err)
	require.Equal(t, model.RoleAdmin, first.Role)

	second, err := repo.CreateOrBootstrap(ctx, model.User{Email: "writer@example.com", PasswordHash: "h"})
	require.NoError(t, err)
	require.Equal(t, model.RoleUser, second.Role)

	stored, err := repo.GetByID(ctx, second.ID)
	require.NoError(t, err)
	require.Equal(t, model.RoleUser, stored.Role)

	_, err = repo.CreateOrBootstrap(ctx, model.User{Email: "owner@example.com", PasswordHash: "h"})
	require.Error(t, err)
}

func TestUserRepository_ListAndCount(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewUserRepository(db)
	ctx := context.Background()

	testutil.SeedUser(t, db, model.User{Email: "alice@example.com", FullName: "Alice"})
	testutil.SeedUser(t, db, model.User{Email: "bob@example.com", FullName: "Bob", Role: model.RoleAdmin})
	testutil.SeedUser(t, db, model.User{Email: "carol@test.org", FullName: "Carol 100%"})

	users, err := repo.List(ctx, repository.UserListFilter{Query: "EXAMPLE"})
	require.NoError(t, err)
	require.Len(t, users, 2)

	count, err := repo.Count(ctx, repository.UserListFilter{Role: model.RoleAdmin})
	require.NoError(t, err)
	require.Equal(t, 1, count)

	// LIKE wildcards in the query are matched literally.
	users, err = repo.List(ctx, repository.UserListFilter{Query: "100%"})
	require.NoError(t, err)
	require.Len(t, users, 1)

	users, err = repo.List(ctx, repository.UserListFilter{Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, users, 1)

	total, err := repo.CountAll(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, total)
}

func TestUserRepository_Updates(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewUserRepository(db)
	ctx := context.Background()

	user := testutil.SeedUser(t, db, model.User{})

	updated, err := repo.UpdateProfile(ctx, user.ID, "New Name")
	require.NoError(t, err)
	require.Equal(t, "New Name", updated.FullName)

	require.NoError(t, repo.UpdatePassword(ctx, user.ID, "new-hash"))
	require.NoError(t, repo.UpdateRole(ctx, user.ID, model.RoleAdmin))
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.TouchLogin(ctx, user.ID, at))

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, "new-hash", got.PasswordHash)
	require.True(t, got.IsAdmin())
	require.NotNil(t, got.LastLoginAt)
	require.True(t, at.Equal(*got.LastLoginAt))

	require.NoError(t, repo.Delete(ctx, user.ID))
	_, err = repo.GetByID(ctx, user.ID)
	require.ErrorIs(t, err, sql.ErrNoRows)
}
