package repository_test

import (
	"context"
	"testing"

	"inkwell/backend/internal/model"
	"inkwell/backend/internal/repository"
	"inkwell/backend/internal/repository/testutil"

	"github.com/stretchr/testify/require"
)

func TestWorkflowRepository_Lifecycle(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewWorkflowRepository(db)
	ctx := context.Background()
	user := testutil.SeedUser(t, db, model.User{})
	post := testutil.SeedPost(t, db, model.BlogPost{UserID: user.ID})

	wf, err := repo.Create(ctx, post.ID, "de")
	require.NoError(t, err)
	require.Equal(t, model.WorkflowPending, wf.Status)

	open, err := repo.FindOpen(ctx, post.ID, "de")
	require.NoError(t, err)
	require.NotNil(t, open)
	require.Equal(t, wf.ID, open.ID)

	claimed, err := repo.ClaimPending(ctx, 10)
	require.NoError(t, err)
	require.Len(t, claimed, 1)
	require.Equal(t, model.WorkflowProcessing, claimed[0].Status)
	require.Equal(t, 1, claimed[0].Attempts)

	// Already claimed.
	claimed, err = repo.ClaimPending(ctx, 10)
	require.NoError(t, err)
	require.Empty(t, claimed)

	require.NoError(t, repo.MarkFailed(ctx, wf.ID, "upstream down"))
	got, err := repo.GetByID(ctx, wf.ID)
	require.NoError(t, err)
	require.Equal(t, model.WorkflowFailed, got.Status)
	require.Equal(t, "upstream down", *got.ErrorMessage)

	open, err = repo.FindOpen(ctx, post.ID, "de")
	require.NoError(t, err)
	require.Nil(t, open)

	require.NoError(t, repo.ResetToPending(ctx, wf.ID))
	got, err = repo.GetByID(ctx, wf.ID)
	require.NoError(t, err)
	require.Equal(t, model.WorkflowPending, got.Status)
	require.Nil(t, got.ErrorMessage)

	_, err = repo.ClaimPending(ctx, 1)
	require.NoError(t, err)
	require.NoError(t, repo.MarkCompleted(ctx, wf.ID))
	got, err = repo.GetByID(ctx, wf.ID)
	require.NoError(t, err)
	require.Equal(t, model.WorkflowCompleted, got.Status)
	require.Equal(t, 2, got.Attempts)
	require.NotNil(t, got.CompletedAt)

	list, err := repo.ListByPost(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestWorkflowRepository_ClaimLimitAndReset(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewWorkflowRepository(db)
	ctx := context.Background()
	user := testutil.SeedUser(t, db, model.User{})
	post := testutil.SeedPost(t, db, model.BlogPost{UserID: user.ID})

	for _, lang := range []string{"de", "fr", "es"} {
		_, err := repo.Create(ctx, post.ID, lang)
		require.NoError(t, err)
	}

	claimed, err := repo.ClaimPending(ctx, 2)
	require.NoError(t, err)
	require.Len(t, claimed, 2)

	n, err := repo.ResetProcessing(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(2), n)

	claimed, err = repo.ClaimPending(ctx, 0)
	require.NoError(t, err)
	require.Empty(t, claimed)

	claimed, err = repo.ClaimPending(ctx, 5)
	require.NoError(t, err)
	require.Len(t, claimed, 3)
}

func TestTranslationRepository_Upsert(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewTranslationRepository(db)
	ctx := context.Background()
	user := testutil.SeedUser(t, db, model.User{})
	post := testutil.SeedPost(t, db, model.BlogPost{UserID: user.ID})

	missing, err := repo.Get(ctx, post.ID, "de")
	require.NoError(t, err)
	require.Nil(t, missing)

	first, err := repo.Upsert(ctx, model.BlogPostTranslation{PostID: post.ID, Language: "de", Title: "Hallo", Content: "v1"})
	require.NoError(t, err)

	second, err := repo.Upsert(ctx, model.BlogPostTranslation{PostID: post.ID, Language: "de", Title: "Hallo", Content: "v2"})
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)
	require.Equal(t, "v2", second.Content)

	_, err = repo.Upsert(ctx, model.BlogPostTranslation{PostID: post.ID, Language: "fr", Title: "Bonjour"})
	require.NoError(t, err)

	list, err := repo.ListByPost(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "de", list[0].Language)

	require.NoError(t, repo.Delete(ctx, post.ID, "de"))
	list, err = repo.ListByPost(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
}
