package repository_test

import (
	"context"
	"testing"

	"inkwell/backend/internal/model"
	"inkwell/backend/internal/repository"
	"inkwell/backend/internal/repository/testutil"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestProjectRepository_StateRoundTrip(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewProjectRepository(db)
	ctx := context.Background()
	user := testutil.SeedUser(t, db, model.User{})

	p, err := repo.Create(ctx, model.ContentProject{UserID: user.ID, Name: "Coffee", SeedKeyword: "coffee", Language: "en"})
	require.NoError(t, err)
	require.Equal(t, model.StepKeywords, p.Step)
	require.Empty(t, p.Keywords)
	require.NotNil(t, p.Priorities)

	p.Keywords = []model.Keyword{{Keyword: "coffee beans", Volume: 900, Difficulty: 40, CPC: 1.2}}
	p.Clusters = []model.Cluster{{ID: "c1", Name: "Beans", MainKeyword: "coffee beans", Keywords: p.Keywords}}
	p.SelectedClusters = []string{"c1"}
	p.Priorities = map[string]int{"c1": 1}
	p.Titles = []model.TitleSuggestion{{Title: "Best beans", Description: "A guide"}}
	p.Outline = []model.OutlineSection{{Heading: "Intro", Points: []string{"why"}}}
	p.ReferenceURLs = []string{"https://example.com"}
	p.Step = model.StepOutline

	updated, err := repo.Update(ctx, p)
	require.NoError(t, err)
	if diff := cmp.Diff(p.Clusters, updated.Clusters); diff != "" {
		t.Fatalf("clusters mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, p.Priorities, updated.Priorities)
	require.Equal(t, p.Outline, updated.Outline)
	require.Equal(t, p.ReferenceURLs, updated.ReferenceURLs)
	require.Equal(t, model.StepOutline, updated.Step)

	post := testutil.SeedPost(t, db, model.BlogPost{UserID: user.ID})
	updated.BlogPostID = &post.ID
	updated, err = repo.Update(ctx, updated)
	require.NoError(t, err)
	require.Equal(t, post.ID, *updated.BlogPostID)

	// Deleting the post detaches it from the project.
	require.NoError(t, repository.NewBlogPostRepository(db).Delete(ctx, post.ID))
	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.Nil(t, got.BlogPostID)

	list, err := repo.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, repo.Delete(ctx, p.ID))
	list, err = repo.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestSettingsRepository(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSettingsRepository(db)
	ctx := context.Background()

	missing, err := repo.Get(ctx, "ai.provider")
	require.NoError(t, err)
	require.Nil(t, missing)

	require.NoError(t, repo.Set(ctx, "ai.provider", "openai"))
	require.NoError(t, repo.Set(ctx, "ai.provider", "anthropic"))
	require.NoError(t, repo.Set(ctx, "ai.model", "m"))
	require.NoError(t, repo.Set(ctx, "aix", "other"))

	got, err := repo.Get(ctx, "ai.provider")
	require.NoError(t, err)
	require.Equal(t, "anthropic", got.Value)

	list, err := repo.GetByPrefix(ctx, "ai.")
	require.NoError(t, err)
	require.Len(t, list, 2)

	require.NoError(t, repo.Delete(ctx, "ai.model"))
	list, err = repo.GetByPrefix(ctx, "ai.")
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestSettingsRepository_SetMany(t *testing.T) {
	repo := repository.NewSettingsRepository(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.SetMany(ctx, nil))
	require.NoError(t, repo.Set(ctx, "generation.backend", "workflow"))
	require.NoError(t, repo.SetMany(ctx, map[string]string{
		"generation.backend":     "llm",
		"generation.webhook_url": "https://hooks.example.com/inkwell",
	}))

	list, err := repo.GetByPrefix(ctx, "generation.")
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "generation.backend", list[0].Key)
	require.Equal(t, "llm", list[0].Value)
	require.Equal(t, "https://hooks.example.com/inkwell", list[1].Value)
}
