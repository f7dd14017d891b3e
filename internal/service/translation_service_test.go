package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"inkwell/backend/internal/model"
	"inkwell/backend/internal/repository"
	"inkwell/backend/internal/repository/testutil"
	"inkwell/backend/internal/service"
	svcmock "inkwell/backend/internal/service/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type translationFixture struct {
	svc          service.TranslationService
	generator    *svcmock.MockGenerator
	workflows    repository.WorkflowRepository
	translations repository.TranslationRepository
	user         model.User
	post         model.BlogPost
}

func newTranslationFixture(t *testing.T) translationFixture {
	t.Helper()
	db := testutil.NewTestDB(t)
	ctrl := gomock.NewController(t)
	generator := svcmock.NewMockGenerator(ctrl)
	posts := repository.NewBlogPostRepository(db)
	translations := repository.NewTranslationRepository(db)
	workflows := repository.NewWorkflowRepository(db)
	user := testutil.SeedUser(t, db, model.User{})
	post := testutil.SeedPost(t, db, model.BlogPost{
		UserID:   user.ID,
		Title:    "Hello",
		Slug:     "hello",
		Content:  "# Hello\n\nWorld",
		Language: "en",
	})
	return translationFixture{
		svc:          service.NewTranslationService(posts, translations, workflows, generator, 2),
		generator:    generator,
		workflows:    workflows,
		translations: translations,
		user:         user,
		post:         post,
	}
}

func TestTranslationService_RequestTranslations_Idempotent(t *testing.T) {
	f := newTranslationFixture(t)
	ctx := context.Background()

	first, err := f.svc.RequestTranslations(ctx, f.user.ID, f.post.ID, []string{"fr", "DE", "fr"})
	require.NoError(t, err)
	require.Len(t, first, 2)
	for _, wf := range first {
		require.Equal(t, model.WorkflowPending, wf.Status)
	}

	again, err := f.svc.RequestTranslations(ctx, f.user.ID, f.post.ID, []string{"fr"})
	require.NoError(t, err)
	require.Len(t, again, 1)
	require.Equal(t, first[0].ID, again[0].ID)

	list, err := f.svc.ListWorkflows(ctx, f.user.ID, f.post.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
}

func TestTranslationService_RequestTranslations_Validation(t *testing.T) {
	f := newTranslationFixture(t)
	ctx := context.Background()

	_, err := f.svc.RequestTranslations(ctx, f.user.ID, f.post.ID, []string{"en"})
	require.ErrorIs(t, err, service.ErrInvalid)

	_, err = f.svc.RequestTranslations(ctx, f.user.ID, f.post.ID, []string{"klingon"})
	require.ErrorIs(t, err, service.ErrInvalid)

	_, err = f.svc.RequestTranslations(ctx, f.user.ID, f.post.ID, nil)
	require.ErrorIs(t, err, service.ErrInvalid)

	_, err = f.svc.RequestTranslations(ctx, f.user.ID+1, f.post.ID, []string{"fr"})
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestTranslationService_ProcessPending_Success(t *testing.T) {
	f := newTranslationFixture(t)
	ctx := context.Background()

	_, err := f.svc.RequestTranslations(ctx, f.user.ID, f.post.ID, []string{"fr"})
	require.NoError(t, err)

	f.generator.EXPECT().
		TranslatePost(gomock.Any(), model.TranslateInput{
			Title:          "Hello",
			Content:        "# Hello\n\nWorld",
			SourceLanguage: "en",
			TargetLanguage: "fr",
		}).
		Return(model.TranslatedPost{Title: " Bonjour ", Content: "# Bonjour\n\nMonde"}, nil)

	n, err := f.svc.ProcessPending(ctx, 10)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.False(t, f.svc.IsProcessing())

	tr, err := f.translations.Get(ctx, f.post.ID, "fr")
	require.NoError(t, err)
	require.NotNil(t, tr)
	require.Equal(t, "Bonjour", tr.Title)

	list, err := f.svc.ListWorkflows(ctx, f.user.ID, f.post.ID)
	require.NoError(t, err)
	require.Equal(t, model.WorkflowCompleted, list[0].Status)
	require.NotNil(t, list[0].CompletedAt)

	// Nothing left to do.
	n, err = f.svc.ProcessPending(ctx, 10)
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestTranslationService_ProcessPending_FailureAndRetry(t *testing.T) {
	f := newTranslationFixture(t)
	ctx := context.Background()

	wfs, err := f.svc.RequestTranslations(ctx, f.user.ID, f.post.ID, []string{"es"})
	require.NoError(t, err)

	f.generator.EXPECT().
		TranslatePost(gomock.Any(), gomock.Any()).
		Return(model.TranslatedPost{}, &service.UpstreamError{Backend: "workflow", Err: errors.New(strings.Repeat("x", 2000))})

	_, err = f.svc.ProcessPending(ctx, 10)
	require.NoError(t, err)

	failed, err := f.workflows.GetByID(ctx, wfs[0].ID)
	require.NoError(t, err)
	require.Equal(t, model.WorkflowFailed, failed.Status)
	require.NotNil(t, failed.ErrorMessage)
	require.Equal(t, 1000, utf8.RuneCountInString(*failed.ErrorMessage))

	retried, err := f.svc.RetryWorkflow(ctx, f.user.ID, failed.ID)
	require.NoError(t, err)
	require.Equal(t, model.WorkflowPending, retried.Status)

	_, err = f.svc.RetryWorkflow(ctx, f.user.ID, failed.ID)
	require.ErrorIs(t, err, service.ErrConflict)

	_, err = f.svc.RetryWorkflow(ctx, f.user.ID, 404)
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestTranslationService_FailureMessageKeepsValidUTF8(t *testing.T) {
	f := newTranslationFixture(t)
	ctx := context.Background()

	wfs, err := f.svc.RequestTranslations(ctx, f.user.ID, f.post.ID, []string{"ja"})
	require.NoError(t, err)

	f.generator.EXPECT().
		TranslatePost(gomock.Any(), gomock.Any()).
		Return(model.TranslatedPost{}, errors.New(strings.Repeat("翻訳", 1000)))

	_, err = f.svc.ProcessPending(ctx, 1)
	require.NoError(t, err)

	failed, err := f.workflows.GetByID(ctx, wfs[0].ID)
	require.NoError(t, err)
	require.NotNil(t, failed.ErrorMessage)
	require.True(t, utf8.ValidString(*failed.ErrorMessage))
	require.Equal(t, 1000, utf8.RuneCountInString(*failed.ErrorMessage))
}

func TestTranslationService_EmptyTranslationFails(t *testing.T) {
	f := newTranslationFixture(t)
	ctx := context.Background()

	wfs, err := f.svc.RequestTranslations(ctx, f.user.ID, f.post.ID, []string{"it"})
	require.NoError(t, err)

	f.generator.EXPECT().TranslatePost(gomock.Any(), gomock.Any()).Return(model.TranslatedPost{Title: "Ciao"}, nil)

	_, err = f.svc.ProcessPending(ctx, 1)
	require.NoError(t, err)

	wf, err := f.workflows.GetByID(ctx, wfs[0].ID)
	require.NoError(t, err)
	require.Equal(t, model.WorkflowFailed, wf.Status)

	tr, err := f.translations.Get(ctx, f.post.ID, "it")
	require.NoError(t, err)
	require.Nil(t, tr)
}

func TestTranslationService_CancelledRunIsRequeued(t *testing.T) {
	f := newTranslationFixture(t)
	ctx, cancel := context.WithCancel(context.Background())

	wfs, err := f.svc.RequestTranslations(ctx, f.user.ID, f.post.ID, []string{"pt"})
	require.NoError(t, err)

	f.generator.EXPECT().
		TranslatePost(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ model.TranslateInput) (model.TranslatedPost, error) {
			cancel()
			return model.TranslatedPost{}, ctx.Err()
		})

	_, err = f.svc.ProcessPending(ctx, 1)
	require.NoError(t, err)

	wf, err := f.workflows.GetByID(context.Background(), wfs[0].ID)
	require.NoError(t, err)
	require.Equal(t, model.WorkflowPending, wf.Status)
}

func TestTranslationService_RecoverStale(t *testing.T) {
	f := newTranslationFixture(t)
	ctx := context.Background()

	wfs, err := f.svc.RequestTranslations(ctx, f.user.ID, f.post.ID, []string{"nl"})
	require.NoError(t, err)
	claimed, err := f.workflows.ClaimPending(ctx, 1)
	require.NoError(t, err)
	require.Len(t, claimed, 1)

	require.NoError(t, f.svc.RecoverStale(ctx))

	wf, err := f.workflows.GetByID(ctx, wfs[0].ID)
	require.NoError(t, err)
	require.Equal(t, model.WorkflowPending, wf.Status)
}
