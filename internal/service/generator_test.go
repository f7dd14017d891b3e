package service_test

import (
	"context"
	"errors"
	"testing"

	"inkwell/backend/internal/model"
	"inkwell/backend/internal/service"
	svcmock "inkwell/backend/internal/service/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGenerator_RoutesByBackend(t *testing.T) {
	ctrl := gomock.NewController(t)
	backends := svcmock.NewMockBackendSource(ctrl)
	webhook := svcmock.NewMockGenerator(ctrl)
	llm := svcmock.NewMockGenerator(ctrl)
	gen := service.NewGenerator(backends, webhook, llm)
	ctx := context.Background()
	in := model.KeywordResearchInput{SeedKeyword: "coffee", Language: "en"}

	backends.EXPECT().GenerationBackend(ctx).Return(service.BackendWorkflow)
	webhook.EXPECT().ResearchKeywords(ctx, in).Return([]model.Keyword{{Keyword: "from webhook"}}, nil)

	got, err := gen.ResearchKeywords(ctx, in)
	require.NoError(t, err)
	require.Equal(t, "from webhook", got[0].Keyword)

	backends.EXPECT().GenerationBackend(ctx).Return(service.BackendLLM)
	llm.EXPECT().ResearchKeywords(ctx, in).Return([]model.Keyword{{Keyword: "from llm"}}, nil)

	got, err = gen.ResearchKeywords(ctx, in)
	require.NoError(t, err)
	require.Equal(t, "from llm", got[0].Keyword)
}

func TestGenerator_WrapsFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	backends := svcmock.NewMockBackendSource(ctrl)
	webhook := svcmock.NewMockGenerator(ctrl)
	gen := service.NewGenerator(backends, webhook, svcmock.NewMockGenerator(ctrl))
	ctx := context.Background()
	cause := errors.New("status 500")

	backends.EXPECT().GenerationBackend(ctx).Return(service.BackendWorkflow).Times(2)
	webhook.EXPECT().GenerateArticle(ctx, gomock.Any()).Return(model.Article{}, cause)

	_, err := gen.GenerateArticle(ctx, model.ArticleInput{Title: "T"})
	require.ErrorIs(t, err, service.ErrUpstream)
	require.ErrorIs(t, err, cause)
	var upstream *service.UpstreamError
	require.True(t, errors.As(err, &upstream))
	require.Equal(t, service.BackendWorkflow, upstream.Backend)

	// Cancellation is passed through untouched.
	webhook.EXPECT().TranslatePost(ctx, gomock.Any()).Return(model.TranslatedPost{}, context.Canceled)
	_, err = gen.TranslatePost(ctx, model.TranslateInput{TargetLanguage: "fr"})
	require.ErrorIs(t, err, context.Canceled)
	require.NotErrorIs(t, err, service.ErrUpstream)
}
