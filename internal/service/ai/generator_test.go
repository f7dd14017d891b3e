package ai_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"inkwell/backend/internal/model"
	"inkwell/backend/internal/service/ai"
)

type stubProvider struct {
	reply   string
	chunks  []string
	err     error
	system  string
	content string
}

func (p *stubProvider) Name() string                         { return "stub" }
func (p *stubProvider) Test(context.Context) (string, error) { return "ok", nil }

func (p *stubProvider) Complete(_ context.Context, system, content string) (string, error) {
	p.system, p.content = system, content
	return p.reply, p.err
}

func (p *stubProvider) Stream(_ context.Context, system, content string) (<-chan string, <-chan error) {
	p.system, p.content = system, content
	textCh := make(chan string, len(p.chunks))
	errCh := make(chan error, 1)
	for _, c := range p.chunks {
		textCh <- c
	}
	close(textCh)
	if p.err != nil {
		errCh <- p.err
	}
	close(errCh)
	return textCh, errCh
}

func newGenerator(p ai.Provider) *ai.Generator {
	return ai.NewGenerator(func(context.Context) (ai.Provider, error) { return p, nil }, ai.NewRateLimiter(100))
}

func TestGenerator_ResearchKeywords_FencedJSON(t *testing.T) {
	p := &stubProvider{reply: "```json\n{\"keywords\":[{\"keyword\":\"cold brew\",\"volume\":100}]}\n```"}
	keywords, err := newGenerator(p).ResearchKeywords(context.Background(), model.KeywordResearchInput{SeedKeyword: "coffee", Language: "en"})
	require.NoError(t, err)
	require.Equal(t, []model.Keyword{{Keyword: "cold brew", Volume: 100}}, keywords)
	require.Contains(t, p.content, `"seedKeyword": "coffee"`)
	require.Contains(t, p.system, "keyword researcher")
}

func TestGenerator_BadOutput(t *testing.T) {
	p := &stubProvider{reply: "sorry, I cannot help"}
	_, err := newGenerator(p).GenerateOutline(context.Background(), model.OutlineInput{})
	require.ErrorIs(t, err, ai.ErrBadOutput)

	p.reply = `{"sections":[]}`
	_, err = newGenerator(p).GenerateOutline(context.Background(), model.OutlineInput{})
	require.ErrorIs(t, err, ai.ErrBadOutput)
}

func TestGenerator_ProviderError(t *testing.T) {
	boom := errors.New("rate limited")
	p := &stubProvider{err: boom}
	_, err := newGenerator(p).GenerateTitles(context.Background(), model.TitleInput{Count: 3})
	require.ErrorIs(t, err, boom)
}

func TestGenerator_GenerateArticle_CollectsStream(t *testing.T) {
	p := &stubProvider{chunks: []string{"## Intro\n", "Coffee ", "is great."}}
	article, err := newGenerator(p).GenerateArticle(context.Background(), model.ArticleInput{Title: "Coffee", Language: "en"})
	require.NoError(t, err)
	require.Equal(t, "## Intro\nCoffee is great.", article.Content)
	require.True(t, strings.HasPrefix(p.content, "<input>"))
}

func TestGenerator_GenerateArticle_StreamError(t *testing.T) {
	p := &stubProvider{chunks: []string{"partial"}, err: errors.New("connection reset")}
	_, err := newGenerator(p).GenerateArticle(context.Background(), model.ArticleInput{})
	require.Error(t, err)
}

func TestGenerator_ProviderUnavailable(t *testing.T) {
	g := ai.NewGenerator(func(context.Context) (ai.Provider, error) { return nil, ai.ErrMissingAPIKey }, nil)
	_, err := g.TranslatePost(context.Background(), model.TranslateInput{TargetLanguage: "de"})
	require.ErrorIs(t, err, ai.ErrMissingAPIKey)
}

func TestNewProvider_Validation(t *testing.T) {
	ctx := context.Background()
	_, err := ai.NewProvider(ctx, ai.Config{Provider: ai.ProviderOpenAI, Model: "m"})
	require.ErrorIs(t, err, ai.ErrMissingAPIKey)

	_, err = ai.NewProvider(ctx, ai.Config{Provider: ai.ProviderOpenAI, APIKey: "k"})
	require.ErrorIs(t, err, ai.ErrMissingModel)

	_, err = ai.NewProvider(ctx, ai.Config{Provider: ai.ProviderCompatible, APIKey: "k", Model: "m"})
	require.ErrorIs(t, err, ai.ErrMissingBaseURL)

	_, err = ai.NewProvider(ctx, ai.Config{Provider: "bogus", APIKey: "k", Model: "m"})
	require.ErrorIs(t, err, ai.ErrInvalidProvider)

	p, err := ai.NewProvider(ctx, ai.Config{Provider: ai.ProviderAnthropic, APIKey: "k", Model: "m"})
	require.NoError(t, err)
	require.Equal(t, ai.ProviderAnthropic, p.Name())
}

func TestRateLimiter_SetLimit(t *testing.T) {
	rl := ai.NewRateLimiter(0)
	require.Equal(t, ai.DefaultRateLimit, rl.Limit())
	rl.SetLimit(3)
	require.Equal(t, 3, rl.Limit())
	rl.SetLimit(-1)
	require.Equal(t, ai.DefaultRateLimit, rl.Limit())
	require.NoError(t, rl.Wait(context.Background(), "test"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.Error(t, ai.NewRateLimiter(1).Wait(ctx, "test"))
}
