package service

import (
	"context"
	"errors"
	"fmt"

	"inkwell/backend/internal/logger"
	"inkwell/backend/internal/model"
)

// Generator performs the AI generation steps. The workflow webhook client and
// the LLM generator both satisfy it.
type Generator interface {
	ResearchKeywords(ctx context.Context, in model.KeywordResearchInput) ([]model.Keyword, error)
	ClusterKeywords(ctx context.Context, in model.ClusterInput) ([]model.Cluster, error)
	GenerateTitles(ctx context.Context, in model.TitleInput) ([]model.TitleSuggestion, error)
	GenerateMetadata(ctx context.Context, in model.MetadataInput) (model.PostMetadata, error)
	GenerateOutline(ctx context.Context, in model.OutlineInput) ([]model.OutlineSection, error)
	GenerateArticle(ctx context.Context, in model.ArticleInput) (model.Article, error)
	TranslatePost(ctx context.Context, in model.TranslateInput) (model.TranslatedPost, error)
}

// UpstreamError wraps a failure of an external collaborator.
type UpstreamError struct {
	Backend string
	Err     error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Backend, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

func (e *UpstreamError) Is(target error) bool {
	return target == ErrUpstream
}

// BackendSource reports the active generation backend.
type BackendSource interface {
	GenerationBackend(ctx context.Context) string
}

type generatorRouter struct {
	backends BackendSource
	webhook  Generator
	llm      Generator
}

// NewGenerator routes every call to the backend selected in settings.
// Failures are returned as *UpstreamError.
func NewGenerator(backends BackendSource, webhook, llm Generator) Generator {
	return &generatorRouter{backends: backends, webhook: webhook, llm: llm}
}

func route[T any](ctx context.Context, r *generatorRouter, action string, call func(Generator) (T, error)) (T, error) {
	backend := r.backends.GenerationBackend(ctx)
	g := r.webhook
	if backend == BackendLLM {
		g = r.llm
	}

	out, err := call(g)
	if err != nil {
		var zero T
		if errors.Is(err, context.Canceled) {
			return zero, err
		}
		logger.Warn("generation failed", "module", "service", "action", action, "resource", "generator", "result", "failed", "backend", backend, "error", err)
		return zero, &UpstreamError{Backend: backend, Err: err}
	}
	logger.Debug("generation completed", "module", "service", "action", action, "resource", "generator", "result", "ok", "backend", backend)
	return out, nil
}

func (r *generatorRouter) ResearchKeywords(ctx context.Context, in model.KeywordResearchInput) ([]model.Keyword, error) {
	return route(ctx, r, "keyword_research", func(g Generator) ([]model.Keyword, error) {
		return g.ResearchKeywords(ctx, in)
	})
}

func (r *generatorRouter) ClusterKeywords(ctx context.Context, in model.ClusterInput) ([]model.Cluster, error) {
	return route(ctx, r, "keyword_clustering", func(g Generator) ([]model.Cluster, error) {
		return g.ClusterKeywords(ctx, in)
	})
}

func (r *generatorRouter) GenerateTitles(ctx context.Context, in model.TitleInput) ([]model.TitleSuggestion, error) {
	return route(ctx, r, "title_generation", func(g Generator) ([]model.TitleSuggestion, error) {
		return g.GenerateTitles(ctx, in)
	})
}

func (r *generatorRouter) GenerateMetadata(ctx context.Context, in model.MetadataInput) (model.PostMetadata, error) {
	return route(ctx, r, "blog_metadata", func(g Generator) (model.PostMetadata, error) {
		return g.GenerateMetadata(ctx, in)
	})
}

func (r *generatorRouter) GenerateOutline(ctx context.Context, in model.OutlineInput) ([]model.OutlineSection, error) {
	return route(ctx, r, "outline_generation", func(g Generator) ([]model.OutlineSection, error) {
		return g.GenerateOutline(ctx, in)
	})
}

func (r *generatorRouter) GenerateArticle(ctx context.Context, in model.ArticleInput) (model.Article, error) {
	return route(ctx, r, "article_generation", func(g Generator) (model.Article, error) {
		return g.GenerateArticle(ctx, in)
	})
}

func (r *generatorRouter) TranslatePost(ctx context.Context, in model.TranslateInput) (model.TranslatedPost, error) {
	return route(ctx, r, "post_translation", func(g Generator) (model.TranslatedPost, error) {
		return g.TranslatePost(ctx, in)
	})
}
