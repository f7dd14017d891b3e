package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"inkwell/backend/internal/logger"
	"inkwell/backend/internal/model"
)

// ErrBadOutput is returned when the model's answer cannot be parsed.
var ErrBadOutput = errors.New("unparseable model output")

// ProviderSource resolves the configured provider for each call.
type ProviderSource func(ctx context.Context) (Provider, error)

// Generator runs the generation steps against an LLM provider.
type Generator struct {
	provider    ProviderSource
	rateLimiter *RateLimiter
}

func NewGenerator(provider ProviderSource, rateLimiter *RateLimiter) *Generator {
	return &Generator{provider: provider, rateLimiter: rateLimiter}
}

func (g *Generator) prepare(ctx context.Context, action string) (Provider, error) {
	if g.rateLimiter != nil {
		if err := g.rateLimiter.Wait(ctx, action); err != nil {
			return nil, err
		}
	}
	return g.provider(ctx)
}

// completeJSON sends input as a JSON document and decodes the JSON answer into out.
func (g *Generator) completeJSON(ctx context.Context, action, systemPrompt string, input any, out any) error {
	provider, err := g.prepare(ctx, action)
	if err != nil {
		return err
	}
	payload, err := json.MarshalIndent(input, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s input: %w", action, err)
	}

	start := time.Now()
	text, err := provider.Complete(ctx, systemPrompt, WrapInput(string(payload)))
	if err != nil {
		logger.Warn("llm call failed", "module", "ai", "action", action, "resource", provider.Name(), "result", "failed", "error", err)
		return fmt.Errorf("%s: %w", action, err)
	}
	if err := decodeModelJSON(text, out); err != nil {
		logger.Warn("llm output rejected", "module", "ai", "action", action, "resource", provider.Name(), "result", "failed", "error", err)
		return fmt.Errorf("%s: %w", action, err)
	}
	logger.Debug("llm call", "module", "ai", "action", action, "resource", provider.Name(), "result", "ok", "duration_ms", time.Since(start).Milliseconds())
	return nil
}

// decodeModelJSON tolerates code fences and prose around the JSON object.
func decodeModelJSON(text string, out any) error {
	s := strings.TrimSpace(text)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start < 0 || end < start {
		return ErrBadOutput
	}
	if err := json.Unmarshal([]byte(s[start:end+1]), out); err != nil {
		return fmt.Errorf("%w: %v", ErrBadOutput, err)
	}
	return nil
}

func (g *Generator) ResearchKeywords(ctx context.Context, in model.KeywordResearchInput) ([]model.Keyword, error) {
	var resp struct {
		Keywords []model.Keyword `json:"keywords"`
	}
	if err := g.completeJSON(ctx, "keyword_research", KeywordResearchPrompt(in.Language, in.Country), in, &resp); err != nil {
		return nil, err
	}
	return resp.Keywords, nil
}

func (g *Generator) ClusterKeywords(ctx context.Context, in model.ClusterInput) ([]model.Cluster, error) {
	var resp struct {
		Clusters []model.Cluster `json:"clusters"`
	}
	if err := g.completeJSON(ctx, "keyword_clustering", ClusterPrompt(in.Language), in, &resp); err != nil {
		return nil, err
	}
	return resp.Clusters, nil
}

func (g *Generator) GenerateTitles(ctx context.Context, in model.TitleInput) ([]model.TitleSuggestion, error) {
	var resp struct {
		Titles []model.TitleSuggestion `json:"titles"`
	}
	if err := g.completeJSON(ctx, "title_generation", TitlePrompt(in.Language, in.Count), in, &resp); err != nil {
		return nil, err
	}
	if len(resp.Titles) == 0 {
		return nil, fmt.Errorf("title_generation: %w", ErrBadOutput)
	}
	return resp.Titles, nil
}

func (g *Generator) GenerateMetadata(ctx context.Context, in model.MetadataInput) (model.PostMetadata, error) {
	var resp model.PostMetadata
	if err := g.completeJSON(ctx, "blog_metadata", MetadataPrompt(in.Language), in, &resp); err != nil {
		return model.PostMetadata{}, err
	}
	if strings.TrimSpace(resp.Title) == "" {
		return model.PostMetadata{}, fmt.Errorf("blog_metadata: %w", ErrBadOutput)
	}
	return resp, nil
}

func (g *Generator) GenerateOutline(ctx context.Context, in model.OutlineInput) ([]model.OutlineSection, error) {
	var resp struct {
		Sections []model.OutlineSection `json:"sections"`
	}
	if err := g.completeJSON(ctx, "outline_generation", OutlinePrompt(in.Language), in, &resp); err != nil {
		return nil, err
	}
	if len(resp.Sections) == 0 {
		return nil, fmt.Errorf("outline_generation: %w", ErrBadOutput)
	}
	return resp.Sections, nil
}

// GenerateArticle streams the article so long generations do not hit
// provider-side request timeouts.
func (g *Generator) GenerateArticle(ctx context.Context, in model.ArticleInput) (model.Article, error) {
	provider, err := g.prepare(ctx, "article_generation")
	if err != nil {
		return model.Article{}, err
	}
	payload, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return model.Article{}, fmt.Errorf("encode article input: %w", err)
	}

	textCh, errCh := provider.Stream(ctx, ArticlePrompt(in.Language), WrapInput(string(payload)))
	content, err := collect(ctx, textCh, errCh)
	if err != nil {
		logger.Warn("llm article failed", "module", "ai", "action", "article_generation", "resource", provider.Name(), "result", "failed", "error", err)
		return model.Article{}, fmt.Errorf("article_generation: %w", err)
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return model.Article{}, fmt.Errorf("article_generation: %w", ErrBadOutput)
	}
	return model.Article{Content: content}, nil
}

func (g *Generator) TranslatePost(ctx context.Context, in model.TranslateInput) (model.TranslatedPost, error) {
	var resp model.TranslatedPost
	if err := g.completeJSON(ctx, "post_translation", TranslatePrompt(in.TargetLanguage), in, &resp); err != nil {
		return model.TranslatedPost{}, err
	}
	if strings.TrimSpace(resp.Content) == "" {
		return model.TranslatedPost{}, fmt.Errorf("post_translation: %w", ErrBadOutput)
	}
	return resp, nil
}
