package ai

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GeminiProvider implements Provider for the Google Gemini API.
type GeminiProvider struct {
	client         *genai.Client
	model          string
	thinking       bool
	thinkingBudget int
	maxTokens      int
}

func NewGeminiProvider(ctx context.Context, cfg Config) (*GeminiProvider, error) {
	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}
	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiProvider{
		client:         client,
		model:          cfg.Model,
		thinking:       cfg.Thinking,
		thinkingBudget: cfg.ThinkingBudget,
		maxTokens:      cfg.MaxTokens,
	}, nil
}

func (p *GeminiProvider) Name() string {
	return ProviderGemini
}

func (p *GeminiProvider) config(systemPrompt string, maxTokens int) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(maxTokens),
	}
	if systemPrompt != "" {
		cfg.SystemInstruction = genai.NewContentFromText(systemPrompt, genai.RoleUser)
	}
	budget := int32(0)
	if p.thinking {
		budget = int32(p.thinkingBudget)
		if budget <= 0 {
			budget = -1 // dynamic
		}
	}
	cfg.ThinkingConfig = &genai.ThinkingConfig{ThinkingBudget: &budget}
	return cfg
}

func (p *GeminiProvider) contents(content string) []*genai.Content {
	return []*genai.Content{genai.NewContentFromText(content, genai.RoleUser)}
}

func (p *GeminiProvider) Test(ctx context.Context) (string, error) {
	resp, err := p.client.Models.GenerateContent(ctx, p.model, p.contents("Hello world"), p.config("", 50))
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

func (p *GeminiProvider) Complete(ctx context.Context, systemPrompt, content string) (string, error) {
	resp, err := p.client.Models.GenerateContent(ctx, p.model, p.contents(content), p.config(systemPrompt, p.maxTokens))
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

func (p *GeminiProvider) Stream(ctx context.Context, systemPrompt, content string) (<-chan string, <-chan error) {
	textCh := make(chan string)
	errCh := make(chan error, 1)

	go func() {
		defer close(textCh)
		defer close(errCh)

		for resp, err := range p.client.Models.GenerateContentStream(ctx, p.model, p.contents(content), p.config(systemPrompt, p.maxTokens)) {
			if err != nil {
				sendErr(errCh, err)
				return
			}
			text := resp.Text()
			if text == "" {
				continue
			}
			select {
			case textCh <- text:
			case <-ctx.Done():
				sendErr(errCh, ctx.Err())
				return
			}
		}
	}()

	return textCh, errCh
}
