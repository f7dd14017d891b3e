package ai

import (
	"context"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// CompatibleProvider implements Provider for OpenAI-compatible APIs
// such as OpenRouter, Ollama or vLLM.
type CompatibleProvider struct {
	client          openai.Client
	model           string
	thinking        bool
	thinkingBudget  int
	reasoningEffort string
	maxTokens       int
}

func NewCompatibleProvider(cfg Config) *CompatibleProvider {
	return &CompatibleProvider{
		client: openai.NewClient(
			option.WithAPIKey(cfg.APIKey),
			option.WithBaseURL(cfg.BaseURL),
		),
		model:           cfg.Model,
		thinking:        cfg.Thinking,
		thinkingBudget:  cfg.ThinkingBudget,
		reasoningEffort: cfg.ReasoningEffort,
		maxTokens:       cfg.MaxTokens,
	}
}

func (p *CompatibleProvider) Name() string {
	return ProviderCompatible
}

// reasoningOption sets the OpenRouter-style "reasoning" extension field.
func (p *CompatibleProvider) reasoningOption() option.RequestOption {
	if !p.thinking {
		return option.WithJSONSet("reasoning", map[string]any{"enabled": false})
	}
	reasoning := map[string]any{}
	if p.reasoningEffort != "" {
		reasoning["effort"] = p.reasoningEffort
	} else if p.thinkingBudget > 0 {
		reasoning["max_tokens"] = p.thinkingBudget
	} else {
		reasoning["enabled"] = true
	}
	return option.WithJSONSet("reasoning", reasoning)
}

func (p *CompatibleProvider) params(systemPrompt, content string, maxTokens int) openai.ChatCompletionNewParams {
	return openai.ChatCompletionNewParams{
		Model:     openai.ChatModel(p.model),
		Messages:  chatMessages(systemPrompt, content),
		MaxTokens: openai.Int(int64(maxTokens)),
	}
}

func (p *CompatibleProvider) Test(ctx context.Context) (string, error) {
	resp, err := p.client.Chat.Completions.New(ctx, p.params("", "Hello world", 50), p.reasoningOption())
	if err != nil {
		return "", err
	}
	return firstChoice(resp), nil
}

func (p *CompatibleProvider) Complete(ctx context.Context, systemPrompt, content string) (string, error) {
	resp, err := p.client.Chat.Completions.New(ctx, p.params(systemPrompt, content, p.maxTokens), p.reasoningOption())
	if err != nil {
		return "", err
	}
	return firstChoice(resp), nil
}

func (p *CompatibleProvider) Stream(ctx context.Context, systemPrompt, content string) (<-chan string, <-chan error) {
	return streamChat(ctx, p.client, p.params(systemPrompt, content, p.maxTokens), p.reasoningOption())
}
