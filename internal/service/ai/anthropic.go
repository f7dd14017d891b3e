package ai

import (
	"context"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicProvider implements Provider for the Anthropic API.
type AnthropicProvider struct {
	client         anthropic.Client
	model          string
	thinking       bool
	thinkingBudget int
	maxTokens      int
}

func NewAnthropicProvider(cfg Config) *AnthropicProvider {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &AnthropicProvider{
		client:         anthropic.NewClient(opts...),
		model:          cfg.Model,
		thinking:       cfg.Thinking,
		thinkingBudget: cfg.ThinkingBudget,
		maxTokens:      cfg.MaxTokens,
	}
}

func (p *AnthropicProvider) Name() string {
	return ProviderAnthropic
}

func (p *AnthropicProvider) params(systemPrompt, content string, maxTokens int) anthropic.MessageNewParams {
	params := anthropic.MessageNewParams{
		Model: anthropic.Model(p.model),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(content)),
		},
	}
	if systemPrompt != "" {
		params.System = []anthropic.TextBlockParam{{Text: systemPrompt}}
	}

	if p.thinking && p.thinkingBudget > 0 {
		// budget_tokens must stay below max_tokens
		params.MaxTokens = int64(p.thinkingBudget + maxTokens)
		params.Thinking = anthropic.ThinkingConfigParamOfEnabled(int64(p.thinkingBudget))
	} else {
		params.MaxTokens = int64(maxTokens)
		disabled := anthropic.NewThinkingConfigDisabledParam()
		params.Thinking = anthropic.ThinkingConfigParamUnion{OfDisabled: &disabled}
	}
	return params
}

func (p *AnthropicProvider) Test(ctx context.Context) (string, error) {
	return p.complete(ctx, p.params("", "Hello world", 50))
}

func (p *AnthropicProvider) Complete(ctx context.Context, systemPrompt, content string) (string, error) {
	return p.complete(ctx, p.params(systemPrompt, content, p.maxTokens))
}

func (p *AnthropicProvider) complete(ctx context.Context, params anthropic.MessageNewParams) (string, error) {
	resp, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return "", err
	}

	// Thinking blocks are skipped.
	var sb strings.Builder
	for _, block := range resp.Content {
		if v, ok := block.AsAny().(anthropic.TextBlock); ok {
			sb.WriteString(v.Text)
		}
	}
	return sb.String(), nil
}

func (p *AnthropicProvider) Stream(ctx context.Context, systemPrompt, content string) (<-chan string, <-chan error) {
	textCh := make(chan string)
	errCh := make(chan error, 1)

	go func() {
		defer close(textCh)
		defer close(errCh)

		stream := p.client.Messages.NewStreaming(ctx, p.params(systemPrompt, content, p.maxTokens))
		defer stream.Close()

		for stream.Next() {
			event := stream.Current()
			if event.Type != "content_block_delta" || event.Delta.Type != "text_delta" || event.Delta.Text == "" {
				continue
			}
			select {
			case textCh <- event.Delta.Text:
			case <-ctx.Done():
				sendErr(errCh, ctx.Err())
				return
			}
		}
		if err := stream.Err(); err != nil {
			sendErr(errCh, err)
		}
	}()

	return textCh, errCh
}
