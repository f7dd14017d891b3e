package ai

import (
	"context"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

// OpenAIProvider implements Provider for the OpenAI API.
type OpenAIProvider struct {
	client          openai.Client
	model           string
	thinking        bool
	reasoningEffort string
	maxTokens       int
}

func NewOpenAIProvider(cfg Config) *OpenAIProvider {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &OpenAIProvider{
		client:          openai.NewClient(opts...),
		model:           cfg.Model,
		thinking:        cfg.Thinking,
		reasoningEffort: cfg.ReasoningEffort,
		maxTokens:       cfg.MaxTokens,
	}
}

func (p *OpenAIProvider) Name() string {
	return ProviderOpenAI
}

// isReasoningModel reports whether the model accepts reasoning_effort (o1, o3, o4, gpt-5).
func (p *OpenAIProvider) isReasoningModel() bool {
	model := strings.ToLower(p.model)
	return strings.HasPrefix(model, "o1") ||
		strings.HasPrefix(model, "o3") ||
		strings.HasPrefix(model, "o4") ||
		strings.HasPrefix(model, "gpt-5")
}

func (p *OpenAIProvider) params(systemPrompt, content string, maxTokens int) openai.ChatCompletionNewParams {
	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(p.model),
		Messages: chatMessages(systemPrompt, content),
	}
	if p.thinking && p.isReasoningModel() && p.reasoningEffort != "" {
		params.ReasoningEffort = shared.ReasoningEffort(p.reasoningEffort)
		params.MaxCompletionTokens = openai.Int(int64(maxTokens))
	} else {
		params.MaxTokens = openai.Int(int64(maxTokens))
	}
	return params
}

func (p *OpenAIProvider) Test(ctx context.Context) (string, error) {
	resp, err := p.client.Chat.Completions.New(ctx, p.params("", "Hello world", 50))
	if err != nil {
		return "", err
	}
	return firstChoice(resp), nil
}

func (p *OpenAIProvider) Complete(ctx context.Context, systemPrompt, content string) (string, error) {
	resp, err := p.client.Chat.Completions.New(ctx, p.params(systemPrompt, content, p.maxTokens))
	if err != nil {
		return "", err
	}
	return firstChoice(resp), nil
}

func (p *OpenAIProvider) Stream(ctx context.Context, systemPrompt, content string) (<-chan string, <-chan error) {
	return streamChat(ctx, p.client, p.params(systemPrompt, content, p.maxTokens))
}

func chatMessages(systemPrompt, content string) []openai.ChatCompletionMessageParamUnion {
	messages := []openai.ChatCompletionMessageParamUnion{}
	if systemPrompt != "" {
		messages = append(messages, openai.SystemMessage(systemPrompt))
	}
	return append(messages, openai.UserMessage(content))
}

func firstChoice(resp *openai.ChatCompletion) string {
	if resp == nil || len(resp.Choices) == 0 {
		return ""
	}
	return resp.Choices[0].Message.Content
}

// streamChat is shared by the OpenAI and OpenAI-compatible providers.
func streamChat(ctx context.Context, client openai.Client, params openai.ChatCompletionNewParams, opts ...option.RequestOption) (<-chan string, <-chan error) {
	textCh := make(chan string)
	errCh := make(chan error, 1)

	go func() {
		defer close(textCh)
		defer close(errCh)

		stream := client.Chat.Completions.NewStreaming(ctx, params, opts...)
		defer stream.Close()

		for stream.Next() {
			chunk := stream.Current()
			for _, choice := range chunk.Choices {
				if choice.Delta.Content == "" {
					continue
				}
				select {
				case textCh <- choice.Delta.Content:
				case <-ctx.Done():
					sendErr(errCh, ctx.Err())
					return
				}
			}
		}
		if err := stream.Err(); err != nil {
			sendErr(errCh, err)
		}
	}()

	return textCh, errCh
}
