// Package ai talks to LLM providers directly. It backs the "llm" generation
// backend as an alternative to the workflow webhook.
package ai

import (
	"context"
	"errors"
)

// Provider defines the interface for AI providers.
type Provider interface {
	// Name returns the provider name.
	Name() string
	// Test sends a short message to verify the credentials and model.
	Test(ctx context.Context) (string, error)
	// Complete generates a response without streaming.
	Complete(ctx context.Context, systemPrompt, content string) (string, error)
	// Stream generates a response chunk by chunk. The text channel is closed
	// when the stream ends; at most one error is sent on the error channel.
	Stream(ctx context.Context, systemPrompt, content string) (<-chan string, <-chan error)
}

// Config holds the configuration for an AI provider.
type Config struct {
	Provider        string // openai, anthropic, compatible, gemini
	APIKey          string
	BaseURL         string // optional for openai/anthropic/gemini, required for compatible
	Model           string
	Thinking        bool
	ThinkingBudget  int    // Anthropic/Gemini/Compatible budget tokens
	ReasoningEffort string // OpenAI/Compatible effort: low/medium/high
	MaxTokens       int    // output cap; 0 uses the provider default
}

const (
	ProviderOpenAI     = "openai"
	ProviderAnthropic  = "anthropic"
	ProviderCompatible = "compatible"
	ProviderGemini     = "gemini"
)

// DefaultMaxTokens bounds generated articles when no cap is configured.
const DefaultMaxTokens = 8192

var (
	ErrInvalidProvider = errors.New("invalid provider")
	ErrMissingAPIKey   = errors.New("API key is required")
	ErrMissingBaseURL  = errors.New("base URL is required for compatible provider")
	ErrMissingModel    = errors.New("model is required")
)

// IsValidProvider reports whether name is a supported provider.
func IsValidProvider(name string) bool {
	switch name {
	case ProviderOpenAI, ProviderAnthropic, ProviderCompatible, ProviderGemini:
		return true
	}
	return false
}

// NewProvider creates a new AI provider based on the config.
func NewProvider(ctx context.Context, cfg Config) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.Model == "" {
		return nil, ErrMissingModel
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}

	switch cfg.Provider {
	case ProviderOpenAI:
		return NewOpenAIProvider(cfg), nil
	case ProviderAnthropic:
		return NewAnthropicProvider(cfg), nil
	case ProviderCompatible:
		if cfg.BaseURL == "" {
			return nil, ErrMissingBaseURL
		}
		return NewCompatibleProvider(cfg), nil
	case ProviderGemini:
		return NewGeminiProvider(ctx, cfg)
	default:
		return nil, ErrInvalidProvider
	}
}

// collect drains a stream into a single string.
func collect(ctx context.Context, textCh <-chan string, errCh <-chan error) (string, error) {
	var out []byte
	for chunk := range textCh {
		out = append(out, chunk...)
	}
	if err := <-errCh; err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return string(out), nil
}

// sendErr delivers err without blocking on a buffered error channel.
func sendErr(errCh chan<- error, err error) {
	select {
	case errCh <- err:
	default:
	}
}
