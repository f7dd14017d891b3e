package service

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"inkwell/backend/internal/logger"
	"inkwell/backend/internal/network"
	"inkwell/backend/internal/repository"
	"inkwell/backend/internal/service/ai"
	"inkwell/backend/internal/workflow"
)

// Generation backends.
const (
	BackendWorkflow = "workflow"
	BackendLLM      = "llm"
)

// AISettings holds the LLM provider configuration.
type AISettings struct {
	Provider        string `json:"provider"`
	APIKey          string `json:"apiKey"`
	BaseURL         string `json:"baseUrl"`
	Model           string `json:"model"`
	Thinking        bool   `json:"thinking"`
	ThinkingBudget  int    `json:"thinkingBudget"`
	ReasoningEffort string `json:"reasoningEffort"`
	MaxTokens       int    `json:"maxTokens"`
	RateLimit       int    `json:"rateLimit"`
}

// GenerationSettings picks the generation backend and points at the webhook.
type GenerationSettings struct {
	Backend        string `json:"backend"`
	WebhookURL     string `json:"webhookUrl"`
	WebhookSecret  string `json:"webhookSecret"`
	TimeoutSeconds int    `json:"timeoutSeconds"`
}

// NetworkSettings holds the outbound proxy.
type NetworkSettings struct {
	ProxyURL string `json:"proxyUrl"`
}

// Setting keys
const (
	keyAIProvider        = "ai.provider"
	keyAIAPIKey          = "ai.api_key"
	keyAIBaseURL         = "ai.base_url"
	keyAIModel           = "ai.model"
	keyAIThinking        = "ai.thinking"
	keyAIThinkingBudget  = "ai.thinking_budget"
	keyAIReasoningEffort = "ai.reasoning_effort"
	keyAIMaxTokens       = "ai.max_tokens"
	keyAIRateLimit       = "ai.rate_limit"

	keyGenerationBackend = "generation.backend"
	keyWebhookURL        = "generation.webhook_url"
	keyWebhookSecret     = "generation.webhook_secret"
	keyWebhookTimeout    = "generation.webhook_timeout"

	keyProxyURL = "network.proxy_url"
)

const proxyTestURL = "https://www.google.com/generate_204"

// SettingsService manages admin settings and resolves the runtime
// configuration of the generation backends and the outbound proxy.
type SettingsService interface {
	// GetAISettings returns the AI configuration with masked API keys.
	GetAISettings(ctx context.Context) (*AISettings, error)
	// SetAISettings updates the AI configuration.
	// If apiKey is empty or masked, the existing key is kept.
	SetAISettings(ctx context.Context, settings *AISettings) error
	// TestAI tests the AI connection with the given configuration.
	TestAI(ctx context.Context, settings *AISettings) (string, error)

	GetGenerationSettings(ctx context.Context) (*GenerationSettings, error)
	SetGenerationSettings(ctx context.Context, settings *GenerationSettings) error

	GetNetworkSettings(ctx context.Context) (*NetworkSettings, error)
	SetNetworkSettings(ctx context.Context, settings *NetworkSettings) error
	TestProxy(ctx context.Context, proxyURL string) error

	// GenerationBackend returns the active backend name.
	GenerationBackend(ctx context.Context) string
	// AIProvider builds the configured LLM provider.
	AIProvider(ctx context.Context) (ai.Provider, error)
	// WebhookConfig implements workflow.ConfigProvider.
	WebhookConfig(ctx context.Context) workflow.Config
	// GetProxyURL implements network.ProxyProvider.
	GetProxyURL(ctx context.Context) string
}

type settingsService struct {
	repo        repository.SettingsRepository
	defaults    workflow.Config
	rateLimiter *ai.RateLimiter
}

// NewSettingsService creates a new settings service. defaults holds the
// webhook configuration from the environment, used when no override is stored.
func NewSettingsService(repo repository.SettingsRepository, defaults workflow.Config, rateLimiter *ai.RateLimiter) SettingsService {
	return &settingsService{repo: repo, defaults: defaults, rateLimiter: rateLimiter}
}

// GetAISettings returns the AI configuration with masked API keys.
func (s *settingsService) GetAISettings(ctx context.Context) (*AISettings, error) {
	settings, err := s.loadAISettings(ctx)
	if err != nil {
		return nil, err
	}
	settings.APIKey = maskAPIKey(settings.APIKey)
	return settings, nil
}

func (s *settingsService) loadAISettings(ctx context.Context) (*AISettings, error) {
	settings := &AISettings{
		Provider:        ai.ProviderOpenAI, // default
		ThinkingBudget:  10000,             // default budget
		ReasoningEffort: "medium",          // default effort
		MaxTokens:       ai.DefaultMaxTokens,
	}
	if s.rateLimiter != nil {
		settings.RateLimit = s.rateLimiter.Limit()
	}

	values, err := s.repo.GetByPrefix(ctx, "ai.")
	if err != nil {
		return nil, fmt.Errorf("load ai settings: %w", err)
	}
	for _, v := range values {
		switch v.Key {
		case keyAIProvider:
			if v.Value != "" {
				settings.Provider = v.Value
			}
		case keyAIAPIKey:
			settings.APIKey = v.Value
		case keyAIBaseURL:
			settings.BaseURL = v.Value
		case keyAIModel:
			settings.Model = v.Value
		case keyAIThinking:
			settings.Thinking = v.Value == "true"
		case keyAIThinkingBudget:
			if n, err := strconv.Atoi(v.Value); err == nil && n > 0 {
				settings.ThinkingBudget = n
			}
		case keyAIReasoningEffort:
			// Empty overrides the default (compatible budget mode).
			settings.ReasoningEffort = v.Value
		case keyAIMaxTokens:
			if n, err := strconv.Atoi(v.Value); err == nil && n > 0 {
				settings.MaxTokens = n
			}
		case keyAIRateLimit:
			if n, err := strconv.Atoi(v.Value); err == nil && n > 0 {
				settings.RateLimit = n
			}
		}
	}
	return settings, nil
}

// SetAISettings updates the AI configuration.
func (s *settingsService) SetAISettings(ctx context.Context, settings *AISettings) error {
	if settings.Provider != "" && !ai.IsValidProvider(settings.Provider) {
		return invalidf("unknown provider %q", settings.Provider)
	}
	if settings.ThinkingBudget < 0 || settings.MaxTokens < 0 || settings.RateLimit < 0 {
		return invalidf("numeric settings must not be negative")
	}

	values := map[string]string{
		keyAIBaseURL:         strings.TrimSpace(settings.BaseURL),
		keyAIModel:           strings.TrimSpace(settings.Model),
		keyAIThinking:        strconv.FormatBool(settings.Thinking),
		keyAIThinkingBudget:  strconv.Itoa(settings.ThinkingBudget),
		keyAIReasoningEffort: settings.ReasoningEffort,
		keyAIMaxTokens:       strconv.Itoa(settings.MaxTokens),
	}
	if settings.Provider != "" {
		values[keyAIProvider] = settings.Provider
	}
	if settings.RateLimit > 0 {
		values[keyAIRateLimit] = strconv.Itoa(settings.RateLimit)
	}
	putSecret(values, keyAIAPIKey, settings.APIKey)
	if err := s.repo.SetMany(ctx, values); err != nil {
		return fmt.Errorf("save ai settings: %w", err)
	}
	if settings.RateLimit > 0 && s.rateLimiter != nil {
		s.rateLimiter.SetLimit(settings.RateLimit)
	}
	logger.Info("ai settings updated", "module", "service", "action", "update", "resource", "settings", "result", "ok", "provider", settings.Provider, "model", settings.Model)
	return nil
}

// TestAI tests the AI connection with the given configuration.
func (s *settingsService) TestAI(ctx context.Context, settings *AISettings) (string, error) {
	apiKey := settings.APIKey
	// A masked key means "use the stored one".
	if apiKey == "" || isMaskedKey(apiKey) {
		stored, err := s.getString(ctx, keyAIAPIKey)
		if err != nil {
			return "", fmt.Errorf("get stored api key: %w", err)
		}
		apiKey = stored
	}

	p, err := ai.NewProvider(ctx, ai.Config{
		Provider:        settings.Provider,
		APIKey:          apiKey,
		BaseURL:         settings.BaseURL,
		Model:           settings.Model,
		Thinking:        settings.Thinking,
		ThinkingBudget:  settings.ThinkingBudget,
		ReasoningEffort: settings.ReasoningEffort,
		MaxTokens:       settings.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	reply, err := p.Test(ctx)
	if err != nil {
		return "", &UpstreamError{Backend: BackendLLM, Err: err}
	}
	return reply, nil
}

// AIProvider builds the provider from the stored settings.
func (s *settingsService) AIProvider(ctx context.Context) (ai.Provider, error) {
	settings, err := s.loadAISettings(ctx)
	if err != nil {
		return nil, err
	}
	p, err := ai.NewProvider(ctx, ai.Config{
		Provider:        settings.Provider,
		APIKey:          settings.APIKey,
		BaseURL:         settings.BaseURL,
		Model:           settings.Model,
		Thinking:        settings.Thinking,
		ThinkingBudget:  settings.ThinkingBudget,
		ReasoningEffort: settings.ReasoningEffort,
		MaxTokens:       settings.MaxTokens,
	})
	if err != nil {
		logger.Warn("ai provider create failed", "module", "service", "action", "fetch", "resource", "ai", "result", "failed", "provider", settings.Provider, "model", settings.Model, "error", err)
		return nil, err
	}
	return p, nil
}

func (s *settingsService) GetGenerationSettings(ctx context.Context) (*GenerationSettings, error) {
	cfg := s.WebhookConfig(ctx)
	return &GenerationSettings{
		Backend:        s.GenerationBackend(ctx),
		WebhookURL:     cfg.URL,
		WebhookSecret:  maskAPIKey(cfg.Secret),
		TimeoutSeconds: int(cfg.Timeout / time.Second),
	}, nil
}

func (s *settingsService) SetGenerationSettings(ctx context.Context, settings *GenerationSettings) error {
	backend := strings.TrimSpace(settings.Backend)
	if backend != "" && backend != BackendWorkflow && backend != BackendLLM {
		return invalidf("unknown generation backend %q", backend)
	}
	webhookURL := strings.TrimSpace(settings.WebhookURL)
	if webhookURL != "" {
		u, err := url.Parse(webhookURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return invalidf("webhook url must be an absolute http(s) url")
		}
	}
	if settings.TimeoutSeconds < 0 {
		return invalidf("timeout must not be negative")
	}

	values := map[string]string{keyWebhookURL: webhookURL}
	if backend != "" {
		values[keyGenerationBackend] = backend
	}
	if settings.TimeoutSeconds > 0 {
		values[keyWebhookTimeout] = strconv.Itoa(settings.TimeoutSeconds)
	}
	putSecret(values, keyWebhookSecret, settings.WebhookSecret)
	if err := s.repo.SetMany(ctx, values); err != nil {
		return fmt.Errorf("save generation settings: %w", err)
	}
	logger.Info("generation settings updated", "module", "service", "action", "update", "resource", "settings", "result", "ok", "backend", backend)
	return nil
}

func (s *settingsService) GenerationBackend(ctx context.Context) string {
	if val, err := s.getString(ctx, keyGenerationBackend); err == nil && val == BackendLLM {
		return BackendLLM
	}
	return BackendWorkflow
}

// WebhookConfig overlays stored settings on the environment defaults.
func (s *settingsService) WebhookConfig(ctx context.Context) workflow.Config {
	cfg := s.defaults
	if val, err := s.getString(ctx, keyWebhookURL); err == nil && val != "" {
		cfg.URL = val
	}
	if val, err := s.getString(ctx, keyWebhookSecret); err == nil && val != "" {
		cfg.Secret = val
	}
	if val, err := s.getString(ctx, keyWebhookTimeout); err == nil && val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			cfg.Timeout = time.Duration(n) * time.Second
		}
	}
	return cfg
}

func (s *settingsService) GetNetworkSettings(ctx context.Context) (*NetworkSettings, error) {
	val, err := s.getString(ctx, keyProxyURL)
	if err != nil {
		return nil, fmt.Errorf("get proxy url: %w", err)
	}
	return &NetworkSettings{ProxyURL: val}, nil
}

func (s *settingsService) SetNetworkSettings(ctx context.Context, settings *NetworkSettings) error {
	proxyURL := strings.TrimSpace(settings.ProxyURL)
	if proxyURL != "" {
		if err := validateProxyURL(proxyURL); err != nil {
			return err
		}
	}
	if err := s.repo.Set(ctx, keyProxyURL, proxyURL); err != nil {
		return fmt.Errorf("set proxy url: %w", err)
	}
	logger.Info("proxy settings updated", "module", "service", "action", "update", "resource", "settings", "result", "ok", "enabled", proxyURL != "")
	return nil
}

// TestProxy checks connectivity through proxyURL, or the stored proxy if empty.
func (s *settingsService) TestProxy(ctx context.Context, proxyURL string) error {
	proxyURL = strings.TrimSpace(proxyURL)
	if proxyURL == "" {
		proxyURL = s.GetProxyURL(ctx)
	}
	if proxyURL == "" {
		return invalidf("no proxy configured")
	}
	if err := validateProxyURL(proxyURL); err != nil {
		return err
	}
	if err := network.TestProxy(ctx, proxyURL, proxyTestURL); err != nil {
		return &UpstreamError{Backend: "proxy", Err: err}
	}
	return nil
}

func (s *settingsService) GetProxyURL(ctx context.Context) string {
	val, err := s.getString(ctx, keyProxyURL)
	if err != nil {
		return ""
	}
	return val
}

func validateProxyURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return invalidf("invalid proxy url")
	}
	switch u.Scheme {
	case "http", "https", "socks5", "socks5h":
		return nil
	}
	return invalidf("unsupported proxy scheme %q", u.Scheme)
}

// maskAPIKey returns a masked version of the API key for display.
func maskAPIKey(apiKey string) string {
	if apiKey == "" {
		return ""
	}
	if len(apiKey) <= 8 {
		return "***"
	}
	// Keep a short vendor prefix such as "sk-".
	prefixEnd := 0
	for i, c := range apiKey {
		if c == '-' {
			prefixEnd = i + 1
			break
		}
		if i >= 4 {
			break
		}
	}
	return apiKey[:prefixEnd] + "***" + apiKey[len(apiKey)-3:]
}

// isMaskedKey checks if a string looks like a masked API key.
func isMaskedKey(key string) bool {
	if len(key) == 0 || len(key) >= 20 {
		return false
	}
	return strings.Contains(key, "***")
}

// getString gets a plain string value from settings.
func (s *settingsService) getString(ctx context.Context, key string) (string, error) {
	setting, err := s.repo.Get(ctx, key)
	if err != nil {
		return "", err
	}
	if setting == nil {
		return "", nil
	}
	return setting.Value, nil
}

// putSecret adds a secret to values unless it is empty or still masked,
// in which case the stored secret is kept.
func putSecret(values map[string]string, key, value string) {
	if value == "" || isMaskedKey(value) {
		return
	}
	values[key] = value
}
