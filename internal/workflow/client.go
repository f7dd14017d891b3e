// Package workflow calls the external automation webhook that performs the AI
// generation steps. Every call is a JSON POST of an action envelope; responses
// are validated against embedded JSON Schemas before decoding.
package workflow

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"inkwell/backend/internal/logger"
	"inkwell/backend/internal/model"
	"inkwell/backend/internal/network"
)

type Action string

const (
	ActionKeywordResearch   Action = "keyword_research"
	ActionKeywordClustering Action = "keyword_clustering"
	ActionTitleGeneration   Action = "title_generation"
	ActionBlogMetadata      Action = "blog_metadata"
	ActionOutlineGeneration Action = "outline_generation"
	ActionArticleGeneration Action = "article_generation"
	ActionPostTranslation   Action = "post_translation"
)

var allActions = []Action{
	ActionKeywordResearch,
	ActionKeywordClustering,
	ActionTitleGeneration,
	ActionBlogMetadata,
	ActionOutlineGeneration,
	ActionArticleGeneration,
	ActionPostTranslation,
}

const (
	SecretHeader    = "X-Webhook-Secret"
	RequestIDHeader = "X-Request-ID"

	maxResponseBytes = 8 << 20
	maxErrorBody     = 512
)

// Envelope is the body of every webhook call.
type Envelope struct {
	Action    Action `json:"action"`
	RequestID string `json:"requestId"`
	Data      any    `json:"data"`
}

// Config points the client at the webhook.
type Config struct {
	URL     string
	Secret  string
	Timeout time.Duration
}

// ConfigProvider resolves the webhook config per call so admin changes apply
// without a restart.
type ConfigProvider interface {
	WebhookConfig(ctx context.Context) Config
}

type staticConfig Config

func (c staticConfig) WebhookConfig(context.Context) Config { return Config(c) }

// StaticConfig wraps a fixed Config.
func StaticConfig(cfg Config) ConfigProvider { return staticConfig(cfg) }

type Client struct {
	config  ConfigProvider
	clients *network.ClientFactory
	newID   func() string
}

func NewClient(config ConfigProvider, clients *network.ClientFactory) *Client {
	return &Client{
		config:  config,
		clients: clients,
		newID:   func() string { return uuid.NewString() },
	}
}

// Configured reports whether a webhook URL is set.
func (c *Client) Configured(ctx context.Context) bool {
	return strings.TrimSpace(c.config.WebhookConfig(ctx).URL) != ""
}

// Call posts data under action and decodes the validated response into out.
func (c *Client) Call(ctx context.Context, action Action, data any, out any) error {
	cfg := c.config.WebhookConfig(ctx)
	if strings.TrimSpace(cfg.URL) == "" {
		return ErrNotConfigured
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}

	requestID := c.newID()
	payload, err := json.Marshal(Envelope{Action: action, RequestID: requestID, Data: data})
	if err != nil {
		return fmt.Errorf("encode %s request: %w", action, err)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cfg.URL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build %s request: %w", action, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)
	if cfg.Secret != "" {
		req.Header.Set(SecretHeader, cfg.Secret)
	}

	start := time.Now()
	resp, err := c.clients.NewHTTPClient(ctx, timeout).Do(req)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			logger.Warn("workflow call timed out", "module", "workflow", "action", string(action), "request_id", requestID, "result", "failed")
			return fmt.Errorf("%s: %w", action, ErrTimeout)
		}
		return fmt.Errorf("call %s webhook: %w", action, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("%s: %w", action, ErrTimeout)
		}
		return fmt.Errorf("read %s response: %w", action, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Warn("workflow call failed", "module", "workflow", "action", string(action), "request_id", requestID, "status", resp.StatusCode, "result", "failed")
		return &StatusError{Action: action, StatusCode: resp.StatusCode, Body: truncate(strings.TrimSpace(string(body)), maxErrorBody)}
	}

	normalized, err := validateResponse(action, body)
	if err != nil {
		logger.Warn("workflow response rejected", "module", "workflow", "action", string(action), "request_id", requestID, "error", err, "result", "failed")
		return err
	}
	if out != nil {
		if err := json.Unmarshal(normalized, out); err != nil {
			return fmt.Errorf("decode %s response: %w", action, err)
		}
	}

	logger.Debug("workflow call", "module", "workflow", "action", string(action), "request_id", requestID, "duration_ms", time.Since(start).Milliseconds(), "result", "ok")
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

func (c *Client) ResearchKeywords(ctx context.Context, in model.KeywordResearchInput) ([]model.Keyword, error) {
	var resp struct {
		Keywords []model.Keyword `json:"keywords"`
	}
	if err := c.Call(ctx, ActionKeywordResearch, in, &resp); err != nil {
		return nil, err
	}
	return resp.Keywords, nil
}

func (c *Client) ClusterKeywords(ctx context.Context, in model.ClusterInput) ([]model.Cluster, error) {
	var resp struct {
		Clusters []model.Cluster `json:"clusters"`
	}
	if err := c.Call(ctx, ActionKeywordClustering, in, &resp); err != nil {
		return nil, err
	}
	return resp.Clusters, nil
}

func (c *Client) GenerateTitles(ctx context.Context, in model.TitleInput) ([]model.TitleSuggestion, error) {
	var resp struct {
		Titles []model.TitleSuggestion `json:"titles"`
	}
	if err := c.Call(ctx, ActionTitleGeneration, in, &resp); err != nil {
		return nil, err
	}
	return resp.Titles, nil
}

func (c *Client) GenerateMetadata(ctx context.Context, in model.MetadataInput) (model.PostMetadata, error) {
	var resp model.PostMetadata
	if err := c.Call(ctx, ActionBlogMetadata, in, &resp); err != nil {
		return model.PostMetadata{}, err
	}
	return resp, nil
}

func (c *Client) GenerateOutline(ctx context.Context, in model.OutlineInput) ([]model.OutlineSection, error) {
	var resp struct {
		Sections []model.OutlineSection `json:"sections"`
	}
	if err := c.Call(ctx, ActionOutlineGeneration, in, &resp); err != nil {
		return nil, err
	}
	return resp.Sections, nil
}

func (c *Client) GenerateArticle(ctx context.Context, in model.ArticleInput) (model.Article, error) {
	var resp model.Article
	if err := c.Call(ctx, ActionArticleGeneration, in, &resp); err != nil {
		return model.Article{}, err
	}
	return resp, nil
}

func (c *Client) TranslatePost(ctx context.Context, in model.TranslateInput) (model.TranslatedPost, error) {
	var resp model.TranslatedPost
	if err := c.Call(ctx, ActionPostTranslation, in, &resp); err != nil {
		return model.TranslatedPost{}, err
	}
	return resp, nil
}
