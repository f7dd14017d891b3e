package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	readability "codeberg.org/readeck/go-readability/v2"
	"github.com/microcosm-cc/bluemonday"

	"inkwell/backend/internal/logger"
	"inkwell/backend/internal/markdown"
	"inkwell/backend/internal/model"
	"inkwell/backend/internal/network"
)

const (
	MaxReferenceURLs   = 5
	maxReferenceBytes  = 5 << 20
	maxReferenceRunes  = 4000
	referenceFetchTime = 30 * time.Second
)

// ReadabilityService extracts the readable text of reference pages that
// ground a generated article.
type ReadabilityService interface {
	Extract(ctx context.Context, rawURL string) (model.Reference, error)
	// ExtractAll extracts every URL, skipping the ones that fail.
	ExtractAll(ctx context.Context, urls []string) []model.Reference
}

type readabilityService struct {
	clients   *network.ClientFactory
	sanitizer *bluemonday.Policy
}

func NewReadabilityService(clients *network.ClientFactory) ReadabilityService {
	// Scripts and other noise confuse readability scoring, so pages are
	// sanitized before parsing.
	p := bluemonday.UGCPolicy()
	p.AllowElements("article", "section", "header", "footer", "nav", "aside", "main", "figure", "figcaption")
	p.AllowAttrs("id", "class", "lang", "dir").Globally()

	return &readabilityService{clients: clients, sanitizer: p}
}

// ValidateReferenceURLs normalizes user-supplied reference URLs.
func ValidateReferenceURLs(urls []string) ([]string, error) {
	out := make([]string, 0, len(urls))
	seen := make(map[string]struct{}, len(urls))
	for _, raw := range urls {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		u, err := url.Parse(raw)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return nil, invalidf("invalid reference url %q", raw)
		}
		if _, dup := seen[u.String()]; dup {
			continue
		}
		seen[u.String()] = struct{}{}
		out = append(out, u.String())
	}
	if len(out) > MaxReferenceURLs {
		return nil, invalidf("at most %d reference urls", MaxReferenceURLs)
	}
	return out, nil
}

func (s *readabilityService) Extract(ctx context.Context, rawURL string) (model.Reference, error) {
	parsedURL, err := url.Parse(rawURL)
	if err != nil || parsedURL.Host == "" {
		return model.Reference{}, invalidf("invalid url %q", rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return model.Reference{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := s.clients.NewPublicHTTPClient(ctx, referenceFetchTime).Do(req)
	if errors.Is(err, network.ErrBlockedAddress) {
		return model.Reference{}, invalidf("reference url %q must point to a public address", rawURL)
	}
	if err != nil {
		return model.Reference{}, &UpstreamError{Backend: "reference", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.Reference{}, &UpstreamError{Backend: "reference", Err: fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxReferenceBytes))
	if err != nil {
		return model.Reference{}, fmt.Errorf("read body failed: %w", err)
	}

	title := markdown.Title(string(body))
	sanitized := s.sanitizer.Sanitize(string(body))

	parser := readability.NewParser()
	article, err := parser.Parse(strings.NewReader(sanitized), parsedURL)
	if err != nil {
		return model.Reference{}, fmt.Errorf("parse content failed: %w", err)
	}

	var buf bytes.Buffer
	if err := article.RenderHTML(&buf); err != nil {
		return model.Reference{}, fmt.Errorf("render failed: %w", err)
	}

	text := markdown.PlainText(buf.String())
	if text == "" {
		return model.Reference{}, invalidf("no readable content at %q", rawURL)
	}
	return model.Reference{URL: rawURL, Title: title, Excerpt: truncateRunes(text, maxReferenceRunes)}, nil
}

func (s *readabilityService) ExtractAll(ctx context.Context, urls []string) []model.Reference {
	refs := make([]model.Reference, 0, len(urls))
	for _, u := range urls {
		ref, err := s.Extract(ctx, u)
		if err != nil {
			logger.Warn("reference extraction failed", "module", "service", "action", "fetch", "resource", "reference", "result", "failed", "url", u, "error", err)
			continue
		}
		refs = append(refs, ref)
	}
	return refs
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return strings.TrimSpace(string(runes[:n])) + "…"
}
