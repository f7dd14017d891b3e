package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"inkwell/backend/internal/logger"
	"inkwell/backend/internal/markdown"
	"inkwell/backend/internal/network"
	"inkwell/backend/internal/repository"
)

const (
	maxImportItems     = 200
	maxFeedBytes       = 10 << 20
	feedFetchTimeout   = 30 * time.Second
	maxImportedSummary = 300
)

var ErrFeedFetch = errors.New("feed fetch failed")

// ImportService imports the items of an RSS/Atom feed as draft posts.
type ImportService interface {
	// StartImport fetches and parses the feed, then creates the posts in a
	// background task. It replaces a running import of the same user.
	StartImport(ctx context.Context, userID int64, feedURL string) (*ImportTask, error)
	GetTask(userID int64) *ImportTask
	CancelTask(userID int64) bool
}

type importService struct {
	blog    BlogService
	posts   repository.BlogPostRepository
	tasks   ImportTaskService
	clients *network.ClientFactory
}

func NewImportService(blog BlogService, posts repository.BlogPostRepository, tasks ImportTaskService, clients *network.ClientFactory) ImportService {
	return &importService{blog: blog, posts: posts, tasks: tasks, clients: clients}
}

func isValidURL(value string) bool {
	parsed, err := url.ParseRequestURI(value)
	if err != nil {
		return false
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return false
	}
	return parsed.Host != ""
}

func (s *importService) StartImport(ctx context.Context, userID int64, feedURL string) (*ImportTask, error) {
	feedURL = strings.TrimSpace(feedURL)
	if !isValidURL(feedURL) {
		return nil, invalidf("invalid feed url")
	}

	feed, err := s.fetchFeed(ctx, feedURL)
	if err != nil {
		logger.Warn("feed import fetch failed", "module", "service", "action", "import", "resource", "feed", "result", "failed", "url", feedURL, "error", err)
		return nil, err
	}

	items := feed.Items
	if len(items) > maxImportItems {
		items = items[:maxImportItems]
	}
	language := strings.ToLower(feed.Language)
	if len(language) > 2 {
		language = language[:2]
	}
	if language != "" && !isSupportedLanguage(language) {
		language = ""
	}

	taskID, taskCtx := s.tasks.Start(userID, feedURL, len(items))
	logger.Info("feed import started", "module", "service", "action", "import", "resource", "feed", "result", "ok", "url", feedURL, "count", len(items))
	go s.run(taskCtx, userID, taskID, items, language)
	return s.tasks.Get(userID), nil
}

func isSupportedLanguage(code string) bool {
	lang, err := normalizeLanguage(code)
	return err == nil && lang != ""
}

func (s *importService) fetchFeed(ctx context.Context, feedURL string) (*gofeed.Feed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, ErrFeedFetch
	}
	req.Header.Set("Accept", "application/rss+xml, application/atom+xml, application/xml;q=0.9, */*;q=0.8")

	resp, err := s.clients.NewPublicHTTPClient(ctx, feedFetchTimeout).Do(req)
	if errors.Is(err, network.ErrBlockedAddress) {
		return nil, invalidf("feed url must point to a public address")
	}
	if err != nil {
		return nil, &UpstreamError{Backend: "feed", Err: fmt.Errorf("%w: %v", ErrFeedFetch, err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, &UpstreamError{Backend: "feed", Err: fmt.Errorf("%w: HTTP %d", ErrFeedFetch, resp.StatusCode)}
	}

	parsed, err := gofeed.NewParser().Parse(io.LimitReader(resp.Body, maxFeedBytes))
	if err != nil {
		return nil, invalidf("not a valid RSS or Atom feed")
	}
	return parsed, nil
}

func (s *importService) run(ctx context.Context, userID int64, taskID string, items []*gofeed.Item, language string) {
	var result ImportResult
	for i, item := range items {
		if ctx.Err() != nil {
			logger.Info("feed import cancelled", "module", "service", "action", "import", "resource", "feed", "result", "cancelled", "task_id", taskID, "created", result.Created)
			return
		}
		title := strings.TrimSpace(item.Title)
		s.tasks.Update(userID, taskID, i+1, title)

		created, err := s.importItem(ctx, userID, item, language)
		switch {
		case err != nil:
			result.Failed++
			logger.Warn("feed item import failed", "module", "service", "action", "import", "resource", "feed", "result", "failed", "task_id", taskID, "item", title, "error", err)
		case created:
			result.Created++
		default:
			result.Skipped++
		}
	}
	s.tasks.Complete(userID, taskID, result)
	logger.Info("feed import completed", "module", "service", "action", "import", "resource", "feed", "result", "ok", "task_id", taskID, "created", result.Created, "skipped", result.Skipped, "failed", result.Failed)
}

// importItem creates a draft post from item. Items without a title or whose
// link was already imported are skipped.
func (s *importService) importItem(ctx context.Context, userID int64, item *gofeed.Item, language string) (bool, error) {
	title := strings.TrimSpace(item.Title)
	link := strings.TrimSpace(item.Link)
	if title == "" {
		return false, nil
	}
	if link != "" {
		exists, err := s.posts.ExistsBySourceURL(ctx, userID, link)
		if err != nil {
			return false, err
		}
		if exists {
			return false, nil
		}
	}

	body := item.Content
	if body == "" {
		body = item.Description
	}
	content, err := markdown.FromHTML(markdown.Sanitize(body))
	if err != nil {
		return false, fmt.Errorf("convert content: %w", err)
	}
	summary := truncateRunes(markdown.PlainText(markdown.Sanitize(item.Description)), maxImportedSummary)
	if summary == "" {
		summary = truncateRunes(markdown.PlainText(markdown.Sanitize(body)), maxImportedSummary)
	}

	in := PostInput{
		Title:       &title,
		Description: &summary,
		Content:     &content,
		Keywords:    item.Categories,
		SourceURL:   link,
	}
	if language != "" {
		in.Language = &language
	}
	if _, err := s.blog.CreatePost(ctx, userID, in); err != nil {
		return false, err
	}
	return true, nil
}

func (s *importService) GetTask(userID int64) *ImportTask {
	return s.tasks.Get(userID)
}

func (s *importService) CancelTask(userID int64) bool {
	cancelled := s.tasks.Cancel(userID)
	if cancelled {
		logger.Info("feed import cancel requested", "module", "service", "action", "import", "resource", "feed", "result", "ok", "user_id", userID)
	}
	return cancelled
}
