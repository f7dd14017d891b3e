package service

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"inkwell/backend/internal/langdetect"
	"inkwell/backend/internal/logger"
	"inkwell/backend/internal/markdown"
	"inkwell/backend/internal/model"
	"inkwell/backend/internal/repository"
)

// Export formats.
const (
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
	FormatText     = "text"
)

// DefaultLanguage is assumed when detection has nothing to go on.
const DefaultLanguage = "en"

const maxSlugAttempts = 1000

// PostInput holds the editable fields of a post. Nil fields are left unchanged
// on update.
type PostInput struct {
	Title       *string
	Slug        *string
	Description *string
	Content     *string
	Keywords    []string
	Language    *string
	// SourceURL marks an imported post; only used on create.
	SourceURL string
}

type PostPage struct {
	Posts []model.BlogPost
	Total int
}

// Export is a rendered document ready for download.
type Export struct {
	Filename    string
	ContentType string
	Body        []byte
}

type BlogService interface {
	CreatePost(ctx context.Context, userID int64, in PostInput) (model.BlogPost, error)
	GetPost(ctx context.Context, userID, id int64) (model.BlogPost, error)
	ListPosts(ctx context.Context, userID int64, status, query string, page Page) (PostPage, error)
	UpdatePost(ctx context.Context, userID, id int64, in PostInput) (model.BlogPost, error)
	DeletePost(ctx context.Context, userID, id int64) error
	Publish(ctx context.Context, userID, id int64) (model.BlogPost, error)
	Unpublish(ctx context.Context, userID, id int64) (model.BlogPost, error)
	Archive(ctx context.Context, userID, id int64) (model.BlogPost, error)
	// RenderHTML returns the sanitized HTML body of the post or a translation.
	RenderHTML(ctx context.Context, userID, id int64, language string) (string, error)
	TableOfContents(ctx context.Context, userID, id int64) ([]markdown.Heading, error)
	ListTranslations(ctx context.Context, userID, postID int64) ([]model.BlogPostTranslation, error)
	GetTranslation(ctx context.Context, userID, postID int64, language string) (model.BlogPostTranslation, error)
	DeleteTranslation(ctx context.Context, userID, postID int64, language string) error
	// Export renders the post, or its translation when language differs from
	// the post's own, as html, markdown or text.
	Export(ctx context.Context, userID, id int64, format, language string) (Export, error)
}

type blogService struct {
	posts        repository.BlogPostRepository
	translations repository.TranslationRepository
	now          func() time.Time
}

func NewBlogService(posts repository.BlogPostRepository, translations repository.TranslationRepository) BlogService {
	return &blogService{posts: posts, translations: translations, now: time.Now}
}

// ownedPost loads a post of userID. Posts of other users are reported as missing.
func (s *blogService) ownedPost(ctx context.Context, userID, id int64) (model.BlogPost, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.BlogPost{}, ErrNotFound
		}
		return model.BlogPost{}, fmt.Errorf("get post: %w", err)
	}
	if post.UserID != userID {
		return model.BlogPost{}, ErrNotFound
	}
	return post, nil
}

// uniqueSlug returns base, or base-2, base-3... when taken by another post of the user.
func (s *blogService) uniqueSlug(ctx context.Context, userID int64, base string, excludeID int64) (string, error) {
	candidate := base
	for i := 2; i <= maxSlugAttempts; i++ {
		exists, err := s.posts.SlugExists(ctx, userID, candidate, excludeID)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = base + "-" + strconv.Itoa(i)
	}
	return "", fmt.Errorf("%w: no free slug for %q", ErrConflict, base)
}

func detectLanguage(parts ...string) string {
	if code := langdetect.DetectISO6391(strings.Join(parts, "\n")); code != "" {
		return code
	}
	return DefaultLanguage
}

func normalizeKeywords(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	seen := make(map[string]struct{}, len(keywords))
	for _, k := range keywords {
		k = strings.TrimSpace(k)
		key := strings.ToLower(k)
		if k == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, k)
	}
	return out
}

func normalizeLanguage(lang string) (string, error) {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" {
		return "", nil
	}
	if !langdetect.IsSupported(lang) {
		return "", invalidf("unsupported language %q", lang)
	}
	return lang, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (s *blogService) CreatePost(ctx context.Context, userID int64, in PostInput) (model.BlogPost, error) {
	title := strings.TrimSpace(deref(in.Title))
	if title == "" {
		return model.BlogPost{}, invalidf("title is required")
	}
	language, err := normalizeLanguage(deref(in.Language))
	if err != nil {
		return model.BlogPost{}, err
	}

	post := model.BlogPost{
		UserID:      userID,
		Title:       title,
		Description: strings.TrimSpace(deref(in.Description)),
		Content:     deref(in.Content),
		Keywords:    normalizeKeywords(in.Keywords),
		Language:    language,
		Status:      model.PostStatusDraft,
	}
	if src := strings.TrimSpace(in.SourceURL); src != "" {
		post.SourceURL = &src
	}
	if post.Language == "" {
		post.Language = detectLanguage(post.Title, post.Description, post.Content)
	}

	base := Slugify(title)
	if in.Slug != nil && strings.TrimSpace(*in.Slug) != "" {
		base = Slugify(*in.Slug)
	}
	post.Slug, err = s.uniqueSlug(ctx, userID, base, 0)
	if err != nil {
		return model.BlogPost{}, err
	}

	created, err := s.posts.Create(ctx, post)
	if err != nil {
		return model.BlogPost{}, fmt.Errorf("create post: %w", err)
	}
	logger.Info("post created", "module", "service", "action", "create", "resource", "post", "result", "ok", "post_id", created.ID, "language", created.Language)
	return created, nil
}

func (s *blogService) GetPost(ctx context.Context, userID, id int64) (model.BlogPost, error) {
	return s.ownedPost(ctx, userID, id)
}

func (s *blogService) ListPosts(ctx context.Context, userID int64, status, query string, page Page) (PostPage, error) {
	if status != "" && !model.IsValidPostStatus(status) {
		return PostPage{}, invalidf("unknown status %q", status)
	}
	page = page.normalize()
	filter := repository.PostListFilter{
		UserID: userID,
		Status: status,
		Query:  strings.TrimSpace(query),
		Limit:  page.Limit,
		Offset: page.Offset,
	}
	posts, err := s.posts.List(ctx, filter)
	if err != nil {
		return PostPage{}, fmt.Errorf("list posts: %w", err)
	}
	total, err := s.posts.Count(ctx, filter)
	if err != nil {
		return PostPage{}, fmt.Errorf("count posts: %w", err)
	}
	return PostPage{Posts: posts, Total: total}, nil
}

func (s *blogService) UpdatePost(ctx context.Context, userID, id int64, in PostInput) (model.BlogPost, error) {
	post, err := s.ownedPost(ctx, userID, id)
	if err != nil {
		return model.BlogPost{}, err
	}

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return model.BlogPost{}, invalidf("title is required")
		}
		post.Title = title
	}
	if in.Description != nil {
		post.Description = strings.TrimSpace(*in.Description)
	}
	if in.Content != nil {
		post.Content = *in.Content
	}
	if in.Keywords != nil {
		post.Keywords = normalizeKeywords(in.Keywords)
	}
	if in.Language != nil {
		language, err := normalizeLanguage(*in.Language)
		if err != nil {
			return model.BlogPost{}, err
		}
		if language == "" {
			language = detectLanguage(post.Title, post.Description, post.Content)
		}
		post.Language = language
	}
	if in.Slug != nil {
		base := Slugify(*in.Slug)
		if strings.TrimSpace(*in.Slug) == "" {
			base = Slugify(post.Title)
		}
		if base != post.Slug {
			post.Slug, err = s.uniqueSlug(ctx, userID, base, post.ID)
			if err != nil {
				return model.BlogPost{}, err
			}
		}
	}

	updated, err := s.posts.Update(ctx, post)
	if err != nil {
		return model.BlogPost{}, fmt.Errorf("update post: %w", err)
	}
	return updated, nil
}

func (s *blogService) DeletePost(ctx context.Context, userID, id int64) error {
	if _, err := s.ownedPost(ctx, userID, id); err != nil {
		return err
	}
	if err := s.posts.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	logger.Info("post deleted", "module", "service", "action", "delete", "resource", "post", "result", "ok", "post_id", id)
	return nil
}

func (s *blogService) setStatus(ctx context.Context, userID, id int64, status string) (model.BlogPost, error) {
	post, err := s.ownedPost(ctx, userID, id)
	if err != nil {
		return model.BlogPost{}, err
	}
	if post.Status == status {
		return post, nil
	}

	publishedAt := post.PublishedAt
	switch status {
	case model.PostStatusPublished:
		if strings.TrimSpace(post.Content) == "" {
			return model.BlogPost{}, invalidf("cannot publish a post without content")
		}
		if publishedAt == nil {
			now := s.now().UTC()
			publishedAt = &now
		}
	case model.PostStatusDraft:
		publishedAt = nil
	}

	if err := s.posts.UpdateStatus(ctx, id, status, publishedAt); err != nil {
		return model.BlogPost{}, fmt.Errorf("update post status: %w", err)
	}
	logger.Info("post status changed", "module", "service", "action", "update", "resource", "post", "result", "ok", "post_id", id, "status", status)
	return s.ownedPost(ctx, userID, id)
}

func (s *blogService) Publish(ctx context.Context, userID, id int64) (model.BlogPost, error) {
	return s.setStatus(ctx, userID, id, model.PostStatusPublished)
}

func (s *blogService) Unpublish(ctx context.Context, userID, id int64) (model.BlogPost, error) {
	return s.setStatus(ctx, userID, id, model.PostStatusDraft)
}

func (s *blogService) Archive(ctx context.Context, userID, id int64) (model.BlogPost, error) {
	return s.setStatus(ctx, userID, id, model.PostStatusArchived)
}

func (s *blogService) ListTranslations(ctx context.Context, userID, postID int64) ([]model.BlogPostTranslation, error) {
	if _, err := s.ownedPost(ctx, userID, postID); err != nil {
		return nil, err
	}
	out, err := s.translations.ListByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("list translations: %w", err)
	}
	return out, nil
}

func (s *blogService) GetTranslation(ctx context.Context, userID, postID int64, language string) (model.BlogPostTranslation, error) {
	if _, err := s.ownedPost(ctx, userID, postID); err != nil {
		return model.BlogPostTranslation{}, err
	}
	t, err := s.translations.Get(ctx, postID, strings.ToLower(language))
	if err != nil {
		return model.BlogPostTranslation{}, fmt.Errorf("get translation: %w", err)
	}
	if t == nil {
		return model.BlogPostTranslation{}, ErrNotFound
	}
	return *t, nil
}

func (s *blogService) DeleteTranslation(ctx context.Context, userID, postID int64, language string) error {
	if _, err := s.GetTranslation(ctx, userID, postID, language); err != nil {
		return err
	}
	if err := s.translations.Delete(ctx, postID, strings.ToLower(language)); err != nil {
		return fmt.Errorf("delete translation: %w", err)
	}
	return nil
}

// document is the post or one of its translations, as exported.
type document struct {
	Title       string
	Description string
	Content     string
	Language    string
	Translated  bool
}

func (s *blogService) document(ctx context.Context, userID, id int64, language string) (model.BlogPost, document, error) {
	post, err := s.ownedPost(ctx, userID, id)
	if err != nil {
		return model.BlogPost{}, document{}, err
	}
	language = strings.ToLower(strings.TrimSpace(language))
	if language == "" || language == post.Language {
		return post, document{Title: post.Title, Description: post.Description, Content: post.Content, Language: post.Language}, nil
	}
	t, err := s.translations.Get(ctx, post.ID, language)
	if err != nil {
		return model.BlogPost{}, document{}, fmt.Errorf("get translation: %w", err)
	}
	if t == nil {
		return model.BlogPost{}, document{}, fmt.Errorf("%w: no %s translation", ErrNotFound, language)
	}
	return post, document{Title: t.Title, Description: t.Description, Content: t.Content, Language: t.Language, Translated: true}, nil
}

func (s *blogService) RenderHTML(ctx context.Context, userID, id int64, language string) (string, error) {
	_, doc, err := s.document(ctx, userID, id, language)
	if err != nil {
		return "", err
	}
	return markdown.ToHTML(doc.Content)
}

func (s *blogService) TableOfContents(ctx context.Context, userID, id int64) ([]markdown.Heading, error) {
	body, err := s.RenderHTML(ctx, userID, id, "")
	if err != nil {
		return nil, err
	}
	headings := markdown.Headings(body)
	if headings == nil {
		headings = []markdown.Heading{}
	}
	return headings, nil
}

type frontMatter struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description,omitempty"`
	Slug        string   `yaml:"slug"`
	Language    string   `yaml:"lang"`
	Keywords    []string `yaml:"keywords,omitempty"`
	Status      string   `yaml:"status"`
	Date        string   `yaml:"date,omitempty"`
}

func (s *blogService) Export(ctx context.Context, userID, id int64, format, language string) (Export, error) {
	post, doc, err := s.document(ctx, userID, id, language)
	if err != nil {
		return Export{}, err
	}

	name := post.Slug
	if doc.Translated {
		name += "." + doc.Language
	}

	switch format {
	case FormatMarkdown, "md":
		fm := frontMatter{
			Title:       doc.Title,
			Description: doc.Description,
			Slug:        post.Slug,
			Language:    doc.Language,
			Keywords:    post.Keywords,
			Status:      post.Status,
		}
		if post.PublishedAt != nil {
			fm.Date = post.PublishedAt.UTC().Format(time.RFC3339)
		}
		head, err := yaml.Marshal(fm)
		if err != nil {
			return Export{}, fmt.Errorf("encode front matter: %w", err)
		}
		var buf bytes.Buffer
		buf.WriteString("---\n")
		buf.Write(head)
		buf.WriteString("---\n\n")
		buf.WriteString(strings.TrimSpace(doc.Content))
		buf.WriteString("\n")
		return Export{Filename: name + ".md", ContentType: "text/markdown; charset=utf-8", Body: buf.Bytes()}, nil

	case FormatHTML:
		body, err := markdown.ToHTML(doc.Content)
		if err != nil {
			return Export{}, err
		}
		page := markdown.Document(doc.Title, doc.Language, doc.Description, body)
		return Export{Filename: name + ".html", ContentType: "text/html; charset=utf-8", Body: []byte(page)}, nil

	case FormatText, "txt":
		body, err := markdown.ToHTML(doc.Content)
		if err != nil {
			return Export{}, err
		}
		var buf bytes.Buffer
		buf.WriteString(doc.Title)
		buf.WriteString("\n\n")
		if doc.Description != "" {
			buf.WriteString(doc.Description)
			buf.WriteString("\n\n")
		}
		buf.WriteString(markdown.PlainText(body))
		buf.WriteString("\n")
		return Export{Filename: name + ".txt", ContentType: "text/plain; charset=utf-8", Body: buf.Bytes()}, nil
	}
	return Export{}, invalidf("unknown export format %q", format)
}
