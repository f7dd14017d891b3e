package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"inkwell/backend/internal/model"
	"inkwell/backend/internal/snowflake"
)

// PostListFilter narrows a user's post listing.
type PostListFilter struct {
	UserID int64
	Status string
	Query  string // case-insensitive match on title or description
	Limit  int
	Offset int
}

type BlogPostRepository interface {
	Create(ctx context.Context, post model.BlogPost) (model.BlogPost, error)
	GetByID(ctx context.Context, id int64) (model.BlogPost, error)
	GetBySlug(ctx context.Context, userID int64, slug string) (model.BlogPost, error)
	SlugExists(ctx context.Context, userID int64, slug string, excludeID int64) (bool, error)
	ExistsBySourceURL(ctx context.Context, userID int64, sourceURL string) (bool, error)
	List(ctx context.Context, filter PostListFilter) ([]model.BlogPost, error)
	Count(ctx context.Context, filter PostListFilter) (int, error)
	Update(ctx context.Context, post model.BlogPost) (model.BlogPost, error)
	UpdateStatus(ctx context.Context, id int64, status string, publishedAt *time.Time) error
	Delete(ctx context.Context, id int64) error
}

type blogPostRepository struct {
	db dbtx
}

func NewBlogPostRepository(db dbtx) BlogPostRepository {
	return &blogPostRepository{db: db}
}

const postColumns = `id, user_id, title, slug, description, content, keywords, language, status, source_url, published_at, created_at, updated_at`

func (r *blogPostRepository) Create(ctx context.Context, post model.BlogPost) (model.BlogPost, error) {
	post.ID = snowflake.NextID()
	now := time.Now().UTC()
	post.CreatedAt = now
	post.UpdatedAt = now
	if post.Status == "" {
		post.Status = model.PostStatusDraft
	}
	if post.Keywords == nil {
		post.Keywords = []string{}
	}
	keywords, err := encodeJSON(post.Keywords)
	if err != nil {
		return model.BlogPost{}, err
	}

	_, err = r.db.ExecContext(
		ctx,
		`INSERT INTO blog_posts (id, user_id, title, slug, description, content, keywords, language, status, source_url, published_at, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		post.ID,
		post.UserID,
		post.Title,
		post.Slug,
		post.Description,
		post.Content,
		keywords,
		post.Language,
		post.Status,
		nullableString(post.SourceURL),
		nullableTime(post.PublishedAt),
		formatTime(now),
		formatTime(now),
	)
	if err != nil {
		return model.BlogPost{}, fmt.Errorf("create post: %w", err)
	}
	return post, nil
}

func (r *blogPostRepository) GetByID(ctx context.Context, id int64) (model.BlogPost, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+postColumns+` FROM blog_posts WHERE id = ?`, id)
	post, err := scanPost(row)
	if err != nil {
		return model.BlogPost{}, fmt.Errorf("get post: %w", err)
	}
	return post, nil
}

func (r *blogPostRepository) GetBySlug(ctx context.Context, userID int64, slug string) (model.BlogPost, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+postColumns+` FROM blog_posts WHERE user_id = ? AND slug = ?`, userID, slug)
	post, err := scanPost(row)
	if err != nil {
		return model.BlogPost{}, fmt.Errorf("get post by slug: %w", err)
	}
	return post, nil
}

func (r *blogPostRepository) SlugExists(ctx context.Context, userID int64, slug string, excludeID int64) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM blog_posts WHERE user_id = ? AND slug = ? AND id != ?`, userID, slug, excludeID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("check slug: %w", err)
	}
	return count > 0, nil
}

func (r *blogPostRepository) ExistsBySourceURL(ctx context.Context, userID int64, sourceURL string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM blog_posts WHERE user_id = ? AND source_url = ?`, userID, sourceURL).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("check source url: %w", err)
	}
	return count > 0, nil
}

func buildPostWhere(filter PostListFilter) (string, []any) {
	conditions := []string{"user_id = ?"}
	args := []any{filter.UserID}
	if filter.Status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, filter.Status)
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		pattern := "%" + escapeLike(strings.ToLower(q)) + "%"
		conditions = append(conditions, `(LOWER(title) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\')`)
		args = append(args, pattern, pattern)
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func (r *blogPostRepository) List(ctx context.Context, filter PostListFilter) ([]model.BlogPost, error) {
	where, args := buildPostWhere(filter)
	query := `SELECT ` + postColumns + ` FROM blog_posts` + where + ` ORDER BY created_at DESC, id DESC`
	if filter.Limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, filter.Limit, filter.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	posts := make([]model.BlogPost, 0)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate posts: %w", err)
	}
	return posts, nil
}

func (r *blogPostRepository) Count(ctx context.Context, filter PostListFilter) (int, error) {
	where, args := buildPostWhere(filter)
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM blog_posts`+where, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	return count, nil
}

func (r *blogPostRepository) Update(ctx context.Context, post model.BlogPost) (model.BlogPost, error) {
	if post.Keywords == nil {
		post.Keywords = []string{}
	}
	keywords, err := encodeJSON(post.Keywords)
	if err != nil {
		return model.BlogPost{}, err
	}
	post.UpdatedAt = time.Now().UTC()
	_, err = r.db.ExecContext(
		ctx,
		`UPDATE blog_posts SET title = ?, slug = ?, description = ?, content = ?, keywords = ?, language = ?, updated_at = ? WHERE id = ?`,
		post.Title,
		post.Slug,
		post.Description,
		post.Content,
		keywords,
		post.Language,
		formatTime(post.UpdatedAt),
		post.ID,
	)
	if err != nil {
		return model.BlogPost{}, fmt.Errorf("update post: %w", err)
	}
	return r.GetByID(ctx, post.ID)
}

func (r *blogPostRepository) UpdateStatus(ctx context.Context, id int64, status string, publishedAt *time.Time) error {
	_, err := r.db.ExecContext(
		ctx,
		`UPDATE blog_posts SET status = ?, published_at = ?, updated_at = ? WHERE id = ?`,
		status, nullableTime(publishedAt), formatTime(time.Now()), id,
	)
	if err != nil {
		return fmt.Errorf("update post status: %w", err)
	}
	return nil
}

func (r *blogPostRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM blog_posts WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}

func scanPost(row rowScanner) (model.BlogPost, error) {
	var post model.BlogPost
	var keywords string
	var sourceURL, publishedAt sql.NullString
	var createdAt, updatedAt string
	if err := row.Scan(
		&post.ID,
		&post.UserID,
		&post.Title,
		&post.Slug,
		&post.Description,
		&post.Content,
		&keywords,
		&post.Language,
		&post.Status,
		&sourceURL,
		&publishedAt,
		&createdAt,
		&updatedAt,
	); err != nil {
		return model.BlogPost{}, err
	}
	if err := decodeJSON(keywords, &post.Keywords); err != nil {
		return model.BlogPost{}, err
	}
	if post.Keywords == nil {
		post.Keywords = []string{}
	}
	post.SourceURL = stringPtr(sourceURL)
	post.PublishedAt = parseTimePtr(publishedAt)
	post.CreatedAt, _ = parseTime(createdAt)
	post.UpdatedAt, _ = parseTime(updatedAt)
	return post, nil
}
