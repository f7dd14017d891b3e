package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"inkwell/backend/internal/model"
	"inkwell/backend/internal/snowflake"
)

type TranslationRepository interface {
	// Upsert stores the translation of a post, replacing an earlier one in the same language.
	Upsert(ctx context.Context, t model.BlogPostTranslation) (model.BlogPostTranslation, error)
	// Get returns nil when the post has no translation in language.
	Get(ctx context.Context, postID int64, language string) (*model.BlogPostTranslation, error)
	ListByPost(ctx context.Context, postID int64) ([]model.BlogPostTranslation, error)
	Delete(ctx context.Context, postID int64, language string) error
}

type translationRepository struct {
	db dbtx
}

func NewTranslationRepository(db dbtx) TranslationRepository {
	return &translationRepository{db: db}
}

func (r *translationRepository) Upsert(ctx context.Context, t model.BlogPostTranslation) (model.BlogPostTranslation, error) {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO blog_post_translations (id, post_id, language, title, description, content, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(post_id, language) DO UPDATE SET
		   title = excluded.title,
		   description = excluded.description,
		   content = excluded.content,
		   updated_at = excluded.updated_at`,
		snowflake.NextID(),
		t.PostID,
		t.Language,
		t.Title,
		t.Description,
		t.Content,
		formatTime(now),
		formatTime(now),
	)
	if err != nil {
		return model.BlogPostTranslation{}, fmt.Errorf("upsert translation: %w", err)
	}

	saved, err := r.Get(ctx, t.PostID, t.Language)
	if err != nil {
		return model.BlogPostTranslation{}, err
	}
	if saved == nil {
		return model.BlogPostTranslation{}, fmt.Errorf("upsert translation: %w", sql.ErrNoRows)
	}
	return *saved, nil
}

func (r *translationRepository) Get(ctx context.Context, postID int64, language string) (*model.BlogPostTranslation, error) {
	row := r.db.QueryRowContext(
		ctx,
		`SELECT id, post_id, language, title, description, content, created_at, updated_at
		 FROM blog_post_translations WHERE post_id = ? AND language = ?`,
		postID, language,
	)
	t, err := scanTranslation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get translation: %w", err)
	}
	return &t, nil
}

func (r *translationRepository) ListByPost(ctx context.Context, postID int64) ([]model.BlogPostTranslation, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT id, post_id, language, title, description, content, created_at, updated_at
		 FROM blog_post_translations WHERE post_id = ? ORDER BY language`,
		postID,
	)
	if err != nil {
		return nil, fmt.Errorf("list translations: %w", err)
	}
	defer rows.Close()

	out := make([]model.BlogPostTranslation, 0)
	for rows.Next() {
		t, err := scanTranslation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan translation: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *translationRepository) Delete(ctx context.Context, postID int64, language string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM blog_post_translations WHERE post_id = ? AND language = ?`, postID, language)
	if err != nil {
		return fmt.Errorf("delete translation: %w", err)
	}
	return nil
}

func scanTranslation(row rowScanner) (model.BlogPostTranslation, error) {
	var t model.BlogPostTranslation
	var createdAt, updatedAt string
	if err := row.Scan(&t.ID, &t.PostID, &t.Language, &t.Title, &t.Description, &t.Content, &createdAt, &updatedAt); err != nil {
		return model.BlogPostTranslation{}, err
	}
	t.CreatedAt, _ = parseTime(createdAt)
	t.UpdatedAt, _ = parseTime(updatedAt)
	return t, nil
}
