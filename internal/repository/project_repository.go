package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"inkwell/backend/internal/model"
	"inkwell/backend/internal/snowflake"
)

type ProjectRepository interface {
	Create(ctx context.Context, p model.ContentProject) (model.ContentProject, error)
	GetByID(ctx context.Context, id int64) (model.ContentProject, error)
	ListByUser(ctx context.Context, userID int64) ([]model.ContentProject, error)
	// Update persists the full workflow state of the project.
	Update(ctx context.Context, p model.ContentProject) (model.ContentProject, error)
	Delete(ctx context.Context, id int64) error
}

type projectRepository struct {
	db dbtx
}

func NewProjectRepository(db dbtx) ProjectRepository {
	return &projectRepository{db: db}
}

const projectColumns = `id, user_id, name, seed_keyword, language, country, step, keywords, clusters, selected_clusters, priorities, titles, selected_title, selected_description, outline, reference_urls, blog_post_id, created_at, updated_at`

// projectState is the JSON-encoded form of the project's workflow columns.
type projectState struct {
	keywords, clusters, selected, priorities, titles, outline, references string
}

func encodeProjectState(p model.ContentProject) (projectState, error) {
	var s projectState
	var err error
	if s.keywords, err = encodeJSON(nonNil(p.Keywords)); err != nil {
		return s, err
	}
	if s.clusters, err = encodeJSON(nonNil(p.Clusters)); err != nil {
		return s, err
	}
	if s.selected, err = encodeJSON(nonNil(p.SelectedClusters)); err != nil {
		return s, err
	}
	priorities := p.Priorities
	if priorities == nil {
		priorities = map[string]int{}
	}
	if s.priorities, err = encodeJSON(priorities); err != nil {
		return s, err
	}
	if s.titles, err = encodeJSON(nonNil(p.Titles)); err != nil {
		return s, err
	}
	if s.outline, err = encodeJSON(nonNil(p.Outline)); err != nil {
		return s, err
	}
	if s.references, err = encodeJSON(nonNil(p.ReferenceURLs)); err != nil {
		return s, err
	}
	return s, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func (r *projectRepository) Create(ctx context.Context, p model.ContentProject) (model.ContentProject, error) {
	p.ID = snowflake.NextID()
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Step == "" {
		p.Step = model.StepKeywords
	}
	state, err := encodeProjectState(p)
	if err != nil {
		return model.ContentProject{}, err
	}

	_, err = r.db.ExecContext(
		ctx,
		`INSERT INTO content_projects (`+projectColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID,
		p.UserID,
		p.Name,
		p.SeedKeyword,
		p.Language,
		p.Country,
		p.Step,
		state.keywords,
		state.clusters,
		state.selected,
		state.priorities,
		state.titles,
		p.SelectedTitle,
		p.SelectedDescription,
		state.outline,
		state.references,
		nullableInt64(p.BlogPostID),
		formatTime(now),
		formatTime(now),
	)
	if err != nil {
		return model.ContentProject{}, fmt.Errorf("create project: %w", err)
	}
	return r.GetByID(ctx, p.ID)
}

func (r *projectRepository) GetByID(ctx context.Context, id int64) (model.ContentProject, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+projectColumns+` FROM content_projects WHERE id = ?`, id)
	p, err := scanProject(row)
	if err != nil {
		return model.ContentProject{}, fmt.Errorf("get project: %w", err)
	}
	return p, nil
}

func (r *projectRepository) ListByUser(ctx context.Context, userID int64) ([]model.ContentProject, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+projectColumns+` FROM content_projects WHERE user_id = ? ORDER BY updated_at DESC, id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	out := make([]model.ContentProject, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *projectRepository) Update(ctx context.Context, p model.ContentProject) (model.ContentProject, error) {
	state, err := encodeProjectState(p)
	if err != nil {
		return model.ContentProject{}, err
	}
	_, err = r.db.ExecContext(
		ctx,
		`UPDATE content_projects SET
		   name = ?, language = ?, country = ?, step = ?, keywords = ?, clusters = ?, selected_clusters = ?,
		   priorities = ?, titles = ?, selected_title = ?, selected_description = ?, outline = ?,
		   reference_urls = ?, blog_post_id = ?, updated_at = ?
		 WHERE id = ?`,
		p.Name,
		p.Language,
		p.Country,
		p.Step,
		state.keywords,
		state.clusters,
		state.selected,
		state.priorities,
		state.titles,
		p.SelectedTitle,
		p.SelectedDescription,
		state.outline,
		state.references,
		nullableInt64(p.BlogPostID),
		formatTime(time.Now()),
		p.ID,
	)
	if err != nil {
		return model.ContentProject{}, fmt.Errorf("update project: %w", err)
	}
	return r.GetByID(ctx, p.ID)
}

func (r *projectRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM content_projects WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}

func scanProject(row rowScanner) (model.ContentProject, error) {
	var p model.ContentProject
	var s projectState
	var blogPostID sql.NullInt64
	var createdAt, updatedAt string
	if err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Name,
		&p.SeedKeyword,
		&p.Language,
		&p.Country,
		&p.Step,
		&s.keywords,
		&s.clusters,
		&s.selected,
		&s.priorities,
		&s.titles,
		&p.SelectedTitle,
		&p.SelectedDescription,
		&s.outline,
		&s.references,
		&blogPostID,
		&createdAt,
		&updatedAt,
	); err != nil {
		return model.ContentProject{}, err
	}

	for _, f := range []struct {
		raw string
		dst any
	}{
		{s.keywords, &p.Keywords},
		{s.clusters, &p.Clusters},
		{s.selected, &p.SelectedClusters},
		{s.priorities, &p.Priorities},
		{s.titles, &p.Titles},
		{s.outline, &p.Outline},
		{s.references, &p.ReferenceURLs},
	} {
		if err := decodeJSON(f.raw, f.dst); err != nil {
			return model.ContentProject{}, err
		}
	}
	p.Keywords = nonNil(p.Keywords)
	p.Clusters = nonNil(p.Clusters)
	p.SelectedClusters = nonNil(p.SelectedClusters)
	p.Titles = nonNil(p.Titles)
	p.Outline = nonNil(p.Outline)
	p.ReferenceURLs = nonNil(p.ReferenceURLs)
	if p.Priorities == nil {
		p.Priorities = map[string]int{}
	}
	if blogPostID.Valid {
		id := blogPostID.Int64
		p.BlogPostID = &id
	}
	p.CreatedAt, _ = parseTime(createdAt)
	p.UpdatedAt, _ = parseTime(updatedAt)
	return p, nil
}
