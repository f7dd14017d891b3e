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

type WorkflowRepository interface {
	Create(ctx context.Context, postID int64, targetLanguage string) (model.TranslationWorkflow, error)
	GetByID(ctx context.Context, id int64) (model.TranslationWorkflow, error)
	// FindOpen returns the pending or processing workflow for the post and language, or nil.
	FindOpen(ctx context.Context, postID int64, targetLanguage string) (*model.TranslationWorkflow, error)
	ListByPost(ctx context.Context, postID int64) ([]model.TranslationWorkflow, error)
	// ClaimPending moves up to limit pending workflows to processing and returns them.
	ClaimPending(ctx context.Context, limit int) ([]model.TranslationWorkflow, error)
	MarkCompleted(ctx context.Context, id int64) error
	MarkFailed(ctx context.Context, id int64, message string) error
	ResetToPending(ctx context.Context, id int64) error
	// ResetProcessing returns workflows left in processing by a previous run to pending.
	ResetProcessing(ctx context.Context) (int64, error)
}

type workflowRepository struct {
	db dbtx
}

func NewWorkflowRepository(db dbtx) WorkflowRepository {
	return &workflowRepository{db: db}
}

const workflowColumns = `id, post_id, target_language, status, attempts, error_message, completed_at, created_at, updated_at`

func (r *workflowRepository) Create(ctx context.Context, postID int64, targetLanguage string) (model.TranslationWorkflow, error) {
	now := time.Now().UTC()
	wf := model.TranslationWorkflow{
		ID:             snowflake.NextID(),
		PostID:         postID,
		TargetLanguage: targetLanguage,
		Status:         model.WorkflowPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO translation_workflows (id, post_id, target_language, status, attempts, created_at, updated_at) VALUES (?, ?, ?, ?, 0, ?, ?)`,
		wf.ID, wf.PostID, wf.TargetLanguage, wf.Status, formatTime(now), formatTime(now),
	)
	if err != nil {
		return model.TranslationWorkflow{}, fmt.Errorf("create workflow: %w", err)
	}
	return wf, nil
}

func (r *workflowRepository) GetByID(ctx context.Context, id int64) (model.TranslationWorkflow, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+workflowColumns+` FROM translation_workflows WHERE id = ?`, id)
	wf, err := scanWorkflow(row)
	if err != nil {
		return model.TranslationWorkflow{}, fmt.Errorf("get workflow: %w", err)
	}
	return wf, nil
}

func (r *workflowRepository) FindOpen(ctx context.Context, postID int64, targetLanguage string) (*model.TranslationWorkflow, error) {
	row := r.db.QueryRowContext(
		ctx,
		`SELECT `+workflowColumns+` FROM translation_workflows
		 WHERE post_id = ? AND target_language = ? AND status IN ('pending', 'processing')
		 ORDER BY created_at DESC LIMIT 1`,
		postID, targetLanguage,
	)
	wf, err := scanWorkflow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find open workflow: %w", err)
	}
	return &wf, nil
}

func (r *workflowRepository) ListByPost(ctx context.Context, postID int64) ([]model.TranslationWorkflow, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+workflowColumns+` FROM translation_workflows WHERE post_id = ? ORDER BY created_at DESC, id DESC`, postID)
	if err != nil {
		return nil, fmt.Errorf("list workflows: %w", err)
	}
	return collectWorkflows(rows)
}

func (r *workflowRepository) ClaimPending(ctx context.Context, limit int) ([]model.TranslationWorkflow, error) {
	if limit <= 0 {
		return nil, nil
	}
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT `+workflowColumns+` FROM translation_workflows WHERE status = 'pending' ORDER BY created_at, id LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("select pending workflows: %w", err)
	}
	pending, err := collectWorkflows(rows)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	claimed := make([]model.TranslationWorkflow, 0, len(pending))
	for _, wf := range pending {
		res, err := r.db.ExecContext(
			ctx,
			`UPDATE translation_workflows SET status = 'processing', attempts = attempts + 1, updated_at = ? WHERE id = ? AND status = 'pending'`,
			formatTime(now), wf.ID,
		)
		if err != nil {
			return nil, fmt.Errorf("claim workflow %d: %w", wf.ID, err)
		}
		// Another runner may have claimed it between the select and the update.
		if n, _ := res.RowsAffected(); n == 0 {
			continue
		}
		wf.Status = model.WorkflowProcessing
		wf.Attempts++
		wf.UpdatedAt = now
		claimed = append(claimed, wf)
	}
	return claimed, nil
}

func (r *workflowRepository) MarkCompleted(ctx context.Context, id int64) error {
	now := formatTime(time.Now())
	_, err := r.db.ExecContext(
		ctx,
		`UPDATE translation_workflows SET status = 'completed', error_message = NULL, completed_at = ?, updated_at = ? WHERE id = ?`,
		now, now, id,
	)
	if err != nil {
		return fmt.Errorf("mark workflow completed: %w", err)
	}
	return nil
}

func (r *workflowRepository) MarkFailed(ctx context.Context, id int64, message string) error {
	_, err := r.db.ExecContext(
		ctx,
		`UPDATE translation_workflows SET status = 'failed', error_message = ?, updated_at = ? WHERE id = ?`,
		message, formatTime(time.Now()), id,
	)
	if err != nil {
		return fmt.Errorf("mark workflow failed: %w", err)
	}
	return nil
}

func (r *workflowRepository) ResetToPending(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(
		ctx,
		`UPDATE translation_workflows SET status = 'pending', error_message = NULL, completed_at = NULL, updated_at = ? WHERE id = ?`,
		formatTime(time.Now()), id,
	)
	if err != nil {
		return fmt.Errorf("reset workflow: %w", err)
	}
	return nil
}

func (r *workflowRepository) ResetProcessing(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(
		ctx,
		`UPDATE translation_workflows SET status = 'pending', updated_at = ? WHERE status = 'processing'`,
		formatTime(time.Now()),
	)
	if err != nil {
		return 0, fmt.Errorf("reset processing workflows: %w", err)
	}
	return res.RowsAffected()
}

func collectWorkflows(rows *sql.Rows) ([]model.TranslationWorkflow, error) {
	defer rows.Close()
	out := make([]model.TranslationWorkflow, 0)
	for rows.Next() {
		wf, err := scanWorkflow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan workflow: %w", err)
		}
		out = append(out, wf)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate workflows: %w", err)
	}
	return out, nil
}

func scanWorkflow(row rowScanner) (model.TranslationWorkflow, error) {
	var wf model.TranslationWorkflow
	var errMsg, completedAt sql.NullString
	var createdAt, updatedAt string
	if err := row.Scan(&wf.ID, &wf.PostID, &wf.TargetLanguage, &wf.Status, &wf.Attempts, &errMsg, &completedAt, &createdAt, &updatedAt); err != nil {
		return model.TranslationWorkflow{}, err
	}
	wf.ErrorMessage = stringPtr(errMsg)
	wf.CompletedAt = parseTimePtr(completedAt)
	wf.CreatedAt, _ = parseTime(createdAt)
	wf.UpdatedAt, _ = parseTime(updatedAt)
	return wf, nil
}
