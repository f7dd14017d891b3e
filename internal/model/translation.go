package model

import "time"

// BlogPostTranslation is a translated copy of a post in one language.
type BlogPostTranslation struct {
	ID          int64
	PostID      int64
	Language    string
	Title       string
	Description string
	Content     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

const (
	WorkflowPending    = "pending"
	WorkflowProcessing = "processing"
	WorkflowCompleted  = "completed"
	WorkflowFailed     = "failed"
)

// TranslationWorkflow tracks one requested translation of a post.
type TranslationWorkflow struct {
	ID             int64
	PostID         int64
	TargetLanguage string
	Status         string // pending, processing, completed, failed
	Attempts       int
	ErrorMessage   *string
	CompletedAt    *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsOpen reports whether the workflow has not reached a terminal state.
func (w TranslationWorkflow) IsOpen() bool {
	return w.Status == WorkflowPending || w.Status == WorkflowProcessing
}
