package model

import "time"

const (
	PostStatusDraft     = "draft"
	PostStatusPublished = "published"
	PostStatusArchived  = "archived"
)

type BlogPost struct {
	ID          int64
	UserID      int64
	Title       string
	Slug        string
	Description string
	Content     string // markdown
	Keywords    []string
	Language    string
	Status      string // draft, published, archived
	SourceURL   *string
	PublishedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func IsValidPostStatus(status string) bool {
	switch status {
	case PostStatusDraft, PostStatusPublished, PostStatusArchived:
		return true
	}
	return false
}
