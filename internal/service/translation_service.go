package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"inkwell/backend/internal/logger"
	"inkwell/backend/internal/model"
	"inkwell/backend/internal/repository"
)

var ErrAlreadyProcessing = errors.New("translation run already in progress")

// maxErrorMessage bounds the error text stored on a failed workflow.
const maxErrorMessage = 1000

type TranslationService interface {
	// RequestTranslations queues one workflow per language. An open workflow
	// for the same post and language is returned instead of a new one.
	RequestTranslations(ctx context.Context, userID, postID int64, languages []string) ([]model.TranslationWorkflow, error)
	ListWorkflows(ctx context.Context, userID, postID int64) ([]model.TranslationWorkflow, error)
	// RetryWorkflow moves a failed workflow back to pending.
	RetryWorkflow(ctx context.Context, userID, workflowID int64) (model.TranslationWorkflow, error)
	// ProcessPending claims up to batch pending workflows and runs them with
	// bounded parallelism. It returns the number of workflows attempted.
	ProcessPending(ctx context.Context, batch int) (int, error)
	// RecoverStale returns workflows interrupted by a shutdown to pending.
	RecoverStale(ctx context.Context) error
	IsProcessing() bool
}

type translationService struct {
	posts        repository.BlogPostRepository
	translations repository.TranslationRepository
	workflows    repository.WorkflowRepository
	generator    Generator
	workers      int

	mu         sync.Mutex
	processing bool
}

func NewTranslationService(
	posts repository.BlogPostRepository,
	translations repository.TranslationRepository,
	workflows repository.WorkflowRepository,
	generator Generator,
	workers int,
) TranslationService {
	if workers < 1 {
		workers = 1
	}
	return &translationService{
		posts:        posts,
		translations: translations,
		workflows:    workflows,
		generator:    generator,
		workers:      workers,
	}
}

func (s *translationService) ownedPost(ctx context.Context, userID, postID int64) (model.BlogPost, error) {
	post, err := s.posts.GetByID(ctx, postID)
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

func (s *translationService) RequestTranslations(ctx context.Context, userID, postID int64, languages []string) ([]model.TranslationWorkflow, error) {
	post, err := s.ownedPost(ctx, userID, postID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(post.Content) == "" {
		return nil, invalidf("post has no content to translate")
	}

	var targets []string
	seen := make(map[string]struct{}, len(languages))
	for _, raw := range languages {
		lang, err := normalizeLanguage(raw)
		if err != nil {
			return nil, err
		}
		if lang == "" {
			continue
		}
		if lang == post.Language {
			return nil, invalidf("post is already in %q", lang)
		}
		if _, dup := seen[lang]; dup {
			continue
		}
		seen[lang] = struct{}{}
		targets = append(targets, lang)
	}
	if len(targets) == 0 {
		return nil, invalidf("at least one target language is required")
	}

	out := make([]model.TranslationWorkflow, 0, len(targets))
	for _, lang := range targets {
		open, err := s.workflows.FindOpen(ctx, postID, lang)
		if err != nil {
			return nil, fmt.Errorf("find open workflow: %w", err)
		}
		if open != nil {
			out = append(out, *open)
			continue
		}
		wf, err := s.workflows.Create(ctx, postID, lang)
		if err != nil {
			return nil, fmt.Errorf("create workflow: %w", err)
		}
		out = append(out, wf)
	}
	logger.Info("translations requested", "module", "service", "action", "create", "resource", "translation", "result", "ok", "post_id", postID, "languages", strings.Join(targets, ","))
	return out, nil
}

func (s *translationService) ListWorkflows(ctx context.Context, userID, postID int64) ([]model.TranslationWorkflow, error) {
	if _, err := s.ownedPost(ctx, userID, postID); err != nil {
		return nil, err
	}
	out, err := s.workflows.ListByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("list workflows: %w", err)
	}
	return out, nil
}

func (s *translationService) RetryWorkflow(ctx context.Context, userID, workflowID int64) (model.TranslationWorkflow, error) {
	wf, err := s.workflows.GetByID(ctx, workflowID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.TranslationWorkflow{}, ErrNotFound
		}
		return model.TranslationWorkflow{}, fmt.Errorf("get workflow: %w", err)
	}
	if _, err := s.ownedPost(ctx, userID, wf.PostID); err != nil {
		return model.TranslationWorkflow{}, err
	}
	if wf.Status != model.WorkflowFailed {
		return model.TranslationWorkflow{}, fmt.Errorf("%w: only failed workflows can be retried", ErrConflict)
	}
	if err := s.workflows.ResetToPending(ctx, wf.ID); err != nil {
		return model.TranslationWorkflow{}, fmt.Errorf("reset workflow: %w", err)
	}
	return s.workflows.GetByID(ctx, wf.ID)
}

func (s *translationService) IsProcessing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.processing
}

func (s *translationService) ProcessPending(ctx context.Context, batch int) (int, error) {
	s.mu.Lock()
	if s.processing {
		s.mu.Unlock()
		return 0, ErrAlreadyProcessing
	}
	s.processing = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.processing = false
		s.mu.Unlock()
	}()

	if batch <= 0 {
		batch = s.workers
	}
	claimed, err := s.workflows.ClaimPending(ctx, batch)
	if err != nil {
		return 0, fmt.Errorf("claim workflows: %w", err)
	}
	if len(claimed) == 0 {
		return 0, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for _, wf := range claimed {
		g.Go(func() error {
			s.runWorkflow(gctx, wf)
			return nil
		})
	}
	_ = g.Wait()
	return len(claimed), nil
}

// runWorkflow translates one post. Failures are recorded on the workflow.
func (s *translationService) runWorkflow(ctx context.Context, wf model.TranslationWorkflow) {
	err := s.translate(ctx, wf)
	if err == nil {
		if markErr := s.workflows.MarkCompleted(ctx, wf.ID); markErr != nil {
			logger.Error("translation workflow complete failed", "module", "service", "action", "update", "resource", "translation", "result", "failed", "workflow_id", wf.ID, "error", markErr)
			return
		}
		logger.Info("translation completed", "module", "service", "action", "update", "resource", "translation", "result", "ok", "workflow_id", wf.ID, "post_id", wf.PostID, "language", wf.TargetLanguage)
		return
	}

	// A cancelled run is put back for the next start instead of failing.
	if errors.Is(err, context.Canceled) {
		if resetErr := s.workflows.ResetToPending(context.WithoutCancel(ctx), wf.ID); resetErr != nil {
			logger.Error("translation workflow reset failed", "module", "service", "action", "update", "resource", "translation", "result", "failed", "workflow_id", wf.ID, "error", resetErr)
		}
		return
	}

	msg := err.Error()
	if r := []rune(msg); len(r) > maxErrorMessage {
		msg = string(r[:maxErrorMessage])
	}
	logger.Warn("translation failed", "module", "service", "action", "update", "resource", "translation", "result", "failed", "workflow_id", wf.ID, "post_id", wf.PostID, "language", wf.TargetLanguage, "error", err)
	if markErr := s.workflows.MarkFailed(context.WithoutCancel(ctx), wf.ID, msg); markErr != nil {
		logger.Error("translation workflow fail failed", "module", "service", "action", "update", "resource", "translation", "result", "failed", "workflow_id", wf.ID, "error", markErr)
	}
}

func (s *translationService) translate(ctx context.Context, wf model.TranslationWorkflow) error {
	post, err := s.posts.GetByID(ctx, wf.PostID)
	if err != nil {
		return fmt.Errorf("load post: %w", err)
	}
	out, err := s.generator.TranslatePost(ctx, model.TranslateInput{
		Title:          post.Title,
		Description:    post.Description,
		Content:        post.Content,
		SourceLanguage: post.Language,
		TargetLanguage: wf.TargetLanguage,
	})
	if err != nil {
		return err
	}
	if strings.TrimSpace(out.Title) == "" || strings.TrimSpace(out.Content) == "" {
		return fmt.Errorf("%w: empty translation", ErrUpstream)
	}
	_, err = s.translations.Upsert(ctx, model.BlogPostTranslation{
		PostID:      post.ID,
		Language:    wf.TargetLanguage,
		Title:       strings.TrimSpace(out.Title),
		Description: strings.TrimSpace(out.Description),
		Content:     out.Content,
	})
	if err != nil {
		return fmt.Errorf("save translation: %w", err)
	}
	return nil
}

func (s *translationService) RecoverStale(ctx context.Context) error {
	n, err := s.workflows.ResetProcessing(ctx)
	if err != nil {
		return fmt.Errorf("reset processing workflows: %w", err)
	}
	if n > 0 {
		logger.Info("stale translations requeued", "module", "service", "action", "update", "resource", "translation", "result", "ok", "count", n)
	}
	return nil
}
