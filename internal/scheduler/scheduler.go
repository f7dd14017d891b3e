package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"inkwell/backend/internal/logger"
	"inkwell/backend/internal/service"
)

const (
	// DefaultBatch is the number of workflows claimed per tick.
	DefaultBatch = 20
	// runTimeout bounds one pass; interrupted workflows go back to pending.
	runTimeout = 15 * time.Minute
)

// Scheduler drains pending translation workflows on a fixed interval.
type Scheduler struct {
	translations service.TranslationService
	interval     time.Duration
	batch        int
	stopCh       chan struct{}
	stopOnce     sync.Once
	wg           sync.WaitGroup
	cancelFunc   context.CancelFunc // cancels the current pass
	stopped      bool
	mu           sync.Mutex // protects cancelFunc and stopped
}

func New(translations service.TranslationService, interval time.Duration, batch int) *Scheduler {
	if batch <= 0 {
		batch = DefaultBatch
	}
	return &Scheduler{
		translations: translations,
		interval:     interval,
		batch:        batch,
		stopCh:       make(chan struct{}),
	}
}

func (s *Scheduler) Start() {
	s.wg.Add(1)
	go s.run()
	logger.Info("scheduler started", "module", "scheduler", "action", "translate", "resource", "workflow", "result", "ok", "interval_ms", s.interval.Milliseconds(), "batch", s.batch)
}

// Stop cancels the running pass and waits for it to return. It is safe to
// call more than once.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		s.mu.Lock()
		s.stopped = true
		if s.cancelFunc != nil {
			s.cancelFunc()
		}
		s.mu.Unlock()

		close(s.stopCh)
		s.wg.Wait()
		logger.Info("scheduler stopped", "module", "scheduler", "action", "translate", "resource", "workflow", "result", "ok")
	})
}

func (s *Scheduler) run() {
	defer s.wg.Done()

	// Workflows left processing by a previous shutdown would never be claimed again.
	if err := s.translations.RecoverStale(context.Background()); err != nil {
		logger.Error("stale workflow recovery failed", "module", "scheduler", "action", "recover", "resource", "workflow", "result", "failed", "error", err)
	}

	// Run immediately on start
	s.process()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.process()
		case <-s.stopCh:
			return
		}
	}
}

func (s *Scheduler) process() {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)

	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		cancel()
		return
	}
	s.cancelFunc = cancel
	s.mu.Unlock()

	defer func() {
		cancel()
		s.mu.Lock()
		s.cancelFunc = nil
		s.mu.Unlock()
	}()

	n, err := s.translations.ProcessPending(ctx, s.batch)
	switch {
	case errors.Is(err, service.ErrAlreadyProcessing):
		logger.Debug("translation pass skipped", "module", "scheduler", "action", "translate", "resource", "workflow", "result", "skipped")
	case err != nil && ctx.Err() != nil:
		logger.Warn("translation pass cancelled", "module", "scheduler", "action", "translate", "resource", "workflow", "result", "cancelled")
	case err != nil:
		logger.Error("translation pass failed", "module", "scheduler", "action", "translate", "resource", "workflow", "result", "failed", "error", err)
	case n > 0:
		logger.Info("translation pass completed", "module", "scheduler", "action", "translate", "resource", "workflow", "result", "ok", "count", n)
	}
}
