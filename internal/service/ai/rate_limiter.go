package ai

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"inkwell/backend/internal/logger"
)

// DefaultRateLimit is the provider call budget per second.
const DefaultRateLimit = 10

// throttleLogThreshold is the wait above which a throttled call is logged.
const throttleLogThreshold = 500 * time.Millisecond

// RateLimiter is the single token bucket shared by every LLM call, whichever
// provider is configured. Burst equals the per-second limit.
type RateLimiter struct {
	mu      sync.RWMutex
	limiter *rate.Limiter
}

func NewRateLimiter(qps int) *RateLimiter {
	qps = normalizeQPS(qps)
	return &RateLimiter{limiter: rate.NewLimiter(rate.Limit(qps), qps)}
}

// Wait blocks for a token, logging calls that were held back noticeably.
func (r *RateLimiter) Wait(ctx context.Context, action string) error {
	r.mu.RLock()
	limiter := r.limiter
	r.mu.RUnlock()

	start := time.Now()
	if err := limiter.Wait(ctx); err != nil {
		return err
	}
	if waited := time.Since(start); waited > throttleLogThreshold {
		logger.Debug("ai call throttled", "module", "ai", "action", action, "resource", "ai", "result", "ok", "waited_ms", waited.Milliseconds())
	}
	return nil
}

// SetLimit changes the budget in place so waiting callers see it.
func (r *RateLimiter) SetLimit(qps int) {
	qps = normalizeQPS(qps)
	r.mu.Lock()
	r.limiter.SetLimit(rate.Limit(qps))
	r.limiter.SetBurst(qps)
	r.mu.Unlock()
	logger.Info("ai rate limit updated", "module", "ai", "action", "update", "resource", "ai", "result", "ok", "qps", qps)
}

func (r *RateLimiter) Limit() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int(r.limiter.Limit())
}

func normalizeQPS(qps int) int {
	if qps <= 0 {
		return DefaultRateLimit
	}
	return qps
}
