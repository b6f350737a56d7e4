package llm

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"
)

// RetryProvider retries transient failures of the wrapped Provider with
// jittered exponential backoff.
type RetryProvider struct {
	inner  Provider
	config RetryConfig
	logger *zap.Logger
}

// WithRetry wraps p. The first call is always made, even when
// cfg.MaxAttempts is zero. A nil logger discards retry logs.
func WithRetry(p Provider, cfg RetryConfig, logger *zap.Logger) Provider {
	cfg.MaxAttempts = max(cfg.MaxAttempts, 1)
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RetryProvider{inner: p, config: cfg, logger: logger}
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var (
		budget = retryBudget{invalid: 1}
		err    error
	)
	for attempt := 1; ; attempt++ {
		var resp *Response
		if resp, err = r.inner.Generate(ctx, req); err == nil {
			return resp, nil
		}
		if attempt >= r.config.MaxAttempts || !budget.allow(err) {
			return nil, err
		}

		wait := r.delay(attempt, err)
		if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) < wait {
			return nil, err
		}

		r.logger.Debug("retrying llm request",
			zap.Int("attempt", attempt),
			zap.Duration("wait", wait),
			zap.String("purpose", PurposeFrom(ctx)),
			zap.String("session_id", SessionFrom(ctx)),
			zap.Error(err))

		if werr := sleep(ctx, wait); werr != nil {
			return nil, werr
		}
	}
}

func (r *RetryProvider) ModelID() string {
	return r.inner.ModelID()
}

// retryBudget tracks per-call allowances for error kinds that may only
// be retried a limited number of times.
type retryBudget struct {
	invalid int
}

// allow reports whether err is worth another attempt. Rejected requests,
// truncated structured output and cancellation are final.
func (b *retryBudget) allow(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var (
		maxTok   *ErrMaxTokensExceeded
		rejected *ErrRequestRejected
		invalid  *ErrInvalidResponse
	)
	switch {
	case errors.As(err, &maxTok), errors.As(err, &rejected):
		return false
	case errors.As(err, &invalid):
		if b.invalid == 0 {
			return false
		}
		b.invalid--
	}
	return true
}

// delay is the wait before the attempt after the given one. A rate limit
// with a Retry-After hint uses the hint, capped at MaxWait.
func (r *RetryProvider) delay(attempt int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		if r.config.MaxWait > 0 {
			return min(rl.RetryAfter, r.config.MaxWait)
		}
		return rl.RetryAfter
	}

	wait := float64(r.config.InitialWait)
	for range attempt - 1 {
		wait *= r.config.Multiplier
		if r.config.MaxWait > 0 && wait >= float64(r.config.MaxWait) {
			wait = float64(r.config.MaxWait)
			break
		}
	}
	jitter := 0.8 + 0.4*rand.Float64()
	return max(time.Duration(wait*jitter), 0)
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
