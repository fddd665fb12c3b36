package generation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sebrandon1/deckgen/internal/deck"
)

// RetryPolicy bounds the invoker's retry loop. Shared and read-only.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
}

// DefaultRetryPolicy mirrors the configuration defaults.
var DefaultRetryPolicy = RetryPolicy{MaxAttempts: 3, BaseDelay: 2 * time.Second}

// Invoker wraps a provider call in a bounded retry loop with linear
// backoff and progress reporting. Retry sleeps block the calling
// goroutine; there are no background timers.
type Invoker struct {
	policy RetryPolicy
	logger *slog.Logger
}

// NewInvoker builds an Invoker. Out-of-range policy values fall back to
// the defaults rather than failing.
func NewInvoker(policy RetryPolicy, logger *slog.Logger) *Invoker {
	if policy.MaxAttempts < 1 {
		policy.MaxAttempts = DefaultRetryPolicy.MaxAttempts
	}
	if policy.BaseDelay < 0 {
		policy.BaseDelay = DefaultRetryPolicy.BaseDelay
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Invoker{policy: policy, logger: logger}
}

// Invoke runs op up to MaxAttempts times. Before each attempt the first
// 30% of the progress range is apportioned across attempts; 0.8 is
// reported once op succeeds, leaving 1.0 for the caller after downstream
// work completes. Retryable failures sleep BaseDelay*(attempt+1) before
// the next try; fatal failures abort immediately.
func (inv *Invoker) Invoke(
	ctx context.Context,
	sink ProgressFunc,
	op func(context.Context) (*deck.Presentation, error),
) (*deck.Presentation, error) {
	sink = monotonic(sink)
	attempts := inv.policy.MaxAttempts

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		report(sink, float64(attempt)/float64(attempts)*0.3)

		result, err := op(ctx)
		if err == nil {
			report(sink, 0.8)
			return result, nil
		}
		lastErr = err

		if !Retryable(err) {
			inv.logger.ErrorContext(ctx, "fatal error, not retrying",
				"attempt", attempt+1,
				"error", err)
			return nil, err
		}

		inv.logger.WarnContext(ctx, "attempt failed",
			"attempt", attempt+1,
			"max_attempts", attempts,
			"error", err)

		if attempt == attempts-1 {
			break
		}

		delay := inv.policy.BaseDelay * time.Duration(attempt+1)
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, fmt.Errorf("cancelled during retry delay: %w", ctx.Err())
		}
	}

	return nil, fmt.Errorf("generation failed after %d attempts: %w", attempts, lastErr)
}
