package generation

import (
	"context"
	"errors"

	"github.com/sebrandon1/deckgen/internal/deck"
)

// Common errors returned by the generation pipeline and the provider
// implementations that feed it. The invoker decides retry eligibility
// with errors.Is against these sentinels rather than by inspecting
// concrete error types.
var (
	// ErrConfiguration is returned when a required credential or model
	// parameter is missing. Fatal, never retried.
	ErrConfiguration = errors.New("invalid provider configuration")

	// ErrBadRequest is returned when a backend rejected the request as
	// malformed. Fatal, never retried.
	ErrBadRequest = errors.New("backend rejected request")

	// ErrRateLimited is returned when a backend signaled throttling.
	// Retried with backoff.
	ErrRateLimited = errors.New("backend rate limit exceeded")

	// ErrTransient is returned for connection failures and timeouts
	// talking to a backend. Retried with backoff.
	ErrTransient = errors.New("transient backend failure")
)

// Retryable reports whether the invoker may re-attempt after err.
// Rate limits, transient network failures and parse failures share one
// retry budget; configuration, schema and cancellation errors abort
// immediately.
func Retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return errors.Is(err, ErrRateLimited) ||
		errors.Is(err, ErrTransient) ||
		errors.Is(err, deck.ErrParse)
}
