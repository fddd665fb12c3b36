package generation

import "context"

// ProgressFunc receives pipeline progress in the range 0.0 to 1.0. It is
// invoked synchronously on the calling goroutine and may be nil.
type ProgressFunc func(fraction float64)

// Provider is the capability contract implemented by interchangeable LLM
// backends. Implementations own their credential resolution and wire
// protocol; they must fail at construction time, not call time, when
// required configuration is absent.
type Provider interface {
	// Generate turns a prompt pair into raw model text. Implementations
	// may report coarse mid-call progress through onProgress; most ignore
	// it and leave milestone reporting to the invoker.
	Generate(ctx context.Context, systemPrompt, userPrompt string, onProgress ProgressFunc) (string, error)

	// Name returns the provider name for display and logging.
	Name() string
}

func report(sink ProgressFunc, fraction float64) {
	if sink != nil {
		sink(fraction)
	}
}

// monotonic wraps a sink so reported values never decrease within one
// invocation, regardless of how attempts interleave.
func monotonic(sink ProgressFunc) ProgressFunc {
	if sink == nil {
		return nil
	}
	var high float64
	return func(fraction float64) {
		if fraction < high {
			return
		}
		high = fraction
		sink(fraction)
	}
}
