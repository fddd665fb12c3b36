package provider

import (
	"context"

	"github.com/sebrandon1/deckgen/internal/generation"
)

// MockCall records the prompts of a single Mock invocation.
type MockCall struct {
	SystemPrompt string
	UserPrompt   string
}

// Mock is a scripted Provider for tests: it fails the first FailFirst
// calls with Err, then returns Response. Calls records every invocation.
type Mock struct {
	Response  string
	Err       error
	FailFirst int
	Calls     []MockCall
}

// Generate implements generation.Provider.
func (m *Mock) Generate(
	_ context.Context,
	systemPrompt, userPrompt string,
	_ generation.ProgressFunc,
) (string, error) {
	m.Calls = append(m.Calls, MockCall{SystemPrompt: systemPrompt, UserPrompt: userPrompt})
	if len(m.Calls) <= m.FailFirst {
		return "", m.Err
	}
	return m.Response, nil
}

// Name implements generation.Provider.
func (m *Mock) Name() string {
	return "mock"
}
