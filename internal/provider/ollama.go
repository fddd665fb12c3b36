package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	ollama "github.com/ollama/ollama/api"
	"github.com/sebrandon1/deckgen/internal/config"
	"github.com/sebrandon1/deckgen/internal/generation"
)

// ollamaClient is the subset of the Ollama API client the provider
// uses. It exists so tests can substitute a mock.
type ollamaClient interface {
	Chat(ctx context.Context, req *ollama.ChatRequest, fn ollama.ChatResponseFunc) error
}

// ollamaProvider runs generation against a local Ollama instance. Local
// inference has no natural upper bound, so every call is bounded by an
// explicit timeout.
type ollamaProvider struct {
	client      ollamaClient
	model       string
	maxTokens   int
	temperature float64
	timeout     time.Duration
}

func newOllamaProvider(
	cfg config.OllamaConfig,
	gen config.GenerationConfig,
	model string,
) (*ollamaProvider, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("%w: invalid Ollama base URL %q", generation.ErrConfiguration, cfg.BaseURL)
	}
	return &ollamaProvider{
		client:      ollama.NewClient(base, http.DefaultClient),
		model:       model,
		maxTokens:   gen.MaxTokens,
		temperature: gen.Temperature,
		timeout:     cfg.Timeout(),
	}, nil
}

func (p *ollamaProvider) Name() string {
	return fmt.Sprintf("Ollama (%s)", p.model)
}

func (p *ollamaProvider) Generate(
	ctx context.Context,
	systemPrompt, userPrompt string,
	_ generation.ProgressFunc,
) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	stream := false
	req := &ollama.ChatRequest{
		Model: p.model,
		Messages: []ollama.Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Stream: &stream,
		Options: map[string]any{
			"temperature": p.temperature,
			"num_predict": p.maxTokens,
		},
	}

	var out strings.Builder
	err := p.client.Chat(callCtx, req, func(resp ollama.ChatResponse) error {
		out.WriteString(resp.Message.Content)
		return nil
	})
	if err != nil {
		if ctx.Err() != nil {
			// Caller cancellation, not a backend failure.
			return "", ctx.Err()
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: ollama call exceeded %s timeout", generation.ErrTransient, p.timeout)
		}
		var statusErr ollama.StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusTooManyRequests {
			return "", fmt.Errorf("%w: ollama: %v", generation.ErrRateLimited, err)
		}
		return "", fmt.Errorf("%w: ollama: %v", generation.ErrTransient, err)
	}

	return strings.TrimSpace(out.String()), nil
}
