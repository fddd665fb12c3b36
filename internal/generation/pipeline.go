package generation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/sebrandon1/deckgen/internal/deck"
)

// Pipeline runs the full content-generation sequence for one document:
// prompt building, resilient provider invocation, response parsing and
// slide structuring. Documents are processed one at a time; a Pipeline
// holds no mutable state between runs.
type Pipeline struct {
	provider      Provider
	invoker       *Invoker
	logger        *slog.Logger
	maxInputChars int
}

// NewPipeline wires a pipeline around the given provider.
func NewPipeline(provider Provider, policy RetryPolicy, maxInputChars int, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		provider:      provider,
		invoker:       NewInvoker(policy, logger),
		logger:        logger,
		maxInputChars: maxInputChars,
	}
}

// Generate turns extracted document text into a structured, normalized
// presentation. The provider call and the response parse share one retry
// budget: a parse failure counts as a failed attempt and may be answered
// by re-asking the model. On success the sink has been driven to 1.0.
func (p *Pipeline) Generate(
	ctx context.Context,
	documentText, fileName string,
	sink ProgressFunc,
) (*deck.Presentation, error) {
	log := p.logger.With(
		"run_id", uuid.NewString(),
		"file", fileName,
		"provider", p.provider.Name())

	sink = monotonic(sink)
	system := SystemPrompt()
	user := UserPrompt(documentText, fileName, p.maxInputChars)

	log.InfoContext(ctx, "generating presentation content",
		"document_chars", len(documentText),
		"prompt_chars", len(user))

	pres, err := p.invoker.Invoke(ctx, sink, func(ctx context.Context) (*deck.Presentation, error) {
		raw, err := p.provider.Generate(ctx, system, user, sink)
		if err != nil {
			return nil, err
		}
		return deck.Parse(raw)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate presentation using %s: %w", p.provider.Name(), err)
	}

	deck.Structure(pres)
	report(sink, 1.0)

	log.InfoContext(ctx, "presentation generated",
		"title", pres.Title,
		"slides", len(pres.Slides))
	return pres, nil
}
