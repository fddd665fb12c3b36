package generation_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sebrandon1/deckgen/internal/deck"
	"github.com/sebrandon1/deckgen/internal/generation"
	"github.com/sebrandon1/deckgen/internal/provider"
)

const validResponse = `{"title":"Doc Overview","slides":[
	{"title":"Intro","content":["What this covers","  - scope"],"type":"content"},
	{"title":"Empty","content":[],"type":"content"}
]}`

func fastPolicy() generation.RetryPolicy {
	return generation.RetryPolicy{MaxAttempts: 3, BaseDelay: time.Millisecond}
}

func TestPipelineGenerate(t *testing.T) {
	mock := &provider.Mock{Response: validResponse}
	pipeline := generation.NewPipeline(mock, fastPolicy(), 50000, nil)

	pres, err := pipeline.Generate(context.Background(), "doc text", "doc.md", nil)
	require.NoError(t, err)

	assert.Equal(t, "Doc Overview", pres.Title)
	// the empty content slide is dropped during structuring
	require.Len(t, pres.Slides, 1)
	assert.Equal(t, []deck.Bullet{
		{Text: "What this covers", Level: 0},
		{Text: "scope", Level: 1},
	}, pres.Slides[0].Bullets())

	require.Len(t, mock.Calls, 1)
	assert.Contains(t, mock.Calls[0].UserPrompt, "doc text")
	assert.Contains(t, mock.Calls[0].UserPrompt, `"doc.md"`)
}

func TestPipelineRetriesTransientFailures(t *testing.T) {
	mock := &provider.Mock{
		Response:  validResponse,
		Err:       fmt.Errorf("%w: upstream hiccup", generation.ErrTransient),
		FailFirst: 2,
	}
	pipeline := generation.NewPipeline(mock, fastPolicy(), 50000, nil)

	pres, err := pipeline.Generate(context.Background(), "doc", "doc.md", nil)
	require.NoError(t, err)
	assert.Equal(t, "Doc Overview", pres.Title)
	assert.Len(t, mock.Calls, 3)
}

func TestPipelineRetriesUnparseableOutput(t *testing.T) {
	mock := &provider.Mock{Response: "I am unable to answer in JSON."}
	pipeline := generation.NewPipeline(mock, fastPolicy(), 50000, nil)

	_, err := pipeline.Generate(context.Background(), "doc", "doc.md", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, deck.ErrParse)
	assert.Contains(t, err.Error(), "failed to generate presentation using mock")
	// parse failures consume the same budget as provider failures
	assert.Len(t, mock.Calls, 3)
}

func TestPipelineFatalProviderErrorNotRetried(t *testing.T) {
	mock := &provider.Mock{
		Err:       fmt.Errorf("%w: invalid request", generation.ErrBadRequest),
		FailFirst: 10,
	}
	pipeline := generation.NewPipeline(mock, fastPolicy(), 50000, nil)

	_, err := pipeline.Generate(context.Background(), "doc", "doc.md", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, generation.ErrBadRequest)
	assert.Len(t, mock.Calls, 1)
}

func TestPipelineProgressReachesCompletion(t *testing.T) {
	mock := &provider.Mock{Response: validResponse}
	pipeline := generation.NewPipeline(mock, fastPolicy(), 50000, nil)

	var reported []float64
	_, err := pipeline.Generate(context.Background(), "doc", "doc.md", func(f float64) {
		reported = append(reported, f)
	})
	require.NoError(t, err)

	require.NotEmpty(t, reported)
	assert.Equal(t, 1.0, reported[len(reported)-1])
	for i := 1; i < len(reported); i++ {
		assert.GreaterOrEqual(t, reported[i], reported[i-1])
	}
}

func TestPipelineTruncatesOversizedInput(t *testing.T) {
	mock := &provider.Mock{Response: validResponse}
	pipeline := generation.NewPipeline(mock, fastPolicy(), 10, nil)

	_, err := pipeline.Generate(context.Background(), "0123456789overflow", "doc.md", nil)
	require.NoError(t, err)

	require.Len(t, mock.Calls, 1)
	assert.Contains(t, mock.Calls[0].UserPrompt, "0123456789"+generation.TruncationMarker)
	assert.NotContains(t, mock.Calls[0].UserPrompt, "overflow")
}
