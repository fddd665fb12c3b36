package deck

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for response validation. ErrParse is retryable by the
// invoker (a re-ask may yield cleaner output); ErrSchema is terminal.
var (
	ErrParse  = errors.New("failed to parse model response as JSON")
	ErrSchema = errors.New("model response has an invalid shape")
)

// PlaceholderTitle fills a missing presentation title after parsing.
const PlaceholderTitle = "Generated Presentation"

const previewLimit = 500

// Parse recovers a Presentation from raw model output. The text may be
// pure JSON, wrapped in markdown fences, or surrounded by prose. The
// recovery ladder, in order: a ```json fence, the first generic fence
// pair, a strict parse of the remaining text, and finally the greedy
// outermost {...} span of the original text.
func Parse(raw string) (*Presentation, error) {
	cleaned := strings.TrimSpace(raw)

	if idx := strings.Index(cleaned, "```json"); idx >= 0 {
		inner := cleaned[idx+len("```json"):]
		if end := strings.Index(inner, "```"); end >= 0 {
			inner = inner[:end]
		}
		cleaned = inner
	} else if strings.Contains(cleaned, "```") {
		parts := strings.SplitN(cleaned, "```", 3)
		if len(parts) >= 2 {
			cleaned = parts[1]
		}
	}
	cleaned = strings.TrimSpace(cleaned)

	p, err := decode(cleaned)
	if err == nil {
		return p, nil
	}
	if errors.Is(err, ErrSchema) {
		return nil, err
	}

	// The fenced candidate was not valid JSON. Fall back to the greedy
	// outermost object span of the original response.
	start := strings.IndexByte(raw, '{')
	end := strings.LastIndexByte(raw, '}')
	if start >= 0 && end > start {
		if p, ferr := decode(raw[start : end+1]); ferr == nil {
			return p, nil
		} else if errors.Is(ferr, ErrSchema) {
			return nil, ferr
		}
	}

	return nil, fmt.Errorf("%w: %v (response preview: %s)", ErrParse, err, preview(raw))
}

// decode performs a strict parse of one candidate span, verifies the
// result is object-shaped, and backfills the two fields that are never
// allowed to be absent downstream.
func decode(text string) (*Presentation, error) {
	var probe any
	if err := json.Unmarshal([]byte(text), &probe); err != nil {
		return nil, err
	}
	if _, ok := probe.(map[string]any); !ok {
		return nil, fmt.Errorf("%w: top-level value is not an object", ErrSchema)
	}

	var p Presentation
	if err := json.Unmarshal([]byte(text), &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchema, err)
	}

	if p.Title == "" {
		p.Title = PlaceholderTitle
	}
	if p.Slides == nil {
		p.Slides = []Slide{}
	}
	return &p, nil
}

func preview(s string) string {
	if len(s) <= previewLimit {
		return s
	}
	return s[:previewLimit] + "..."
}
