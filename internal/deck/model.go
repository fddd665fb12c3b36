// Package deck holds the presentation data model produced by the content
// generation pipeline, along with the tolerant response parser and the
// content structurer that prepares slides for the serializer.
package deck

import (
	"encoding/json"
	"fmt"
)

// SlideType identifies the layout a slide should be rendered with.
type SlideType string

const (
	TypeContent    SlideType = "content"
	TypeSection    SlideType = "section"
	TypeComparison SlideType = "comparison"
)

// Presentation is the validated slide-deck description for one document.
// It is created fresh per pipeline run and discarded after serialization.
type Presentation struct {
	Title  string  `json:"title"`
	Slides []Slide `json:"slides"`
}

// Slide is a single slide record as recovered from the model response.
// Left/Right are only meaningful for comparison slides.
type Slide struct {
	Title      string     `json:"title"`
	Content    StringList `json:"content"`
	Notes      string     `json:"notes"`
	Type       SlideType  `json:"type"`
	Left       StringList `json:"left,omitempty"`
	Right      StringList `json:"right,omitempty"`
	LeftTitle  string     `json:"left_title,omitempty"`
	RightTitle string     `json:"right_title,omitempty"`
}

// Bullet is one content line after nesting markup has been resolved.
// Level is clamped to [0, 2]. Bullets are recomputed per render and
// never persisted.
type Bullet struct {
	Text  string `json:"text"`
	Level int    `json:"level"`
}

// StringList unmarshals tolerantly: a JSON array of strings, a bare
// string (treated as a one-element list), or an array of arbitrary
// scalars (stringified). Models frequently emit all three shapes.
type StringList []string

func (s *StringList) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		*s = items
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*s = StringList{single}
		return nil
	}

	var loose []any
	if err := json.Unmarshal(data, &loose); err != nil {
		return err
	}
	items = make([]string, 0, len(loose))
	for _, v := range loose {
		items = append(items, fmt.Sprint(v))
	}
	*s = items
	return nil
}
