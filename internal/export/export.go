// Package export is the downstream collaborator of the generation
// pipeline: it serializes a normalized presentation to disk. The
// built-in serializer writes a layout-ready JSON rendering; a binary
// slide-deck writer would implement the same interface.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sebrandon1/deckgen/internal/deck"
	"github.com/sebrandon1/deckgen/internal/theme"
)

// Extension is the suffix used for default output paths.
const Extension = ".deck.json"

// Serializer writes a structured presentation to path using the named
// theme. Implementations own all layout and file-format decisions.
type Serializer interface {
	Write(p *deck.Presentation, themeName, path string) error
}

// Deck is the layout-ready rendering handed to downstream tooling.
type Deck struct {
	Title   string       `json:"title"`
	Theme   theme.Tokens `json:"theme"`
	Slides  []Slide      `json:"slides"`
	Closing *Closing     `json:"closing,omitempty"`
}

// Slide is one rendered slide with bullets resolved to display size.
type Slide struct {
	Title      string         `json:"title"`
	Type       deck.SlideType `json:"type"`
	Bullets    []Bullet       `json:"bullets,omitempty"`
	Left       []string       `json:"left,omitempty"`
	Right      []string       `json:"right,omitempty"`
	LeftTitle  string         `json:"left_title,omitempty"`
	RightTitle string         `json:"right_title,omitempty"`
	Notes      string         `json:"notes,omitempty"`
}

// Bullet carries the theme-derived point size alongside text and level.
type Bullet struct {
	Text  string `json:"text"`
	Level int    `json:"level"`
	Size  int    `json:"size"`
}

// Closing is the fixed slide appended after the content. Appending it
// is this serializer's policy, not the structurer's.
type Closing struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

// JSONSerializer renders the presentation as indented JSON.
type JSONSerializer struct {
	// OmitClosing suppresses the closing slide.
	OmitClosing bool
}

// Write implements Serializer.
func (s *JSONSerializer) Write(p *deck.Presentation, themeName, path string) error {
	tokens := theme.Resolve(themeName)

	out := Deck{
		Title:  p.Title,
		Theme:  tokens,
		Slides: make([]Slide, 0, len(p.Slides)),
	}

	for _, sl := range p.Slides {
		rendered := Slide{
			Title:      sl.Title,
			Type:       sl.Type,
			Left:       sl.Left,
			Right:      sl.Right,
			LeftTitle:  sl.LeftTitle,
			RightTitle: sl.RightTitle,
			Notes:      sl.Notes,
		}
		if sl.Type == deck.TypeContent {
			for _, b := range sl.Bullets() {
				rendered.Bullets = append(rendered.Bullets, Bullet{
					Text:  b.Text,
					Level: b.Level,
					Size:  tokens.BulletSizeAt(b.Level),
				})
			}
		}
		out.Slides = append(out.Slides, rendered)
	}

	if !s.OmitClosing {
		out.Closing = &Closing{Title: "Thank You", Subtitle: "Questions & Discussion"}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("export: marshal deck: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("export: write %s: %w", path, err)
	}
	return nil
}

// DefaultPath derives the output path from an input file name by
// swapping its extension for the deck extension.
func DefaultPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	return strings.TrimSuffix(inputPath, ext) + Extension
}
