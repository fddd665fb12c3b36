package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sebrandon1/deckgen/internal/deck"
	"github.com/sebrandon1/deckgen/internal/theme"
)

func samplePresentation() *deck.Presentation {
	return &deck.Presentation{
		Title: "Quarterly Review",
		Slides: []deck.Slide{
			{
				Title:   "Highlights",
				Type:    deck.TypeContent,
				Content: deck.StringList{"Revenue up", "  - driven by renewals"},
				Notes:   "expand on renewals",
			},
			{
				Title: "Next Quarter",
				Type:  deck.TypeSection,
			},
			{
				Title:      "Plans",
				Type:       deck.TypeComparison,
				Left:       deck.StringList{"hire"},
				Right:      deck.StringList{"consolidate"},
				LeftTitle:  "Grow",
				RightTitle: "Hold",
			},
		},
	}
}

func writeAndReload(t *testing.T, s *JSONSerializer, themeName string) Deck {
	t.Helper()
	path := filepath.Join(t.TempDir(), "out.deck.json")
	require.NoError(t, s.Write(samplePresentation(), themeName, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var out Deck
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func TestJSONSerializerWrite(t *testing.T) {
	out := writeAndReload(t, &JSONSerializer{}, "professional")

	assert.Equal(t, "Quarterly Review", out.Title)
	assert.Equal(t, "professional", out.Theme.Name)
	require.Len(t, out.Slides, 3)

	content := out.Slides[0]
	tokens := theme.Resolve("professional")
	assert.Equal(t, []Bullet{
		{Text: "Revenue up", Level: 0, Size: tokens.BulletSizeAt(0)},
		{Text: "driven by renewals", Level: 1, Size: tokens.BulletSizeAt(1)},
	}, content.Bullets)
	assert.Equal(t, "expand on renewals", content.Notes)

	section := out.Slides[1]
	assert.Equal(t, deck.TypeSection, section.Type)
	assert.Empty(t, section.Bullets)

	comparison := out.Slides[2]
	assert.Equal(t, deck.TypeComparison, comparison.Type)
	assert.Equal(t, []string{"hire"}, comparison.Left)
	assert.Equal(t, []string{"consolidate"}, comparison.Right)
	assert.Equal(t, "Grow", comparison.LeftTitle)
	assert.Equal(t, "Hold", comparison.RightTitle)
	assert.Empty(t, comparison.Bullets)

	require.NotNil(t, out.Closing)
	assert.Equal(t, "Thank You", out.Closing.Title)
	assert.Equal(t, "Questions & Discussion", out.Closing.Subtitle)
}

func TestJSONSerializerOmitClosing(t *testing.T) {
	out := writeAndReload(t, &JSONSerializer{OmitClosing: true}, "professional")
	assert.Nil(t, out.Closing)
}

func TestJSONSerializerUnknownThemeFallsBack(t *testing.T) {
	out := writeAndReload(t, &JSONSerializer{}, "no-such-theme")
	assert.Equal(t, theme.DefaultName, out.Theme.Name)
}

func TestDefaultPath(t *testing.T) {
	assert.Equal(t, "notes"+Extension, DefaultPath("notes.md"))
	assert.Equal(t, filepath.Join("docs", "report")+Extension, DefaultPath(filepath.Join("docs", "report.txt")))
	assert.Equal(t, "bare"+Extension, DefaultPath("bare"))
}
