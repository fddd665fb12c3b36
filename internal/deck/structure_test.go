package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBullet(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		text  string
		level int
		keep  bool
	}{
		{"plain", "top level point", "top level point", 0, true},
		{"marker only", "- top", "top", 0, true},
		{"star marker", "* top", "top", 0, true},
		{"unicode marker", "• top", "top", 0, true},
		{"indented marker", "  - sub point", "sub point", 1, true},
		{"double indent", "    - deeper", "deeper", 2, true},
		{"tab indent", "\t- sub", "sub", 1, true},
		{"two tabs", "\t\t- deep", "deep", 2, true},
		{"level capped", "\t\t\t- very deep", "very deep", 2, true},
		{"spaces after marker keep level", "- -   doubled", "doubled", 0, true},
		{"empty after strip", "  - ", "", 0, false},
		{"blank", "   ", "", 0, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b, ok := ParseBullet(tc.input)
			assert.Equal(t, tc.keep, ok)
			if tc.keep {
				assert.Equal(t, tc.text, b.Text)
				assert.Equal(t, tc.level, b.Level)
			}
		})
	}
}

func TestStructureDefaultsUnknownType(t *testing.T) {
	p := &Presentation{Slides: []Slide{
		{Title: "A", Content: StringList{"x"}, Type: "banner"},
		{Title: "B", Content: StringList{"y"}},
	}}

	Structure(p)
	require.Len(t, p.Slides, 2)
	assert.Equal(t, TypeContent, p.Slides[0].Type)
	assert.Equal(t, TypeContent, p.Slides[1].Type)
}

func TestStructureDropsEmptyContentSlides(t *testing.T) {
	p := &Presentation{Slides: []Slide{
		{Title: "Keep", Content: StringList{"point"}},
		{Title: "Drop", Content: StringList{"", "  - "}},
		{Title: "Also drop"},
	}}

	Structure(p)
	require.Len(t, p.Slides, 1)
	assert.Equal(t, "Keep", p.Slides[0].Title)
}

func TestStructureRetainsEmptySectionSlides(t *testing.T) {
	p := &Presentation{Slides: []Slide{
		{Title: "Part Two", Type: TypeSection},
	}}

	Structure(p)
	require.Len(t, p.Slides, 1)
	assert.Equal(t, TypeSection, p.Slides[0].Type)
}

func TestStructureDowngradesComparisonMissingRight(t *testing.T) {
	p := &Presentation{Slides: []Slide{{
		Title:   "Versus",
		Type:    TypeComparison,
		Left:    StringList{"a"},
		Content: StringList{"fallback point"},
	}}}

	Structure(p)
	require.Len(t, p.Slides, 1)
	s := p.Slides[0]
	assert.Equal(t, TypeContent, s.Type)
	assert.Empty(t, s.Left)
	assert.Empty(t, s.Right)
	assert.Equal(t, []Bullet{{Text: "fallback point", Level: 0}}, s.Bullets())
}

func TestStructureDropsDowngradedComparisonWithoutContent(t *testing.T) {
	p := &Presentation{Slides: []Slide{{
		Title: "Versus",
		Type:  TypeComparison,
		Left:  StringList{"a"},
	}}}

	Structure(p)
	assert.Empty(t, p.Slides)
}

func TestStructureKeepsValidComparison(t *testing.T) {
	p := &Presentation{Slides: []Slide{{
		Title: "Versus",
		Type:  TypeComparison,
		Left:  StringList{"a"},
		Right: StringList{"b"},
	}}}

	Structure(p)
	require.Len(t, p.Slides, 1)
	assert.Equal(t, TypeComparison, p.Slides[0].Type)
}

func TestStructureFillsMissingSlideTitle(t *testing.T) {
	p := &Presentation{Slides: []Slide{{Content: StringList{"x"}}}}

	Structure(p)
	require.Len(t, p.Slides, 1)
	assert.Equal(t, UntitledSlide, p.Slides[0].Title)
}

func TestBulletsPreserveOrder(t *testing.T) {
	s := Slide{Content: StringList{"first", "  - nested", "second"}}

	assert.Equal(t, []Bullet{
		{Text: "first", Level: 0},
		{Text: "nested", Level: 1},
		{Text: "second", Level: 0},
	}, s.Bullets())
}
