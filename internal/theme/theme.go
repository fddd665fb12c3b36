// Package theme defines the fixed formatting token sets applied to
// generated presentations. Tokens are static and never mutated at runtime.
package theme

// RGB is a color triple as consumed by the deck serializer.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Palette groups the colors a theme applies to slide elements.
type Palette struct {
	Primary    RGB `json:"primary"`
	Secondary  RGB `json:"secondary"`
	Accent     RGB `json:"accent"`
	Text       RGB `json:"text"`
	Background RGB `json:"background"`
}

// Tokens is the full token set for one theme: font names, point sizes
// and the color palette.
type Tokens struct {
	Name         string  `json:"name"`
	TitleFont    string  `json:"title_font"`
	BodyFont     string  `json:"body_font"`
	TitleSize    int     `json:"title_size"`
	SubtitleSize int     `json:"subtitle_size"`
	BodySize     int     `json:"body_size"`
	BulletSize   int     `json:"bullet_size"`
	Colors       Palette `json:"colors"`
}

// DefaultName is the theme used when an unknown name is requested.
const DefaultName = "professional"

var themes = map[string]Tokens{
	"professional": {
		Name:         "professional",
		TitleFont:    "Calibri",
		BodyFont:     "Calibri",
		TitleSize:    40,
		SubtitleSize: 22,
		BodySize:     20,
		BulletSize:   18,
		Colors: Palette{
			Primary:    RGB{31, 73, 125},
			Secondary:  RGB{79, 129, 189},
			Accent:     RGB{192, 80, 77},
			Text:       RGB{64, 64, 64},
			Background: RGB{255, 255, 255},
		},
	},
	"modern": {
		Name:         "modern",
		TitleFont:    "Segoe UI",
		BodyFont:     "Segoe UI",
		TitleSize:    40,
		SubtitleSize: 22,
		BodySize:     20,
		BulletSize:   18,
		Colors: Palette{
			Primary:    RGB{46, 116, 181},
			Secondary:  RGB{112, 173, 71},
			Accent:     RGB{255, 140, 0},
			Text:       RGB{51, 51, 51},
			Background: RGB{250, 250, 250},
		},
	},
	"dark": {
		Name:         "dark",
		TitleFont:    "Segoe UI",
		BodyFont:     "Segoe UI",
		TitleSize:    40,
		SubtitleSize: 22,
		BodySize:     20,
		BulletSize:   18,
		Colors: Palette{
			Primary:    RGB{86, 156, 214},
			Secondary:  RGB{156, 220, 254},
			Accent:     RGB{206, 145, 120},
			Text:       RGB{212, 212, 212},
			Background: RGB{30, 30, 30},
		},
	},
	"minimal": {
		Name:         "minimal",
		TitleFont:    "Helvetica Neue",
		BodyFont:     "Helvetica Neue",
		TitleSize:    38,
		SubtitleSize: 20,
		BodySize:     18,
		BulletSize:   16,
		Colors: Palette{
			Primary:    RGB{0, 0, 0},
			Secondary:  RGB{96, 96, 96},
			Accent:     RGB{0, 112, 192},
			Text:       RGB{32, 32, 32},
			Background: RGB{255, 255, 255},
		},
	},
}

// Resolve returns the token set for the named theme. Unknown names fall
// back to the default theme; theme resolution never fails.
func Resolve(name string) Tokens {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes[DefaultName]
}

// Names returns the known theme names in a stable order.
func Names() []string {
	return []string{"professional", "modern", "dark", "minimal"}
}

// BulletSizeAt returns the point size for a bullet at the given nesting
// level: two points smaller per level of indentation.
func (t Tokens) BulletSizeAt(level int) int {
	return t.BulletSize - 2*level
}
