package deck

import "strings"

// UntitledSlide fills a missing slide title during structuring.
const UntitledSlide = "Untitled Slide"

// maxBulletLevel caps visual nesting depth.
const maxBulletLevel = 2

// Structure normalizes a parsed presentation in place so the serializer
// can consume it directly:
//
//   - unrecognized or missing slide types default to content
//   - comparison slides missing either column are downgraded to content,
//     falling back to their content field
//   - content slides whose bullet list resolves to empty are dropped;
//     section slides are titles-only by design and always retained
func Structure(p *Presentation) {
	out := make([]Slide, 0, len(p.Slides))
	for _, s := range p.Slides {
		if s.Title == "" {
			s.Title = UntitledSlide
		}

		switch s.Type {
		case TypeContent, TypeSection, TypeComparison:
		default:
			s.Type = TypeContent
		}

		if s.Type == TypeComparison && (len(s.Left) == 0 || len(s.Right) == 0) {
			s.Type = TypeContent
			s.Left, s.Right = nil, nil
			s.LeftTitle, s.RightTitle = "", ""
		}

		switch s.Type {
		case TypeSection, TypeComparison:
			out = append(out, s)
		default:
			if len(s.Bullets()) > 0 {
				out = append(out, s)
			}
		}
	}
	p.Slides = out
}

// Bullets resolves the slide's raw content strings into (text, level)
// pairs. Entries that are empty after marker stripping are omitted.
func (s Slide) Bullets() []Bullet {
	out := make([]Bullet, 0, len(s.Content))
	for _, raw := range s.Content {
		if b, ok := ParseBullet(raw); ok {
			out = append(out, b)
		}
	}
	return out
}

// ParseBullet strips nesting markup from one content line. Indentation
// units are consumed first: each leading two-space run or tab adds one
// level, capped at maxBulletLevel (deeper indentation is consumed
// without raising the level). Bullet markers and any whitespace that
// follows them are then stripped without affecting the level. Returns
// false when nothing remains after stripping.
func ParseBullet(raw string) (Bullet, bool) {
	rest := raw
	level := 0

indent:
	for {
		switch {
		case strings.HasPrefix(rest, "  "):
			rest = rest[2:]
		case strings.HasPrefix(rest, "\t"):
			rest = rest[1:]
		default:
			break indent
		}
		if level < maxBulletLevel {
			level++
		}
	}

	for {
		switch {
		case strings.HasPrefix(rest, "- "):
			rest = rest[2:]
		case strings.HasPrefix(rest, "* "):
			rest = rest[2:]
		case strings.HasPrefix(rest, "• "):
			rest = rest[len("• "):]
		default:
			text := strings.TrimSpace(rest)
			if text == "" {
				return Bullet{}, false
			}
			return Bullet{Text: text, Level: level}, true
		}
		rest = strings.TrimLeft(rest, " \t")
	}
}
