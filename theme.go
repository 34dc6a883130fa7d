package tempo

import (
	"sort"
	"strings"

	"github.com/mytempo/tempo/internal/palette"
)

// Style describes a terminal style as an ANSI prefix sequence.
type Style struct {
	Prefix string
}

// Styles groups the semantic styles used by the renderer.
type Styles struct {
	Text       Style
	Heading    [6]Style
	Bold       Style
	Italic     Style
	BoldItalic Style
	Highlight  Style
	Quote      Style
	Rule       Style
}

// StyleFor resolves the composed style for a text fragment's tag: block
// base first, then weight and slant, then the highlight background.
func (s Styles) StyleFor(tag Tag) Style {
	var b strings.Builder
	switch {
	case tag.Block.HeadingLevel() > 0:
		b.WriteString(s.Heading[tag.Block.HeadingLevel()-1].Prefix)
	case tag.Block == BlockQuote:
		b.WriteString(s.Quote.Prefix)
	default:
		b.WriteString(s.Text.Prefix)
	}
	switch {
	case tag.Emphasis.Has(EmphasisBold | EmphasisItalic):
		b.WriteString(s.BoldItalic.Prefix)
	case tag.Emphasis.Has(EmphasisBold):
		b.WriteString(s.Bold.Prefix)
	case tag.Emphasis.Has(EmphasisItalic):
		b.WriteString(s.Italic.Prefix)
	}
	if tag.Emphasis.Has(EmphasisHighlight) {
		b.WriteString(s.Highlight.Prefix)
	}
	return Style{Prefix: b.String()}
}

// Colors are the concrete paint colors a GUI embedder needs beyond the
// ANSI prefixes.
type Colors struct {
	Background string
	Text       string
	Highlight  string
	Rule       string
}

// Theme provides named styles, fonts and colors for rendering.
type Theme interface {
	Name() string
	Styles() Styles
	Fonts() Fonts
	Colors() Colors
}

type theme struct {
	name   string
	styles Styles
	fonts  Fonts
	colors Colors
}

func (t theme) Name() string   { return t.name }
func (t theme) Styles() Styles { return t.styles }
func (t theme) Fonts() Fonts   { return t.fonts }
func (t theme) Colors() Colors { return t.colors }

// NewTheme returns a Theme from explicit definitions. Zero-value styles
// render as plain text.
func NewTheme(name string, styles Styles, fonts Fonts, colors Colors) Theme {
	if fonts == (Fonts{}) {
		fonts = DefaultFonts()
	}
	return theme{name: name, styles: styles, fonts: fonts, colors: colors}
}

func themeFromPalette(name string, p palette.Palette) Theme {
	return theme{
		name: name,
		styles: Styles{
			Text: Style{Prefix: p.Text},
			Heading: [6]Style{
				{Prefix: palette.Bold + p.Heading[0]},
				{Prefix: palette.Bold + p.Heading[1]},
				{Prefix: palette.Bold + p.Heading[2]},
				{Prefix: palette.Bold + p.Heading[3]},
				{Prefix: palette.Bold + p.Heading[4]},
				{Prefix: palette.Bold + p.Heading[5]},
			},
			Bold:       Style{Prefix: palette.Bold},
			Italic:     Style{Prefix: palette.Italic},
			BoldItalic: Style{Prefix: palette.Bold + palette.Italic},
			Highlight:  Style{Prefix: p.Highlight},
			Quote:      Style{Prefix: palette.Bold + p.Quote},
			Rule:       Style{Prefix: p.Rule},
		},
		fonts: DefaultFonts(),
		colors: Colors{
			Background: p.BackgroundHex,
			Text:       p.TextHex,
			Highlight:  p.HighlightHex,
			Rule:       p.RuleHex,
		},
	}
}

var builtinThemes = map[string]Theme{
	"default": themeFromPalette("default", palette.Default),
	"paper":   themeFromPalette("paper", palette.Paper),
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return builtinThemes["default"], true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	theme, ok := builtinThemes[normalized]
	return theme, ok
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}
