// Package palette holds the ANSI attribute prefixes and color data
// behind the built-in themes.
package palette

// SGR attribute prefixes shared by every palette.
const (
	Reset  = "\x1b[0m"
	Bold   = "\x1b[1m"
	Dim    = "\x1b[2m"
	Italic = "\x1b[3m"
)

// Palette is one theme's raw material: ANSI prefixes for terminal
// output plus the hex colors a GUI embedder paints with.
type Palette struct {
	Text      string
	Heading   [6]string
	Quote     string
	Rule      string
	Highlight string

	BackgroundHex string
	TextHex       string
	HighlightHex  string
	RuleHex       string
}

// Default is the dark overlay look of the desktop viewer: near-black
// background, white text, gray rules, a slightly lifted highlight.
var Default = Palette{
	Text:      "",
	Heading:   [6]string{"\x1b[38;5;231m", "\x1b[38;5;255m", "\x1b[38;5;253m", "\x1b[38;5;251m", "\x1b[38;5;249m", "\x1b[38;5;247m"},
	Quote:     "\x1b[38;5;250m",
	Rule:      "\x1b[38;5;243m",
	Highlight: "\x1b[48;5;238m",

	BackgroundHex: "#1a1a1a",
	TextHex:       "#ffffff",
	HighlightHex:  "#404040",
	RuleHex:       "#666666",
}

// Paper is a light variant for rendering into documents or bright
// terminals.
var Paper = Palette{
	Text:      "\x1b[38;5;235m",
	Heading:   [6]string{"\x1b[38;5;232m", "\x1b[38;5;233m", "\x1b[38;5;234m", "\x1b[38;5;235m", "\x1b[38;5;236m", "\x1b[38;5;237m"},
	Quote:     "\x1b[38;5;240m",
	Rule:      "\x1b[38;5;248m",
	Highlight: "\x1b[48;5;230m",

	BackgroundHex: "#f5f5f7",
	TextHex:       "#1d1d1f",
	HighlightHex:  "#fff3bf",
	RuleHex:       "#86868b",
}
