package tempo

// Fragment is a run of characters sharing one style, the terminal unit
// of a parse. Fragments carry no position; consumers must paint them in
// the order they arrive.
type Fragment struct {
	Text string
	Tag  Tag
	Kind FragmentKind
}

// FragmentKind separates styled text from the structural fragments a
// display layer treats specially.
type FragmentKind uint8

const (
	// FragmentText is a styled run of document text.
	FragmentText FragmentKind = iota
	// FragmentRule marks rule furniture: the horizontal-rule placeholder
	// and the block-quote indent bar. Placeholder runs are re-fitted to
	// the display width after layout; see ReflowRules.
	FragmentRule
	// FragmentBreak is a line terminator.
	FragmentBreak
)

// Tag is the style identity of a text fragment. The display layer maps
// tags to concrete fonts, weights and colors; the parser never emits
// visual styling.
type Tag struct {
	Script   Script
	Block    BlockKind
	Emphasis Emphasis
}

// BlockKind is the structural category of one source line, decided by
// its literal prefix alone.
type BlockKind uint8

const (
	BlockParagraph BlockKind = iota
	BlockHeading1
	BlockHeading2
	BlockHeading3
	BlockHeading4
	BlockHeading5
	BlockHeading6
	BlockQuote
	BlockRule
)

// HeadingKind returns the BlockKind for a heading level 1 through 6.
func HeadingKind(level int) BlockKind {
	if level < 1 || level > 6 {
		return BlockParagraph
	}
	return BlockHeading1 + BlockKind(level-1)
}

// HeadingLevel returns 1 through 6 for heading kinds and 0 otherwise.
func (b BlockKind) HeadingLevel() int {
	if b >= BlockHeading1 && b <= BlockHeading6 {
		return int(b-BlockHeading1) + 1
	}
	return 0
}

func (b BlockKind) String() string {
	switch b {
	case BlockParagraph:
		return "paragraph"
	case BlockQuote:
		return "quote"
	case BlockRule:
		return "rule"
	default:
		if level := b.HeadingLevel(); level > 0 {
			return "h" + string(rune('0'+level))
		}
		return "unknown"
	}
}

// Emphasis is a set of inline emphasis kinds. Nesting accumulates kinds
// by union, so **_text_** carries both bold and italic.
type Emphasis uint8

const (
	EmphasisBold Emphasis = 1 << iota
	EmphasisItalic
	EmphasisHighlight
)

// Has reports whether every kind in want is set.
func (e Emphasis) Has(want Emphasis) bool { return e&want == want }

func (e Emphasis) String() string {
	if e == 0 {
		return "none"
	}
	var out string
	if e.Has(EmphasisBold) {
		out += "+bold"
	}
	if e.Has(EmphasisItalic) {
		out += "+italic"
	}
	if e.Has(EmphasisHighlight) {
		out += "+highlight"
	}
	return out[1:]
}
