package tempo

import "strings"

// headingMarkers[level] is the literal prefix that opens a heading of
// that level; the marker is level+1 characters including the space.
var headingMarkers = [...]string{
	"",
	"# ",
	"## ",
	"### ",
	"#### ",
	"##### ",
	"###### ",
}

// rulePlaceholderWidth is the fixed width of the placeholder emitted for
// a --- line. The display layer re-fits it after layout; see ReflowRules.
const rulePlaceholderWidth = 10

// quoteIndent precedes quoted text. It shares the rule styling so it
// reads as furniture rather than content.
const quoteIndent = "     │ "

// ClassifyLine maps one line (without its newline) to a BlockKind using
// literal prefix matches only. Heading markers are checked from level
// six down so a longer run of '#' is never claimed by a shorter prefix;
// seven or more '#', a marker without its trailing space, and anything
// else unrecognized fall through to paragraph.
func ClassifyLine(line string) BlockKind {
	for level := 6; level >= 1; level-- {
		if strings.HasPrefix(line, headingMarkers[level]) {
			return HeadingKind(level)
		}
	}
	if line == "---" {
		return BlockRule
	}
	if strings.HasPrefix(line, "> ") {
		return BlockQuote
	}
	return BlockParagraph
}

// renderLine emits the fragments for one classified line, always ending
// with a terminator.
func renderLine(b *fragmentBuilder, line string, kind BlockKind) {
	switch {
	case kind.HeadingLevel() > 0:
		// Headings are never inline-formatted; markers inside stay literal.
		level := kind.HeadingLevel()
		emitText(b, strings.TrimSpace(line[level+1:]), kind, 0)
	case kind == BlockRule:
		b.appendStructural(strings.Repeat("─", rulePlaceholderWidth), FragmentRule)
	case kind == BlockQuote:
		b.appendStructural(quoteIndent, FragmentRule)
		resolveInline(b, strings.TrimSpace(line[2:]), BlockQuote, 0)
	default:
		if strings.TrimSpace(line) == "" {
			break
		}
		resolveInline(b, line, BlockParagraph, 0)
	}
	b.terminate()
}
