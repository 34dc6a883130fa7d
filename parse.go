package tempo

import (
	"strings"
	"unicode/utf8"
)

// Parse converts a whole Markdown document into its flat fragment
// sequence. Lines are classified and rendered independently, so no line
// affects the next one's interpretation. Parse is pure and total: equal
// input yields an equal sequence, and no input fails. Concatenating the
// fragment texts reproduces the document line by line, modulo stripped
// block markers and the fixed-width rule placeholder.
func Parse(content string) []Fragment {
	var b fragmentBuilder
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSuffix(line, "\r")
		renderLine(&b, line, ClassifyLine(line))
	}
	b.flush()
	return b.fragments
}

// CountLines returns the number of terminator fragments, which equals
// the number of source lines the parse saw.
func CountLines(frags []Fragment) int {
	n := 0
	for _, f := range frags {
		if f.Kind == FragmentBreak {
			n++
		}
	}
	return n
}

// fragmentBuilder accumulates fragments, coalescing consecutive
// same-tag characters into a single run.
type fragmentBuilder struct {
	fragments []Fragment
	pending   []byte
	tag       Tag
	open      bool
}

func (b *fragmentBuilder) appendRune(r rune, tag Tag) {
	if !b.open || tag != b.tag {
		b.flush()
		b.tag = tag
		b.open = true
	}
	b.pending = utf8.AppendRune(b.pending, r)
}

// appendStructural emits a rule or indent fragment, closing any open
// text run first.
func (b *fragmentBuilder) appendStructural(text string, kind FragmentKind) {
	b.flush()
	b.fragments = append(b.fragments, Fragment{Text: text, Kind: kind})
}

func (b *fragmentBuilder) terminate() {
	b.flush()
	b.fragments = append(b.fragments, Fragment{Text: "\n", Kind: FragmentBreak})
}

func (b *fragmentBuilder) flush() {
	if !b.open {
		return
	}
	b.fragments = append(b.fragments, Fragment{Text: string(b.pending), Tag: b.tag})
	b.pending = b.pending[:0]
	b.open = false
}
