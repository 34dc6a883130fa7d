package tempo

import "regexp"

// The three inline patterns of the dialect, searched independently at
// every recursion level. Italic accepts mismatched delimiters (*text_);
// that looseness is documented behavior, not a defect.
var (
	boldPattern      = regexp.MustCompile(`\*\*(.*?)\*\*`)
	highlightPattern = regexp.MustCompile(`==(.*?)==`)
	italicPattern    = regexp.MustCompile(`[*_](.*?)[*_]`)
)

// inlinePatterns is in tie-break order: when two patterns match at the
// same offset, the earlier entry wins.
var inlinePatterns = [...]struct {
	kind    Emphasis
	pattern *regexp.Regexp
}{
	{EmphasisBold, boldPattern},
	{EmphasisHighlight, highlightPattern},
	{EmphasisItalic, italicPattern},
}

// span is one delimiter match: the full match bounds within the searched
// text and the text between the delimiters.
type span struct {
	start int
	end   int
	inner string
}

// findFirst returns the first match of pattern in text. The seam exists
// so the regexp searches could be swapped for a hand-written scanner
// without touching resolveInline.
func findFirst(pattern *regexp.Regexp, text string) (span, bool) {
	loc := pattern.FindStringSubmatchIndex(text)
	if loc == nil {
		return span{}, false
	}
	return span{start: loc[0], end: loc[1], inner: text[loc[2]:loc[3]]}, true
}

// firstMatch selects the earliest match across the three patterns.
func firstMatch(text string) (Emphasis, span, bool) {
	var (
		bestKind Emphasis
		best     span
		found    bool
	)
	for _, p := range inlinePatterns {
		m, ok := findFirst(p.pattern, text)
		if !ok {
			continue
		}
		if !found || m.start < best.start {
			bestKind, best, found = p.kind, m, true
		}
	}
	return bestKind, best, found
}

// resolveInline recursively resolves emphasis spans in text, emitting
// tagged runs into b. The text before a match keeps the inherited
// emphasis, the inner text adds the matched kind, and the text after the
// match reverts to the inherited set; emphasis never leaks past its own
// closing delimiter. Unmatched marker characters come through as literal
// text, so the resolution is total.
func resolveInline(b *fragmentBuilder, text string, block BlockKind, inherited Emphasis) {
	if text == "" {
		return
	}
	kind, match, ok := firstMatch(text)
	if !ok {
		emitText(b, text, block, inherited)
		return
	}
	if match.start > 0 {
		emitText(b, text[:match.start], block, inherited)
	}
	resolveInline(b, match.inner, block, inherited|kind)
	if match.end < len(text) {
		resolveInline(b, text[match.end:], block, inherited)
	}
}

// emitText tags each character with its script class and appends it to
// the builder, which coalesces adjacent same-tag characters.
func emitText(b *fragmentBuilder, text string, block BlockKind, emphasis Emphasis) {
	for _, r := range text {
		b.appendRune(r, Tag{Script: Classify(r), Block: block, Emphasis: emphasis})
	}
}
