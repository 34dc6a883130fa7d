// Package tempo turns Markdown presenter notes into a flat stream of
// styled fragments for teleprompter display.
//
// The parser is deliberately not CommonMark: each line is classified on
// its own (headings 1-6, horizontal rule, block quote, paragraph) and
// inline emphasis is resolved by a recursive three-pattern scan (bold,
// highlight, italic) that degrades unmatched markers to literal text.
// The output is a sequence of Fragment values, each a run of characters
// sharing one Tag; the tag names the script class (CJK or other), the
// block kind and the emphasis set, and the display layer decides what
// fonts and colors those mean.
//
// Core properties:
//   - Pure whole-document parse; no state between calls
//   - Total over arbitrary input; the parse never fails
//   - Script-aware tagging for dual-font (CJK/Latin) rendering
//   - Theme-driven ANSI output and paced teleprompter streaming
//
// Example:
//
//	content := "# Hello\n\nMarkdown in, **styled runs** out.\n"
//	err := tempo.Render(tempo.RenderRequest{
//		Content: content,
//		Writer:  os.Stdout,
//		Width:   80,
//		Theme:   tempo.DefaultTheme(),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
package tempo
