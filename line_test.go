package tempo

import (
	"strings"
	"testing"
)

func TestClassifyLineHeadings(t *testing.T) {
	cases := []struct {
		line string
		want BlockKind
	}{
		{"# Title", BlockHeading1},
		{"## Title", BlockHeading2},
		{"### Title", BlockHeading3},
		{"#### Title", BlockHeading4},
		{"##### Title", BlockHeading5},
		{"###### Title", BlockHeading6},
	}
	for _, tc := range cases {
		if got := ClassifyLine(tc.line); got != tc.want {
			t.Fatalf("ClassifyLine(%q): expected %v, got %v", tc.line, tc.want, got)
		}
	}
}

func TestClassifyLineFallsThroughToParagraph(t *testing.T) {
	for _, line := range []string{
		"####### seven",
		"#nospace",
		"#",
		"----",
		"--- ",
		" ---",
		">quote",
		"plain text",
		"",
	} {
		if got := ClassifyLine(line); got != BlockParagraph {
			t.Fatalf("ClassifyLine(%q): expected paragraph, got %v", line, got)
		}
	}
}

func TestClassifyLineRuleAndQuote(t *testing.T) {
	if got := ClassifyLine("---"); got != BlockRule {
		t.Fatalf("expected rule, got %v", got)
	}
	if got := ClassifyLine("> quoted"); got != BlockQuote {
		t.Fatalf("expected quote, got %v", got)
	}
}

func TestHeadingKeepsMarkersLiteral(t *testing.T) {
	frags := Parse("# **Title**")
	if len(frags) != 2 {
		t.Fatalf("expected 2 fragments, got %d: %v", len(frags), frags)
	}
	if frags[0].Text != "**Title**" {
		t.Fatalf("expected literal markers, got %q", frags[0].Text)
	}
	want := Tag{Block: BlockHeading1}
	if frags[0].Tag != want {
		t.Fatalf("expected tag %v, got %v", want, frags[0].Tag)
	}
}

func TestRuleEmitsFixedPlaceholder(t *testing.T) {
	frags := Parse("---")
	if len(frags) != 2 {
		t.Fatalf("expected 2 fragments, got %d", len(frags))
	}
	if frags[0].Kind != FragmentRule {
		t.Fatalf("expected rule fragment, got kind %v", frags[0].Kind)
	}
	if want := strings.Repeat("─", 10); frags[0].Text != want {
		t.Fatalf("expected %q, got %q", want, frags[0].Text)
	}
}

func TestQuoteEmitsIndentThenText(t *testing.T) {
	frags := Parse("> hello")
	if len(frags) != 3 {
		t.Fatalf("expected 3 fragments, got %d: %v", len(frags), frags)
	}
	if frags[0].Kind != FragmentRule || frags[0].Text != "     │ " {
		t.Fatalf("expected quote indent, got %+v", frags[0])
	}
	if frags[1].Text != "hello" || frags[1].Tag.Block != BlockQuote {
		t.Fatalf("expected quoted text, got %+v", frags[1])
	}
}

func TestQuoteResolvesInlineEmphasis(t *testing.T) {
	frags := Parse("> **hi**")
	if len(frags) != 3 {
		t.Fatalf("expected 3 fragments, got %d: %v", len(frags), frags)
	}
	want := Tag{Block: BlockQuote, Emphasis: EmphasisBold}
	if frags[1].Text != "hi" || frags[1].Tag != want {
		t.Fatalf("expected bold quote text, got %+v", frags[1])
	}
}

func TestEmptyLineEmitsTerminatorOnly(t *testing.T) {
	for _, line := range []string{"", "   ", "\t"} {
		frags := Parse(line)
		if len(frags) != 1 || frags[0].Kind != FragmentBreak {
			t.Fatalf("Parse(%q): expected lone terminator, got %v", line, frags)
		}
	}
}
