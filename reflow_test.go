package tempo

import (
	"strings"
	"testing"
)

func TestFitRule(t *testing.T) {
	if got := FitRule(10); got != strings.Repeat("─", 10) {
		t.Fatalf("expected 10-cell rule, got %q", got)
	}
	if got := FitRule(0); got != "─" {
		t.Fatalf("expected minimum one character, got %q", got)
	}
}

func TestIsRulePlaceholder(t *testing.T) {
	frags := Parse("---\n> q")
	if !IsRulePlaceholder(frags[0]) {
		t.Fatalf("expected rule fragment to be a placeholder: %+v", frags[0])
	}
	// The quote indent shares the rule kind but is not a placeholder.
	if IsRulePlaceholder(frags[2]) {
		t.Fatalf("quote indent must not be treated as a rule: %+v", frags[2])
	}
	if IsRulePlaceholder(Fragment{Text: "─", Kind: FragmentText}) {
		t.Fatalf("text fragments must never be treated as rules")
	}
}

func TestReflowRulesRefitsPlaceholders(t *testing.T) {
	frags := Parse("---\n> q\ntext")
	out := ReflowRules(frags, 40)
	if want := strings.Repeat("─", 40); out[0].Text != want {
		t.Fatalf("expected refitted rule, got %q", out[0].Text)
	}
	if out[2].Text != "     │ " {
		t.Fatalf("quote indent must be untouched, got %q", out[2].Text)
	}
	// Input is not mutated.
	if frags[0].Text != strings.Repeat("─", 10) {
		t.Fatalf("expected original fragments untouched, got %q", frags[0].Text)
	}
}

func TestReflowRulesZeroWidthPassthrough(t *testing.T) {
	frags := Parse("---")
	out := ReflowRules(frags, 0)
	if out[0].Text != frags[0].Text {
		t.Fatalf("expected passthrough, got %q", out[0].Text)
	}
}
