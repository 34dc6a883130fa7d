package tempo

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// FitRule returns a rule sized to the given display width in terminal
// cells, always at least one character long.
func FitRule(width int) string {
	cell := runewidth.RuneWidth('─')
	if cell < 1 {
		cell = 1
	}
	n := width / cell
	if n < 1 {
		n = 1
	}
	return strings.Repeat("─", n)
}

// IsRulePlaceholder reports whether a fragment is a horizontal-rule run,
// as opposed to the quote indent bar that shares the rule styling.
func IsRulePlaceholder(f Fragment) bool {
	if f.Kind != FragmentRule || f.Text == "" {
		return false
	}
	for _, r := range f.Text {
		if r != '─' {
			return false
		}
	}
	return true
}

// ReflowRules returns a copy of frags with every rule placeholder
// replaced by a run fitted to width. This is the resize hook a display
// layer calls after layout; width <= 0 returns the input untouched.
func ReflowRules(frags []Fragment, width int) []Fragment {
	if width <= 0 {
		return frags
	}
	fitted := FitRule(width)
	out := make([]Fragment, len(frags))
	copy(out, frags)
	for i, f := range out {
		if IsRulePlaceholder(f) {
			out[i].Text = fitted
		}
	}
	return out
}
