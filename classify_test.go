package tempo

import "testing"

func TestClassifyCJKRange(t *testing.T) {
	cases := []struct {
		r    rune
		want Script
	}{
		{'一', ScriptCJK},
		{'鿿', ScriptCJK},
		{'中', ScriptCJK},
		{'䷿', ScriptOther},
		{'ꀀ', ScriptOther},
		{'A', ScriptOther},
		{'ひ', ScriptOther},
		{'한', ScriptOther},
		{' ', ScriptOther},
	}
	for _, tc := range cases {
		if got := Classify(tc.r); got != tc.want {
			t.Fatalf("Classify(%q): expected %v, got %v", tc.r, tc.want, got)
		}
	}
}
