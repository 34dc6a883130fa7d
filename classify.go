package tempo

// Script selects which of the two configured font families a run uses.
type Script uint8

const (
	// ScriptOther covers Latin text and everything outside the CJK
	// Unified Ideographs block, punctuation and digits included.
	ScriptOther Script = iota
	// ScriptCJK covers the CJK Unified Ideographs block.
	ScriptCJK
)

func (s Script) String() string {
	if s == ScriptCJK {
		return "cjk"
	}
	return "other"
}

const (
	cjkFirst = '\u4e00'
	cjkLast  = '\u9fff'
)

// Classify reports the script class of a single code point. Only
// U+4E00 through U+9FFF counts as CJK; Hiragana, Hangul and the CJK
// extension blocks classify as Other. A single block-range compare is
// the whole contract, not full Unicode script detection.
func Classify(r rune) Script {
	if r >= cjkFirst && r <= cjkLast {
		return ScriptCJK
	}
	return ScriptOther
}
