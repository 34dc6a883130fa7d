package tempo

// Fonts names the two font families the host environment must have
// installed before rendering; the library only hands the names on.
type Fonts struct {
	CJK   string
	Latin string
}

// DefaultFonts returns the families the desktop viewer ships with.
func DefaultFonts() Fonts {
	return Fonts{CJK: "Noto Sans SC", Latin: "Inter"}
}

// Family returns the family for a script class.
func (f Fonts) Family(script Script) string {
	if script == ScriptCJK {
		return f.CJK
	}
	return f.Latin
}

// FontSizes is the fixed ladder the font-size keys step through.
var FontSizes = [...]int{20, 22, 24, 28, 32, 36, 48, 60, 72}

// DefaultFontSize is the ladder's startup value.
const DefaultFontSize = 24

// headingScale maps heading level 1..6 to a base-size multiplier.
var headingScale = [6]float64{2.0, 1.5, 1.25, 1.1, 1.0, 0.9}

// HeadingFontSize scales a base size for a heading level. Out-of-range
// levels return the base size unchanged.
func HeadingFontSize(level, base int) int {
	if level < 1 || level > 6 {
		return base
	}
	return int(float64(base) * headingScale[level-1])
}

// NextFontSize steps up the ladder, staying put at the top.
func NextFontSize(size int) int {
	for _, s := range FontSizes {
		if s > size {
			return s
		}
	}
	return FontSizes[len(FontSizes)-1]
}

// PrevFontSize steps down the ladder, staying put at the bottom.
func PrevFontSize(size int) int {
	for i := len(FontSizes) - 1; i >= 0; i-- {
		if FontSizes[i] < size {
			return FontSizes[i]
		}
	}
	return FontSizes[0]
}

// ClampFontSize snaps a size to the nearest ladder entry, so only the
// fixed allowed sizes ever survive a settings load. Ties go to the
// smaller entry.
func ClampFontSize(size int) int {
	best := FontSizes[0]
	for _, s := range FontSizes[1:] {
		d, bd := s-size, best-size
		if d < 0 {
			d = -d
		}
		if bd < 0 {
			bd = -bd
		}
		if d < bd {
			best = s
		}
	}
	return best
}
