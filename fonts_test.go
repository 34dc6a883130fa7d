package tempo

import "testing"

func TestHeadingFontSize(t *testing.T) {
	cases := []struct {
		level, base, want int
	}{
		{1, 24, 48},
		{2, 24, 36},
		{3, 24, 30},
		{4, 24, 26},
		{5, 24, 24},
		{6, 24, 21},
		{0, 24, 24},
		{7, 24, 24},
	}
	for _, tc := range cases {
		if got := HeadingFontSize(tc.level, tc.base); got != tc.want {
			t.Fatalf("HeadingFontSize(%d, %d): expected %d, got %d", tc.level, tc.base, tc.want, got)
		}
	}
}

func TestFontSizeLadder(t *testing.T) {
	if got := NextFontSize(24); got != 28 {
		t.Fatalf("expected 28, got %d", got)
	}
	if got := NextFontSize(72); got != 72 {
		t.Fatalf("expected top to stay put, got %d", got)
	}
	if got := PrevFontSize(24); got != 22 {
		t.Fatalf("expected 22, got %d", got)
	}
	if got := PrevFontSize(20); got != 20 {
		t.Fatalf("expected bottom to stay put, got %d", got)
	}
	if got := NextFontSize(25); got != 28 {
		t.Fatalf("expected off-ladder size to snap up, got %d", got)
	}
}

func TestClampFontSize(t *testing.T) {
	if got := ClampFontSize(999); got != 72 {
		t.Fatalf("expected 72, got %d", got)
	}
	if got := ClampFontSize(-3); got != 20 {
		t.Fatalf("expected 20, got %d", got)
	}
	if got := ClampFontSize(32); got != 32 {
		t.Fatalf("expected 32, got %d", got)
	}
}

func TestClampFontSizeSnapsToLadder(t *testing.T) {
	cases := []struct{ in, want int }{
		{25, 24},
		{26, 24},
		{27, 28},
		{55, 60},
		{24, 24},
	}
	for _, tc := range cases {
		if got := ClampFontSize(tc.in); got != tc.want {
			t.Fatalf("ClampFontSize(%d): expected %d, got %d", tc.in, tc.want, got)
		}
	}
}

func TestFontsFamily(t *testing.T) {
	f := DefaultFonts()
	if got := f.Family(ScriptCJK); got != "Noto Sans SC" {
		t.Fatalf("expected Noto Sans SC, got %q", got)
	}
	if got := f.Family(ScriptOther); got != "Inter" {
		t.Fatalf("expected Inter, got %q", got)
	}
}
