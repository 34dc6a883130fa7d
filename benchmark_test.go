package tempo

import (
	"io"
	"strings"
	"testing"
)

var benchDoc = strings.Repeat(`# Scene
Opening line with **bold**, *italic* and ==a highlight==.

> 保持冷静 stay with the script
---
`, 200)

func BenchmarkParse(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Parse(benchDoc)
	}
}

func BenchmarkRender(b *testing.B) {
	th, _ := ThemeByName("default")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := Render(RenderRequest{Content: benchDoc, Writer: io.Discard, Width: 80, Theme: th}); err != nil {
			b.Fatal(err)
		}
	}
}
