package tempo

import (
	"fmt"
	"io"
	"time"
)

// The viewer advances baseScrollStep of the document per tick, scaled by
// the selected multiplier. Those two constants define the pace of every
// speed setting.
const (
	baseScrollStep = 0.0002
	scrollTick     = 16 * time.Millisecond
)

// ScrollSpeeds are the selectable speed multipliers, slowest first.
var ScrollSpeeds = [...]int{1, 2, 3, 4, 5}

// DefaultSpeedIndex selects the slowest speed at startup.
const DefaultSpeedIndex = 0

// ClampSpeedIndex forces an index into ScrollSpeeds range.
func ClampSpeedIndex(index int) int {
	if index < 0 {
		return 0
	}
	if index >= len(ScrollSpeeds) {
		return len(ScrollSpeeds) - 1
	}
	return index
}

// SpeedMultiplier returns the multiplier for a (clamped) speed index.
func SpeedMultiplier(index int) int {
	return ScrollSpeeds[ClampSpeedIndex(index)]
}

// ScrollDuration returns the time one full document pass takes at the
// given speed index: the tick interval divided by the per-tick step.
func ScrollDuration(speedIndex int) time.Duration {
	ticks := 1.0 / (baseScrollStep * float64(SpeedMultiplier(speedIndex)))
	return time.Duration(ticks * float64(scrollTick))
}

// Pacer spreads a full-document scroll evenly across its lines.
type Pacer struct {
	lineDelay time.Duration
}

// NewPacer builds a pacer for a document of the given line count.
func NewPacer(lines, speedIndex int) Pacer {
	if lines < 1 {
		lines = 1
	}
	return Pacer{lineDelay: ScrollDuration(speedIndex) / time.Duration(lines)}
}

// LineDelay is the pause after each emitted line.
func (p Pacer) LineDelay() time.Duration { return p.lineDelay }

// PromptRequest configures Prompt.
type PromptRequest struct {
	Content    string
	Writer     io.Writer
	Width      int
	Theme      Theme
	SpeedIndex int
	// LineDelay overrides the speed-derived pace when positive.
	LineDelay time.Duration
	Options   []RenderOption
}

// Prompt renders Content at teleprompter pace: fragments stream in
// document order and each line terminator waits its share of the
// full-document scroll time before the next line appears.
func Prompt(req PromptRequest) error {
	if req.Writer == nil {
		return fmt.Errorf("prompt: writer is nil")
	}
	frags := Parse(req.Content)
	delay := req.LineDelay
	if delay <= 0 {
		delay = NewPacer(CountLines(frags), req.SpeedIndex).LineDelay()
	}
	sink := NewANSIRenderer(req.Writer, req.Width, req.Theme, req.Options...)
	for _, f := range frags {
		if err := sink.WriteFragment(f); err != nil {
			return fmt.Errorf("prompt: %w", err)
		}
		if f.Kind == FragmentBreak {
			time.Sleep(delay)
		}
	}
	return sink.Flush()
}
