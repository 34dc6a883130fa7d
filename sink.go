package tempo

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

const ansiReset = "\x1b[0m"

// Sink receives fragments in document order.
type Sink interface {
	WriteFragment(Fragment) error
	Flush() error
}

// ANSIRenderer writes fragments as themed ANSI text. Style prefixes are
// only emitted when the style changes. With a positive width, rule
// placeholders are fitted to it and finished lines are word-wrapped;
// both can be turned off per option.
type ANSIRenderer struct {
	w      io.Writer
	width  int
	styles Styles
	cfg    renderConfig
	style  string
	line   strings.Builder
}

// NewANSIRenderer creates a renderer writing to w. A nil theme uses the
// default; width <= 0 disables fitting and wrapping.
func NewANSIRenderer(w io.Writer, width int, t Theme, opts ...RenderOption) *ANSIRenderer {
	if t == nil {
		t = DefaultTheme()
	}
	var cfg renderConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &ANSIRenderer{w: w, width: width, styles: t.Styles(), cfg: cfg}
}

func (r *ANSIRenderer) WriteFragment(f Fragment) error {
	switch f.Kind {
	case FragmentBreak:
		r.emit("", Style{})
		return r.endLine(f.Text)
	case FragmentRule:
		text := f.Text
		if !r.cfg.noRuleReflow && r.width > 0 && IsRulePlaceholder(f) {
			text = FitRule(r.width)
		}
		r.emit(text, r.styles.Rule)
		return nil
	default:
		r.emit(f.Text, r.styles.StyleFor(f.Tag))
		return nil
	}
}

// Flush drains the pending line and resets any open style.
func (r *ANSIRenderer) Flush() error {
	r.emit("", Style{})
	if r.line.Len() == 0 {
		return nil
	}
	return r.endLine("")
}

// emit buffers text under the given style, inserting prefix and reset
// sequences only where the style changes.
func (r *ANSIRenderer) emit(text string, style Style) {
	if style.Prefix != r.style {
		if r.style != "" {
			r.line.WriteString(ansiReset)
		}
		r.style = style.Prefix
		r.line.WriteString(r.style)
	}
	r.line.WriteString(text)
}

// endLine wraps the buffered line to the configured width and writes it
// followed by the terminator.
func (r *ANSIRenderer) endLine(terminator string) error {
	text := r.line.String()
	r.line.Reset()
	if r.width > 0 && !r.cfg.noWordWrap {
		text = wordwrap.String(text, r.width)
	}
	_, err := io.WriteString(r.w, text+terminator)
	return err
}

// RenderRequest configures Render.
type RenderRequest struct {
	Content string
	Writer  io.Writer
	Width   int
	Theme   Theme
	Options []RenderOption
}

// Render parses Content and writes it to Writer as themed ANSI text.
func Render(req RenderRequest) error {
	if req.Writer == nil {
		return fmt.Errorf("render: writer is nil")
	}
	sink := NewANSIRenderer(req.Writer, req.Width, req.Theme, req.Options...)
	for _, f := range Parse(req.Content) {
		if err := sink.WriteFragment(f); err != nil {
			return fmt.Errorf("render: %w", err)
		}
	}
	return sink.Flush()
}
