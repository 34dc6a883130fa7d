package tempo

// RenderOption configures rendering behavior.
type RenderOption func(*renderConfig)

type renderConfig struct {
	noRuleReflow bool
	noWordWrap   bool
}

// WithRuleReflow enables or disables fitting rule placeholders to the
// render width. It is on by default; embedders that reflow rules
// themselves on resize turn it off to keep the placeholder identifiable.
func WithRuleReflow(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.noRuleReflow = !enabled
	}
}

// WithWordWrap enables or disables word-wrapping finished lines to the
// render width. It is on by default whenever a width is set; embedders
// that lay text out themselves turn it off.
func WithWordWrap(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.noWordWrap = !enabled
	}
}
