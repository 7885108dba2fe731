package markit

import (
	"fmt"
	"strings"
)

// Chain is an ordered composition of weights applied to one text value.
// The first applied weight is the outermost marker.
type Chain struct {
	text    string
	weights []Weight
}

// NewChain returns a plain chain holding text.
func NewChain(text string) Chain {
	return Chain{text: text}
}

// Text returns the raw, unescaped text value.
func (c Chain) Text() string {
	return c.text
}

// Weights returns the applied weights in application order.
func (c Chain) Weights() []Weight {
	return append([]Weight(nil), c.weights...)
}

// Has reports whether w has been applied.
func (c Chain) Has(w Weight) bool {
	for _, applied := range c.weights {
		if applied == w {
			return true
		}
	}
	return false
}

// Apply adds w as the new innermost marker.
func (c *Chain) Apply(w Weight) error {
	if !w.decorates() {
		return fmt.Errorf("apply %s: %w", w, ErrNotDecorator)
	}
	if c.Has(w) {
		return fmt.Errorf("apply %s to %q: %w", w, c.text, ErrDuplicateWeight)
	}
	c.weights = append(c.weights, w)
	return nil
}

// Plain returns the chain with every marker discarded.
func (c Chain) Plain() Chain {
	return Chain{text: c.text}
}

// Render returns the text wrapped in its markers, outermost first. Text
// outside inline code is escaped.
func (c Chain) Render() string {
	if c.Has(InlineCode) {
		return c.render(nil)
	}
	return c.render(Escape)
}

// render wraps the text, passed through escape when it is non-nil.
func (c Chain) render(escape func(string) string) string {
	text := c.text
	if escape != nil {
		text = escape(text)
	}
	if len(c.weights) == 0 {
		return text
	}
	var b strings.Builder
	for _, w := range c.weights {
		open, _ := w.Markers()
		b.WriteString(open)
	}
	b.WriteString(text)
	for i := len(c.weights) - 1; i >= 0; i-- {
		_, close := c.weights[i].Markers()
		b.WriteString(close)
	}
	return b.String()
}
