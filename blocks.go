package markit

import (
	"fmt"
	"strings"
)

// Block is one top-level element of a Document.
type Block interface {
	Render() string
}

// configuredBlock is implemented by blocks whose output depends on the
// document's options.
type configuredBlock interface {
	renderWith(cfg config) string
}

func (r *TextRun) renderWith(cfg config) string {
	return r.render(cfg.wrapWords, contextParagraph, false)
}

func (l *List) renderWith(cfg config) string {
	return l.render(cfg)
}

// runOf coerces v into a run the way block constructors accept text.
func runOf(v any) *TextRun {
	switch value := v.(type) {
	case *TextRun:
		if value == nil {
			return NewTextRun()
		}
		return value
	case string:
		return NewTextRun().Text(value)
	case fmt.Stringer:
		return NewTextRun().Text(value.String())
	default:
		return NewTextRun().Text(fmt.Sprint(value))
	}
}

type heading struct {
	text  string
	level int
}

func (h heading) Render() string {
	return "\n" + strings.Repeat("#", h.level) + " " + Escape(h.text) + "\n"
}

type quote struct {
	run *TextRun
}

func (q quote) Render() string {
	return q.renderWith(newConfig(nil))
}

func (q quote) renderWith(cfg config) string {
	return "\n\n> " + q.run.render(cfg.wrapWords, contextParagraph, false)
}

func (q quote) Err() error {
	return q.run.Err()
}

type checkbox struct {
	run     *TextRun
	checked bool
}

func (c checkbox) Render() string {
	return c.renderWith(newConfig(nil))
}

func (c checkbox) renderWith(cfg config) string {
	prefix := " \n - [ ] "
	if c.checked {
		prefix = " \n - [x] "
	}
	return prefix + c.run.render(cfg.wrapWords, contextParagraph, false)
}

func (c checkbox) Err() error {
	return c.run.Err()
}

type codeBlock struct {
	lang string
	run  *TextRun
}

func (c codeBlock) Render() string {
	return "\n\n```" + c.lang + "\n" + c.run.render(0, contextCodeBlock, true) + "\n```\n"
}

func (c codeBlock) Err() error {
	return c.run.Err()
}

type horizontalRule struct{}

func (horizontalRule) Render() string {
	return "\n---\n"
}

type lineBreak struct{}

func (lineBreak) Render() string {
	return "<br/>"
}
