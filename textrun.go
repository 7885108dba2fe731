package markit

import (
	"fmt"
	"strings"
)

type renderContext uint8

const (
	contextParagraph renderContext = iota
	contextTableCell
	contextCodeBlock
)

type slot struct {
	chain   Chain
	noSpace bool
	hasText bool
}

// TextRun is an ordered sequence of formatted fragments rendered as one span
// of text. Fragments are separated by a single space unless a NoSpace marker
// says otherwise.
//
// Builder methods return the run for chaining. The first failure is kept and
// every later call becomes a no-op; check Err once the run is built.
type TextRun struct {
	slots []slot
	// locked stops weights without text from touching the last fragment until
	// a new fragment starts.
	locked bool
	err    error
}

// NewTextRun returns an empty run.
func NewTextRun() *TextRun {
	return &TextRun{}
}

// Text starts a plain fragment.
func (r *TextRun) Text(text string) *TextRun {
	return r.Weight(Plain, text)
}

// Bold starts a bold fragment per value, or bolds the last fragment when
// called without values.
func (r *TextRun) Bold(text ...string) *TextRun {
	return r.Weight(Bold, text...)
}

// Italic starts an italic fragment per value, or italicizes the last fragment.
func (r *TextRun) Italic(text ...string) *TextRun {
	return r.Weight(Italic, text...)
}

// Strikethrough starts a struck fragment per value, or strikes the last fragment.
func (r *TextRun) Strikethrough(text ...string) *TextRun {
	return r.Weight(Strikethrough, text...)
}

// InlineCode starts a code fragment per value. Without values the last
// fragment loses its other markers, becomes inline code and accepts no more
// weights.
func (r *TextRun) InlineCode(text ...string) *TextRun {
	return r.Weight(InlineCode, text...)
}

// Important starts a highlighted fragment per value, or highlights the last fragment.
func (r *TextRun) Important(text ...string) *TextRun {
	return r.Weight(Important, text...)
}

// NoSpace without values suppresses the separator before the next fragment.
// With values it appends fragments that are glued to whatever precedes them.
func (r *TextRun) NoSpace(text ...string) *TextRun {
	return r.Weight(NoSpace, text...)
}

// Weight applies w the way the named helpers do. Plain without values
// strips the markers of the last fragment.
func (r *TextRun) Weight(w Weight, text ...string) *TextRun {
	if r.err != nil {
		return r
	}
	if len(text) > 0 {
		for _, t := range text {
			r.appendFragment(w, t)
		}
		return r
	}
	if w == NoSpace {
		r.slots = append(r.slots, slot{noSpace: true})
		return r
	}
	if len(r.slots) == 0 {
		r.err = fmt.Errorf("markit: %s: %w", w, ErrNoPrecedingText)
		return r
	}
	last := &r.slots[len(r.slots)-1]
	if !last.hasText {
		return r
	}
	if w == Plain {
		last.chain = last.chain.Plain()
		return r
	}
	if r.locked {
		return r
	}
	if w == InlineCode {
		last.chain = last.chain.Plain()
		r.locked = true
	}
	if err := last.chain.Apply(w); err != nil {
		r.err = fmt.Errorf("markit: %w", err)
	}
	return r
}

func (r *TextRun) appendFragment(w Weight, text string) {
	s := slot{chain: NewChain(text), hasText: true}
	switch w {
	case Plain:
	case NoSpace:
		s.noSpace = true
	default:
		if err := s.chain.Apply(w); err != nil {
			r.err = fmt.Errorf("markit: %w", err)
			return
		}
	}
	r.slots = append(r.slots, s)
	r.locked = false
}

// Err returns the first error recorded while building the run.
func (r *TextRun) Err() error {
	return r.err
}

// Len returns the number of fragments and markers in the run.
func (r *TextRun) Len() int {
	return len(r.slots)
}

// Plain returns a copy of the run with every fragment stripped of markers.
func (r *TextRun) Plain() *TextRun {
	out := &TextRun{slots: make([]slot, len(r.slots)), err: r.err}
	for i, s := range r.slots {
		s.chain = s.chain.Plain()
		out.slots[i] = s
	}
	return out
}

// Render returns the run as Markdown with a soft line break after every
// ten words.
func (r *TextRun) Render() string {
	return r.render(defaultWrapWords, contextParagraph, false)
}

func (r *TextRun) render(wrapWords int, ctx renderContext, glued bool) string {
	var b strings.Builder
	pending := glued
	for _, s := range r.slots {
		switch {
		case !s.noSpace:
			if !pending {
				b.WriteByte(' ')
			}
			pending = false
			b.WriteString(renderFragment(s.chain, ctx))
		case s.hasText:
			b.WriteString(renderFragment(s.chain, ctx))
		default:
			pending = true
		}
	}
	if ctx != contextParagraph {
		return b.String()
	}
	return softWrap(b.String(), wrapWords)
}

// renderFragment renders one chain for ctx. Code blocks are verbatim and
// inline code keeps its text, except that a table cell escapes pipes, which
// GFM treats as cell separators even inside code spans.
func renderFragment(c Chain, ctx renderContext) string {
	switch {
	case ctx == contextCodeBlock:
		return c.render(nil)
	case !c.Has(InlineCode):
		return c.render(Escape)
	case ctx == contextTableCell:
		return c.render(escapeCellCode)
	default:
		return c.render(nil)
	}
}

func escapeCellCode(text string) string {
	return strings.ReplaceAll(text, "|", `\|`)
}

// softWrap breaks the line before every n-th space-separated token.
func softWrap(text string, n int) string {
	if n <= 0 {
		return text
	}
	tokens := strings.Split(text, " ")
	if len(tokens) <= n {
		return text
	}
	for i := n; i < len(tokens); i += n {
		tokens[i] = "\n" + tokens[i]
	}
	return strings.Join(tokens, " ")
}
