package markit

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Document is an ordered sequence of blocks rendered to one Markdown text.
//
// Text methods extend the last block when it is a text run and otherwise
// start a new run glued to the previous block. Called without a value they
// decorate the last fragment, or the text of a trailing checkbox.
//
// Like the other builders, a Document keeps the first error and ignores
// later calls; Err reports it together with errors of its blocks.
type Document struct {
	front  []byte
	blocks []Block
	cfg    config
	err    error
}

// NewDocument returns an empty document.
func NewDocument(opts ...Option) *Document {
	return &Document{cfg: newConfig(opts)}
}

// Text appends plain text.
func (d *Document) Text(text string) *Document {
	return d.Weight(Plain, text)
}

// Bold appends bold text, or bolds the last fragment when called without values.
func (d *Document) Bold(text ...string) *Document {
	return d.Weight(Bold, text...)
}

// Italic appends italic text, or italicizes the last fragment.
func (d *Document) Italic(text ...string) *Document {
	return d.Weight(Italic, text...)
}

// Strikethrough appends struck text, or strikes the last fragment.
func (d *Document) Strikethrough(text ...string) *Document {
	return d.Weight(Strikethrough, text...)
}

// InlineCode appends inline code, or turns the last fragment into inline code.
func (d *Document) InlineCode(text ...string) *Document {
	return d.Weight(InlineCode, text...)
}

// Important appends highlighted text, or highlights the last fragment.
func (d *Document) Important(text ...string) *Document {
	return d.Weight(Important, text...)
}

// NoSpace glues the next fragment, or the given values, to the preceding text.
func (d *Document) NoSpace(text ...string) *Document {
	return d.Weight(NoSpace, text...)
}

// Weight applies w the way the named helpers do.
func (d *Document) Weight(w Weight, text ...string) *Document {
	if d.failed() {
		return d
	}
	last := d.last()
	if len(text) == 0 {
		switch b := last.(type) {
		case *TextRun:
			b.Weight(w)
		case checkbox:
			b.run.Weight(w)
		default:
			if w == NoSpace {
				d.blocks = append(d.blocks, NewTextRun().NoSpace())
				return d
			}
			d.err = fmt.Errorf("markit: document %s: %w", w, ErrNoPrecedingText)
		}
		return d
	}
	switch b := last.(type) {
	case nil:
		d.blocks = append(d.blocks, NewTextRun().Weight(w, text...))
	case *TextRun:
		b.Weight(w, text...)
	default:
		d.blocks = append(d.blocks, NewTextRun().NoSpace().Weight(w, text...))
	}
	return d
}

// Paragraph appends a prepared run as its own block.
func (d *Document) Paragraph(run *TextRun) *Document {
	return d.Append(runOf(run))
}

// Heading appends an ATX heading; level is clamped to 1..6.
func (d *Document) Heading(text string, level int) *Document {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return d.Append(heading{text: text, level: level})
}

// Quote appends a block quote. Markers of a *TextRun value are dropped.
func (d *Document) Quote(v any) *Document {
	return d.Append(quote{run: runOf(v).Plain()})
}

// Checkbox appends a task list entry.
func (d *Document) Checkbox(v any, checked bool) *Document {
	return d.Append(checkbox{run: runOf(v), checked: checked})
}

// CodeBlock appends a fenced code block. Text is emitted verbatim.
func (d *Document) CodeBlock(v any) *Document {
	return d.CodeBlockLang("", v)
}

// CodeBlockLang appends a fenced code block tagged with an info string.
func (d *Document) CodeBlockLang(lang string, v any) *Document {
	return d.Append(codeBlock{lang: strings.TrimSpace(lang), run: runOf(v).Plain()})
}

// HorizontalRule appends a thematic break.
func (d *Document) HorizontalRule() *Document {
	return d.Append(horizontalRule{})
}

// LineBreak appends n HTML line breaks; n below one counts as one.
func (d *Document) LineBreak(n int) *Document {
	if n < 1 {
		n = 1
	}
	for i := 0; i < n; i++ {
		d.Append(lineBreak{})
	}
	return d
}

// OrderedList starts a numbered list; call Done on it to continue the document.
func (d *Document) OrderedList() *List {
	return d.list(Ordered)
}

// UnorderedList starts a bulleted list; call Done on it to continue the document.
func (d *Document) UnorderedList() *List {
	return d.list(Unordered)
}

func (d *Document) list(kind ListKind) *List {
	l := newList(kind, d)
	d.Append(l)
	return l
}

// Table starts a table with the given headers; call Done on it to continue
// the document.
func (d *Document) Table(headers ...any) *Table {
	t := NewTable(headers...)
	t.doc = d
	d.Append(t)
	return t
}

// Append adds a block. Blocks other than the ones built by Document render
// through their Render method.
func (d *Document) Append(b Block) *Document {
	if d.failed() || b == nil {
		return d
	}
	d.blocks = append(d.blocks, b)
	return d
}

// Len returns the number of blocks.
func (d *Document) Len() int {
	return len(d.blocks)
}

func (d *Document) last() Block {
	if len(d.blocks) == 0 {
		return nil
	}
	return d.blocks[len(d.blocks)-1]
}

// failed reports whether building must stop. Only the document's own error
// and the block still under construction are checked; Err walks every block.
func (d *Document) failed() bool {
	if d.err != nil {
		return true
	}
	withErr, ok := d.last().(interface{ Err() error })
	return ok && withErr.Err() != nil
}

// Err returns the construction errors of the document and its blocks.
func (d *Document) Err() error {
	errs := []error{d.err}
	for _, b := range d.blocks {
		if withErr, ok := b.(interface{ Err() error }); ok {
			errs = append(errs, withErr.Err())
		}
	}
	return errors.Join(errs...)
}

// Render returns the document as Markdown. An empty document renders to "".
func (d *Document) Render() string {
	var b strings.Builder
	b.Write(d.front)
	for i, block := range d.blocks {
		glued := false
		if i > 0 {
			switch d.blocks[i-1].(type) {
			case quote:
				b.WriteString("\n\n")
			case checkbox:
				if _, ok := block.(*TextRun); ok {
					b.WriteString("\n\n")
					glued = true
				}
			case *List:
				b.WriteString("\n")
			}
		}
		b.WriteString(d.renderBlock(block, glued))
	}
	return b.String()
}

func (d *Document) renderBlock(block Block, glued bool) string {
	switch b := block.(type) {
	case *TextRun:
		return b.render(d.cfg.wrapWords, contextParagraph, glued)
	case configuredBlock:
		return b.renderWith(d.cfg)
	default:
		return block.Render()
	}
}

// WriteTo writes the rendered Markdown to w. Nothing is written when the
// document has construction errors.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	if err := d.Err(); err != nil {
		return 0, err
	}
	n, err := io.WriteString(w, d.Render())
	return int64(n), err
}

// Save writes the rendered Markdown to path, creating parent directories.
func (d *Document) Save(path string) error {
	if err := d.Err(); err != nil {
		return err
	}
	return writeFile(path, []byte(d.Render()))
}

// SaveHTML writes the document converted to an HTML page to path.
func (d *Document) SaveHTML(path string) error {
	page, err := d.RenderHTML()
	if err != nil {
		return err
	}
	return writeFile(path, page)
}

func writeFile(path string, data []byte) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("markit: save: empty path")
	}
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("markit: save: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("markit: save: %w", err)
	}
	return nil
}
