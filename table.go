package markit

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/padding"
)

// Table renders a header row and data rows as a pipe table whose columns are
// padded to a common width.
type Table struct {
	headers []*TextRun
	rows    [][]*TextRun
	doc     *Document
	err     error
}

// NewTable returns a standalone table. Header values are coerced the same
// way row values are.
func NewTable(headers ...any) *Table {
	return &Table{headers: cells(headers)}
}

// Columns returns the header count.
func (t *Table) Columns() int {
	return len(t.headers)
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Row appends a data row. Strings become glued text cells, *TextRun values
// are used as given and anything else is formatted with fmt.
func (t *Table) Row(values ...any) *Table {
	return t.InsertRow(len(t.rows), values...)
}

// InsertRow inserts a data row before index. The index is clamped to the
// current row range.
func (t *Table) InsertRow(index int, values ...any) *Table {
	if t.err != nil {
		return t
	}
	if len(values) != len(t.headers) {
		t.err = fmt.Errorf("markit: table row has %d cells, want %d: %w", len(values), len(t.headers), ErrRowSize)
		return t
	}
	if index < 0 {
		index = 0
	}
	if index > len(t.rows) {
		index = len(t.rows)
	}
	row := cells(values)
	t.rows = append(t.rows, nil)
	copy(t.rows[index+1:], t.rows[index:])
	t.rows[index] = row
	return t
}

// Done returns the Document that owns the table, or nil for a standalone table.
func (t *Table) Done() *Document {
	return t.doc
}

// Err returns the first error recorded while building the table or any of
// its cells.
func (t *Table) Err() error {
	if t.err != nil {
		return t.err
	}
	for _, h := range t.headers {
		if err := h.Err(); err != nil {
			return err
		}
	}
	for _, row := range t.rows {
		for _, c := range row {
			if err := c.Err(); err != nil {
				return err
			}
		}
	}
	return nil
}

func cells(values []any) []*TextRun {
	out := make([]*TextRun, len(values))
	for i, v := range values {
		out[i] = cell(v)
	}
	return out
}

func cell(v any) *TextRun {
	switch value := v.(type) {
	case *TextRun:
		if value == nil {
			return NewTextRun()
		}
		return value
	case string:
		return NewTextRun().NoSpace(value)
	case fmt.Stringer:
		return NewTextRun().NoSpace(value.String())
	default:
		return NewTextRun().NoSpace(fmt.Sprint(value))
	}
}

// Render returns the table as Markdown. Rendering does not modify the table.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}
	header := renderCells(t.headers)
	body := make([][]string, len(t.rows))
	for i, row := range t.rows {
		body[i] = renderCells(row)
	}

	widths := make([]int, len(t.headers))
	for _, row := range append([][]string{header}, body...) {
		for col, text := range row {
			if w := ansi.PrintableRuneWidth(text); w > widths[col] {
				widths[col] = w
			}
		}
	}
	separator := make([]string, len(widths))
	for col, w := range widths {
		separator[col] = strings.Repeat("-", w)
	}
	rendered := append([][]string{header, separator}, body...)

	var b strings.Builder
	b.WriteString("\n\n")
	for _, row := range rendered {
		for col, text := range row {
			b.WriteByte('|')
			b.WriteString(padCell(text, widths[col]))
		}
		b.WriteString("|\n")
	}
	b.WriteByte('\n')
	return b.String()
}

func renderCells(row []*TextRun) []string {
	out := make([]string, len(row))
	for i, c := range row {
		out[i] = c.render(0, contextTableCell, false)
	}
	return out
}

// padCell right-pads text to width columns. padding.String leaves empty
// input untouched, so blank cells are filled directly.
func padCell(text string, width int) string {
	if text == "" {
		return strings.Repeat(" ", width)
	}
	return padding.String(text, uint(width))
}
