package markit

import (
	"fmt"
	"strconv"
	"strings"
)

// ListKind selects numbered or bulleted items.
type ListKind uint8

const (
	// Unordered lists prefix items with "-".
	Unordered ListKind = iota
	// Ordered lists prefix items with a running "n." counter.
	Ordered
)

func (k ListKind) String() string {
	if k == Ordered {
		return "ordered"
	}
	return "unordered"
}

type listItem struct {
	run  *TextRun
	list *List
}

// List builds an ordered or unordered Markdown list. Nested lists are items
// of their parent and are indented one unit per nesting level.
//
// A list tree belongs to the Document that created its root. Done seals the
// whole tree and hands control back to the Document; items added afterwards
// fail with ErrListSealed.
type List struct {
	kind   ListKind
	items  []listItem
	depth  int
	parent *List
	doc    *Document
	sealed bool
	err    error
}

func newList(kind ListKind, doc *Document) *List {
	return &List{kind: kind, doc: doc}
}

// Kind reports whether the list is ordered.
func (l *List) Kind() ListKind {
	return l.kind
}

// Depth returns the nesting level; the root list is at depth 0.
func (l *List) Depth() int {
	return l.depth
}

// Item appends a plain text item.
func (l *List) Item(text string) *List {
	return l.ItemRun(NewTextRun().Text(text))
}

// ItemRun appends a prepared run as an item.
func (l *List) ItemRun(run *TextRun) *List {
	if !l.accepting("add item") {
		return l
	}
	if run == nil {
		run = NewTextRun()
	}
	l.items = append(l.items, listItem{run: run})
	return l
}

// Ordered starts a numbered sublist and returns it.
func (l *List) Ordered() *List {
	return l.sublist(Ordered)
}

// Unordered starts a bulleted sublist and returns it.
func (l *List) Unordered() *List {
	return l.sublist(Unordered)
}

func (l *List) sublist(kind ListKind) *List {
	if !l.accepting("begin " + kind.String() + " sublist") {
		return l
	}
	child := newList(kind, l.doc)
	child.parent = l
	child.depth = l.depth + 1
	l.items = append(l.items, listItem{list: child})
	return child
}

// End closes a sublist and returns its parent. The root list returns itself.
func (l *List) End() *List {
	if l.parent == nil {
		return l
	}
	return l.parent
}

// Parent returns the enclosing list, or nil for the root list.
func (l *List) Parent() *List {
	return l.parent
}

// Done leaves list-building mode: the whole list tree is sealed and the
// owning Document is returned.
func (l *List) Done() *Document {
	l.root().sealed = true
	return l.doc
}

// Sealed reports whether the list tree no longer accepts items.
func (l *List) Sealed() bool {
	return l.root().sealed
}

func (l *List) accepting(op string) bool {
	root := l.root()
	if root.err != nil {
		return false
	}
	if root.sealed {
		root.err = fmt.Errorf("markit: %s: %w", op, ErrListSealed)
		return false
	}
	return true
}

func (l *List) root() *List {
	for l.parent != nil {
		l = l.parent
	}
	return l
}

// Err returns the first error recorded anywhere in the list tree, including
// errors of item runs.
func (l *List) Err() error {
	root := l.root()
	if root.err != nil {
		return root.err
	}
	return root.itemErr()
}

func (l *List) itemErr() error {
	for _, item := range l.items {
		if item.list != nil {
			if err := item.list.itemErr(); err != nil {
				return err
			}
			continue
		}
		if err := item.run.Err(); err != nil {
			return err
		}
	}
	return nil
}

// Render returns the list as Markdown, indenting nested levels with tabs.
func (l *List) Render() string {
	return l.render(newConfig(nil))
}

func (l *List) render(cfg config) string {
	var b strings.Builder
	if l.parent == nil {
		b.WriteString("\n\n")
	}
	l.renderItems(&b, cfg)
	return b.String()
}

func (l *List) renderItems(b *strings.Builder, cfg config) {
	indent := strings.Repeat(cfg.indent, l.depth)
	counter := 0
	for _, item := range l.items {
		if item.list != nil {
			item.list.renderItems(b, cfg)
			continue
		}
		counter++
		b.WriteString(indent)
		if l.kind == Ordered {
			b.WriteString(strconv.Itoa(counter))
			b.WriteByte('.')
		} else {
			b.WriteByte('-')
		}
		b.WriteString(item.run.render(cfg.wrapWords, contextParagraph, false))
		b.WriteByte('\n')
	}
}
