package markit

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Load builds a Document from a YAML description:
//
//	front_matter:
//	  title: Report
//	blocks:
//	  - heading: Report
//	  - text: [{text: "Status is"}, {bold: green}]
//	  - list:
//	      ordered: true
//	      items: [First, Second, {items: [Nested]}]
//	  - table:
//	      headers: [Key, Value]
//	      rows: [[a, "1"], [b, [{bold: "2"}]]]
//
// A run is either a plain string or a sequence of fragments; a fragment is a
// string or a single-key mapping from weight name to text, where an empty
// value applies the weight to the previous fragment.
func Load(r io.Reader, opts ...Option) (*Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("markit: load: %w", err)
	}
	if err := ValidateInput(src); err != nil {
		return nil, fmt.Errorf("markit: load: %w", err)
	}
	var desc documentDesc
	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)
	if err := dec.Decode(&desc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("markit: load: %w", err)
	}
	doc := NewDocument(opts...)
	doc.FrontMatter(desc.FrontMatter)
	for i, block := range desc.Blocks {
		if err := block.apply(doc); err != nil {
			return nil, fmt.Errorf("markit: load: block %d: %w", i+1, err)
		}
	}
	if err := doc.Err(); err != nil {
		return nil, err
	}
	return doc, nil
}

type documentDesc struct {
	FrontMatter map[string]any `yaml:"front_matter"`
	Blocks      []blockDesc    `yaml:"blocks"`
}

type blockDesc struct {
	Text      *runDesc   `yaml:"text"`
	Paragraph *runDesc   `yaml:"paragraph"`
	Heading   *string    `yaml:"heading"`
	Level     int        `yaml:"level"`
	Quote     *runDesc   `yaml:"quote"`
	Checkbox  *runDesc   `yaml:"checkbox"`
	Checked   bool       `yaml:"checked"`
	Code      *string    `yaml:"code"`
	Lang      string     `yaml:"lang"`
	Rule      bool       `yaml:"rule"`
	Break     int        `yaml:"break"`
	List      *listDesc  `yaml:"list"`
	Table     *tableDesc `yaml:"table"`
}

func (b blockDesc) kinds() int {
	n := 0
	for _, set := range []bool{
		b.Text != nil, b.Paragraph != nil, b.Heading != nil, b.Quote != nil,
		b.Checkbox != nil, b.Code != nil, b.Rule, b.Break > 0, b.List != nil, b.Table != nil,
	} {
		if set {
			n++
		}
	}
	return n
}

func (b blockDesc) apply(doc *Document) error {
	if n := b.kinds(); n != 1 {
		return fmt.Errorf("want exactly one block kind, got %d", n)
	}
	switch {
	case b.Text != nil:
		for _, f := range b.Text.fragments {
			if f.text == nil {
				doc.Weight(f.weight)
			} else {
				doc.Weight(f.weight, *f.text)
			}
		}
	case b.Paragraph != nil:
		doc.Paragraph(b.Paragraph.build())
	case b.Heading != nil:
		level := b.Level
		if level == 0 {
			level = 1
		}
		doc.Heading(*b.Heading, level)
	case b.Quote != nil:
		doc.Quote(b.Quote.build())
	case b.Checkbox != nil:
		doc.Checkbox(b.Checkbox.build(), b.Checked)
	case b.Code != nil:
		doc.CodeBlockLang(b.Lang, *b.Code)
	case b.Rule:
		doc.HorizontalRule()
	case b.Break > 0:
		doc.LineBreak(b.Break)
	case b.List != nil:
		var l *List
		if b.List.Ordered {
			l = doc.OrderedList()
		} else {
			l = doc.UnorderedList()
		}
		b.List.build(l)
		l.Done()
	case b.Table != nil:
		headers := make([]any, len(b.Table.Headers))
		for i, h := range b.Table.Headers {
			headers[i] = h.value()
		}
		t := doc.Table(headers...)
		for _, row := range b.Table.Rows {
			values := make([]any, len(row))
			for i, c := range row {
				values[i] = c.value()
			}
			t.Row(values...)
		}
	}
	return doc.Err()
}

type fragmentDesc struct {
	weight Weight
	text   *string
}

type runDesc struct {
	fragments []fragmentDesc
}

func (r *runDesc) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		text := node.Value
		r.fragments = []fragmentDesc{{weight: Plain, text: &text}}
		return nil
	case yaml.SequenceNode:
		r.fragments = make([]fragmentDesc, 0, len(node.Content))
		for _, item := range node.Content {
			f, err := decodeFragment(item)
			if err != nil {
				return err
			}
			r.fragments = append(r.fragments, f)
		}
		return nil
	default:
		return fmt.Errorf("line %d: run must be a string or a sequence of fragments", node.Line)
	}
}

func decodeFragment(node *yaml.Node) (fragmentDesc, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		text := node.Value
		return fragmentDesc{weight: Plain, text: &text}, nil
	case yaml.MappingNode:
		if len(node.Content) != 2 {
			return fragmentDesc{}, fmt.Errorf("line %d: fragment must have exactly one weight key", node.Line)
		}
		key, value := node.Content[0], node.Content[1]
		w, ok := ParseWeight(key.Value)
		if !ok {
			return fragmentDesc{}, fmt.Errorf("line %d: unknown weight %q", key.Line, key.Value)
		}
		if value.Kind != yaml.ScalarNode {
			return fragmentDesc{}, fmt.Errorf("line %d: %s value must be a string", value.Line, key.Value)
		}
		if value.ShortTag() == "!!null" {
			return fragmentDesc{weight: w}, nil
		}
		text := value.Value
		return fragmentDesc{weight: w, text: &text}, nil
	default:
		return fragmentDesc{}, fmt.Errorf("line %d: fragment must be a string or a mapping", node.Line)
	}
}

func (r *runDesc) build() *TextRun {
	run := NewTextRun()
	for _, f := range r.fragments {
		if f.text == nil {
			run.Weight(f.weight)
		} else {
			run.Weight(f.weight, *f.text)
		}
	}
	return run
}

type listDesc struct {
	Ordered bool       `yaml:"ordered"`
	Items   []itemDesc `yaml:"items"`
}

type itemDesc struct {
	run  *runDesc
	list *listDesc
}

func (i *itemDesc) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.MappingNode {
		if err := checkKeys(node, "ordered", "items"); err != nil {
			return err
		}
		var l listDesc
		if err := node.Decode(&l); err != nil {
			return err
		}
		i.list = &l
		return nil
	}
	var r runDesc
	if err := r.UnmarshalYAML(node); err != nil {
		return err
	}
	i.run = &r
	return nil
}

// checkKeys rejects mapping keys outside allowed. node.Decode does not
// inherit the decoder's KnownFields setting.
func checkKeys(node *yaml.Node, allowed ...string) error {
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		known := false
		for _, name := range allowed {
			if key.Value == name {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf("line %d: unknown list field %q", key.Line, key.Value)
		}
	}
	return nil
}

func (s *listDesc) build(l *List) {
	for _, item := range s.Items {
		if item.list == nil {
			l.ItemRun(item.run.build())
			continue
		}
		var child *List
		if item.list.Ordered {
			child = l.Ordered()
		} else {
			child = l.Unordered()
		}
		item.list.build(child)
	}
}

type tableDesc struct {
	Headers []cellDesc   `yaml:"headers"`
	Rows    [][]cellDesc `yaml:"rows"`
}

type cellDesc struct {
	text string
	run  *runDesc
}

func (c *cellDesc) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		c.text = node.Value
		return nil
	}
	var r runDesc
	if err := r.UnmarshalYAML(node); err != nil {
		return err
	}
	c.run = &r
	return nil
}

func (c cellDesc) value() any {
	if c.run != nil {
		return c.run.build()
	}
	return c.text
}
