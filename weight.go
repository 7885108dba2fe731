package markit

import (
	"strconv"
	"strings"
)

// Weight is a single formatting marker applied to a text fragment.
type Weight uint8

const (
	// Plain carries no markers.
	Plain Weight = iota
	// Bold wraps text in **.
	Bold
	// Italic wraps text in *.
	Italic
	// Strikethrough wraps text in ~~.
	Strikethrough
	// InlineCode wraps text in backticks.
	InlineCode
	// Important wraps text in == (highlight).
	Important
	// NoSpace suppresses the separator normally inserted between fragments.
	NoSpace
)

type markerPair struct {
	name  string
	open  string
	close string
}

var weightMarkers = [...]markerPair{
	Plain:         {name: "plain"},
	Bold:          {name: "bold", open: "**", close: "**"},
	Italic:        {name: "italic", open: "*", close: "*"},
	Strikethrough: {name: "strikethrough", open: "~~", close: "~~"},
	InlineCode:    {name: "inlinecode", open: "`", close: "`"},
	Important:     {name: "important", open: "==", close: "=="},
	NoSpace:       {name: "nospace"},
}

// Markers returns the opening and closing markup for w.
func (w Weight) Markers() (open, close string) {
	if int(w) >= len(weightMarkers) {
		return "", ""
	}
	m := weightMarkers[w]
	return m.open, m.close
}

func (w Weight) String() string {
	if int(w) >= len(weightMarkers) {
		return "weight(" + strconv.Itoa(int(w)) + ")"
	}
	return weightMarkers[w].name
}

// decorates reports whether w wraps text in markers.
func (w Weight) decorates() bool {
	switch w {
	case Bold, Italic, Strikethrough, InlineCode, Important:
		return true
	default:
		return false
	}
}

// ParseWeight maps a weight name such as "bold" or "inlinecode" to its Weight.
func ParseWeight(name string) (Weight, bool) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	switch normalized {
	case "text":
		return Plain, true
	case "code":
		return InlineCode, true
	case "highlight":
		return Important, true
	}
	for i, m := range weightMarkers {
		if m.name == normalized {
			return Weight(i), true
		}
	}
	return Plain, false
}

var reservedEscaper = strings.NewReplacer(
	"*", "&#42;",
	"_", "&#95;",
	"|", "&#124;",
	"`", "&#96;",
)

// Escape replaces characters that collide with Markdown markers by numeric
// character references.
func Escape(text string) string {
	return reservedEscaper.Replace(text)
}
