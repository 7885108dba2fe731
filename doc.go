// Package markit generates Markdown documents from Go code.
//
// A Document is built with chained calls and rendered once it is complete.
// Inline text is composed of weighted fragments (bold, italic, inline code,
// strikethrough, highlight) that are separated by a single space unless
// NoSpace glues them together. Block elements cover headings, quotes,
// checkboxes, fenced code, rules, nested ordered and unordered lists and
// padded pipe tables.
//
// Builders never panic and never return errors from chained calls. The first
// misuse is recorded and later calls are ignored; Err reports it, and WriteTo,
// Save and RenderHTML refuse to emit a document that has one.
//
// Example:
//
//	doc := markit.NewDocument().
//		Heading("Report", 1).
//		Text("Status is").Bold("green").
//		OrderedList().Item("build").Item("test").Done().
//		Table("Key", "Value").Row("uptime", "99.9%").Done()
//	if err := doc.Save("REPORT.md"); err != nil {
//		log.Fatal(err)
//	}
//
// Documents can also be described in YAML and built with Load, and converted
// into a standalone HTML page with RenderHTML.
package markit
