// Package element provides the document model consumed by the formatters.
//
// A document is a list of sections; a section holds block elements
// (paragraphs and tables) which in turn hold runs, text, breaks, rows and
// cells. Every node carries a Properties bag: an ordered mapping from
// property name to a loosely typed Value.
//
// # Values
//
// Value is a closed union of null, bool, int, float, string and array. The
// formatters coerce values with Value.Int and Value.String; compound
// properties such as borders are arrays wrapping a nested Properties bag.
//
// # Composition
//
// AddElement checks a child eagerly. Each variant declares the capabilities
// it accepts (a Paragraph takes runs, text and breaks; a Table takes rows),
// and a nil child, a cycle, or a child of the wrong capability fails with a
// ModelError of kind KindComposition without touching the parent.
//
// Example:
//
//	p, _ := element.NewParagraph(map[string]any{"align": "center"})
//	p.AddText("Hello", map[string]any{"bold": true, "size": 14})
//	sec, _ := element.NewSection("body", nil)
//	sec.AddElement(p)
package element
