package xml

import (
	"fmt"
	"io"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
)

// Node is the markup node type written by the formatters.
type Node = xmlquery.Node

const (
	// WordNamespace is the main WordprocessingML namespace.
	WordNamespace = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	// RelationshipsNamespace is the officeDocument relationships namespace.
	RelationshipsNamespace = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	// WordPrefix is the conventional prefix for WordNamespace.
	WordPrefix = "w"

	// Header is the declaration written before a serialized part.
	Header = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"
)

// qualify adds the w: prefix to name unless it already carries a prefix.
func qualify(name string) string {
	if strings.Contains(name, ":") {
		return name
	}
	return WordPrefix + ":" + name
}

// NewElement creates a detached element in the WordprocessingML namespace.
// A name that already has a prefix ("xml:space") keeps it.
func NewElement(name string) *Node {
	prefix, local := WordPrefix, name
	if i := strings.IndexByte(name, ':'); i >= 0 {
		prefix, local = name[:i], name[i+1:]
	}
	return &Node{
		Type:         xmlquery.ElementNode,
		Data:         local,
		Prefix:       prefix,
		NamespaceURI: namespaceFor(prefix),
	}
}

func namespaceFor(prefix string) string {
	switch prefix {
	case "w":
		return WordNamespace
	case "r":
		return RelationshipsNamespace
	}
	return ""
}

// NewText creates a text node.
func NewText(text string) *Node {
	return &Node{Type: xmlquery.TextNode, Data: text}
}

// SetAttr sets a w: qualified attribute on n, replacing an existing one.
func SetAttr(n *Node, key, value string) {
	key = qualify(key)
	for i, a := range n.Attr {
		if a.Name.Space+":"+a.Name.Local == key {
			n.Attr[i].Value = value
			return
		}
	}
	xmlquery.AddAttr(n, key, value)
}

// Attr returns the value of a w: qualified attribute.
func Attr(n *Node, key string) string {
	return n.SelectAttr(qualify(key))
}

// AppendElement creates a w:name element, appends it to parent and returns it.
func AppendElement(parent *Node, name string) *Node {
	child := NewElement(name)
	xmlquery.AddChild(parent, child)
	return child
}

// Append appends child as the last child of parent.
func Append(parent, child *Node) {
	xmlquery.AddChild(parent, child)
}

// Remove detaches n from its parent.
func Remove(n *Node) {
	xmlquery.RemoveFromTree(n)
}

// Text returns the text content of n.
func Text(n *Node) string {
	return n.InnerText()
}

// SetText replaces the children of n with a single text node.
func SetText(n *Node, text string) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		xmlquery.RemoveFromTree(c)
		c = next
	}
	xmlquery.AddChild(n, NewText(text))
}

// IsElement reports whether n is an element node.
func IsElement(n *Node) bool {
	return n != nil && n.Type == xmlquery.ElementNode
}

// Children returns the element children of n.
func Children(n *Node) []*Node {
	var out []*Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if IsElement(c) {
			out = append(out, c)
		}
	}
	return out
}

// Child returns the first element child named name (w: prefix implied).
func Child(n *Node, name string) *Node {
	q := qualify(name)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode && c.Prefix+":"+c.Data == q {
			return c
		}
	}
	return nil
}

// QName returns the prefixed name of an element node.
func QName(n *Node) string {
	if n.Prefix == "" {
		return n.Data
	}
	return n.Prefix + ":" + n.Data
}

// Select runs an XPath query rooted at n.
func Select(n *Node, expr string) ([]*Node, error) {
	compiled, err := xpath.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid xpath %q: %w", expr, err)
	}
	return xmlquery.QuerySelectorAll(n, compiled), nil
}

// NewDocument returns a document node holding a w:document root that
// declares the w and r namespaces.
func NewDocument() (doc, root *Node) {
	doc = &Node{Type: xmlquery.DocumentNode}
	root = NewElement("document")
	xmlquery.AddAttr(root, "xmlns:w", WordNamespace)
	xmlquery.AddAttr(root, "xmlns:r", RelationshipsNamespace)
	xmlquery.AddChild(doc, root)
	return doc, root
}

// Serialize renders n and its descendants.
func Serialize(n *Node) string {
	return n.OutputXML(n.Type != xmlquery.DocumentNode)
}

// WriteTo writes the XML header followed by the serialized document.
func WriteTo(w io.Writer, doc *Node) (int64, error) {
	n, err := io.WriteString(w, Header+Serialize(doc))
	return int64(n), err
}
