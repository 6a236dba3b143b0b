package loader

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/benjaminschreck/go-opendoc/pkg/opendoc/element"
)

// Load reads a YAML document description from r.
func Load(r io.Reader) (*element.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &LoadError{Message: "read failed", Cause: err}
	}
	return LoadBytes(data)
}

// LoadFile reads a YAML document description from path.
func LoadFile(path string) (*element.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Message: "read " + path, Cause: err}
	}
	return LoadBytes(data)
}

// LoadBytes builds a document from YAML source.
//
// The top level is a mapping with a "sections" sequence. Each section has
// an optional name, properties and elements; each element is a mapping
// with a "type" key and the keys that type understands.
func LoadBytes(data []byte) (*element.Document, error) {
	var root yaml.Node
	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&root); err != nil {
		if err == io.EOF {
			return element.NewDocument(), nil
		}
		return nil, &LoadError{Message: "invalid yaml", Cause: err}
	}

	top := resolve(&root)
	if top.Kind == yaml.DocumentNode {
		if len(top.Content) == 0 {
			return element.NewDocument(), nil
		}
		top = resolve(top.Content[0])
	}
	if isNull(top) {
		return element.NewDocument(), nil
	}
	if top.Kind != yaml.MappingNode {
		return nil, failAt(top, "document must be a mapping")
	}

	doc := element.NewDocument()
	err := eachPair(top, func(key string, k, v *yaml.Node) error {
		switch key {
		case "sections":
			if v.Kind != yaml.SequenceNode {
				return failAt(v, "sections must be a sequence")
			}
			for i, sn := range v.Content {
				s, err := loadSection(resolve(sn), i)
				if err != nil {
					return err
				}
				if err := doc.AddSection(s); err != nil {
					return wrapAt(sn, "add section", err)
				}
			}
			return nil
		default:
			return failAt(k, "unknown document key %q", key)
		}
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func loadSection(n *yaml.Node, index int) (*element.Section, error) {
	if n.Kind != yaml.MappingNode {
		return nil, failAt(n, "section must be a mapping")
	}
	name := "section" + strconv.Itoa(index+1)
	var props *element.Properties
	var children []*yaml.Node

	err := eachPair(n, func(key string, k, v *yaml.Node) error {
		switch key {
		case "name":
			name = v.Value
		case "properties":
			p, err := properties(v)
			if err != nil {
				return err
			}
			props = p
		case "elements":
			if v.Kind != yaml.SequenceNode {
				return failAt(v, "elements must be a sequence")
			}
			children = v.Content
		default:
			return failAt(k, "unknown section key %q", key)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s, err := element.NewSection(name, props)
	if err != nil {
		return nil, wrapAt(n, "section", err)
	}
	for _, cn := range children {
		el, err := loadElement(resolve(cn))
		if err != nil {
			return nil, err
		}
		if err := s.AddElement(el); err != nil {
			return nil, wrapAt(cn, "section "+name, err)
		}
	}
	return s, nil
}

// elementNode is the decoded shape of one element mapping.
type elementNode struct {
	typ      string
	props    *element.Properties
	text     *yaml.Node
	brk      *yaml.Node
	children []*yaml.Node
}

func decodeElement(n *yaml.Node) (*elementNode, error) {
	if n.Kind != yaml.MappingNode {
		return nil, failAt(n, "element must be a mapping")
	}
	en := &elementNode{}
	err := eachPair(n, func(key string, k, v *yaml.Node) error {
		switch key {
		case "type":
			en.typ = v.Value
		case "properties":
			p, err := properties(v)
			if err != nil {
				return err
			}
			en.props = p
		case "text":
			if v.Kind != yaml.ScalarNode {
				return failAt(v, "text must be a scalar")
			}
			en.text = v
		case "break":
			en.brk = v
		case "elements":
			if v.Kind != yaml.SequenceNode {
				return failAt(v, "elements must be a sequence")
			}
			en.children = v.Content
		default:
			return failAt(k, "unknown element key %q", key)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if en.typ == "" {
		return nil, failAt(n, "element has no type")
	}
	return en, nil
}

func loadElement(n *yaml.Node) (element.Element, error) {
	en, err := decodeElement(n)
	if err != nil {
		return nil, err
	}

	var el element.Element
	switch en.typ {
	case "paragraph":
		p, err := element.NewParagraph(en.props)
		if err != nil {
			return nil, wrapAt(n, en.typ, err)
		}
		if en.text != nil {
			if _, err := p.AddText(en.text.Value, nil); err != nil {
				return nil, wrapAt(en.text, en.typ, err)
			}
		}
		el = p
	case "run":
		text := ""
		if en.text != nil {
			text = en.text.Value
		}
		r, err := element.NewRun(text, en.props)
		if err != nil {
			return nil, wrapAt(n, en.typ, err)
		}
		el = r
	case "text":
		if en.props != nil || en.brk != nil || len(en.children) > 0 {
			return nil, failAt(n, "text takes only text")
		}
		text := ""
		if en.text != nil {
			text = en.text.Value
		}
		return element.NewText(text), nil
	case "break":
		if en.props != nil || en.text != nil || len(en.children) > 0 {
			return nil, failAt(n, "break takes only a break type")
		}
		bt := element.BreakLine
		if en.brk != nil {
			t, ok := breakTypes[en.brk.Value]
			if !ok {
				return nil, failAt(en.brk, "unknown break type %q", en.brk.Value)
			}
			bt = t
		}
		return element.NewBreak(bt), nil
	case "table":
		el, err = element.NewTable(en.props)
	case "row":
		el, err = element.NewRow(en.props)
	case "cell":
		el, err = element.NewCell(en.props)
	case "element":
		el, err = element.NewElement(en.props)
	default:
		return nil, failAt(n, "unknown element type %q", en.typ)
	}
	if err != nil {
		return nil, wrapAt(n, en.typ, err)
	}
	if en.brk != nil {
		return nil, failAt(en.brk, "%s does not take a break", en.typ)
	}
	if en.text != nil && en.typ != "paragraph" && en.typ != "run" {
		return nil, failAt(en.text, "%s does not take text", en.typ)
	}

	for _, cn := range en.children {
		child, err := loadElement(resolve(cn))
		if err != nil {
			return nil, err
		}
		if err := el.AddElement(child); err != nil {
			return nil, wrapAt(cn, en.typ, err)
		}
	}
	return el, nil
}

var breakTypes = map[string]element.BreakType{
	"line":         element.BreakLine,
	"textWrapping": element.BreakLine,
	"page":         element.BreakPage,
	"column":       element.BreakColumn,
}

// properties decodes a property mapping, keeping the source key order.
func properties(n *yaml.Node) (*element.Properties, error) {
	n = resolve(n)
	if isNull(n) {
		return nil, nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, failAt(n, "properties must be a mapping")
	}
	props, _ := element.NewProperties(nil)
	err := eachPair(n, func(key string, k, v *yaml.Node) error {
		val, err := value(v)
		if err != nil {
			return err
		}
		props.Set(key, val)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return props, nil
}

// value converts a YAML node to a property value. Mappings become arrays
// keyed by their keys, sequences become arrays keyed "0".."n-1".
func value(n *yaml.Node) (element.Value, error) {
	n = resolve(n)
	switch n.Kind {
	case yaml.ScalarNode:
		return scalar(n)
	case yaml.MappingNode:
		p, err := properties(n)
		if err != nil {
			return element.Null(), err
		}
		return element.Array(p), nil
	case yaml.SequenceNode:
		p, _ := element.NewProperties(nil)
		for i, c := range n.Content {
			v, err := value(c)
			if err != nil {
				return element.Null(), err
			}
			p.Set(strconv.Itoa(i), v)
		}
		return element.Array(p), nil
	}
	return element.Null(), failAt(n, "unsupported value")
}

func scalar(n *yaml.Node) (element.Value, error) {
	switch n.ShortTag() {
	case "!!null":
		return element.Null(), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return element.Null(), wrapAt(n, "bool", err)
		}
		return element.Bool(b), nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err != nil {
			// out of range integers keep their text
			return element.String(n.Value), nil
		}
		return element.Int(i), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return element.Null(), wrapAt(n, "float", err)
		}
		return element.Float(f), nil
	default:
		return element.String(n.Value), nil
	}
}

func eachPair(n *yaml.Node, fn func(key string, k, v *yaml.Node) error) error {
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := resolve(n.Content[i]), resolve(n.Content[i+1])
		if k.Kind != yaml.ScalarNode {
			return failAt(k, "mapping keys must be scalars")
		}
		if err := fn(k.Value, k, v); err != nil {
			return err
		}
	}
	return nil
}

// resolve follows alias nodes to their anchor.
func resolve(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null"
}

func failAt(n *yaml.Node, format string, args ...interface{}) error {
	return &LoadError{Message: fmt.Sprintf(format, args...), Line: n.Line, Column: n.Column}
}

func wrapAt(n *yaml.Node, msg string, cause error) error {
	return &LoadError{Message: msg, Line: n.Line, Column: n.Column, Cause: cause}
}
