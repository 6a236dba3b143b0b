package element

import (
	"reflect"
	"slices"
)

// Capability names the contract an element conforms to. Renderers use it to
// pick a compatible formatter; it is not a concrete type name.
type Capability string

const (
	CapElement   Capability = "element"
	CapParagraph Capability = "paragraph"
	CapRun       Capability = "run"
	CapText      Capability = "text"
	CapBreak     Capability = "break"
	CapTable     Capability = "table"
	CapRow       Capability = "row"
	CapCell      Capability = "cell"
	CapSection   Capability = "section"
)

// Element is a node of the document tree carrying properties and children.
type Element interface {
	// Properties returns the element's bag. It is never nil.
	Properties() *Properties
	HasProperties() bool
	Elements() []Element
	HasElements() bool
	// AddElement appends child, failing with a ModelError when the child
	// cannot be composed into this element.
	AddElement(child Element) error
	Interface() Capability
}

type baser interface {
	base() *Base
}

// Base implements Element and is embedded by every concrete variant.
type Base struct {
	capability Capability
	props      *Properties
	children   []Element
	// accepts lists the child capabilities allowed; nil means any.
	accepts []Capability
}

var _ Element = (*Base)(nil)

// NewElement creates a generic element accepting any child.
func NewElement(props any) (*Base, error) {
	return newBase(CapElement, props, nil)
}

func newBase(c Capability, props any, accepts []Capability) (*Base, error) {
	p, err := NewProperties(props)
	if err != nil {
		return nil, err
	}
	return &Base{capability: c, props: p, accepts: accepts}, nil
}

func (b *Base) base() *Base { return b }

// Properties returns the property bag, allocating it for a zero Base.
func (b *Base) Properties() *Properties {
	if b.props == nil {
		b.props = &Properties{}
	}
	return b.props
}

func (b *Base) HasProperties() bool { return b.props.Len() > 0 }

// Elements returns the children in order. The slice must not be modified.
func (b *Base) Elements() []Element { return b.children }

func (b *Base) HasElements() bool { return len(b.children) > 0 }

func (b *Base) Interface() Capability { return b.capability }

// SetProperty sets a single property.
func (b *Base) SetProperty(name string, v any) error {
	val, err := ValueOf(v)
	if err != nil {
		return err
	}
	b.Properties().Set(name, val)
	return nil
}

func (b *Base) AddElement(child Element) error {
	if err := b.checkChild(child); err != nil {
		return err
	}
	b.children = append(b.children, child)
	return nil
}

// Accepts reports whether a child with capability c may be added.
func (b *Base) Accepts(c Capability) bool {
	return b.accepts == nil || slices.Contains(b.accepts, c)
}

func (b *Base) checkChild(child Element) error {
	if isNil(child) {
		return composition("AddElement", "child is nil")
	}
	if !b.Accepts(child.Interface()) {
		return composition("AddElement", "%s cannot contain %s", b.capability, child.Interface())
	}
	if contains(child, b, nil) {
		return composition("AddElement", "adding %s would create a cycle", child.Interface())
	}
	return nil
}

// contains reports whether target is el or one of its descendants.
// Each element is visited once.
func contains(el, target Element, seen map[any]bool) bool {
	id := identity(el)
	if id == identity(target) {
		return true
	}
	if seen == nil {
		seen = make(map[any]bool)
	}
	if seen[id] {
		return false
	}
	seen[id] = true
	for _, c := range el.Elements() {
		if contains(c, target, seen) {
			return true
		}
	}
	return false
}

// identity keys an element by its embedded Base, so a variant and the
// Base it wraps compare equal.
func identity(el Element) any {
	if bs, ok := el.(baser); ok {
		return bs.base()
	}
	return el
}

func isNil(el Element) bool {
	if el == nil {
		return true
	}
	v := reflect.ValueOf(el)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
