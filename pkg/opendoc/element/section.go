package element

import "iter"

// Section is a named, ordered collection of top-level elements. Its
// properties describe page setup (size, margins, columns).
type Section struct {
	name     string
	props    *Properties
	elements []Element
}

// NewSection creates a section with the given name and page properties.
func NewSection(name string, props any) (*Section, error) {
	p, err := NewProperties(props)
	if err != nil {
		return nil, err
	}
	return &Section{name: name, props: p}, nil
}

var _ Element = (*Section)(nil)

var sectionAccepts = []Capability{CapElement, CapParagraph, CapTable}

func (s *Section) Name() string { return s.name }

func (s *Section) SetName(name string) { s.name = name }

func (s *Section) Properties() *Properties {
	if s.props == nil {
		s.props = &Properties{}
	}
	return s.props
}

func (s *Section) HasProperties() bool { return s.props.Len() > 0 }

// Elements returns the top-level elements in order.
func (s *Section) Elements() []Element { return s.elements }

func (s *Section) HasElements() bool { return len(s.elements) > 0 }

func (s *Section) Interface() Capability { return CapSection }

// AddElement appends a block-level element: a paragraph, a table or a
// generic element.
func (s *Section) AddElement(el Element) error {
	if isNil(el) {
		return composition("Section.AddElement", "element is nil")
	}
	c := el.Interface()
	for _, a := range sectionAccepts {
		if a == c {
			if contains(el, s, nil) {
				return composition("Section.AddElement", "adding %s would create a cycle", c)
			}
			s.elements = append(s.elements, el)
			return nil
		}
	}
	return composition("Section.AddElement", "section cannot contain %s", c)
}

// At returns the element at offset i, or nil when i is out of range.
func (s *Section) At(i int) Element {
	if i < 0 || i >= len(s.elements) {
		return nil
	}
	return s.elements[i]
}

// Len returns the number of top-level elements.
func (s *Section) Len() int { return len(s.elements) }

// All iterates over offsets and elements.
func (s *Section) All() iter.Seq2[int, Element] {
	return func(yield func(int, Element) bool) {
		for i, el := range s.elements {
			if !yield(i, el) {
				return
			}
		}
	}
}

// Document is an ordered list of sections.
type Document struct {
	sections []*Section
}

func NewDocument() *Document {
	return &Document{}
}

// AddSection appends s. A nil section is rejected.
func (d *Document) AddSection(s *Section) error {
	if s == nil {
		return composition("Document.AddSection", "section is nil")
	}
	d.sections = append(d.sections, s)
	return nil
}

// Section returns the first section named name, or nil.
func (d *Document) Section(name string) *Section {
	for _, s := range d.sections {
		if s.name == name {
			return s
		}
	}
	return nil
}

func (d *Document) Sections() []*Section { return d.sections }
