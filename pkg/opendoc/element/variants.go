package element

// Paragraph holds runs, bare text and breaks.
type Paragraph struct {
	Base
}

// NewParagraph creates a paragraph with the given paragraph properties.
func NewParagraph(props any) (*Paragraph, error) {
	b, err := newBase(CapParagraph, props, []Capability{CapRun, CapText, CapBreak})
	if err != nil {
		return nil, err
	}
	return &Paragraph{Base: *b}, nil
}

// AddText appends a run containing text and formatted with props.
func (p *Paragraph) AddText(text string, props any) (*Run, error) {
	r, err := NewRun(text, props)
	if err != nil {
		return nil, err
	}
	if err := p.AddElement(r); err != nil {
		return nil, err
	}
	return r, nil
}

// Run is a span of text sharing one set of character properties.
type Run struct {
	Base
}

// NewRun creates a run. A non-empty text is added as the first child.
func NewRun(text string, props any) (*Run, error) {
	b, err := newBase(CapRun, props, []Capability{CapText, CapBreak})
	if err != nil {
		return nil, err
	}
	r := &Run{Base: *b}
	if text != "" {
		r.children = append(r.children, NewText(text))
	}
	return r, nil
}

// Text returns the concatenated text of the run.
func (r *Run) Text() string {
	var s string
	for _, c := range r.children {
		if t, ok := c.(*Text); ok {
			s += t.Value
		}
	}
	return s
}

// Text is literal character content. It never has children.
type Text struct {
	Base
	Value string
}

func NewText(value string) *Text {
	return &Text{
		Base:  Base{capability: CapText, props: &Properties{}, accepts: []Capability{}},
		Value: value,
	}
}

// BreakType is the kind of a Break.
type BreakType string

const (
	BreakLine   BreakType = "textWrapping"
	BreakPage   BreakType = "page"
	BreakColumn BreakType = "column"
)

// Break is a line, page or column break.
type Break struct {
	Base
	Type BreakType
}

func NewBreak(t BreakType) *Break {
	if t == "" {
		t = BreakLine
	}
	return &Break{
		Base: Base{capability: CapBreak, props: &Properties{}, accepts: []Capability{}},
		Type: t,
	}
}

// Table holds rows.
type Table struct {
	Base
}

func NewTable(props any) (*Table, error) {
	b, err := newBase(CapTable, props, []Capability{CapRow})
	if err != nil {
		return nil, err
	}
	return &Table{Base: *b}, nil
}

// Row holds cells.
type Row struct {
	Base
}

func NewRow(props any) (*Row, error) {
	b, err := newBase(CapRow, props, []Capability{CapCell})
	if err != nil {
		return nil, err
	}
	return &Row{Base: *b}, nil
}

// Cell holds block content: paragraphs and nested tables.
type Cell struct {
	Base
}

func NewCell(props any) (*Cell, error) {
	b, err := newBase(CapCell, props, []Capability{CapParagraph, CapTable})
	if err != nil {
		return nil, err
	}
	return &Cell{Base: *b}, nil
}
