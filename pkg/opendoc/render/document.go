package render

import (
	"fmt"
	"io"

	"github.com/benjaminschreck/go-opendoc/pkg/opendoc/element"
	"github.com/benjaminschreck/go-opendoc/pkg/opendoc/formatter"
	"github.com/benjaminschreck/go-opendoc/pkg/opendoc/xml"
)

// DefaultMaxDepth bounds element nesting when Options.MaxDepth is zero.
const DefaultMaxDepth = 64

// Logger receives debug output from the renderer.
type Logger interface {
	Debug(format string, args ...interface{})
}

// Options configures a Renderer.
type Options struct {
	// MaxDepth limits how deeply elements may nest.
	MaxDepth int
	// MergeRuns joins adjacent runs with identical run properties.
	MergeRuns bool
	// Unknown, if set, is told about every property no formatter handled.
	Unknown formatter.UnknownFunc
	Logger  Logger
}

// Renderer turns a document model into a w:document tree. It keeps no
// state between calls.
type Renderer struct {
	paragraph *formatter.Formatter
	run       *formatter.Formatter
	table     *formatter.Formatter
	row       *formatter.Formatter
	cell      *formatter.Formatter
	section   *formatter.Formatter
	maxDepth  int
	mergeRuns bool
	logger    Logger
}

// New creates a renderer with one formatter per property family.
func New(opts Options) *Renderer {
	var fopts []formatter.Option
	if opts.Unknown != nil {
		fopts = append(fopts, formatter.WithUnknown(opts.Unknown))
	}
	r := &Renderer{
		paragraph: formatter.Paragraph(fopts...),
		run:       formatter.Run(fopts...),
		table:     formatter.Table(fopts...),
		row:       formatter.Row(fopts...),
		cell:      formatter.Cell(fopts...),
		section:   formatter.Section(fopts...),
		maxDepth:  opts.MaxDepth,
		mergeRuns: opts.MergeRuns,
		logger:    opts.Logger,
	}
	if r.maxDepth <= 0 {
		r.maxDepth = DefaultMaxDepth
	}
	return r
}

type walk struct {
	r       *Renderer
	section string
}

func (w *walk) fail(c element.Capability, format string, args ...interface{}) error {
	return &RenderError{Section: w.section, Capability: string(c), Message: fmt.Sprintf(format, args...)}
}

// Render builds the document node for doc. The returned node is a document
// node whose only element child is w:document.
func (r *Renderer) Render(doc *element.Document) (*xml.Node, error) {
	out, root := xml.NewDocument()
	body := xml.AppendElement(root, "body")
	sections := doc.Sections()
	for i, sec := range sections {
		r.debug("rendering section %q with %d elements", sec.Name(), sec.Len())
		w := &walk{r: r, section: sec.Name()}
		for _, el := range sec.Elements() {
			if err := w.block(body, el, 1); err != nil {
				return nil, err
			}
		}
		sectPr := xml.NewElement("sectPr")
		r.section.Format(sec, sectPr)
		if i == len(sections)-1 {
			xml.Append(body, sectPr)
			continue
		}
		// Earlier sections end with a paragraph carrying their sectPr.
		pPr := xml.AppendElement(xml.AppendElement(body, "p"), "pPr")
		xml.Append(pPr, sectPr)
	}
	return out, nil
}

// WriteTo renders doc and writes it to out with an XML header.
func (r *Renderer) WriteTo(out io.Writer, doc *element.Document) (int64, error) {
	node, err := r.Render(doc)
	if err != nil {
		return 0, err
	}
	return xml.WriteTo(out, node)
}

// properties formats el with f into a new container named name and attaches
// it to parent only when something was written.
func properties(f *formatter.Formatter, el element.Element, parent *xml.Node, name string) {
	if !el.HasProperties() {
		return
	}
	pr := xml.NewElement(name)
	if f.Format(el, pr) && pr.FirstChild != nil {
		xml.Append(parent, pr)
	}
}

func (w *walk) block(parent *xml.Node, el element.Element, depth int) error {
	if depth > w.r.maxDepth {
		return w.fail(el.Interface(), "nesting deeper than %d", w.r.maxDepth)
	}
	switch el.Interface() {
	case element.CapParagraph:
		return w.paragraph(parent, el, depth)
	case element.CapTable:
		return w.table(parent, el, depth)
	case element.CapElement:
		return w.container(parent, el, depth)
	}
	return w.fail(el.Interface(), "not allowed at block level")
}

// container renders the children of a generic element in place. Inline
// children are gathered into implicit paragraphs.
func (w *walk) container(parent *xml.Node, el element.Element, depth int) error {
	var p *xml.Node
	for _, child := range el.Elements() {
		if isInline(child.Interface()) {
			if p == nil {
				p = xml.AppendElement(parent, "p")
			}
			if err := w.inline(p, child, depth+1); err != nil {
				return err
			}
			continue
		}
		p = nil
		if err := w.block(parent, child, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func isInline(c element.Capability) bool {
	return c == element.CapRun || c == element.CapText || c == element.CapBreak
}

func (w *walk) paragraph(parent *xml.Node, el element.Element, depth int) error {
	p := xml.AppendElement(parent, "p")
	properties(w.r.paragraph, el, p, "pPr")
	for _, child := range el.Elements() {
		if err := w.inline(p, child, depth+1); err != nil {
			return err
		}
	}
	if w.r.mergeRuns {
		MergeConsecutiveRuns(p)
	}
	return nil
}

func (w *walk) inline(p *xml.Node, el element.Element, depth int) error {
	if depth > w.r.maxDepth {
		return w.fail(el.Interface(), "nesting deeper than %d", w.r.maxDepth)
	}
	switch el.Interface() {
	case element.CapRun:
		r := xml.AppendElement(p, "r")
		properties(w.r.run, el, r, "rPr")
		for _, child := range el.Elements() {
			if err := w.content(r, child); err != nil {
				return err
			}
		}
		return nil
	case element.CapText, element.CapBreak:
		return w.content(xml.AppendElement(p, "r"), el)
	}
	return w.fail(el.Interface(), "not allowed inside a paragraph")
}

// content writes run content: text and breaks.
func (w *walk) content(r *xml.Node, el element.Element) error {
	switch t := el.(type) {
	case *element.Text:
		appendText(r, t.Value)
		return nil
	case *element.Break:
		br := xml.AppendElement(r, "br")
		if t.Type != element.BreakLine {
			xml.SetAttr(br, "type", string(t.Type))
		}
		return nil
	}
	return w.fail(el.Interface(), "not allowed inside a run")
}

func appendText(r *xml.Node, s string) {
	t := xml.AppendElement(r, "t")
	xml.SetAttr(t, "xml:space", "preserve")
	xml.Append(t, xml.NewText(s))
}

func (w *walk) table(parent *xml.Node, el element.Element, depth int) error {
	tbl := xml.AppendElement(parent, "tbl")
	tblPr := xml.AppendElement(tbl, "tblPr")
	if el.HasProperties() {
		w.r.table.Format(el, tblPr)
	}
	grid := xml.AppendElement(tbl, "tblGrid")
	for range gridColumns(el) {
		xml.AppendElement(grid, "gridCol")
	}
	for _, row := range el.Elements() {
		if row.Interface() != element.CapRow {
			return w.fail(row.Interface(), "not allowed inside a table")
		}
		tr := xml.AppendElement(tbl, "tr")
		properties(w.r.row, row, tr, "trPr")
		for _, cell := range row.Elements() {
			if cell.Interface() != element.CapCell {
				return w.fail(cell.Interface(), "not allowed inside a row")
			}
			if err := w.cell(tr, cell, depth+2); err != nil {
				return err
			}
		}
	}
	return nil
}

func (w *walk) cell(tr *xml.Node, el element.Element, depth int) error {
	tc := xml.AppendElement(tr, "tc")
	properties(w.r.cell, el, tc, "tcPr")
	for _, child := range el.Elements() {
		if err := w.block(tc, child, depth+1); err != nil {
			return err
		}
	}
	// A cell must end with a paragraph.
	if last := tc.LastChild; last == nil || xml.QName(last) != "w:p" {
		xml.AppendElement(tc, "p")
	}
	return nil
}

// gridColumns returns the widest row of a table in grid columns, counting
// gridSpan on cells.
func gridColumns(tbl element.Element) int {
	widest := 0
	for _, row := range tbl.Elements() {
		n := 0
		for _, cell := range row.Elements() {
			span := 1
			for _, name := range []string{"span", "colspan", "gridSpan"} {
				if v, ok := cell.Properties().Get(name); ok && v.Int() > 1 {
					span = int(v.Int())
				}
			}
			n += span
		}
		widest = max(widest, n)
	}
	return widest
}

func (r *Renderer) debug(format string, args ...interface{}) {
	if r.logger != nil {
		r.logger.Debug(format, args...)
	}
}
