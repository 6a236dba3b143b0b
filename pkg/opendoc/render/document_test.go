package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benjaminschreck/go-opendoc/pkg/opendoc/element"
	"github.com/benjaminschreck/go-opendoc/pkg/opendoc/xml"
)

func buildDoc(t *testing.T, sections ...*element.Section) *element.Document {
	t.Helper()
	doc := element.NewDocument()
	for _, s := range sections {
		require.NoError(t, doc.AddSection(s))
	}
	return doc
}

func section(t *testing.T, name string, props any, els ...element.Element) *element.Section {
	t.Helper()
	s, err := element.NewSection(name, props)
	require.NoError(t, err)
	for _, el := range els {
		require.NoError(t, s.AddElement(el))
	}
	return s
}

func paragraph(t *testing.T, props any, runs ...element.Element) *element.Paragraph {
	t.Helper()
	p, err := element.NewParagraph(props)
	require.NoError(t, err)
	for _, r := range runs {
		require.NoError(t, p.AddElement(r))
	}
	return p
}

func run(t *testing.T, text string, props any) *element.Run {
	t.Helper()
	r, err := element.NewRun(text, props)
	require.NoError(t, err)
	return r
}

func body(t *testing.T, doc *xml.Node) *xml.Node {
	t.Helper()
	nodes, err := xml.Select(doc, "//*[local-name()='body']")
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	return nodes[0]
}

func TestRenderParagraph(t *testing.T) {
	doc := buildDoc(t, section(t, "main", nil,
		paragraph(t, map[string]any{"align": "center"},
			run(t, "Hello ", map[string]any{"bold": true}),
			run(t, "world", nil),
		),
	))

	out, err := New(Options{}).Render(doc)
	require.NoError(t, err)

	b := body(t, out)
	kids := xml.Children(b)
	require.Len(t, kids, 2)
	assert.Equal(t, "w:p", xml.QName(kids[0]))
	assert.Equal(t, "w:sectPr", xml.QName(kids[1]))

	p := kids[0]
	pPr := xml.Child(p, "pPr")
	require.NotNil(t, pPr)
	assert.Equal(t, "center", xml.Attr(xml.Child(pPr, "jc"), "val"))

	runs := xml.Children(p)[1:]
	require.Len(t, runs, 2)
	assert.Equal(t, "on", xml.Attr(xml.Child(xml.Child(runs[0], "rPr"), "b"), "val"))
	assert.Nil(t, xml.Child(runs[1], "rPr"))
	assert.Equal(t, "Hello ", xml.Text(xml.Child(runs[0], "t")))

	s := xml.Serialize(out)
	assert.Contains(t, s, `<w:t xml:space="preserve">Hello </w:t>`)
}

func TestRenderSkipsEmptyPropertyContainers(t *testing.T) {
	doc := buildDoc(t, section(t, "main", nil,
		paragraph(t, map[string]any{"unknownProp": "x", "keepNext": "maybe"},
			run(t, "x", map[string]any{"nope": 1}),
		),
	))
	out, err := New(Options{}).Render(doc)
	require.NoError(t, err)

	p := xml.Child(body(t, out), "p")
	assert.Nil(t, xml.Child(p, "pPr"))
	assert.Nil(t, xml.Child(xml.Child(p, "r"), "rPr"))
}

func TestRenderUnknownHook(t *testing.T) {
	var unknown []string
	doc := buildDoc(t, section(t, "main", nil,
		paragraph(t, map[string]any{"sparkle": true}),
	))
	_, err := New(Options{Unknown: func(dialect, tag, name string) {
		unknown = append(unknown, dialect+":"+name)
	}}).Render(doc)
	require.NoError(t, err)
	assert.Equal(t, []string{"paragraph:sparkle"}, unknown)
}

func TestRenderBreaksAndText(t *testing.T) {
	p := paragraph(t, nil,
		element.NewText("plain"),
		element.NewBreak(element.BreakPage),
	)
	r := run(t, "a", nil)
	require.NoError(t, r.AddElement(element.NewBreak(element.BreakLine)))
	require.NoError(t, p.AddElement(r))

	out, err := New(Options{}).Render(buildDoc(t, section(t, "s", nil, p)))
	require.NoError(t, err)

	runs := xml.Children(xml.Child(body(t, out), "p"))
	require.Len(t, runs, 3)
	assert.Equal(t, "plain", xml.Text(xml.Child(runs[0], "t")))
	assert.Equal(t, "page", xml.Attr(xml.Child(runs[1], "br"), "type"))
	br := xml.Child(runs[2], "br")
	require.NotNil(t, br)
	assert.Empty(t, br.Attr)
}

func TestRenderTable(t *testing.T) {
	tbl, err := element.NewTable(map[string]any{"style": "TableGrid", "width": "100%"})
	require.NoError(t, err)

	row1, _ := element.NewRow(map[string]any{"header": true})
	c1, _ := element.NewCell(map[string]any{"span": 2})
	require.NoError(t, c1.AddElement(paragraph(t, nil, run(t, "wide", nil))))
	require.NoError(t, row1.AddElement(c1))

	row2, _ := element.NewRow(nil)
	c2, _ := element.NewCell(nil)
	c3, _ := element.NewCell(map[string]any{"valign": "bottom"})
	require.NoError(t, row2.AddElement(c2))
	require.NoError(t, row2.AddElement(c3))

	require.NoError(t, tbl.AddElement(row1))
	require.NoError(t, tbl.AddElement(row2))

	out, err := New(Options{}).Render(buildDoc(t, section(t, "s", nil, tbl)))
	require.NoError(t, err)

	wtbl := xml.Child(body(t, out), "tbl")
	require.NotNil(t, wtbl)
	tblPr := xml.Child(wtbl, "tblPr")
	assert.Equal(t, "TableGrid", xml.Attr(xml.Child(tblPr, "tblStyle"), "val"))
	assert.Len(t, xml.Children(xml.Child(wtbl, "tblGrid")), 2)

	rows, err := xml.Select(wtbl, "//*[local-name()='tr']")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "on", xml.Attr(xml.Child(xml.Child(rows[0], "trPr"), "tblHeader"), "val"))

	cells := xml.Children(rows[1])
	require.Len(t, cells, 2)
	// empty cells still end with a paragraph
	assert.Equal(t, "w:p", xml.QName(cells[0].LastChild))
	assert.Equal(t, "bottom", xml.Attr(xml.Child(xml.Child(cells[1], "tcPr"), "vAlign"), "val"))
}

func TestRenderEmptyTableKeepsTblPr(t *testing.T) {
	tbl, err := element.NewTable(nil)
	require.NoError(t, err)
	out, err := New(Options{}).Render(buildDoc(t, section(t, "s", nil, tbl)))
	require.NoError(t, err)
	assert.NotNil(t, xml.Child(xml.Child(body(t, out), "tbl"), "tblPr"))
}

func TestRenderSections(t *testing.T) {
	doc := buildDoc(t,
		section(t, "first", map[string]any{"pageSize": "A4"}, paragraph(t, nil, run(t, "one", nil))),
		section(t, "second", map[string]any{"pageSize": "letter", "margins": 720}, paragraph(t, nil, run(t, "two", nil))),
	)
	out, err := New(Options{}).Render(doc)
	require.NoError(t, err)

	kids := xml.Children(body(t, out))
	require.Len(t, kids, 4)
	assert.Equal(t, "w:p", xml.QName(kids[0]))

	brk := xml.Child(xml.Child(kids[1], "pPr"), "sectPr")
	require.NotNil(t, brk)
	assert.Equal(t, "11906", xml.Attr(xml.Child(brk, "pgSz"), "w"))

	assert.Equal(t, "w:p", xml.QName(kids[2]))
	last := kids[3]
	assert.Equal(t, "w:sectPr", xml.QName(last))
	assert.Equal(t, "12240", xml.Attr(xml.Child(last, "pgSz"), "w"))
	assert.Equal(t, "720", xml.Attr(xml.Child(last, "pgMar"), "top"))
}

func TestRenderGenericContainer(t *testing.T) {
	group, err := element.NewElement(nil)
	require.NoError(t, err)
	require.NoError(t, group.AddElement(run(t, "a", nil)))
	require.NoError(t, group.AddElement(element.NewText("b")))
	require.NoError(t, group.AddElement(paragraph(t, nil, run(t, "c", nil))))
	require.NoError(t, group.AddElement(run(t, "d", nil)))

	out, err := New(Options{}).Render(buildDoc(t, section(t, "s", nil, group)))
	require.NoError(t, err)

	paras := xml.Children(body(t, out))
	// implicit paragraph, explicit paragraph, implicit paragraph, sectPr
	require.Len(t, paras, 4)
	assert.Len(t, xml.Children(paras[0]), 2)
	assert.Len(t, xml.Children(paras[2]), 1)
}

func TestRenderErrors(t *testing.T) {
	t.Run("block level misuse", func(t *testing.T) {
		group, _ := element.NewElement(nil)
		row, _ := element.NewRow(nil)
		require.NoError(t, group.AddElement(row))
		_, err := New(Options{}).Render(buildDoc(t, section(t, "s", nil, group)))
		require.Error(t, err)
		assert.True(t, IsRenderError(err))
		assert.Contains(t, err.Error(), "section 's'")
	})

	t.Run("depth limit", func(t *testing.T) {
		outer, _ := element.NewElement(nil)
		cur := outer
		for range 5 {
			next, _ := element.NewElement(nil)
			require.NoError(t, cur.AddElement(next))
			cur = next
		}
		_, err := New(Options{MaxDepth: 3}).Render(buildDoc(t, section(t, "s", nil, outer)))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "nesting deeper than 3")

		_, err = New(Options{}).Render(buildDoc(t, section(t, "s", nil, outer)))
		assert.NoError(t, err)
	})
}

type captureLogger struct{ lines []string }

func (c *captureLogger) Debug(format string, args ...interface{}) {
	c.lines = append(c.lines, format)
}

func TestWriteTo(t *testing.T) {
	log := &captureLogger{}
	doc := buildDoc(t, section(t, "main", nil, paragraph(t, nil, run(t, "x", nil))))
	var buf bytes.Buffer
	n, err := New(Options{Logger: log}).WriteTo(&buf, doc)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.True(t, strings.HasPrefix(buf.String(), xml.Header))
	assert.Contains(t, buf.String(), "<w:document")
	assert.Len(t, log.lines, 1)
}

func TestRenderEmptyDocument(t *testing.T) {
	out, err := New(Options{}).Render(element.NewDocument())
	require.NoError(t, err)
	assert.Empty(t, xml.Children(body(t, out)))
}
