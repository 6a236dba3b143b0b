package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benjaminschreck/go-opendoc/pkg/opendoc/element"
	"github.com/benjaminschreck/go-opendoc/pkg/opendoc/xml"
)

// attrs collects the w: attributes of n in order.
func attrs(n *xml.Node) map[string]string {
	out := make(map[string]string)
	for _, a := range n.Attr {
		out[a.Name.Local] = a.Value
	}
	return out
}

func format(t *testing.T, f *Formatter, props ...element.Property) *xml.Node {
	t.Helper()
	root := xml.NewElement("pr")
	f.Format(newElement(t, props...), root)
	return root
}

func TestRunDialect(t *testing.T) {
	root := format(t, Run(),
		element.P("bold", true),
		element.P("italic", "no"),
		element.P("size", 10.5),
		element.P("color", "#ff0000"),
		element.P("underline", true),
		element.P("font", "Arial"),
		element.P("style", "Emphasis"),
		element.P("spacing", "20"),
	)

	var names []string
	for _, c := range xml.Children(root) {
		names = append(names, xml.QName(c))
	}
	assert.Equal(t, []string{"w:b", "w:i", "w:sz", "w:szCs", "w:color", "w:u", "w:rFonts", "w:rStyle", "w:spacing"}, names)

	assert.Equal(t, "on", xml.Attr(xml.Child(root, "b"), "val"))
	assert.Equal(t, "off", xml.Attr(xml.Child(root, "i"), "val"))
	assert.Equal(t, "21", xml.Attr(xml.Child(root, "sz"), "val"))
	assert.Equal(t, "21", xml.Attr(xml.Child(root, "szCs"), "val"))
	assert.Equal(t, "FF0000", xml.Attr(xml.Child(root, "color"), "val"))
	assert.Equal(t, "single", xml.Attr(xml.Child(root, "u"), "val"))
	assert.Equal(t, map[string]string{"ascii": "Arial", "hAnsi": "Arial", "eastAsia": "Arial", "cs": "Arial"}, attrs(xml.Child(root, "rFonts")))
	assert.Equal(t, "Emphasis", xml.Attr(xml.Child(root, "rStyle"), "val"))
	assert.Equal(t, "20", xml.Attr(xml.Child(root, "spacing"), "val"))
}

func TestUnderlineStyles(t *testing.T) {
	root := format(t, Run(), element.P("u", "double"))
	assert.Equal(t, "double", xml.Attr(xml.Child(root, "u"), "val"))

	root = format(t, Run(), element.P("underline", false))
	assert.Equal(t, "none", xml.Attr(xml.Child(root, "u"), "val"))
}

func TestHalfPointIgnoresNonPositive(t *testing.T) {
	for _, v := range []any{0, -3, "big", nil} {
		root := format(t, Run(), element.P("size", v))
		assert.Nil(t, root.FirstChild, "%v", v)
	}
}

func TestParagraphDialect(t *testing.T) {
	root := format(t, Paragraph(),
		element.P("style", "Heading1"),
		element.P("keepNext", "yes"),
		element.P("align", "center"),
		element.P("spacing", map[string]any{"before": 240, "after": 120}),
		element.P("indent", 720),
		element.P("outline", "1"),
		element.P("shading", "#EEEEEE"),
	)

	assert.Equal(t, "Heading1", xml.Attr(xml.Child(root, "pStyle"), "val"))
	assert.Equal(t, "on", xml.Attr(xml.Child(root, "keepNext"), "val"))
	assert.Equal(t, "center", xml.Attr(xml.Child(root, "jc"), "val"))
	assert.Equal(t, map[string]string{"after": "120", "before": "240"}, attrs(xml.Child(root, "spacing")))
	assert.Equal(t, map[string]string{"left": "720"}, attrs(xml.Child(root, "ind")))
	assert.Equal(t, "1", xml.Attr(xml.Child(root, "outlineLvl"), "val"))
	assert.Equal(t, map[string]string{"val": "clear", "color": "auto", "fill": "EEEEEE"}, attrs(xml.Child(root, "shd")))

	root = format(t, Paragraph(), element.P("spacing", 200))
	assert.Equal(t, map[string]string{"after": "200"}, attrs(xml.Child(root, "spacing")))
}

func TestParagraphSpaceEdges(t *testing.T) {
	root := format(t, Paragraph(),
		element.P("spaceBefore", 240),
		element.P("keepNext", true),
		element.P("after", "120"),
		element.P("lineSpacing", nil),
	)
	// both edges share one w:spacing
	require.Len(t, xml.Children(root), 2)
	assert.Equal(t, map[string]string{"before": "240", "after": "120"}, attrs(xml.Child(root, "spacing")))
}

func TestParagraphSpacingMerge(t *testing.T) {
	t.Run("edge and compound share one element", func(t *testing.T) {
		root := format(t, Paragraph(),
			element.P("before", 120),
			element.P("jc", "left"),
			element.P("spacing", map[string]any{"after": 240, "line": 360}),
			element.P("line", 300),
		)
		var names []string
		for _, c := range xml.Children(root) {
			names = append(names, xml.QName(c))
		}
		assert.Equal(t, []string{"w:spacing", "w:jc"}, names)
		assert.Equal(t, map[string]string{"before": "120", "after": "240", "line": "300"}, attrs(xml.Child(root, "spacing")))
	})

	t.Run("existing children are left alone", func(t *testing.T) {
		root := xml.NewElement("pPr")
		own := xml.AppendElement(root, "spacing")
		xml.SetAttr(own, "after", "1")

		Paragraph().Format(newElement(t, element.P("before", 120), element.P("after", 80)), root)

		kids := xml.Children(root)
		require.Len(t, kids, 2)
		assert.Same(t, own, kids[0])
		assert.Equal(t, map[string]string{"after": "1"}, attrs(kids[0]))
		assert.Equal(t, map[string]string{"before": "120", "after": "80"}, attrs(kids[1]))
	})

	t.Run("process alone appends", func(t *testing.T) {
		root := xml.NewElement("pPr")
		f := Paragraph()
		f.Process(TagSpaceEdge, "before", element.Int(10), nil, root)
		f.Process(TagSpaceEdge, "after", element.Int(20), nil, root)
		assert.Len(t, xml.Children(root), 2)
	})
}

func TestBorderEncoder(t *testing.T) {
	t.Run("scalar applies to four sides", func(t *testing.T) {
		root := format(t, Paragraph(), element.P("border", "double"))
		pBdr := xml.Child(root, "pBdr")
		require.NotNil(t, pBdr)
		var sides []string
		for _, c := range xml.Children(pBdr) {
			sides = append(sides, c.Data)
			assert.Equal(t, map[string]string{"val": "double", "sz": "4", "space": "0", "color": "auto"}, attrs(c))
		}
		assert.Equal(t, []string{"top", "left", "bottom", "right"}, sides)
	})

	t.Run("sides are ordered and merged with defaults", func(t *testing.T) {
		p := &element.Properties{}
		p.Set("bottom", element.MustValue(map[string]any{"sz": 12, "color": "FF0000"}))
		p.Set("top", element.Bool(true))
		p.Set("right", element.Null())
		root := format(t, Paragraph(), element.Property{Name: "pBdr", Value: element.Array(p)})

		kids := xml.Children(xml.Child(root, "pBdr"))
		require.Len(t, kids, 2)
		assert.Equal(t, "top", kids[0].Data)
		assert.Equal(t, "single", xml.Attr(kids[0], "val"))
		assert.Equal(t, "bottom", kids[1].Data)
		assert.Equal(t, map[string]string{"val": "single", "sz": "12", "space": "0", "color": "FF0000"}, attrs(kids[1]))
	})

	t.Run("single edge applies to four sides", func(t *testing.T) {
		root := format(t, Paragraph(), element.P("border", map[string]any{"val": "double", "sz": 8}))
		kids := xml.Children(xml.Child(root, "pBdr"))
		require.Len(t, kids, 4)
		for i, side := range []string{"top", "left", "bottom", "right"} {
			assert.Equal(t, side, kids[i].Data)
			assert.Equal(t, map[string]string{"val": "double", "sz": "8", "space": "0", "color": "auto"}, attrs(kids[i]))
		}
	})

	t.Run("false means none", func(t *testing.T) {
		root := format(t, Table(), element.P("border", false))
		top := xml.Child(xml.Child(root, "tblBorders"), "top")
		assert.Equal(t, "none", xml.Attr(top, "val"))
	})

	t.Run("empty value writes nothing", func(t *testing.T) {
		root := format(t, Paragraph(), element.P("border", ""))
		assert.Nil(t, root.FirstChild)
	})
}

func TestTableDialects(t *testing.T) {
	root := format(t, Table(),
		element.P("style", "TableGrid"),
		element.P("width", "100%"),
		element.P("indent", 120),
		element.P("layout", "fixed"),
	)
	assert.Equal(t, "TableGrid", xml.Attr(xml.Child(root, "tblStyle"), "val"))
	assert.Equal(t, map[string]string{"w": "5000", "type": "pct"}, attrs(xml.Child(root, "tblW")))
	assert.Equal(t, map[string]string{"w": "120", "type": "dxa"}, attrs(xml.Child(root, "tblInd")))
	assert.Equal(t, "fixed", xml.Attr(xml.Child(root, "tblLayout"), "type"))

	root = format(t, Cell(),
		element.P("width", "auto"),
		element.P("span", 2),
		element.P("vmerge", "restart"),
		element.P("valign", "center"),
	)
	assert.Equal(t, map[string]string{"w": "0", "type": "auto"}, attrs(xml.Child(root, "tcW")))
	assert.Equal(t, "2", xml.Attr(xml.Child(root, "gridSpan"), "val"))
	assert.Equal(t, "restart", xml.Attr(xml.Child(root, "vMerge"), "val"))
	assert.Equal(t, "center", xml.Attr(xml.Child(root, "vAlign"), "val"))

	root = format(t, Row(),
		element.P("header", true),
		element.P("height", map[string]any{"val": 400, "hRule": "exact"}),
	)
	assert.Equal(t, "on", xml.Attr(xml.Child(root, "tblHeader"), "val"))
	assert.Equal(t, map[string]string{"val": "400", "hRule": "exact"}, attrs(xml.Child(root, "trHeight")))
}

func TestSectionDialect(t *testing.T) {
	root := format(t, Section(),
		element.P("pageSize", map[string]any{"size": "A4", "orient": "landscape"}),
		element.P("margins", 1440),
		element.P("columns", 2),
		element.P("titlePage", true),
	)
	assert.Equal(t, map[string]string{"w": "16838", "h": "11906", "orient": "landscape"}, attrs(xml.Child(root, "pgSz")))
	assert.Equal(t, map[string]string{"top": "1440", "right": "1440", "bottom": "1440", "left": "1440"}, attrs(xml.Child(root, "pgMar")))
	assert.Equal(t, "2", xml.Attr(xml.Child(root, "cols"), "num"))
	assert.Equal(t, "on", xml.Attr(xml.Child(root, "titlePg"), "val"))

	root = format(t, Section(), element.P("size", "letter"))
	assert.Equal(t, map[string]string{"w": "12240", "h": "15840"}, attrs(xml.Child(root, "pgSz")))

	root = format(t, Section(), element.P("size", "unknown"))
	assert.Nil(t, root.FirstChild)
}

func TestOnOff(t *testing.T) {
	tests := []struct {
		in   element.Value
		want string
		ok   bool
	}{
		{element.Null(), "", false},
		{element.Bool(true), On, true},
		{element.Bool(false), Off, true},
		{element.String("YES"), On, true},
		{element.String("On"), On, true},
		{element.String("true"), On, true},
		{element.String("1"), On, true},
		{element.Int(1), On, true},
		{element.String("0"), Off, true},
		{element.Int(0), Off, true},
		{element.String("No"), Off, true},
		{element.String("FALSE"), Off, true},
		{element.String("off"), Off, true},
		{element.String("maybe"), "", false},
		{element.String("1.0"), On, true},
		{element.String("+1"), On, true},
		{element.String(" 1"), On, true},
		{element.String("1e0"), On, true},
		{element.String("00"), Off, true},
		{element.String("0.0"), Off, true},
		{element.String("2"), "", false},
		{element.String("1px"), "", false},
		{element.String("inf"), "", false},
		{element.String(""), "", false},
		{element.Int(2), "", false},
		{element.Float(1.5), "", false},
		{element.MustValue([]any{"on"}), "", false},
	}
	for _, tt := range tests {
		got, ok := GetOnOff(tt.in)
		assert.Equal(t, tt.want, got, "%v", tt.in.Interface())
		assert.Equal(t, tt.ok, ok, "%v", tt.in.Interface())
	}
}
