package formatter

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/benjaminschreck/go-opendoc/pkg/opendoc/element"
	"github.com/benjaminschreck/go-opendoc/pkg/opendoc/xml"
)

// Dialect specific type tags.
const (
	TagAttrs     = "attrs"
	TagSpacing   = "spacing"
	TagSpaceEdge = "spaceedge"
	TagIndent    = "indent"
	TagBorder    = "border"
	TagShading   = "shading"
	TagHalfPoint = "halfpoint"
	TagColor     = "color"
	TagUnderline = "underline"
	TagFonts     = "fonts"
	TagWidth     = "width"
	TagPageSize  = "pagesize"
	TagMargins   = "margins"
)

// Attrs returns an encoder writing a compound value as a single element
// with one attribute per entry. A scalar value is written under scalarKey.
func Attrs(scalarKey string) Encoder {
	return func(f *Formatter, name string, val element.Value, _ element.Element, root *xml.Node) bool {
		bag := val.AsArray()
		if bag == nil {
			return f.AppendSimpleValueKey(root, name, val, scalarKey)
		}
		appendAttrs(root, name, bag)
		return true
	}
}

// appendAttrs appends <w:name> carrying every scalar entry of bag as an
// attribute. Nothing is appended when no entry survives.
func appendAttrs(root *xml.Node, name string, bag *element.Properties) *xml.Node {
	var node *xml.Node
	for key, v := range bag.All() {
		s, ok := attrValue(v)
		if !ok {
			continue
		}
		if node == nil {
			node = xml.NewElement(name)
		}
		xml.SetAttr(node, key, s)
	}
	if node != nil {
		xml.Append(root, node)
	}
	return node
}

// attrValue renders a scalar for use as an attribute value.
func attrValue(v element.Value) (string, bool) {
	if _, ok := v.AsBool(); ok {
		return GetOnOff(v)
	}
	if v.Kind() == element.KindArray {
		return "", false
	}
	s := v.String()
	return s, s != ""
}

var spacingEdges = map[string]string{
	"spaceBefore": "before",
	"spaceAfter":  "after",
	"lineSpacing": "line",
}

// encodeSpaceEdge writes one attribute of w:spacing. Formatters built
// with the paragraph dialect merge the edges into a single element.
func encodeSpaceEdge(_ *Formatter, name string, val element.Value, _ element.Element, root *xml.Node) bool {
	attr, ok := spacingEdges[name]
	if !ok || val.IsNull() {
		return true
	}
	xml.SetAttr(xml.AppendElement(root, "spacing"), attr, strconv.FormatInt(val.Int(), 10))
	return true
}

var borderSides = []string{"top", "left", "start", "bottom", "right", "end", "between", "bar", "insideH", "insideV", "tl2br", "tr2bl"}

// encodeBorder writes a border container such as w:pBdr with one child per
// side. A scalar value (or a side given as a scalar) is a border style;
// true means single and false means none. A compound value without side
// names is one edge applied to all four sides. Sides are emitted in schema
// order.
func encodeBorder(_ *Formatter, name string, val element.Value, _ element.Element, root *xml.Node) bool {
	bag := val.AsArray()
	if bag == nil {
		style, ok := borderStyle(val)
		if !ok {
			return true
		}
		bag = fourSides(element.String(style))
	} else if bag.Len() > 0 && !slices.ContainsFunc(bag.Names(), isBorderSide) {
		// a bag without side names describes one edge
		bag = fourSides(val)
	}
	names := bag.Names()
	slices.SortStableFunc(names, func(a, b string) int {
		return sideRank(a) - sideRank(b)
	})
	var container *xml.Node
	for _, side := range names {
		v, _ := bag.Get(side)
		edge := v.AsArray()
		if edge == nil {
			style, ok := borderStyle(v)
			if !ok {
				continue
			}
			edge = &element.Properties{}
			edge.Set("val", element.String(style))
		}
		edge = withDefaults(edge, []element.Property{
			{Name: "val", Value: element.String("single")},
			{Name: "sz", Value: element.Int(4)},
			{Name: "space", Value: element.Int(0)},
			{Name: "color", Value: element.String("auto")},
		})
		if container == nil {
			container = xml.NewElement(name)
		}
		appendAttrs(container, side, edge)
	}
	if container != nil {
		xml.Append(root, container)
	}
	return true
}

func fourSides(v element.Value) *element.Properties {
	bag := &element.Properties{}
	for _, side := range []string{"top", "left", "bottom", "right"} {
		bag.Set(side, v)
	}
	return bag
}

func isBorderSide(name string) bool {
	return slices.Contains(borderSides, name)
}

func sideRank(side string) int {
	if i := slices.Index(borderSides, side); i >= 0 {
		return i
	}
	return len(borderSides)
}

func borderStyle(v element.Value) (string, bool) {
	if b, ok := v.AsBool(); ok {
		if b {
			return "single", true
		}
		return "none", true
	}
	s := v.String()
	return s, s != "" && v.Kind() != element.KindArray
}

// withDefaults returns a copy of bag with defaults filled in. Defaults come
// first so the attribute order is stable.
func withDefaults(bag *element.Properties, defaults []element.Property) *element.Properties {
	out := &element.Properties{}
	for _, d := range defaults {
		if v, ok := bag.Get(d.Name); ok {
			out.Set(d.Name, v)
		} else {
			out.Set(d.Name, d.Value)
		}
	}
	for k, v := range bag.All() {
		if !out.Has(k) {
			out.Set(k, v)
		}
	}
	return out
}

// encodeShading writes w:shd. A scalar is taken as the fill colour.
func encodeShading(_ *Formatter, name string, val element.Value, _ element.Element, root *xml.Node) bool {
	bag := val.AsArray()
	if bag == nil {
		fill := normalizeColor(val.String())
		if fill == "" {
			return true
		}
		bag = &element.Properties{}
		bag.Set("fill", element.String(fill))
	} else if v, ok := bag.Get("fill"); ok {
		bag = bag.Clone()
		bag.Set("fill", element.String(normalizeColor(v.String())))
	}
	appendAttrs(root, name, withDefaults(bag, []element.Property{
		{Name: "val", Value: element.String("clear")},
		{Name: "color", Value: element.String("auto")},
	}))
	return true
}

// encodeHalfPoint converts a size in points into half-points and writes it
// to both the name and its complex script twin (sz and szCs).
func encodeHalfPoint(f *Formatter, name string, val element.Value, _ element.Element, root *xml.Node) bool {
	if val.IsNull() {
		return true
	}
	half := int64(math.Round(val.Float() * 2))
	if half <= 0 {
		return true
	}
	v := element.Int(half)
	f.AppendSimpleValue(root, name, v)
	return f.AppendSimpleValue(root, name+"Cs", v)
}

func encodeColor(f *Formatter, name string, val element.Value, _ element.Element, root *xml.Node) bool {
	return f.AppendSimpleValue(root, name, element.String(normalizeColor(val.String())))
}

func normalizeColor(s string) string {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if strings.EqualFold(s, "auto") {
		return "auto"
	}
	return strings.ToUpper(s)
}

// encodeUnderline accepts a style name (double, wave, ...) or an on/off
// toggle which becomes single/none.
func encodeUnderline(f *Formatter, name string, val element.Value, _ element.Element, root *xml.Node) bool {
	if s, ok := GetOnOff(val); ok {
		style := "single"
		if s == Off {
			style = "none"
		}
		return f.AppendSimpleValue(root, name, element.String(style))
	}
	return f.AppendSimpleValue(root, name, val)
}

// encodeFonts writes w:rFonts. A scalar font name applies to every script.
func encodeFonts(_ *Formatter, name string, val element.Value, _ element.Element, root *xml.Node) bool {
	bag := val.AsArray()
	if bag == nil {
		font := val.String()
		if font == "" {
			return true
		}
		bag = &element.Properties{}
		for _, script := range []string{"ascii", "hAnsi", "eastAsia", "cs"} {
			bag.Set(script, element.String(font))
		}
	}
	appendAttrs(root, name, bag)
	return true
}

// encodeWidth writes a table measure: "auto", a percentage ("50%", stored
// in fiftieths of a percent) or twentieths of a point.
func encodeWidth(_ *Formatter, name string, val element.Value, _ element.Element, root *xml.Node) bool {
	if bag := val.AsArray(); bag != nil {
		appendAttrs(root, name, bag)
		return true
	}
	if val.IsNull() {
		return true
	}
	w, typ := "0", "auto"
	s := strings.TrimSpace(val.String())
	switch {
	case strings.EqualFold(s, "auto") || s == "":
	case strings.HasSuffix(s, "%"):
		pct := element.String(strings.TrimSuffix(s, "%")).Float()
		w, typ = strconv.FormatInt(int64(math.Round(pct*50)), 10), "pct"
	default:
		w, typ = strconv.FormatInt(val.Int(), 10), "dxa"
	}
	node := xml.AppendElement(root, name)
	xml.SetAttr(node, "w", w)
	xml.SetAttr(node, "type", typ)
	return true
}

// Page sizes in twentieths of a point, portrait.
var pageSizes = map[string][2]int64{
	"a3":     {16838, 23811},
	"a4":     {11906, 16838},
	"a5":     {8391, 11906},
	"letter": {12240, 15840},
	"legal":  {12240, 20160},
}

// encodePageSize writes w:pgSz from a paper name or explicit w/h/orient.
func encodePageSize(_ *Formatter, name string, val element.Value, _ element.Element, root *xml.Node) bool {
	bag := val.AsArray()
	if bag == nil {
		bag = &element.Properties{}
		bag.Set("size", val)
	} else {
		bag = bag.Clone()
	}
	if v, ok := bag.Get("size"); ok {
		bag.Delete("size")
		if dims, known := pageSizes[strings.ToLower(v.String())]; known {
			bag = withDefaults(bag, []element.Property{
				{Name: "w", Value: element.Int(dims[0])},
				{Name: "h", Value: element.Int(dims[1])},
			})
		}
	}
	if o, ok := bag.Get("orient"); ok && strings.EqualFold(o.String(), "landscape") {
		w, _ := bag.Get("w")
		h, _ := bag.Get("h")
		if w.Int() < h.Int() {
			bag.Set("w", h)
			bag.Set("h", w)
		}
	}
	appendAttrs(root, name, bag)
	return true
}

// encodeMargins writes w:pgMar. A scalar sets all four edges.
func encodeMargins(_ *Formatter, name string, val element.Value, _ element.Element, root *xml.Node) bool {
	bag := val.AsArray()
	if bag == nil {
		if val.IsNull() {
			return true
		}
		m := element.Int(val.Int())
		bag = &element.Properties{}
		for _, edge := range []string{"top", "right", "bottom", "left"} {
			bag.Set(edge, m)
		}
	}
	appendAttrs(root, name, bag)
	return true
}
