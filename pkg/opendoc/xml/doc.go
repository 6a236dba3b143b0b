// Package xml provides the WordprocessingML node helpers used by the
// formatters and the renderer.
//
// Output trees are github.com/antchfx/xmlquery nodes. Element and attribute
// names default to the w: prefix, so callers write
//
//	pPr := xml.AppendElement(p, "pPr")
//	xml.SetAttr(xml.AppendElement(pPr, "jc"), "val", "center")
//
// to produce <w:pPr><w:jc w:val="center"/></w:pPr>.
//
// # XML Namespaces
//
//   - w: (word processing) - Main WordprocessingML namespace
//   - r: (relationships) - Relationships namespace
package xml
