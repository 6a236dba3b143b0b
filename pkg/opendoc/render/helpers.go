package render

import (
	"github.com/benjaminschreck/go-opendoc/pkg/opendoc/xml"
)

// runPropertiesEquivalent checks if two rPr nodes produce the same formatting
func runPropertiesEquivalent(p1, p2 *xml.Node) bool {
	if p1 == nil && p2 == nil {
		return true
	}
	if (p1 == nil) != (p2 == nil) {
		return false
	}
	return xml.Serialize(p1) == xml.Serialize(p2)
}

// textRun returns the w:t children of r, or nil when r holds anything else
// besides its rPr.
func textRun(r *xml.Node) []*xml.Node {
	if xml.QName(r) != "w:r" {
		return nil
	}
	var texts []*xml.Node
	for _, c := range xml.Children(r) {
		switch xml.QName(c) {
		case "w:rPr":
		case "w:t":
			texts = append(texts, c)
		default:
			return nil
		}
	}
	return texts
}

// MergeConsecutiveRuns joins adjacent text-only runs of a w:p whose run
// properties are identical. Runs holding breaks or other content are left
// alone and end the current merge.
func MergeConsecutiveRuns(p *xml.Node) {
	var prev *xml.Node
	var prevText *xml.Node
	for c := p.FirstChild; c != nil; {
		next := c.NextSibling
		texts := textRun(c)
		if len(texts) == 0 {
			prev, prevText = nil, nil
			c = next
			continue
		}
		if prev != nil && runPropertiesEquivalent(xml.Child(prev, "rPr"), xml.Child(c, "rPr")) {
			s := xml.Text(prevText)
			for _, t := range texts {
				s += xml.Text(t)
			}
			xml.SetText(prevText, s)
			xml.Remove(c)
		} else {
			prev = c
			prevText = texts[len(texts)-1]
			if len(texts) > 1 {
				s := ""
				for _, t := range texts {
					s += xml.Text(t)
				}
				xml.SetText(texts[0], s)
				for _, t := range texts[1:] {
					xml.Remove(t)
				}
				prevText = texts[0]
			}
		}
		c = next
	}
}
