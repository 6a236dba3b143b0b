// Package opendoc renders a document model into WordprocessingML.
//
// A document is a list of sections holding paragraphs and tables; every
// element carries a free-form property bag such as {"bold": true} or
// {"spaceAfter": 120}. Formatters translate those bags into the matching
// property containers (w:pPr, w:rPr, w:tblPr, w:trPr, w:tcPr, w:sectPr).
//
// Basic Usage:
//
//	doc := element.NewDocument()
//	s, _ := element.NewSection("body", map[string]any{"pageSize": "A4"})
//	p, _ := element.NewParagraph(map[string]any{"align": "center"})
//	p.AddText("Hello", map[string]any{"bold": true})
//	s.AddElement(p)
//	doc.AddSection(s)
//
//	if err := opendoc.RenderDocument(os.Stdout, doc); err != nil {
//	    log.Fatal(err)
//	}
//
// Documents can also be described in YAML and rendered from a file:
//
//	err := opendoc.RenderFile("report.yaml", "document.xml")
//
// # Configuration
//
// The global configuration is read from the environment on start:
// OPENDOC_LOG_LEVEL, OPENDOC_MAX_DEPTH, OPENDOC_REPORT_UNKNOWN and
// OPENDOC_MERGE_RUNS. LoadConfigFile reads the same keys from YAML.
//
// Properties no formatter understands are skipped. Set ReportUnknown to log
// a warning for each of them.
package opendoc
