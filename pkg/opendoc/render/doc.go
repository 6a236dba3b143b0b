// Package render assembles a WordprocessingML body from the document model.
//
// The walk is deliberately thin: every element is mapped onto its markup
// container (w:p, w:r, w:tbl, w:tr, w:tc) and its property bag is handed to
// the formatter for that family, which appends into w:pPr, w:rPr, w:tblPr,
// w:trPr, w:tcPr or w:sectPr. Property containers are only attached when
// a formatter wrote something, except w:tblPr which Word requires.
//
// # Sections
//
// The last section's w:sectPr closes the body. Every earlier section is
// terminated by an empty paragraph whose w:pPr holds that section's
// w:sectPr, which is how Word marks section breaks.
//
// # Run merging
//
// With Options.MergeRuns set, MergeConsecutiveRuns joins adjacent text-only
// runs whose w:rPr serializes identically.
package render
