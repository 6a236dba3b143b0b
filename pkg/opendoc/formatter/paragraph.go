package formatter

// ParagraphDialect covers paragraph properties (w:pPr).
var ParagraphDialect = Dialect{
	Name: "paragraph",
	Aliases: map[string]string{
		"align":       "jc",
		"alignment":   "jc",
		"style":       "pStyle",
		"indent":      "ind",
		"indentation": "ind",
		"border":      "pBdr",
		"borders":     "pBdr",
		"shading":     "shd",
		"outline":     "outlineLvl",
		"before":      "spaceBefore",
		"after":       "spaceAfter",
		"line":        "lineSpacing",
	},
	Types: map[string]string{
		"keepNext":            TagBool,
		"keepLines":           TagBool,
		"pageBreakBefore":     TagBool,
		"widowControl":        TagBool,
		"suppressLineNumbers": TagBool,
		"contextualSpacing":   TagBool,
		"bidi":                TagBool,
		"jc":                  TagText,
		"pStyle":              TagText,
		"textAlignment":       TagText,
		"outlineLvl":          TagDecimal,
		"spacing":             TagSpacing,
		"spaceBefore":         TagSpaceEdge,
		"spaceAfter":          TagSpaceEdge,
		"lineSpacing":         TagSpaceEdge,
		"ind":                 TagIndent,
		"pBdr":                TagBorder,
		"shd":                 TagShading,
	},
	Encoders: map[string]Encoder{
		TagSpacing:   Attrs("after"),
		TagSpaceEdge: encodeSpaceEdge,
		TagIndent:    Attrs("left"),
		TagBorder:    encodeBorder,
		TagShading:   encodeShading,
	},
	Merge: []string{"spacing"},
}

// Paragraph returns a formatter for paragraph properties.
func Paragraph(opts ...Option) *Formatter {
	return New(ParagraphDialect, opts...)
}
