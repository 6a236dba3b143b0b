package formatter

// TableDialect covers table properties (w:tblPr).
var TableDialect = Dialect{
	Name: "table",
	Aliases: map[string]string{
		"style":   "tblStyle",
		"width":   "tblW",
		"align":   "jc",
		"border":  "tblBorders",
		"borders": "tblBorders",
		"layout":  "tblLayout",
		"indent":  "tblInd",
		"shading": "shd",
		"look":    "tblLook",
	},
	Types: map[string]string{
		"tblStyle":   TagText,
		"jc":         TagText,
		"bidiVisual": TagBool,
		"tblW":       TagWidth,
		"tblInd":     TagWidth,
		"tblBorders": TagBorder,
		"tblLayout":  TagAttrs,
		"tblLook":    TagAttrs,
		"shd":        TagShading,
	},
	Encoders: map[string]Encoder{
		TagWidth:   encodeWidth,
		TagBorder:  encodeBorder,
		TagAttrs:   Attrs("type"),
		TagShading: encodeShading,
	},
}

// RowDialect covers table row properties (w:trPr).
var RowDialect = Dialect{
	Name: "row",
	Aliases: map[string]string{
		"height": "trHeight",
		"header": "tblHeader",
		"align":  "jc",
	},
	Types: map[string]string{
		"tblHeader": TagBool,
		"cantSplit": TagBool,
		"hidden":    TagBool,
		"jc":        TagText,
		"trHeight":  TagAttrs,
	},
	Encoders: map[string]Encoder{
		TagAttrs: Attrs("val"),
	},
}

// CellDialect covers table cell properties (w:tcPr).
var CellDialect = Dialect{
	Name: "cell",
	Aliases: map[string]string{
		"width":   "tcW",
		"span":    "gridSpan",
		"colspan": "gridSpan",
		"vmerge":  "vMerge",
		"valign":  "vAlign",
		"shading": "shd",
		"border":  "tcBorders",
		"borders": "tcBorders",
		"nowrap":  "noWrap",
	},
	Types: map[string]string{
		"tcW":       TagWidth,
		"gridSpan":  TagDecimal,
		"vMerge":    TagText,
		"vAlign":    TagText,
		"noWrap":    TagBool,
		"shd":       TagShading,
		"tcBorders": TagBorder,
	},
	Encoders: map[string]Encoder{
		TagWidth:   encodeWidth,
		TagShading: encodeShading,
		TagBorder:  encodeBorder,
	},
}

// Table returns a formatter for table properties.
func Table(opts ...Option) *Formatter {
	return New(TableDialect, opts...)
}

// Row returns a formatter for table row properties.
func Row(opts ...Option) *Formatter {
	return New(RowDialect, opts...)
}

// Cell returns a formatter for table cell properties.
func Cell(opts ...Option) *Formatter {
	return New(CellDialect, opts...)
}
