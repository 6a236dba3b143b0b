package formatter

// RunDialect covers character properties (w:rPr).
var RunDialect = Dialect{
	Name: "run",
	Aliases: map[string]string{
		"bold":          "b",
		"italic":        "i",
		"underline":     "u",
		"strikethrough": "strike",
		"hidden":        "vanish",
		"size":          "sz",
		"font":          "rFonts",
		"fonts":         "rFonts",
		"style":         "rStyle",
		"shading":       "shd",
	},
	Types: map[string]string{
		"b":         TagBool,
		"i":         TagBool,
		"strike":    TagBool,
		"dstrike":   TagBool,
		"caps":      TagBool,
		"smallCaps": TagBool,
		"vanish":    TagBool,
		"emboss":    TagBool,
		"imprint":   TagBool,
		"outline":   TagBool,
		"shadow":    TagBool,
		"spacing":   TagDecimal,
		"kern":      TagDecimal,
		"position":  TagDecimal,
		"w":         TagDecimal,
		"rStyle":    TagText,
		"vertAlign": TagText,
		"highlight": TagText,
		"sz":        TagHalfPoint,
		"color":     TagColor,
		"u":         TagUnderline,
		"rFonts":    TagFonts,
		"shd":       TagShading,
	},
	Encoders: map[string]Encoder{
		TagHalfPoint: encodeHalfPoint,
		TagColor:     encodeColor,
		TagUnderline: encodeUnderline,
		TagFonts:     encodeFonts,
		TagShading:   encodeShading,
	},
}

// Run returns a formatter for run properties.
func Run(opts ...Option) *Formatter {
	return New(RunDialect, opts...)
}
