package formatter

// SectionDialect covers section properties (w:sectPr): page size, margins
// and columns.
var SectionDialect = Dialect{
	Name: "section",
	Aliases: map[string]string{
		"pageSize":    "pgSz",
		"size":        "pgSz",
		"margins":     "pgMar",
		"margin":      "pgMar",
		"columns":     "cols",
		"titlePage":   "titlePg",
		"lineNumbers": "lnNumType",
	},
	Types: map[string]string{
		"pgSz":      TagPageSize,
		"pgMar":     TagMargins,
		"cols":      TagAttrs,
		"lnNumType": TagAttrs,
		"type":      TagText,
		"titlePg":   TagBool,
		"bidi":      TagBool,
	},
	Encoders: map[string]Encoder{
		TagPageSize: encodePageSize,
		TagMargins:  encodeMargins,
		TagAttrs:    Attrs("num"),
	},
}

// Section returns a formatter for section properties.
func Section(opts ...Option) *Formatter {
	return New(SectionDialect, opts...)
}
