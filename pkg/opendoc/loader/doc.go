// Package loader builds a document model from a YAML description.
//
// A description looks like this:
//
//	sections:
//	  - name: body
//	    properties:
//	      pageSize: A4
//	      margins: 1440
//	    elements:
//	      - type: paragraph
//	        properties: {align: center, spaceAfter: 120}
//	        elements:
//	          - type: run
//	            text: Hello
//	            properties: {bold: true}
//	          - type: break
//	            break: page
//	      - type: table
//	        properties: {style: TableGrid}
//	        elements:
//	          - type: row
//	            elements:
//	              - type: cell
//	                elements:
//	                  - {type: paragraph, text: cell text}
//
// Property mappings keep their source order. Scalars keep their YAML type,
// so `bold: true` is a bool and `bold: "true"` a string.
package loader
