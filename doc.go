// Package jsonschemadoc documents JSON Schema documents as tables.
//
// A schema is decoded into an order-preserving value tree, its local $ref
// pointers are replaced by their targets, and every property and array
// element it describes is flattened into a row of name, type label,
// description and validation sentences:
//
//	name                 string (required)   Its length must be less than or equal to 64
//	address              object
//	address.prefecture   string
//	tags[]               array               Its elements must be unique
//
// # Packages
//
//   - value: the document model, JSON and YAML decoders, canonical JSON output
//   - parser: loading from files, URLs, readers and bytes; $ref resolution
//   - schema: node classification, validation sentences, flattening and rows
//   - schemaerrors: the error taxonomy shared by every package
//
// # Quick Start
//
//	import "github.com/erraggy/jsonschemadoc/parser"
//
//	result, err := parser.ParseWithOptions(parser.WithFilePath("person.schema.json"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	rows, err := result.Rows()
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, row := range rows {
//		fmt.Printf("%s\t%s\t%s\n", row.Name, row.DisplayType(), strings.Join(row.Validations, "; "))
//	}
//
// The jsonschemadoc command renders the same rows as text, reStructuredText,
// Markdown, JSON or YAML, and serves them to MCP clients over stdio.
package jsonschemadoc
