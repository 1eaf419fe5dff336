// Package parser loads JSON Schema documents.
//
// Loading decodes the source (JSON or YAML, from a file, URL, reader or byte
// slice), replaces every local $ref with its target and classifies the root
// schema node. The result is ready for documentation:
//
//	result, err := parser.ParseWithOptions(
//		parser.WithFilePath("person.schema.json"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	rows, err := result.Rows()
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, row := range rows {
//		fmt.Println(row.Name, row.DisplayType())
//	}
//
// Or create a reusable Parser instance:
//
//	p := parser.New()
//	p.Logger = parser.NewSlogAdapter(slog.Default())
//	result1, _ := p.Parse("a.json")
//	result2, _ := p.Parse("https://example.com/b.yaml")
//
// # Reference Resolution
//
// Only local references ("#/definitions/address") are supported; any other
// $ref fails with a dangling *schemaerrors.ReferenceError. Pointer segments
// are percent-decoded and then unescaped per RFC 6901 ("~1" is "/", "~0" is
// "~"). Only a mapping that is exactly {"$ref": "<pointer>"} is replaced;
// the replacement is itself resolved, so chains collapse fully.
//
// A reference chain that leads back to a pointer still being resolved fails
// with a cyclic *schemaerrors.ReferenceError. Recursive schemas therefore
// cannot be loaded; there is no depth limit and no partial result.
//
// [ResolveRef] and [ResolveAllRefs] expose the resolver for documents that
// were decoded separately.
package parser
