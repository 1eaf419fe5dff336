// Package schemaerrors provides structured error types for jsonschemadoc.
//
// Import path: github.com/erraggy/jsonschemadoc/schemaerrors
//
// Every failure surfaced by loading, resolving or flattening a schema is one of
// the types below, so callers can branch with [errors.Is] and [errors.As]
// without depending on a particular decoding library's error types.
//
// # Error Types
//
//   - [MalformedDocumentError]: the input is not well-formed JSON or YAML
//   - [ReferenceError]: a $ref pointer is dangling or part of a cycle
//   - [ConfigError]: invalid options passed to the parser
//
// # Sentinel Errors
//
//   - [ErrMalformedDocument]: matches any [MalformedDocumentError]
//   - [ErrReference]: matches any [ReferenceError]
//   - [ErrDanglingReference]: matches [ReferenceError] with IsCircular=false
//   - [ErrCyclicReference]: matches [ReferenceError] with IsCircular=true
//   - [ErrConfig]: matches any [ConfigError]
//
// # Usage
//
//	result, err := parser.ParseWithOptions(parser.WithFilePath("schema.json"))
//	if errors.Is(err, schemaerrors.ErrCyclicReference) {
//	    // the document refers back into itself
//	}
//
//	var malformed *schemaerrors.MalformedDocumentError
//	if errors.As(err, &malformed) {
//	    fmt.Printf("syntax error at %d:%d\n", malformed.Line, malformed.Column)
//	}
//
// None of these errors are retryable: a partially resolved schema would
// document the wrong constraints, so every operation fails as a whole.
package schemaerrors
