// Package value is the document model shared by every other package in
// jsonschemadoc.
//
// A [Value] is a closed tagged variant: null, boolean, number, string, array or
// object. Objects keep their members in source order, and numbers keep their
// source literal, so rendering a value back to text with [Marshal] is
// deterministic and byte-stable.
//
// Documents are decoded with [DecodeJSON] (a token stream from
// github.com/goccy/go-json) or [DecodeYAML] (a yaml.Node tree from
// go.yaml.in/yaml/v4). Both report syntax errors as
// *schemaerrors.MalformedDocumentError, so callers never see a decoding
// library's own error types.
//
// Values are immutable by convention once decoding returns; [Object.Set] exists
// for building documents and must not be called on a value that is shared.
package value
