// Package schema classifies JSON Schema documents and derives their
// documentation rows.
//
// [New] classifies a decoded value as one of seven kinds (null, boolean,
// integer, number, string, array, object). A schema without a recognized
// "type" string is documented as a generic object, and a bare value where a
// schema is expected is shorthand for {"type": value}.
//
// [Node.Validations] turns the constraint keywords of a node into sentences
// such as "It must be lower than 100". [Node.Flatten] walks a node
// depth-first and yields every property and array element with a path name:
//
//	address.prefecture   property of an object property
//	tags[]               an array, or the elements of a single-schema array
//	[0], [3+]            tuple elements and additional elements
//	config.*             additionalProperties
//
// [Rows] pairs each flattened node with its type label, description and
// validations. Nodes read the document they were built from and never modify
// it; references are expected to be resolved beforehand (see package parser).
package schema
