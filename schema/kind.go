package schema

import "strconv"

// Kind is the schema kind a node is classified as.
type Kind uint8

const (
	// KindObject is the zero Kind: untyped schemas document as generic objects.
	KindObject Kind = iota
	KindNull
	KindBoolean
	KindInteger
	KindNumber
	KindString
	KindArray
)

var kindNames = [...]string{
	KindObject:  "object",
	KindNull:    "null",
	KindBoolean: "boolean",
	KindInteger: "integer",
	KindNumber:  "number",
	KindString:  "string",
	KindArray:   "array",
}

// String returns the JSON Schema type name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// IsComposite reports whether nodes of this kind have flattened descendants.
func (k Kind) IsComposite() bool {
	return k == KindArray || k == KindObject
}

// ParseKind maps a JSON Schema type name to its Kind.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return KindObject, false
}
