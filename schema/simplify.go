package schema

import "github.com/erraggy/jsonschemadoc/value"

// Simplify renders v for display inside a validation sentence. A mapping
// whose only key is "type" collapses to the type itself, so {"type": "string"}
// reads as "string" and {"type": null} reads as null. Every other value
// renders as canonical JSON.
func Simplify(v value.Value) string {
	if obj, ok := v.AsObject(); ok && obj.Len() == 1 {
		if t, ok := obj.Get("type"); ok {
			return t.String()
		}
	}
	return v.String()
}
