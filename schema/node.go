package schema

import (
	"strings"

	"github.com/erraggy/jsonschemadoc/value"
)

// Node is a classified schema or sub-schema together with its location in
// the document. It holds a view into the document and never modifies it.
type Node struct {
	name     string
	raw      *value.Object
	required bool
	kind     Kind
	label    string
}

// New classifies raw and returns the node for it. A raw value that is not a
// mapping is shorthand for {"type": raw}. The kind comes from a "type" string
// naming one of the seven kinds; anything else classifies as an object.
// Array nodes get a "[]" suffix on their name.
func New(name string, raw value.Value, required bool) *Node {
	obj, ok := raw.AsObject()
	if !ok {
		obj = value.NewObject(value.Member{Key: "type", Value: raw})
	}
	n := &Node{name: name, raw: obj, required: required, kind: classify(obj)}
	if n.kind == KindArray {
		n.name += "[]"
	}
	return n
}

func classify(obj *value.Object) Kind {
	t, ok := obj.Get("type")
	if !ok {
		return KindObject
	}
	s, ok := t.AsString()
	if !ok {
		return KindObject
	}
	k, _ := ParseKind(s)
	return k
}

// Name returns the node's path name: "" for the root, dotted for object
// properties and bracketed for array elements.
func (n *Node) Name() string { return n.name }

// Kind returns the classified kind.
func (n *Node) Kind() Kind { return n.kind }

// Required reports whether the node is a property listed in its parent's
// "required" array.
func (n *Node) Required() bool { return n.required }

// Raw returns the node's schema mapping.
func (n *Node) Raw() *value.Object { return n.raw }

// Lookup returns the keyword value and whether the keyword is present.
func (n *Node) Lookup(keyword string) (value.Value, bool) {
	return n.raw.Get(keyword)
}

// Get returns the keyword value, or null when the keyword is absent.
func (n *Node) Get(keyword string) value.Value {
	v, _ := n.raw.Get(keyword)
	return v
}

// Has reports whether the keyword is present.
func (n *Node) Has(keyword string) bool {
	return n.raw.Has(keyword)
}

// Description returns the "description" keyword as text, or "".
func (n *Node) Description() string {
	v := n.Get("description")
	if v.IsNull() {
		return ""
	}
	return v.Text()
}

// Title returns the "title" keyword when it is a string.
func (n *Node) Title() string {
	s, _ := n.Get("title").AsString()
	return s
}

// Type returns the node's type label: the composite label assigned during
// flattening, otherwise the kind name.
func (n *Node) Type() string {
	if n.label != "" {
		return n.label
	}
	return n.kind.String()
}

// TypeName returns the label used for the node inside a composite array
// label. Objects with a title read as their title.
func (n *Node) TypeName() string {
	if n.kind == KindObject {
		if title := n.Title(); title != "" {
			return title
		}
	}
	return n.Type()
}

// Stringify returns the node's schema as canonical JSON.
func (n *Node) Stringify() string {
	return value.ObjectValue(n.raw).String()
}

// withLabel returns a copy of n that displays label as its type.
func (n *Node) withLabel(label string) *Node {
	c := *n
	c.label = label
	return &c
}

// baseName is the node's name without the array "[]" suffix.
func (n *Node) baseName() string {
	return strings.TrimSuffix(n.name, "[]")
}

// childPrefix is prepended to the names of an object's properties.
func (n *Node) childPrefix() string {
	if n.name == "" {
		return ""
	}
	return n.name + "."
}
