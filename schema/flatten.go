package schema

import (
	"iter"
	"slices"
	"strconv"
	"strings"

	"github.com/erraggy/jsonschemadoc/schemaerrors"
	"github.com/erraggy/jsonschemadoc/value"
)

// frame is one unit of pending work on the flattening stack.
type frame struct {
	node   *Node
	emit   bool // yield the node itself
	expand bool // push the node's descendants
	// path holds the schema mappings currently being expanded above node.
	path []*value.Object
}

// Flatten walks n depth-first and yields every descendant node in document
// order. The walk is lazy and holds no state between calls, so flattening the
// same node twice yields the same sequence. n itself is not yielded.
//
// Objects yield their properties, pattern properties and a schema-valued
// additionalProperties (named "parent.*"); object-kind children are followed
// by their own descendants. Arrays yield a node for the array itself labelled
// with its element types, followed by the elements.
//
// A value tree that contains itself yields a cyclic reference error and ends
// the sequence.
func (n *Node) Flatten() iter.Seq2[*Node, error] {
	return func(yield func(*Node, error) bool) {
		stack := []frame{{node: n, expand: true}}
		for len(stack) > 0 {
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if f.emit && !yield(f.node, nil) {
				return
			}
			if !f.expand {
				continue
			}
			if slices.Contains(f.path, f.node.raw) {
				yield(nil, &schemaerrors.ReferenceError{
					Ref:        f.node.name,
					IsCircular: true,
					Message:    "schema contains itself",
				})
				return
			}
			children := f.node.children(append(f.path[:len(f.path):len(f.path)], f.node.raw))
			for i := len(children) - 1; i >= 0; i-- {
				stack = append(stack, children[i])
			}
		}
	}
}

// Descendants collects Flatten into a slice.
func (n *Node) Descendants() ([]*Node, error) {
	var out []*Node
	for d, err := range n.Flatten() {
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// children returns the frames for n's direct descendants in yield order.
func (n *Node) children(path []*value.Object) []frame {
	switch n.kind {
	case KindObject:
		return n.objectChildren(path)
	case KindArray:
		return n.arrayChildren(path)
	}
	return nil
}

func (n *Node) objectChildren(path []*value.Object) []frame {
	var out []frame
	add := func(child *Node) {
		out = append(out, frame{node: child, emit: true, expand: child.kind == KindObject, path: path})
	}

	prefix := n.childPrefix()
	required, _ := n.Get("required").AsArray()
	props, _ := n.Get("properties").AsObject()
	for key, raw := range props.All() {
		add(New(prefix+key, raw, containsString(required, key)))
	}
	patterns, _ := n.Get("patternProperties").AsObject()
	for key, raw := range patterns.All() {
		add(New(prefix+key, raw, false))
	}
	if extra := n.Get("additionalProperties"); isSchema(extra) {
		add(New(prefix+"*", extra, false))
	}
	return out
}

func (n *Node) arrayChildren(path []*value.Object) []frame {
	items := n.Get("items")

	if isSchema(items) {
		// The item shares the array's name; its own descendants follow the
		// array row, while the item itself is summarized in the label.
		item := New(n.name, items, false)
		return []frame{
			{node: n.withLabel("array[" + item.TypeName() + "]"), emit: true},
			{node: item, expand: true, path: path},
		}
	}

	list, ok := items.AsArray()
	if !ok {
		return []frame{{node: n.withLabel("array"), emit: true}}
	}

	base := n.baseName()
	elems := make([]frame, 0, len(list)+1)
	types := make([]string, 0, len(list)+1)
	for i, raw := range list {
		elem := New(base+"["+strconv.Itoa(i)+"]", raw, false)
		elems = append(elems, frame{node: elem, emit: true, expand: true, path: path})
		types = append(types, elem.TypeName())
	}
	if extra := n.Get("additionalItems"); isSchema(extra) {
		elem := New(base+"["+strconv.Itoa(len(list))+"+]", extra, false)
		elems = append(elems, frame{node: elem, emit: true, expand: true, path: path})
		types = append(types, elem.TypeName()+"+")
	}

	self := frame{node: n.withLabel("array[" + strings.Join(types, ",") + "]"), emit: true}
	return append([]frame{self}, elems...)
}

func containsString(list []value.Value, s string) bool {
	for _, v := range list {
		if str, ok := v.AsString(); ok && str == s {
			return true
		}
	}
	return false
}
