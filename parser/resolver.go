package parser

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/erraggy/jsonschemadoc/schemaerrors"
	"github.com/erraggy/jsonschemadoc/value"
)

// RefResolver handles $ref resolution within a single JSON Schema document
type RefResolver struct {
	root value.Value
	// resolving tracks pointers currently being resolved in the recursion stack
	resolving map[string]bool
	logger    Logger
	count     int
}

// NewRefResolver creates a reference resolver for pointers into root
func NewRefResolver(root value.Value) *RefResolver {
	return &RefResolver{
		root:      root,
		resolving: make(map[string]bool),
		logger:    NopLogger{},
	}
}

// SetLogger sets the logger used for per-reference debug output.
func (r *RefResolver) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	r.logger = l
}

// Count returns the number of $ref substitutions performed so far.
func (r *RefResolver) Count() int {
	return r.count
}

// ResolveRef resolves a local reference against the root document.
// Local refs are in the format: #/path/to/schema. The pointer "#" addresses
// the root itself.
func (r *RefResolver) ResolveRef(ref string) (value.Value, error) {
	segments, err := parsePointer(ref)
	if err != nil {
		return value.Value{}, err
	}
	return r.lookup(ref, segments)
}

// ResolveAll returns a copy of node in which every mapping that consists of
// exactly one "$ref" string is replaced by its fully resolved target.
// Member order is preserved and node itself is not modified.
func (r *RefResolver) ResolveAll(node value.Value) (value.Value, error) {
	switch node.Kind() {
	case value.KindArray:
		items, _ := node.AsArray()
		out := make([]value.Value, len(items))
		for i, item := range items {
			resolved, err := r.ResolveAll(item)
			if err != nil {
				return value.Value{}, err
			}
			out[i] = resolved
		}
		return value.Array(out...), nil

	case value.KindObject:
		obj, _ := node.AsObject()
		if ref, ok := refOnly(obj); ok {
			return r.substitute(ref)
		}
		out := value.NewObject()
		for key, child := range obj.All() {
			resolved, err := r.ResolveAll(child)
			if err != nil {
				return value.Value{}, err
			}
			out.Set(key, resolved)
		}
		return value.ObjectValue(out), nil
	}
	return node, nil
}

// substitute resolves ref and everything its target refers to.
func (r *RefResolver) substitute(ref string) (value.Value, error) {
	segments, err := parsePointer(ref)
	if err != nil {
		return value.Value{}, err
	}

	key := canonicalPointer(segments)
	if r.resolving[key] {
		return value.Value{}, &schemaerrors.ReferenceError{
			Ref:        ref,
			IsCircular: true,
		}
	}
	r.resolving[key] = true
	defer delete(r.resolving, key)

	target, err := r.lookup(ref, segments)
	if err != nil {
		return value.Value{}, err
	}
	r.count++
	r.logger.Debug("resolved reference", "ref", ref, "kind", target.Kind().String())

	return r.ResolveAll(target)
}

// lookup walks the root document one pointer segment at a time
func (r *RefResolver) lookup(ref string, segments []string) (value.Value, error) {
	current := r.root
	for i, segment := range segments {
		switch current.Kind() {
		case value.KindObject:
			obj, _ := current.AsObject()
			next, ok := obj.Get(segment)
			if !ok {
				return value.Value{}, &schemaerrors.ReferenceError{
					Ref:     ref,
					Segment: segment,
					Message: fmt.Sprintf("missing key at %s", canonicalPointer(segments[:i+1])),
				}
			}
			current = next

		case value.KindArray:
			items, _ := current.AsArray()
			// Handle array indexing per RFC 6901 (JSON Pointer)
			index, err := strconv.ParseUint(segment, 10, 0)
			if err != nil {
				return value.Value{}, &schemaerrors.ReferenceError{
					Ref:     ref,
					Segment: segment,
					Message: "array index must be a non-negative integer",
				}
			}
			if index >= uint64(len(items)) {
				return value.Value{}, &schemaerrors.ReferenceError{
					Ref:     ref,
					Segment: segment,
					Message: fmt.Sprintf("array index %d out of bounds (length %d)", index, len(items)),
				}
			}
			current = items[index]

		default:
			return value.Value{}, &schemaerrors.ReferenceError{
				Ref:     ref,
				Segment: segment,
				Message: fmt.Sprintf("cannot traverse into %s at %s", current.Kind(), canonicalPointer(segments[:i])),
			}
		}
	}
	return current, nil
}

// refOnly reports whether obj is exactly {"$ref": "<string>"}
func refOnly(obj *value.Object) (string, bool) {
	if obj.Len() != 1 {
		return "", false
	}
	ref, ok := obj.Get("$ref")
	if !ok {
		return "", false
	}
	return ref.AsString()
}

// parsePointer splits a local reference into its decoded segments.
func parsePointer(ref string) ([]string, error) {
	fragment, ok := strings.CutPrefix(ref, "#")
	if !ok {
		return nil, &schemaerrors.ReferenceError{
			Ref:     ref,
			Message: "remote references are not supported",
		}
	}
	if fragment == "" {
		return nil, nil
	}
	if !strings.HasPrefix(fragment, "/") {
		return nil, &schemaerrors.ReferenceError{
			Ref:     ref,
			Message: `pointer must be empty or start with "/"`,
		}
	}

	parts := strings.Split(fragment[1:], "/")
	for i, part := range parts {
		decoded, err := url.PathUnescape(part)
		if err != nil {
			return nil, &schemaerrors.ReferenceError{
				Ref:     ref,
				Segment: part,
				Message: "invalid percent-encoding",
				Cause:   err,
			}
		}
		parts[i] = unescapeJSONPointer(decoded)
	}
	return parts, nil
}

// canonicalPointer renders decoded segments back as a pointer
func canonicalPointer(segments []string) string {
	var b strings.Builder
	b.WriteByte('#')
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(escapeJSONPointer(s))
	}
	return b.String()
}

// unescapeJSONPointer unescapes JSON Pointer tokens per RFC 6901
// ~1 becomes /, ~0 becomes ~
func unescapeJSONPointer(s string) string {
	s = strings.ReplaceAll(s, "~1", "/")
	s = strings.ReplaceAll(s, "~0", "~")
	return s
}

func escapeJSONPointer(s string) string {
	s = strings.ReplaceAll(s, "~", "~0")
	s = strings.ReplaceAll(s, "/", "~1")
	return s
}

// ResolveRef resolves a single local reference against root.
func ResolveRef(ref string, root value.Value) (value.Value, error) {
	return NewRefResolver(root).ResolveRef(ref)
}

// ResolveAllRefs returns node with every $ref into root replaced by its
// fully resolved target. A reference chain that leads back into a pointer
// still being resolved fails with a cyclic *schemaerrors.ReferenceError.
func ResolveAllRefs(node, root value.Value) (value.Value, error) {
	return NewRefResolver(root).ResolveAll(node)
}
