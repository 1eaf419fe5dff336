package value

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/jsonschemadoc/schemaerrors"
)

// DecodeYAML decodes a single YAML document (JSON is a subset and decodes
// too), preserving mapping order. Aliases are expanded in place; an alias
// that refers back into its own anchor, or expansion past a budget
// proportional to len(data), is malformed.
func DecodeYAML(data []byte) (Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		line, col := yamlErrorPosition(err.Error())
		return Value{}, &schemaerrors.MalformedDocumentError{Line: line, Column: col, Offset: -1, Cause: err}
	}
	if doc.Kind == 0 || (doc.Kind == yaml.DocumentNode && len(doc.Content) == 0) {
		return Value{}, &schemaerrors.MalformedDocumentError{Offset: -1, Message: "empty document"}
	}
	c := newYAMLConverter(len(data))
	return c.convert(&doc)
}

// FromYAMLNode converts a decoded yaml.Node tree into a Value. The alias
// expansion budget is derived from the number of nodes in the tree.
func FromYAMLNode(n *yaml.Node) (Value, error) {
	c := newYAMLConverter(countYAMLNodes(n, map[*yaml.Node]bool{}))
	return c.convert(n)
}

const (
	// minYAMLNodes is the expansion budget of small documents.
	minYAMLNodes = 10_000
	// yamlNodesPerUnit scales the budget with the source size.
	yamlNodesPerUnit = 100
)

// yamlConverter turns yaml.Node trees into Values, tracking the anchors
// being expanded and the number of nodes produced.
type yamlConverter struct {
	active    map[*yaml.Node]bool
	remaining int
	limit     int
}

func newYAMLConverter(size int) *yamlConverter {
	limit := max(minYAMLNodes, size*yamlNodesPerUnit)
	return &yamlConverter{active: make(map[*yaml.Node]bool), remaining: limit, limit: limit}
}

func (c *yamlConverter) convert(n *yaml.Node) (Value, error) {
	c.remaining--
	if c.remaining < 0 {
		return Value{}, yamlNodeError(n, fmt.Sprintf("document expands to more than %d nodes through aliases", c.limit))
	}

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Null(), nil
		}
		return c.convert(n.Content[0])
	case yaml.AliasNode:
		if n.Alias == nil {
			return Value{}, yamlNodeError(n, "unresolved alias")
		}
		if c.active[n.Alias] {
			return Value{}, yamlNodeError(n, fmt.Sprintf("alias *%s refers to itself", n.Value))
		}
		c.active[n.Alias] = true
		v, err := c.convert(n.Alias)
		delete(c.active, n.Alias)
		return v, err
	case yaml.SequenceNode:
		items := make([]Value, 0, len(n.Content))
		for _, child := range n.Content {
			item, err := c.convert(child)
			if err != nil {
				return Value{}, err
			}
			items = append(items, item)
		}
		return Array(items...), nil
	case yaml.MappingNode:
		obj := NewObject()
		for i := 0; i+1 < len(n.Content); i += 2 {
			keyNode := n.Content[i]
			if keyNode.Kind == yaml.AliasNode && keyNode.Alias != nil {
				keyNode = keyNode.Alias
			}
			if keyNode.Kind != yaml.ScalarNode {
				return Value{}, yamlNodeError(keyNode, "mapping keys must be scalars")
			}
			val, err := c.convert(n.Content[i+1])
			if err != nil {
				return Value{}, err
			}
			obj.Set(keyNode.Value, val)
		}
		return ObjectValue(obj), nil
	case yaml.ScalarNode:
		return yamlScalar(n)
	}
	return Value{}, yamlNodeError(n, fmt.Sprintf("unsupported node kind %d", n.Kind))
}

// countYAMLNodes counts the distinct nodes of a tree without following aliases.
func countYAMLNodes(n *yaml.Node, seen map[*yaml.Node]bool) int {
	if n == nil || seen[n] {
		return 0
	}
	seen[n] = true
	count := 1
	for _, child := range n.Content {
		count += countYAMLNodes(child, seen)
	}
	return count
}

func yamlScalar(n *yaml.Node) (Value, error) {
	switch n.ShortTag() {
	case "!!null":
		return Null(), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return Value{}, yamlNodeError(n, err.Error())
		}
		return Bool(b), nil
	case "!!int", "!!float":
		if isJSONNumber(n.Value) {
			return Number(n.Value), nil
		}
		var decoded any
		if err := n.Decode(&decoded); err != nil {
			return Value{}, yamlNodeError(n, err.Error())
		}
		if f, ok := decoded.(float64); ok && (math.IsInf(f, 0) || math.IsNaN(f)) {
			return Value{}, yamlNodeError(n, fmt.Sprintf("number %q has no JSON representation", n.Value))
		}
		lit, err := json.Marshal(decoded)
		if err != nil {
			return Value{}, yamlNodeError(n, err.Error())
		}
		return Number(string(lit)), nil
	}
	return String(n.Value), nil
}

// isJSONNumber reports whether s is already a valid JSON number literal.
func isJSONNumber(s string) bool {
	if s == "" || (s[0] != '-' && (s[0] < '0' || s[0] > '9')) {
		return false
	}
	return json.Valid([]byte(s))
}

func yamlNodeError(n *yaml.Node, msg string) error {
	return &schemaerrors.MalformedDocumentError{Line: n.Line, Column: n.Column, Offset: -1, Message: msg}
}

var yamlPositionPattern = regexp.MustCompile(`line (\d+)(?:, column (\d+))?`)

// yamlErrorPosition extracts "line N, column M" from a YAML error message.
func yamlErrorPosition(msg string) (int, int) {
	m := yamlPositionPattern.FindStringSubmatch(msg)
	if m == nil {
		return 0, 0
	}
	line, _ := strconv.Atoi(m[1])
	col := 0
	if m[2] != "" {
		col, _ = strconv.Atoi(m[2])
	}
	return line, col
}

// looksLikeJSON reports whether data starts like a JSON object or array.
func looksLikeJSON(data []byte) bool {
	trimmed := strings.TrimLeft(string(data), " \t\r\n\ufeff")
	return strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[")
}

// Decode decodes data as JSON when it starts with '{' or '[', and as YAML
// otherwise.
func Decode(data []byte) (Value, error) {
	if looksLikeJSON(data) {
		return DecodeJSON(data)
	}
	return DecodeYAML(data)
}
