package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/jsonschemadoc/schemaerrors"
	"github.com/erraggy/jsonschemadoc/value"
)

type flat struct {
	name     string
	typ      string
	required bool
}

func flatten(t *testing.T, n *Node) []flat {
	t.Helper()
	nodes, err := n.Descendants()
	require.NoError(t, err)
	out := make([]flat, len(nodes))
	for i, d := range nodes {
		out[i] = flat{name: d.Name(), typ: d.Type(), required: d.Required()}
	}
	return out
}

func TestFlattenSingleItemScalar(t *testing.T) {
	n := load(t, `{"type": "array", "items": {"type": "number", "multipleOf": 1}, "uniqueItems": false}`)
	assert.Equal(t, []flat{{name: "[]", typ: "array[number]"}}, flatten(t, n))
}

func TestFlattenSingleItemTitledObject(t *testing.T) {
	n := load(t, `{"type": "array", "items": {"type": "object", "title": "Human"}, "uniqueItems": false}`)
	assert.Equal(t, []flat{{name: "[]", typ: "array[Human]"}}, flatten(t, n))
}

func TestFlattenSingleItemObjectProperties(t *testing.T) {
	n := load(t, `{"type": "array", "items": {"type": "object", "title": "Human",
		"properties": {"name": "string", "tags": {"type": "array", "items": "string"}}, "required": ["name"]}}`)
	assert.Equal(t, []flat{
		{name: "[]", typ: "array[Human]"},
		{name: "[].name", typ: "string", required: true},
		{name: "[].tags[]", typ: "array"},
	}, flatten(t, n))
}

func TestFlattenNestedArrays(t *testing.T) {
	n := load(t, `{"type": "array", "items": {"type": "array", "items": {"type": "integer"}}}`)
	assert.Equal(t, []flat{
		{name: "[]", typ: "array[array]"},
		{name: "[][]", typ: "array[integer]"},
	}, flatten(t, n))
}

func TestFlattenTuple(t *testing.T) {
	n := load(t, `{"type": "array", "items": [{"type": "number"}, {"type": "string"}, {"type": "number"}]}`)
	assert.Equal(t, []flat{
		{name: "[]", typ: "array[number,string,number]"},
		{name: "[0]", typ: "number"},
		{name: "[1]", typ: "string"},
		{name: "[2]", typ: "number"},
	}, flatten(t, n))
}

func TestFlattenTupleWithAdditionalItems(t *testing.T) {
	n := load(t, `{
		"type": "array",
		"items": [{"type": "number"}, {"type": "string"}, {"type": "number"}],
		"additionalItems": {"type": "object", "properties": {"name": "string"}}
	}`)
	assert.Equal(t, []flat{
		{name: "[]", typ: "array[number,string,number,object+]"},
		{name: "[0]", typ: "number"},
		{name: "[1]", typ: "string"},
		{name: "[2]", typ: "number"},
		{name: "[3+]", typ: "object"},
		{name: "[3+].name", typ: "string"},
	}, flatten(t, n))
}

func TestFlattenTupleNamedArray(t *testing.T) {
	n := New("point", mustDecode(t, `{"type": "array", "items": [{"type": "array", "items": [{"type": "number"}]}]}`), false)
	assert.Equal(t, []flat{
		{name: "point[]", typ: "array[array]"},
		{name: "point[0][]", typ: "array"},
		{name: "point[0][]", typ: "array[number]"},
		{name: "point[0][0]", typ: "number"},
	}, flatten(t, n))
}

func TestFlattenArrayWithoutItems(t *testing.T) {
	n := load(t, `{"type": "array", "items": true}`)
	assert.Equal(t, []flat{{name: "[]", typ: "array"}}, flatten(t, n))
}

func TestFlattenObject(t *testing.T) {
	n := load(t, `{
		"type": "object",
		"properties": {
			"name": "string",
			"password": "string",
			"address": {
				"type": "object",
				"properties": {
					"prefecture": "string",
					"postal_code": "string"
				}
			}
		},
		"required": ["name"]
	}`)
	assert.Equal(t, []flat{
		{name: "name", typ: "string", required: true},
		{name: "password", typ: "string"},
		{name: "address", typ: "object"},
		{name: "address.prefecture", typ: "string"},
		{name: "address.postal_code", typ: "string"},
	}, flatten(t, n))
}

func TestFlattenObjectPatternAndAdditional(t *testing.T) {
	n := load(t, `{
		"properties": {"id": "integer", "meta": {"additionalProperties": {"type": "string"}}},
		"patternProperties": {"^x-": {"type": "string"}},
		"additionalProperties": {"type": "object", "properties": {"note": "string"}},
		"required": ["id", "^x-"]
	}`)
	assert.Equal(t, []flat{
		{name: "id", typ: "integer", required: true},
		{name: "meta", typ: "object"},
		{name: "meta.*", typ: "string"},
		{name: "^x-", typ: "string"},
		{name: "*", typ: "object"},
		{name: "*.note", typ: "string"},
	}, flatten(t, n))
}

func TestFlattenBooleanAdditionalProperties(t *testing.T) {
	n := load(t, `{"properties": {"a": "string"}, "additionalProperties": false}`)
	assert.Equal(t, []flat{{name: "a", typ: "string"}}, flatten(t, n))
}

func TestFlattenDoesNotExpandArrayProperties(t *testing.T) {
	n := load(t, `{"properties": {"tags": {"type": "array", "items": {"type": "object", "properties": {"x": "string"}}}}}`)
	assert.Equal(t, []flat{{name: "tags[]", typ: "array"}}, flatten(t, n))
}

func TestFlattenScalarRoot(t *testing.T) {
	assert.Empty(t, flatten(t, load(t, `{"type": "string"}`)))
}

func TestFlattenIsIdempotent(t *testing.T) {
	n := load(t, `{
		"type": "array",
		"items": [{"type": "number"}, {"type": "object", "title": "Pair", "properties": {"k": "string"}}],
		"additionalItems": {"type": "string"}
	}`)
	first := flatten(t, n)
	second := flatten(t, n)
	assert.Equal(t, first, second)
	assert.Equal(t, "array[number,Pair,string+]", first[0].typ)
	assert.Equal(t, "array", n.Type(), "flattening must not relabel the node itself")
}

func TestFlattenStopsEarly(t *testing.T) {
	n := load(t, `{"properties": {"a": "string", "b": "string", "c": "string"}}`)
	var names []string
	for d, err := range n.Flatten() {
		require.NoError(t, err)
		names = append(names, d.Name())
		if len(names) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, names)
}

func TestFlattenCyclicValueTree(t *testing.T) {
	self := value.NewObject(value.Member{Key: "type", Value: value.String("object")})
	props := value.NewObject()
	props.Set("child", value.ObjectValue(self))
	self.Set("properties", value.ObjectValue(props))

	_, err := New("", value.ObjectValue(self), false).Descendants()
	require.Error(t, err)
	assert.ErrorIs(t, err, schemaerrors.ErrCyclicReference)
}

func TestSyntheticNodeKeepsValidations(t *testing.T) {
	n := load(t, `{"type": "array", "items": {"type": "string", "maxLength": 3}, "minItems": 1}`)
	nodes, err := n.Descendants()
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Equal(t, []string{
		"Its size must be greater than or equal to 1",
		"Its length must be less than or equal to 3",
	}, nodes[0].Validations())
}
