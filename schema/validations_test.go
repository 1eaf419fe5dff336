package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidations(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			name: "number",
			src:  `{"type": "number", "multipleOf": 20, "maximum": 100, "minimum": 0}`,
			want: []string{
				"It must be multiple of 20",
				"It must be lower than 100",
				"It must be greater than 0",
			},
		},
		{
			name: "number with exclusive bounds false",
			src:  `{"type": "number", "maximum": 100, "exclusiveMaximum": false, "minimum": 0, "exclusiveMinimum": false}`,
			want: []string{"It must be lower than 100", "It must be greater than 0"},
		},
		{
			name: "number with exclusive bounds true",
			src:  `{"type": "number", "maximum": 100, "exclusiveMaximum": true, "minimum": 0, "exclusiveMinimum": true}`,
			want: []string{"It must be lower than or equal to 100", "It must be greater than or equal to 0"},
		},
		{
			name: "integer ranges before enum",
			src:  `{"type": "integer", "enum": [1, 2], "maximum": 2}`,
			want: []string{"It must be lower than 2", "It must be equal to one of the elements in [1, 2]"},
		},
		{
			name: "string",
			src:  `{"type": "string", "maxLength": 100, "minLength": 0, "pattern": "sources/.*\\.rst"}`,
			want: []string{
				"Its length must be less than or equal to 100",
				"Its length must be greater than or equal to 0",
				`It must match to regexp "sources/.*\.rst"`,
			},
		},
		{
			name: "string format",
			src:  `{"type": "string", "format": "email"}`,
			want: []string{"It must be formatted as email"},
		},
		{
			name: "string enum first",
			src:  `{"type": "string", "format": "email", "enum": ["a@b.c"]}`,
			want: []string{`It must be equal to one of the elements in ["a@b.c"]`, "It must be formatted as email"},
		},
		{
			name: "array sizes",
			src:  `{"type": "array", "items": {"type": "number"}, "maxItems": 100, "minItems": 0, "uniqueItems": true}`,
			want: []string{
				"Its size must be less than or equal to 100",
				"Its size must be greater than or equal to 0",
				"Its elements must be unique",
			},
		},
		{
			name: "array uniqueItems false",
			src:  `{"type": "array", "uniqueItems": false}`,
			want: nil,
		},
		{
			name: "array allows additional items",
			src:  `{"type": "array", "items": [{"type": "number"}], "additionalItems": true}`,
			want: []string{"It allows additional items"},
		},
		{
			name: "array disallows additional items",
			src:  `{"type": "array", "items": [{"type": "number"}], "additionalItems": false}`,
			want: nil,
		},
		{
			name: "array promotes scalar item rules",
			src:  `{"type": "array", "items": {"type": "number", "maximum": 100}, "additionalItems": false}`,
			want: []string{"It must be lower than 100"},
		},
		{
			name: "array does not promote object item rules",
			src:  `{"type": "array", "items": {"type": "object", "maxProperties": 1}}`,
			want: nil,
		},
		{
			name: "object dependencies list",
			src: `{"type": "object", "maxProperties": 5, "minProperties": 2,
				"dependencies": {"subclass": ["class"], "total_price": ["price", "tax"]}}`,
			want: []string{
				"Its numbers of properties must be less than or equal to 5",
				"Its numbers of properties must be greater than or equal to 2",
				`The "subclass" property depends on ["class"]`,
				`The "total_price" property depends on ["price", "tax"]`,
			},
		},
		{
			name: "object dependencies schema",
			src: `{"type": "object", "maxProperties": 5, "minProperties": 2,
				"dependencies": {"subclass": {"type": "string", "minLength": 5}}}`,
			want: []string{
				"Its numbers of properties must be less than or equal to 5",
				"Its numbers of properties must be greater than or equal to 2",
				`The "subclass" property must match to {"type": "string", "minLength": 5}`,
			},
		},
		{
			name: "object dependency of other shape is skipped",
			src:  `{"type": "object", "dependencies": {"a": "b", "c": {"type": "null"}}}`,
			want: []string{`The "c" property must match to "null"`},
		},
		{
			name: "object dependency with a null type",
			src:  `{"type": "object", "dependencies": {"c": {"type": null}}}`,
			want: []string{`The "c" property must match to null`},
		},
		{
			name: "enum with markup characters",
			src:  `{"type": "string", "enum": ["<none>", "a&b"]}`,
			want: []string{`It must be equal to one of the elements in ["<none>", "a&b"]`},
		},
		{
			name: "required with markup characters",
			src:  `{"type": "object", "required": ["<x>"]}`,
			want: []string{`Its property set must contain all elements in ["<x>"]`},
		},
		{
			name: "object required",
			src:  `{"type": "object", "required": ["name", "age"]}`,
			want: []string{`Its property set must contain all elements in ["name", "age"]`},
		},
		{
			name: "enum",
			src:  `{"type": "object", "enum": ["string", {"type": "object", "maxProperties": 3}, null, 42]}`,
			want: []string{`It must be equal to one of the elements in ["string", {"type": "object", "maxProperties": 3}, null, 42]`},
		},
		{
			name: "enum that is not a list",
			src:  `{"type": "boolean", "enum": true}`,
			want: []string{"It must be equal to one of the elements in [true]"},
		},
		{
			name: "combinators contribute nothing",
			src: `{"allOf": [{"type": "string"}], "anyOf": [], "oneOf": [], "not": {"type": "null"},
				"definitions": {"a": {"type": "string"}}}`,
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, load(t, tt.src).Validations())
		})
	}
}
