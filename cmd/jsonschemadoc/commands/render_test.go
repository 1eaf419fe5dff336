package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/jsonschemadoc/schema"
	"github.com/erraggy/jsonschemadoc/value"
)

var sampleRows = []schema.Row{
	{Name: "name", Type: "string", Required: true, Description: "full name",
		Validations: []string{"Its length must be less than or equal to 64"}},
	{Name: "a|b", Type: "integer", Validations: []string{"It must be multiple of 2", "It must be greater than 0"}},
	{Name: "flag", Type: "boolean", Description: "first line\nsecond line", Validations: []string{}},
}

func TestRenderSummaryTable(t *testing.T) {
	var buf bytes.Buffer
	headers := []string{"NAME", "TYPE", "DESCRIPTION"}
	rows := [][]string{
		{"name", "string", "full name"},
		{"nickname", "string", ""},
	}

	RenderSummaryTable(&buf, headers, rows, false)
	assert.Equal(t, ""+
		"NAME      TYPE    DESCRIPTION\n"+
		"name      string  full name\n"+
		"nickname  string  \n", buf.String())
}

func TestRenderSummaryTable_Quiet(t *testing.T) {
	var buf bytes.Buffer
	RenderSummaryTable(&buf, []string{"NAME", "TYPE"}, [][]string{{"name", "string"}}, true)
	assert.Equal(t, "name\tstring\n", buf.String())
}

func TestRenderSummaryTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	RenderSummaryTable(&buf, []string{"A"}, nil, false)
	assert.Zero(t, buf.Len())
}

func TestRenderRowsText(t *testing.T) {
	var buf bytes.Buffer
	RenderRowsText(&buf, sampleRows, false)
	out := buf.String()

	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "VALIDATIONS")
	assert.Contains(t, out, "string (required)")
	assert.Contains(t, out, "It must be multiple of 2; It must be greater than 0")
	assert.Contains(t, out, "first line second line")
}

func TestRenderRowsRST(t *testing.T) {
	var buf bytes.Buffer
	RenderRowsRST(&buf, sampleRows)

	expected := `.. list-table::
   :widths: 1 1 1 2
   :header-rows: 1

   * - Name
     - Type
     - Description
     - Validations
   * - name
     - string (required)
     - full name
     - * Its length must be less than or equal to 64
   * - a|b
     - integer
     -
     - * It must be multiple of 2
       * It must be greater than 0
   * - flag
     - boolean
     - first line
       second line
     -
`
	assert.Equal(t, expected, buf.String())
}

func TestRenderRowsMarkdown(t *testing.T) {
	var buf bytes.Buffer
	RenderRowsMarkdown(&buf, sampleRows)

	expected := "" +
		"| Name | Type | Description | Validations |\n" +
		"| --- | --- | --- | --- |\n" +
		"| name | string (required) | full name | Its length must be less than or equal to 64 |\n" +
		"| a\\|b | integer |  | It must be multiple of 2<br>It must be greater than 0 |\n" +
		"| flag | boolean | first line<br>second line |  |\n"
	assert.Equal(t, expected, buf.String())
}

func TestRenderDetail(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, RenderDetail(&buf, []string{"a"}, FormatJSON))
		assert.Equal(t, "[\n  \"a\"\n]\n", buf.String())
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, RenderDetail(&buf, sampleRows[:1], FormatYAML))
		assert.Contains(t, buf.String(), "name: name")
		assert.Contains(t, buf.String(), "required: true")
	})

	t.Run("unsupported", func(t *testing.T) {
		var buf bytes.Buffer
		err := RenderDetail(&buf, sampleRows, FormatRST)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported format")
	})
}

func TestRenderValue(t *testing.T) {
	doc, err := value.DecodeJSON([]byte(`{"type": "object", "required": ["b", "a"]}`))
	require.NoError(t, err)

	t.Run("json keeps member order", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, RenderValue(&buf, doc, FormatJSON))
		out := buf.String()
		assert.Less(t, strings.Index(out, `"type"`), strings.Index(out, `"required"`))
	})

	t.Run("yaml keeps member order", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, RenderValue(&buf, doc, FormatYAML))
		out := buf.String()
		assert.True(t, strings.HasPrefix(out, "type: object\nrequired:\n"), out)
		assert.Less(t, strings.Index(out, "- b"), strings.Index(out, "- a"))
	})

	t.Run("unsupported", func(t *testing.T) {
		var buf bytes.Buffer
		assert.Error(t, RenderValue(&buf, doc, FormatMarkdown))
	})
}
