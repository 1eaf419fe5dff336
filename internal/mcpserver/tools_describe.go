package mcpserver

import (
	"context"
	"strings"

	"github.com/erraggy/jsonschemadoc/schema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type describeInput struct {
	Schema schemaInput `json:"schema"           jsonschema:"The JSON Schema to document"`
	Prefix string      `json:"prefix,omitempty" jsonschema:"Only return rows whose name equals this value or starts with it followed by . or ["`
	Offset int         `json:"offset,omitempty" jsonschema:"Number of rows to skip"`
	Limit  int         `json:"limit,omitempty"  jsonschema:"Maximum number of rows to return"`
}

type describeOutput struct {
	Format     string       `json:"format"`
	Title      string       `json:"title,omitempty"`
	RootType   string       `json:"root_type"`
	RefCount   int          `json:"ref_count"`
	TotalRows  int          `json:"total_rows"`
	Returned   int          `json:"returned"`
	Rows       []schema.Row `json:"rows,omitempty"`
	NextOffset int          `json:"next_offset,omitempty"`
}

func handleDescribeSchema(_ context.Context, _ *mcp.CallToolRequest, input describeInput) (*mcp.CallToolResult, describeOutput, error) {
	result, err := input.Schema.resolve()
	if err != nil {
		return errResult(err), describeOutput{}, nil
	}

	rows, err := result.Rows()
	if err != nil {
		return errResult(err), describeOutput{}, nil
	}
	if input.Prefix != "" {
		rows = filterRows(rows, input.Prefix)
	}

	page := paginate(rows, input.Offset, input.Limit)
	output := describeOutput{
		Format:    string(result.SourceFormat),
		Title:     result.Root.Title(),
		RootType:  result.Root.Type(),
		RefCount:  result.RefCount,
		TotalRows: len(rows),
		Returned:  len(page),
		Rows:      page,
	}
	if next := input.Offset + len(page); len(page) > 0 && next < len(rows) {
		output.NextOffset = next
	}
	return nil, output, nil
}

// filterRows keeps the rows named prefix and the rows nested below it.
func filterRows(rows []schema.Row, prefix string) []schema.Row {
	var kept []schema.Row
	for _, r := range rows {
		if r.Name == prefix {
			kept = append(kept, r)
			continue
		}
		rest, ok := strings.CutPrefix(r.Name, prefix)
		if ok && (strings.HasPrefix(rest, ".") || strings.HasPrefix(rest, "[")) {
			kept = append(kept, r)
		}
	}
	return kept
}
