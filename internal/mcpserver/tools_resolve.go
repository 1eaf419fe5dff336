package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/jsonschemadoc/value"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.yaml.in/yaml/v4"
)

type resolveInput struct {
	Schema schemaInput `json:"schema"           jsonschema:"The JSON Schema to resolve"`
	Format string      `json:"format,omitempty" jsonschema:"Output format: json (default) or yaml"`
}

type resolveOutput struct {
	Format   string `json:"format"`
	RefCount int    `json:"ref_count"`
	Document string `json:"document"`
}

func handleResolveSchema(_ context.Context, _ *mcp.CallToolRequest, input resolveInput) (*mcp.CallToolResult, resolveOutput, error) {
	format := input.Format
	if format == "" {
		format = "json"
	}
	if format != "json" && format != "yaml" {
		return errResult(fmt.Errorf("invalid format %q; valid formats: json, yaml", input.Format)), resolveOutput{}, nil
	}

	result, err := input.Schema.resolve()
	if err != nil {
		return errResult(err), resolveOutput{}, nil
	}

	output := resolveOutput{Format: format, RefCount: result.RefCount}
	if format == "json" {
		output.Document = string(value.MarshalIndent(result.Data, "  "))
		return nil, output, nil
	}

	data, err := yaml.Marshal(value.ToYAMLNode(result.Data))
	if err != nil {
		return errResult(fmt.Errorf("marshaling output: %w", err)), resolveOutput{}, nil
	}
	output.Document = string(data)
	return nil, output, nil
}
