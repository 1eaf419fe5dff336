package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type validationsInput struct {
	Schema schemaInput `json:"schema"         jsonschema:"The JSON Schema to inspect"`
	Name   string      `json:"name,omitempty" jsonschema:"Row name as listed by describe_schema; empty means the root schema"`
}

type validationsOutput struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Validations []string `json:"validations"`
}

func handleSchemaValidations(_ context.Context, _ *mcp.CallToolRequest, input validationsInput) (*mcp.CallToolResult, validationsOutput, error) {
	result, err := input.Schema.resolve()
	if err != nil {
		return errResult(err), validationsOutput{}, nil
	}

	if input.Name == "" {
		sentences := result.Root.Validations()
		if sentences == nil {
			sentences = []string{}
		}
		return nil, validationsOutput{Name: result.Root.Name(), Type: result.Root.Type(), Validations: sentences}, nil
	}

	rows, err := result.Rows()
	if err != nil {
		return errResult(err), validationsOutput{}, nil
	}
	for _, r := range rows {
		if r.Name == input.Name {
			return nil, validationsOutput{Name: r.Name, Type: r.Type, Validations: r.Validations}, nil
		}
	}
	return errResult(fmt.Errorf("no row named %q", input.Name)), validationsOutput{}, nil
}
