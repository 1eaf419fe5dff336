// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes jsonschemadoc capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/erraggy/jsonschemadoc"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `jsonschemadoc MCP server: documents JSON Schemas as tables of properties with human-readable validation rules.

Every tool takes a schema as exactly one of file, url or content (JSON or YAML). Local $ref pointers (#/...) are resolved first; remote references, dangling pointers and reference cycles are reported as errors.

Configuration: defaults are set with JSONSCHEMADOC_* environment variables in your MCP client config.
- JSONSCHEMADOC_ROW_LIMIT (default: 100): default page size for describe_schema
- JSONSCHEMADOC_MAX_LIMIT (default: 1000): upper bound for any requested limit
- JSONSCHEMADOC_MAX_INLINE_SIZE (default: 10485760): largest inline content in bytes
- JSONSCHEMADOC_ALLOW_PRIVATE_IPS (default: false): allow url inputs on private networks`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "jsonschemadoc", Version: jsonschemadoc.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "describe_schema",
		Description: "Document a JSON Schema as rows of name, type, required flag, description and validation sentences, one row per property in document order. Nested object properties are named parent.child, array items parent[], tuple items parent[0]. Use offset/limit to page through large schemas and prefix to narrow to one subtree. Default limit is configurable via JSONSCHEMADOC_ROW_LIMIT.",
	}, handleDescribeSchema)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "resolve_schema",
		Description: "Return a JSON Schema with every local $ref replaced by its target, as JSON or YAML in source member order. Fails on remote, dangling or cyclic references.",
	}, handleResolveSchema)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "schema_validations",
		Description: "Return the validation sentences of the root schema, or of the row with the given name (as listed by describe_schema).",
	}, handleSchemaValidations)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.RowLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.RowLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
