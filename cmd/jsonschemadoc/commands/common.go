// Package commands provides CLI command handlers for jsonschemadoc.
package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/erraggy/jsonschemadoc"
	"github.com/erraggy/jsonschemadoc/parser"
)

// Output format constants
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatRST      = "rst"
	FormatMarkdown = "markdown"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// ValidateOutputFormat returns an error unless format is one of allowed.
func ValidateOutputFormat(format string, allowed ...string) error {
	if slices.Contains(allowed, format) {
		return nil
	}
	return fmt.Errorf("invalid format '%s'. Valid formats: %s", format, strings.Join(allowed, ", "))
}

// FormatSpecPath returns a display-friendly path for the schema.
// Returns "<stdin>" if the path is StdinFilePath, otherwise returns the path as-is.
func FormatSpecPath(specPath string) string {
	if specPath == StdinFilePath {
		return "<stdin>"
	}
	return specPath
}

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// NewLogger returns the parser logger for the CLI. Verbose mode logs debug
// records as text on stderr; otherwise logging is disabled.
func NewLogger(verbose bool) parser.Logger {
	if !verbose {
		return parser.NopLogger{}
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	return parser.NewSlogAdapter(slog.New(handler))
}

// LoadSchema loads, dereferences and classifies the schema at specPath.
// StdinFilePath reads the document from stdin.
func LoadSchema(specPath string, logger parser.Logger) (*parser.ParseResult, error) {
	opts := []parser.Option{parser.WithLogger(logger)}
	if specPath == StdinFilePath {
		opts = append(opts, parser.WithReader(os.Stdin))
	} else {
		opts = append(opts, parser.WithFilePath(specPath))
	}
	result, err := parser.ParseWithOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", FormatSpecPath(specPath), err)
	}
	return result, nil
}

// OutputSchemaHeader writes the common schema summary to w.
func OutputSchemaHeader(w io.Writer, specPath string, result *parser.ParseResult) {
	Writef(w, "jsonschemadoc version: %s\n", jsonschemadoc.Version())
	Writef(w, "Schema: %s\n", FormatSpecPath(specPath))
	Writef(w, "Format: %s\n", result.SourceFormat)
	Writef(w, "Root Type: %s\n", result.Root.TypeName())
	Writef(w, "Source Size: %s\n", parser.FormatBytes(result.SourceSize))
	Writef(w, "References: %d\n", result.RefCount)
	Writef(w, "Load Time: %v\n", result.LoadTime)
}
