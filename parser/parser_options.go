package parser

import (
	"fmt"
	"io"
	"net/http"

	"github.com/erraggy/jsonschemadoc"
	"github.com/erraggy/jsonschemadoc/internal/options"
	"github.com/erraggy/jsonschemadoc/schemaerrors"
)

// Option is a function that configures a parse operation
type Option func(*parseConfig) error

// parseConfig holds configuration for a parse operation
type parseConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	reader   io.Reader
	bytes    []byte

	format     SourceFormat
	userAgent  string
	httpClient *http.Client
	logger     Logger

	// Source identification
	sourceName *string // Override SourcePath in the result
}

// ParseWithOptions loads a schema using functional options: it decodes the
// source, resolves every $ref and classifies the root node.
//
// Example:
//
//	result, err := parser.ParseWithOptions(
//	    parser.WithFilePath("person.schema.json"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	rows, err := result.Rows()
func ParseWithOptions(opts ...Option) (*ParseResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("parser: invalid options: %w", err)
	}

	p := &Parser{
		Format:     cfg.format,
		UserAgent:  cfg.userAgent,
		HTTPClient: cfg.httpClient,
		Logger:     cfg.logger,
	}

	var result *ParseResult
	var parseErr error
	switch {
	case cfg.filePath != nil:
		result, parseErr = p.Parse(*cfg.filePath)
	case cfg.reader != nil:
		result, parseErr = p.ParseReader(cfg.reader)
	default:
		result, parseErr = p.ParseBytes(cfg.bytes)
	}
	if parseErr != nil {
		return nil, parseErr
	}

	if cfg.sourceName != nil {
		result.SourcePath = *cfg.sourceName
	}
	return result, nil
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*parseConfig, error) {
	cfg := &parseConfig{
		format:    SourceFormatUnknown,
		userAgent: jsonschemadoc.UserAgent(),
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource("input",
		"must specify an input source (use WithFilePath, WithReader, or WithBytes)",
		"must specify exactly one input source",
		cfg.filePath != nil, cfg.reader != nil, cfg.bytes != nil,
	); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WithFilePath specifies a file path or URL as the input source
func WithFilePath(path string) Option {
	return func(cfg *parseConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithReader specifies an io.Reader as the input source
func WithReader(r io.Reader) Option {
	return func(cfg *parseConfig) error {
		if r == nil {
			return &schemaerrors.ConfigError{Option: "reader", Message: "reader cannot be nil"}
		}
		cfg.reader = r
		return nil
	}
}

// WithBytes specifies a byte slice as the input source
func WithBytes(data []byte) Option {
	return func(cfg *parseConfig) error {
		if data == nil {
			return &schemaerrors.ConfigError{Option: "bytes", Message: "bytes cannot be nil"}
		}
		cfg.bytes = data
		return nil
	}
}

// WithFormat forces the source format instead of detecting it.
// SourceFormatUnknown restores detection.
func WithFormat(format SourceFormat) Option {
	return func(cfg *parseConfig) error {
		switch format {
		case SourceFormatJSON, SourceFormatYAML, SourceFormatUnknown:
			cfg.format = format
			return nil
		}
		return &schemaerrors.ConfigError{Option: "format", Value: format, Message: "must be json, yaml or unknown"}
	}
}

// WithUserAgent sets the User-Agent string for HTTP requests
// Default: "jsonschemadoc/<version>"
func WithUserAgent(ua string) Option {
	return func(cfg *parseConfig) error {
		cfg.userAgent = ua
		return nil
	}
}

// WithHTTPClient sets a custom HTTP client for fetching URLs.
// When set, the client's Timeout and Transport are used as-is.
func WithHTTPClient(client *http.Client) Option {
	return func(cfg *parseConfig) error {
		cfg.httpClient = client
		return nil
	}
}

// WithLogger sets a structured logger for debug output.
// By default, logging is disabled.
//
//	logger := parser.NewSlogAdapter(slog.Default())
//	result, err := parser.ParseWithOptions(
//	    parser.WithFilePath("schema.json"),
//	    parser.WithLogger(logger),
//	)
func WithLogger(l Logger) Option {
	return func(cfg *parseConfig) error {
		cfg.logger = l
		return nil
	}
}

// WithSourceName overrides the SourcePath reported in the result, which
// otherwise reads "ParseBytes.json" or similar for in-memory sources.
func WithSourceName(name string) Option {
	return func(cfg *parseConfig) error {
		if name == "" {
			return &schemaerrors.ConfigError{Option: "sourceName", Message: "source name cannot be empty"}
		}
		cfg.sourceName = &name
		return nil
	}
}
