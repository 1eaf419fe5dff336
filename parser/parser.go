package parser

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/erraggy/jsonschemadoc"
	"github.com/erraggy/jsonschemadoc/schema"
	"github.com/erraggy/jsonschemadoc/schemaerrors"
	"github.com/erraggy/jsonschemadoc/value"
)

// Parser handles JSON Schema loading
type Parser struct {
	// Format forces the decoder used for the source.
	// SourceFormatUnknown (the default) detects it from the path, then the content.
	Format SourceFormat
	// UserAgent is the User-Agent string used when fetching URLs
	// Defaults to "jsonschemadoc/<version>" if not set
	UserAgent string
	// HTTPClient is the HTTP client used for fetching URLs.
	// If nil, a default client with 30-second timeout is created.
	HTTPClient *http.Client
	// Logger is the structured logger for debug output
	// If nil, logging is disabled (default)
	Logger Logger
}

// New creates a new Parser instance with default settings
func New() *Parser {
	return &Parser{
		UserAgent: jsonschemadoc.UserAgent(),
	}
}

// log returns the configured logger, or a no-op logger if none is set.
func (p *Parser) log() Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return NopLogger{}
}

// SourceFormat represents the format of the source schema document
type SourceFormat string

const (
	// SourceFormatYAML indicates the source was in YAML format
	SourceFormatYAML SourceFormat = "yaml"
	// SourceFormatJSON indicates the source was in JSON format
	SourceFormatJSON SourceFormat = "json"
	// SourceFormatUnknown indicates the source format could not be determined
	SourceFormatUnknown SourceFormat = "unknown"
)

// ParseResult contains the loaded schema and metadata.
//
// Data is the fully dereferenced document: no mapping of the form
// {"$ref": "..."} remains anywhere in it. Root is the classified root node
// built over Data. Callers should treat both as read-only.
type ParseResult struct {
	// SourcePath is the document's input source path that it was read from.
	// Note: if the source was not a file path, this will be set to the name of the method
	// and end in '.yaml' or '.json' based on the detected format
	SourcePath string
	// SourceFormat is the format of the source file (JSON or YAML)
	SourceFormat SourceFormat
	// Data is the decoded document with every $ref resolved
	Data value.Value
	// Root is the classified root schema node
	Root *schema.Node
	// LoadTime is the time taken to load the source data (file, URL, etc.)
	LoadTime time.Duration
	// SourceSize is the size of the source data in bytes
	SourceSize int64
	// RefCount is the number of $ref substitutions performed
	RefCount int
}

// Rows returns the documentation rows of the root schema.
func (pr *ParseResult) Rows() ([]schema.Row, error) {
	return schema.Rows(pr.Root)
}

// Parse loads a schema from a file path or an http(s) URL
func (p *Parser) Parse(specPath string) (*ParseResult, error) {
	var data []byte
	var err error
	var format SourceFormat

	loadStart := time.Now()
	if isURL(specPath) {
		var contentType string
		data, contentType, err = p.fetchURL(specPath)
		if err != nil {
			return nil, err
		}
		format = detectFormatFromURL(specPath, contentType)
	} else {
		data, err = os.ReadFile(specPath)
		if err != nil {
			return nil, fmt.Errorf("parser: failed to read file: %w", err)
		}
		format = detectFormatFromPath(specPath)
	}
	loadTime := time.Since(loadStart)

	res, err := p.parse(data, format)
	if err != nil {
		return nil, withSourcePath(err, specPath)
	}
	res.SourcePath = specPath
	res.LoadTime = loadTime
	return res, nil
}

// ParseReader loads a schema from an io.Reader
func (p *Parser) ParseReader(r io.Reader) (*ParseResult, error) {
	loadStart := time.Now()
	data, err := io.ReadAll(r)
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read data: %w", err)
	}
	res, err := p.parse(data, SourceFormatUnknown)
	if err != nil {
		return nil, err
	}
	res.LoadTime = loadTime
	res.SourcePath = "ParseReader." + string(res.SourceFormat)
	return res, nil
}

// ParseBytes loads a schema from a byte slice
func (p *Parser) ParseBytes(data []byte) (*ParseResult, error) {
	res, err := p.parse(data, SourceFormatUnknown)
	if err != nil {
		return nil, err
	}
	res.SourcePath = "ParseBytes." + string(res.SourceFormat)
	return res, nil
}

// parse decodes data, resolves every reference and classifies the root.
func (p *Parser) parse(data []byte, format SourceFormat) (*ParseResult, error) {
	if p.Format != "" && p.Format != SourceFormatUnknown {
		format = p.Format
	}
	if format == SourceFormatUnknown || format == "" {
		format = detectFormatFromContent(data)
	}
	p.log().Debug("decoding schema", "format", string(format), "size", len(data))

	var doc value.Value
	var err error
	if format == SourceFormatJSON {
		doc, err = value.DecodeJSON(data)
	} else {
		format = SourceFormatYAML
		doc, err = value.DecodeYAML(data)
	}
	if err != nil {
		return nil, fmt.Errorf("parser: %w", err)
	}

	resolver := NewRefResolver(doc)
	resolver.SetLogger(p.log())
	resolved, err := resolver.ResolveAll(doc)
	if err != nil {
		return nil, fmt.Errorf("parser: %w", err)
	}

	root := schema.New("", resolved, false)
	p.log().Debug("classified root schema",
		"kind", root.Kind().String(),
		"refs", resolver.Count(),
	)

	return &ParseResult{
		SourceFormat: format,
		Data:         resolved,
		Root:         root,
		SourceSize:   int64(len(data)),
		RefCount:     resolver.Count(),
	}, nil
}

// withSourcePath records path on a malformed document error.
func withSourcePath(err error, path string) error {
	var malformed *schemaerrors.MalformedDocumentError
	if errors.As(err, &malformed) && malformed.Path == "" {
		malformed.Path = path
	}
	return err
}
