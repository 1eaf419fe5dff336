package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
)

// TableFlags contains flags for the table command
type TableFlags struct {
	Format  string
	Quiet   bool
	Verbose bool
}

// SetupTableFlags creates and configures a FlagSet for the table command.
// Returns the FlagSet and a TableFlags struct with bound flag variables.
func SetupTableFlags() (*flag.FlagSet, *TableFlags) {
	fs := flag.NewFlagSet("table", flag.ContinueOnError)
	flags := &TableFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, yaml, rst, markdown")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the table, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the table, no diagnostic messages")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log loading and reference resolution to stderr")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: jsonschemadoc table [flags] <file|url|->\n\n")
		Writef(output, "Document every property of a JSON Schema as a table of\n")
		Writef(output, "name, type, description and validations.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  jsonschemadoc table person.schema.json\n")
		Writef(output, "  jsonschemadoc table --format rst person.schema.yaml > person.rst\n")
		Writef(output, "  jsonschemadoc table --format markdown https://example.com/schemas/person.json\n")
		Writef(output, "  cat person.schema.json | jsonschemadoc table -q -\n")
		Writef(output, "\nNotes:\n")
		Writef(output, "  - Local $ref pointers (#/...) are resolved before documenting\n")
		Writef(output, "  - Required properties are typed '<type> (required)'\n")
		Writef(output, "\nExit Codes:\n")
		Writef(output, "  0    Table rendered\n")
		Writef(output, "  1    The document is malformed or has a dangling or cyclic reference\n")
	}

	return fs, flags
}

// HandleTable executes the table command
func HandleTable(args []string) error {
	fs, flags := SetupTableFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := ValidateOutputFormat(flags.Format, FormatText, FormatJSON, FormatYAML, FormatRST, FormatMarkdown); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("table command requires exactly one file path, URL, or '-' for stdin")
	}
	specPath := fs.Arg(0)

	result, err := LoadSchema(specPath, NewLogger(flags.Verbose))
	if err != nil {
		return fmt.Errorf("table: %w", err)
	}

	rows, err := result.Rows()
	if err != nil {
		return fmt.Errorf("table: %w", err)
	}

	if !flags.Quiet && flags.Format == FormatText {
		OutputSchemaHeader(os.Stderr, specPath, result)
		Writef(os.Stderr, "Rows: %d\n\n", len(rows))
	}

	switch flags.Format {
	case FormatJSON, FormatYAML:
		return RenderDetail(os.Stdout, rows, flags.Format)
	case FormatRST:
		RenderRowsRST(os.Stdout, rows)
	case FormatMarkdown:
		RenderRowsMarkdown(os.Stdout, rows)
	default:
		RenderRowsText(os.Stdout, rows, flags.Quiet)
	}
	return nil
}
