package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
)

// ResolveFlags contains flags for the resolve command
type ResolveFlags struct {
	Format  string
	Quiet   bool
	Verbose bool
}

// SetupResolveFlags creates and configures a FlagSet for the resolve command.
// Returns the FlagSet and a ResolveFlags struct with bound flag variables.
func SetupResolveFlags() (*flag.FlagSet, *ResolveFlags) {
	fs := flag.NewFlagSet("resolve", flag.ContinueOnError)
	flags := &ResolveFlags{}

	fs.StringVar(&flags.Format, "format", FormatJSON, "output format: json, yaml")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the document, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the document, no diagnostic messages")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log every resolved reference to stderr")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: jsonschemadoc resolve [flags] <file|url|->\n\n")
		Writef(output, "Print a JSON Schema with every local $ref replaced by its target.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  jsonschemadoc resolve person.schema.json\n")
		Writef(output, "  jsonschemadoc resolve --format yaml person.schema.json\n")
		Writef(output, "  cat person.schema.yaml | jsonschemadoc resolve -q - | jq .properties\n")
		Writef(output, "\nExit Codes:\n")
		Writef(output, "  0    Document resolved\n")
		Writef(output, "  1    The document is malformed or has a dangling or cyclic reference\n")
	}

	return fs, flags
}

// HandleResolve executes the resolve command
func HandleResolve(args []string) error {
	fs, flags := SetupResolveFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := ValidateOutputFormat(flags.Format, FormatJSON, FormatYAML); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("resolve command requires exactly one file path, URL, or '-' for stdin")
	}
	specPath := fs.Arg(0)

	result, err := LoadSchema(specPath, NewLogger(flags.Verbose))
	if err != nil {
		return fmt.Errorf("resolve: %w", err)
	}

	if !flags.Quiet {
		OutputSchemaHeader(os.Stderr, specPath, result)
		Writef(os.Stderr, "\n")
	}

	return RenderValue(os.Stdout, result.Data, flags.Format)
}
