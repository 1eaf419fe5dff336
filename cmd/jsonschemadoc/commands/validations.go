package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
)

// ValidationsFlags contains flags for the validations command
type ValidationsFlags struct {
	Name    string
	Format  string
	Verbose bool
}

// SetupValidationsFlags creates and configures a FlagSet for the validations command.
// Returns the FlagSet and a ValidationsFlags struct with bound flag variables.
func SetupValidationsFlags() (*flag.FlagSet, *ValidationsFlags) {
	fs := flag.NewFlagSet("validations", flag.ContinueOnError)
	flags := &ValidationsFlags{}

	fs.StringVar(&flags.Name, "name", "", "row name to describe (default: the root schema)")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, yaml")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log loading and reference resolution to stderr")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: jsonschemadoc validations [flags] <file|url|->\n\n")
		Writef(output, "Print the validation sentences of the root schema or of one row.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  jsonschemadoc validations person.schema.json\n")
		Writef(output, "  jsonschemadoc validations --name age person.schema.json\n")
		Writef(output, "  jsonschemadoc validations --name 'tags[]' --format json person.schema.json\n")
	}

	return fs, flags
}

// HandleValidations executes the validations command
func HandleValidations(args []string) error {
	fs, flags := SetupValidationsFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := ValidateOutputFormat(flags.Format, FormatText, FormatJSON, FormatYAML); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("validations command requires exactly one file path, URL, or '-' for stdin")
	}
	specPath := fs.Arg(0)

	result, err := LoadSchema(specPath, NewLogger(flags.Verbose))
	if err != nil {
		return fmt.Errorf("validations: %w", err)
	}

	var sentences []string
	if flags.Name == "" {
		sentences = result.Root.Validations()
	} else {
		rows, err := result.Rows()
		if err != nil {
			return fmt.Errorf("validations: %w", err)
		}
		found := false
		for _, r := range rows {
			if r.Name == flags.Name {
				sentences = r.Validations
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("validations: no row named %q in %s", flags.Name, FormatSpecPath(specPath))
		}
	}
	if sentences == nil {
		sentences = []string{}
	}

	if flags.Format != FormatText {
		return RenderDetail(os.Stdout, sentences, flags.Format)
	}
	for _, s := range sentences {
		Writef(os.Stdout, "* %s\n", s)
	}
	return nil
}
