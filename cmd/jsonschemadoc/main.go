package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"github.com/erraggy/jsonschemadoc"
	"github.com/erraggy/jsonschemadoc/cmd/jsonschemadoc/commands"
	"github.com/erraggy/jsonschemadoc/internal/mcpserver"
)

// commandNames lists every subcommand accepted on the command line.
var commandNames = []string{"table", "resolve", "validations", "mcp", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "version", "-v", "--version":
		fmt.Printf("jsonschemadoc v%s\n", jsonschemadoc.Version())
		if len(args) > 0 && (args[0] == "--verbose" || args[0] == "-verbose") {
			fmt.Print(jsonschemadoc.BuildInfo())
		}
	case "help", "-h", "--help":
		printUsage()
	case "table":
		err = commands.HandleTable(args)
	case "resolve":
		err = commands.HandleResolve(args)
	case "validations":
		err = commands.HandleValidations(args)
	case "mcp":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		err = mcpserver.Run(ctx)
		stop()
	default:
		commands.Writef(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			commands.Writef(os.Stderr, "Did you mean: %s?\n", suggestion)
		}
		commands.Writef(os.Stderr, "\n")
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		commands.Writef(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// suggestCommand returns the closest known command within edit distance 2
// of input, or "" when none is close enough.
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, name := range commandNames {
		if d := editDistance(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

// editDistance returns the Levenshtein distance between a and b.
func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func printUsage() {
	usage := `jsonschemadoc - JSON Schema documentation tool

Usage:
  jsonschemadoc <command> [options]

Commands:
  table        Document every property of a schema as a table
  resolve      Print a schema with every local $ref resolved
  validations  Print the validation sentences of a schema or one property
  mcp          Serve the schema tools over MCP (stdio)
  version      Show version information
  help         Show this help message

Examples:
  jsonschemadoc table person.schema.json
  jsonschemadoc table --format rst person.schema.yaml
  jsonschemadoc resolve --format yaml person.schema.json
  jsonschemadoc validations --name age person.schema.json
  cat person.schema.json | jsonschemadoc table -q -

Run 'jsonschemadoc <command> --help' for more information on a command.

Settings in a .env file in the working directory are loaded into the
environment on startup (JSONSCHEMADOC_ROW_LIMIT, JSONSCHEMADOC_MAX_LIMIT,
JSONSCHEMADOC_MAX_INLINE_SIZE).
`
	fmt.Print(usage)
}
