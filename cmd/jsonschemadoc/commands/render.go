package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/erraggy/jsonschemadoc/schema"
	"github.com/erraggy/jsonschemadoc/value"
	"github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// rowColumns are the documentation table columns in display order.
var rowColumns = []string{"name", "type", "description", "validations"}

// rstWidths is the relative column widths of the reStructuredText table.
const rstWidths = "1 1 1 2"

// columnHeaders returns rowColumns cased for display.
func columnHeaders(caser cases.Caser) []string {
	headers := make([]string, len(rowColumns))
	for i, c := range rowColumns {
		headers[i] = caser.String(c)
	}
	return headers
}

// RenderSummaryTable renders a table of results.
// In quiet mode, headers are omitted and rows are tab-separated for piping.
// In normal mode, a fixed-width table with headers is rendered.
func RenderSummaryTable(w io.Writer, headers []string, rows [][]string, quiet bool) {
	if len(rows) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	if !quiet {
		writeCells(w, headers, widths, "  ")
	}
	for _, row := range rows {
		if quiet {
			Writef(w, "%s\n", strings.Join(row, "\t"))
			continue
		}
		writeCells(w, row, widths, "  ")
	}
}

// writeCells writes one padded table line. The last cell is not padded.
func writeCells(w io.Writer, cells []string, widths []int, sep string) {
	var b strings.Builder
	for i, cell := range cells {
		if i > 0 {
			b.WriteString(sep)
		}
		if i == len(cells)-1 {
			b.WriteString(cell)
			continue
		}
		fmt.Fprintf(&b, "%-*s", widths[i], cell)
	}
	Writef(w, "%s\n", b.String())
}

// RenderRowsText renders rows as a fixed-width table with validations
// joined by "; ".
func RenderRowsText(w io.Writer, rows []schema.Row, quiet bool) {
	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, []string{
			r.Name,
			r.DisplayType(),
			strings.ReplaceAll(r.Description, "\n", " "),
			strings.Join(r.Validations, "; "),
		})
	}
	RenderSummaryTable(w, columnHeaders(cases.Upper(language.English)), cells, quiet)
}

// RenderRowsRST renders rows as a reStructuredText list-table. Each
// validation becomes a bullet item inside its cell.
func RenderRowsRST(w io.Writer, rows []schema.Row) {
	Writef(w, ".. list-table::\n")
	Writef(w, "   :widths: %s\n", rstWidths)
	Writef(w, "   :header-rows: 1\n\n")

	writeRSTRow(w, columnHeaders(cases.Title(language.English)))
	for _, r := range rows {
		bullets := make([]string, len(r.Validations))
		for i, v := range r.Validations {
			bullets[i] = "* " + v
		}
		writeRSTRow(w, []string{r.Name, r.DisplayType(), r.Description, strings.Join(bullets, "\n")})
	}
}

func writeRSTRow(w io.Writer, cells []string) {
	for i, cell := range cells {
		marker := "     - "
		if i == 0 {
			marker = "   * - "
		}
		lines := strings.Split(strings.TrimRight(cell, "\n"), "\n")
		if lines[0] == "" && len(lines) == 1 {
			Writef(w, "%s\n", strings.TrimRight(marker, " "))
			continue
		}
		Writef(w, "%s%s\n", marker, lines[0])
		for _, line := range lines[1:] {
			if line == "" {
				Writef(w, "\n")
				continue
			}
			Writef(w, "       %s\n", line)
		}
	}
}

// RenderRowsMarkdown renders rows as a Markdown pipe table. Validations in a
// cell are separated by <br>.
func RenderRowsMarkdown(w io.Writer, rows []schema.Row) {
	headers := columnHeaders(cases.Title(language.English))
	Writef(w, "| %s |\n", strings.Join(headers, " | "))
	Writef(w, "|%s\n", strings.Repeat(" --- |", len(headers)))
	for _, r := range rows {
		cells := []string{
			markdownCell(r.Name),
			markdownCell(r.DisplayType()),
			markdownCell(r.Description),
		}
		validations := make([]string, len(r.Validations))
		for i, v := range r.Validations {
			validations[i] = markdownCell(v)
		}
		cells = append(cells, strings.Join(validations, "<br>"))
		Writef(w, "| %s |\n", strings.Join(cells, " | "))
	}
}

var markdownEscaper = strings.NewReplacer("|", `\|`, "\r\n", "<br>", "\n", "<br>")

func markdownCell(s string) string {
	return markdownEscaper.Replace(s)
}

// RenderDetail renders a value in the specified format (JSON or YAML).
func RenderDetail(w io.Writer, node any, format string) error {
	var data []byte
	var err error

	switch format {
	case FormatJSON:
		data, err = json.MarshalIndent(node, "", "  ")
	case FormatYAML:
		data, err = yaml.Marshal(node)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling output: %w", err)
	}

	if _, err := fmt.Fprintln(w, strings.TrimRight(string(data), "\n")); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// RenderValue renders a document value in source member order.
func RenderValue(w io.Writer, v value.Value, format string) error {
	switch format {
	case FormatJSON:
		if _, err := fmt.Fprintln(w, string(value.MarshalIndent(v, "  "))); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		return nil
	case FormatYAML:
		return RenderDetail(w, value.ToYAMLNode(v), FormatYAML)
	}
	return fmt.Errorf("unsupported format: %s", format)
}
