package report

import (
	"fmt"
	"io"

	"github.com/nao1215/f1scraper/internal/model"
)

// Format names accepted by New.
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
	FormatTable    = "table"
)

// Formats lists every format New accepts.
var Formats = []string{FormatText, FormatJSON, FormatMarkdown, FormatTable}

// Options are the format specific settings passed to New. Formats ignore
// the settings that do not apply to them.
type Options struct {
	// Links appends the entity link to summary rows in text output.
	Links bool

	// TableStyle names the style of table output, one of TableStyles.
	// Empty selects DefaultTableStyle.
	TableStyle string
}

// Writer defines the interface for table output.
// Implementations write decoded pages in various formats.
type Writer interface {
	// Write outputs one decoded page.
	// Returns the number of bytes or records written and any error encountered.
	Write(table *model.Table) (int, error)
}

// New returns the Writer for format writing to output.
func New(format string, output io.Writer, opts Options) (Writer, error) {
	switch format {
	case FormatText, "":
		return NewTextWriter(output, WithLinks(opts.Links)), nil
	case FormatJSON:
		return NewJSONWriter(output), nil
	case FormatMarkdown:
		return NewMarkdownWriter(output), nil
	case FormatTable:
		style, ok := LookupTableStyle(opts.TableStyle)
		if !ok {
			return nil, fmt.Errorf("unknown table style %q", opts.TableStyle)
		}
		return NewTableWriter(output, WithStyle(style)), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// MultiWriter writes to multiple Writers simultaneously.
// This is used to print a page and export it to the database at once.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs the table to all configured Writers.
// Returns the total written across all writers.
// Stops on first error encountered.
func (m *MultiWriter) Write(table *model.Table) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(table)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for table writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// placeholder is printed for empty entity names.
const placeholder = "-"

func orPlaceholder(s string) string {
	if s == "" {
		return placeholder
	}
	return s
}

// entityPrefix returns "[1950][Italy (italy)]" for result pages and "" for
// summaries.
func entityPrefix(table *model.Table) string {
	if table.Fragment == nil {
		return ""
	}
	return fmt.Sprintf("[%d][%s (%s)]",
		table.Year,
		orPlaceholder(table.Fragment.Label()),
		orPlaceholder(table.Fragment.InternalName()),
	)
}

// headerLabels returns the table's column labels, falling back to the
// column names for tables decoded without a header.
func headerLabels(table *model.Table) []string {
	if len(table.Header) > 0 {
		labels := make([]string, len(table.Header))
		for i, h := range table.Header {
			labels[i] = h.Value
		}
		return labels
	}
	return table.Columns()
}

func rowValues(rec model.Record) []string {
	values := make([]string, len(rec.Fields))
	for i, f := range rec.Fields {
		values[i] = f.Value
	}
	return values
}
