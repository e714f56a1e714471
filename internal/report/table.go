package report

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/nao1215/f1scraper/internal/model"
)

// DefaultTableStyle is the style used when none is named.
const DefaultTableStyle = "rounded"

// TableStyles lists the style names LookupTableStyle knows.
var TableStyles = []string{"default", "bold", "double", "light", DefaultTableStyle}

// LookupTableStyle returns the go-pretty style called name. An empty name
// selects DefaultTableStyle.
func LookupTableStyle(name string) (table.Style, bool) {
	switch name {
	case "", DefaultTableStyle:
		return table.StyleRounded, true
	case "default":
		return table.StyleDefault, true
	case "bold":
		return table.StyleBold, true
	case "double":
		return table.StyleDouble, true
	case "light":
		return table.StyleLight, true
	default:
		return table.Style{}, false
	}
}

// TableWriter renders each page as a boxed terminal table.
type TableWriter struct {
	baseWriter

	style table.Style
}

// TableWriterOption configures a TableWriter.
type TableWriterOption func(*TableWriter)

// WithStyle sets the go-pretty table style. The default is StyleRounded.
func WithStyle(style table.Style) TableWriterOption {
	return func(w *TableWriter) {
		w.style = style
	}
}

// NewTableWriter creates a TableWriter that outputs to the given writer.
func NewTableWriter(output io.Writer, opts ...TableWriterOption) *TableWriter {
	w := &TableWriter{
		baseWriter: newBaseWriter(output),
		style:      table.StyleRounded,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write renders the table.
func (w *TableWriter) Write(t *model.Table) (int, error) {
	tw := table.NewWriter()
	tw.SetTitle(t.Title())
	tw.SetStyle(w.style)

	tw.AppendHeader(toRow(headerLabels(t)))
	for _, rec := range t.Records {
		tw.AppendRow(toRow(rowValues(rec)))
	}

	return io.WriteString(w.output, tw.Render()+"\n")
}

func toRow(values []string) table.Row {
	row := make(table.Row, len(values))
	for i, v := range values {
		row[i] = v
	}
	return row
}
