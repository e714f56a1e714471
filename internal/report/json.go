package report

import (
	"encoding/json"
	"io"

	"github.com/nao1215/f1scraper/internal/model"
)

// JSONWriter outputs one JSON document per table.
// Compact output is one table per line (JSON lines).
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	// When false, output is compact (no extra whitespace).
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with default indentation.
// This is a convenience wrapper for WithIndent("", "  ").
func WithPrettyPrint() JSONWriterOption {
	return WithIndent("", "  ")
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// jsonTable is the serialized form of a table. Rows are objects keyed by
// column name so that consumers need not know the column order.
type jsonTable struct {
	Year    int               `json:"year"`
	Kind    model.Kind        `json:"kind"`
	Page    model.PageType    `json:"page"`
	Entity  model.Fragment    `json:"entity,omitempty"`
	Columns []string          `json:"columns"`
	Header  map[string]string `json:"header,omitempty"`
	Rows    []jsonRow         `json:"rows"`
}

type jsonRow struct {
	Fields map[string]string `json:"fields"`
	Link   string            `json:"link,omitempty"`
}

// Write outputs the table in JSON format.
func (w *JSONWriter) Write(table *model.Table) (int, error) {
	out := jsonTable{
		Year:    table.Year,
		Kind:    table.Kind,
		Page:    table.Page,
		Entity:  table.Fragment,
		Columns: table.Columns(),
		Rows:    make([]jsonRow, len(table.Records)),
	}
	if len(table.Header) > 0 {
		out.Header = fieldMap(table.Header)
	}
	for i, rec := range table.Records {
		out.Rows[i] = jsonRow{Fields: fieldMap(rec.Fields), Link: rec.Link}
	}

	return w.writeJSON(out)
}

func fieldMap(fields []model.Field) map[string]string {
	m := make(map[string]string, len(fields))
	for _, f := range fields {
		m[f.Name] = f.Value
	}
	return m
}

// writeJSON marshals the given value to JSON and writes it to the output.
func (w *JSONWriter) writeJSON(v any) (int, error) {
	var data []byte
	var err error

	if w.indent {
		data, err = json.MarshalIndent(v, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return 0, err
	}

	// Add trailing newline for better terminal output
	data = append(data, '\n')

	return w.output.Write(data)
}
