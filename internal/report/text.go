package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/f1scraper/internal/model"
)

// TextWriter outputs one line per row.
//
// Rows of result pages are prefixed with the year and entity, e.g.
//
//	[1950][Italy (italy)] pos="1" no="10" driver="Nino Farina FAR" ...
//
// Summary rows carry no prefix. When the table has a header it is written
// first in the same form.
type TextWriter struct {
	baseWriter

	// showLinks appends the entity link of summary rows.
	showLinks bool
}

// TextWriterOption configures a TextWriter.
type TextWriterOption func(*TextWriter)

// WithLinks appends the entity link to summary rows.
func WithLinks(show bool) TextWriterOption {
	return func(w *TextWriter) {
		w.showLinks = show
	}
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer, opts ...TextWriterOption) *TextWriter {
	w := &TextWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the table as text lines.
func (w *TextWriter) Write(table *model.Table) (int, error) {
	var sb strings.Builder
	prefix := entityPrefix(table)

	if len(table.Header) > 0 {
		writeLine(&sb, prefix, table.Header, "")
	}

	for _, rec := range table.Records {
		link := ""
		if w.showLinks {
			link = rec.Link
		}
		writeLine(&sb, prefix, rec.Fields, link)
	}

	return io.WriteString(w.output, sb.String())
}

func writeLine(sb *strings.Builder, prefix string, fields []model.Field, link string) {
	if prefix != "" {
		sb.WriteString(prefix)
		sb.WriteString(" ")
	}
	for i, f := range fields {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(f.Name)
		sb.WriteString("=")
		sb.WriteString(strconv.Quote(f.Value))
	}
	if link != "" {
		sb.WriteString(" link=")
		sb.WriteString(strconv.Quote(link))
	}
	sb.WriteString("\n")
}
