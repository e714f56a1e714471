package report

import (
	"io"
	"strings"

	"github.com/nao1215/markdown"

	"github.com/nao1215/f1scraper/internal/model"
)

// MarkdownWriter outputs each table as a level two heading followed by a
// GitHub Flavored Markdown table.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the table in Markdown format.
func (w *MarkdownWriter) Write(table *model.Table) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H2(table.Title())
	md.PlainText("")

	if len(table.Records) == 0 {
		md.PlainText("No rows.")
		md.PlainText("")
		return len(md.String()), md.Build()
	}

	rows := make([][]string, len(table.Records))
	for i, rec := range table.Records {
		values := rowValues(rec)
		for j, v := range values {
			values[j] = escapeCell(v)
		}
		rows[i] = values
	}

	md.Table(markdown.TableSet{
		Header: headerLabels(table),
		Rows:   rows,
	})
	md.PlainText("")

	return len(md.String()), md.Build()
}

// escapeCell keeps pipes in values from splitting table cells.
func escapeCell(s string) string {
	if s == "" {
		return placeholder
	}
	return strings.ReplaceAll(s, "|", `\|`)
}
