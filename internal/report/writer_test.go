package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/nao1215/f1scraper/internal/model"
)

// createResultTable creates a race result page with sample data for testing.
func createResultTable() *model.Table {
	fragment := model.Circuit{Index: 100, Slug: "italy", DisplayName: "Italy"}
	return &model.Table{
		Year:     1950,
		Kind:     model.KindRace,
		Page:     model.PageResult,
		Fragment: fragment,
		Header: []model.Field{
			{Name: "pos", Value: "Pos"},
			{Name: "driver", Value: "Driver"},
			{Name: "pts", Value: "PTS"},
		},
		Records: []model.Record{
			{
				Year: 1950, Kind: model.KindRace, Page: model.PageResult, Fragment: fragment,
				Fields: []model.Field{{Name: "pos", Value: "1"}, {Name: "driver", Value: "Nino Farina FAR"}, {Name: "pts", Value: "8"}},
			},
			{
				Year: 1950, Kind: model.KindRace, Page: model.PageResult, Fragment: fragment,
				Fields: []model.Field{{Name: "pos", Value: "NC"}, {Name: "driver", Value: "Piero Taruffi TAR"}, {Name: "pts", Value: "0"}},
			},
		},
	}
}

// createSummaryTable creates a team summary page without header.
func createSummaryTable() *model.Table {
	return &model.Table{
		Year: 1958,
		Kind: model.KindTeam,
		Page: model.PageSummary,
		Records: []model.Record{
			{
				Year: 1958, Kind: model.KindTeam, Page: model.PageSummary,
				Fields: []model.Field{{Name: "pos", Value: "1"}, {Name: "team", Value: "Vanwall"}, {Name: "pts", Value: "48"}},
				Link:   "/en/results.html/1958/team/vanwall.html",
			},
		},
	}
}

// TestTextWriter tests the line-oriented writer.
func TestTextWriter(t *testing.T) {
	t.Parallel()

	t.Run("prefixes result rows and writes header first", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewTextWriter(&buf).Write(createResultTable()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := `[1950][Italy (italy)] pos="Pos" driver="Driver" pts="PTS"
[1950][Italy (italy)] pos="1" driver="Nino Farina FAR" pts="8"
[1950][Italy (italy)] pos="NC" driver="Piero Taruffi TAR" pts="0"
`
		if buf.String() != want {
			t.Errorf("unexpected output:\n%s\nwant:\n%s", buf.String(), want)
		}
	})

	t.Run("summary rows carry no prefix", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewTextWriter(&buf).Write(createSummaryTable()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := `pos="1" team="Vanwall" pts="48"` + "\n"
		if buf.String() != want {
			t.Errorf("got %q, want %q", buf.String(), want)
		}
	})

	t.Run("links are appended on request", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewTextWriter(&buf, WithLinks(true)).Write(createSummaryTable()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), `link="/en/results.html/1958/team/vanwall.html"`) {
			t.Errorf("expected link in output, got %q", buf.String())
		}
	})

	t.Run("empty names use a placeholder", func(t *testing.T) {
		t.Parallel()

		tbl := createResultTable()
		tbl.Fragment = model.Circuit{Index: 1}
		tbl.Header = nil

		var buf bytes.Buffer
		if _, err := NewTextWriter(&buf).Write(tbl); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(buf.String(), "[1950][- (-)] ") {
			t.Errorf("expected placeholder prefix, got %q", buf.String())
		}
	})
}

// TestJSONWriter tests the JSON writer.
func TestJSONWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes one line per table", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf)
		if _, err := w.Write(createResultTable()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := w.Write(createSummaryTable()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		if len(lines) != 2 {
			t.Fatalf("expected 2 lines, got %d", len(lines))
		}

		var got struct {
			Year    int               `json:"year"`
			Kind    string            `json:"kind"`
			Page    string            `json:"page"`
			Entity  map[string]any    `json:"entity"`
			Columns []string          `json:"columns"`
			Header  map[string]string `json:"header"`
			Rows    []struct {
				Fields map[string]string `json:"fields"`
				Link   string            `json:"link"`
			} `json:"rows"`
		}
		if err := json.Unmarshal([]byte(lines[0]), &got); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}

		if got.Kind != "race" || got.Page != "result" || got.Year != 1950 {
			t.Errorf("unexpected identity %+v", got)
		}
		if got.Entity["slug"] != "italy" {
			t.Errorf("unexpected entity %v", got.Entity)
		}
		if got.Header["pts"] != "PTS" {
			t.Errorf("unexpected header %v", got.Header)
		}
		if got.Rows[1].Fields["pos"] != "NC" {
			t.Errorf("unexpected rows %+v", got.Rows)
		}
		if strings.Join(got.Columns, ",") != "pos,driver,pts" {
			t.Errorf("unexpected columns %v", got.Columns)
		}
	})

	t.Run("summary omits entity and keeps links", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf, WithPrettyPrint()).Write(createSummaryTable()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out := buf.String()
		if strings.Contains(out, `"entity"`) {
			t.Errorf("expected no entity for summaries, got %s", out)
		}
		if !strings.Contains(out, `"link": "/en/results.html/1958/team/vanwall.html"`) {
			t.Errorf("expected indented link, got %s", out)
		}
	})
}

// TestMarkdownWriter tests the Markdown writer.
func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes heading and table", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).Write(createResultTable()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out := buf.String()
		if !strings.Contains(out, "## 1950 race result Italy (italy)") {
			t.Errorf("expected heading, got %s", out)
		}
		for _, s := range []string{"Pos", "Driver", "Nino Farina FAR", "Piero Taruffi TAR"} {
			if !strings.Contains(out, s) {
				t.Errorf("expected %q in output", s)
			}
		}
	})

	t.Run("empty table", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		tbl := &model.Table{Year: 2023, Kind: model.KindFastestLap, Page: model.PageSummary}
		if _, err := NewMarkdownWriter(&buf).Write(tbl); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "No rows.") {
			t.Errorf("expected empty notice, got %s", buf.String())
		}
	})

	t.Run("escapes pipes", func(t *testing.T) {
		t.Parallel()

		if got := escapeCell("a|b"); got != `a\|b` {
			t.Errorf("escapeCell() = %q", got)
		}
		if got := escapeCell(""); got != "-" {
			t.Errorf("escapeCell(\"\") = %q", got)
		}
	})
}

// TestTableWriter tests the go-pretty writer.
func TestTableWriter(t *testing.T) {
	t.Parallel()

	t.Run("renders title, header and rows", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewTableWriter(&buf).Write(createResultTable()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out := buf.String()
		for _, s := range []string{"1950 race result Italy (italy)", "POS", "Nino Farina FAR", "╭"} {
			if !strings.Contains(out, s) {
				t.Errorf("expected %q in output:\n%s", s, out)
			}
		}
	})

	t.Run("column names stand in for a missing header", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewTableWriter(&buf, WithStyle(table.StyleLight)).Write(createSummaryTable()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "TEAM") {
			t.Errorf("expected column name header, got:\n%s", buf.String())
		}
	})
}

// errWriter is a Writer that always fails.
type errWriter struct{ err error }

func (w errWriter) Write(*model.Table) (int, error) { return 0, w.err }

// TestMultiWriter tests fan-out.
func TestMultiWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes to all writers", func(t *testing.T) {
		t.Parallel()

		var a, b bytes.Buffer
		m := NewMultiWriter(NewTextWriter(&a), NewJSONWriter(&b))
		if _, err := m.Write(createSummaryTable()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a.Len() == 0 || b.Len() == 0 {
			t.Error("expected both writers to receive output")
		}
	})

	t.Run("stops on first error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		boom := errors.New("boom")
		m := NewMultiWriter(errWriter{err: boom}, NewTextWriter(&buf))
		if _, err := m.Write(createSummaryTable()); !errors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}
		if buf.Len() != 0 {
			t.Error("expected later writers to be skipped")
		}
	})
}

// TestNew tests the format factory.
func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("every listed format is accepted", func(t *testing.T) {
		t.Parallel()

		for _, format := range Formats {
			if _, err := New(format, &bytes.Buffer{}, Options{}); err != nil {
				t.Errorf("New(%q) returned error: %v", format, err)
			}
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		t.Parallel()

		if _, err := New("xml", &bytes.Buffer{}, Options{}); err == nil {
			t.Error("expected error for unknown format")
		}
	})

	t.Run("links option reaches the text writer", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w, err := New(FormatText, &buf, Options{Links: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := w.Write(createSummaryTable()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "link=") {
			t.Errorf("expected link in output, got %q", buf.String())
		}
	})

	t.Run("table style option selects the border", func(t *testing.T) {
		t.Parallel()

		tests := map[string]string{
			"":        "╭",
			"rounded": "╭",
			"light":   "┌",
			"double":  "╔",
			"default": "+",
		}
		for style, corner := range tests {
			var buf bytes.Buffer
			w, err := New(FormatTable, &buf, Options{TableStyle: style})
			if err != nil {
				t.Fatalf("New(table, %q) returned error: %v", style, err)
			}
			if _, err := w.Write(createSummaryTable()); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.HasPrefix(buf.String(), corner) {
				t.Errorf("style %q: expected output to start with %q, got:\n%s", style, corner, buf.String())
			}
		}
	})

	t.Run("unknown table style", func(t *testing.T) {
		t.Parallel()

		if _, err := New(FormatTable, &bytes.Buffer{}, Options{TableStyle: "fancy"}); err == nil {
			t.Error("expected error for unknown table style")
		}
	})
}

func TestLookupTableStyle(t *testing.T) {
	t.Parallel()

	for _, name := range TableStyles {
		if _, ok := LookupTableStyle(name); !ok {
			t.Errorf("listed style %q is not known", name)
		}
	}
	if _, ok := LookupTableStyle("fancy"); ok {
		t.Error("expected fancy to be unknown")
	}
}
