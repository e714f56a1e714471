package parser

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/nao1215/f1scraper/internal/model"
)

// ParseTable locates the schema's table in document and decodes it.
// Header decoding only happens for schemas with Header set. Records carry
// year and, for result pages, fragment.
func ParseTable(s Schema, document string, year int, fragment model.Fragment) (*model.Table, error) {
	raw, err := LocateTable(document, s.Selector)
	if err != nil {
		return nil, err
	}

	table := &model.Table{
		Year:     year,
		Kind:     s.Kind,
		Page:     s.Page,
		Records:  make([]model.Record, 0),
		Fragment: fragment,
	}

	if s.Header {
		header, err := DecodeHeader(s, raw.Headers())
		if err != nil {
			return nil, fmt.Errorf("parse table headers: %w", err)
		}
		table.Header = header
	}

	for i, row := range raw.Rows() {
		rec, err := DecodeRow(s, row)
		if err != nil {
			return nil, fmt.Errorf("parse table rows: row %d: %w", i, err)
		}
		rec.Year = year
		rec.Fragment = fragment
		table.Records = append(table.Records, rec)
	}

	return table, nil
}

// DecodeHeader maps each schema column to its header label.
func DecodeHeader(s Schema, cells iter.Seq[*goquery.Selection]) ([]model.Field, error) {
	labels := slices.Collect(cells)
	if len(labels) != s.Arity() {
		return nil, columnCountError(s.Arity(), len(labels))
	}

	header := make([]model.Field, len(labels))
	for i, cell := range labels {
		header[i] = model.Field{Name: s.Columns[i].Name, Value: collapse(cell.Text())}
	}
	return header, nil
}

// DecodeRow decodes one body row. The returned record has its kind, page,
// fields and link set.
func DecodeRow(s Schema, row *goquery.Selection) (model.Record, error) {
	cells := slices.Collect(Cells(row))
	if len(cells) != s.Arity() {
		return model.Record{}, columnCountError(s.Arity(), len(cells))
	}

	rec := model.Record{
		Kind:   s.Kind,
		Page:   s.Page,
		Fields: make([]model.Field, len(cells)),
	}

	for i, cell := range cells {
		col := s.Columns[i]

		value, err := extract(col.Extract, cell)
		if err != nil {
			return model.Record{}, fmt.Errorf("column: %s: %w", col.Name, err)
		}
		rec.Fields[i] = model.Field{Name: col.Name, Value: value}

		if col.Link {
			href, err := anchorHref(cell)
			if err != nil {
				return model.Record{}, fmt.Errorf("column: %s: %w", col.Name, err)
			}
			rec.Link = href
		}
	}

	return rec, nil
}

func extract(strategy Strategy, cell *goquery.Selection) (string, error) {
	switch strategy {
	case Text:
		return collapse(cell.Text()), nil
	case AnchorText:
		a := cell.Find(anchorSelector).First()
		if a.Length() == 0 {
			return "", fmt.Errorf("%w: expected a element", ErrMissingExpectedCell)
		}
		return collapse(a.Text()), nil
	case SpanText:
		spans := cell.Find(spanSelector)
		if spans.Length() == 0 {
			return collapse(cell.Text()), nil
		}
		parts := make([]string, 0, spans.Length())
		for _, span := range spans.EachIter() {
			parts = append(parts, span.Text())
		}
		return collapse(strings.Join(parts, " ")), nil
	default:
		return "", fmt.Errorf("unknown strategy %d", strategy)
	}
}

func anchorHref(cell *goquery.Selection) (string, error) {
	a := cell.Find(anchorSelector).First()
	if a.Length() == 0 {
		return "", fmt.Errorf("%w: expected a element", ErrMissingExpectedCell)
	}
	href, ok := a.Attr("href")
	if !ok {
		return "", fmt.Errorf("%w: expected a element to contain url", ErrMissingExpectedCell)
	}
	return strings.TrimSpace(href), nil
}

func columnCountError(want, got int) error {
	return fmt.Errorf("%w: expected %d, got %d", ErrInvalidColumnCount, want, got)
}
