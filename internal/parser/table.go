package parser

import (
	"fmt"
	"iter"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// RawTable is a results table located in a parsed document.
// Its sequences read the document lazily, so it stays valid only as long as
// the document it was located in.
type RawTable struct {
	table *goquery.Selection
}

// LocateTable parses document and returns the first table matching selector.
func LocateTable(document, selector string) (*RawTable, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(document))
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	table := doc.Find(selector).First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrTableNotFound, selector)
	}

	return &RawTable{table: table}, nil
}

// Headers yields the header cells of the table, spacer columns excluded.
func (t *RawTable) Headers() iter.Seq[*goquery.Selection] {
	return withoutLimiters(t.table.Find(headerCellSelector))
}

// Rows yields the body rows of the table with their zero-based index.
func (t *RawTable) Rows() iter.Seq2[int, *goquery.Selection] {
	return t.table.Find(bodyRowSelector).EachIter()
}

// Cells yields the data cells of row, spacer columns excluded.
func Cells(row *goquery.Selection) iter.Seq[*goquery.Selection] {
	return withoutLimiters(row.Find(cellSelector))
}

func withoutLimiters(sel *goquery.Selection) iter.Seq[*goquery.Selection] {
	return func(yield func(*goquery.Selection) bool) {
		for _, cell := range sel.EachIter() {
			if isLimiter(cell) {
				continue
			}
			if !yield(cell) {
				return
			}
		}
	}
}

func isLimiter(cell *goquery.Selection) bool {
	if cell.Length() == 0 {
		return false
	}
	return hasClass(cell.Nodes[0], limiterClass)
}

// hasClass reports whether n carries class, compared case-insensitively.
func hasClass(n *html.Node, class string) bool {
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(attr.Val) {
			if strings.EqualFold(c, class) {
				return true
			}
		}
	}
	return false
}

// collapse trims s and folds every run of whitespace into a single space.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
