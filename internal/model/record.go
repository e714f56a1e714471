package model

import (
	"strconv"
	"strings"
)

// Field is one named cell value of a decoded row.
type Field struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Record is one decoded table row.
//
// Values are trimmed, whitespace-collapsed text. Positions and points stay
// text because the archive mixes numbers with markers like "DNF" or "NC".
type Record struct {
	// Year is the season the page was scraped under.
	Year int `json:"year"`

	// Kind and Page identify the table the row came from.
	Kind Kind     `json:"kind"`
	Page PageType `json:"page"`

	// Fields holds the row's values in column order.
	Fields []Field `json:"fields"`

	// Link is the href of the row's entity link. Only summary rows of
	// kinds with a detail page carry one.
	Link string `json:"link,omitempty"`

	// Fragment is the entity a detail row belongs to; nil for summary rows.
	Fragment Fragment `json:"fragment,omitempty"`
}

// Get returns the value of the named field.
func (r Record) Get(name string) (string, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// Value returns the value of the named field, or "" when absent.
func (r Record) Value(name string) string {
	v, _ := r.Get(name)
	return v
}

// Names returns the field names in column order.
func (r Record) Names() []string {
	names := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		names[i] = f.Name
	}
	return names
}

// Table is one decoded results page.
type Table struct {
	Year int      `json:"year"`
	Kind Kind     `json:"kind"`
	Page PageType `json:"page"`

	// Header maps column names to the labels printed in the page's thead.
	// It is empty for tables decoded without a header row.
	Header []Field `json:"header,omitempty"`

	Records []Record `json:"records"`

	// Fragment is the entity of a result page; nil for summaries.
	Fragment Fragment `json:"fragment,omitempty"`
}

// Title returns a short human readable description of the table, such as
// "1950 race result Italy (italy)".
func (t *Table) Title() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(t.Year))
	b.WriteString(" ")
	b.WriteString(t.Kind.String())
	b.WriteString(" ")
	b.WriteString(t.Page.String())
	if t.Fragment != nil {
		b.WriteString(" ")
		b.WriteString(t.Fragment.Label())
		b.WriteString(" (")
		b.WriteString(t.Fragment.InternalName())
		b.WriteString(")")
	}
	return b.String()
}

// Columns returns the column names of the table, taken from the header when
// present and from the first record otherwise.
func (t *Table) Columns() []string {
	if len(t.Header) > 0 {
		names := make([]string, len(t.Header))
		for i, h := range t.Header {
			names[i] = h.Name
		}
		return names
	}
	if len(t.Records) > 0 {
		return t.Records[0].Names()
	}
	return nil
}
