package parser

import (
	"fmt"

	"github.com/nao1215/f1scraper/internal/model"
)

// Strategy selects how a column's value is read from its cell.
type Strategy int

const (
	// Text reads the whole cell text.
	Text Strategy = iota

	// AnchorText reads the text of the cell's first anchor.
	AnchorText

	// SpanText joins the texts of the cell's spans with single spaces.
	// Driver names are split into first name, last name and code spans.
	SpanText
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case Text:
		return "text"
	case AnchorText:
		return "anchor-text"
	case SpanText:
		return "span-text"
	default:
		return "unknown"
	}
}

// Column describes one table column.
type Column struct {
	// Name is the field name in decoded records.
	Name string

	// Extract is how the value is read.
	Extract Strategy

	// Link marks the column whose anchor href addresses the row's entity.
	// Its value is the entity's display name.
	Link bool
}

// Schema describes one results table layout.
type Schema struct {
	Kind model.Kind
	Page model.PageType

	// Selector locates the table in the page.
	Selector string

	// Header is true when the table's thead is decoded.
	Header bool

	Columns []Column
}

// Arity returns the number of cells a header or row must have.
func (s Schema) Arity() int {
	return len(s.Columns)
}

// LinkColumn returns the column carrying the entity link, if any.
func (s Schema) LinkColumn() (Column, bool) {
	for _, c := range s.Columns {
		if c.Link {
			return c, true
		}
	}
	return Column{}, false
}

// Table schemas of the archive.
var (
	RaceSummary = Schema{
		Kind:     model.KindRace,
		Page:     model.PageSummary,
		Selector: SelectorSummary,
		Header:   true,
		Columns: []Column{
			{Name: "grand_prix", Extract: AnchorText, Link: true},
			{Name: "date", Extract: Text},
			{Name: "winner", Extract: SpanText},
			{Name: "car", Extract: Text},
			{Name: "laps", Extract: Text},
			{Name: "time", Extract: Text},
		},
	}

	RaceResult = Schema{
		Kind:     model.KindRace,
		Page:     model.PageResult,
		Selector: SelectorRaceResult,
		Header:   true,
		Columns: []Column{
			{Name: "pos", Extract: Text},
			{Name: "no", Extract: Text},
			{Name: "driver", Extract: SpanText},
			{Name: "car", Extract: Text},
			{Name: "laps", Extract: Text},
			{Name: "time_retired", Extract: Text},
			{Name: "pts", Extract: Text},
		},
	}

	DriverSummary = Schema{
		Kind:     model.KindDriver,
		Page:     model.PageSummary,
		Selector: SelectorWrapped,
		Header:   true,
		Columns: []Column{
			{Name: "pos", Extract: Text},
			{Name: "driver", Extract: SpanText, Link: true},
			{Name: "nationality", Extract: Text},
			{Name: "car", Extract: AnchorText},
			{Name: "pts", Extract: Text},
		},
	}

	DriverResult = Schema{
		Kind:     model.KindDriver,
		Page:     model.PageResult,
		Selector: SelectorWrapped,
		Header:   true,
		Columns: []Column{
			{Name: "grand_prix", Extract: AnchorText},
			{Name: "date", Extract: Text},
			{Name: "car", Extract: AnchorText},
			{Name: "pos", Extract: Text},
			{Name: "pts", Extract: Text},
		},
	}

	TeamSummary = Schema{
		Kind:     model.KindTeam,
		Page:     model.PageSummary,
		Selector: SelectorSummary,
		Columns: []Column{
			{Name: "pos", Extract: Text},
			{Name: "team", Extract: AnchorText, Link: true},
			{Name: "pts", Extract: Text},
		},
	}

	TeamResult = Schema{
		Kind:     model.KindTeam,
		Page:     model.PageResult,
		Selector: SelectorWrapped,
		Columns: []Column{
			{Name: "grand_prix", Extract: AnchorText},
			{Name: "date", Extract: Text},
			{Name: "pts", Extract: Text},
		},
	}

	FastestLapSummary = Schema{
		Kind:     model.KindFastestLap,
		Page:     model.PageSummary,
		Selector: SelectorSummary,
		Columns: []Column{
			{Name: "grand_prix", Extract: Text},
			{Name: "driver", Extract: SpanText},
			{Name: "car", Extract: Text},
			{Name: "time", Extract: Text},
		},
	}
)

// Lookup returns the schema of the given kind and page.
func Lookup(kind model.Kind, page model.PageType) (Schema, error) {
	for _, s := range []Schema{
		RaceSummary, RaceResult,
		DriverSummary, DriverResult,
		TeamSummary, TeamResult,
		FastestLapSummary,
	} {
		if s.Kind == kind && s.Page == page {
			return s, nil
		}
	}
	return Schema{}, fmt.Errorf("%w: %s %s", ErrUnknownSchema, kind, page)
}
