package parser

import "errors"

var (
	// ErrTableNotFound is returned when no element matches the table selector.
	ErrTableNotFound = errors.New("table not found")

	// ErrInvalidColumnCount is returned when a header or row does not have
	// exactly as many cells as the schema has columns.
	ErrInvalidColumnCount = errors.New("invalid column count")

	// ErrMissingExpectedCell is returned when a cell lacks the anchor or
	// href its column strategy reads.
	ErrMissingExpectedCell = errors.New("missing expected cell content")

	// ErrUnknownSchema is returned when no schema exists for a kind and page.
	ErrUnknownSchema = errors.New("no table schema")
)
