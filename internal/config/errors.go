package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and can be matched with
// errors.Is().
var (
	// ErrInvalidYear is returned when a season is not a four digit year.
	ErrInvalidYear = errors.New("invalid year: must be a four digit season")

	// ErrInvalidYearRange is returned when --year-min is after --year-max.
	ErrInvalidYearRange = errors.New("invalid year range: minimum is after maximum")

	// ErrInvalidTimeout is returned when the timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidMaxBodySize is returned when the max body size is not positive.
	ErrInvalidMaxBodySize = errors.New("invalid max body size: must be positive")

	// ErrUnknownFormat is returned for an output format other than text,
	// json, markdown or table.
	ErrUnknownFormat = errors.New("unknown output format")

	// ErrUnknownTableStyle is returned for a table style report does not know.
	ErrUnknownTableStyle = errors.New("unknown table style")

	// ErrInvalidBaseURL is returned when the base URL is not absolute.
	ErrInvalidBaseURL = errors.New("invalid base url: must be an absolute url")

	// ErrNoDBDir is returned when saving is enabled without a database directory.
	ErrNoDBDir = errors.New("no database directory: set --db-dir to save records")
)
