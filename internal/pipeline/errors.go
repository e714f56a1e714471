package pipeline

import (
	"errors"
	"fmt"
)

var (
	// ErrEntityNotFound matches every EntityNotFoundError.
	ErrEntityNotFound = errors.New("entity not found")

	// ErrNoResultPage is returned when detail pages are requested for a
	// kind that only has a summary page.
	ErrNoResultPage = errors.New("kind has no result pages")

	// ErrInvalidYearRange is returned when a range's first year is after
	// its last year.
	ErrInvalidYearRange = errors.New("invalid year range")
)

// EntityNotFoundError reports a name filter that matched no entity of a
// season.
type EntityNotFoundError struct {
	Year int
	Name string
}

// Error implements error.
func (e *EntityNotFoundError) Error() string {
	return fmt.Sprintf("entity %q not found in %d", e.Name, e.Year)
}

// Is makes EntityNotFoundError match ErrEntityNotFound.
func (e *EntityNotFoundError) Is(target error) bool {
	return target == ErrEntityNotFound
}
