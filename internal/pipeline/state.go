package pipeline

import (
	"fmt"
	"iter"
	"strconv"
)

// State is a step of a result run, logged as the run advances.
type State string

const (
	StateResolvingSummary State = "resolving-summary"
	StateIndexingEntities State = "indexing-entities"
	StateFilteringByName  State = "filtering-by-name"
	StateAllEntities      State = "all-entities"
	StateFetchingDetail   State = "fetching-detail"
	StateDone             State = "done"
)

// YearRange is an inclusive range of seasons.
type YearRange struct {
	First int
	Last  int
}

// SingleYear returns the range containing only year.
func SingleYear(year int) YearRange {
	return YearRange{First: year, Last: year}
}

// Validate checks that the range is not empty.
func (r YearRange) Validate() error {
	if r.First > r.Last {
		return fmt.Errorf("%w: %d..%d", ErrInvalidYearRange, r.First, r.Last)
	}
	return nil
}

// All yields every year of the range in ascending order.
func (r YearRange) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for y := r.First; y <= r.Last; y++ {
			if !yield(y) {
				return
			}
		}
	}
}

// String returns "1950" or "1950..1955".
func (r YearRange) String() string {
	if r.First == r.Last {
		return strconv.Itoa(r.First)
	}
	return strconv.Itoa(r.First) + ".." + strconv.Itoa(r.Last)
}
