package model

import "fmt"

// Kind identifies which results section of the archive a page belongs to.
type Kind int

const (
	// KindRace covers the race calendar and per-race classifications.
	KindRace Kind = iota

	// KindDriver covers the drivers' championship and per-driver seasons.
	KindDriver

	// KindTeam covers the constructors' championship and per-team seasons.
	KindTeam

	// KindFastestLap covers the season's fastest lap awards.
	// It only has a summary page.
	KindFastestLap
)

// Kinds lists every kind in display order.
var Kinds = []Kind{KindRace, KindDriver, KindTeam, KindFastestLap}

// String returns the name used on the command line and in output.
func (k Kind) String() string {
	switch k {
	case KindRace:
		return "race"
	case KindDriver:
		return "driver"
	case KindTeam:
		return "team"
	case KindFastestLap:
		return "fastest-lap"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// HasResultPage reports whether entities of this kind have a detail page.
func (k Kind) HasResultPage() bool {
	return k == KindRace || k == KindDriver || k == KindTeam
}

// ParseKind converts a kind name back into a Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown kind %q", s)
}

// PageType distinguishes the season listing from an entity's detail page.
type PageType int

const (
	// PageSummary is the listing of every entity of a kind for one season.
	PageSummary PageType = iota

	// PageResult is the detail page of a single entity for one season.
	PageResult
)

// String returns "summary" or "result".
func (p PageType) String() string {
	switch p {
	case PageSummary:
		return "summary"
	case PageResult:
		return "result"
	default:
		return "unknown"
	}
}

// MarshalText encodes the page type by name.
func (p PageType) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// ParsePageType converts "summary" or "result" back into a PageType.
func ParsePageType(s string) (PageType, error) {
	switch s {
	case "summary":
		return PageSummary, nil
	case "result":
		return PageResult, nil
	default:
		return 0, fmt.Errorf("unknown page type %q", s)
	}
}
