package resolve

import "errors"

var (
	// ErrMalformedURL is returned when a link lacks the identifier segments.
	ErrMalformedURL = errors.New("malformed entity url")

	// ErrIndexParse is returned when a circuit index is not a 16-bit
	// unsigned integer.
	ErrIndexParse = errors.New("invalid circuit index")

	// ErrUnsupportedKind is returned for kinds without detail pages.
	ErrUnsupportedKind = errors.New("kind has no entity fragment")
)
