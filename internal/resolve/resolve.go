package resolve

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/nao1215/f1scraper/internal/model"
)

// skipSegments is the number of path segments before the identifiers,
// counting the empty segment before the leading slash.
const skipSegments = 5

// Fragment resolves href into the fragment type of kind.
func Fragment(kind model.Kind, href, label string) (model.Fragment, error) {
	var (
		f   model.Fragment
		err error
	)
	switch kind {
	case model.KindRace:
		f, err = Circuit(href, label)
	case model.KindDriver:
		f, err = Driver(href, label)
	case model.KindTeam:
		f, err = Team(href, label)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedKind, kind)
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Circuit resolves a race result link into its circuit index and slug.
func Circuit(href, label string) (model.Circuit, error) {
	tokens, err := identifiers(href, 2)
	if err != nil {
		return model.Circuit{}, err
	}

	idx, err := strconv.ParseUint(tokens[0], 10, 16)
	if err != nil {
		return model.Circuit{}, fmt.Errorf("%w: %q in %s: %w", ErrIndexParse, tokens[0], href, err)
	}

	return model.Circuit{
		Index:       uint16(idx),
		Slug:        strings.TrimSuffix(tokens[1], ".html"),
		DisplayName: label,
	}, nil
}

// Driver resolves a driver result link into the driver id and slug.
func Driver(href, label string) (model.Driver, error) {
	tokens, err := identifiers(href, 2)
	if err != nil {
		return model.Driver{}, err
	}

	return model.Driver{
		ID:          tokens[0],
		Slug:        strings.TrimSuffix(tokens[1], ".html"),
		DisplayName: label,
	}, nil
}

// Team resolves a team result link into the team slug.
func Team(href, label string) (model.Team, error) {
	tokens, err := identifiers(href, 1)
	if err != nil {
		return model.Team{}, err
	}

	return model.Team{
		Slug:        strings.TrimSuffix(tokens[0], ".html"),
		DisplayName: label,
	}, nil
}

// identifiers returns the n path segments following the fixed prefix.
// Absolute links are reduced to their path first.
func identifiers(href string, n int) ([]string, error) {
	u, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformedURL, href, err)
	}

	segments := strings.Split(u.Path, "/")
	if len(segments) < skipSegments+n {
		return nil, fmt.Errorf("%w: %s: expected %d identifier segments", ErrMalformedURL, href, n)
	}

	tokens := segments[skipSegments : skipSegments+n]
	for _, tok := range tokens {
		if tok == "" || tok == ".html" {
			return nil, fmt.Errorf("%w: %s: empty identifier segment", ErrMalformedURL, href)
		}
	}
	return tokens, nil
}
