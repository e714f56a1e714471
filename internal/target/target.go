package target

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/nao1215/f1scraper/internal/model"
)

// DefaultBaseURL is the origin of the results archive.
const DefaultBaseURL = "https://www.formula1.com"

const resultsPath = "/en/results.html/"

var (
	// ErrInvalidURL is returned when an assembled target is not an absolute URL.
	ErrInvalidURL = errors.New("invalid target url")

	// ErrNoResultPage is returned when a detail target is requested for a
	// kind that has none.
	ErrNoResultPage = errors.New("kind has no result page")
)

// PageTarget is one page to fetch.
type PageTarget struct {
	url    string
	method string
}

// URL returns the absolute URL of the page.
func (t PageTarget) URL() string { return t.url }

// Method returns the HTTP method, always GET.
func (t PageTarget) Method() string { return t.method }

// String implements fmt.Stringer.
func (t PageTarget) String() string { return t.method + " " + t.url }

// Builder assembles page targets under a base URL.
type Builder struct {
	base string
}

// NewBuilder returns a builder for baseURL. An empty baseURL selects
// DefaultBaseURL. A trailing slash is ignored.
func NewBuilder(baseURL string) (*Builder, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")

	if _, err := parseAbsolute(baseURL); err != nil {
		return nil, err
	}
	return &Builder{base: baseURL}, nil
}

// RaceResultSummary returns the season's race calendar page.
func (b *Builder) RaceResultSummary(year int) (PageTarget, error) {
	return b.build(year, "races.html")
}

// RaceResult returns the classification page of one race.
func (b *Builder) RaceResult(year int, c model.Circuit) (PageTarget, error) {
	return b.build(year, "races/"+strconv.FormatUint(uint64(c.Index), 10)+"/"+c.Slug+"/race-result.html")
}

// DriverResultSummary returns the season's drivers' standings page.
func (b *Builder) DriverResultSummary(year int) (PageTarget, error) {
	return b.build(year, "drivers.html")
}

// DriverResult returns the season page of one driver.
func (b *Builder) DriverResult(year int, d model.Driver) (PageTarget, error) {
	return b.build(year, "drivers/"+d.ID+"/"+d.Slug+".html")
}

// TeamResultSummary returns the season's constructors' standings page.
func (b *Builder) TeamResultSummary(year int) (PageTarget, error) {
	return b.build(year, "team.html")
}

// TeamResult returns the season page of one team.
func (b *Builder) TeamResult(year int, t model.Team) (PageTarget, error) {
	return b.build(year, "team/"+t.Slug+".html")
}

// FastestLapSummary returns the season's fastest lap awards page.
func (b *Builder) FastestLapSummary(year int) (PageTarget, error) {
	return b.build(year, "fastest-laps.html")
}

// Summary returns the summary target of kind.
func (b *Builder) Summary(kind model.Kind, year int) (PageTarget, error) {
	switch kind {
	case model.KindRace:
		return b.RaceResultSummary(year)
	case model.KindDriver:
		return b.DriverResultSummary(year)
	case model.KindTeam:
		return b.TeamResultSummary(year)
	case model.KindFastestLap:
		return b.FastestLapSummary(year)
	default:
		return PageTarget{}, fmt.Errorf("%w: unknown kind %d", ErrInvalidURL, int(kind))
	}
}

// Result returns the detail target addressed by fragment.
func (b *Builder) Result(year int, fragment model.Fragment) (PageTarget, error) {
	switch f := fragment.(type) {
	case model.Circuit:
		return b.RaceResult(year, f)
	case model.Driver:
		return b.DriverResult(year, f)
	case model.Team:
		return b.TeamResult(year, f)
	default:
		return PageTarget{}, fmt.Errorf("%w: %T", ErrNoResultPage, fragment)
	}
}

func (b *Builder) build(year int, page string) (PageTarget, error) {
	raw := b.base + resultsPath + strconv.Itoa(year) + "/" + page
	u, err := parseAbsolute(raw)
	if err != nil {
		return PageTarget{}, err
	}
	return PageTarget{url: u.String(), method: http.MethodGet}, nil
}

func parseAbsolute(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidURL, raw, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, fmt.Errorf("%w: %s: not an absolute url", ErrInvalidURL, raw)
	}
	return u, nil
}
