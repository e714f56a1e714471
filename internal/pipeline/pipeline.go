package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nao1215/f1scraper/internal/fetch"
	"github.com/nao1215/f1scraper/internal/model"
	"github.com/nao1215/f1scraper/internal/parser"
	"github.com/nao1215/f1scraper/internal/resolve"
	"github.com/nao1215/f1scraper/internal/target"
)

// EmitFunc receives every decoded page of a run, in fetch order.
// Returning an error aborts the run.
type EmitFunc func(*model.Table) error

// Scraper drives the fetch, decode and resolve steps for one kind of page.
// It fetches strictly one page at a time.
type Scraper struct {
	// fetcher retrieves page bodies.
	fetcher fetch.Fetcher

	// builder assembles the URLs of summary and detail pages.
	builder *target.Builder

	// logger is used for structured logging of run progress.
	logger *slog.Logger

	// skipUnresolved makes summary rows whose link cannot be resolved be
	// logged and skipped instead of failing the run.
	skipUnresolved bool
}

// Option is a function that configures a Scraper.
type Option func(*Scraper)

// WithLogger sets a custom logger for the scraper.
// If not set, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scraper) {
		s.logger = logger
	}
}

// WithSkipUnresolved switches the whole run from failing on the first
// unresolvable summary row to skipping such rows with a warning.
func WithSkipUnresolved(skip bool) Option {
	return func(s *Scraper) {
		s.skipUnresolved = skip
	}
}

// New creates a Scraper fetching through fetcher and addressing pages
// with builder.
func New(fetcher fetch.Fetcher, builder *target.Builder, opts ...Option) *Scraper {
	s := &Scraper{
		fetcher: fetcher,
		builder: builder,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = slog.Default()
	}

	return s
}

// SummaryPage fetches and decodes the summary page of kind for year.
func (s *Scraper) SummaryPage(ctx context.Context, kind model.Kind, year int) (*model.Table, error) {
	schema, err := parser.Lookup(kind, model.PageSummary)
	if err != nil {
		return nil, err
	}

	t, err := s.builder.Summary(kind, year)
	if err != nil {
		return nil, fmt.Errorf("build %s summary target for %d: %w", kind, year, err)
	}

	return s.page(ctx, schema, t, year, nil)
}

// ResultPage fetches and decodes the detail page addressed by fragment.
func (s *Scraper) ResultPage(ctx context.Context, year int, fragment model.Fragment) (*model.Table, error) {
	if fragment == nil {
		return nil, fmt.Errorf("%w: no entity given", ErrNoResultPage)
	}

	schema, err := parser.Lookup(fragment.EntityKind(), model.PageResult)
	if err != nil {
		return nil, err
	}

	t, err := s.builder.Result(year, fragment)
	if err != nil {
		return nil, fmt.Errorf("build %s result target for %d %s: %w", fragment.EntityKind(), year, fragment.InternalName(), err)
	}

	return s.page(ctx, schema, t, year, fragment)
}

func (s *Scraper) page(ctx context.Context, schema parser.Schema, t target.PageTarget, year int, fragment model.Fragment) (*model.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.logger.Info("fetching page",
		"kind", schema.Kind,
		"page", schema.Page,
		"year", year,
		"url", t.URL(),
	)

	body, err := s.fetcher.Fetch(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("fetch %s %s for %d: %w", schema.Kind, schema.Page, year, err)
	}

	table, err := parser.ParseTable(schema, body, year, fragment)
	if err != nil {
		return nil, fmt.Errorf("parse %s %s for %d: %w", schema.Kind, schema.Page, year, err)
	}

	s.logger.Debug("decoded page",
		"kind", schema.Kind,
		"page", schema.Page,
		"year", year,
		"rows", len(table.Records),
	)
	return table, nil
}

// Summaries emits the summary page of kind for every year of years.
func (s *Scraper) Summaries(ctx context.Context, kind model.Kind, years YearRange, emit EmitFunc) error {
	if err := years.Validate(); err != nil {
		return err
	}

	for year := range years.All() {
		table, err := s.SummaryPage(ctx, kind, year)
		if err != nil {
			return err
		}
		if err := emit(table); err != nil {
			return fmt.Errorf("emit %s: %w", table.Title(), err)
		}
	}
	return nil
}

// Index fetches the summary page of kind for year and indexes the entities
// its rows link to.
func (s *Scraper) Index(ctx context.Context, kind model.Kind, year int) (*model.Table, *NameIndex, error) {
	if !kind.HasResultPage() {
		return nil, nil, fmt.Errorf("%w: %s", ErrNoResultPage, kind)
	}

	s.enter(StateResolvingSummary, kind, year)
	table, err := s.SummaryPage(ctx, kind, year)
	if err != nil {
		return nil, nil, err
	}

	schema, err := parser.Lookup(kind, model.PageSummary)
	if err != nil {
		return nil, nil, err
	}
	link, ok := schema.LinkColumn()
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s summary has no entity links", ErrNoResultPage, kind)
	}

	s.enter(StateIndexingEntities, kind, year)
	index := NewNameIndex()
	for i, rec := range table.Records {
		label := rec.Value(link.Name)

		fragment, err := resolve.Fragment(kind, rec.Link, label)
		if err != nil {
			if s.skipUnresolved {
				s.logger.Warn("skipping unresolvable row",
					"kind", kind,
					"year", year,
					"row", i,
					"name", label,
					"error", err,
				)
				continue
			}
			return nil, nil, fmt.Errorf("index %s %d: row %d %q: %w", kind, year, i, label, err)
		}

		if !index.Add(fragment) {
			s.logger.Debug("duplicate entity", "kind", kind, "year", year, "slug", fragment.InternalName())
		}
	}

	slugs, names := index.Keys()
	s.logger.Debug("indexed entities",
		"kind", kind,
		"year", year,
		"entities", index.Len(),
		"slugs", slugs,
		"names", names,
	)
	return table, index, nil
}

// Results emits the detail pages of kind for every year of years.
//
// With a non-empty name only the entity matching it is fetched, looked up
// by slug first and display name second. Without a name every entity of
// the season is fetched in summary page order. Any error aborts the run.
func (s *Scraper) Results(ctx context.Context, kind model.Kind, years YearRange, name string, emit EmitFunc) error {
	if err := years.Validate(); err != nil {
		return err
	}
	if !kind.HasResultPage() {
		return fmt.Errorf("%w: %s", ErrNoResultPage, kind)
	}

	for year := range years.All() {
		_, index, err := s.Index(ctx, kind, year)
		if err != nil {
			return err
		}

		var selected []model.Fragment
		if name != "" {
			s.enter(StateFilteringByName, kind, year)
			fragment, ok := index.Lookup(name)
			if !ok {
				return &EntityNotFoundError{Year: year, Name: name}
			}
			selected = []model.Fragment{fragment}
		} else {
			s.enter(StateAllEntities, kind, year)
			selected = index.Entities()
		}

		s.enter(StateFetchingDetail, kind, year)
		for _, fragment := range selected {
			table, err := s.ResultPage(ctx, year, fragment)
			if err != nil {
				return err
			}
			if err := emit(table); err != nil {
				return fmt.Errorf("emit %s: %w", table.Title(), err)
			}
		}
	}

	s.logger.Debug("state", "state", StateDone, "kind", kind, "years", years.String())
	return nil
}

func (s *Scraper) enter(state State, kind model.Kind, year int) {
	s.logger.Debug("state", "state", state, "kind", kind, "year", year)
}
