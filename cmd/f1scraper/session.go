package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nao1215/f1scraper/internal/config"
	"github.com/nao1215/f1scraper/internal/database"
	"github.com/nao1215/f1scraper/internal/fetch"
	"github.com/nao1215/f1scraper/internal/log"
	"github.com/nao1215/f1scraper/internal/model"
	"github.com/nao1215/f1scraper/internal/pipeline"
	"github.com/nao1215/f1scraper/internal/report"
	"github.com/nao1215/f1scraper/internal/target"
)

// loadConfig merges defaults, the configuration file and the flags that
// were set on the command line, in that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()

	configPath, err := flags.GetString("config")
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	if cfg.Verbosity, err = flags.GetCount("verbose"); err != nil {
		return nil, err
	}
	if cfg.JSONLogs, err = flags.GetBool("log-json"); err != nil {
		return nil, err
	}

	if flags.Changed("base-url") {
		if cfg.BaseURL, err = flags.GetString("base-url"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("timeout") {
		if cfg.Timeout, err = flags.GetDuration("timeout"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("user-agent") {
		if cfg.UserAgent, err = flags.GetString("user-agent"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("max-body-size") {
		if cfg.MaxBodySize, err = flags.GetInt64("max-body-size"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("format") {
		if cfg.Format, err = flags.GetString("format"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("links") {
		if cfg.Links, err = flags.GetBool("links"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("table-style") {
		if cfg.TableStyle, err = flags.GetString("table-style"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("save") {
		if cfg.SaveToDB, err = flags.GetBool("save"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("db-dir") {
		if cfg.DBDir, err = flags.GetString("db-dir"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("skip-unresolved") {
		if cfg.SkipUnresolved, err = flags.GetBool("skip-unresolved"); err != nil {
			return nil, err
		}
	}
	if cfg.OutputFile, err = flags.GetString("output"); err != nil {
		return nil, err
	}

	return cfg, nil
}

// session holds everything a scraping command needs for one run.
type session struct {
	cfg     *config.Config
	logger  *slog.Logger
	scraper *pipeline.Scraper
	writer  report.Writer

	// closers are closed in reverse order by Close.
	closers []io.Closer
}

// newSession wires the fetch client, scraper and writers described by cfg.
// The caller must call Close.
func newSession(cmd *cobra.Command, cfg *config.Config) (*session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}

	logger := log.NewLogger(cmd.ErrOrStderr(), cfg.Verbosity, cfg.JSONLogs)
	slog.SetDefault(logger)

	builder, err := target.NewBuilder(cfg.BaseURL)
	if err != nil {
		return nil, err
	}

	client := fetch.NewClient(
		fetch.WithTimeout(cfg.Timeout),
		fetch.WithUserAgent(cfg.UserAgent),
		fetch.WithMaxBodySize(cfg.MaxBodySize),
		fetch.WithLogger(logger),
	)

	s := &session{
		cfg:    cfg,
		logger: logger,
		scraper: pipeline.New(client, builder,
			pipeline.WithLogger(logger),
			pipeline.WithSkipUnresolved(cfg.SkipUnresolved),
		),
	}

	if err := s.openWriters(cmd.Context(), cmd.OutOrStdout()); err != nil {
		_ = s.Close()
		return nil, err
	}

	return s, nil
}

func (s *session) openWriters(ctx context.Context, stdout io.Writer) error {
	out := stdout
	if s.cfg.OutputFile != "" {
		f, err := createOutputFile(s.cfg.OutputFile)
		if err != nil {
			return err
		}
		s.closers = append(s.closers, f)
		out = f
	}

	w, err := report.New(s.cfg.Format, out, s.cfg.ReportOptions())
	if err != nil {
		return err
	}

	if !s.cfg.SaveToDB {
		s.writer = w
		return nil
	}

	db, err := database.Open(s.cfg.DBDir, database.DefaultOptions())
	if err != nil {
		return err
	}
	s.closers = append(s.closers, db)
	s.logger.Info("saving tables", "path", db.Path())

	s.writer = report.NewMultiWriter(w, db.Writer(ctx))
	return nil
}

// createOutputFile creates path and its parent directories.
func createOutputFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, nil
}

// emit writes one decoded table.
func (s *session) emit(table *model.Table) error {
	_, err := s.writer.Write(table)
	return err
}

// years returns the season range of the run.
func (s *session) years() pipeline.YearRange {
	first, last := s.cfg.YearRange()
	return pipeline.YearRange{First: first, Last: last}
}

// Close releases the output file and database.
func (s *session) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		errs = append(errs, s.closers[i].Close())
	}
	return errors.Join(errs...)
}
