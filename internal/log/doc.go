// Package log provides the logger of f1scraper, built on top of the
// standard slog package.
//
// NewLogger maps the -v count to a level and wraps the text or JSON handler
// in a CompactHandler, which keeps every record on a single line:
//   - whitespace in messages and string values is collapsed
//   - long string values (response bodies, HTML) are truncated
//   - URL passwords and cookie or authorization values are masked
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, verbosity, false)
//	logger.Debug("fetched page", "url", target.URL(), "bytes", n)
//	slog.SetDefault(logger)
package log
