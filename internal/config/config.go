package config

import (
	"fmt"
	"net/url"
	"path/filepath"
	"slices"
	"time"

	"github.com/adrg/xdg"

	"github.com/nao1215/f1scraper/internal/fetch"
	"github.com/nao1215/f1scraper/internal/report"
	"github.com/nao1215/f1scraper/internal/target"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "f1scraper"

	// Request defaults follow the target and fetch packages.
	DefaultBaseURL     = target.DefaultBaseURL
	DefaultTimeout     = fetch.DefaultTimeout
	DefaultUserAgent   = fetch.DefaultUserAgent
	DefaultMaxBodySize = fetch.DefaultMaxBodySize

	// DefaultYearMin is the first championship season.
	DefaultYearMin = 1950

	// DefaultYearMax is the last season of the default range.
	DefaultYearMax = 2023

	// DefaultFormat is the output format used when none is given.
	DefaultFormat = report.FormatText
)

// Seasons are four digit years.
const (
	minYear = 1000
	maxYear = 9999
)

// Config holds all configuration options for f1scraper.
// It is populated from the configuration file and CLI flags and passed
// down explicitly.
type Config struct {
	// ConfigFilePath is the path to the configuration file.
	// If empty, the default locations are searched.
	ConfigFilePath string

	// BaseURL is the origin every page target is built under.
	BaseURL string

	// Timeout bounds each page request.
	Timeout time.Duration

	// UserAgent is the User-Agent header sent with requests.
	UserAgent string

	// MaxBodySize is the largest accepted page in bytes.
	MaxBodySize int64

	// Year selects a single season. Zero means unset; when set it takes
	// precedence over YearMin and YearMax.
	Year int

	// YearMin and YearMax bound the inclusive season range.
	YearMin int
	YearMax int

	// Format is one of report.Formats.
	Format string

	// Links appends entity links to summary rows of text output.
	Links bool

	// TableStyle is one of report.TableStyles.
	TableStyle string

	// OutputFile redirects output from stdout to a file.
	OutputFile string

	// Verbosity is the number of -v flags: 0 warn, 1 info, 2+ debug.
	Verbosity int

	// JSONLogs switches log output to JSON.
	JSONLogs bool

	// SkipUnresolved skips summary rows whose entity link cannot be
	// resolved instead of failing the run.
	SkipUnresolved bool

	// SaveToDB exports every decoded page to the record database.
	SaveToDB bool

	// DBDir is the directory of the record database.
	// Defaults to the XDG data directory (~/.local/share/f1scraper on Linux).
	DBDir string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		BaseURL:     DefaultBaseURL,
		Timeout:     DefaultTimeout,
		UserAgent:   DefaultUserAgent,
		MaxBodySize: DefaultMaxBodySize,
		YearMin:     DefaultYearMin,
		YearMax:     DefaultYearMax,
		Format:      DefaultFormat,
		TableStyle:  report.DefaultTableStyle,
		DBDir:       XDGDataDir(),
	}
}

// XDGDataDir returns the XDG data directory for f1scraper.
// On Linux: ~/.local/share/f1scraper
// On macOS: ~/Library/Application Support/f1scraper
// On Windows: %LOCALAPPDATA%\f1scraper
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for f1scraper.
// On Linux: ~/.config/f1scraper
// On macOS: ~/Library/Application Support/f1scraper
// On Windows: %APPDATA%\f1scraper
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// YearRange returns the inclusive range of seasons to scrape. A set Year
// collapses the range to that season.
func (c *Config) YearRange() (first, last int) {
	if c.Year != 0 {
		return c.Year, c.Year
	}
	return c.YearMin, c.YearMax
}

// Validate checks if the configuration is valid.
// It returns the first problem found.
func (c *Config) Validate() error {
	if c.Year != 0 && !validYear(c.Year) {
		return fmt.Errorf("%w: %d", ErrInvalidYear, c.Year)
	}

	// The range is ignored when an exact year is given.
	if c.Year == 0 {
		if !validYear(c.YearMin) {
			return fmt.Errorf("%w: %d", ErrInvalidYear, c.YearMin)
		}
		if !validYear(c.YearMax) {
			return fmt.Errorf("%w: %d", ErrInvalidYear, c.YearMax)
		}
		if c.YearMin > c.YearMax {
			return fmt.Errorf("%w: %d > %d", ErrInvalidYearRange, c.YearMin, c.YearMax)
		}
	}

	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	if c.MaxBodySize <= 0 {
		return ErrInvalidMaxBodySize
	}

	if !slices.Contains(report.Formats, c.Format) {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, c.Format)
	}

	if _, ok := report.LookupTableStyle(c.TableStyle); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTableStyle, c.TableStyle)
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidBaseURL, c.BaseURL)
	}

	if c.SaveToDB && c.DBDir == "" {
		return ErrNoDBDir
	}

	return nil
}

func validYear(y int) bool {
	return y >= minYear && y <= maxYear
}

// ReportOptions returns the writer settings of the configuration.
func (c *Config) ReportOptions() report.Options {
	return report.Options{Links: c.Links, TableStyle: c.TableStyle}
}
