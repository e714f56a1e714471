package config

import "time"

// File represents the structure of the .f1scraper configuration file.
// Unset keys leave the corresponding Config value untouched.
type File struct {
	// BaseURL overrides the archive origin, e.g. for a local mirror.
	BaseURL string `yaml:"base_url,omitempty"`

	// Timeout is a Go duration string such as "30s".
	Timeout time.Duration `yaml:"timeout,omitempty"`

	UserAgent   string `yaml:"user_agent,omitempty"`
	MaxBodySize int64  `yaml:"max_body_size,omitempty"`

	// YearMin and YearMax set the default season range.
	YearMin int `yaml:"year_min,omitempty"`
	YearMax int `yaml:"year_max,omitempty"`

	Format         string `yaml:"format,omitempty"`
	Links          bool   `yaml:"links,omitempty"`
	TableStyle     string `yaml:"table_style,omitempty"`
	SkipUnresolved bool   `yaml:"skip_unresolved,omitempty"`

	// Database configures the record export.
	Database DatabaseFile `yaml:"database,omitempty"`
}

// DatabaseFile is the database section of the configuration file.
type DatabaseFile struct {
	Save bool   `yaml:"save,omitempty"`
	Dir  string `yaml:"dir,omitempty"`
}

// Apply copies every value set in the file into c.
func (f *File) Apply(c *Config) {
	if f.BaseURL != "" {
		c.BaseURL = f.BaseURL
	}
	if f.Timeout != 0 {
		c.Timeout = f.Timeout
	}
	if f.UserAgent != "" {
		c.UserAgent = f.UserAgent
	}
	if f.MaxBodySize != 0 {
		c.MaxBodySize = f.MaxBodySize
	}
	if f.YearMin != 0 {
		c.YearMin = f.YearMin
	}
	if f.YearMax != 0 {
		c.YearMax = f.YearMax
	}
	if f.Format != "" {
		c.Format = f.Format
	}
	if f.Links {
		c.Links = true
	}
	if f.TableStyle != "" {
		c.TableStyle = f.TableStyle
	}
	if f.SkipUnresolved {
		c.SkipUnresolved = true
	}
	if f.Database.Save {
		c.SaveToDB = true
	}
	if f.Database.Dir != "" {
		c.DBDir = f.Database.Dir
	}
}
