// Package config provides the configuration of f1scraper.
// It defines the defaults, the YAML configuration file and the validation
// applied once flags and file values are merged.
package config
