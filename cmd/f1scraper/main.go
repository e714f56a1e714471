// Package main provides the entry point for the f1scraper CLI.
//
// f1scraper reads the season tables of the Formula 1 results archive and
// prints their rows.
//
// Usage:
//
//	f1scraper race summary 1950
//	f1scraper race result italy --year 1950
//	f1scraper driver result --year-min 1950 --year-max 1955
//
// See --help for all available options.
package main

import "os"

// main is the entry point for f1scraper.
func main() {
	os.Exit(Execute())
}
