// Package model defines the data structures shared by the scraper packages.
//
// This package contains the following main types:
//   - Kind and PageType: which archive section and which page of it
//   - Fragment: the identity of a circuit, driver or team resolved from a
//     summary page (Circuit, Driver, Team)
//   - Record: one decoded table row as ordered named fields
//   - Table: one decoded page
//
// The types are serializable to JSON for report output and record export.
package model
