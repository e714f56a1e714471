// Package report writes decoded results pages.
//
// Supported formats:
//   - text: one line per row, result rows prefixed with year and entity
//   - json: one JSON document per page
//   - markdown: heading and table per page
//   - table: boxed terminal table per page
//
// MultiWriter fans a page out to several writers, such as stdout and the
// record database.
package report
