// Package database stores decoded result tables in a SQLite file.
//
// Each emitted page becomes one row in the pages table, and each of its
// records one row in the records table with the fields kept as JSON. The
// scraper only writes here; the history command reads the tables back.
//
// The driver is modernc.org/sqlite, so the binary stays CGO-free.
package database
